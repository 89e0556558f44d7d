package scripts

import "fmt"

// Script source kinds.
const (
	SourceDir    = "dir"
	SourceBucket = "bucket"
)

// Config selects where scripts are read from.
type Config struct {
	// Source is "dir" or "bucket".
	Source string `mapstructure:"source" default:"dir"`
	// Dir is the local script root for the dir source.
	Dir string `mapstructure:"dir" default:"./sql"`
}

// Validate checks the source kind.
func (c Config) Validate() error {
	switch c.Source {
	case SourceDir, SourceBucket:
		return nil
	default:
		return fmt.Errorf("scripts.source must be %q or %q, got %q", SourceDir, SourceBucket, c.Source)
	}
}
