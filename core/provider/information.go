package provider

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrUnknownParameter is returned when a connection-string key is not understood by the engine.
var ErrUnknownParameter = errors.New("unknown connection parameter")

// ConnectionParam identifies one field of an engine's connection string.
type ConnectionParam struct {
	ordinal      int
	name         string
	defaultValue string
}

// NewConnectionParam creates a ConnectionParam.
func NewConnectionParam(ordinal int, name, defaultValue string) ConnectionParam {
	return ConnectionParam{ordinal: ordinal, name: name, defaultValue: defaultValue}
}

func (p ConnectionParam) Ordinal() int         { return p.ordinal }
func (p ConnectionParam) Name() string         { return p.name }
func (p ConnectionParam) DefaultValue() string { return p.defaultValue }

// Param is a name/value pair handed to BuildConnectionString.
type Param struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Defaults turns a parameter set into Params carrying the default values, in ordinal order.
func Defaults(params []ConnectionParam) []Param {
	sorted := slices.Clone(params)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ordinal < sorted[j].ordinal })

	out := make([]Param, 0, len(sorted))
	for _, p := range sorted {
		out = append(out, Param{Name: p.name, Value: p.defaultValue})
	}
	return out
}

// ValidateParams checks that ordinals are unique within a parameter set.
func ValidateParams(params []ConnectionParam) error {
	seen := make(map[int]string, len(params))
	for _, p := range params {
		if other, ok := seen[p.ordinal]; ok {
			return fmt.Errorf("ordinal %d used by %q and %q", p.ordinal, other, p.name)
		}
		seen[p.ordinal] = p.name
	}
	return nil
}

// Information is the static, per-engine metadata. Implementations are read-only after
// construction and safe for concurrent use.
type Information interface {
	// ProviderName identifies the engine.
	ProviderName() string
	// ConnectionString reads the live configuration and returns the engine connection string.
	ConnectionString() (string, error)
	// ConnectionParameters returns the engine's connection fields with their defaults.
	ConnectionParameters() []ConnectionParam
	// BuildConnectionString assembles a native connection string from params.
	BuildConnectionString(params []Param) (string, error)
	// InstallScripts are run, in order, on a fresh database.
	InstallScripts() []string
	// UpgradeScripts are run, in order, on an existing database.
	UpgradeScripts() []string
	// AzureScripts are the hosted-variant install scripts.
	AzureScripts() []string
	// ProviderScripts install the membership/role/profile provider objects.
	ProviderScripts() []string
	// FullTextScript enables full-text search.
	FullTextScript() string
}
