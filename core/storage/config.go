package storage

// Config holds the object-storage settings used when SQL scripts are kept in a bucket.
type Config struct {
	// Endpoint is the S3-compatible endpoint, with or without scheme.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL enables TLS.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the script tree.
	Bucket string `mapstructure:"bucket" default:"forum-scripts"`
	// Prefix is prepended to every script path inside the bucket.
	Prefix string `mapstructure:"prefix" default:""`
	// Region is the bucket location (e.g. us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds bounds connection setup and the first response byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
