// Package config loads the application settings.
//
// Values come from an optional .env file and the process environment, bound through
// Viper. Every field's default lives in its `default` struct tag, so adding a setting
// means adding one tagged field.
//
// Sections:
//   - Server: maintenance HTTP port and API key
//   - Log: level and format
//   - Database: provider (mysql, mssql), connection settings, table qualifier
//   - Storage: S3/MinIO settings for bucket-hosted scripts
//   - Scripts: script source (dir or bucket)
//
//	cfg, err := config.LoadConfig(".")
package config
