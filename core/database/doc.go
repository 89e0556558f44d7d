// Package database handles database connections and schema inspection.
//
// It wraps GORM (Go Object Relational Mapping) so that every connection is opened with
// the dialect of the configured provider, including its table naming strategy.
//
// # Connect
//
// Connect takes the provider Dialect and a connection string produced by the provider's
// Information. It configures the pool and pings the server before returning.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table on MySQL, SQL Server and SQLite. The script
// runner uses it to find out whether the forum schema is already installed.
//
// # Usage
//
//	dsn, err := p.Information.ConnectionString()
//	db, err := database.Connect(cfg.Database, p.Dialect, dsn)
//	columns, err := database.GetTableColumns(db, "yaf_Registry")
package database
