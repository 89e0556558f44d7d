package mssql

import (
	"forum-provider/core/data"
	"forum-provider/core/database"
	"forum-provider/core/naming"
	"forum-provider/core/provider"
	"forum-provider/core/registry"

	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

// ProviderName identifies the SQL Server adapter.
const ProviderName = "mssql"

// DialectName is the name gorm's SQL Server dialector reports.
const DialectName = "sqlserver"

// New builds the SQL Server provider for cfg.
func New(cfg *database.Config) provider.Provider {
	return provider.Provider{
		Name:        ProviderName,
		Dialect:     NewDialect(naming.New(cfg.Qualifier)),
		Information: NewInformation(cfg),
		Register:    Register,
	}
}

// NewDialect returns the SQL Server dialect using strategy for generated names.
func NewDialect(strategy *naming.Strategy) provider.Dialect {
	return provider.NewDialect(DialectName, strategy, func(dsn string) gorm.Dialector {
		return sqlserver.Open(dsn)
	})
}

// Register registers the SQL Server data access under ProviderName.
func Register(reg *registry.Registry[data.Access], db *gorm.DB) error {
	return reg.Register(ProviderName, func() (data.Access, error) {
		return data.NewAccess(ProviderName, db), nil
	})
}
