package mysql

import (
	"forum-provider/core/data"
	"forum-provider/core/database"
	"forum-provider/core/naming"
	"forum-provider/core/provider"
	"forum-provider/core/registry"

	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ProviderName identifies the MySQL adapter.
const ProviderName = "mysql"

// DialectName is the name gorm's MySQL dialector reports.
const DialectName = "mysql"

// New builds the MySQL provider for cfg. cfg is read again on every ConnectionString call.
func New(cfg *database.Config) provider.Provider {
	strategy := naming.New(cfg.Qualifier)
	return provider.Provider{
		Name:        ProviderName,
		Dialect:     NewDialect(strategy),
		Information: NewInformation(cfg),
		Functions:   NewFunctions(strategy),
		Register:    Register,
	}
}

// NewDialect returns the MySQL dialect using strategy for generated names.
func NewDialect(strategy *naming.Strategy) provider.Dialect {
	return provider.NewDialect(DialectName, strategy, func(dsn string) gorm.Dialector {
		return gormmysql.Open(dsn)
	})
}

// Register registers the MySQL data access under ProviderName.
func Register(reg *registry.Registry[data.Access], db *gorm.DB) error {
	return reg.Register(ProviderName, func() (data.Access, error) {
		return data.NewAccess(ProviderName, db), nil
	})
}
