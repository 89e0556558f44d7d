package provider

import (
	"forum-provider/core/naming"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialect is the engine-specific configuration handed to gorm.
type Dialect struct {
	name   string
	naming *naming.Strategy
	open   func(dsn string) gorm.Dialector
}

// NewDialect creates a Dialect. name must match the dialector's Name().
func NewDialect(name string, strategy *naming.Strategy, open func(dsn string) gorm.Dialector) Dialect {
	return Dialect{name: name, naming: strategy, open: open}
}

// Name returns the gorm dialector name.
func (d Dialect) Name() string {
	return d.name
}

// Naming returns the naming strategy used for generated SQL.
func (d Dialect) Naming() *naming.Strategy {
	return d.naming
}

// Open returns a dialector for dsn.
func (d Dialect) Open(dsn string) gorm.Dialector {
	return d.open(dsn)
}

// GormConfig returns the gorm configuration carrying this dialect's naming strategy.
func (d Dialect) GormConfig() *gorm.Config {
	return &gorm.Config{
		NamingStrategy: naming.NewNamer(d.naming),
		// Suppress GORM logging; callers log through zap
		Logger: logger.Default.LogMode(logger.Silent),
	}
}
