package database

import (
	"context"
	"fmt"
	"time"

	"forum-provider/core/provider"

	"gorm.io/gorm"
)

// Connect opens dsn with the selected dialect. The dialect's naming strategy is part of
// the returned connection, so the dialect must be chosen before anything touches the ORM.
func Connect(cfg Config, dialect provider.Dialect, dsn string) (*gorm.DB, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	db, err := gorm.Open(dialect.Open(dsn), dialect.GormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
