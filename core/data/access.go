package data

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrTxDone is returned when committing a transaction that was already finished.
var ErrTxDone = errors.New("transaction already committed or disposed")

// Access is the database-access abstraction consumed by the provider layer.
type Access interface {
	// ProviderName returns the provider this access was registered for.
	ProviderName() string
	// DB returns the underlying connection pool.
	DB() *gorm.DB
	// BeginTransaction opens a new transaction owned by the caller.
	BeginTransaction(ctx context.Context) (*Tx, error)
}

// GormAccess implements Access on top of a gorm connection.
type GormAccess struct {
	name string
	db   *gorm.DB
}

// NewAccess creates an Access for the named provider.
func NewAccess(name string, db *gorm.DB) *GormAccess {
	return &GormAccess{name: name, db: db}
}

// ProviderName returns the provider name.
func (a *GormAccess) ProviderName() string {
	return a.name
}

// DB returns the gorm connection.
func (a *GormAccess) DB() *gorm.DB {
	return a.db
}

// BeginTransaction opens a transaction bound to ctx.
func (a *GormAccess) BeginTransaction(ctx context.Context) (*Tx, error) {
	if a.db == nil {
		return nil, fmt.Errorf("begin transaction for %s: no database connection", a.name)
	}
	conn := a.db.WithContext(ctx).Begin()
	if conn.Error != nil {
		return nil, fmt.Errorf("begin transaction for %s: %w", a.name, conn.Error)
	}
	return &Tx{conn: conn}, nil
}
