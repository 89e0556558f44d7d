package data

import (
	"gorm.io/gorm"
)

// Tx is a transaction with tracked completion.
type Tx struct {
	conn      *gorm.DB
	committed bool
	disposed  bool
}

// WrapTx adopts a transaction that was started elsewhere, e.g. by db.Begin().
func WrapTx(conn *gorm.DB) *Tx {
	return &Tx{conn: conn}
}

// Connection returns the live transactional connection.
func (t *Tx) Connection() *gorm.DB {
	return t.conn
}

// Committed reports whether Commit succeeded or was attempted.
func (t *Tx) Committed() bool {
	return t.committed
}

// Commit commits the transaction. It fails with ErrTxDone when called twice or after Dispose.
func (t *Tx) Commit() error {
	if t.committed || t.disposed {
		return ErrTxDone
	}
	// The driver finishes the transaction even when COMMIT fails.
	t.committed = true
	return t.conn.Commit().Error
}

// Dispose rolls back an uncommitted transaction. It is safe to call more than once.
func (t *Tx) Dispose() error {
	if t.disposed {
		return nil
	}
	t.disposed = true
	if t.committed {
		return nil
	}
	return t.conn.Rollback().Error
}
