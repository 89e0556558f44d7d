package functions

import (
	"sync"

	"forum-provider/core/data"

	"gorm.io/gorm"
)

// Session is the per-call view a Runner works on: the transaction plus the subscription
// to the call's diagnostic messages.
type Session struct {
	tx *data.Tx

	mu     sync.Mutex
	sink   func(Message)
	closed bool
}

func newSession(tx *data.Tx, sink func(Message)) *Session {
	return &Session{tx: tx, sink: sink}
}

// NewSession creates a session for runners exercised outside an Executor.
func NewSession(tx *data.Tx, sink func(Message)) *Session {
	return newSession(tx, sink)
}

// Conn returns the transactional connection.
func (s *Session) Conn() *gorm.DB {
	return s.tx.Connection()
}

// Tx returns the transaction the operation runs in.
func (s *Session) Tx() *data.Tx {
	return s.tx
}

// Notify forwards an engine message to the subscriber. Messages after close are dropped.
func (s *Session) Notify(m Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.sink == nil {
		return
	}
	s.sink(m)
}

func (s *Session) close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}
