package functions

import (
	"context"
	"fmt"
	"sync"
	"time"

	"forum-provider/core/data"
	"forum-provider/core/metrics"

	"go.uber.org/zap"
)

// Executor runs a Runner's operations against a data.Access.
type Executor struct {
	access data.Access
	runner Runner
	logger *zap.Logger

	mu       sync.Mutex
	messages []Message
}

// NewExecutor creates an Executor. A nil logger disables logging.
func NewExecutor(access data.Access, runner Runner, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{
		access: access,
		runner: runner,
		logger: logger.With(zap.String("provider", runner.ProviderName())),
	}
}

// ProviderName returns the runner's provider name.
func (e *Executor) ProviderName() string {
	return e.runner.ProviderName()
}

// IsSupportedOperation reports whether the runner supports name.
func (e *Executor) IsSupportedOperation(name string) bool {
	return e.runner.IsSupportedOperation(name)
}

// Messages returns the diagnostics collected by the most recent Execute call.
func (e *Executor) Messages() []Message {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Message, len(e.messages))
	copy(out, e.messages)
	return out
}

func (e *Executor) resetMessages() {
	e.mu.Lock()
	e.messages = nil
	e.mu.Unlock()
}

func (e *Executor) appendMessage(m Message) {
	e.mu.Lock()
	e.messages = append(e.messages, m)
	e.mu.Unlock()
}

// Execute runs operation name. When tx is nil the call opens, owns and disposes its own
// transaction, committing it only if the operation reports success. A false result with a
// nil error means the operation did not run or did not succeed.
func (e *Executor) Execute(ctx context.Context, fnType FunctionType, name string, params Params, tx *data.Tx) (ok bool, result any, err error) {
	start := time.Now()
	outcome := metrics.OutcomeError
	defer func() {
		metrics.ObserveFunction(e.runner.ProviderName(), name, outcome, time.Since(start))
	}()

	if !e.runner.IsSupportedOperation(name) {
		outcome = metrics.OutcomeUnsupported
		e.logger.Debug("Operation not supported", zap.String("operation", name))
		return false, nil, nil
	}

	e.resetMessages()

	owned := tx == nil
	if owned {
		tx, err = e.access.BeginTransaction(ctx)
		if err != nil {
			return false, nil, fmt.Errorf("%s: %w", name, err)
		}
		defer func() {
			if derr := tx.Dispose(); derr != nil {
				e.logger.Warn("Failed to dispose transaction", zap.String("operation", name), zap.Error(derr))
			}
		}()
	}

	conn := tx.Connection()
	if conn == nil || conn.Dialector == nil || conn.Dialector.Name() != e.runner.DialectName() {
		outcome = metrics.OutcomeMismatch
		e.logger.Warn("Connection does not belong to this provider",
			zap.String("operation", name),
			zap.String("expected", e.runner.DialectName()),
		)
		return false, nil, nil
	}

	session := newSession(tx, e.appendMessage)
	defer session.close()

	e.logger.Debug("Running operation", zap.String("operation", name), zap.Stringer("type", fnType))

	ok, result, err = e.runner.RunOperation(ctx, session, fnType, name, params)
	if err != nil {
		return false, nil, err
	}

	if owned && ok {
		if err := tx.Commit(); err != nil {
			return false, nil, fmt.Errorf("%s: commit: %w", name, err)
		}
	}

	outcome = metrics.OutcomeNegative
	if ok {
		outcome = metrics.OutcomeOK
	}
	return ok, result, nil
}
