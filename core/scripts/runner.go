package scripts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"forum-provider/core/data"
	"forum-provider/core/functions"
	"forum-provider/core/metrics"
	"forum-provider/core/utils"

	"go.uber.org/zap"
)

// Operation and parameter names of the engine's script-execution function.
const (
	RunSQLOperation = "RunSQL"
	ScriptParam     = "script"
)

// Script tokens replaced before execution.
const (
	QualifierToken = "{objectQualifier}"
	OwnerToken     = "{databaseOwner}"
)

// ErrNotRun is returned when the engine declines to run a script.
var ErrNotRun = errors.New("script not run")

// Executor runs a named engine function. *functions.Executor implements it.
type Executor interface {
	ProviderName() string
	Execute(ctx context.Context, fnType functions.FunctionType, name string, params functions.Params, tx *data.Tx) (bool, any, error)
	Messages() []functions.Message
}

// Report describes one applied script.
type Report struct {
	Path     string              `json:"path"`
	Batches  int                 `json:"batches"`
	Messages []functions.Message `json:"messages,omitempty"`
	Elapsed  time.Duration       `json:"elapsed"`
}

// Runner applies scripts from a Source through an Executor.
type Runner struct {
	source    Source
	exec      Executor
	qualifier string
	owner     string
	logger    *zap.Logger
}

// NewRunner creates a Runner substituting qualifier and owner into every script.
func NewRunner(source Source, exec Executor, qualifier, owner string, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		source:    source,
		exec:      exec,
		qualifier: qualifier,
		owner:     owner,
		logger:    logger,
	}
}

// Prepare replaces the qualifier and owner tokens in script.
func Prepare(script, qualifier, owner string) string {
	return strings.NewReplacer(QualifierToken, qualifier, OwnerToken, owner).Replace(script)
}

// Run applies paths in order and stops at the first failure. The reports of the scripts
// applied before the failure are returned with the error.
func (r *Runner) Run(ctx context.Context, paths []string) ([]Report, error) {
	reports := make([]Report, 0, len(paths))
	for _, path := range paths {
		rep, err := r.runOne(ctx, path)
		metrics.ObserveScript(r.exec.ProviderName(), err == nil)
		if err != nil {
			r.logger.Error("Script failed", zap.String("script", path), zap.Error(err))
			return reports, fmt.Errorf("%s: %w", path, err)
		}
		r.logger.Info("Script applied",
			zap.String("script", path),
			zap.Int("batches", rep.Batches),
			zap.Int("messages", len(rep.Messages)),
			zap.Duration("elapsed", rep.Elapsed),
		)
		reports = append(reports, rep)
	}
	return reports, nil
}

func (r *Runner) runOne(ctx context.Context, path string) (Report, error) {
	start := time.Now()

	text, err := read(ctx, r.source, path)
	if err != nil {
		return Report{}, err
	}

	params := functions.Params{ScriptParam: Prepare(text, r.qualifier, r.owner)}
	ok, result, err := r.exec.Execute(ctx, functions.Query, RunSQLOperation, params, nil)
	if err != nil {
		return Report{}, err
	}
	if !ok {
		return Report{}, ErrNotRun
	}

	return Report{
		Path:     path,
		Batches:  utils.ToInt(result),
		Messages: r.exec.Messages(),
		Elapsed:  time.Since(start),
	}, nil
}
