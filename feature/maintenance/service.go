package maintenance

import (
	"context"
	"errors"
	"fmt"

	"forum-provider/core/data"
	"forum-provider/core/functions"
	"forum-provider/core/provider"
	"forum-provider/core/registry"
	"forum-provider/core/scripts"
	"forum-provider/feature/schema"

	"go.uber.org/zap"
)

// ErrNoFunctions is returned when the engine ships no function runner.
var ErrNoFunctions = errors.New("provider has no specific functions")

// ParamInfo describes one connection-string field.
type ParamInfo struct {
	Ordinal int    `json:"ordinal"`
	Name    string `json:"name"`
	Default string `json:"default"`
}

// ProviderInfo is the GET /provider payload.
type ProviderInfo struct {
	Name       string      `json:"name"`
	Dialect    string      `json:"dialect"`
	Qualifier  string      `json:"qualifier"`
	Functions  bool        `json:"functions"`
	Parameters []ParamInfo `json:"parameters"`
}

// FunctionResult is the outcome of one function call.
type FunctionResult struct {
	Ran      bool                `json:"ran"`
	Result   any                 `json:"result"`
	Messages []functions.Message `json:"messages"`
}

// Service answers maintenance requests for one provider.
type Service struct {
	provider provider.Provider
	registry *registry.Registry[data.Access]
	logger   *zap.Logger
}

// NewService creates a Service. reg may be empty when no database is connected; calls
// needing a connection then fail with registry.ErrNotRegistered.
func NewService(p provider.Provider, reg *registry.Registry[data.Access], logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		provider: p,
		registry: reg,
		logger:   logger,
	}
}

// Info describes the provider.
func (s *Service) Info() ProviderInfo {
	params := s.provider.Information.ConnectionParameters()
	out := make([]ParamInfo, 0, len(params))
	for _, p := range params {
		out = append(out, ParamInfo{Ordinal: p.Ordinal(), Name: p.Name(), Default: p.DefaultValue()})
	}
	return ProviderInfo{
		Name:       s.provider.Name,
		Dialect:    s.provider.Dialect.Name(),
		Qualifier:  s.provider.Dialect.Naming().Qualifier(),
		Functions:  s.provider.HasFunctions(),
		Parameters: out,
	}
}

// Scripts returns the script list of kind.
func (s *Service) Scripts(kind string) ([]string, error) {
	k, err := scripts.ParseKind(kind)
	if err != nil {
		return nil, err
	}
	return scripts.List(s.provider.Information, k)
}

// ConnectionString builds a native connection string from params.
func (s *Service) ConnectionString(params []provider.Param) (string, error) {
	return s.provider.Information.BuildConnectionString(params)
}

// Installed reports whether the forum schema exists in the connected database.
func (s *Service) Installed() (bool, error) {
	access, err := s.access()
	if err != nil {
		return false, err
	}
	return scripts.Installed(access.DB(), s.provider.Dialect.Naming())
}

// Schema checks the core forum tables of the connected database.
func (s *Service) Schema() (*schema.Report, error) {
	access, err := s.access()
	if err != nil {
		return nil, err
	}
	return schema.Check(access.DB(), s.provider.Dialect.Naming())
}

// Execute runs operation in its own transaction.
func (s *Service) Execute(ctx context.Context, fnType functions.FunctionType, operation string, params functions.Params) (FunctionResult, error) {
	if !s.provider.HasFunctions() {
		return FunctionResult{}, fmt.Errorf("%s: %w", s.provider.Name, ErrNoFunctions)
	}

	access, err := s.access()
	if err != nil {
		return FunctionResult{}, err
	}

	exec := functions.NewExecutor(access, s.provider.Functions, s.logger)
	ok, result, err := exec.Execute(ctx, fnType, operation, params, nil)
	if err != nil {
		return FunctionResult{}, err
	}

	msgs := exec.Messages()
	if msgs == nil {
		msgs = []functions.Message{}
	}
	return FunctionResult{Ran: ok, Result: result, Messages: msgs}, nil
}

func (s *Service) access() (data.Access, error) {
	return s.registry.NewScope().Resolve(s.provider.Name)
}
