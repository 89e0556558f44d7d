package functions

import (
	"context"
	"fmt"
	"strings"
)

// FunctionType tells a runner what shape of result the caller expects.
type FunctionType int

const (
	Scalar FunctionType = iota
	Query
	DataTable
	Reader
)

var functionTypeNames = map[FunctionType]string{
	Scalar:    "scalar",
	Query:     "query",
	DataTable: "datatable",
	Reader:    "reader",
}

func (t FunctionType) String() string {
	if name, ok := functionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("FunctionType(%d)", int(t))
}

// ParseFunctionType parses the lower-case name of a FunctionType.
func ParseFunctionType(s string) (FunctionType, error) {
	for t, name := range functionTypeNames {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown function type %q", s)
}

// Params are the named parameters of an operation.
type Params map[string]any

// String returns the named parameter when it is a string.
func (p Params) String(name string) (string, bool) {
	v, ok := p[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Message is a diagnostic emitted by the engine while an operation ran.
type Message struct {
	Level string `json:"level"`
	Code  int    `json:"code"`
	Text  string `json:"text"`
}

func (m Message) String() string {
	if m.Code == 0 {
		return fmt.Sprintf("%s: %s", m.Level, m.Text)
	}
	return fmt.Sprintf("%s %d: %s", m.Level, m.Code, m.Text)
}

// Runner is the engine-specific half of an Executor.
type Runner interface {
	// ProviderName identifies the engine, e.g. "mysql".
	ProviderName() string
	// DialectName is the gorm dialector name a connection must report to be usable.
	DialectName() string
	// IsSupportedOperation reports whether RunOperation understands name.
	IsSupportedOperation(name string) bool
	// RunOperation performs the work inside the session's transaction.
	RunOperation(ctx context.Context, session *Session, fnType FunctionType, name string, params Params) (bool, any, error)
}
