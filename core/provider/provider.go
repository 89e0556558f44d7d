package provider

import (
	"forum-provider/core/data"
	"forum-provider/core/functions"
	"forum-provider/core/registry"

	"gorm.io/gorm"
)

// Provider bundles everything one engine contributes.
type Provider struct {
	// Name is the provider name used for registration and configuration.
	Name string
	// Dialect configures gorm for the engine.
	Dialect Dialect
	// Information is the engine metadata.
	Information Information
	// Functions runs engine-specific operations; nil when the engine has none.
	Functions functions.Runner
	// Register wires the engine's data.Access into the registry.
	Register func(reg *registry.Registry[data.Access], db *gorm.DB) error
}

// HasFunctions reports whether the engine ships a function runner.
func (p Provider) HasFunctions() bool {
	return p.Functions != nil
}
