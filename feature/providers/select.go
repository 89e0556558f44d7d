package providers

import (
	"errors"
	"fmt"
	"strings"

	"forum-provider/core/database"
	"forum-provider/core/provider"
	"forum-provider/feature/mssql"
	"forum-provider/feature/mysql"
)

// ErrUnknownProvider is returned for a provider name no engine answers to.
var ErrUnknownProvider = errors.New("unknown database provider")

// Names lists the supported provider names.
func Names() []string {
	return []string{mssql.ProviderName, mysql.ProviderName}
}

// Select returns the engine named by cfg.Provider. Matching is case-insensitive and
// "sqlserver" is accepted for mssql.
func Select(cfg *database.Config) (provider.Provider, error) {
	if cfg == nil {
		return provider.Provider{}, fmt.Errorf("%w: no database configuration", ErrUnknownProvider)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case mysql.ProviderName, "mariadb":
		return mysql.New(cfg), nil
	case mssql.ProviderName, mssql.DialectName:
		return mssql.New(cfg), nil
	default:
		return provider.Provider{}, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
