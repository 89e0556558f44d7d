package scripts

import (
	"fmt"
	"strings"

	"forum-provider/core/provider"
)

// Kind names one of an engine's script lists.
type Kind string

const (
	Install   Kind = "install"
	Upgrade   Kind = "upgrade"
	Azure     Kind = "azure"
	Providers Kind = "providers"
	FullText  Kind = "fulltext"
)

// Kinds returns every list kind.
func Kinds() []Kind {
	return []Kind{Install, Upgrade, Azure, Providers, FullText}
}

// ParseKind parses a kind name case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown script kind %q", s)
}

// List returns the engine's scripts of kind k in execution order.
func List(info provider.Information, k Kind) ([]string, error) {
	switch k {
	case Install:
		return info.InstallScripts(), nil
	case Upgrade:
		return info.UpgradeScripts(), nil
	case Azure:
		return info.AzureScripts(), nil
	case Providers:
		return info.ProviderScripts(), nil
	case FullText:
		if s := info.FullTextScript(); s != "" {
			return []string{s}, nil
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown script kind %q", string(k))
	}
}
