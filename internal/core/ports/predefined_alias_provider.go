package ports

import "github.com/AntonioJCosta/kzsh/internal/core/domain/alias"

// PredefinedAliasProvider supplies the aliases seeded into a new session,
// before the rc file runs.
type PredefinedAliasProvider interface {
	PredefinedAliases() []alias.Alias
}
