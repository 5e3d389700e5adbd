package ports

import "iter"

/*
AliasTable defines the contract for the session's alias store.
Iteration order is insertion order; lookups are exact-match on the name.
*/
type AliasTable interface {
	// Set upserts an alias. It reports false when the table is full and the
	// name is new, in which case nothing changes.
	Set(name, expansion string) bool
	// Unset removes an alias, keeping the order of the remaining ones.
	Unset(name string)
	Lookup(name string) (string, bool)
	All() iter.Seq2[string, string]
	Len() int
}
