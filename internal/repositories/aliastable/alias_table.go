package aliastable

import (
	"iter"

	"github.com/AntonioJCosta/kzsh/internal/core/domain/alias"
	"github.com/AntonioJCosta/kzsh/internal/core/ports"
)

// DefaultCapacity is the number of aliases a table holds unless configured.
const DefaultCapacity = 100

/*
AliasTable is an ordered, fixed-capacity alias store. A slice keeps insertion
order for display; the index map gives exact-match lookups.
*/
type AliasTable struct {
	capacity int
	entries  []alias.Alias
	index    map[string]int
}

// NewAliasTable creates an empty table. A non-positive capacity falls back
// to DefaultCapacity.
func NewAliasTable(capacity int) ports.AliasTable {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &AliasTable{
		capacity: capacity,
		index:    make(map[string]int),
	}
}

// Set implements ports.AliasTable. A full table ignores new names.
func (t *AliasTable) Set(name, expansion string) bool {
	if i, ok := t.index[name]; ok {
		t.entries[i].Expansion = expansion
		return true
	}
	if len(t.entries) >= t.capacity {
		return false
	}
	t.index[name] = len(t.entries)
	t.entries = append(t.entries, alias.Alias{Name: name, Expansion: expansion})
	return true
}

// Unset implements ports.AliasTable.
func (t *AliasTable) Unset(name string) {
	i, ok := t.index[name]
	if !ok {
		return
	}
	t.entries = append(t.entries[:i], t.entries[i+1:]...)
	delete(t.index, name)
	for j := i; j < len(t.entries); j++ {
		t.index[t.entries[j].Name] = j
	}
}

// Lookup implements ports.AliasTable.
func (t *AliasTable) Lookup(name string) (string, bool) {
	i, ok := t.index[name]
	if !ok {
		return "", false
	}
	return t.entries[i].Expansion, true
}

// All implements ports.AliasTable.
func (t *AliasTable) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, a := range t.entries {
			if !yield(a.Name, a.Expansion) {
				return
			}
		}
	}
}

// Len implements ports.AliasTable.
func (t *AliasTable) Len() int {
	return len(t.entries)
}

// Seed adds predefined aliases, respecting capacity, and returns how many
// were accepted.
func Seed(table ports.AliasTable, aliases []alias.Alias) int {
	accepted := 0
	for _, a := range aliases {
		if a.Name == "" {
			continue
		}
		if table.Set(a.Name, a.Expansion) {
			accepted++
		}
	}
	return accepted
}
