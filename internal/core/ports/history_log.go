package ports

import "iter"

// HistoryLog defines the contract for the bounded, in-order record of
// submitted lines.
type HistoryLog interface {
	Add(line string)
	// All yields (1-based index, line) pairs, oldest first.
	All() iter.Seq2[int, string]
	Len() int
	// Get returns the entry at the 0-based index i.
	Get(i int) (string, bool)
}

// HistoryStore defines the contract for a persistent history backend.
type HistoryStore interface {
	// Append stores a line after every line stored so far.
	Append(line string) error
	// Recent returns up to limit of the newest lines, oldest first.
	Recent(limit int) ([]string, error)
	Close() error
}
