package tokenizer

import (
	"strings"

	"github.com/AntonioJCosta/kzsh/internal/core/domain/command"
	"github.com/AntonioJCosta/kzsh/internal/core/ports"
)

const (
	// DefaultMaxLineBytes is the longest input considered; the rest is cut.
	DefaultMaxLineBytes = 511
	// DefaultMaxArgs is the largest argument vector produced.
	DefaultMaxArgs = 31
)

// WordTokenizer splits lines into words on spaces, grouping quoted text.
type WordTokenizer struct {
	maxLineBytes int
	maxArgs      int
}

// NewWordTokenizer creates a WordTokenizer. Non-positive limits fall back to
// the defaults.
func NewWordTokenizer(maxLineBytes, maxArgs int) ports.Tokenizer {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}
	if maxArgs <= 0 {
		maxArgs = DefaultMaxArgs
	}
	return &WordTokenizer{maxLineBytes: maxLineBytes, maxArgs: maxArgs}
}

// Tokenize implements ports.Tokenizer. Over-long input is truncated and
// excess words are dropped; neither is reported.
func (t *WordTokenizer) Tokenize(line string) command.Command {
	line = truncateAtRune(line, t.maxLineBytes)
	if strings.TrimSpace(line) == "" {
		return command.Command{}
	}

	words, ok := splitQuoted(line)
	if !ok {
		// Unbalanced quotes: keep the words as typed.
		words = splitOnSpaces(line)
	}
	if len(words) > t.maxArgs {
		words = words[:t.maxArgs]
	}
	return command.Command{Argv: words}
}
