package tokenizer

import (
	"strings"
	"unicode/utf8"
)

// truncateAtRune cuts s to at most limit bytes without splitting a rune.
func truncateAtRune(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// splitOnSpaces splits on runs of spaces only, the way strtok(" ") does.
func splitOnSpaces(s string) []string {
	var words []string
	for word := range strings.SplitSeq(s, " ") {
		if word != "" {
			words = append(words, word)
		}
	}
	return words
}

// splitQuoted splits on runs of spaces, letting single or double quotes group
// text that contains spaces. Quote characters are removed and a quoted empty
// string is kept as an empty word. Tabs and backslashes are ordinary
// characters. It reports false when a quote is left open.
func splitQuoted(s string) ([]string, bool) {
	var (
		words  []string
		word   strings.Builder
		inWord bool
		quote  rune
	)
	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				word.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inWord = true
		case r == ' ':
			if inWord {
				words = append(words, word.String())
				word.Reset()
				inWord = false
			}
		default:
			word.WriteRune(r)
			inWord = true
		}
	}
	if quote != 0 {
		return nil, false
	}
	if inWord {
		words = append(words, word.String())
	}
	return words, true
}
