package dispatcher

import "strings"

var echoEscapes = map[byte]string{
	'a': "\a", 'b': "\b", 'e': "\x1b", 'f': "\f",
	'n': "\n", 'r': "\r", 't': "\t", 'v': "\v", '\\': "\\",
}

// expandEscapes interprets echo -e sequences. stop reports a \c, which
// ends the output and suppresses the newline.
func expandEscapes(s string) (out string, stop bool) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		next := s[i+1]
		if next == 'c' {
			return b.String(), true
		}
		if r, ok := echoEscapes[next]; ok {
			b.WriteString(r)
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String(), false
}
