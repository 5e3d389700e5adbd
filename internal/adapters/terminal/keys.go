package terminal

import "unicode/utf8"

type keyKind int

const (
	keyIgnore keyKind = iota
	keyRune
	keyEnter
	keyBackspace
	keyDelete
	keyLeft
	keyRight
	keyHome
	keyEnd
	keyUp
	keyDown
	keyKillToStart
	keyKillToEnd
	keyKillWord
	keyClear
	keyInterrupt
	keyEOF
)

type key struct {
	kind keyKind
	r    rune
}

const esc = 0x1b

var controlKeys = map[byte]keyKind{
	0x01: keyHome,        // ^A
	0x02: keyLeft,        // ^B
	0x03: keyInterrupt,   // ^C
	0x04: keyEOF,         // ^D
	0x05: keyEnd,         // ^E
	0x06: keyRight,       // ^F
	0x08: keyBackspace,   // ^H
	0x0a: keyEnter,       // ^J
	0x0b: keyKillToEnd,   // ^K
	0x0c: keyClear,       // ^L
	0x0d: keyEnter,       // ^M
	0x0e: keyDown,        // ^N
	0x10: keyUp,          // ^P
	0x15: keyKillToStart, // ^U
	0x17: keyKillWord,    // ^W
	0x7f: keyBackspace,
}

// Final bytes of CSI and SS3 sequences.
var csiKeys = map[byte]keyKind{
	'A': keyUp,
	'B': keyDown,
	'C': keyRight,
	'D': keyLeft,
	'H': keyHome,
	'F': keyEnd,
}

// Parameters of "ESC [ n ~" sequences.
var tildeKeys = map[string]keyKind{
	"1": keyHome,
	"7": keyHome,
	"4": keyEnd,
	"8": keyEnd,
	"3": keyDelete,
}

// decodeKey parses the first key in buf. n is 0 when buf holds only the
// start of a sequence and more input is needed.
func decodeKey(buf []byte) (k key, n int) {
	if len(buf) == 0 {
		return key{}, 0
	}
	b := buf[0]
	if b == esc {
		return decodeEscape(buf)
	}
	if kind, ok := controlKeys[b]; ok {
		return key{kind: kind}, 1
	}
	if b < 0x20 {
		return key{kind: keyIgnore}, 1
	}
	if !utf8.FullRune(buf) {
		return key{}, 0
	}
	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size == 1 {
		return key{kind: keyIgnore}, 1
	}
	return key{kind: keyRune, r: r}, size
}

func decodeEscape(buf []byte) (key, int) {
	if len(buf) < 2 {
		return key{}, 0
	}
	switch buf[1] {
	case 'O':
		if len(buf) < 3 {
			return key{}, 0
		}
		if kind, ok := csiKeys[buf[2]]; ok {
			return key{kind: kind}, 3
		}
		return key{kind: keyIgnore}, 3
	case '[':
		// Parameter and intermediate bytes run until a final byte in
		// 0x40-0x7e.
		for i := 2; i < len(buf); i++ {
			c := buf[i]
			if c < 0x40 || c > 0x7e {
				continue
			}
			if c == '~' {
				if kind, ok := tildeKeys[string(buf[2:i])]; ok {
					return key{kind: kind}, i + 1
				}
				return key{kind: keyIgnore}, i + 1
			}
			if kind, ok := csiKeys[c]; ok && i == 2 {
				return key{kind: kind}, i + 1
			}
			return key{kind: keyIgnore}, i + 1
		}
		return key{}, 0
	default:
		// Alt-modified keys are not bound.
		return key{kind: keyIgnore}, 1
	}
}
