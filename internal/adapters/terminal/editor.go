package terminal

import (
	"unicode"

	"github.com/AntonioJCosta/kzsh/internal/core/ports"
	"github.com/mattn/go-runewidth"
)

// editor is the line being edited plus the history recall cursor.
// It does no I/O.
type editor struct {
	buf []rune
	pos int

	history ports.HistoryLog
	// recall indexes the history entry shown; history.Len() stands for the
	// line being drafted.
	recall int
	draft  []rune
}

func newEditor(history ports.HistoryLog) *editor {
	e := &editor{history: history}
	if history != nil {
		e.recall = history.Len()
	}
	return e
}

func (e *editor) String() string {
	return string(e.buf)
}

func (e *editor) insert(r rune) {
	e.buf = append(e.buf, 0)
	copy(e.buf[e.pos+1:], e.buf[e.pos:])
	e.buf[e.pos] = r
	e.pos++
}

func (e *editor) backspace() bool {
	if e.pos == 0 {
		return false
	}
	e.buf = append(e.buf[:e.pos-1], e.buf[e.pos:]...)
	e.pos--
	return true
}

func (e *editor) deleteForward() bool {
	if e.pos == len(e.buf) {
		return false
	}
	e.buf = append(e.buf[:e.pos], e.buf[e.pos+1:]...)
	return true
}

func (e *editor) left() bool {
	if e.pos == 0 {
		return false
	}
	e.pos--
	return true
}

func (e *editor) right() bool {
	if e.pos == len(e.buf) {
		return false
	}
	e.pos++
	return true
}

func (e *editor) home() { e.pos = 0 }

func (e *editor) end() { e.pos = len(e.buf) }

func (e *editor) killToStart() {
	e.buf = append([]rune(nil), e.buf[e.pos:]...)
	e.pos = 0
}

func (e *editor) killToEnd() {
	e.buf = e.buf[:e.pos]
}

// killWord deletes back to the start of the word before the cursor.
func (e *editor) killWord() {
	start := e.pos
	for start > 0 && unicode.IsSpace(e.buf[start-1]) {
		start--
	}
	for start > 0 && !unicode.IsSpace(e.buf[start-1]) {
		start--
	}
	e.buf = append(e.buf[:start], e.buf[e.pos:]...)
	e.pos = start
}

// prev shows the previous history entry. It stays put at the oldest one.
func (e *editor) prev() bool {
	if e.history == nil || e.recall == 0 {
		return false
	}
	if e.recall >= e.history.Len() {
		e.recall = e.history.Len()
		e.draft = append([]rune(nil), e.buf...)
	}
	e.recall--
	line, _ := e.history.Get(e.recall)
	e.set([]rune(line))
	return true
}

// next shows the following history entry, and the draft after the newest.
func (e *editor) next() bool {
	if e.history == nil || e.recall >= e.history.Len() {
		return false
	}
	e.recall++
	if e.recall == e.history.Len() {
		e.set(e.draft)
		return true
	}
	line, _ := e.history.Get(e.recall)
	e.set([]rune(line))
	return true
}

func (e *editor) set(line []rune) {
	e.buf = append([]rune(nil), line...)
	e.pos = len(e.buf)
}

// tailWidth is the number of columns between the cursor and the end of the
// line.
func (e *editor) tailWidth() int {
	return runewidth.StringWidth(string(e.buf[e.pos:]))
}
