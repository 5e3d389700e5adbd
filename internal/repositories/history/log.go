package history

import (
	"iter"

	"github.com/AntonioJCosta/kzsh/internal/core/ports"
)

// DefaultCapacity is the number of lines a log keeps unless configured.
const DefaultCapacity = 100

/*
RingLog keeps the most recent lines in a fixed-size ring. Once full, each
Add overwrites the oldest line.
*/
type RingLog struct {
	lines []string
	start int // index of the oldest line
	n     int
}

// NewRingLog creates an empty log. A non-positive capacity falls back to
// DefaultCapacity.
func NewRingLog(capacity int) ports.HistoryLog {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &RingLog{lines: make([]string, capacity)}
}

// Add implements ports.HistoryLog.
func (l *RingLog) Add(line string) {
	if l.n < len(l.lines) {
		l.lines[(l.start+l.n)%len(l.lines)] = line
		l.n++
		return
	}
	l.lines[l.start] = line
	l.start = (l.start + 1) % len(l.lines)
}

// Get implements ports.HistoryLog.
func (l *RingLog) Get(i int) (string, bool) {
	if i < 0 || i >= l.n {
		return "", false
	}
	return l.lines[(l.start+i)%len(l.lines)], true
}

// Len implements ports.HistoryLog.
func (l *RingLog) Len() int {
	return l.n
}

// All implements ports.HistoryLog.
func (l *RingLog) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 0; i < l.n; i++ {
			line, _ := l.Get(i)
			if !yield(i+1, line) {
				return
			}
		}
	}
}
