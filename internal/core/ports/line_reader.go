package ports

import "context"

// LineReader reads one line of input, showing prompt first.
type LineReader interface {
	// ReadLine returns io.EOF at end of input, and an interrupted error
	// when the read was aborted before a line was complete.
	ReadLine(ctx context.Context, prompt string) (string, error)
}
