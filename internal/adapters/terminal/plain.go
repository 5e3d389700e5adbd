package terminal

import (
	"bufio"
	"context"
	"io"

	"github.com/AntonioJCosta/kzsh/internal/core/ports"
)

type readResult struct {
	line string
	err  error
}

// PlainReader reads newline-terminated lines from a non-terminal input.
// It never prints the prompt. Each line is read on a helper goroutine so
// the read can be abandoned when ctx is cancelled; the abandoned line is
// returned by the next call.
type PlainReader struct {
	in      *bufio.Reader
	results chan readResult
	busy    bool
	eof     bool
}

// NewPlainReader creates a PlainReader. It panics if in is nil.
func NewPlainReader(in io.Reader) ports.LineReader {
	if in == nil {
		panic("input cannot be nil")
	}
	return &PlainReader{in: bufio.NewReader(in), results: make(chan readResult, 1)}
}

// ReadLine implements ports.LineReader. It is not safe for concurrent use.
func (p *PlainReader) ReadLine(ctx context.Context, _ string) (string, error) {
	if p.eof {
		return "", io.EOF
	}
	if !p.busy {
		p.busy = true
		go func() {
			line, err := p.in.ReadString('\n')
			p.results <- readResult{line: line, err: err}
		}()
	}

	select {
	case <-ctx.Done():
		return "", ErrInterrupted
	case res := <-p.results:
		p.busy = false
		if res.err == io.EOF {
			p.eof = true
			if res.line == "" {
				return "", io.EOF
			}
			return res.line, nil
		}
		return res.line, res.err
	}
}
