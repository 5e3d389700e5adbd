package testutil

import (
	"context"
	"io"

	"github.com/AntonioJCosta/kzsh/internal/core/ports"
)

// ReadResult is one scripted outcome of MockLineReader.ReadLine.
type ReadResult struct {
	Line string
	Err  error
	// Block makes the read wait for ctx cancellation and return CancelErr.
	Block bool
}

// MockLineReader replays scripted reads, then reports io.EOF.
type MockLineReader struct {
	Results   []ReadResult
	CancelErr error
	// Prompts records the prompt passed to each read.
	Prompts []string
	// Started, when set, receives a value as each read begins.
	Started chan struct{}
}

// ReadLine implements ports.LineReader.
func (m *MockLineReader) ReadLine(ctx context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Started != nil {
		m.Started <- struct{}{}
	}
	if len(m.Results) == 0 {
		return "", io.EOF
	}
	r := m.Results[0]
	m.Results = m.Results[1:]
	if r.Block {
		<-ctx.Done()
		return "", m.CancelErr
	}
	return r.Line, r.Err
}

var _ ports.LineReader = (*MockLineReader)(nil)
