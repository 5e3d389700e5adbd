package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"syscall"

	"github.com/AntonioJCosta/kzsh/internal/adapters/terminal"
	"github.com/AntonioJCosta/kzsh/internal/core/ports"
	"github.com/AntonioJCosta/kzsh/internal/core/services/dispatcher"
	"github.com/AntonioJCosta/kzsh/internal/logutil"
)

// Exit statuses of Run besides those requested by exit.
const (
	StatusOK        = 0
	StatusReadError = 1
	signalBase      = 128
)

// Session drives the read-evaluate loop of an interactive shell.
type Session struct {
	reader  ports.LineReader
	eval    ports.Evaluator
	prompt  ports.PromptRenderer
	signals <-chan os.Signal
	stderr  io.Writer
	logger  *log.Logger
}

// NewSession creates a Session. signals carries the signals the process
// was notified of and may be nil. It panics if reader, eval or prompt is nil.
func NewSession(reader ports.LineReader, eval ports.Evaluator, prompt ports.PromptRenderer, signals <-chan os.Signal, stderr io.Writer) *Session {
	if reader == nil {
		panic("line reader cannot be nil")
	}
	if eval == nil {
		panic("evaluator cannot be nil")
	}
	if prompt == nil {
		panic("prompt renderer cannot be nil")
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Session{
		reader:  reader,
		eval:    eval,
		prompt:  prompt,
		signals: signals,
		stderr:  stderr,
		logger:  logutil.GetLogger("[repl] "),
	}
}

// Run reads and evaluates lines until end of input, an exit request, a
// terminating signal or a read failure, and returns the shell's exit status.
func (s *Session) Run(ctx context.Context) int {
	for {
		if sig := s.drain(); sig != nil {
			return terminationStatus(sig)
		}

		line, sig, err := s.read(ctx)
		if sig != nil && isTerminating(sig) {
			s.logger.Printf("terminated by %v", sig)
			return terminationStatus(sig)
		}
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				return StatusOK
			case ctx.Err() != nil:
				return StatusOK
			case errors.Is(err, terminal.ErrInterrupted):
				continue
			default:
				fmt.Fprintf(s.stderr, "kzsh: %v\n", err)
				return StatusReadError
			}
		}

		status, err := s.eval.Eval(line)
		if req, ok := dispatcher.AsExitRequest(err); ok {
			return req.Code
		}
		s.logger.Printf("%q -> %d", line, status)
	}
}

// read performs one ReadLine. A signal arriving meanwhile cancels the read
// and is returned.
func (s *Session) read(ctx context.Context) (string, os.Signal, error) {
	readCtx, cancel := context.WithCancel(ctx)
	caught := make(chan os.Signal, 1)
	go func() {
		defer close(caught)
		select {
		case sig := <-s.signals:
			caught <- sig
			cancel()
		case <-readCtx.Done():
		}
	}()

	line, err := s.reader.ReadLine(readCtx, s.prompt.Render())
	cancel()
	sig := <-caught
	if sig != nil && err == nil {
		// The line completed before the cancellation took effect.
		if !isTerminating(sig) {
			sig = nil
		}
	}
	return line, sig, err
}

// drain discards signals that arrived while a command ran, except those
// that end the session.
func (s *Session) drain() os.Signal {
	for {
		select {
		case sig := <-s.signals:
			if isTerminating(sig) {
				return sig
			}
		default:
			return nil
		}
	}
}

func isTerminating(sig os.Signal) bool {
	return sig == syscall.SIGTERM || sig == syscall.SIGHUP
}

func terminationStatus(sig os.Signal) int {
	if n, ok := sig.(syscall.Signal); ok {
		return signalBase + int(n)
	}
	return signalBase
}
