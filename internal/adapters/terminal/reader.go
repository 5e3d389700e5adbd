package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/AntonioJCosta/kzsh/internal/core/ports"
	"github.com/AntonioJCosta/kzsh/internal/logutil"
	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

// ErrInterrupted is returned when a read is aborted by Ctrl-C or by
// cancellation of its context.
var ErrInterrupted = errors.New("read interrupted")

// RawReader edits lines on a terminal in raw mode. The terminal is in raw
// mode only while ReadLine runs.
type RawReader struct {
	in      *os.File
	out     io.Writer
	history ports.HistoryLog
	logger  *log.Logger

	// pending holds bytes read past the end of the last line.
	pending []byte
}

// NewRawReader creates a RawReader on the terminal in. history may be nil,
// which disables recall. It panics if in or out is nil.
func NewRawReader(in *os.File, out io.Writer, history ports.HistoryLog) ports.LineReader {
	if in == nil || out == nil {
		panic("terminal input and output cannot be nil")
	}
	return &RawReader{in: in, out: out, history: history, logger: logutil.GetLogger("[terminal] ")}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ReadLine implements ports.LineReader.
func (r *RawReader) ReadLine(ctx context.Context, prompt string) (string, error) {
	fd := int(r.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() {
		if err := term.Restore(fd, state); err != nil {
			r.logger.Printf("restore terminal: %v", err)
		}
	}()

	cr, err := cancelreader.NewReader(r.in)
	if err != nil {
		return "", fmt.Errorf("creating cancelable reader: %w", err)
	}
	defer cr.Close()
	stop := context.AfterFunc(ctx, func() { cr.Cancel() })
	defer stop()

	ed := newEditor(r.history)
	s := &screen{out: r.out, prompt: prompt}
	s.start()

	chunk := make([]byte, 256)
	for {
		for len(r.pending) > 0 {
			k, n := decodeKey(r.pending)
			if n == 0 {
				break
			}
			r.pending = r.pending[n:]
			if line, done, err := r.apply(ed, s, k); done {
				return line, err
			}
		}

		n, err := cr.Read(chunk)
		r.pending = append(r.pending, chunk[:n]...)
		if err == nil || n > 0 && errors.Is(err, io.EOF) {
			continue
		}
		switch {
		case errors.Is(err, cancelreader.ErrCanceled):
			s.write("\r\n")
			return "", ErrInterrupted
		case errors.Is(err, io.EOF):
			s.write("\r\n")
			if ed.String() != "" {
				return ed.String(), nil
			}
			return "", io.EOF
		default:
			return "", fmt.Errorf("reading terminal: %w", err)
		}
	}
}

func (r *RawReader) apply(ed *editor, s *screen, k key) (line string, done bool, err error) {
	redraw := false
	switch k.kind {
	case keyRune:
		ed.insert(k.r)
		redraw = true
	case keyEnter:
		s.write("\r\n")
		return ed.String(), true, nil
	case keyInterrupt:
		s.write("^C\r\n")
		return "", true, ErrInterrupted
	case keyEOF:
		if len(ed.buf) == 0 {
			s.write("\r\n")
			return "", true, io.EOF
		}
		redraw = ed.deleteForward()
	case keyBackspace:
		redraw = ed.backspace()
	case keyDelete:
		redraw = ed.deleteForward()
	case keyLeft:
		redraw = ed.left()
	case keyRight:
		redraw = ed.right()
	case keyHome:
		ed.home()
		redraw = true
	case keyEnd:
		ed.end()
		redraw = true
	case keyUp:
		redraw = ed.prev()
	case keyDown:
		redraw = ed.next()
	case keyKillToStart:
		ed.killToStart()
		redraw = true
	case keyKillToEnd:
		ed.killToEnd()
		redraw = true
	case keyKillWord:
		ed.killWord()
		redraw = true
	case keyClear:
		s.clear()
		redraw = true
	}
	if redraw {
		s.refresh(ed)
	}
	return "", false, nil
}

// screen renders the prompt and the edited line. Only the last line of a
// multi-line prompt is redrawn.
type screen struct {
	out    io.Writer
	prompt string
}

func (s *screen) start() {
	s.write(strings.ReplaceAll(s.prompt, "\n", "\r\n"))
}

func (s *screen) clear() {
	s.write("\x1b[H\x1b[2J")
	s.start()
}

func (s *screen) refresh(ed *editor) {
	last := s.prompt[strings.LastIndex(s.prompt, "\n")+1:]
	var b strings.Builder
	b.WriteString("\r")
	b.WriteString(last)
	b.WriteString(ed.String())
	b.WriteString("\x1b[K")
	if w := ed.tailWidth(); w > 0 {
		fmt.Fprintf(&b, "\x1b[%dD", w)
	}
	s.write(b.String())
}

func (s *screen) write(text string) {
	_, _ = io.WriteString(s.out, text)
}
