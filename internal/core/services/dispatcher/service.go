package dispatcher

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/AntonioJCosta/kzsh/internal/core/ports"
	"github.com/AntonioJCosta/kzsh/internal/logutil"
)

// DefaultSourceDepthLimit bounds nested source calls.
const DefaultSourceDepthLimit = 16

// Dependencies are the collaborators the evaluator drives.
type Dependencies struct {
	Tokenizer ports.Tokenizer
	Aliases   ports.AliasTable
	History   ports.HistoryLog
	Env       ports.Environment
	Launcher  ports.ProcessLauncher
	Scripts   ports.ScriptLoader
}

// Options tune output and limits. Zero values select defaults.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// Banner is printed by the version builtin.
	Banner           string
	SourceDepthLimit int
	Logger           *log.Logger
}

type service struct {
	tokenizer ports.Tokenizer
	aliases   ports.AliasTable
	history   ports.HistoryLog
	env       ports.Environment
	launcher  ports.ProcessLauncher
	scripts   ports.ScriptLoader

	stdout     io.Writer
	stderr     io.Writer
	banner     string
	depthLimit int
	depth      int
	logger     *log.Logger

	chdir func(dir string) error
	getwd func() (string, error)
}

// NewService creates the line evaluator.
// It panics if any dependency is nil.
func NewService(d Dependencies, opts Options) ports.Evaluator {
	switch {
	case d.Tokenizer == nil:
		panic("tokenizer cannot be nil")
	case d.Aliases == nil:
		panic("alias table cannot be nil")
	case d.History == nil:
		panic("history log cannot be nil")
	case d.Env == nil:
		panic("environment cannot be nil")
	case d.Launcher == nil:
		panic("process launcher cannot be nil")
	case d.Scripts == nil:
		panic("script loader cannot be nil")
	}
	s := &service{
		tokenizer:  d.Tokenizer,
		aliases:    d.Aliases,
		history:    d.History,
		env:        d.Env,
		launcher:   d.Launcher,
		scripts:    d.Scripts,
		stdout:     opts.Stdout,
		stderr:     opts.Stderr,
		banner:     opts.Banner,
		depthLimit: opts.SourceDepthLimit,
		logger:     opts.Logger,
		chdir:      os.Chdir,
		getwd:      os.Getwd,
	}
	if s.stdout == nil {
		s.stdout = os.Stdout
	}
	if s.stderr == nil {
		s.stderr = os.Stderr
	}
	if s.depthLimit <= 0 {
		s.depthLimit = DefaultSourceDepthLimit
	}
	if s.logger == nil {
		s.logger = logutil.Discard
	}
	return s
}

// Eval implements ports.Evaluator.
func (s *service) Eval(line string) (int, error) {
	line = TrimLine(line)
	if strings.TrimSpace(line) == "" {
		return 0, nil
	}
	s.history.Add(line)

	cmd := s.tokenizer.Tokenize(line)
	if cmd.Empty() {
		return 0, nil
	}
	if expansion, ok := s.aliases.Lookup(cmd.Name()); ok {
		s.logger.Printf("alias %q -> %q", cmd.Name(), expansion)
		cmd.Argv[0] = expansion
	}

	if status, ok := s.runMeta(cmd); ok {
		return status, nil
	}
	if b, ok := builtins[cmd.Name()]; ok {
		return b.run(s, cmd.Argv)
	}
	return s.launch(cmd.Argv), nil
}

// Source implements ports.Evaluator.
func (s *service) Source(path string) (int, error) {
	if s.depth >= s.depthLimit {
		fmt.Fprintf(s.stderr, "source: %s: maximum nesting depth exceeded\n", path)
		return 1, nil
	}
	lines, err := s.scripts.Lines(path)
	if err != nil {
		fmt.Fprintf(s.stderr, "source: %v\n", err)
		return 1, nil
	}

	s.depth++
	defer func() { s.depth-- }()

	status := 0
	for _, line := range lines {
		status, err = s.Eval(line)
		if err != nil {
			return status, err
		}
	}
	return status, nil
}

func (s *service) launch(argv []string) int {
	name := argv[0]
	result, err := s.launcher.Launch(name, argv)
	if err == nil {
		s.logger.Printf("%s exited: %+v", name, result)
		return result.ExitCode
	}

	s.logger.Printf("launch %s: %v", name, err)
	if errors.Is(err, exec.ErrNotFound) {
		fmt.Fprintf(s.stdout, "Unknown command: %s\n", name)
		return StatusNotFound
	}
	fmt.Fprintf(s.stderr, "kzsh: %s: %v\n", name, launchReason(err))
	fmt.Fprintf(s.stdout, "Unknown command: %s\n", name)
	return StatusCannotExecute
}

// TrimLine strips the trailing line terminator. Applying it twice gives the
// same result as applying it once.
func TrimLine(line string) string {
	return strings.TrimRight(line, "\r\n")
}
