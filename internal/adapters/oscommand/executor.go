package oscommand

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/AntonioJCosta/kzsh/internal/core/domain/process"
	"github.com/AntonioJCosta/kzsh/internal/core/ports"
	"golang.org/x/sys/unix"
)

// LaunchError reports that a program could not be started. No process exists
// when it is returned.
type LaunchError struct {
	Program string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Program, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// OSProcessLauncher implements the ProcessLauncher interface with os/exec.
type OSProcessLauncher struct {
	env    ports.Environment
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewOSProcessLauncher creates a launcher whose children inherit the shell's
// standard streams and env. It panics if env is nil.
func NewOSProcessLauncher(env ports.Environment) ports.ProcessLauncher {
	return NewOSProcessLauncherWithIO(env, os.Stdin, os.Stdout, os.Stderr)
}

// NewOSProcessLauncherWithIO is like NewOSProcessLauncher with explicit
// streams.
func NewOSProcessLauncherWithIO(env ports.Environment, stdin io.Reader, stdout, stderr io.Writer) ports.ProcessLauncher {
	if env == nil {
		panic("environment cannot be nil")
	}
	return &OSProcessLauncher{env: env, stdin: stdin, stdout: stdout, stderr: stderr}
}

// LookPath resolves program against PATH as seen through the environment.
func (l *OSProcessLauncher) LookPath(program string) (string, error) {
	path, err := lookPath(program, l.env.Getenv("PATH"))
	if err != nil {
		return "", &LaunchError{Program: program, Err: err}
	}
	return path, nil
}

// Launch runs program and blocks until it terminates.
func (l *OSProcessLauncher) Launch(program string, argv []string) (process.Result, error) {
	path, err := l.LookPath(program)
	if err != nil {
		return process.Result{}, err
	}

	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Env:    l.env.Environ(),
		Stdin:  l.stdin,
		Stdout: l.stdout,
		Stderr: l.stderr,
	}
	if err := cmd.Start(); err != nil {
		return process.Result{}, &LaunchError{Program: program, Err: unwrapPathError(err)}
	}

	// A non-zero status also comes back as an error; the status itself is
	// read from ProcessState.
	_ = cmd.Wait()
	return resultFromState(cmd.ProcessState), nil
}

func resultFromState(state *os.ProcessState) process.Result {
	if state == nil {
		return process.Result{ExitCode: process.AbnormalExit}
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return process.Result{
			ExitCode:           process.AbnormalExit,
			TerminatedNormally: false,
			Signal:             unix.SignalName(ws.Signal()),
		}
	}
	return process.Result{ExitCode: state.ExitCode(), TerminatedNormally: true}
}

func unwrapPathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
