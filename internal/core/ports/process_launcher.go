package ports

import "github.com/AntonioJCosta/kzsh/internal/core/domain/process"

// ProcessLauncher defines an interface for running external programs.
type ProcessLauncher interface {
	// Launch runs program with argv (argv[0] included) and waits for it.
	// A non-nil error means no process was created.
	Launch(program string, argv []string) (process.Result, error)
	// LookPath resolves program the way Launch would.
	LookPath(program string) (string, error)
}
