package osenv

import (
	"os"

	"github.com/AntonioJCosta/kzsh/internal/core/ports"
)

// OSEnvironment implements ports.Environment on the process environment, so
// every change is inherited by child processes.
type OSEnvironment struct{}

// NewOSEnvironment creates a new OSEnvironment.
func NewOSEnvironment() ports.Environment {
	return &OSEnvironment{}
}

func (*OSEnvironment) Getenv(key string) string { return os.Getenv(key) }

func (*OSEnvironment) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

func (*OSEnvironment) Setenv(key, value string) error { return os.Setenv(key, value) }

func (*OSEnvironment) Unsetenv(key string) error { return os.Unsetenv(key) }

func (*OSEnvironment) Environ() []string { return os.Environ() }
