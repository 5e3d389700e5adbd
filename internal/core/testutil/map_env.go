package testutil

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/kzsh/internal/core/ports"
)

// MapEnv implements an in-memory ports.Environment.
type MapEnv struct {
	env map[string]string
}

// NewMapEnv creates an environment holding the given NAME, value pairs.
func NewMapEnv(kv ...string) *MapEnv {
	m := &MapEnv{env: make(map[string]string)}
	for i := 0; i+1 < len(kv); i += 2 {
		m.env[kv[i]] = kv[i+1]
	}
	return m
}

// Getenv implements ports.Environment.
func (m *MapEnv) Getenv(key string) string {
	return m.env[key]
}

// LookupEnv implements ports.Environment.
func (m *MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m.env[key]
	return v, ok
}

// Setenv implements ports.Environment. Empty names are rejected like
// os.Setenv does.
func (m *MapEnv) Setenv(key, value string) error {
	if key == "" {
		return errors.New("setenv: invalid argument")
	}
	m.env[key] = value
	return nil
}

// Unsetenv implements ports.Environment.
func (m *MapEnv) Unsetenv(key string) error {
	delete(m.env, key)
	return nil
}

// Environ implements ports.Environment.
func (m *MapEnv) Environ() []string {
	out := make([]string, 0, len(m.env))
	for k, v := range m.env {
		out = append(out, fmt.Sprintf("%s=%s", k, v))
	}
	return out
}

var _ ports.Environment = (*MapEnv)(nil)
