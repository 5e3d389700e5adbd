package testutil

import (
	"errors"

	"github.com/AntonioJCosta/kzsh/internal/core/domain/process"
	"github.com/AntonioJCosta/kzsh/internal/core/ports"
)

// MockProcessLauncher is a mock implementation of ports.ProcessLauncher.
type MockProcessLauncher struct {
	LaunchFunc   func(program string, argv []string) (process.Result, error)
	LookPathFunc func(program string) (string, error)
	// LaunchCalls records the argv of every Launch call.
	LaunchCalls [][]string
}

// Launch records the call and delegates to LaunchFunc.
func (m *MockProcessLauncher) Launch(program string, argv []string) (process.Result, error) {
	m.LaunchCalls = append(m.LaunchCalls, append([]string(nil), argv...))
	if m.LaunchFunc != nil {
		return m.LaunchFunc(program, argv)
	}
	return process.Result{}, errors.New("MockProcessLauncher.LaunchFunc not implemented")
}

// LookPath delegates to LookPathFunc.
func (m *MockProcessLauncher) LookPath(program string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(program)
	}
	return "", errors.New("MockProcessLauncher.LookPathFunc not implemented")
}

var _ ports.ProcessLauncher = (*MockProcessLauncher)(nil)
