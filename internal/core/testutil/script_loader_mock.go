package testutil

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/kzsh/internal/core/ports"
)

// MockScriptLoader serves script lines from a map keyed by path.
type MockScriptLoader struct {
	Files map[string][]string
	// Loads records every requested path.
	Loads []string
}

// Lines implements ports.ScriptLoader. Unknown paths report os.ErrNotExist.
func (m *MockScriptLoader) Lines(path string) ([]string, error) {
	m.Loads = append(m.Loads, path)
	lines, ok := m.Files[path]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, os.ErrNotExist)
	}
	return lines, nil
}

var _ ports.ScriptLoader = (*MockScriptLoader)(nil)
