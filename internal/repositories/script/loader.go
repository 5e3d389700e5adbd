package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/kzsh/internal/core/ports"
	"github.com/spf13/afero"
)

// ErrNotFound is returned when a script file does not exist.
var ErrNotFound = errors.New("no such file or directory")

// FileLoader reads script files from a filesystem.
type FileLoader struct {
	fs afero.Fs
}

// NewFileLoader creates a loader over fsys. It panics if fsys is nil.
func NewFileLoader(fsys afero.Fs) ports.ScriptLoader {
	if fsys == nil {
		panic("filesystem cannot be nil")
	}
	return &FileLoader{fs: fsys}
}

// Lines implements ports.ScriptLoader.
func (l *FileLoader) Lines(path string) ([]string, error) {
	file, err := l.fs.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	// Lines of any length are read whole; the tokenizer truncates them.
	var lines []string
	r := bufio.NewReader(file)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}
}

// RCPath returns the rc file path for home, or "" when home is unknown.
func RCPath(home, name string) string {
	if home == "" || name == "" {
		return ""
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(home, name)
}
