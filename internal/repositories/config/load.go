package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the variable that overrides the config file location.
const EnvConfigPath = "KZSH_CONFIG"

// DefaultPath returns $HOME/.config/kzsh/config.yaml, or "" without a home.
func DefaultPath(home string) string {
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config", "kzsh", "config.yaml")
}

// Load reads the configuration at path. A missing or empty file yields the
// defaults; unknown keys and invalid values are errors.
func Load(fsys afero.Fs, path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if len(data) == 0 {
		return cfg, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		// A file holding only comments decodes to io.EOF.
		if errors.Is(err, io.EOF) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}
