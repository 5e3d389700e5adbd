package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/kzsh/internal/core/ports"
	"github.com/AntonioJCosta/kzsh/internal/fsutil"
	"github.com/AntonioJCosta/kzsh/internal/repositories/config"
	"github.com/spf13/afero"
)

// configPath picks the config file: the flag, then $KZSH_CONFIG, then the
// per-user default.
func configPath(flag string, env ports.Environment) string {
	if flag != "" {
		return fsutil.ExpandHome(flag, env.Getenv("HOME"))
	}
	if p := env.Getenv(config.EnvConfigPath); p != "" {
		return fsutil.ExpandHome(p, env.Getenv("HOME"))
	}
	return config.DefaultPath(env.Getenv("HOME"))
}

// loadConfig reads the config file. A broken file is reported and the
// defaults are used so the shell still starts.
func loadConfig(fsys afero.Fs, path string, stderr io.Writer) *config.Config {
	cfg, err := config.Load(fsys, path)
	if err != nil {
		fmt.Fprintf(stderr, "kzsh: %v; using defaults\n", err)
		return config.Default()
	}
	return cfg
}

// strictConfig is loadConfig for subcommands, which fail instead.
func strictConfig(fsys afero.Fs, path string) (*config.Config, error) {
	cfg, err := config.Load(fsys, path)
	if err != nil {
		return nil, &exitStatusError{status: 1, err: err}
	}
	return cfg, nil
}
