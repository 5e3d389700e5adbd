package config

import (
	"reflect"
	"strings"

	"github.com/AntonioJCosta/kzsh/internal/core/domain/alias"
	"github.com/AntonioJCosta/kzsh/internal/core/ports"
	"github.com/go-playground/validator/v10"
)

// Colour modes for the prompt.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the shell's tunables, read from a YAML file.
type Config struct {
	HistoryCapacity  int           `yaml:"history_capacity" validate:"gte=1,lte=100000"`
	AliasCapacity    int           `yaml:"alias_capacity" validate:"gte=1,lte=10000"`
	MaxLineBytes     int           `yaml:"max_line_bytes" validate:"gte=1"`
	MaxArgs          int           `yaml:"max_args" validate:"gte=1"`
	SourceDepthLimit int           `yaml:"source_depth_limit" validate:"gte=1,lte=1000"`
	RCFile           string        `yaml:"rc_file" validate:"required"`
	HistoryFile      string        `yaml:"history_file"`
	Prompt           string        `yaml:"prompt"`
	Color            string        `yaml:"color" validate:"oneof=auto always never"`
	Aliases          []alias.Alias `yaml:"aliases"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		HistoryCapacity:  100,
		AliasCapacity:    100,
		MaxLineBytes:     511,
		MaxArgs:          31,
		SourceDepthLimit: 16,
		RCFile:           ".kshrc",
		Color:            ColorAuto,
	}
}

// Validate the configuration for basic semantic errors.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	})
	return validate.Struct(c)
}

// PredefinedAliases implements ports.PredefinedAliasProvider.
func (c *Config) PredefinedAliases() []alias.Alias {
	return c.Aliases
}

var _ ports.PredefinedAliasProvider = (*Config)(nil)
