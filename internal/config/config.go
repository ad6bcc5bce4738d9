// Package config loads settings for the calculator command.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/calculator"
)

// Config is the configuration of the calculator command.
type Config struct {
	// Prompt is printed before each line read from a terminal.
	Prompt string `toml:"prompt" yaml:"prompt"`
	// Format is the fmt verb used to print results.
	Format string `toml:"format" yaml:"format"`
	// LogLevel is a zerolog level name.
	LogLevel string `toml:"log_level" yaml:"log_level"`
	// Legacy selects LegacySubstitution.
	Legacy bool `toml:"legacy" yaml:"legacy"`
	// Tolerant selects Tolerant.
	Tolerant bool `toml:"tolerant" yaml:"tolerant"`
	// RightPow selects RightAssociativePow.
	RightPow bool `toml:"right_pow" yaml:"right_pow"`
	// Constants are extra named constants, substituted after pi and e.
	Constants map[string]float64 `toml:"constants" yaml:"constants"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Prompt:   "Enter expression or command: ",
		Format:   "%v",
		LogLevel: "warn",
	}
}

// Load reads a configuration file over the defaults. The format is chosen by
// the file extension: .toml, or .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		if u := md.Undecoded(); len(u) > 0 {
			return Config{}, fmt.Errorf("reading config %s: unknown keys %v", path, u)
		}
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		defer f.Close()
		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		// An empty document leaves the defaults.
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("reading config %s: unsupported format %q", path, filepath.Ext(path))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if !strings.Contains(c.Format, "%") {
		return fmt.Errorf("format %q has no verb", c.Format)
	}
	for _, name := range c.constantNames() {
		k := calculator.Constant{Name: name, Value: c.Constants[name]}
		if err := k.Validate(); err != nil {
			return err
		}
		for _, d := range calculator.DefaultConstants() {
			if name == d.Name {
				return fmt.Errorf("constant %s cannot be redefined", name)
			}
		}
	}
	return nil
}

// Level returns the configured log level, or warn if it is invalid.
func (c Config) Level() zerolog.Level {
	l, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.WarnLevel
	}
	return l
}

// Options converts the configuration to engine options.
func (c Config) Options(log zerolog.Logger) []calculator.Option {
	consts := calculator.DefaultConstants()
	for _, k := range c.constantNames() {
		consts = append(consts, calculator.Constant{Name: k, Value: c.Constants[k]})
	}
	opts := []calculator.Option{
		calculator.WithConstants(consts...),
		calculator.WithLogger(log),
	}
	if c.Legacy {
		opts = append(opts, calculator.LegacySubstitution())
	}
	if c.Tolerant {
		opts = append(opts, calculator.Tolerant())
	}
	if c.RightPow {
		opts = append(opts, calculator.RightAssociativePow())
	}
	return opts
}

// constantNames returns the names of the extra constants, longest first so
// that no name is rewritten inside a longer one, then alphabetically.
func (c Config) constantNames() []string {
	names := make([]string, 0, len(c.Constants))
	for k := range c.Constants {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	return names
}
