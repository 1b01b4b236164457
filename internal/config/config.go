// Package config loads the optional pipeloop YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config is the file layout:
//
//	log:
//	  level: debug
//	  format: json
//	render:
//	  charset: box
//	  color: true
//	  output: loop.txt
type Config struct {
	Log    Log    `yaml:"log"`
	Render Render `yaml:"render"`
}

// Log selects the logger level and handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Render holds the defaults of the render command.
type Render struct {
	Charset string `yaml:"charset"`
	Color   bool   `yaml:"color"`
	// Output is a file path; empty means stdout.
	Output string `yaml:"output"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log:    Log{Level: "info", Format: "text"},
		Render: Render{Charset: "ascii"},
	}
}

// Load reads path over the defaults. An empty path or a missing file yields
// Default(); keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	if err := oneOf("log.level", c.Log.Level, "debug", "info", "warn", "error"); err != nil {
		return err
	}
	if err := oneOf("log.format", c.Log.Format, "text", "json"); err != nil {
		return err
	}
	return oneOf("render.charset", c.Render.Charset, "ascii", "box")
}

func oneOf(key, v string, allowed ...string) error {
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s=%q, want one of %s", ErrInvalid, key, v, strings.Join(allowed, "|"))
}
