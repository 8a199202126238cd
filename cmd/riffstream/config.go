// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Config represents the riffstream configuration file
// (~/.config/riffstream/config.yaml). Pointer fields distinguish "not set"
// from zero values.
type Config struct {
	OutputFormat string `yaml:"output_format"`
	BufferMin    *int   `yaml:"buffer_min"`
	BufferMax    *int   `yaml:"buffer_max"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
}

func configPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "riffstream", "config.yaml")
}

// LoadConfig reads the config file at path. A missing file yields a zero
// Config.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, errors.WithStack(err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parsing config %q", path)
	}
	return cfg, nil
}

// applyConfig applies config file defaults to the global flags that were
// not set explicitly.
func (g *globals) applyConfig(c *cli.Command, cfg Config) {
	if cfg.LogLevel != "" && !c.IsSet("log-level") {
		g.logLevel = cfg.LogLevel
	}
	if cfg.LogFormat != "" && !c.IsSet("log-format") {
		g.logFormat = cfg.LogFormat
	}
	if cfg.BufferMin != nil && !c.IsSet("buffer-min") {
		g.bufferMin = *cfg.BufferMin
	}
	if cfg.BufferMax != nil && !c.IsSet("buffer-max") {
		g.bufferMax = *cfg.BufferMax
	}
	g.outputFormat = cfg.OutputFormat
}
