// Released under an MIT license. See LICENSE.

// Package config loads jsi's settings.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// T (config) holds the settings read from a configuration file.
type T struct {
	History  string `yaml:"history"`
	LogLevel string `yaml:"log-level"`
	MaxDepth int    `yaml:"max-depth"`
	MaxSteps int64  `yaml:"max-steps"`
	Strict   bool   `yaml:"strict"`
}

// Default returns the settings used when there is no configuration file.
func Default() *T {
	return &T{
		History:  filepath.Join(xdg.DataHome, "jsi", "history"),
		LogLevel: "warning",
		MaxDepth: 10000,
	}
}

// Path returns the default location of the configuration file.
func Path() string {
	return filepath.Join(xdg.ConfigHome, "jsi", "config.yaml")
}

// Load reads the configuration file at path, or the default location if
// path is empty. A missing file at the default location is not an error.
func Load(path string) (*T, error) {
	explicit := path != ""
	if !explicit {
		path = Path()
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}

		return nil, errors.Wrapf(err, "reading %s", path)
	}

	c, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}

	return c, nil
}

// Parse reads settings from the YAML document b. Settings not in b keep
// their default values.
func Parse(b []byte) (*T, error) {
	c := Default()

	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errors.Wrap(err, "parsing configuration")
	}

	if c.MaxDepth < 0 || c.MaxSteps < 0 {
		return nil, errors.New("limits cannot be negative")
	}

	if _, err := c.Level(); err != nil {
		return nil, err
	}

	return c, nil
}

// Level returns the configured log level.
func (c *T) Level() (logrus.Level, error) {
	l, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return l, errors.Wrap(err, "log-level")
	}

	return l, nil
}
