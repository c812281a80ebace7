// Package config loads jsontoon CLI settings from YAML or TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/uareke/jsontoon/toon"
)

// DefaultRootName is used when no root block name is configured.
const DefaultRootName = "data"

// DefaultIndent is the JSON output indentation.
const DefaultIndent = "  "

// Format is a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Config holds CLI settings. Flags override file values.
type Config struct {
	// RootName names the root block when encoding.
	RootName string `yaml:"root_name" toml:"root_name"`
	// ForeignKey fixes the relation key of child blocks. Empty means
	// the singular form of RootName plus "_id".
	ForeignKey string `yaml:"foreign_key" toml:"foreign_key"`
	// Strict fails decoding on child blocks that cannot be attached.
	Strict bool `yaml:"strict" toml:"strict"`
	// Indent is the JSON indentation used when decoding.
	Indent *string `yaml:"indent" toml:"indent"`
	// Gzip compresses command output.
	Gzip bool `yaml:"gzip" toml:"gzip"`
}

// Default returns a Config with defaults applied.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)
	return c
}

// FormatFromPath picks the file format from the extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported config file extension: %q", filepath.Ext(path))
	}
}

// LoadFile loads and parses a configuration file.
func LoadFile(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data, format)
}

// Parse parses configuration data in the given format.
func Parse(data []byte, format Format) (*Config, error) {
	var c Config

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &c); err != nil {
			return nil, fmt.Errorf("failed to parse config TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config format %q", format)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.RootName == "" {
		c.RootName = DefaultRootName
	}
	if c.Indent == nil {
		indent := DefaultIndent
		c.Indent = &indent
	}
}

// Validate checks that names can be written into a document.
func (c *Config) Validate() error {
	if !toon.ValidName(c.RootName) {
		return toon.ErrInvalidName.New(c.RootName)
	}
	if c.ForeignKey != "" && !toon.ValidForeignKey(c.ForeignKey) {
		return toon.ErrInvalidForeignKey.New(c.ForeignKey)
	}
	return nil
}

// IndentString returns the configured JSON indentation.
func (c *Config) IndentString() string {
	if c.Indent == nil {
		return DefaultIndent
	}
	return *c.Indent
}

// EncodeOptions returns document encoding options for this config.
func (c *Config) EncodeOptions(log logrus.FieldLogger) toon.EncodeOptions {
	opts := toon.DefaultEncodeOptions()
	opts.Logger = log
	if c.ForeignKey != "" {
		opts.RelationNamer = toon.FixedForeignKey(c.ForeignKey)
	}
	return opts
}

// DecodeOptions returns document decoding options for this config.
func (c *Config) DecodeOptions(log logrus.FieldLogger) toon.DecodeOptions {
	opts := toon.DefaultDecodeOptions()
	if c.Strict {
		opts.Policy = toon.Strict
	}
	opts.Logger = log
	return opts
}
