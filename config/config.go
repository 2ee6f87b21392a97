// Package config loads declarative plugin class descriptions from YAML.
//
// A class description names the class and declares its endpoints up
// front, so host glue can materialize an object without hand-writing the
// AddIn/AddOut sequence for every class. Descriptions are validated on
// load; an invalid file is rejected whole rather than partially applied.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mipi54/flext/errors"
	"github.com/mipi54/flext/host"
)

// XletConfig declares one endpoint of a class.
type XletConfig struct {
	Kind        string `yaml:"kind"`
	Description string `yaml:"description,omitempty"`
}

// ClassConfig is the declarative description of one plugin class.
type ClassConfig struct {
	Name       string       `yaml:"name"`
	Inlets     []XletConfig `yaml:"inlets,omitempty"`
	Outlets    []XletConfig `yaml:"outlets,omitempty"`
	Distribute bool         `yaml:"distribute,omitempty"`
}

// Config is the root of a class description file.
type Config struct {
	Version string        `yaml:"version"`
	Classes []ClassConfig `yaml:"classes"`
}

var kindNames = map[string]host.Kind{
	"bang":   host.KindSymbol,
	"float":  host.KindFloat,
	"int":    host.KindInt,
	"symbol": host.KindSymbol,
	"list":   host.KindList,
	"signal": host.KindSignal,
	"any":    host.KindAny,
}

// ResolveKind maps a declared kind name to its host kind. A bang
// endpoint resolves to the symbol kind, matching how bang endpoints are
// declared programmatically.
func ResolveKind(name string) (host.Kind, bool) {
	k, ok := kindNames[name]
	return k, ok
}

// Load parses and validates a class description document.
func Load(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapInvalid(err, "Config", "Load", "YAML parsing")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads and parses a class description file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Config", "LoadFile", "file reading")
	}
	return Load(data)
}

// Validate checks the whole document: every class must be named, names
// must be unique within the document, and every declared endpoint kind
// must be known.
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Classes))
	for _, cc := range c.Classes {
		if cc.Name == "" {
			return errors.WrapInvalid(errors.ErrMissingConfig, "Config", "Validate", "class name check")
		}
		if seen[cc.Name] {
			return errors.WrapInvalid(errors.ErrDuplicateClass, "Config", "Validate", "class uniqueness check")
		}
		seen[cc.Name] = true
		if err := cc.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks one class description.
func (cc *ClassConfig) Validate() error {
	for _, x := range cc.Inlets {
		if _, ok := ResolveKind(x.Kind); !ok {
			return errors.WrapInvalid(errors.ErrInvalidXlet, "Config", "Validate", "inlet kind check")
		}
	}
	for _, x := range cc.Outlets {
		if _, ok := ResolveKind(x.Kind); !ok {
			return errors.WrapInvalid(errors.ErrInvalidXlet, "Config", "Validate", "outlet kind check")
		}
	}
	return nil
}

// Class returns the description for the named class, or nil.
func (c *Config) Class(name string) *ClassConfig {
	for i := range c.Classes {
		if c.Classes[i].Name == name {
			return &c.Classes[i]
		}
	}
	return nil
}
