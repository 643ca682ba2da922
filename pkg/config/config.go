// Package config loads the optional weft.yaml project configuration.
//
// Configuration supplements what component types declare in code: per-tag
// required reference slots consulted by the ref tracker, and extra event
// types the delegation router should track beyond its built-in set.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/go-weft/weft/pkg/errors"
)

// Config represents the optional weft.yaml configuration.
type Config struct {
	Components map[string]ComponentConfig `yaml:"components"`
	Router     RouterConfig               `yaml:"router"`
}

// ComponentConfig contains per-tag component settings.
type ComponentConfig struct {
	RequiredRefs []string `yaml:"required_refs,omitempty"`
}

// RouterConfig contains delegation router settings.
type RouterConfig struct {
	ExtraEvents []string `yaml:"extra_events,omitempty"`
}

// Parse reads a configuration from yaml bytes.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &errors.WeftError{
			Op:   "config.parse",
			Kind: errors.KindParsing,
			Err:  err,
		}
	}
	return &cfg, nil
}

// LoadOptional reads weft.yaml from dir if present. A missing file yields
// an empty configuration, not an error.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "weft.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read weft.yaml: %w", err)
	}
	return Parse(data)
}

var (
	mu     sync.RWMutex
	active = &Config{}
)

// Apply installs cfg as the process-wide configuration. Pass nil to reset
// to an empty configuration.
func Apply(cfg *Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg == nil {
		active = &Config{}
	} else {
		active = cfg
	}
}

// RequiredRefs returns the configured required reference slots for a
// component tag, or nil.
func RequiredRefs(tag string) []string {
	mu.RLock()
	defer mu.RUnlock()
	if c, ok := active.Components[strings.ToLower(tag)]; ok {
		return c.RequiredRefs
	}
	return nil
}

// ExtraEvents returns additional event types the router should delegate.
func ExtraEvents() []string {
	mu.RLock()
	defer mu.RUnlock()
	return active.Router.ExtraEvents
}
