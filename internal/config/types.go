package config

import (
	"multibundle-mapper/internal/bundle"
)

// File is the root configuration document.
type File struct {
	Version    string   `yaml:"version"`
	Prefix     string   `yaml:"prefix,omitempty"`
	Strict     bool     `yaml:"strict,omitempty"`
	ConfigFunc string   `yaml:"config_func,omitempty"`
	Targets    []Target `yaml:"targets"`
}

// Target describes one output file.
type Target struct {
	Format     string          `yaml:"format"`
	Output     string          `yaml:"output"`
	Prefix     *string         `yaml:"prefix,omitempty"`
	Strict     *bool           `yaml:"strict,omitempty"`
	ConfigFunc string          `yaml:"config_func,omitempty"`
	Markers    *bundle.Markers `yaml:"markers,omitempty"`
}
