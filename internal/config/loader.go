package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"multibundle-mapper/internal/mapper"
)

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields and pushes
// top-level settings down to targets that don't override them.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Targets {
		t := &f.Targets[i]
		if t.Prefix == nil {
			prefix := f.Prefix
			t.Prefix = &prefix
		}

		if t.Strict == nil {
			strict := f.Strict
			t.Strict = &strict
		}

		if t.ConfigFunc == "" {
			t.ConfigFunc = f.ConfigFunc
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// Sample returns a config listing one target per format.
func Sample() *File {
	return &File{
		Version: "1",
		Prefix:  "http://static.company-cdn.com/javascript/",
		Targets: []Target{
			{Format: mapper.FormatJSON.String(), Output: "config/local.json"},
			{Format: mapper.FormatJS.String(), Output: "public/js/config.js"},
			{Format: mapper.FormatHTML.String(), Output: "views/layout.html"},
		},
	}
}

// NewMapper builds the Mapper described by t. The target should have passed
// Validate.
func (t Target) NewMapper(logger *zap.Logger, extra ...mapper.Option) (*mapper.Mapper, error) {
	format, err := mapper.ParseFormat(t.Format)
	if err != nil {
		return nil, &mapper.ConfigurationError{Field: "format", Reason: err.Error()}
	}

	opts := []mapper.Option{mapper.WithLogger(logger)}

	if t.Prefix != nil {
		opts = append(opts, mapper.WithPrefix(*t.Prefix))
	}

	if t.Strict != nil {
		opts = append(opts, mapper.WithStrictMarkers(*t.Strict))
	}

	if t.ConfigFunc != "" {
		opts = append(opts, mapper.WithConfigFunc(t.ConfigFunc))
	}

	if t.Markers != nil {
		opts = append(opts, mapper.WithMarkers(*t.Markers))
	}

	return mapper.New(format, t.Output, append(opts, extra...)...)
}
