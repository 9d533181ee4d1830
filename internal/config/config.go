package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColorMode controls diagnostic colouring.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config represents the elz.yaml project configuration.
type Config struct {
	// IntrinsicTypes lists class names supplied by the backend
	// (e.g. "int", "List"). Declarations of these classes are checked
	// but never lowered. Defaults to DefaultIntrinsicTypes.
	IntrinsicTypes []string `yaml:"intrinsic_types,omitempty"`

	// ReceiverName is the name of the leading parameter added to
	// instance methods during lowering. Defaults to "self".
	ReceiverName string `yaml:"receiver_name,omitempty"`

	// Color selects diagnostic colouring: auto, always or never.
	Color ColorMode `yaml:"color,omitempty"`
}

// Default returns the configuration used when no elz.yaml is present.
func Default() Config {
	intrinsics := make([]string, len(DefaultIntrinsicTypes))
	copy(intrinsics, DefaultIntrinsicTypes)
	return Config{
		IntrinsicTypes: intrinsics,
		ReceiverName:   DefaultReceiverName,
		Color:          ColorAuto,
	}
}

// IsIntrinsicType reports whether name is reserved by the backend.
func (c Config) IsIntrinsicType(name string) bool {
	for _, n := range c.IntrinsicTypes {
		if n == name {
			return true
		}
	}
	return false
}

// LoadConfig reads and parses an elz.yaml file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses elz.yaml content; missing keys take default values.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (Config, error) {
	var raw Config
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg := Default()
	if raw.IntrinsicTypes != nil {
		cfg.IntrinsicTypes = raw.IntrinsicTypes
	}
	if raw.ReceiverName != "" {
		cfg.ReceiverName = raw.ReceiverName
	}
	if raw.Color != "" {
		cfg.Color = raw.Color
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for semantic errors.
func (c Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color: unknown mode %q (want auto, always or never)", c.Color)
	}

	if !isIdentifier(c.ReceiverName) {
		return fmt.Errorf("receiver_name: %q is not an identifier", c.ReceiverName)
	}

	seen := make(map[string]bool, len(c.IntrinsicTypes))
	for i, name := range c.IntrinsicTypes {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("intrinsic_types[%d]: empty name", i)
		}
		if seen[name] {
			return fmt.Errorf("intrinsic_types[%d]: duplicate name %q", i, name)
		}
		seen[name] = true
	}
	return nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
