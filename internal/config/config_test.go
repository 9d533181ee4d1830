package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultReceiverName, cfg.ReceiverName)
	assert.Equal(t, ColorAuto, cfg.Color)
	for _, name := range []string{"void", "int", "f64", "bool", "_c_string", "List"} {
		assert.True(t, cfg.IsIntrinsicType(name), name)
	}
	assert.False(t, cfg.IsIntrinsicType("string"))
	assert.False(t, cfg.IsIntrinsicType("Foo"))

	// Callers must not be able to corrupt the package defaults.
	cfg.IntrinsicTypes[0] = "changed"
	assert.Equal(t, VoidTypeName, DefaultIntrinsicTypes[0])
}

func TestParseConfigMergesDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("receiver_name: this\n"), "elz.yaml")
	require.NoError(t, err)
	assert.Equal(t, "this", cfg.ReceiverName)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.True(t, cfg.IsIntrinsicType("List"))
}

func TestParseConfigOverridesIntrinsics(t *testing.T) {
	data := []byte(`
intrinsic_types: [int, Vec]
color: never
`)
	cfg, err := ParseConfig(data, "elz.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"int", "Vec"}, cfg.IntrinsicTypes)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.False(t, cfg.IsIntrinsicType("List"))
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "color: [", "parsing config"},
		{"bad color", "color: sometimes", "unknown mode"},
		{"bad receiver", "receiver_name: 1self", "not an identifier"},
		{"empty intrinsic", "intrinsic_types: [int, '']", "empty name"},
		{"duplicate intrinsic", "intrinsic_types: [int, int]", "duplicate name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data), "elz.yaml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ProjectFileName)
	require.NoError(t, os.WriteFile(path, []byte("color: always\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ColorAlways, cfg.Color)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}
