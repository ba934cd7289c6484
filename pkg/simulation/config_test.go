package simulation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.NoError(t, cfg.Settings().Validate())
	assert.Equal(t, 1280.0, cfg.Viewport().Width)
	assert.Equal(t, 720.0, cfg.Viewport().Height)
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
		"viewportWidth": 800,
		"viewportHeight": 600,
		"numBirdsMin": 3,
		"numBirdsMax": 3,
		"seed": 42
	}`)

	cfg, err := LoadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, 800.0, cfg.ViewportWidth)
	assert.Equal(t, 3, cfg.NumBirdsMax)
	assert.Equal(t, uint64(42), cfg.Seed)
	// keys missing from the file keep their default
	assert.Equal(t, DefaultConfig().SpeedDecay, cfg.SpeedDecay)
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "escapeSpeed: 6\ndisplayTextBox: false\n")

	cfg, err := LoadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, 6.0, cfg.EscapeSpeed)
	assert.False(t, cfg.DisplayTextBox)
	assert.Equal(t, DefaultConfig().NumBirdsMin, cfg.NumBirdsMin)
}

func TestLoadConfig_EmptyYAMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "empty.yml", "")

	cfg, err := LoadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unknown key", "c.json", `{"wingColor": "red"}`},
		{"decay above one", "c.json", `{"speedDecay": 1.5}`},
		{"wrong type", "c.yaml", "numBirdsMax: many\n"},
		{"malformed json", "c.json", `{"seed": `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, tt.file, tt.content), "")
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_CrossFieldValidation(t *testing.T) {
	path := writeFile(t, "config.json", `{"sizeMin": 0.9, "sizeMax": 0.3}`)

	_, err := LoadConfig(path, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"), "")
	assert.Error(t, err)
}

func TestLoadConfig_ExternalSchema(t *testing.T) {
	schema := writeFile(t, "schema.json", `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"properties": {"seed": {"type": "integer", "maximum": 10}}
	}`)

	_, err := LoadConfig(writeFile(t, "ok.json", `{"seed": 7}`), schema)
	require.NoError(t, err)

	_, err = LoadConfig(writeFile(t, "ko.json", `{"seed": 11}`), schema)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty viewport", func(c *Config) { c.ViewportWidth = 0 }},
		{"bird count inverted", func(c *Config) { c.NumBirdsMin, c.NumBirdsMax = 5, 4 }},
		{"speed range inverted", func(c *Config) { c.SpeedMin, c.SpeedMax = 2, 1 }},
		{"zero size", func(c *Config) { c.SizeMin = 0 }},
		{"text box too wide", func(c *Config) { c.TextBoxWidthRatio = 1.2 }},
		{"bad steering setting", func(c *Config) { c.FramesPerSecond = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestConfig_SaveYAMLRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1234
	cfg.NumBirdsMax = 12
	path := filepath.Join(t.TempDir(), "saved.yaml")

	require.NoError(t, cfg.SaveYAML(path))
	loaded, err := LoadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
