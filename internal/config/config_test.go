package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 0.90, cfg.Thresholds.High)
	assert.Equal(t, 0.60, cfg.Thresholds.Moderate)
	assert.Equal(t, 0.30, cfg.Thresholds.Low)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.False(t, cfg.Output.ShowDetails)
	assert.Contains(t, cfg.Compare.Extensions, ".c")
	assert.False(t, cfg.Compare.GateEnabled())
	assert.Equal(t, 5000, cfg.Generator.Functions)
	assert.Equal(t, 100, cfg.Generator.MainCalls)

	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid default",
			mutate: func(c *Config) {},
		},
		{
			name:    "high threshold out of range",
			mutate:  func(c *Config) { c.Thresholds.High = 1.5 },
			wantErr: "between 0.0 and 1.0",
		},
		{
			name: "high not above moderate",
			mutate: func(c *Config) {
				c.Thresholds.High = 0.5
				c.Thresholds.Moderate = 0.5
			},
			wantErr: "must be greater than",
		},
		{
			name: "moderate not above low",
			mutate: func(c *Config) {
				c.Thresholds.Moderate = 0.2
			},
			wantErr: "must be greater than",
		},
		{
			name:    "gate above one",
			mutate:  func(c *Config) { c.Compare.FailAbove = 1.2 },
			wantErr: "fail_above",
		},
		{
			name:    "negative input limit",
			mutate:  func(c *Config) { c.Compare.MaxInputBytes = -1 },
			wantErr: "max_input_bytes",
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: "invalid output format",
		},
		{
			name:    "zero generator functions",
			mutate:  func(c *Config) { c.Generator.Functions = 0 },
			wantErr: "generator.functions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadConfigMissingPathReturnsDefaults(t *testing.T) {
	// Run from an empty directory so no discovered config interferes.
	tmpDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	defer func() { _ = os.Chdir(oldWd) }()

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigNonexistentFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "no-such.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "csim.yaml")

	content := `
thresholds:
  high: 0.95
  moderate: 0.70
  low: 0.40
output:
  format: json
  show_details: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	cfg, err := LoadConfig(configPath)
	require.NoError(t, err)

	assert.Equal(t, 0.95, cfg.Thresholds.High)
	assert.Equal(t, 0.70, cfg.Thresholds.Moderate)
	assert.Equal(t, 0.40, cfg.Thresholds.Low)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Output.ShowDetails)

	// Untouched sections keep their defaults.
	assert.Equal(t, DefaultConfig().Generator, cfg.Generator)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "csim.yaml")

	content := `
thresholds:
  high: 0.2
  moderate: 0.6
  low: 0.3
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	_, err := LoadConfig(configPath)
	assert.Error(t, err)
}

func TestSaveAndReloadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "saved.yaml")

	cfg := DefaultConfig()
	cfg.Thresholds.High = 0.99
	cfg.Output.Format = "yaml"

	require.NoError(t, SaveConfig(cfg, configPath))

	loaded, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, 0.99, loaded.Thresholds.High)
	assert.Equal(t, "yaml", loaded.Output.Format)
}
