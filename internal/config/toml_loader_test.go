package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeToml(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ".csim.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTomlLoaderDefaultsWhenNoFile(t *testing.T) {
	loader := NewTomlConfigLoader()

	cfg, err := loader.LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestTomlLoaderMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	writeToml(t, dir, `
[compare]
extensions = [".c"]
fail_above = 0.85

[thresholds]
high = 0.92

[output]
format = "csv"
show_details = true

[generator]
functions = 10
seed = 42
`)

	cfg, err := NewTomlConfigLoader().LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{".c"}, cfg.Compare.Extensions)
	assert.Equal(t, 0.85, cfg.Compare.FailAbove)
	assert.True(t, cfg.Compare.GateEnabled())
	assert.Equal(t, 0.92, cfg.Thresholds.High)
	assert.Equal(t, "csv", cfg.Output.Format)
	assert.True(t, cfg.Output.ShowDetails)
	assert.Equal(t, 10, cfg.Generator.Functions)
	assert.Equal(t, int64(42), cfg.Generator.Seed)

	// Unset keys keep defaults.
	assert.Equal(t, 0.60, cfg.Thresholds.Moderate)
	assert.Equal(t, 100, cfg.Generator.MainCalls)
}

func TestTomlLoaderExplicitFalseOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	writeToml(t, dir, `
[output]
show_details = false
`)

	cfg, err := NewTomlConfigLoader().LoadConfig(dir)
	require.NoError(t, err)
	assert.False(t, cfg.Output.ShowDetails)
}

func TestTomlLoaderZeroValueIsRespected(t *testing.T) {
	// A pointer field set to zero must not be treated as unset.
	dir := t.TempDir()
	writeToml(t, dir, `
[generator]
main_calls = 0
`)

	cfg, err := NewTomlConfigLoader().LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Generator.MainCalls)
}

func TestTomlLoaderWalksUpDirectoryTree(t *testing.T) {
	root := t.TempDir()
	writeToml(t, root, `
[thresholds]
high = 0.93
`)

	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0755))

	cfg, err := NewTomlConfigLoader().LoadConfig(nested)
	require.NoError(t, err)
	assert.Equal(t, 0.93, cfg.Thresholds.High)
}

func TestTomlLoaderInvalidTomlFails(t *testing.T) {
	dir := t.TempDir()
	writeToml(t, dir, `thresholds = "not a table`)

	_, err := NewTomlConfigLoader().LoadConfig(dir)
	assert.Error(t, err)
}

func TestTomlLoaderInvalidValuesFail(t *testing.T) {
	dir := t.TempDir()
	writeToml(t, dir, `
[thresholds]
high = 0.1
`)

	_, err := NewTomlConfigLoader().LoadConfig(dir)
	assert.Error(t, err)
}

func TestDefaultConfigTOMLIsAllCommented(t *testing.T) {
	// The generated template must change nothing until edited.
	dir := t.TempDir()
	writeToml(t, dir, DefaultConfigTOML)

	cfg, err := NewTomlConfigLoader().LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}
