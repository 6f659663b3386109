package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// CsimTomlConfig represents the structure of .csim.toml. Scalar fields that
// need explicit-unset detection are pointers so a zero in the file can be
// told apart from an absent key.
type CsimTomlConfig struct {
	Compare    CsimTomlCompareConfig   `toml:"compare"`
	Thresholds CsimTomlThresholdConfig `toml:"thresholds"`
	Output     CsimTomlOutputConfig    `toml:"output"`
	Generator  CsimTomlGeneratorConfig `toml:"generator"`
}

type CsimTomlCompareConfig struct {
	Extensions    []string `toml:"extensions"`
	MaxInputBytes *int     `toml:"max_input_bytes"`
	FailAbove     *float64 `toml:"fail_above"`
}

type CsimTomlThresholdConfig struct {
	High     *float64 `toml:"high"`
	Moderate *float64 `toml:"moderate"`
	Low      *float64 `toml:"low"`
}

type CsimTomlOutputConfig struct {
	Format      string `toml:"format"`
	ShowDetails *bool  `toml:"show_details"`
	Directory   string `toml:"directory"`
}

type CsimTomlGeneratorConfig struct {
	Functions  *int   `toml:"functions"`
	MainCalls  *int   `toml:"main_calls"`
	OutputPath string `toml:"output_path"`
	Seed       *int64 `toml:"seed"`
}

// TomlConfigLoader handles TOML configuration loading
type TomlConfigLoader struct{}

// NewTomlConfigLoader creates a new TOML configuration loader
func NewTomlConfigLoader() *TomlConfigLoader {
	return &TomlConfigLoader{}
}

// LoadConfig loads configuration starting from the given directory:
// .csim.toml discovered by walking up the directory tree, else defaults.
func (l *TomlConfigLoader) LoadConfig(startDir string) (*Config, error) {
	configPath, err := l.findCsimToml(startDir)
	if err != nil {
		return DefaultConfig(), nil
	}
	return l.LoadConfigFile(configPath)
}

// LoadConfigFile loads a specific .csim.toml file merged over defaults.
func (l *TomlConfigLoader) LoadConfigFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var fileConfig CsimTomlConfig
	if err := toml.Unmarshal(data, &fileConfig); err != nil {
		return nil, err
	}

	defaults := DefaultConfig()
	l.merge(defaults, &fileConfig)

	if err := defaults.Validate(); err != nil {
		return nil, err
	}
	return defaults, nil
}

// findCsimToml walks up the directory tree to find .csim.toml
func (l *TomlConfigLoader) findCsimToml(startDir string) (string, error) {
	dir := startDir
	if dir == "" {
		dir = "."
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	for {
		configPath := filepath.Join(dir, ".csim.toml")
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", os.ErrNotExist
}

// merge applies explicitly set file values over the defaults. Pointer fields
// carry the unset/zero distinction; string and slice fields treat empty as
// unset.
func (l *TomlConfigLoader) merge(defaults *Config, fileConfig *CsimTomlConfig) {
	if len(fileConfig.Compare.Extensions) > 0 {
		defaults.Compare.Extensions = fileConfig.Compare.Extensions
	}
	if fileConfig.Compare.MaxInputBytes != nil {
		defaults.Compare.MaxInputBytes = *fileConfig.Compare.MaxInputBytes
	}
	if fileConfig.Compare.FailAbove != nil {
		defaults.Compare.FailAbove = *fileConfig.Compare.FailAbove
	}

	if fileConfig.Thresholds.High != nil {
		defaults.Thresholds.High = *fileConfig.Thresholds.High
	}
	if fileConfig.Thresholds.Moderate != nil {
		defaults.Thresholds.Moderate = *fileConfig.Thresholds.Moderate
	}
	if fileConfig.Thresholds.Low != nil {
		defaults.Thresholds.Low = *fileConfig.Thresholds.Low
	}

	if fileConfig.Output.Format != "" {
		defaults.Output.Format = fileConfig.Output.Format
	}
	if fileConfig.Output.ShowDetails != nil {
		defaults.Output.ShowDetails = *fileConfig.Output.ShowDetails
	}
	if fileConfig.Output.Directory != "" {
		defaults.Output.Directory = fileConfig.Output.Directory
	}

	if fileConfig.Generator.Functions != nil {
		defaults.Generator.Functions = *fileConfig.Generator.Functions
	}
	if fileConfig.Generator.MainCalls != nil {
		defaults.Generator.MainCalls = *fileConfig.Generator.MainCalls
	}
	if fileConfig.Generator.OutputPath != "" {
		defaults.Generator.OutputPath = fileConfig.Generator.OutputPath
	}
	if fileConfig.Generator.Seed != nil {
		defaults.Generator.Seed = *fileConfig.Generator.Seed
	}
}

// GetSupportedConfigFiles returns the supported config files in order of
// precedence.
func (l *TomlConfigLoader) GetSupportedConfigFiles() []string {
	return []string{
		".csim.toml",
	}
}
