package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/ludo-technologies/csim/domain"
)

// Config represents the main configuration structure
type Config struct {
	// Compare holds input handling configuration
	Compare CompareConfig `mapstructure:"compare" yaml:"compare"`

	// Thresholds holds the verdict band lower bounds
	Thresholds ThresholdConfig `mapstructure:"thresholds" yaml:"thresholds"`

	// Output holds output formatting configuration
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Generator holds stress fixture generator configuration
	Generator GeneratorConfig `mapstructure:"generator" yaml:"generator"`
}

// CompareConfig holds configuration for input handling
type CompareConfig struct {
	// Extensions lists the file extensions accepted as source input
	Extensions []string `mapstructure:"extensions" yaml:"extensions"`

	// MaxInputBytes is the largest accepted input file; 0 means no limit
	MaxInputBytes int `mapstructure:"max_input_bytes" yaml:"max_input_bytes"`

	// FailAbove fails the comparison when similarity reaches this ratio.
	// Negative disables the gate.
	FailAbove float64 `mapstructure:"fail_above" yaml:"fail_above"`
}

// ThresholdConfig holds the verdict band lower bounds
type ThresholdConfig struct {
	// High is the lower bound of the highly-similar band
	High float64 `mapstructure:"high" yaml:"high"`

	// Moderate is the lower bound of the moderately-similar band
	Moderate float64 `mapstructure:"moderate" yaml:"moderate"`

	// Low is the lower bound of the low-similarity band
	Low float64 `mapstructure:"low" yaml:"low"`
}

// OutputConfig holds configuration for report formatting
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml, csv
	Format string `mapstructure:"format" yaml:"format"`

	// ShowDetails controls whether per-input statistics are shown
	ShowDetails bool `mapstructure:"show_details" yaml:"show_details"`

	// Directory is where report files are written when --output names a
	// bare filename; empty means the current directory
	Directory string `mapstructure:"directory" yaml:"directory"`
}

// GeneratorConfig holds configuration for the stress fixture generator
type GeneratorConfig struct {
	// Functions is the number of templated functions to emit
	Functions int `mapstructure:"functions" yaml:"functions"`

	// MainCalls is how many generated functions main invokes
	MainCalls int `mapstructure:"main_calls" yaml:"main_calls"`

	// OutputPath is the default fixture path
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`

	// Seed drives literal variation in variant mode
	Seed int64 `mapstructure:"seed" yaml:"seed"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Compare: CompareConfig{
			Extensions:    domain.DefaultSourceExtensions(),
			MaxInputBytes: domain.DefaultMaxInputBytes,
			FailAbove:     -1,
		},
		Thresholds: ThresholdConfig{
			High:     domain.DefaultHighSimilarityThreshold,
			Moderate: domain.DefaultModerateSimilarityThreshold,
			Low:      domain.DefaultLowSimilarityThreshold,
		},
		Output: OutputConfig{
			Format:      "text",
			ShowDetails: false,
		},
		Generator: GeneratorConfig{
			Functions:  domain.DefaultGeneratorFunctions,
			MainCalls:  domain.DefaultGeneratorMainCalls,
			OutputPath: domain.DefaultGeneratorOutputPath,
			Seed:       domain.DefaultGeneratorSeed,
		},
	}
}

// LoadConfig loads configuration from file or returns default config
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	// If no config path specified, try to find default config files
	if configPath == "" {
		configPath = findDefaultConfig()
	}

	// If still no config found, return default
	if configPath == "" {
		return config, nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// findDefaultConfig looks for default configuration files in the current directory
func findDefaultConfig() string {
	candidates := []string{
		".csim.toml",
		".csim.yaml",
		".csim.yml",
		"csim.yaml",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// Validate checks configuration values for consistency
func (c *Config) Validate() error {
	for name, v := range map[string]float64{
		"thresholds.high":     c.Thresholds.High,
		"thresholds.moderate": c.Thresholds.Moderate,
		"thresholds.low":      c.Thresholds.Low,
	} {
		if v < 0.0 || v > 1.0 {
			return fmt.Errorf("%s must be between 0.0 and 1.0, got %f", name, v)
		}
	}

	if c.Thresholds.High <= c.Thresholds.Moderate {
		return fmt.Errorf("thresholds.high (%f) must be greater than thresholds.moderate (%f)",
			c.Thresholds.High, c.Thresholds.Moderate)
	}
	if c.Thresholds.Moderate <= c.Thresholds.Low {
		return fmt.Errorf("thresholds.moderate (%f) must be greater than thresholds.low (%f)",
			c.Thresholds.Moderate, c.Thresholds.Low)
	}

	if c.Compare.FailAbove > 1.0 {
		return fmt.Errorf("compare.fail_above must be at most 1.0, got %f", c.Compare.FailAbove)
	}

	if c.Compare.MaxInputBytes < 0 {
		return fmt.Errorf("compare.max_input_bytes cannot be negative")
	}

	switch c.Output.Format {
	case "text", "json", "yaml", "csv":
	default:
		return fmt.Errorf("invalid output format: %s (must be text, json, yaml, or csv)", c.Output.Format)
	}

	if c.Generator.Functions < 1 {
		return fmt.Errorf("generator.functions must be positive, got %d", c.Generator.Functions)
	}
	if c.Generator.MainCalls < 0 {
		return fmt.Errorf("generator.main_calls cannot be negative")
	}

	return nil
}

// GateEnabled reports whether the similarity gate is configured
func (c *CompareConfig) GateEnabled() bool {
	return c.FailAbove >= 0.0
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("compare", config.Compare)
	v.Set("thresholds", config.Thresholds)
	v.Set("output", config.Output)
	v.Set("generator", config.Generator)

	return v.WriteConfig()
}
