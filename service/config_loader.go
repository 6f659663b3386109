package service

import (
	"os"
	"strings"

	"github.com/ludo-technologies/csim/domain"
	"github.com/ludo-technologies/csim/internal/config"
)

// CompareConfigurationLoaderImpl implements the CompareConfigurationLoader
// interface on top of internal/config.
type CompareConfigurationLoaderImpl struct{}

// NewCompareConfigurationLoader creates a new configuration loader service
func NewCompareConfigurationLoader() *CompareConfigurationLoaderImpl {
	return &CompareConfigurationLoaderImpl{}
}

// LoadCompareConfig loads comparison configuration from an explicit path, or
// discovers one near the working directory when the path is empty. TOML
// files go through the toml loader; everything else through viper.
func (c *CompareConfigurationLoaderImpl) LoadCompareConfig(configPath string) (*domain.CompareRequest, error) {
	var cfg *config.Config
	var err error

	switch {
	case configPath == "":
		cfg, err = config.NewTomlConfigLoader().LoadConfig(".")
	case strings.HasSuffix(configPath, ".toml"):
		cfg, err = config.NewTomlConfigLoader().LoadConfigFile(configPath)
	default:
		cfg, err = config.LoadConfig(configPath)
	}
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}

	return c.convertToCompareRequest(cfg), nil
}

// GetDefaultCompareConfig returns default comparison configuration
func (c *CompareConfigurationLoaderImpl) GetDefaultCompareConfig() *domain.CompareRequest {
	return c.convertToCompareRequest(config.DefaultConfig())
}

// convertToCompareRequest converts internal config to a domain request
func (c *CompareConfigurationLoaderImpl) convertToCompareRequest(cfg *config.Config) *domain.CompareRequest {
	var outputFormat domain.OutputFormat
	switch cfg.Output.Format {
	case "json":
		outputFormat = domain.OutputFormatJSON
	case "yaml":
		outputFormat = domain.OutputFormatYAML
	case "csv":
		outputFormat = domain.OutputFormatCSV
	default:
		outputFormat = domain.OutputFormatText
	}

	req := &domain.CompareRequest{
		HighThreshold:     cfg.Thresholds.High,
		ModerateThreshold: cfg.Thresholds.Moderate,
		LowThreshold:      cfg.Thresholds.Low,
		OutputFormat:      outputFormat,
		OutputWriter:      os.Stdout,
		ShowDetails:       cfg.Output.ShowDetails,
	}

	if cfg.Compare.GateEnabled() {
		gate := cfg.Compare.FailAbove
		req.FailAbove = &gate
	}

	return req
}
