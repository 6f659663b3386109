package mcp

import (
	"github.com/ludo-technologies/csim/app"
	"github.com/ludo-technologies/csim/domain"
	"github.com/ludo-technologies/csim/internal/config"
	"github.com/ludo-technologies/csim/service"
)

// Dependencies aggregates the shared services required by MCP handlers.
type Dependencies struct {
	fileReader domain.FileReader
	config     *config.Config
	configPath string
}

// NewDependencies constructs the dependency set with sane defaults.
func NewDependencies(cfg *config.Config, configPath string) *Dependencies {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	return &Dependencies{
		fileReader: service.NewFileReader(),
		config:     cfg,
		configPath: configPath,
	}
}

// Config exposes the loaded configuration snapshot.
func (d *Dependencies) Config() *config.Config {
	return d.config
}

// ConfigPath returns the configured config file path (may be empty to trigger discovery).
func (d *Dependencies) ConfigPath() string {
	return d.configPath
}

// FileReader exposes the shared file reader.
func (d *Dependencies) FileReader() domain.FileReader {
	return d.fileReader
}

// BuildCompareUseCase assembles a fresh CompareUseCase with injected dependencies.
func (d *Dependencies) BuildCompareUseCase() (*app.CompareUseCase, error) {
	return buildCompareUseCase(d.fileReader)
}

func buildCompareUseCase(fileReader domain.FileReader) (*app.CompareUseCase, error) {
	// MCP responses travel over JSON-RPC, so the comparison runs silent
	// and the report is captured by the handler rather than written to a
	// terminal.
	compareService := service.NewCompareService(fileReader, service.NewSilentProgressManager())
	formatter := service.NewCompareFormatter()
	configLoader := service.NewCompareConfigurationLoader()

	return app.NewCompareUseCaseBuilder().
		WithService(compareService).
		WithFormatter(formatter).
		WithConfigLoader(configLoader).
		WithOutputWriter(service.NewFileOutputWriter(nil)).
		Build()
}
