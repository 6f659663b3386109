package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ludo-technologies/csim/domain"
)

// CompareUseCase orchestrates one pairwise similarity comparison: validate
// the request, merge file configuration, score the inputs, render the
// report, and enforce the similarity gate.
type CompareUseCase struct {
	service      domain.CompareService
	formatter    domain.CompareFormatter
	configLoader domain.CompareConfigurationLoader
	outputWriter domain.ReportWriter
}

// NewCompareUseCase creates a new compare use case with the given dependencies
func NewCompareUseCase(
	service domain.CompareService,
	formatter domain.CompareFormatter,
	configLoader domain.CompareConfigurationLoader,
	outputWriter domain.ReportWriter,
) *CompareUseCase {
	return &CompareUseCase{
		service:      service,
		formatter:    formatter,
		configLoader: configLoader,
		outputWriter: outputWriter,
	}
}

// Execute runs the comparison described by the request and writes the
// report. The response is returned so callers can inspect the score; a
// GateError is returned after the report is written when the similarity
// reaches the configured gate.
func (uc *CompareUseCase) Execute(ctx context.Context, req domain.CompareRequest) (*domain.CompareResponse, error) {
	startTime := time.Now()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.ConfigPath != "" {
		configReq, err := uc.configLoader.LoadCompareConfig(req.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		req = uc.mergeConfiguration(*configReq, req)
	}

	response, err := uc.service.Compare(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("comparison failed: %w", err)
	}

	response.Duration = time.Since(startTime).Milliseconds()

	if !req.HasValidOutputWriter() {
		return nil, fmt.Errorf("no valid output writer specified")
	}

	err = uc.outputWriter.Write(req.OutputWriter, req.OutputPath, req.OutputFormat, func(w io.Writer) error {
		return uc.formatter.FormatCompareResponse(response, req.OutputFormat, w)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}

	if req.GateTripped(response.Similarity) {
		return response, &domain.GateError{Similarity: response.Similarity, Threshold: *req.FailAbove}
	}

	return response, nil
}

// mergeConfiguration merges configuration from file with request parameters.
// Request parameters take precedence over configuration file values where
// they differ from the request defaults.
func (uc *CompareUseCase) mergeConfiguration(configReq, requestReq domain.CompareRequest) domain.CompareRequest {
	merged := configReq

	// Inputs always come from the request.
	merged.InputA = requestReq.InputA
	merged.InputB = requestReq.InputB
	merged.ConfigPath = requestReq.ConfigPath

	// Output destination always comes from the request.
	merged.OutputWriter = requestReq.OutputWriter
	merged.OutputPath = requestReq.OutputPath
	merged.NoProgress = requestReq.NoProgress

	defaultReq := domain.DefaultCompareRequest()

	if requestReq.OutputFormat != defaultReq.OutputFormat {
		merged.OutputFormat = requestReq.OutputFormat
	}
	if requestReq.ShowDetails != defaultReq.ShowDetails {
		merged.ShowDetails = requestReq.ShowDetails
	}
	if requestReq.HighThreshold != defaultReq.HighThreshold {
		merged.HighThreshold = requestReq.HighThreshold
	}
	if requestReq.ModerateThreshold != defaultReq.ModerateThreshold {
		merged.ModerateThreshold = requestReq.ModerateThreshold
	}
	if requestReq.LowThreshold != defaultReq.LowThreshold {
		merged.LowThreshold = requestReq.LowThreshold
	}
	if requestReq.FailAbove != nil {
		merged.FailAbove = requestReq.FailAbove
	}

	return merged
}

// CompareUseCaseBuilder helps build CompareUseCase with dependencies
type CompareUseCaseBuilder struct {
	service      domain.CompareService
	formatter    domain.CompareFormatter
	configLoader domain.CompareConfigurationLoader
	outputWriter domain.ReportWriter
}

// NewCompareUseCaseBuilder creates a new builder for CompareUseCase
func NewCompareUseCaseBuilder() *CompareUseCaseBuilder {
	return &CompareUseCaseBuilder{}
}

// WithService sets the compare service
func (b *CompareUseCaseBuilder) WithService(service domain.CompareService) *CompareUseCaseBuilder {
	b.service = service
	return b
}

// WithFormatter sets the output formatter
func (b *CompareUseCaseBuilder) WithFormatter(formatter domain.CompareFormatter) *CompareUseCaseBuilder {
	b.formatter = formatter
	return b
}

// WithConfigLoader sets the configuration loader
func (b *CompareUseCaseBuilder) WithConfigLoader(configLoader domain.CompareConfigurationLoader) *CompareUseCaseBuilder {
	b.configLoader = configLoader
	return b
}

// WithOutputWriter sets the report writer
func (b *CompareUseCaseBuilder) WithOutputWriter(outputWriter domain.ReportWriter) *CompareUseCaseBuilder {
	b.outputWriter = outputWriter
	return b
}

// Build creates the CompareUseCase with the configured dependencies
func (b *CompareUseCaseBuilder) Build() (*CompareUseCase, error) {
	if b.service == nil {
		return nil, fmt.Errorf("compare service is required")
	}
	if b.formatter == nil {
		return nil, fmt.Errorf("output formatter is required")
	}
	if b.configLoader == nil {
		return nil, fmt.Errorf("configuration loader is required")
	}
	if b.outputWriter == nil {
		return nil, fmt.Errorf("report writer is required")
	}

	return NewCompareUseCase(b.service, b.formatter, b.configLoader, b.outputWriter), nil
}
