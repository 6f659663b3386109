package domain

import (
	"context"
	"fmt"
	"io"
	"time"
)

// OutputFormat represents the output format for comparison reports
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatCSV  OutputFormat = "csv"
)

// IsValid reports whether the format is one of the supported report formats
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatText, OutputFormatJSON, OutputFormatYAML, OutputFormatCSV:
		return true
	default:
		return false
	}
}

// Verdict classifies a similarity score into a reviewer-facing band
type Verdict string

const (
	// VerdictHighlySimilar - structures nearly identical, possible plagiarism
	VerdictHighlySimilar Verdict = "highly-similar"
	// VerdictModeratelySimilar - substantial overlap, manual review recommended
	VerdictModeratelySimilar Verdict = "moderately-similar"
	// VerdictLowSimilarity - some shared structure, likely common idioms
	VerdictLowSimilarity Verdict = "low-similarity"
	// VerdictDissimilar - structures differ substantially
	VerdictDissimilar Verdict = "dissimilar"
)

// String returns string representation of Verdict
func (v Verdict) String() string {
	return string(v)
}

// Band returns the numeric rank of the verdict (1 = most similar)
func (v Verdict) Band() int {
	switch v {
	case VerdictHighlySimilar:
		return 1
	case VerdictModeratelySimilar:
		return 2
	case VerdictLowSimilarity:
		return 3
	default:
		return 4
	}
}

// ClassifyVerdict maps a similarity score onto its verdict band using the
// default thresholds.
func ClassifyVerdict(similarity float64) Verdict {
	return ClassifyVerdictWith(similarity,
		DefaultHighSimilarityThreshold,
		DefaultModerateSimilarityThreshold,
		DefaultLowSimilarityThreshold)
}

// ClassifyVerdictWith maps a similarity score onto its verdict band using
// the given band lower bounds.
func ClassifyVerdictWith(similarity, high, moderate, low float64) Verdict {
	switch {
	case similarity >= high:
		return VerdictHighlySimilar
	case similarity >= moderate:
		return VerdictModeratelySimilar
	case similarity >= low:
		return VerdictLowSimilarity
	default:
		return VerdictDissimilar
	}
}

// InputSide identifies one of the two compared inputs
type InputSide string

const (
	SideA InputSide = "A"
	SideB InputSide = "B"
)

// FailureKind tags which stage of input handling rejected an input
type FailureKind string

const (
	// FailureEmptyOrUnreadable - the input could not be read or held no content
	FailureEmptyOrUnreadable FailureKind = "empty-or-unreadable-input"
	// FailureZeroTokens - the input had content but scanned to zero tokens
	FailureZeroTokens FailureKind = "zero-tokens-produced"
	// FailureParse - tree construction failed outright
	FailureParse FailureKind = "parse-failure"
	// FailureSerialization - the tree could not be flattened to a sequence
	FailureSerialization FailureKind = "serialization-failure"
)

// CompareFailure reports a per-input failure. Comparisons abort without a
// partial score; the failure names the side and input so the presentation
// layer can point at the offending file.
type CompareFailure struct {
	Side InputSide
	Path string
	Kind FailureKind
	Err  error
}

func (f *CompareFailure) Error() string {
	path := f.Path
	if path == "" {
		path = "inline source"
	}
	if f.Err != nil {
		return fmt.Sprintf("input %s (%s): %s: %v", f.Side, path, f.Kind, f.Err)
	}
	return fmt.Sprintf("input %s (%s): %s", f.Side, path, f.Kind)
}

func (f *CompareFailure) Unwrap() error {
	return f.Err
}

// GateError reports that a similarity score reached the configured gate
// threshold. The CLI maps it to a dedicated exit code so CI pipelines can
// fail builds on suspicious submissions.
type GateError struct {
	Similarity float64
	Threshold  float64
}

func (e *GateError) Error() string {
	return fmt.Sprintf("similarity %.4f is at or above the gate threshold %.4f", e.Similarity, e.Threshold)
}

// FileInfo describes one compared input
type FileInfo struct {
	Path           string `json:"path" yaml:"path" csv:"path"`
	Bytes          int    `json:"bytes" yaml:"bytes" csv:"bytes"`
	TokenCount     int    `json:"token_count" yaml:"token_count" csv:"token_count"`
	NodeCount      int    `json:"node_count" yaml:"node_count" csv:"node_count"`
	SequenceLength int    `json:"sequence_length" yaml:"sequence_length" csv:"sequence_length"`
}

// CompareRequest represents a request for a pairwise similarity comparison
type CompareRequest struct {
	// Input parameters: paths or glob patterns, each resolving to one file
	InputA string `json:"input_a"`
	InputB string `json:"input_b"`

	// Verdict band lower bounds
	HighThreshold     float64 `json:"high_threshold"`
	ModerateThreshold float64 `json:"moderate_threshold"`
	LowThreshold      float64 `json:"low_threshold"`

	// Output configuration
	OutputFormat OutputFormat `json:"output_format"`
	OutputWriter io.Writer    `json:"-"`
	OutputPath   string       `json:"output_path,omitempty"`
	ShowDetails  bool         `json:"show_details"`
	NoProgress   bool         `json:"no_progress"`

	// FailAbove makes the comparison fail when similarity reaches the
	// given ratio. Nil disables the gate.
	FailAbove *float64 `json:"fail_above,omitempty"`

	// Configuration file
	ConfigPath string `json:"config_path,omitempty"`
}

// CompareResponse represents the result of a pairwise similarity comparison
type CompareResponse struct {
	InputA *FileInfo `json:"input_a" yaml:"input_a"`
	InputB *FileInfo `json:"input_b" yaml:"input_b"`

	Distance   int     `json:"distance" yaml:"distance"`
	Similarity float64 `json:"similarity" yaml:"similarity"`
	Verdict    Verdict `json:"verdict" yaml:"verdict"`

	// Metadata
	Duration    int64     `json:"duration_ms" yaml:"duration_ms"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Version     string    `json:"version" yaml:"version"`
}

// CompareService defines the interface for similarity comparison services
type CompareService interface {
	// Compare resolves, reads, and scores the two inputs in the request
	Compare(ctx context.Context, req *CompareRequest) (*CompareResponse, error)

	// CompareSources scores two in-memory source buffers
	CompareSources(ctx context.Context, sourceA, sourceB []byte) (*CompareResponse, error)
}

// FileReader abstracts input discovery and reading for comparisons
type FileReader interface {
	// ReadFile reads the content of a source file
	ReadFile(path string) ([]byte, error)

	// FileExists checks whether the path exists and is a regular file
	FileExists(path string) bool

	// IsValidSourceFile checks whether the path looks like a comparable source file
	IsValidSourceFile(path string) bool

	// ResolveSourcePath expands a path or glob pattern to exactly one source file
	ResolveSourcePath(pattern string) (string, error)
}

// CompareFormatter defines the interface for formatting comparison results
type CompareFormatter interface {
	// FormatCompareResponse formats a comparison result according to the specified format
	FormatCompareResponse(response *CompareResponse, format OutputFormat, writer io.Writer) error
}

// CompareConfigurationLoader defines the interface for loading comparison configuration
type CompareConfigurationLoader interface {
	// LoadCompareConfig loads comparison configuration from an explicit path,
	// or discovers one near the inputs when the path is empty
	LoadCompareConfig(configPath string) (*CompareRequest, error)

	// GetDefaultCompareConfig returns default comparison configuration
	GetDefaultCompareConfig() *CompareRequest
}

// Validate validates a compare request
func (req *CompareRequest) Validate() error {
	if req.InputA == "" || req.InputB == "" {
		return NewValidationError("two inputs are required")
	}

	for name, v := range map[string]float64{
		"high_threshold":     req.HighThreshold,
		"moderate_threshold": req.ModerateThreshold,
		"low_threshold":      req.LowThreshold,
	} {
		if v < 0.0 || v > 1.0 {
			return NewValidationError(fmt.Sprintf("%s must be between 0.0 and 1.0", name))
		}
	}

	if req.HighThreshold <= req.ModerateThreshold {
		return NewValidationError("high_threshold should be > moderate_threshold")
	}
	if req.ModerateThreshold <= req.LowThreshold {
		return NewValidationError("moderate_threshold should be > low_threshold")
	}

	if req.FailAbove != nil && (*req.FailAbove < 0.0 || *req.FailAbove > 1.0) {
		return NewValidationError("fail_above must be between 0.0 and 1.0")
	}

	if !req.OutputFormat.IsValid() {
		return NewUnsupportedFormatError(string(req.OutputFormat))
	}

	return nil
}

// HasValidOutputWriter checks if the request has a valid output writer
func (req *CompareRequest) HasValidOutputWriter() bool {
	return req.OutputWriter != nil
}

// GateTripped reports whether the similarity reaches the configured gate
func (req *CompareRequest) GateTripped(similarity float64) bool {
	return req.FailAbove != nil && similarity >= *req.FailAbove
}

// DefaultCompareRequest returns a default compare request
func DefaultCompareRequest() *CompareRequest {
	return &CompareRequest{
		HighThreshold:     DefaultHighSimilarityThreshold,
		ModerateThreshold: DefaultModerateSimilarityThreshold,
		LowThreshold:      DefaultLowSimilarityThreshold,
		OutputFormat:      OutputFormatText,
		ShowDetails:       false,
		NoProgress:        false,
	}
}
