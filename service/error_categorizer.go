package service

import (
	"errors"
	"strings"

	"github.com/ludo-technologies/csim/domain"
)

// ErrorCategorizerImpl implements the ErrorCategorizer interface
type ErrorCategorizerImpl struct {
	patterns map[domain.ErrorCategory][]string
}

// NewErrorCategorizer creates a new error categorizer
func NewErrorCategorizer() domain.ErrorCategorizer {
	return &ErrorCategorizerImpl{
		patterns: initializeErrorPatterns(),
	}
}

// initializeErrorPatterns initializes error pattern mappings
func initializeErrorPatterns() map[domain.ErrorCategory][]string {
	return map[domain.ErrorCategory][]string{
		domain.ErrorCategoryInput: {
			"invalid input",
			"file not found",
			"cannot access",
			"permission denied",
			"empty-or-unreadable",
			"zero-tokens",
			"not a source file",
			"matches",
		},
		domain.ErrorCategoryConfig: {
			"config",
			"configuration",
			"threshold",
			"toml",
			"yaml",
		},
		domain.ErrorCategoryOutput: {
			"write",
			"output",
			"format",
			"cannot create",
		},
		domain.ErrorCategoryProcessing: {
			"parse-failure",
			"serialization-failure",
			"analysis",
		},
	}
}

// Categorize determines the category of an error. Typed errors take
// precedence over message patterns.
func (ec *ErrorCategorizerImpl) Categorize(err error) *domain.CategorizedError {
	if err == nil {
		return nil
	}

	var gateErr *domain.GateError
	if errors.As(err, &gateErr) {
		return &domain.CategorizedError{
			Category: domain.ErrorCategoryGate,
			Message:  ec.getCategoryMessage(domain.ErrorCategoryGate),
			Original: err,
		}
	}

	var failure *domain.CompareFailure
	if errors.As(err, &failure) {
		category := domain.ErrorCategoryInput
		if failure.Kind == domain.FailureParse || failure.Kind == domain.FailureSerialization {
			category = domain.ErrorCategoryProcessing
		}
		return &domain.CategorizedError{
			Category: category,
			Message:  ec.getCategoryMessage(category),
			Original: err,
		}
	}

	errMsg := strings.ToLower(err.Error())
	for category, patterns := range ec.patterns {
		if containsAnyPattern(errMsg, patterns) {
			return &domain.CategorizedError{
				Category: category,
				Message:  ec.getCategoryMessage(category),
				Original: err,
			}
		}
	}

	return &domain.CategorizedError{
		Category: domain.ErrorCategoryUnknown,
		Message:  err.Error(),
		Original: err,
	}
}

// GetRecoverySuggestions returns recovery suggestions for an error category
func (ec *ErrorCategorizerImpl) GetRecoverySuggestions(category domain.ErrorCategory) []string {
	suggestions := map[domain.ErrorCategory][]string{
		domain.ErrorCategoryInput: {
			"Check that both input files exist and are readable",
			"Accepted source extensions are configured under [compare] in .csim.toml",
			"A file holding only whitespace or comments yields zero tokens and cannot be scored",
			"When using glob patterns, make sure each pattern matches exactly one file",
		},
		domain.ErrorCategoryConfig: {
			"Verify configuration file format and values",
			"Try: csim init to generate a valid config file",
			"Thresholds must satisfy high > moderate > low, each in [0.0, 1.0]",
		},
		domain.ErrorCategoryOutput: {
			"Check write permissions and output format validity",
			"Use --format text or write to a different location",
		},
		domain.ErrorCategoryProcessing: {
			"Malformed source degrades to a partial structure and still scores; a hard failure here usually means resource exhaustion",
			"Try comparing smaller inputs",
		},
		domain.ErrorCategoryGate: {
			"The similarity reached the --fail-above gate; this exit is intentional",
			"Raise the gate ratio or review the flagged submissions",
		},
		domain.ErrorCategoryUnknown: {
			"Run with --verbose for detailed error information",
			"Report the issue if it persists",
		},
	}

	if sug, ok := suggestions[category]; ok {
		return sug
	}
	return []string{"Check the error message for more details"}
}

// getCategoryMessage returns a user-friendly message for an error category
func (ec *ErrorCategorizerImpl) getCategoryMessage(category domain.ErrorCategory) string {
	messages := map[domain.ErrorCategory]string{
		domain.ErrorCategoryInput:      "Failed to read or tokenize an input file",
		domain.ErrorCategoryConfig:     "Configuration file or settings error",
		domain.ErrorCategoryOutput:     "Failed to generate or write the report",
		domain.ErrorCategoryProcessing: "Error while analyzing an input",
		domain.ErrorCategoryGate:       "Similarity reached the configured gate threshold",
		domain.ErrorCategoryUnknown:    "An unexpected error occurred",
	}

	if msg, ok := messages[category]; ok {
		return msg
	}
	return "An error occurred"
}

// containsAnyPattern checks if a string contains any of the given patterns
func containsAnyPattern(str string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(str, pattern) {
			return true
		}
	}
	return false
}
