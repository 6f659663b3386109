package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/csim/domain"
)

func TestCategorizeNil(t *testing.T) {
	categorizer := NewErrorCategorizer()
	assert.Nil(t, categorizer.Categorize(nil))
}

func TestCategorizeGateError(t *testing.T) {
	categorizer := NewErrorCategorizer()

	err := fmt.Errorf("wrapped: %w", &domain.GateError{Similarity: 0.95, Threshold: 0.9})
	categorized := categorizer.Categorize(err)

	require.NotNil(t, categorized)
	assert.Equal(t, domain.ErrorCategoryGate, categorized.Category)
}

func TestCategorizeCompareFailure(t *testing.T) {
	categorizer := NewErrorCategorizer()

	tests := []struct {
		kind     domain.FailureKind
		expected domain.ErrorCategory
	}{
		{domain.FailureEmptyOrUnreadable, domain.ErrorCategoryInput},
		{domain.FailureZeroTokens, domain.ErrorCategoryInput},
		{domain.FailureParse, domain.ErrorCategoryProcessing},
		{domain.FailureSerialization, domain.ErrorCategoryProcessing},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			failure := &domain.CompareFailure{
				Side: domain.SideA,
				Path: "a.c",
				Kind: tt.kind,
			}
			categorized := categorizer.Categorize(fmt.Errorf("comparison failed: %w", failure))

			require.NotNil(t, categorized)
			assert.Equal(t, tt.expected, categorized.Category)
		})
	}
}

func TestCategorizeByMessagePattern(t *testing.T) {
	categorizer := NewErrorCategorizer()

	tests := []struct {
		message  string
		expected domain.ErrorCategory
	}{
		{"failed to read config file .csim.toml", domain.ErrorCategoryConfig},
		{"file not found: a.c", domain.ErrorCategoryInput},
		{"failed to write output", domain.ErrorCategoryOutput},
		{"something inexplicable", domain.ErrorCategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			categorized := categorizer.Categorize(fmt.Errorf("%s", tt.message))

			require.NotNil(t, categorized)
			assert.Equal(t, tt.expected, categorized.Category)
		})
	}
}

func TestGetRecoverySuggestions(t *testing.T) {
	categorizer := NewErrorCategorizer()

	configSuggestions := categorizer.GetRecoverySuggestions(domain.ErrorCategoryConfig)
	assert.NotEmpty(t, configSuggestions)

	found := false
	for _, s := range configSuggestions {
		if containsAnyPattern(s, []string{"csim init"}) {
			found = true
		}
	}
	assert.True(t, found, "config suggestions should mention csim init")

	gateSuggestions := categorizer.GetRecoverySuggestions(domain.ErrorCategoryGate)
	assert.NotEmpty(t, gateSuggestions)
}
