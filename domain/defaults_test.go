package domain

import (
	"testing"
)

// TestDefaultValueConsistency ensures all default values are properly defined
// and maintain expected relationships
func TestDefaultValueConsistency(t *testing.T) {
	t.Run("Similarity thresholds are properly ordered", func(t *testing.T) {
		if DefaultHighSimilarityThreshold <= DefaultModerateSimilarityThreshold {
			t.Errorf("High threshold (%.2f) should be > moderate threshold (%.2f)",
				DefaultHighSimilarityThreshold, DefaultModerateSimilarityThreshold)
		}
		if DefaultModerateSimilarityThreshold <= DefaultLowSimilarityThreshold {
			t.Errorf("Moderate threshold (%.2f) should be > low threshold (%.2f)",
				DefaultModerateSimilarityThreshold, DefaultLowSimilarityThreshold)
		}
	})

	t.Run("Similarity thresholds are within valid range", func(t *testing.T) {
		thresholds := []struct {
			name  string
			value float64
		}{
			{"High", DefaultHighSimilarityThreshold},
			{"Moderate", DefaultModerateSimilarityThreshold},
			{"Low", DefaultLowSimilarityThreshold},
		}

		for _, th := range thresholds {
			if th.value < 0.0 || th.value > 1.0 {
				t.Errorf("%s threshold (%.2f) should be in [0.0, 1.0]", th.name, th.value)
			}
		}
	})

	t.Run("Input defaults are sane", func(t *testing.T) {
		if DefaultMaxInputBytes < 0 {
			t.Errorf("MaxInputBytes (%d) should not be negative", DefaultMaxInputBytes)
		}

		extensions := DefaultSourceExtensions()
		if len(extensions) == 0 {
			t.Error("At least one source extension should be accepted by default")
		}
		for _, ext := range extensions {
			if len(ext) < 2 || ext[0] != '.' {
				t.Errorf("Extension %q should start with a dot", ext)
			}
		}
	})

	t.Run("Generator defaults are positive", func(t *testing.T) {
		if DefaultGeneratorFunctions <= 0 {
			t.Errorf("GeneratorFunctions (%d) should be > 0", DefaultGeneratorFunctions)
		}
		if DefaultGeneratorMainCalls <= 0 {
			t.Errorf("GeneratorMainCalls (%d) should be > 0", DefaultGeneratorMainCalls)
		}
		if DefaultGeneratorMainCalls > DefaultGeneratorFunctions {
			t.Errorf("GeneratorMainCalls (%d) should not exceed GeneratorFunctions (%d)",
				DefaultGeneratorMainCalls, DefaultGeneratorFunctions)
		}
		if DefaultGeneratorOutputPath == "" {
			t.Error("GeneratorOutputPath should not be empty")
		}
	})
}
