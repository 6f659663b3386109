package domain

// Similarity verdict thresholds classify a normalized structural similarity
// score into reviewer-facing bands for plagiarism screening. Renamed
// identifiers and changed literals do not lower the score at all, so only
// genuinely restructured code lands below the top band.
const (
	// DefaultHighSimilarityThreshold is the lower bound of the top band.
	// Scores at or above it almost always mean one submission was derived
	// from the other.
	DefaultHighSimilarityThreshold = 0.90

	// DefaultModerateSimilarityThreshold is the lower bound of the middle
	// band. Scores in [0.60, 0.90) warrant a manual side-by-side review.
	DefaultModerateSimilarityThreshold = 0.60

	// DefaultLowSimilarityThreshold is the lower bound of the weak band.
	// Scores in [0.30, 0.60) usually reflect shared boilerplate or common
	// idioms rather than copying.
	DefaultLowSimilarityThreshold = 0.30
)

// ============================================================================
// Input Handling Defaults
// ============================================================================

const (
	// DefaultMaxInputBytes is the largest input file accepted for
	// comparison. 0 means no limit is enforced.
	DefaultMaxInputBytes = 0
)

// DefaultSourceExtensions returns the file extensions accepted as
// comparable source input.
func DefaultSourceExtensions() []string {
	return []string{".c", ".h", ".txt"}
}

// ============================================================================
// Fixture Generator Defaults
// ============================================================================

const (
	// DefaultGeneratorFunctions is the number of templated functions a
	// generated stress fixture contains.
	DefaultGeneratorFunctions = 5000

	// DefaultGeneratorMainCalls is the number of generated functions the
	// fixture's main function calls.
	DefaultGeneratorMainCalls = 100

	// DefaultGeneratorOutputPath is where the fixture is written when no
	// path is given.
	DefaultGeneratorOutputPath = "stress_test.c"

	// DefaultGeneratorSeed drives literal variation in variant mode.
	DefaultGeneratorSeed = 1
)
