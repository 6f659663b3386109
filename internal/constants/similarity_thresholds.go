package constants

// Similarity verdict thresholds classify a normalized structural similarity
// score into reviewer-facing bands. The bands are tuned for plagiarism
// screening of small single-file submissions: renamed identifiers and
// changed literals do not lower the score at all, so only genuinely
// restructured code lands below the top band.
const (
	// HighSimilarityThreshold is the lower bound of the top band. Scores
	// at or above it almost always mean one submission was derived from
	// the other.
	HighSimilarityThreshold = 0.90

	// ModerateSimilarityThreshold is the lower bound of the middle band.
	// Scores in [0.60, 0.90) warrant a manual side-by-side review.
	ModerateSimilarityThreshold = 0.60

	// LowSimilarityThreshold is the lower bound of the weak band. Scores
	// in [0.30, 0.60) usually reflect shared boilerplate or common
	// idioms rather than copying.
	LowSimilarityThreshold = 0.30
)

// SimilarityVerdictNames provides human-readable names for verdict bands,
// keyed by band rank (1 = most similar).
var SimilarityVerdictNames = map[int]string{
	1: "Highly Similar",
	2: "Moderately Similar",
	3: "Low Similarity",
	4: "Dissimilar",
}

// SimilarityVerdictDescriptions provides detailed descriptions for each
// verdict band.
var SimilarityVerdictDescriptions = map[int]string{
	1: "Structures are nearly identical; possible plagiarism",
	2: "Substantial structural overlap; manual review recommended",
	3: "Some shared structure, likely common idioms or boilerplate",
	4: "Code structures differ substantially",
}
