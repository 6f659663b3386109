// Package analyzer measures structural similarity between source files. It
// chains the scanner and parser into a per-file pipeline whose output is a
// flat preorder sequence, then scores pairs of sequences with Levenshtein
// edit distance normalized to [0, 1].
package analyzer

import (
	"errors"

	"github.com/ludo-technologies/csim/internal/parser"
	"github.com/ludo-technologies/csim/internal/scanner"
)

var (
	// ErrEmptySource marks input with no content at all.
	ErrEmptySource = errors.New("source is empty")

	// ErrNoTokens marks input whose content yields no tokens, such as a
	// file holding only whitespace and comments.
	ErrNoTokens = errors.New("source produced no tokens")
)

// SourceResult carries the per-file artifacts of the analysis pipeline.
type SourceResult struct {
	// TokenCount is the number of tokens the scanner produced.
	TokenCount int

	// NodeCount is the number of nodes in the structural tree.
	NodeCount int

	// Sequence is the serialized preorder form of the tree, ready for
	// edit distance comparison.
	Sequence []string
}

// ProcessSource runs one source buffer through the full pipeline: scan,
// parse, serialize. Malformed input degrades to an approximate tree rather
// than failing, so errors here only ever mean the input had nothing to
// analyze.
func ProcessSource(src []byte) (*SourceResult, error) {
	if len(src) == 0 {
		return nil, ErrEmptySource
	}

	tokens := scanner.New(src).ScanAll()
	if len(tokens) == 0 {
		return nil, ErrNoTokens
	}

	tree := parser.Parse(tokens)
	sequence, err := Serialize(tree)
	if err != nil {
		return nil, err
	}

	return &SourceResult{
		TokenCount: len(tokens),
		NodeCount:  tree.Count(),
		Sequence:   sequence,
	}, nil
}
