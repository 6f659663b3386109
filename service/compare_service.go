package service

import (
	"context"
	"errors"
	"time"

	"github.com/ludo-technologies/csim/domain"
	"github.com/ludo-technologies/csim/internal/analyzer"
	"github.com/ludo-technologies/csim/internal/version"
)

// CompareServiceImpl implements the CompareService interface on top of the
// scan/parse/serialize/distance pipeline.
type CompareServiceImpl struct {
	fileReader domain.FileReader
	progress   domain.ProgressReporter
}

// NewCompareService creates a compare service. The progress reporter may be
// nil, in which case no progress is reported.
func NewCompareService(fileReader domain.FileReader, progress domain.ProgressReporter) *CompareServiceImpl {
	return &CompareServiceImpl{
		fileReader: fileReader,
		progress:   progress,
	}
}

// compareStages is the number of progress steps one comparison takes:
// read A, read B, analyze A, analyze B, score.
const compareStages = 5

func (s *CompareServiceImpl) step(label string) {
	if s.progress != nil {
		s.progress.Step(label)
	}
}

// Compare resolves, reads, and scores the two inputs in the request.
func (s *CompareServiceImpl) Compare(ctx context.Context, req *domain.CompareRequest) (*domain.CompareResponse, error) {
	if s.progress != nil {
		s.progress.Initialize(compareStages)
		s.progress.Start()
		defer s.progress.Complete(true)
	}

	srcA, infoA, err := s.readInput(domain.SideA, req.InputA)
	if err != nil {
		return nil, err
	}
	s.step("Reading " + infoA.Path)

	srcB, infoB, err := s.readInput(domain.SideB, req.InputB)
	if err != nil {
		return nil, err
	}
	s.step("Reading " + infoB.Path)

	return s.compare(ctx, req, srcA, infoA, srcB, infoB)
}

// CompareSources scores two in-memory source buffers.
func (s *CompareServiceImpl) CompareSources(ctx context.Context, sourceA, sourceB []byte) (*domain.CompareResponse, error) {
	req := domain.DefaultCompareRequest()
	infoA := &domain.FileInfo{Bytes: len(sourceA)}
	infoB := &domain.FileInfo{Bytes: len(sourceB)}
	return s.compare(ctx, req, sourceA, infoA, sourceB, infoB)
}

// readInput resolves one request input to a concrete file and reads it.
// Unreadable and empty inputs get the same failure tag; the presentation
// layer does not distinguish them.
func (s *CompareServiceImpl) readInput(side domain.InputSide, input string) ([]byte, *domain.FileInfo, error) {
	path, err := s.fileReader.ResolveSourcePath(input)
	if err != nil {
		return nil, nil, &domain.CompareFailure{
			Side: side,
			Path: input,
			Kind: domain.FailureEmptyOrUnreadable,
			Err:  err,
		}
	}

	content, err := s.fileReader.ReadFile(path)
	if err != nil {
		return nil, nil, &domain.CompareFailure{
			Side: side,
			Path: path,
			Kind: domain.FailureEmptyOrUnreadable,
			Err:  err,
		}
	}

	return content, &domain.FileInfo{Path: path, Bytes: len(content)}, nil
}

func (s *CompareServiceImpl) compare(
	ctx context.Context,
	req *domain.CompareRequest,
	srcA []byte, infoA *domain.FileInfo,
	srcB []byte, infoB *domain.FileInfo,
) (*domain.CompareResponse, error) {
	resA, err := s.analyze(domain.SideA, infoA, srcA)
	if err != nil {
		return nil, err
	}
	s.step("Analyzing " + infoA.Path)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resB, err := s.analyze(domain.SideB, infoB, srcB)
	if err != nil {
		return nil, err
	}
	s.step("Analyzing " + infoB.Path)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	distance := analyzer.Levenshtein(resA.Sequence, resB.Sequence)
	similarity := analyzer.Similarity(distance, len(resA.Sequence), len(resB.Sequence))
	s.step("Scoring")

	return &domain.CompareResponse{
		InputA:      infoA,
		InputB:      infoB,
		Distance:    distance,
		Similarity:  similarity,
		Verdict:     domain.ClassifyVerdictWith(similarity, req.HighThreshold, req.ModerateThreshold, req.LowThreshold),
		GeneratedAt: time.Now(),
		Version:     version.Short(),
	}, nil
}

// analyze runs one input through the pipeline and fills its FileInfo stats.
func (s *CompareServiceImpl) analyze(side domain.InputSide, info *domain.FileInfo, src []byte) (*analyzer.SourceResult, error) {
	result, err := analyzer.ProcessSource(src)
	if err != nil {
		return nil, &domain.CompareFailure{
			Side: side,
			Path: info.Path,
			Kind: failureKind(err),
			Err:  err,
		}
	}

	info.TokenCount = result.TokenCount
	info.NodeCount = result.NodeCount
	info.SequenceLength = len(result.Sequence)
	return result, nil
}

// failureKind maps pipeline sentinel errors onto the per-input failure tags.
// The parser itself never fails on malformed input, so FailureParse is
// reserved for a missing tree.
func failureKind(err error) domain.FailureKind {
	switch {
	case errors.Is(err, analyzer.ErrEmptySource):
		return domain.FailureEmptyOrUnreadable
	case errors.Is(err, analyzer.ErrNoTokens):
		return domain.FailureZeroTokens
	case errors.Is(err, analyzer.ErrNilRoot):
		return domain.FailureParse
	default:
		return domain.FailureSerialization
	}
}
