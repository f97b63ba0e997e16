package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/lexmatch-io/lexmatch/internal/domain"
	"github.com/lexmatch-io/lexmatch/internal/domain/overlap"
)

// DefaultMaxInputBytes caps a single input text.
const DefaultMaxInputBytes = 163840 // 160KB

// Service runs overlap analyses: it annotates both texts through the
// injected annotator and assembles a fresh report per request. Stateless
// across calls; the annotator is constructed once by the host and shared.
type Service struct {
	annotator     Annotator
	maxInputBytes int
}

// New creates an analysis service.
func New(annotator Annotator) *Service {
	return &Service{annotator: annotator, maxInputBytes: DefaultMaxInputBytes}
}

// WithMaxInputBytes overrides the per-text size cap.
func (s *Service) WithMaxInputBytes(n int) *Service {
	if n > 0 {
		s.maxInputBytes = n
	}
	return s
}

// Analyze computes every overlap metric for the reference/target pair.
// Empty strings are valid and yield all-zero results. Oversized inputs are
// rejected with domain.ErrInvalidInput.
func (s *Service) Analyze(ctx context.Context, reference, target string) (overlap.Report, error) {
	if len(reference) > s.maxInputBytes {
		return overlap.Report{}, domain.NewInputTooLarge("reference", len(reference), s.maxInputBytes)
	}
	if len(target) > s.maxInputBytes {
		return overlap.Report{}, domain.NewInputTooLarge("target", len(target), s.maxInputBytes)
	}

	refDoc, err := s.annotator.Annotate(ctx, reference)
	if err != nil {
		return overlap.Report{}, fmt.Errorf("annotate reference: %w", err)
	}

	targetDoc, err := s.annotator.Annotate(ctx, target)
	if err != nil {
		return overlap.Report{}, fmt.Errorf("annotate target: %w", err)
	}

	return overlap.NewReport(reference, target, refDoc, targetDoc, time.Now().UTC()), nil
}
