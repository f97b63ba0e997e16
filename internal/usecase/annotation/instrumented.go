// Package annotation provides cross-cutting decorators for annotators.
package annotation

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lexmatch-io/lexmatch/internal/domain"
)

// InstrumentedAnnotator wraps an Annotator with logging and duration
// tracking. Transport metrics (requests, duration, errors) are recorded in
// the provider layer; this layer owns structured logging only.
type InstrumentedAnnotator struct {
	inner    domain.Annotator
	provider string
	logger   *zap.Logger
}

// NewInstrumentedAnnotator wraps an annotator with observability.
func NewInstrumentedAnnotator(inner domain.Annotator, provider string, logger *zap.Logger) *InstrumentedAnnotator {
	return &InstrumentedAnnotator{inner: inner, provider: provider, logger: logger}
}

// Annotate delegates to the inner annotator and logs the outcome.
func (a *InstrumentedAnnotator) Annotate(ctx context.Context, text string) (domain.AnnotatedDocument, error) {
	start := time.Now()

	doc, err := a.inner.Annotate(ctx, text)

	duration := time.Since(start)

	if err != nil {
		a.logger.Error("Annotation request failed",
			zap.String("provider", a.provider),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return domain.AnnotatedDocument{}, fmt.Errorf("annotate: %w", err)
	}

	a.logger.Debug("Annotation completed",
		zap.String("provider", a.provider),
		zap.Duration("duration", duration),
		zap.Int("input_bytes", len(text)),
		zap.Int("tokens", len(doc.Tokens)),
		zap.Int("chunks", len(doc.Chunks)),
	)

	return doc, nil
}

// HealthCheck delegates to the inner annotator when it supports checks.
func (a *InstrumentedAnnotator) HealthCheck(ctx context.Context) error {
	if hc, ok := a.inner.(domain.HealthChecker); ok {
		if err := hc.HealthCheck(ctx); err != nil {
			return fmt.Errorf("annotator health check: %w", err)
		}
	}
	return nil
}
