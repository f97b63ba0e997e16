package domain

import "context"

// Annotator is the shared linguistic-annotation contract between layers.
// Implementations must be deterministic for a fixed model version, return an
// empty document (not an error) for empty input, and be safe for concurrent
// use once constructed.
type Annotator interface {
	Annotate(ctx context.Context, text string) (AnnotatedDocument, error)
}

// HealthChecker verifies annotator provider availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
