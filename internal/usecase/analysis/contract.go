package analysis

import (
	"context"

	"github.com/lexmatch-io/lexmatch/internal/domain"
)

// Annotator produces linguistic annotations for raw text.
type Annotator interface {
	Annotate(ctx context.Context, text string) (domain.AnnotatedDocument, error)
}
