package overlap

import (
	"time"

	"github.com/lexmatch-io/lexmatch/internal/domain"
)

// Report is the immutable outcome of one analysis request: every built-in
// metric scored for the reference/target pair, plus the original texts and
// the analysis timestamp. Freshly constructed per request; no retained state.
type Report struct {
	Results   map[Metric]Result `json:"results"`
	Reference string            `json:"reference"`
	Target    string            `json:"target"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewReport classifies both documents and scores each metric once.
func NewReport(reference, target string, refDoc, targetDoc domain.AnnotatedDocument, createdAt time.Time) Report {
	refSets := ItemSets(refDoc)
	targetSets := ItemSets(targetDoc)

	results := make(map[Metric]Result, len(Metrics))
	for _, m := range Metrics {
		results[m] = Compare(refSets[m], targetSets[m])
	}

	return Report{
		Results:   results,
		Reference: reference,
		Target:    target,
		CreatedAt: createdAt,
	}
}
