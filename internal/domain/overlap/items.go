package overlap

import (
	"strings"

	"github.com/lexmatch-io/lexmatch/internal/domain"
)

// Set is an item set for one metric: normalized strings with set semantics.
type Set map[string]struct{}

// ItemSets derives the per-metric item sets from one annotated document.
// Normalization is plain lowercasing of the surface or lemma string; repeated
// items collapse by set semantics. Punctuation tokens contribute to no metric;
// Multiword draws from chunks only. An empty document yields five empty sets.
func ItemSets(doc domain.AnnotatedDocument) map[Metric]Set {
	sets := make(map[Metric]Set, len(Metrics))
	for _, m := range Metrics {
		sets[m] = make(Set)
	}

	for _, t := range doc.Tokens {
		if t.IsPunct {
			continue
		}
		surface := strings.ToLower(t.Text)
		lemma := strings.ToLower(t.Lemma)
		sets[Total][surface] = struct{}{}
		sets[Lemma][lemma] = struct{}{}
		if _, ok := ContentPOS[t.POS]; ok {
			sets[Content][surface] = struct{}{}
			sets[LemmaContent][lemma] = struct{}{}
		}
	}

	for _, c := range doc.Chunks {
		sets[Multiword][strings.ToLower(c.Text)] = struct{}{}
	}

	return sets
}
