// Package overlap computes lexical-overlap metrics between two annotated
// documents: item extraction per metric, Jaccard scoring, and the three-way
// partition of items into overlapping / reference-only / target-only.
package overlap

import "github.com/lexmatch-io/lexmatch/internal/domain"

// Metric identifies one of the built-in overlap metrics.
type Metric string

const (
	// Total compares the lowercase surface of every non-punctuation token.
	Total Metric = "total_overlap"
	// Lemma compares the lowercase lemma of every non-punctuation token.
	Lemma Metric = "lemma_overlap"
	// Content compares the lowercase surface of content-word tokens.
	Content Metric = "content_overlap"
	// LemmaContent compares the lowercase lemma of content-word tokens.
	LemmaContent Metric = "lemma_content_overlap"
	// Multiword compares the lowercase surface of noun chunks.
	Multiword Metric = "multiword_overlap"
)

// Metrics lists the built-in metrics in report order.
var Metrics = []Metric{Total, Lemma, Content, LemmaContent, Multiword}

var displayNames = map[Metric]string{
	Total:        "Total Token Overlap",
	Lemma:        "Lemmatized Overlap",
	Content:      "Content Word Overlap",
	LemmaContent: "Lemmatized Content Overlap",
	Multiword:    "Multiword Unit Overlap",
}

// DisplayName returns the human-readable metric name.
func (m Metric) DisplayName() string {
	if name, ok := displayNames[m]; ok {
		return name
	}
	return string(m)
}

// ContentPOS is the part-of-speech set that qualifies a token as a content word.
var ContentPOS = map[domain.POS]struct{}{
	domain.POSNoun: {},
	domain.POSVerb: {},
	domain.POSAdj:  {},
	domain.POSAdv:  {},
}
