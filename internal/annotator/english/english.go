// Package english provides a dependency-free rule-based English annotator:
// a rune state-machine tokenizer, a suffix-and-exception lemmatizer, a
// lexicon-driven part-of-speech tagger, and a determiner/adjective/noun
// chunk grouper.
//
// The annotator is deterministic, immutable after construction, and safe
// for concurrent use by multiple goroutines. It trades tagging accuracy for
// zero setup: no model files, no downloads. Hosts that need higher-fidelity
// annotations can swap in the OpenAI-backed provider via configuration.
//
// Known limitations:
//
//   - Contractions (don't, it's) are kept as single word tokens rather than
//     split into clitic pairs.
//   - Chunk detection does not admit adverbs inside noun phrases, so
//     "the very big dog" yields "big dog" without its determiner run.
//   - Out-of-lexicon words default to NOUN, which over-reports nouns for
//     rare verbs and adjectives.
package english

import (
	"context"
	"strings"

	"github.com/lexmatch-io/lexmatch/internal/domain"
)

// Annotator implements domain.Annotator with rule-based English analysis.
type Annotator struct{}

// New creates the built-in English annotator.
func New() *Annotator { return &Annotator{} }

// Annotate tokenizes, tags, lemmatizes, and chunk-groups the text.
// Empty input yields an empty document, never an error.
func (a *Annotator) Annotate(_ context.Context, text string) (domain.AnnotatedDocument, error) {
	if text == "" {
		return domain.AnnotatedDocument{}, nil
	}

	toks := tokenize(text)
	tags := tagAll(toks)

	tokens := make([]domain.AnnotatedToken, len(toks))
	for i, tk := range toks {
		lower := strings.ToLower(tk.text)
		tokens[i] = domain.AnnotatedToken{
			Text:    tk.text,
			Lemma:   lemmatize(lower, tags[i]),
			POS:     tags[i],
			IsPunct: tk.kind == kindPunct,
		}
	}

	return domain.AnnotatedDocument{
		Tokens: tokens,
		Chunks: nounChunks(text, toks, tags),
	}, nil
}

// HealthCheck always succeeds: the annotator carries no external state.
func (a *Annotator) HealthCheck(_ context.Context) error { return nil }
