package lexmatch

import (
	"context"
	"time"

	"github.com/lexmatch-io/lexmatch/internal/domain"
	"github.com/lexmatch-io/lexmatch/internal/domain/overlap"
)

// Annotator is the public contract for custom annotation providers.
type Annotator interface {
	Annotate(ctx context.Context, text string) (Document, error)
}

// Token is a single annotated token.
type Token struct {
	Text    string
	Lemma   string
	POS     string
	IsPunct bool
}

// Chunk is a multiword unit (noun phrase) in surface form.
type Chunk struct {
	Text string
}

// Document is the annotation of one input text.
type Document struct {
	Tokens []Token
	Chunks []Chunk
}

// Result holds one metric's score and item partition.
type Result struct {
	Score       float64
	Overlapping []string
	RefOnly     []string
	TargetOnly  []string
}

// Metric names as they appear in Report.Results.
const (
	TotalOverlap        = string(overlap.Total)
	LemmaOverlap        = string(overlap.Lemma)
	ContentOverlap      = string(overlap.Content)
	LemmaContentOverlap = string(overlap.LemmaContent)
	MultiwordOverlap    = string(overlap.Multiword)
)

// Report is a complete overlap analysis.
type Report struct {
	Results   map[string]Result
	Reference string
	Target    string
	CreatedAt time.Time
}

func (d Document) toInternal() domain.AnnotatedDocument {
	tokens := make([]domain.AnnotatedToken, len(d.Tokens))
	for i, t := range d.Tokens {
		tokens[i] = domain.AnnotatedToken{
			Text:    t.Text,
			Lemma:   t.Lemma,
			POS:     domain.POS(t.POS),
			IsPunct: t.IsPunct,
		}
	}
	chunks := make([]domain.Chunk, len(d.Chunks))
	for i, c := range d.Chunks {
		chunks[i] = domain.Chunk{Text: c.Text}
	}
	return domain.AnnotatedDocument{Tokens: tokens, Chunks: chunks}
}

func documentFromInternal(doc domain.AnnotatedDocument) Document {
	tokens := make([]Token, len(doc.Tokens))
	for i, t := range doc.Tokens {
		tokens[i] = Token{
			Text:    t.Text,
			Lemma:   t.Lemma,
			POS:     string(t.POS),
			IsPunct: t.IsPunct,
		}
	}
	chunks := make([]Chunk, len(doc.Chunks))
	for i, c := range doc.Chunks {
		chunks[i] = Chunk{Text: c.Text}
	}
	return Document{Tokens: tokens, Chunks: chunks}
}

func reportFromInternal(rep overlap.Report) Report {
	results := make(map[string]Result, len(rep.Results))
	for m, r := range rep.Results {
		results[string(m)] = Result{
			Score:       r.Score,
			Overlapping: r.Overlapping,
			RefOnly:     r.RefOnly,
			TargetOnly:  r.TargetOnly,
		}
	}
	return Report{
		Results:   results,
		Reference: rep.Reference,
		Target:    rep.Target,
		CreatedAt: rep.CreatedAt,
	}
}
