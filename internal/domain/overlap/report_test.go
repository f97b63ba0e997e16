package overlap

import (
	"testing"
	"time"

	"github.com/lexmatch-io/lexmatch/internal/domain"
)

func catSatDoc() domain.AnnotatedDocument {
	return domain.AnnotatedDocument{
		Tokens: []domain.AnnotatedToken{
			tok("The", "the", domain.POSDet),
			tok("cat", "cat", domain.POSNoun),
			tok("sat", "sit", domain.POSVerb),
			punct("."),
		},
		Chunks: []domain.Chunk{{Text: "The cat"}},
	}
}

func TestNewReport_IdenticalTexts(t *testing.T) {
	doc := catSatDoc()
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	rep := NewReport("The cat sat.", "The cat sat.", doc, doc, now)

	res := rep.Results[Total]
	if res.Score != 1.0 {
		t.Errorf("total score = %v, want 1.0", res.Score)
	}
	if want := []string{"cat", "sat", "the"}; !equalStrings(res.Overlapping, want) {
		t.Errorf("overlapping = %v, want %v", res.Overlapping, want)
	}
	if len(res.RefOnly) != 0 || len(res.TargetOnly) != 0 {
		t.Errorf("expected empty exclusives, got %v / %v", res.RefOnly, res.TargetOnly)
	}
	for _, m := range Metrics {
		if got := rep.Results[m].Score; got != 1.0 {
			t.Errorf("%s: self-comparison score = %v, want 1.0", m, got)
		}
	}
	if !rep.CreatedAt.Equal(now) {
		t.Errorf("created_at = %v, want %v", rep.CreatedAt, now)
	}
}

func TestNewReport_EmptyReference(t *testing.T) {
	rep := NewReport("", "Anything here.", domain.AnnotatedDocument{}, domain.AnnotatedDocument{
		Tokens: []domain.AnnotatedToken{
			tok("Anything", "anything", domain.POSNoun),
			tok("here", "here", domain.POSAdv),
			punct("."),
		},
	}, time.Now())

	for _, m := range Metrics {
		res := rep.Results[m]
		if res.Score != 0 {
			t.Errorf("%s: score = %v, want 0", m, res.Score)
		}
		if len(res.RefOnly) != 0 {
			t.Errorf("%s: ref_only = %v, want empty", m, res.RefOnly)
		}
	}
	if len(rep.Results[Total].TargetOnly) == 0 {
		t.Error("total target_only should carry the target items")
	}
}

func TestNewReport_LemmaScenario(t *testing.T) {
	refDoc := domain.AnnotatedDocument{
		Tokens: []domain.AnnotatedToken{
			tok("Dogs", "dog", domain.POSNoun),
			tok("run", "run", domain.POSVerb),
			tok("fast", "fast", domain.POSAdv),
			punct("."),
		},
	}
	targetDoc := domain.AnnotatedDocument{
		Tokens: []domain.AnnotatedToken{
			tok("Cats", "cat", domain.POSNoun),
			tok("run", "run", domain.POSVerb),
			tok("fast", "fast", domain.POSAdv),
			punct("."),
		},
	}

	rep := NewReport("Dogs run fast.", "Cats run fast.", refDoc, targetDoc, time.Now())

	res := rep.Results[Lemma]
	if want := []string{"fast", "run"}; !equalStrings(res.Overlapping, want) {
		t.Errorf("lemma overlapping = %v, want %v", res.Overlapping, want)
	}
	if want := []string{"dog"}; !equalStrings(res.RefOnly, want) {
		t.Errorf("lemma ref_only = %v, want %v", res.RefOnly, want)
	}
	if want := []string{"cat"}; !equalStrings(res.TargetOnly, want) {
		t.Errorf("lemma target_only = %v, want %v", res.TargetOnly, want)
	}
}

func TestNewReport_CaseInsensitive(t *testing.T) {
	refDoc := domain.AnnotatedDocument{
		Tokens: []domain.AnnotatedToken{
			tok("HELLO", "hello", domain.POSOther),
			tok("world", "world", domain.POSNoun),
		},
	}
	targetDoc := domain.AnnotatedDocument{
		Tokens: []domain.AnnotatedToken{
			tok("hello", "hello", domain.POSOther),
			tok("WORLD", "world", domain.POSNoun),
		},
	}

	rep := NewReport("HELLO world", "hello WORLD", refDoc, targetDoc, time.Now())

	if got := rep.Results[Total].Score; got != 1.0 {
		t.Errorf("total score = %v, want 1.0", got)
	}
}

func TestNewReport_AllMetricsPresent(t *testing.T) {
	rep := NewReport("", "", domain.AnnotatedDocument{}, domain.AnnotatedDocument{}, time.Now())

	if len(rep.Results) != len(Metrics) {
		t.Fatalf("results has %d metrics, want %d", len(rep.Results), len(Metrics))
	}
	for _, m := range Metrics {
		if _, ok := rep.Results[m]; !ok {
			t.Errorf("missing metric %s", m)
		}
	}
}
