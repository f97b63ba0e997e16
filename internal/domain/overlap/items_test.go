package overlap

import (
	"testing"

	"github.com/lexmatch-io/lexmatch/internal/domain"
)

func tok(text, lemma string, pos domain.POS) domain.AnnotatedToken {
	return domain.AnnotatedToken{Text: text, Lemma: lemma, POS: pos}
}

func punct(text string) domain.AnnotatedToken {
	return domain.AnnotatedToken{Text: text, Lemma: text, POS: domain.POSPunct, IsPunct: true}
}

func TestItemSets_EmptyDocument(t *testing.T) {
	sets := ItemSets(domain.AnnotatedDocument{})
	for _, m := range Metrics {
		if len(sets[m]) != 0 {
			t.Errorf("%s: expected empty set, got %v", m, sets[m])
		}
	}
}

func TestItemSets_PunctuationExcluded(t *testing.T) {
	doc := domain.AnnotatedDocument{
		Tokens: []domain.AnnotatedToken{
			tok("The", "the", domain.POSDet),
			tok("cat", "cat", domain.POSNoun),
			tok("sat", "sit", domain.POSVerb),
			punct("."),
		},
	}

	sets := ItemSets(doc)

	for _, m := range []Metric{Total, Lemma, Content, LemmaContent} {
		if _, ok := sets[m]["."]; ok {
			t.Errorf("%s contains punctuation item", m)
		}
	}
	if got := sortedItems(sets[Total]); !equalStrings(got, []string{"cat", "sat", "the"}) {
		t.Errorf("total items = %v", got)
	}
}

func TestItemSets_LowercaseNormalization(t *testing.T) {
	doc := domain.AnnotatedDocument{
		Tokens: []domain.AnnotatedToken{
			tok("HELLO", "hello", domain.POSOther),
			tok("World", "world", domain.POSNoun),
		},
	}

	sets := ItemSets(doc)

	want := []string{"hello", "world"}
	if got := sortedItems(sets[Total]); !equalStrings(got, want) {
		t.Errorf("total items = %v, want %v", got, want)
	}
}

func TestItemSets_ContentWordFilter(t *testing.T) {
	doc := domain.AnnotatedDocument{
		Tokens: []domain.AnnotatedToken{
			tok("the", "the", domain.POSDet),
			tok("dogs", "dog", domain.POSNoun),
			tok("ran", "run", domain.POSVerb),
			tok("quickly", "quickly", domain.POSAdv),
			tok("big", "big", domain.POSAdj),
			tok("and", "and", domain.POSCconj),
			tok("they", "they", domain.POSPron),
		},
	}

	sets := ItemSets(doc)

	wantContent := []string{"big", "dogs", "quickly", "ran"}
	if got := sortedItems(sets[Content]); !equalStrings(got, wantContent) {
		t.Errorf("content items = %v, want %v", got, wantContent)
	}
	wantLemmaContent := []string{"big", "dog", "quickly", "run"}
	if got := sortedItems(sets[LemmaContent]); !equalStrings(got, wantLemmaContent) {
		t.Errorf("lemma content items = %v, want %v", got, wantLemmaContent)
	}
	// Function words still count for the token-level metrics.
	if _, ok := sets[Total]["the"]; !ok {
		t.Error("total items missing function word")
	}
}

func TestItemSets_RepeatedWordContributesOnce(t *testing.T) {
	doc := domain.AnnotatedDocument{
		Tokens: []domain.AnnotatedToken{
			tok("run", "run", domain.POSVerb),
			tok("run", "run", domain.POSVerb),
			tok("Run", "run", domain.POSVerb),
		},
	}

	sets := ItemSets(doc)

	if len(sets[Total]) != 1 {
		t.Errorf("total items = %v, want single item", sortedItems(sets[Total]))
	}
}

func TestItemSets_ChunksSurfaceOnly(t *testing.T) {
	doc := domain.AnnotatedDocument{
		Tokens: []domain.AnnotatedToken{
			tok("the", "the", domain.POSDet),
			tok("comprehensive", "comprehensive", domain.POSAdj),
			tok("studies", "study", domain.POSNoun),
		},
		Chunks: []domain.Chunk{
			{Text: "The comprehensive studies"},
		},
	}

	sets := ItemSets(doc)

	// Chunk surfaces are lowercased but never lemmatized.
	want := []string{"the comprehensive studies"}
	if got := sortedItems(sets[Multiword]); !equalStrings(got, want) {
		t.Errorf("multiword items = %v, want %v", got, want)
	}
}

func TestItemSets_OpaquePOSNotContent(t *testing.T) {
	doc := domain.AnnotatedDocument{
		Tokens: []domain.AnnotatedToken{
			tok("hm", "hm", domain.POS("INTJ")),
		},
	}

	sets := ItemSets(doc)

	if len(sets[Content]) != 0 {
		t.Errorf("opaque POS treated as content word: %v", sortedItems(sets[Content]))
	}
	if _, ok := sets[Total]["hm"]; !ok {
		t.Error("opaque POS token missing from total items")
	}
}
