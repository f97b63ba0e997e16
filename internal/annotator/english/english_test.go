package english

import (
	"context"
	"testing"

	"github.com/lexmatch-io/lexmatch/internal/domain"
)

func annotate(t *testing.T, text string) domain.AnnotatedDocument {
	t.Helper()
	doc, err := New().Annotate(context.Background(), text)
	if err != nil {
		t.Fatalf("Annotate(%q): %v", text, err)
	}
	return doc
}

func TestAnnotate_Empty(t *testing.T) {
	doc := annotate(t, "")
	if len(doc.Tokens) != 0 || len(doc.Chunks) != 0 {
		t.Errorf("empty input produced tokens=%d chunks=%d", len(doc.Tokens), len(doc.Chunks))
	}
}

func TestAnnotate_TheCatSat(t *testing.T) {
	doc := annotate(t, "The cat sat.")

	want := []domain.AnnotatedToken{
		{Text: "The", Lemma: "the", POS: domain.POSDet},
		{Text: "cat", Lemma: "cat", POS: domain.POSNoun},
		{Text: "sat", Lemma: "sit", POS: domain.POSVerb},
		{Text: ".", Lemma: ".", POS: domain.POSPunct, IsPunct: true},
	}
	if len(doc.Tokens) != len(want) {
		t.Fatalf("tokens = %v", doc.Tokens)
	}
	for i, w := range want {
		if doc.Tokens[i] != w {
			t.Errorf("token[%d] = %+v, want %+v", i, doc.Tokens[i], w)
		}
	}

	if len(doc.Chunks) != 1 || doc.Chunks[0].Text != "The cat" {
		t.Errorf("chunks = %v, want [The cat]", doc.Chunks)
	}
}

func TestAnnotate_Lemmas(t *testing.T) {
	tests := []struct {
		text  string
		token string
		lemma string
	}{
		{"Dogs run fast.", "Dogs", "dog"},
		{"Cats run fast.", "Cats", "cat"},
		{"She was running.", "running", "run"},
		{"He walked home.", "walked", "walk"},
		{"The studies were conducted.", "studies", "study"},
		{"The children went away.", "children", "child"},
		{"They were making boxes.", "making", "make"},
		{"It was used.", "was", "be"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			doc := annotate(t, tt.text)
			for _, tok := range doc.Tokens {
				if tok.Text == tt.token {
					if tok.Lemma != tt.lemma {
						t.Errorf("lemma(%q) = %q, want %q", tt.token, tok.Lemma, tt.lemma)
					}
					return
				}
			}
			t.Fatalf("token %q not found in %v", tt.token, doc.Tokens)
		})
	}
}

func TestAnnotate_ContentWordTags(t *testing.T) {
	doc := annotate(t, "Dogs run fast.")

	wantPOS := map[string]domain.POS{
		"Dogs": domain.POSNoun,
		"run":  domain.POSVerb,
		"fast": domain.POSAdv,
	}
	for _, tok := range doc.Tokens {
		if want, ok := wantPOS[tok.Text]; ok && tok.POS != want {
			t.Errorf("pos(%q) = %s, want %s", tok.Text, tok.POS, want)
		}
	}
}

func TestAnnotate_PunctuationFlag(t *testing.T) {
	doc := annotate(t, "Hello, world!")

	var puncts []string
	for _, tok := range doc.Tokens {
		if tok.IsPunct {
			puncts = append(puncts, tok.Text)
			if tok.POS != domain.POSPunct {
				t.Errorf("punct token %q tagged %s", tok.Text, tok.POS)
			}
		}
	}
	if len(puncts) != 2 || puncts[0] != "," || puncts[1] != "!" {
		t.Errorf("punct tokens = %v, want [, !]", puncts)
	}
}

func TestAnnotate_NounChunks(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"The comprehensive study found results.", []string{"The comprehensive study", "results"}},
		{"They analyzed data.", []string{"They", "data"}},
		{"A big dog and the small cat.", []string{"A big dog", "the small cat"}},
		{"run fast", nil},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			doc := annotate(t, tt.text)
			got := make([]string, 0, len(doc.Chunks))
			for _, c := range doc.Chunks {
				got = append(got, c.Text)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("chunks = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("chunk[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAnnotate_Deterministic(t *testing.T) {
	const text = "The researchers conducted a comprehensive study on climate change effects."

	first := annotate(t, text)
	second := annotate(t, text)

	if len(first.Tokens) != len(second.Tokens) {
		t.Fatalf("token counts differ: %d vs %d", len(first.Tokens), len(second.Tokens))
	}
	for i := range first.Tokens {
		if first.Tokens[i] != second.Tokens[i] {
			t.Errorf("token[%d] differs: %+v vs %+v", i, first.Tokens[i], second.Tokens[i])
		}
	}
}
