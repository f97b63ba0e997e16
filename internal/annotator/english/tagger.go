package english

import (
	"strings"

	"github.com/lexmatch-io/lexmatch/internal/domain"
)

// tagAll assigns a POS tag to every token. Closed-class lexicons win first;
// one context rule promotes words after a determiner or adjective to the
// noun-phrase reading; open classes fall back to suffix heuristics, with
// NOUN as the default for unknown words.
func tagAll(toks []token) []domain.POS {
	tags := make([]domain.POS, len(toks))
	prev := domain.POS("")
	for i, tk := range toks {
		tags[i] = tagOne(strings.ToLower(tk.text), tk.kind, prev)
		if tk.kind != kindPunct {
			prev = tags[i]
		}
	}
	return tags
}

func tagOne(lower string, kind tokenKind, prev domain.POS) domain.POS {
	switch kind {
	case kindNumber:
		return domain.POSNum
	case kindPunct:
		return domain.POSPunct
	case kindSymbol:
		return domain.POSOther
	}

	if _, ok := determiners[lower]; ok {
		return domain.POSDet
	}
	if _, ok := pronouns[lower]; ok {
		return domain.POSPron
	}
	if _, ok := auxiliaries[lower]; ok {
		return domain.POSAux
	}
	if _, ok := prepositions[lower]; ok {
		return domain.POSAdp
	}
	if _, ok := conjunctions[lower]; ok {
		return domain.POSCconj
	}

	// After a determiner or adjective the noun-phrase reading wins:
	// "a comprehensive study" tags study NOUN even though it can be a verb.
	if prev == domain.POSDet || prev == domain.POSAdj {
		if isAdjective(lower) {
			return domain.POSAdj
		}
		return domain.POSNoun
	}

	if isAdverb(lower) {
		return domain.POSAdv
	}
	if isVerb(lower) {
		return domain.POSVerb
	}
	if isAdjective(lower) {
		return domain.POSAdj
	}
	return domain.POSNoun
}

func isAdverb(w string) bool {
	if _, ok := adverbs[w]; ok {
		return true
	}
	return len(w) > 4 && strings.HasSuffix(w, "ly")
}

func isVerb(w string) bool {
	if _, ok := verbs[w]; ok {
		return true
	}
	if base, ok := irregularLemmas[w]; ok {
		_, isV := verbs[base]
		return isV
	}
	// Regular inflections resolve through the lemmatizer's verb stemming.
	if stem, ok := verbStem(w); ok {
		_, isV := verbs[stem]
		return isV
	}
	return false
}

var adjectiveSuffixes = []string{"ous", "ful", "ive", "able", "ible", "ical", "al", "ic", "ish", "less"}

func isAdjective(w string) bool {
	if _, ok := adjectives[w]; ok {
		return true
	}
	if len(w) < 5 {
		return false
	}
	for _, suf := range adjectiveSuffixes {
		if strings.HasSuffix(w, suf) {
			return true
		}
	}
	return false
}
