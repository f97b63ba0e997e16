package english

import (
	"strings"

	"github.com/lexmatch-io/lexmatch/internal/domain"
)

// lemmatize returns the dictionary base form of a lowercased token.
// Irregular forms resolve through the exception table regardless of POS;
// regular suffix stripping only applies to the noun and verb readings, so
// unknown words pass through unchanged.
func lemmatize(lower string, pos domain.POS) string {
	if base, ok := irregularLemmas[lower]; ok {
		return base
	}
	switch pos {
	case domain.POSVerb, domain.POSAux:
		if stem, ok := verbStem(lower); ok {
			return stem
		}
		return lower
	case domain.POSNoun:
		return nounLemma(lower)
	default:
		return lower
	}
}

// nounLemma strips regular plural suffixes: -ies -> -y, -es after a
// sibilant, plain -s otherwise. Short words and -ss/-us/-is endings are left
// alone (gas, class, virus, basis).
func nounLemma(w string) string {
	switch {
	case len(w) > 4 && strings.HasSuffix(w, "ies"):
		return w[:len(w)-3] + "y"
	case len(w) > 3 && strings.HasSuffix(w, "es") && sibilantStem(w[:len(w)-2]):
		return w[:len(w)-2]
	case len(w) > 3 && strings.HasSuffix(w, "s") &&
		!strings.HasSuffix(w, "ss") && !strings.HasSuffix(w, "us") && !strings.HasSuffix(w, "is"):
		return w[:len(w)-1]
	}
	return w
}

func sibilantStem(stem string) bool {
	for _, suf := range []string{"s", "x", "z", "ch", "sh"} {
		if strings.HasSuffix(stem, suf) {
			return true
		}
	}
	return false
}

// verbStem strips regular verbal inflection (-ing, -ied, -ed, -ies, -es, -s)
// and reports whether the base lands in the verb lexicon. A doubled final
// consonant collapses (running -> run) and a dropped -e is restored
// (making -> make); stems that resolve to no known verb are rejected so
// words like "anything" keep their surface form.
func verbStem(w string) (string, bool) {
	switch {
	case len(w) > 5 && strings.HasSuffix(w, "ing"):
		if s, ok := knownVerb(w[:len(w)-3]); ok {
			return s, true
		}
	case len(w) > 4 && strings.HasSuffix(w, "ied"):
		if s, ok := knownVerb(w[:len(w)-3] + "y"); ok {
			return s, true
		}
	case len(w) > 3 && strings.HasSuffix(w, "ed"):
		if s, ok := knownVerb(w[:len(w)-2]); ok {
			return s, true
		}
	case len(w) > 4 && strings.HasSuffix(w, "ies"):
		if s, ok := knownVerb(w[:len(w)-3] + "y"); ok {
			return s, true
		}
	}
	if len(w) > 3 && strings.HasSuffix(w, "es") {
		if s, ok := knownVerb(w[:len(w)-2]); ok {
			return s, true
		}
	}
	if len(w) > 3 && strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") {
		if s, ok := knownVerb(w[:len(w)-1]); ok {
			return s, true
		}
	}
	return "", false
}

// knownVerb resolves a candidate stem against the verb lexicon, trying the
// stem itself, its de-doubled form, and the stem with -e restored.
func knownVerb(stem string) (string, bool) {
	if _, ok := verbs[stem]; ok {
		return stem, true
	}
	if n := len(stem); n > 2 && stem[n-1] == stem[n-2] {
		if _, ok := verbs[stem[:n-1]]; ok {
			return stem[:n-1], true
		}
	}
	if withE := stem + "e"; len(stem) > 1 {
		if _, ok := verbs[withE]; ok {
			return withE, true
		}
	}
	return "", false
}
