package english

import (
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	kindWord tokenKind = iota
	kindNumber
	kindPunct
	kindSymbol
)

// token is a scanned unit with byte offsets into the original text.
// The invariant text[t.start:t.end] == t.text holds for every token.
type token struct {
	text  string
	start int
	end   int
	kind  tokenKind
}

// tokenize splits text rune by rune. Whitespace separates tokens and is not
// emitted. Words keep internal apostrophes and hyphens; numbers keep a
// decimal point or comma between digits; each punctuation rune is its own
// token, matching how downstream metrics expect "." and "," to surface.
func tokenize(text string) []token {
	toks := make([]token, 0, len(text)/5+1)

	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		switch {
		case unicode.IsSpace(r):
			i += size

		case unicode.IsLetter(r):
			end := scanWord(text, i)
			toks = append(toks, token{text: text[i:end], start: i, end: end, kind: kindWord})
			i = end

		case unicode.IsDigit(r):
			end := scanNumber(text, i)
			toks = append(toks, token{text: text[i:end], start: i, end: end, kind: kindNumber})
			i = end

		case unicode.IsPunct(r):
			toks = append(toks, token{text: text[i : i+size], start: i, end: i + size, kind: kindPunct})
			i += size

		default:
			toks = append(toks, token{text: text[i : i+size], start: i, end: i + size, kind: kindSymbol})
			i += size
		}
	}

	return toks
}

// scanWord consumes letters, plus a single apostrophe or hyphen when it sits
// between letters (don't, state-of-the-art).
func scanWord(s string, start int) int {
	i := start
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsLetter(r) {
			i += size
			continue
		}
		if (r == '\'' || r == '’' || r == '-') && i > start {
			nr, _ := utf8.DecodeRuneInString(s[i+size:])
			if unicode.IsLetter(nr) {
				i += size
				continue
			}
		}
		break
	}
	return i
}

// scanNumber consumes digits with a single '.' or ',' allowed between digits.
func scanNumber(s string, start int) int {
	i := start
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsDigit(r) {
			i += size
			continue
		}
		if (r == '.' || r == ',') && i > start {
			nr, _ := utf8.DecodeRuneInString(s[i+size:])
			if unicode.IsDigit(nr) {
				i += size
				continue
			}
		}
		break
	}
	return i
}
