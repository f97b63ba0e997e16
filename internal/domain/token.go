package domain

// POS is a coarse part-of-speech tag using the Universal Dependencies
// inventory. Annotators may emit tags outside the named constants; such
// values are carried through untouched.
type POS string

// Universal POS tags emitted by the built-in annotator. The four content-word
// classes are the ones overlap metrics filter on.
const (
	POSNoun  POS = "NOUN"
	POSVerb  POS = "VERB"
	POSAdj   POS = "ADJ"
	POSAdv   POS = "ADV"
	POSPron  POS = "PRON"
	POSDet   POS = "DET"
	POSAdp   POS = "ADP"
	POSAux   POS = "AUX"
	POSCconj POS = "CCONJ"
	POSNum   POS = "NUM"
	POSPunct POS = "PUNCT"
	POSOther POS = "X"
)

// AnnotatedToken is a single token as produced by an annotator.
// Immutable once produced; owned by its AnnotatedDocument.
type AnnotatedToken struct {
	Text    string `json:"text"`
	Lemma   string `json:"lemma"`
	POS     POS    `json:"pos"`
	IsPunct bool   `json:"is_punct"`
}

// Chunk is a contiguous noun-phrase span, carried by surface text only.
// Chunks are never lemmatized; multiword matching is surface-level.
type Chunk struct {
	Text string `json:"text"`
}

// AnnotatedDocument is the annotator output for one input text:
// an ordered token sequence plus an ordered noun-chunk sequence.
// Read-only after production.
type AnnotatedDocument struct {
	Tokens []AnnotatedToken `json:"tokens"`
	Chunks []Chunk          `json:"chunks"`
}
