package english

import "github.com/lexmatch-io/lexmatch/internal/domain"

// nounChunks groups tokens into noun-phrase spans: an optional determiner,
// a run of adjectives or numbers, then one or more nouns. A lone pronoun
// also forms a chunk. Chunk text is the original surface slice, whitespace
// included, so downstream matching stays surface-level.
func nounChunks(text string, toks []token, tags []domain.POS) []domain.Chunk {
	chunks := make([]domain.Chunk, 0)

	i := 0
	for i < len(toks) {
		switch tags[i] {
		case domain.POSPron:
			chunks = append(chunks, domain.Chunk{Text: toks[i].text})
			i++

		case domain.POSDet, domain.POSAdj, domain.POSNum, domain.POSNoun:
			start := i
			j := i
			if tags[j] == domain.POSDet {
				j++
			}
			for j < len(toks) && (tags[j] == domain.POSAdj || tags[j] == domain.POSNum) {
				j++
			}
			nounStart := j
			for j < len(toks) && tags[j] == domain.POSNoun {
				j++
			}
			if j == nounStart {
				// No noun head; rescan from the next token.
				i = start + 1
				continue
			}
			chunks = append(chunks, domain.Chunk{Text: text[toks[start].start:toks[j-1].end]})
			i = j

		default:
			i++
		}
	}

	return chunks
}
