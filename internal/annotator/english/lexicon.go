package english

// Closed-class word lists and a core open-class lexicon. All lookups are on
// lowercased surface forms. The maps are package-level and never mutated
// after init, keeping the annotator safe for concurrent use.

func wordSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

var determiners = wordSet(
	"the", "a", "an", "this", "that", "these", "those",
	"my", "your", "his", "her", "its", "our", "their",
	"some", "any", "no", "every", "each", "all", "both", "either", "neither",
	"another", "such", "what", "which", "whose",
)

var pronouns = wordSet(
	"i", "you", "he", "she", "it", "we", "they",
	"me", "him", "us", "them",
	"myself", "yourself", "himself", "herself", "itself", "ourselves", "themselves",
	"mine", "yours", "hers", "ours", "theirs",
	"who", "whom", "someone", "anyone", "everyone", "nobody", "something", "nothing",
)

var prepositions = wordSet(
	"in", "on", "at", "by", "for", "with", "from", "of", "to", "into", "onto",
	"over", "under", "above", "below", "between", "among", "through", "during",
	"before", "after", "against", "about", "around", "across", "along", "behind",
	"beyond", "near", "off", "out", "up", "down", "within", "without", "toward",
	"towards", "upon", "per", "via",
)

var conjunctions = wordSet(
	"and", "or", "but", "nor", "so", "yet",
)

var auxiliaries = wordSet(
	"be", "am", "is", "are", "was", "were", "been", "being",
	"do", "does", "did",
	"have", "has", "had", "having",
	"will", "would", "shall", "should", "can", "could", "may", "might", "must",
)

var adverbs = wordSet(
	"very", "too", "also", "just", "not", "never", "always", "often", "sometimes",
	"here", "there", "now", "then", "soon", "still", "already", "again",
	"fast", "well", "hard", "late", "early", "far", "once", "twice",
	"quite", "rather", "almost", "enough", "even", "only", "really",
	"however", "therefore", "instead", "perhaps", "maybe",
)

// verbs maps base forms to themselves; inflected irregulars live in
// irregularLemmas. Membership drives both tagging and -s/-ed/-ing stripping.
var verbs = wordSet(
	"sit", "run", "walk", "say", "go", "make", "take", "find", "give", "get",
	"see", "know", "think", "come", "look", "use", "work", "call", "try",
	"need", "feel", "become", "leave", "put", "mean", "keep", "let", "begin",
	"show", "hear", "play", "move", "like", "live", "believe", "hold", "bring",
	"happen", "write", "provide", "stand", "lose", "pay", "meet", "include",
	"continue", "set", "learn", "change", "lead", "understand", "watch",
	"follow", "stop", "create", "speak", "read", "allow", "add", "spend",
	"grow", "open", "win", "offer", "remember", "love", "consider", "appear",
	"buy", "wait", "serve", "send", "expect", "build", "stay", "fall", "cut",
	"reach", "remain", "conduct", "analyze", "analyse", "discover", "perform",
	"examine", "investigate", "measure", "compare", "report", "observe",
	"increase", "decrease", "rise", "contain", "produce", "require", "suggest",
	"describe", "present", "collect", "test", "want", "help", "start", "turn",
	"ask", "tell", "seem", "cause", "share", "cover", "match",
)

var adjectives = wordSet(
	"big", "small", "large", "little", "long", "short", "high", "low", "old",
	"new", "young", "good", "bad", "great", "major", "minor", "same",
	"different", "important", "early", "late", "hard", "easy", "fast", "slow",
	"hot", "cold", "warm", "cool", "full", "empty", "strong", "weak", "clear",
	"dark", "light", "common", "rare", "recent", "certain", "possible", "real",
	"true", "false", "whole", "main", "several", "various", "multiple",
	"global", "local", "coastal", "seaside", "comprehensive", "extensive",
	"significant", "substantial", "available", "similar", "overall",
)

// irregularLemmas maps inflected forms to their dictionary base, covering
// irregular verbs, the be/have/do paradigms, and irregular noun plurals.
var irregularLemmas = map[string]string{
	// be / have / do
	"am": "be", "is": "be", "are": "be", "was": "be", "were": "be",
	"been": "be", "being": "be",
	"has": "have", "had": "have", "having": "have",
	"does": "do", "did": "do", "done": "do",

	// irregular verb pasts and participles
	"sat": "sit", "ran": "run", "went": "go", "gone": "go", "said": "say",
	"made": "make", "took": "take", "taken": "take", "found": "find",
	"gave": "give", "given": "give", "got": "get", "gotten": "get",
	"saw": "see", "seen": "see", "knew": "know", "known": "know",
	"thought": "think", "came": "come", "felt": "feel", "became": "become",
	"left": "leave", "meant": "mean", "kept": "keep", "began": "begin",
	"begun": "begin", "heard": "hear", "held": "hold", "brought": "bring",
	"wrote": "write", "written": "write", "stood": "stand", "lost": "lose",
	"paid": "pay", "met": "meet", "led": "lead", "understood": "understand",
	"spoke": "speak", "spoken": "speak", "spent": "spend", "grew": "grow",
	"grown": "grow", "won": "win", "bought": "buy", "sent": "send",
	"built": "build", "fell": "fall", "fallen": "fall", "rose": "rise",
	"risen": "rise", "told": "tell",

	// irregular noun plurals
	"men": "man", "women": "woman", "children": "child", "people": "person",
	"feet": "foot", "teeth": "tooth", "mice": "mouse", "geese": "goose",
	"data": "datum", "criteria": "criterion", "analyses": "analysis",
}
