package domain

// KeyPrefix prefixes every key the service writes to the shared store.
const KeyPrefix = "lexmatch:"
