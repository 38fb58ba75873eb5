package analyzer

import (
	"regexp"
	"strings"
)

// minTokenLen is the shortest token kept by normalization.
const minTokenLen = 2

// tokenPattern matches lowercase word tokens, keeping internal hyphens
// ("front-end" stays one token) but stripping all other punctuation.
var tokenPattern = regexp.MustCompile(`[a-z0-9]+(?:-[a-z0-9]+)*`)

// defaultStopwords is the fixed stopword set shared by normalization and
// keyword significance filtering. Process-wide and immutable; never mutated
// after init.
var defaultStopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "is": {}, "was": {},
	"be": {}, "are": {}, "were": {}, "been": {}, "with": {}, "from": {},
	"by": {}, "as": {}, "it": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "i": {}, "you": {}, "he": {}, "she": {}, "we": {},
	"they": {}, "what": {}, "which": {}, "who": {}, "when": {}, "where": {},
	"why": {}, "how": {},
}

// Normalize converts raw document text into the canonical token stream:
// lowercase, punctuation stripped (internal hyphens preserved), tokens
// shorter than two characters dropped, stopwords dropped. Duplicates and
// order are preserved. Deterministic: identical input always yields
// identical output, and empty input yields an empty slice, not an error.
func (a *Analyzer) Normalize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if len(tok) < minTokenLen {
			continue
		}
		if _, stop := a.stopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}
