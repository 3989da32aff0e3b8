package grader

import "strings"

// words splits text into lowercase whitespace-separated tokens with
// surrounding punctuation trimmed.
func words(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,;:!?()[]{}\"'")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// tagTerms flattens tags into a set of lowercase single-word terms, so
// a multi-word tag like "silver ring" contributes both "silver" and "ring".
func tagTerms(tags []string) map[string]struct{} {
	terms := make(map[string]struct{})
	for _, tag := range tags {
		for _, w := range words(tag) {
			terms[w] = struct{}{}
		}
	}
	return terms
}

// keywordDensity returns the fraction of words in text that match a tag
// term. Returns 0 for empty text or empty tags.
func keywordDensity(text string, tags []string) float64 {
	ws := words(text)
	if len(ws) == 0 {
		return 0
	}
	terms := tagTerms(tags)
	if len(terms) == 0 {
		return 0
	}

	matched := 0
	for _, w := range ws {
		if _, ok := terms[w]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(ws))
}

// containsAnyWord reports whether any word of text is in the lexicon.
// Matching is exact per word, not substring.
func containsAnyWord(text string, lexicon map[string]struct{}) bool {
	for _, w := range words(text) {
		if _, ok := lexicon[w]; ok {
			return true
		}
	}
	return false
}

// containsAnyPhrase reports whether text contains any lexicon phrase,
// case-insensitively.
func containsAnyPhrase(text string, phrases []string) bool {
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// lexicon builds a set from a word list.
func lexicon(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
