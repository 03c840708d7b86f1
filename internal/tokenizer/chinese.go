package tokenizer

import "github.com/liuminhaw/mixtoken/internal/lexicon"

// Lexicon breaks a run of Han characters into dictionary words. Unknown
// characters are expected back as single character entries.
type Lexicon interface {
	Lookup(span string) []lexicon.Entry
}

// segmentChinese renders every word the lexicon finds in span in the
// requested script.
func segmentChinese(lex Lexicon, span string, simplified bool) []string {
	entries := lex.Lookup(span)
	words := make([]string, 0, len(entries))
	for _, e := range entries {
		if simplified {
			words = append(words, e.Simplified)
		} else {
			words = append(words, e.Traditional)
		}
	}
	return words
}
