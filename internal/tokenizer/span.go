package tokenizer

import (
	"iter"
	"unicode/utf8"
)

// SpanKind classifies a Span.
type SpanKind int

const (
	KindOther SpanKind = iota
	KindChinese
)

func (k SpanKind) String() string {
	if k == KindChinese {
		return "chinese"
	}
	return "other"
}

// Span is a maximal run of either Han characters or word letters.
type Span struct {
	Text string
	Kind SpanKind
}

// Diacritic letters from À to ž are kept inside words so "café" stays whole.
const (
	diacriticFirst = 'À'
	diacriticLast  = 'ž'
)

// isWordLetter accepts ASCII letters, underscore and the Latin-1/Extended-A
// diacritic block. Digits and everything else separate words.
func isWordLetter(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		return true
	case r >= diacriticFirst && r <= diacriticLast:
		return true
	}
	return false
}

// Spans scans text left to right and yields each Han run and word run in
// order. Runes matching neither rule are skipped. A change of script ends
// the current run.
func Spans(text string) iter.Seq[Span] {
	return func(yield func(Span) bool) {
		i := 0
		for i < len(text) {
			r, size := utf8.DecodeRuneInString(text[i:])

			var match func(rune) bool
			var kind SpanKind
			switch {
			case IsHan(r):
				match, kind = IsHan, KindChinese
			case isWordLetter(r):
				match, kind = isWordLetter, KindOther
			default:
				i += size
				continue
			}

			start := i
			for i < len(text) {
				r, size = utf8.DecodeRuneInString(text[i:])
				if !match(r) {
					break
				}
				i += size
			}

			if !yield(Span{Text: text[start:i], Kind: kind}) {
				return
			}
		}
	}
}

// Split collects Spans into a slice. The result is empty, never nil, when
// text holds no span.
func Split(text string) []Span {
	spans := []Span{}
	for s := range Spans(text) {
		spans = append(spans, s)
	}
	return spans
}
