package tokenizer

import (
	"io"
	"log/slog"

	"github.com/liuminhaw/mixtoken/internal/contractions"
	"github.com/liuminhaw/mixtoken/internal/lexicon"
)

// Options holds the per-instance settings of a Tokenizer.
type Options struct {
	// LemmaCache, when set, is consulted before the lemmatizer and receives
	// newly computed lemmas. The caller owns it.
	LemmaCache LemmaCache
	// Simplified renders Chinese words in Simplified script instead of the
	// default Traditional.
	Simplified bool
	// Expander normalises text before splitting. Defaults to
	// contractions.Expand.
	Expander func(string) string
	Logger   *slog.Logger
}

// Tokenizer splits text mixing Chinese and Latin script into tokens and
// optionally reduces the non-Chinese tokens to lemmas. Its configuration is
// fixed at construction.
type Tokenizer struct {
	lexicon    Lexicon
	lemmatizer Lemmatizer
	cache      LemmaCache
	simplified bool
	expand     func(string) string
	logger     *slog.Logger
}

// New returns a Tokenizer over a shared, read-only lexicon. With a nil
// lemmatizer Lemmatize returns tokens unchanged.
func New(lex Lexicon, lem Lemmatizer, opts Options) *Tokenizer {
	t := &Tokenizer{
		lexicon:    lex,
		lemmatizer: lem,
		cache:      opts.LemmaCache,
		simplified: opts.Simplified,
		expand:     opts.Expander,
		logger:     opts.Logger,
	}
	if t.expand == nil {
		t.expand = contractions.Expand
	}
	if t.logger == nil {
		t.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return t
}

// Simplified reports whether Chinese words are rendered in Simplified script.
func (t *Tokenizer) Simplified() bool {
	return t.simplified
}

// Tokenize returns the tokens of text. Anything other than a string yields
// an empty result. Digits, punctuation and whitespace never appear in tokens.
func (t *Tokenizer) Tokenize(text any) []string {
	s, ok := text.(string)
	if !ok {
		return []string{}
	}

	spans := Split(t.expand(s))
	tokens := make([]string, 0, len(spans))

	if !ContainsChinese(s) {
		for _, span := range spans {
			tokens = append(tokens, span.Text)
		}
		return tokens
	}

	for _, span := range spans {
		if span.Kind == KindChinese {
			tokens = append(tokens, segmentChinese(t.lexicon, span.Text, t.simplified)...)
			continue
		}
		tokens = append(tokens, span.Text)
	}
	return tokens
}

// Lemmatize tokenizes text and replaces every non-Chinese token with its
// lemmas. Chinese tokens are kept unchanged.
func (t *Tokenizer) Lemmatize(text any) []string {
	s, ok := text.(string)
	if !ok {
		return []string{}
	}

	tokens := t.Tokenize(s)
	hasChinese := ContainsChinese(s)

	lemmas := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if hasChinese && ContainsChinese(token) {
			lemmas = append(lemmas, token)
			continue
		}
		lemmas = append(lemmas, t.resolveLemma(token)...)
	}

	t.logger.Debug("lemmatized", "tokens", len(tokens), "lemmas", len(lemmas))
	return lemmas
}

// Segment returns the lexicon entries of every Chinese span in text, in
// order.
func (t *Tokenizer) Segment(text string) []lexicon.Entry {
	entries := []lexicon.Entry{}
	for span := range Spans(t.expand(text)) {
		if span.Kind == KindChinese {
			entries = append(entries, t.lexicon.Lookup(span.Text)...)
		}
	}
	return entries
}
