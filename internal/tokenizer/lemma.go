package tokenizer

// Lemmatizer maps tokens to their base forms. It may return more than one
// form per token and returns a token unchanged when no lemma is known.
type Lemmatizer interface {
	Lemmatize(tokens []string) []string
}

// LemmaCache stores lemmas already computed for a token. Set must not
// replace an existing entry.
type LemmaCache interface {
	Get(token string) (string, bool)
	Set(token, lemma string)
}

// MapCache is a LemmaCache over a caller owned map. It is not safe for
// concurrent use.
type MapCache map[string]string

func (m MapCache) Get(token string) (string, bool) {
	lemma, ok := m[token]
	return lemma, ok
}

func (m MapCache) Set(token, lemma string) {
	if _, ok := m[token]; !ok {
		m[token] = lemma
	}
}

// resolveLemma returns the lemmas of a single non-Chinese token. A cached
// lemma skips the lemmatizer. On a miss a single-form result is written back.
func (t *Tokenizer) resolveLemma(token string) []string {
	if t.cache != nil {
		if lemma, ok := t.cache.Get(token); ok && lemma != "" {
			return []string{lemma}
		}
	}

	if t.lemmatizer == nil {
		return []string{token}
	}
	lemmas := t.lemmatizer.Lemmatize([]string{token})

	if t.cache != nil && len(lemmas) == 1 && lemmas[0] != "" {
		t.cache.Set(token, lemmas[0])
		t.logger.Debug("lemma cached", "token", token, "lemma", lemmas[0])
	}
	return lemmas
}
