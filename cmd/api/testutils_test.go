package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/liuminhaw/mixtoken/internal/cache"
	"github.com/liuminhaw/mixtoken/internal/lexicon"
	"github.com/liuminhaw/mixtoken/internal/tokenizer"
	"github.com/stretchr/testify/require"
)

const testLexiconFile = "../../internal/lexicon/testdata/cedict_ts.u8"

// tableLemmatizer maps tokens through a fixed table.
type tableLemmatizer map[string]string

func (l tableLemmatizer) Lemmatize(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if lemma, ok := l[tok]; ok {
			out = append(out, lemma)
			continue
		}
		out = append(out, tok)
	}
	return out
}

func newTestApplication(t *testing.T) *application {
	t.Helper()

	dict, err := lexicon.LoadFile(testLexiconFile)
	require.NoError(t, err)

	app := &application{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		lexiconSize: dict.Len(),
		memCache:    cache.NewMemory(),
		done:        make(chan struct{}),
	}
	app.config.env = "development"
	app.config.lexicon.engine = engineCedict
	app.config.cache.backend = cacheMemory
	app.config.tokenizer.maxTextLength = 100
	t.Cleanup(func() { close(app.done) })

	lem := tableLemmatizer{"is": "be", "are": "be", "doing": "do", "was": "be"}
	app.traditional = tokenizer.New(dict, lem, tokenizer.Options{LemmaCache: app.memCache})
	app.simplified = tokenizer.New(dict, lem, tokenizer.Options{LemmaCache: app.memCache, Simplified: true})

	return app
}

// do sends a request through the full handler chain and decodes the JSON
// response body.
func do(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		js, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(js)
	}

	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), rr.Body.String())
	return rr, resp
}

func stringSlice(t *testing.T, v any) []string {
	t.Helper()
	items, ok := v.([]any)
	require.True(t, ok, "expected a JSON array, got %T", v)
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		require.True(t, ok)
		out = append(out, s)
	}
	return out
}
