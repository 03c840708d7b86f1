package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLemmaCache_HitSkipsLemmatizer(t *testing.T) {
	cache := MapCache{"was": "be", "goes": "go"}
	tok, lem := setupTestTokenizer(t, Options{LemmaCache: cache})

	assert.Equal(t, []string{"be", "go"}, tok.Lemmatize("was goes"))
	assert.Zero(t, lem.calls)
}

func TestLemmaCache_WriteBackOnMiss(t *testing.T) {
	cache := MapCache{}
	tok, lem := setupTestTokenizer(t, Options{LemmaCache: cache})

	assert.Equal(t, []string{"he", "be", "do"}, tok.Lemmatize("he is doing"))
	assert.Equal(t, 3, lem.calls)
	assert.Equal(t, MapCache{"he": "he", "is": "be", "doing": "do"}, cache)

	assert.Equal(t, []string{"he", "be", "do"}, tok.Lemmatize("he is doing"))
	assert.Equal(t, 3, lem.calls)
}

func TestLemmaCache_ExistingEntriesWin(t *testing.T) {
	cache := MapCache{"is": "exist"}
	tok, _ := setupTestTokenizer(t, Options{LemmaCache: cache})

	assert.Equal(t, []string{"exist"}, tok.Lemmatize("is"))
	assert.Equal(t, "exist", cache["is"])
}

func TestLemmaCache_EmptyValueIsMiss(t *testing.T) {
	cache := MapCache{"is": ""}
	tok, lem := setupTestTokenizer(t, Options{LemmaCache: cache})

	assert.Equal(t, []string{"be"}, tok.Lemmatize("is"))
	assert.Equal(t, 1, lem.calls)
	// Set never overwrites, even an empty entry.
	assert.Equal(t, "", cache["is"])
}

func TestLemmaCache_MultipleFormsNotCached(t *testing.T) {
	cache := MapCache{}
	tok, lem := setupTestTokenizer(t, Options{LemmaCache: cache})
	lem.table["saw"] = []string{"see", "saw"}

	assert.Equal(t, []string{"see", "saw"}, tok.Lemmatize("saw"))
	assert.NotContains(t, cache, "saw")
}

func TestLemmaCache_ChineseTokensNeverCached(t *testing.T) {
	cache := MapCache{}
	tok, _ := setupTestTokenizer(t, Options{LemmaCache: cache})

	tok.Lemmatize("你好 hello")
	assert.Equal(t, MapCache{"hello": "hello"}, cache)
}

func TestLemmaCache_CaseSensitiveKeys(t *testing.T) {
	cache := MapCache{"is": "be"}
	tok, lem := setupTestTokenizer(t, Options{LemmaCache: cache})

	tok.Lemmatize("Is")
	assert.Equal(t, 1, lem.calls)
	assert.Contains(t, cache, "Is")
}

func TestMapCache_SetDoesNotOverwrite(t *testing.T) {
	cache := MapCache{}
	cache.Set("was", "be")
	cache.Set("was", "was")

	lemma, ok := cache.Get("was")
	assert.True(t, ok)
	assert.Equal(t, "be", lemma)

	_, ok = cache.Get("missing")
	assert.False(t, ok)
}
