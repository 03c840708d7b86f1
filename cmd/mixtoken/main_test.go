package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLexiconFile = "../../internal/lexicon/testdata/cedict_ts.u8"

func runCLI(t *testing.T, stdin string, args ...string) []string {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	require.NoError(t, err, stderr.String())
	return strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
}

func TestRun_Arguments(t *testing.T) {
	lines := runCLI(t, "", "--lexicon", testLexiconFile, "hello, 邊度有櫃員機呀? thanks", "100")
	require.Len(t, lines, 2)
	assert.Equal(t, `["hello","邊度","有","櫃員機","呀","thanks"]`, lines[0])
	assert.Equal(t, `[]`, lines[1])
}

func TestRun_StdinSimplified(t *testing.T) {
	lines := runCLI(t, "我家有電腦\nhello world\n", "--lexicon", testLexiconFile, "--simplified")
	require.Len(t, lines, 2)
	assert.Equal(t, `["我","家","有","电脑"]`, lines[0])
	assert.Equal(t, `["hello","world"]`, lines[1])
}

func TestRun_LemmatizeWithCacheFile(t *testing.T) {
	cacheFile := filepath.Join(t.TempDir(), "lemmas.json")
	require.NoError(t, os.WriteFile(cacheFile, []byte(`{"running": "sprint"}`), 0o644))

	lines := runCLI(t, "", "--lexicon", testLexiconFile, "--lemmatize", "--cache-file", cacheFile,
		"你好, what's running")
	require.Len(t, lines, 1)
	assert.Equal(t, `["你好","what","be","sprint"]`, lines[0])

	b, err := os.ReadFile(cacheFile)
	require.NoError(t, err)
	var saved map[string]string
	require.NoError(t, json.Unmarshal(b, &saved))
	assert.Equal(t, "sprint", saved["running"])
	assert.Equal(t, "be", saved["is"])
	assert.NotContains(t, saved, "你好")
}

func TestRun_MissingCacheFileStartsEmpty(t *testing.T) {
	cacheFile := filepath.Join(t.TempDir(), "new.json")

	runCLI(t, "", "--lexicon", testLexiconFile, "--lemmatize", "--cache-file", cacheFile, "was")

	b, err := os.ReadFile(cacheFile)
	require.NoError(t, err)
	assert.JSONEq(t, `{"was": "be"}`, string(b))
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no lexicon", []string{"hello"}},
		{"missing lexicon file", []string{"--lexicon", "testdata/none.u8", "hello"}},
		{"unknown lemmatizer", []string{"--lexicon", testLexiconFile, "--lemmatizer", "wordnet"}},
		{"unknown flag", []string{"--lexicon", testLexiconFile, "--nope"}},
	}

	t.Setenv("MIXTOKEN_LEXICON", "")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(tt.args, strings.NewReader(""), &stdout, &stderr)
			assert.Error(t, err)
			assert.Empty(t, stdout.String())
		})
	}
}
