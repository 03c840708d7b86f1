package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadTestDictionary(t *testing.T) *Dictionary {
	t.Helper()
	dict, err := LoadFile("testdata/cedict_ts.u8")
	require.NoError(t, err)
	return dict
}

func traditional(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Traditional
	}
	return out
}

func simplified(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Simplified
	}
	return out
}

func TestLoadFile(t *testing.T) {
	dict := loadTestDictionary(t)

	assert.Equal(t, 20, dict.Len())
	assert.Equal(t, 2, dict.Skipped())
}

func TestLoadFile_Gzip(t *testing.T) {
	plain := loadTestDictionary(t)

	dict, err := LoadFile("testdata/cedict_ts.u8.gz")
	require.NoError(t, err)
	assert.Equal(t, plain.Len(), dict.Len())
	assert.Equal(t, traditional(plain.Lookup("邊度有櫃員機呀")), traditional(dict.Lookup("邊度有櫃員機呀")))
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.u8")
	require.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(strings.NewReader("# only comments\n\n"))
	assert.ErrorIs(t, err, ErrEmptyDictionary)
}

func TestParse_EntryFields(t *testing.T) {
	dict, err := Parse(strings.NewReader("電腦 电脑 [dian4 nao3] /computer/CL:臺|台[tai2]/\n"))
	require.NoError(t, err)

	entries := dict.Entries("电脑")
	require.Len(t, entries, 1)
	assert.Equal(t, Entry{
		Traditional: "電腦",
		Simplified:  "电脑",
		Pinyin:      "dian4 nao3",
		Definitions: []string{"computer", "CL:臺|台[tai2]"},
	}, entries[0])
}

func TestDictionary_LookupLongestMatch(t *testing.T) {
	dict := loadTestDictionary(t)

	entries := dict.Lookup("邊度有櫃員機呀")
	assert.Equal(t, []string{"邊度", "有", "櫃員機", "呀"}, traditional(entries))
	assert.Equal(t, []string{"边度", "有", "柜员机", "呀"}, simplified(entries))
}

func TestDictionary_LookupSimplifiedInput(t *testing.T) {
	dict := loadTestDictionary(t)

	entries := dict.Lookup("我家没有电脑")
	assert.Equal(t, []string{"我", "家", "没有", "电脑"}, simplified(entries))
	assert.Equal(t, []string{"我", "家", "沒有", "電腦"}, traditional(entries))
}

func TestDictionary_LookupUnknownRunes(t *testing.T) {
	dict := loadTestDictionary(t)

	entries := dict.Lookup("你好嗎")
	require.Len(t, entries, 2)
	assert.Equal(t, "你好", entries[0].Traditional)
	assert.Equal(t, Entry{Traditional: "嗎", Simplified: "嗎"}, entries[1])
}

func TestDictionary_LookupScriptPreference(t *testing.T) {
	dict := loadTestDictionary(t)

	// With no context the traditional headword wins.
	entries := dict.Lookup("干")
	require.Len(t, entries, 1)
	assert.Equal(t, "干", entries[0].Traditional)

	// After a word only spelled that way in simplified, the simplified
	// headword group is preferred.
	entries = dict.Lookup("头发干")
	assert.Equal(t, []string{"頭髮", "乾"}, traditional(entries))
	assert.Equal(t, []string{"头发", "干"}, simplified(entries))

	// An unknown rune leaves the preference where it was.
	entries = dict.Lookup("嗎干")
	assert.Equal(t, []string{"嗎", "干"}, traditional(entries))
	assert.Equal(t, []string{"嗎", "干"}, simplified(entries))

	entries = dict.Lookup("头发嗎干")
	assert.Equal(t, []string{"頭髮", "嗎", "乾"}, traditional(entries))
}

func TestDictionary_LookupEmpty(t *testing.T) {
	dict := loadTestDictionary(t)
	assert.Empty(t, dict.Lookup(""))
}

func TestDictionary_Entries(t *testing.T) {
	dict := loadTestDictionary(t)

	entries := dict.Entries("发")
	require.Len(t, entries, 2)
	assert.Equal(t, "發", entries[0].Traditional)
	assert.Equal(t, "髮", entries[1].Traditional)

	assert.Nil(t, dict.Entries("嗎"))
}
