package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapConverter map[string]string

func (m mapConverter) Convert(s string) (string, error) {
	if out, ok := m[s]; ok {
		return out, nil
	}
	return "", errors.New("no conversion")
}

func TestJieba_Lookup(t *testing.T) {
	dict := loadTestDictionary(t)
	j := NewJieba(dict, nil, WithHMM(true))
	defer j.Close()

	entries := j.Lookup("我来到北京清华大学")
	assert.Equal(t, "我来到北京清华大学", strings.Join(simplified(entries), ""))
	require.NotEmpty(t, entries)
	assert.Equal(t, "我", entries[0].Simplified)
}

func TestJieba_RenderUsesDictionaryFirst(t *testing.T) {
	dict := loadTestDictionary(t)
	j := &Jieba{
		dict:          dict,
		toSimplified:  mapConverter{"北京": "北京"},
		toTraditional: mapConverter{"电脑": "should not be used"},
	}

	assert.Equal(t, "電腦", j.render("电脑").Traditional)
}

func TestJieba_RenderFallsBackToConverters(t *testing.T) {
	j := &Jieba{
		dict:          loadTestDictionary(t),
		toSimplified:  mapConverter{"臺灣": "台湾"},
		toTraditional: mapConverter{"臺灣": "臺灣"},
	}

	assert.Equal(t, Entry{Traditional: "臺灣", Simplified: "台湾"}, j.render("臺灣"))
	// A failing converter leaves the word unchanged.
	assert.Equal(t, Entry{Traditional: "北京", Simplified: "北京"}, j.render("北京"))
}

func TestJiebaDictPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range jiebaDictFiles {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}

	paths, err := JiebaDictPaths(dir)
	require.NoError(t, err)
	require.Len(t, paths, len(jiebaDictFiles))
	assert.Equal(t, filepath.Join(dir, "jieba.dict.utf8"), paths[0])

	require.NoError(t, os.Remove(filepath.Join(dir, "idf.utf8")))
	_, err = JiebaDictPaths(dir)
	assert.Error(t, err)
}
