package lexicon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/liuzl/gocc"
	"github.com/yanyiwu/gojieba"
)

// jiebaDictFiles are the files gojieba expects, in constructor order.
var jiebaDictFiles = []string{
	"jieba.dict.utf8",
	"hmm_model.utf8",
	"user.dict.utf8",
	"idf.utf8",
	"stop_words.utf8",
}

// JiebaDictPaths returns the gojieba dictionary paths inside dir and fails if
// any of them is missing.
func JiebaDictPaths(dir string) ([]string, error) {
	var paths []string
	for _, name := range jiebaDictFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("jieba dictionary: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Converter converts text between Chinese scripts.
type Converter interface {
	Convert(string) (string, error)
}

// NewConverters loads the gocc converters used to render words the CEDICT
// dictionary does not know.
func NewConverters() (toSimplified, toTraditional Converter, err error) {
	t2s, err := gocc.New("t2s")
	if err != nil {
		return nil, nil, fmt.Errorf("load t2s converter: %w", err)
	}
	s2t, err := gocc.New("s2t")
	if err != nil {
		return nil, nil, fmt.Errorf("load s2t converter: %w", err)
	}
	return t2s, s2t, nil
}

// Jieba breaks spans with gojieba and renders every word through a CEDICT
// dictionary, falling back to script converters for unknown words.
type Jieba struct {
	jieba         *gojieba.Jieba
	dict          *Dictionary
	toSimplified  Converter
	toTraditional Converter
	hmm           bool
}

// JiebaOption configures a Jieba lexicon.
type JiebaOption func(*Jieba)

// WithConverters sets the fallback script converters.
func WithConverters(toSimplified, toTraditional Converter) JiebaOption {
	return func(j *Jieba) {
		j.toSimplified = toSimplified
		j.toTraditional = toTraditional
	}
}

// WithHMM enables jieba's HMM discovery of words missing from its dictionary.
func WithHMM(enabled bool) JiebaOption {
	return func(j *Jieba) { j.hmm = enabled }
}

// NewJieba creates a jieba-backed lexicon. With no paths gojieba uses its
// bundled dictionaries. Callers must Close it.
func NewJieba(dict *Dictionary, paths []string, opts ...JiebaOption) *Jieba {
	j := &Jieba{
		jieba: gojieba.NewJieba(paths...),
		dict:  dict,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Close frees the underlying segmenter.
func (j *Jieba) Close() {
	j.jieba.Free()
}

// Lookup cuts span with jieba and renders each word in both scripts.
func (j *Jieba) Lookup(span string) []Entry {
	words := j.jieba.Cut(span, j.hmm)
	out := make([]Entry, 0, len(words))
	for _, word := range words {
		out = append(out, j.render(word))
	}
	return out
}

func (j *Jieba) render(word string) Entry {
	if j.dict != nil {
		if entries := j.dict.Entries(word); len(entries) > 0 {
			return entries[0]
		}
	}

	entry := Entry{Traditional: word, Simplified: word}
	if j.toSimplified != nil {
		if s, err := j.toSimplified.Convert(word); err == nil {
			entry.Simplified = s
		}
	}
	if j.toTraditional != nil {
		if t, err := j.toTraditional.Convert(word); err == nil {
			entry.Traditional = t
		}
	}
	return entry
}
