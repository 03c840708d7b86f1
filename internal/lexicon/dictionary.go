package lexicon

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/vcaesar/cedar"
)

// ErrEmptyDictionary is returned when a dictionary resource holds no usable
// entry.
var ErrEmptyDictionary = errors.New("dictionary has no entries")

// Entry is one dictionary word with both script renderings.
type Entry struct {
	Traditional string   `json:"traditional"`
	Simplified  string   `json:"simplified"`
	Pinyin      string   `json:"pinyin,omitempty"`
	Definitions []string `json:"definitions,omitempty"`
}

// index maps headwords of one script to groups of entries.
type index struct {
	trie   *cedar.Cedar
	groups [][]int
}

func newIndex() *index {
	return &index{trie: cedar.New()}
}

func (x *index) add(word string, entry int) {
	key := []byte(word)
	if g, err := x.trie.Get(key); err == nil {
		x.groups[g] = append(x.groups[g], entry)
		return
	}
	if err := x.trie.Insert(key, len(x.groups)); err != nil {
		return
	}
	x.groups = append(x.groups, []int{entry})
}

func (x *index) get(word string) []int {
	g, err := x.trie.Get([]byte(word))
	if err != nil {
		return nil
	}
	return x.groups[g]
}

// longest returns the byte length of the longest headword that prefixes s.
func (x *index) longest(s string) int {
	var node, best int
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		next, err := x.trie.Jump([]byte(s[i:i+size]), node)
		if err != nil {
			break
		}
		node = next
		i += size
		if _, err := x.trie.Value(node); err == nil {
			best = i
		}
	}
	return best
}

// Dictionary is a CC-CEDICT lexicon indexed by traditional and simplified
// headwords. It is read-only once loaded and safe for concurrent lookups.
type Dictionary struct {
	entries     []Entry
	traditional *index
	simplified  *index
	skipped     int
}

// LoadFile reads a CC-CEDICT file. Files ending in .gz are decompressed.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open dictionary %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	dict, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("load dictionary %s: %w", path, err)
	}
	return dict, nil
}

// Parse reads CC-CEDICT lines of the form
//
//	Traditional Simplified [pin1 yin1] /definition/another/
//
// Comments and blank lines are ignored, malformed lines are skipped.
func Parse(r io.Reader) (*Dictionary, error) {
	dict := &Dictionary{
		traditional: newIndex(),
		simplified:  newIndex(),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry, ok := parseLine(line)
		if !ok {
			dict.skipped++
			continue
		}
		dict.add(entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(dict.entries) == 0 {
		return nil, ErrEmptyDictionary
	}

	return dict, nil
}

func parseLine(line string) (Entry, bool) {
	fields := strings.SplitN(line, " ", 3)
	if len(fields) < 2 || fields[0] == "" || fields[1] == "" {
		return Entry{}, false
	}
	entry := Entry{Traditional: fields[0], Simplified: fields[1]}
	if len(fields) == 2 {
		return entry, true
	}

	rest := fields[2]
	if strings.HasPrefix(rest, "[") {
		end := strings.Index(rest, "]")
		if end < 0 {
			return Entry{}, false
		}
		entry.Pinyin = rest[1:end]
		rest = strings.TrimSpace(rest[end+1:])
	}
	for _, def := range strings.Split(strings.Trim(rest, "/"), "/") {
		if def = strings.TrimSpace(def); def != "" {
			entry.Definitions = append(entry.Definitions, def)
		}
	}
	return entry, true
}

func (d *Dictionary) add(entry Entry) {
	id := len(d.entries)
	d.entries = append(d.entries, entry)
	d.traditional.add(entry.Traditional, id)
	d.simplified.add(entry.Simplified, id)
}

// Len returns the number of entries.
func (d *Dictionary) Len() int { return len(d.entries) }

// Skipped returns the number of malformed lines ignored while loading.
func (d *Dictionary) Skipped() int { return d.skipped }

// Entries returns the entries whose traditional or simplified headword is
// exactly word. Traditional matches come first.
func (d *Dictionary) Entries(word string) []Entry {
	trad := d.traditional.get(word)
	simp := d.simplified.get(word)
	if len(trad) == 0 && len(simp) == 0 {
		return nil
	}

	seen := make(map[int]struct{}, len(trad)+len(simp))
	var out []Entry
	for _, ids := range [][]int{trad, simp} {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, d.entries[id])
		}
	}
	return out
}

// Lookup breaks span into dictionary words by greedy longest match against
// both headword indices. Runes that start no headword come back as single
// character entries rendered as themselves.
func (d *Dictionary) Lookup(span string) []Entry {
	var (
		out  []Entry
		pref preference
	)
	for i := 0; i < len(span); {
		n := d.traditional.longest(span[i:])
		if m := d.simplified.longest(span[i:]); m > n {
			n = m
		}
		if n == 0 {
			_, n = utf8.DecodeRuneInString(span[i:])
		}
		out = append(out, d.render(span[i:i+n], &pref))
		i += n
	}
	return out
}

// preference tracks which script the looked up text appears to be written in,
// so that words spelled the same in both scripts resolve consistently.
type preference struct {
	simplified  int
	traditional int
}

func (d *Dictionary) render(word string, pref *preference) Entry {
	trad := d.traditional.get(word)
	simp := d.simplified.get(word)

	var group []int
	switch {
	case len(simp) == 0:
		group = trad
	case len(trad) == 0:
		group = simp
	case pref.simplified > pref.traditional:
		group = simp
	default:
		group = trad
	}

	// A word missing from both indices counts for both scripts.
	if len(trad) == 0 {
		pref.simplified++
	}
	if len(simp) == 0 {
		pref.traditional++
	}

	if len(group) == 0 {
		return Entry{Traditional: word, Simplified: word}
	}
	return d.entries[group[0]]
}
