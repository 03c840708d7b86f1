// Package lemmatizer provides English lemmatizers for the tokenizer.
package lemmatizer

import (
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/kljensen/snowball/english"
)

const (
	EngineGolem    = "golem"
	EngineSnowball = "snowball"
)

// Engines lists the supported engine names.
var Engines = []string{EngineGolem, EngineSnowball}

// Lemmatizer maps each token to one or more base forms.
type Lemmatizer interface {
	Lemmatize(tokens []string) []string
}

// New returns the lemmatizer registered under engine.
func New(engine string) (Lemmatizer, error) {
	switch engine {
	case EngineGolem, "":
		return NewGolem()
	case EngineSnowball:
		return Snowball{}, nil
	default:
		return nil, fmt.Errorf("unknown lemmatizer engine: %q", engine)
	}
}

// Golem looks lemmas up in the golem English dictionary. Unknown words come
// back unchanged.
type Golem struct {
	lemmatizer *golem.Lemmatizer
}

// NewGolem loads the English dictionary. Loading takes a noticeable moment,
// so a single instance should be shared.
func NewGolem() (*Golem, error) {
	l, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load golem english dictionary: %w", err)
	}
	return &Golem{lemmatizer: l}, nil
}

func (g *Golem) Lemmatize(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, g.lemmatizer.Lemma(token))
	}
	return out
}

// Snowball reduces tokens with the Porter2 stemmer. Stems are not always
// dictionary words ("university" becomes "univers").
type Snowball struct{}

func (Snowball) Lemmatize(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, english.Stem(strings.ToLower(token), false))
	}
	return out
}
