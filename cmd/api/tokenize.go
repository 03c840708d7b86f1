package main

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/liuminhaw/mixtoken/internal/tokenizer"
	"github.com/liuminhaw/mixtoken/internal/validator"
	"golang.org/x/text/unicode/norm"
)

// textInput is the body shared by the tokenizer routes. Text is left untyped
// so that non-string values yield an empty token list instead of an error.
type textInput struct {
	Text       any   `json:"text"`
	Simplified *bool `json:"simplified"`
}

// readTextInput decodes and validates the request body, normalizing string
// text so that composed and decomposed letters tokenize alike.
func (app *application) readTextInput(w http.ResponseWriter, r *http.Request) (*textInput, bool) {
	var input textInput

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return nil, false
	}

	if s, ok := input.Text.(string); ok {
		v := validator.New()
		v.Check(
			validator.MaxRunes(s, app.config.tokenizer.maxTextLength),
			"text",
			"must not be longer than the configured maximum text length",
		)
		if !v.Valid() {
			app.failedValidationResponse(w, r, v.Errors)
			return nil, false
		}
		input.Text = normalizeLetters(s)
	}

	return &input, true
}

// normalizeLetters applies NFC to everything but Han characters. NFC would
// map CJK compatibility ideographs to their unified forms, and Han text is
// returned as written.
func normalizeLetters(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	start := 0
	for i, r := range s {
		if tokenizer.IsHan(r) {
			b.WriteString(norm.NFC.String(s[start:i]))
			b.WriteRune(r)
			start = i + utf8.RuneLen(r)
		}
	}
	b.WriteString(norm.NFC.String(s[start:]))

	return b.String()
}

func (app *application) tokenizerFor(input *textInput) *tokenizer.Tokenizer {
	simplified := app.config.tokenizer.simplified
	if input.Simplified != nil {
		simplified = *input.Simplified
	}
	if simplified {
		return app.simplified
	}
	return app.traditional
}

func (app *application) tokenizeHandler(w http.ResponseWriter, r *http.Request) {
	input, ok := app.readTextInput(w, r)
	if !ok {
		return
	}

	tokens := app.tokenizerFor(input).Tokenize(input.Text)

	err := app.writeJSON(w, http.StatusOK, envelope{"tokens": tokens}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) lemmatizeHandler(w http.ResponseWriter, r *http.Request) {
	input, ok := app.readTextInput(w, r)
	if !ok {
		return
	}

	lemmas := app.tokenizerFor(input).Lemmatize(input.Text)

	err := app.writeJSON(w, http.StatusOK, envelope{"lemmas": lemmas}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) segmentHandler(w http.ResponseWriter, r *http.Request) {
	input, ok := app.readTextInput(w, r)
	if !ok {
		return
	}

	text, isString := input.Text.(string)
	if !isString {
		app.badRequestResponse(w, r, errors.New("text must be a string"))
		return
	}

	entries := app.tokenizerFor(input).Segment(text)

	err := app.writeJSON(w, http.StatusOK, envelope{"entries": entries}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
