package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	// Healthcheck
	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", app.healthcheckHandler)

	// Tokenizer routes
	router.HandlerFunc(http.MethodPost, "/v1/tokenize", app.tokenizeHandler)
	router.HandlerFunc(http.MethodPost, "/v1/lemmatize", app.lemmatizeHandler)
	// Dictionary entries of the Chinese words, with pinyin and definitions
	router.HandlerFunc(http.MethodPost, "/v1/segment", app.segmentHandler)

	// Cached or persisted lemma of a single token
	router.HandlerFunc(http.MethodGet, "/v1/lemmas/:token", app.showLemmaHandler)

	return app.recoverPanic(app.logRequest(app.rateLimit(router)))
}
