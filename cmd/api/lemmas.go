package main

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/liuminhaw/mixtoken/internal/data"
)

// lookupLemma returns the lemma known for token, checking the lemma cache
// before the database.
func (app *application) lookupLemma(token string) (*data.Lemma, error) {
	switch {
	case app.memCache != nil:
		if lemma, ok := app.memCache.Get(token); ok && lemma != "" {
			return &data.Lemma{Token: token, Lemma: lemma}, nil
		}
	case app.redisCache != nil:
		if lemma, ok := app.redisCache.Get(token); ok && lemma != "" {
			return &data.Lemma{Token: token, Lemma: lemma}, nil
		}
	}

	if app.models == nil {
		return nil, data.ErrRecordNotFound
	}
	return app.models.Lemmas.Get(token)
}

func (app *application) showLemmaHandler(w http.ResponseWriter, r *http.Request) {
	token := httprouter.ParamsFromContext(r.Context()).ByName("token")

	lemma, err := app.lookupLemma(token)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"lemma": lemma}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
