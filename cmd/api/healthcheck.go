package main

import (
	"net/http"
)

func (app *application) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"status": "available",
		"system_info": map[string]any{
			"environment": app.config.env,
			"version":     version,
		},
		"lexicon": map[string]any{
			"engine":  app.config.lexicon.engine,
			"entries": app.lexiconSize,
		},
		"lemma_cache": map[string]any{
			"backend": app.config.cache.backend,
			"entries": app.lemmaCacheSize(),
		},
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
