package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// HealthHandler reports that the server is up.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// Routes mounts the health check and the API endpoints on r.
func Routes(r chi.Router) {
	r.Get("/health", HealthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/params/default", DefaultParamsHandler)
		r.Post("/score", ScoreHandler)
		r.Post("/compare", CompareHandler)
		r.Post("/sequences/info", SequencesInfoHandler)
	})
}
