package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Post("/results", s.handleRecordResult)

		r.Route("/progress", func(r chi.Router) {
			r.Get("/", s.handleProgress)
			r.Delete("/", s.handleClearProgress)
			r.Get("/summary", s.handleSummary)
			r.Get("/global", s.handleGlobalStats)
			r.Get("/games/{game}/{theme}", s.handleGameThemeStats)
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/", s.handleListStats)
			r.Get("/aggregate", s.handleAggregate)
			r.Get("/top", s.handleTopScores)
		})
	})

	r.Get("/healthz", s.handleHealth)
	r.Get("/readyz", s.handleReady)

	return r
}
