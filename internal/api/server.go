package api

import (
	"encoding/json"
	"net/http"

	"github.com/lmedina/playtrack/internal/db"
	"github.com/lmedina/playtrack/internal/logger"
	"github.com/lmedina/playtrack/internal/services"
	"github.com/lmedina/playtrack/internal/worker"
)

// Server holds the HTTP handlers and their dependencies. Progress writes
// go through the local store synchronously; sink pushes are queued on the
// pool and happen whenever a worker gets to them.
type Server struct {
	Progress services.ProgressService
	Stats    services.StatsService
	SinkPool *worker.Pool
	DB       *db.DB
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}
