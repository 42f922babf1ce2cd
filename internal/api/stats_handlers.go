package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/lmedina/playtrack/internal/errors"
	"github.com/lmedina/playtrack/internal/logger"
	"github.com/lmedina/playtrack/internal/models"
)

func (s *Server) handleListStats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	game := r.URL.Query().Get("game")
	limit := intParam(r, "limit", 0)

	log.Debug("listing sink stats, game=%q limit=%d", game, limit)

	var (
		records []models.GameResult
		err     error
	)
	if game != "" {
		records, err = s.Stats.GameTypeStats(r.Context(), game, limit)
	} else {
		records, err = s.Stats.AllStats(r.Context(), limit)
	}
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, records)
}

func (s *Server) handleAggregate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.StatsFilter{
		GameType: q.Get("game"),
		Theme:    q.Get("theme"),
	}

	if v := q.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			handleError(w, r, errors.NewValidationError("from", "must be an RFC 3339 timestamp"))
			return
		}
		filter.From = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			handleError(w, r, errors.NewValidationError("to", "must be an RFC 3339 timestamp"))
			return
		}
		filter.To = &t
	}

	aggregates, err := s.Stats.Aggregate(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, aggregates)
}

func (s *Server) handleTopScores(w http.ResponseWriter, r *http.Request) {
	game := r.URL.Query().Get("game")
	limit := intParam(r, "limit", 0)

	scores, err := s.Stats.TopScores(r.Context(), game, limit)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, scores)
}

func intParam(r *http.Request, name string, def int) int {
	if v := r.URL.Query().Get(name); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return def
}
