package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lmedina/playtrack/internal/errors"
	"github.com/lmedina/playtrack/internal/logger"
	"github.com/lmedina/playtrack/internal/models"
	"github.com/lmedina/playtrack/internal/progress"
	"github.com/lmedina/playtrack/internal/worker"
)

// resultRequest is the body of POST /api/results. Game, theme, score and
// time feed the local progress document; the remaining fields only travel
// to the stats sink. Extra fields ride along in the per-theme history.
type resultRequest struct {
	Game  string         `json:"game"`
	Theme string         `json:"theme"`
	Score int            `json:"score"`
	Time  int            `json:"time"`
	Extra map[string]any `json:"extra"`

	Mistakes       int     `json:"mistakes"`
	CorrectAnswers int     `json:"correct_answers"`
	TotalQuestions int     `json:"total_questions"`
	Difficulty     string  `json:"difficulty"`
	PlayerName     string  `json:"player_name"`
	WPM            int     `json:"wpm"`
	Accuracy       float64 `json:"accuracy"`
}

func (s *Server) handleRecordResult(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req resultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(w, r, errors.NewValidationError("body", "invalid JSON"))
		return
	}

	log = log.WithFields(map[string]any{
		"game":  req.Game,
		"theme": req.Theme,
		"score": req.Score,
	})
	log.Debug("recording game result")

	doc, err := s.Progress.RecordResult(r.Context(), progress.Result{
		Game:  req.Game,
		Theme: req.Theme,
		Score: req.Score,
		Time:  req.Time,
		Extra: req.Extra,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	// The local write is the source of truth; the sink copy is pushed in
	// the background and may lag or be lost without affecting the response.
	s.SinkPool.Submit(&worker.SinkPushJob{
		Stats: s.Stats,
		Record: models.GameResult{
			GameType:       req.Game,
			Theme:          req.Theme,
			Score:          req.Score,
			Duration:       req.Time,
			Mistakes:       req.Mistakes,
			CorrectAnswers: req.CorrectAnswers,
			TotalQuestions: req.TotalQuestions,
			Difficulty:     req.Difficulty,
			PlayerName:     req.PlayerName,
			WPM:            req.WPM,
			Accuracy:       req.Accuracy,
		},
	})
	log.Info("result recorded, sink push queued")

	respondJSON(w, r, http.StatusOK, doc)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, s.Progress.Progress(r.Context()))
}

func (s *Server) handleClearProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Info("clearing all progress")

	if err := s.Progress.ClearProgress(r.Context()); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, s.Progress.Progress(r.Context()))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, s.Progress.Summary(r.Context()))
}

func (s *Server) handleGlobalStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, s.Progress.GlobalStats(r.Context()))
}

func (s *Server) handleGameThemeStats(w http.ResponseWriter, r *http.Request) {
	game := chi.URLParam(r, "game")
	theme := chi.URLParam(r, "theme")

	rec, err := s.Progress.GameStats(r.Context(), game, theme)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, rec)
}
