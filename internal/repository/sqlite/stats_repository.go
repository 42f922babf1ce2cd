package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lmedina/playtrack/internal/logger"
	"github.com/lmedina/playtrack/internal/models"
	"github.com/lmedina/playtrack/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

const defaultListLimit = 100

var statsColumns = []string{
	"id", "game_type", "theme", "score", "duration", "mistakes",
	"correct_answers", "total_questions", "difficulty", "player_name",
	"wpm", "accuracy", "created_at",
}

type statsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a StatsRepository backed by the game_stats
// table.
func NewStatsRepository(db *sql.DB) repository.StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Insert(ctx context.Context, rec models.GameResult) error {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("inserting game result: id=%s, game_type=%s, theme=%s, score=%d", rec.ID, rec.GameType, rec.Theme, rec.Score)

	_, err := r.db.ExecContext(ctx, `
INSERT INTO game_stats (id, game_type, theme, score, duration, mistakes, correct_answers, total_questions, difficulty, player_name, wpm, accuracy, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, rec.ID, rec.GameType, rec.Theme, rec.Score, rec.Duration, rec.Mistakes, rec.CorrectAnswers, rec.TotalQuestions, rec.Difficulty, rec.PlayerName, rec.WPM, rec.Accuracy, rec.CreatedAt)
	if err != nil {
		log.Error("failed to insert game result: %v", err)
		return err
	}
	return nil
}

func (r *statsRepository) List(ctx context.Context, filter models.StatsFilter) ([]models.GameResult, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("listing game results: game_type=%s, theme=%s, limit=%d", filter.GameType, filter.Theme, filter.Limit)

	query := sqlBuilder.Select(statsColumns...).From("game_stats")

	if filter.GameType != "" {
		query = query.Where(squirrel.Eq{"game_type": filter.GameType})
	}
	if filter.Theme != "" {
		query = query.Where(squirrel.Eq{"theme": filter.Theme})
	}
	if filter.From != nil {
		query = query.Where(squirrel.GtOrEq{"created_at": *filter.From})
	}
	if filter.To != nil {
		query = query.Where(squirrel.LtOrEq{"created_at": *filter.To})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	query = query.OrderBy("created_at DESC").Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build list query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list game results: %v", err)
		return nil, err
	}
	defer rows.Close()
	return scanResults(rows)
}

func (r *statsRepository) TopScores(ctx context.Context, gameType string, limit int) ([]models.GameResult, error) {
	log := logger.FromContext(ctx).WithPrefix("stats_repo")
	log.Debug("listing top scores: game_type=%s, limit=%d", gameType, limit)

	if limit <= 0 {
		limit = 10
	}

	query := sqlBuilder.Select(statsColumns...).
		From("game_stats").
		Where(squirrel.Eq{"game_type": gameType}).
		OrderBy("score DESC", "created_at DESC").
		Limit(uint64(limit))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build top scores query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list top scores: %v", err)
		return nil, err
	}
	defer rows.Close()
	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]models.GameResult, error) {
	var results []models.GameResult
	for rows.Next() {
		var rec models.GameResult
		if err := rows.Scan(
			&rec.ID, &rec.GameType, &rec.Theme, &rec.Score, &rec.Duration,
			&rec.Mistakes, &rec.CorrectAnswers, &rec.TotalQuestions,
			&rec.Difficulty, &rec.PlayerName, &rec.WPM, &rec.Accuracy,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, rec)
	}
	return results, rows.Err()
}
