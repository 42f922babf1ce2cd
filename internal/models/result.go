package models

import "time"

// GameResult is one raw per-round record as stored in the stats sink.
// Fields beyond game_type/theme/score/duration are optional and left at
// their zero value when a game does not report them; the sink performs no
// validation of its own.
type GameResult struct {
	ID             string    `json:"id"`
	GameType       string    `json:"game_type"`
	Theme          string    `json:"theme"`
	Score          int       `json:"score"`
	Duration       int       `json:"duration"`
	Mistakes       int       `json:"mistakes"`
	CorrectAnswers int       `json:"correct_answers"`
	TotalQuestions int       `json:"total_questions"`
	Difficulty     string    `json:"difficulty"`
	PlayerName     string    `json:"player_name"`
	WPM            int       `json:"wpm"`
	Accuracy       float64   `json:"accuracy"`
	CreatedAt      time.Time `json:"created_at"`
}

// StatsFilter narrows sink queries. Zero values mean "no filter"; a
// non-positive Limit falls back to the repository default.
type StatsFilter struct {
	GameType string
	Theme    string
	From     *time.Time
	To       *time.Time
	Limit    int
}

// GameAggregate is one row of the teacher-facing aggregation, recomputed
// from the raw record list.
type GameAggregate struct {
	Game          string  `json:"game"`
	Participation int     `json:"participation"`
	AvgScore      float64 `json:"avg_score"`
	AvgMistakes   float64 `json:"avg_mistakes"`
}
