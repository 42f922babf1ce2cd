package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Game identifiers shipped with the app. RecordResult does not validate
// against this set; an unknown identifier simply creates a new bucket.
const (
	GameMemory         = "memoryGame"
	GameTyping         = "typingGame"
	GameMath           = "mathGame"
	GameSorting        = "sortingGame"
	GameSoundMatching  = "soundMatchingGame"
	GameIdentification = "identificationGame"
)

// KnownGames returns the shipped game identifiers in display order.
func KnownGames() []string {
	return []string{
		GameMemory,
		GameTyping,
		GameMath,
		GameSorting,
		GameSoundMatching,
		GameIdentification,
	}
}

// ProgressDocument is the single persisted progress record.
type ProgressDocument struct {
	Games      *GameMap    `json:"games"`
	Statistics GlobalStats `json:"statistics"`
}

// ThemeRecord is the per-(game, theme) aggregate.
type ThemeRecord struct {
	BestScore    int            `json:"bestScore"`
	BestTime     int            `json:"bestTime"`
	GamesPlayed  int            `json:"gamesPlayed"`
	TotalScore   int            `json:"totalScore"`
	AverageScore int            `json:"averageScore"`
	LastPlayed   string         `json:"lastPlayed"`
	History      []HistoryEntry `json:"history"`
}

// GlobalStats is the document-wide aggregate. LastPlayDate is a calendar
// date (YYYY-MM-DD), LastPlayed a full RFC 3339 timestamp.
type GlobalStats struct {
	TotalGamesPlayed int    `json:"totalGamesPlayed"`
	TotalTimePlayed  int    `json:"totalTimePlayed"`
	TotalScore       int    `json:"totalScore"`
	FavoriteGame     string `json:"favoriteGame"`
	LastPlayed       string `json:"lastPlayed"`
	Streak           int    `json:"streak"`
	LastPlayDate     string `json:"lastPlayDate"`
}

// GlobalStatsView is GlobalStats augmented with the derived global average,
// which is never persisted.
type GlobalStatsView struct {
	GlobalStats
	AverageScore int `json:"averageScore"`
}

// Summary is the UI-ready rollup served to the statistics dashboard.
type Summary struct {
	TotalGames    int                    `json:"totalGames"`
	TotalTime     int                    `json:"totalTime"`
	TotalScore    int                    `json:"totalScore"`
	AverageScore  int                    `json:"averageScore"`
	FavoriteGame  string                 `json:"favoriteGame"`
	CurrentStreak int                    `json:"currentStreak"`
	LastPlayed    string                 `json:"lastPlayed"`
	Games         map[string]GameSummary `json:"games"`
}

// GameSummary aggregates one game across all of its themes. TotalTime sums
// the per-theme bestTime values, not total play time.
type GameSummary struct {
	TotalGames   int `json:"totalGames"`
	TotalScore   int `json:"totalScore"`
	BestScore    int `json:"bestScore"`
	AverageScore int `json:"averageScore"`
	TotalTime    int `json:"totalTime"`
}

// ThemeMap maps theme identifiers to their aggregates.
type ThemeMap map[string]*ThemeRecord

// GameMap maps game identifiers to their theme buckets while preserving
// insertion order, so favorite-game tie-breaking ("first game to reach the
// max count wins") survives serialization round trips.
type GameMap struct {
	order   []string
	buckets map[string]ThemeMap
}

// NewGameMap creates a GameMap with an empty bucket per given game.
func NewGameMap(games ...string) *GameMap {
	m := &GameMap{buckets: make(map[string]ThemeMap, len(games))}
	for _, g := range games {
		m.Ensure(g)
	}
	return m
}

// Bucket returns the theme bucket for a game, if present.
func (m *GameMap) Bucket(game string) (ThemeMap, bool) {
	b, ok := m.buckets[game]
	return b, ok
}

// Ensure returns the theme bucket for a game, creating an empty one (and
// appending the game to the iteration order) when absent.
func (m *GameMap) Ensure(game string) ThemeMap {
	if m.buckets == nil {
		m.buckets = make(map[string]ThemeMap)
	}
	if b, ok := m.buckets[game]; ok {
		return b
	}
	b := make(ThemeMap)
	m.buckets[game] = b
	m.order = append(m.order, game)
	return b
}

// Games returns the game identifiers in insertion order.
func (m *GameMap) Games() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of game buckets.
func (m *GameMap) Len() int {
	return len(m.order)
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *GameMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, game := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(game)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.buckets[game])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, recording keys in document order.
func (m *GameMap) UnmarshalJSON(data []byte) error {
	m.order = nil
	m.buckets = make(map[string]ThemeMap)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("games: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		game := tok.(string)
		var themes ThemeMap
		if err := dec.Decode(&themes); err != nil {
			return fmt.Errorf("games[%s]: %w", game, err)
		}
		if themes == nil {
			themes = make(ThemeMap)
		}
		m.buckets[game] = themes
		m.order = append(m.order, game)
	}
	_, err = dec.Token() // closing brace
	return err
}

// HistoryEntry is one recorded result. Extra carries caller-supplied fields
// (difficulty, accuracy, move count, ...) which are flattened into the JSON
// object alongside score, time and date.
type HistoryEntry struct {
	Score int
	Time  int
	Date  string
	Extra map[string]any
}

func (e HistoryEntry) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(e.Extra)+3)
	for k, v := range e.Extra {
		obj[k] = v
	}
	obj["score"] = e.Score
	obj["time"] = e.Time
	obj["date"] = e.Date
	return json.Marshal(obj)
}

func (e *HistoryEntry) UnmarshalJSON(data []byte) error {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if v, ok := obj["score"].(float64); ok {
		e.Score = int(v)
	}
	if v, ok := obj["time"].(float64); ok {
		e.Time = int(v)
	}
	if v, ok := obj["date"].(string); ok {
		e.Date = v
	}
	delete(obj, "score")
	delete(obj, "time")
	delete(obj, "date")
	if len(obj) > 0 {
		e.Extra = obj
	} else {
		e.Extra = nil
	}
	return nil
}
