package domain

import "time"

type TeamScoreboardResponse struct {
	Ranking    []TeamScoreboardItem `json:"ranking"`
	LastUpdate time.Time            `json:"last_update"`
}

type TeamScoreboardItem struct {
	ID               int       `json:"id"`
	TeamID           int       `json:"team_id"`
	Month            string    `json:"month"` // Formato mm-yyyy (ex: 01-2026)
	TeamName         string    `json:"team_name"`
	AverageScore     float64   `json:"average_score"`
	EvaluationCount  int       `json:"evaluation_count"`
	Position         int       `json:"position"`
	PositionChange   int       `json:"position_change"` // Positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int       `json:"previous_position"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
