// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-scorecard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
)

const (
	teamScoreboardTable = "team_scoreboard ts"
)

type ScoreboardRepository interface {
	GetByTeamID(teamID int, month string) (*domain.TeamScoreboardItem, error)
	GetScoreboard() (*domain.TeamScoreboardResponse, error)
	SaveOrUpdateScoreboard(items []*domain.TeamScoreboardItem) error
}

type scoreboardRepository struct {
	conn *postgres.Connection
}

func NewScoreboardRepository(conn *postgres.Connection) ScoreboardRepository {
	return &scoreboardRepository{
		conn: conn,
	}
}

func (r *scoreboardRepository) GetScoreboard() (*domain.TeamScoreboardResponse, error) {
	yesterday := time.Now().AddDate(0, 0, -1)
	month := yesterday.Format("01-2006")

	queryBuilder := squirrel.
		Select(
			"ts.id",
			"ts.team_id",
			"ts.month",
			"ts.team_name",
			"ts.average_score",
			"ts.evaluation_count",
			"ts.position",
			"ts.position_change",
			"ts.previous_position",
			"ts.created_at",
			"ts.updated_at",
		).
		From(teamScoreboardTable).
		Where(squirrel.Eq{"ts.month": month}).
		OrderBy("ts.position ASC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.TeamScoreboardResponse{
				Ranking:    []domain.TeamScoreboardItem{},
				LastUpdate: time.Now(),
			}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ranking := make([]domain.TeamScoreboardItem, 0)
	var lastUpdate time.Time

	for rows.Next() {
		item, err := scanScoreboardItem(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear item do ranking: %w", err)
		}

		ranking = append(ranking, *item)

		// Manter o último update mais recente
		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if lastUpdate.IsZero() {
		lastUpdate = time.Now()
	}

	return &domain.TeamScoreboardResponse{
		Ranking:    ranking,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *scoreboardRepository) GetByTeamID(teamID int, month string) (*domain.TeamScoreboardItem, error) {
	query, args, err := squirrel.
		Select("ts.id, ts.team_id, ts.month, ts.team_name, ts.average_score, ts.evaluation_count, ts.position, ts.position_change, ts.previous_position, ts.created_at, ts.updated_at").
		From(teamScoreboardTable).
		Where(squirrel.Eq{"ts.team_id": teamID, "ts.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	item, err := scanScoreboardItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ranking: %w", err)
	}
	return item, nil
}

func (r *scoreboardRepository) SaveOrUpdateScoreboard(items []*domain.TeamScoreboardItem) error {
	if len(items) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("team_scoreboard").
		Columns(
			"team_id",
			"month",
			"team_name",
			"average_score",
			"evaluation_count",
			"position",
			"position_change",
			"previous_position",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, item := range items {
		query = query.Values(
			item.TeamID,
			item.Month,
			item.TeamName,
			item.AverageScore,
			item.EvaluationCount,
			item.Position,
			item.PositionChange,
			item.PreviousPosition,
		)
	}

	// Upsert por time e mês
	query = query.Suffix(`
		ON CONFLICT (team_id, month) DO UPDATE SET
			team_name = EXCLUDED.team_name,
			average_score = EXCLUDED.average_score,
			evaluation_count = EXCLUDED.evaluation_count,
			position = EXCLUDED.position,
			position_change = EXCLUDED.position_change,
			previous_position = EXCLUDED.previous_position,
			updated_at = CURRENT_TIMESTAMP
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func scanScoreboardItem(row squirrel.RowScanner) (*domain.TeamScoreboardItem, error) {
	item := &domain.TeamScoreboardItem{}

	err := row.Scan(
		&item.ID,
		&item.TeamID,
		&item.Month,
		&item.TeamName,
		&item.AverageScore,
		&item.EvaluationCount,
		&item.Position,
		&item.PositionChange,
		&item.PreviousPosition,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return item, nil
}
