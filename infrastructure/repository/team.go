package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-scorecard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
)

const teamsTable = "teams"

type TeamRepository interface {
	GetTeamByID(teamID int) (*domain.Team, error)
	ListTeams() ([]*domain.Team, error)
	ListTeamsByRegion(regionID string) ([]*domain.Team, error)
}

type teamRepository struct {
	conn *postgres.Connection
}

func NewTeamRepository(conn *postgres.Connection) TeamRepository {
	return &teamRepository{
		conn: conn,
	}
}

func (r *teamRepository) GetTeamByID(teamID int) (*domain.Team, error) {
	queryBuilder := squirrel.
		Select("id", "name", "region_id", "lead_id", "created_at", "updated_at").
		From(teamsTable).
		Where(squirrel.Eq{"id": teamID}).
		PlaceholderFormat(squirrel.Dollar)

	teamSQL, teamArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var team domain.Team
	err = r.conn.QueryRow(teamSQL, teamArgs...).Scan(
		&team.ID,
		&team.Name,
		&team.RegionID,
		&team.LeadID,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &team, nil
}

func (r *teamRepository) ListTeams() ([]*domain.Team, error) {
	return r.listTeams(nil)
}

func (r *teamRepository) ListTeamsByRegion(regionID string) ([]*domain.Team, error) {
	return r.listTeams(squirrel.Eq{"region_id": regionID})
}

func (r *teamRepository) listTeams(where squirrel.Eq) ([]*domain.Team, error) {
	queryBuilder := squirrel.
		Select("id", "name", "region_id", "lead_id", "created_at", "updated_at").
		From(teamsTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	teamSQL, teamArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(teamSQL, teamArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []*domain.Team
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(
			&team.ID,
			&team.Name,
			&team.RegionID,
			&team.LeadID,
			&team.CreatedAt,
			&team.UpdatedAt,
		); err != nil {
			return nil, err
		}

		teams = append(teams, &team)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teams, nil
}
