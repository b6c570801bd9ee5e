package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-scorecard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
	"github.com/vfg2006/sales-scorecard-api/pkg/utils"
)

const (
	evaluationsTable     = "evaluations"
	evaluationItemsTable = "evaluation_items"
)

// EvaluationFilters restringe as consultas de avaliações por período.
type EvaluationFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

type EvaluationRepository interface {
	CreateEvaluation(record *domain.EvaluationRecord) (*domain.EvaluationRecord, error)
	GetByID(id string) (*domain.EvaluationRecord, error)
	ListBySalesperson(salespersonID int, filters *EvaluationFilters) ([]*domain.EvaluationRecord, error)
	ListByManager(managerID int, filters *EvaluationFilters) ([]*domain.EvaluationRecord, error)
	ListByTeam(teamID int, filters *EvaluationFilters) ([]*domain.EvaluationRecord, error)
	ListAll(filters *EvaluationFilters) ([]*domain.EvaluationRecord, error)
}

type evaluationRepository struct {
	conn *postgres.Connection
}

func NewEvaluationRepository(conn *postgres.Connection) EvaluationRepository {
	return &evaluationRepository{
		conn: conn,
	}
}

// CreateEvaluation persiste a avaliação e seus itens em uma única transação.
// O ID do registro é um nanoid de 6 caracteres, como nos demais registros
// expostos ao cliente.
func (r *evaluationRepository) CreateEvaluation(record *domain.EvaluationRecord) (*domain.EvaluationRecord, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID da avaliação")
	}
	record.ID = id

	err = r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		evalSQL, evalArgs, err := squirrel.
			Insert(evaluationsTable).
			Columns(
				"id", "salesperson_id", "manager_id", "team_id", "visit_date",
				"customer_name", "customer_type", "location", "overall_comment", "overall_score",
			).
			Values(
				record.ID, record.SalespersonID, record.ManagerID, record.TeamID, record.VisitDate,
				record.CustomerName, record.CustomerType, record.Location, record.OverallComment, record.OverallScore,
			).
			Suffix("RETURNING created_at, updated_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		if err := tx.QueryRow(evalSQL, evalArgs...).Scan(&record.CreatedAt, &record.UpdatedAt); err != nil {
			return err
		}

		itemBuilder := squirrel.
			Insert(evaluationItemsTable).
			Columns("evaluation_id", "behavior_item_id", "rating", "comment", "position").
			PlaceholderFormat(squirrel.Dollar)

		for position, item := range record.Items {
			itemBuilder = itemBuilder.Values(record.ID, item.BehaviorItemID, item.Rating, item.Comment, position)
		}

		itemsSQL, itemsArgs, err := itemBuilder.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(itemsSQL, itemsArgs...)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao persistir avaliação")
	}

	return record, nil
}

var evaluationColumns = []string{
	"id", "salesperson_id", "manager_id", "team_id", "visit_date",
	"customer_name", "customer_type", "location", "overall_comment", "overall_score",
	"created_at", "updated_at",
}

func (r *evaluationRepository) GetByID(id string) (*domain.EvaluationRecord, error) {
	queryBuilder := squirrel.
		Select(evaluationColumns...).
		From(evaluationsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	evalSQL, evalArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	record, err := scanEvaluation(r.conn.QueryRow(evalSQL, evalArgs...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(record.ID)
	if err != nil {
		return nil, err
	}
	record.Items = items

	return record, nil
}

func (r *evaluationRepository) ListBySalesperson(salespersonID int, filters *EvaluationFilters) ([]*domain.EvaluationRecord, error) {
	return r.listEvaluations(squirrel.Eq{"salesperson_id": salespersonID}, filters)
}

func (r *evaluationRepository) ListByManager(managerID int, filters *EvaluationFilters) ([]*domain.EvaluationRecord, error) {
	return r.listEvaluations(squirrel.Eq{"manager_id": managerID}, filters)
}

func (r *evaluationRepository) ListByTeam(teamID int, filters *EvaluationFilters) ([]*domain.EvaluationRecord, error) {
	return r.listEvaluations(squirrel.Eq{"team_id": teamID}, filters)
}

func (r *evaluationRepository) ListAll(filters *EvaluationFilters) ([]*domain.EvaluationRecord, error) {
	return r.listEvaluations(nil, filters)
}

func (r *evaluationRepository) listEvaluations(where squirrel.Eq, filters *EvaluationFilters) ([]*domain.EvaluationRecord, error) {
	queryBuilder := squirrel.
		Select(evaluationColumns...).
		From(evaluationsTable).
		OrderBy("visit_date DESC", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	if filters != nil {
		if filters.StartDate != nil {
			queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"visit_date": *filters.StartDate})
		}
		if filters.EndDate != nil {
			queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"visit_date": *filters.EndDate})
		}
	}

	evalSQL, evalArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(evalSQL, evalArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.EvaluationRecord
	for rows.Next() {
		record, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, record := range records {
		items, err := r.loadItems(record.ID)
		if err != nil {
			return nil, err
		}
		record.Items = items
	}

	return records, nil
}

func scanEvaluation(row squirrel.RowScanner) (*domain.EvaluationRecord, error) {
	var record domain.EvaluationRecord
	var customerName, customerType, location, overallComment sql.NullString

	err := row.Scan(
		&record.ID,
		&record.SalespersonID,
		&record.ManagerID,
		&record.TeamID,
		&record.VisitDate,
		&customerName,
		&customerType,
		&location,
		&overallComment,
		&record.OverallScore,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.CustomerName = customerName.String
	record.CustomerType = customerType.String
	record.Location = location.String
	record.OverallComment = overallComment.String

	return &record, nil
}

func (r *evaluationRepository) loadItems(evaluationID string) ([]domain.EvaluationItem, error) {
	queryBuilder := squirrel.
		Select("behavior_item_id", "rating", "comment").
		From(evaluationItemsTable).
		Where(squirrel.Eq{"evaluation_id": evaluationID}).
		OrderBy("position ASC").
		PlaceholderFormat(squirrel.Dollar)

	itemsSQL, itemsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(itemsSQL, itemsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.EvaluationItem
	for rows.Next() {
		var item domain.EvaluationItem
		var comment sql.NullString

		if err := rows.Scan(&item.BehaviorItemID, &item.Rating, &comment); err != nil {
			return nil, err
		}

		item.Comment = comment.String
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
