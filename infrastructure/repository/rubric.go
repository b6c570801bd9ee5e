package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-scorecard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-scorecard-api/internal/domain"
)

const (
	rubricsTable          = "rubrics"
	rubricCategoriesTable = "rubric_categories"
	rubricItemsTable      = "rubric_items"
)

type RubricRepository interface {
	// GetRubric busca a variante de rubrica para a combinação role x tipo de
	// cliente. customerType vazio retorna a variante padrão (tipo "mid").
	GetRubric(roleID int, customerType string) (*domain.Rubric, error)
	ListRubrics() ([]*domain.Rubric, error)
}

type rubricRepository struct {
	conn *postgres.Connection
}

func NewRubricRepository(conn *postgres.Connection) RubricRepository {
	return &rubricRepository{
		conn: conn,
	}
}

func (r *rubricRepository) GetRubric(roleID int, customerType string) (*domain.Rubric, error) {
	if customerType == "" {
		customerType = domain.CustomerTypeMid
	}

	queryBuilder := squirrel.
		Select("id", "name", "role_id", "customer_type").
		From(rubricsTable).
		Where(squirrel.Eq{"role_id": roleID, "customer_type": customerType}).
		PlaceholderFormat(squirrel.Dollar)

	rubricSQL, rubricArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	var rubric domain.Rubric
	err = r.conn.QueryRow(rubricSQL, rubricArgs...).Scan(
		&rubric.ID,
		&rubric.Name,
		&rubric.RoleID,
		&rubric.CustomerType,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	categories, err := r.loadCategories(rubric.ID)
	if err != nil {
		return nil, err
	}
	rubric.Categories = categories

	return &rubric, nil
}

func (r *rubricRepository) ListRubrics() ([]*domain.Rubric, error) {
	queryBuilder := squirrel.
		Select("id", "name", "role_id", "customer_type").
		From(rubricsTable).
		OrderBy("role_id ASC", "customer_type ASC").
		PlaceholderFormat(squirrel.Dollar)

	rubricSQL, rubricArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(rubricSQL, rubricArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rubrics []*domain.Rubric
	for rows.Next() {
		var rubric domain.Rubric
		if err := rows.Scan(&rubric.ID, &rubric.Name, &rubric.RoleID, &rubric.CustomerType); err != nil {
			return nil, err
		}

		rubrics = append(rubrics, &rubric)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Carregar as categorias de cada rubrica
	for _, rubric := range rubrics {
		categories, err := r.loadCategories(rubric.ID)
		if err != nil {
			logrus.Warnf("Erro ao carregar categorias da rubrica %s: %v", rubric.ID, err)
			continue
		}
		rubric.Categories = categories
	}

	return rubrics, nil
}

func (r *rubricRepository) loadCategories(rubricID string) ([]domain.Category, error) {
	queryBuilder := squirrel.
		Select("id", "name", "weight", "kind", "canonical").
		From(rubricCategoriesTable).
		Where(squirrel.Eq{"rubric_id": rubricID}).
		OrderBy("position ASC").
		PlaceholderFormat(squirrel.Dollar)

	categoriesSQL, categoriesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(categoriesSQL, categoriesArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Weight,
			&category.Kind,
			&category.Canonical,
		); err != nil {
			return nil, err
		}

		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range categories {
		items, err := r.loadItems(categories[i].ID)
		if err != nil {
			return nil, err
		}
		categories[i].Items = items
	}

	return categories, nil
}

func (r *rubricRepository) loadItems(categoryID string) ([]domain.Item, error) {
	queryBuilder := squirrel.
		Select("id", "name", "description_1", "description_2", "description_3", "description_4").
		From(rubricItemsTable).
		Where(squirrel.Eq{"category_id": categoryID}).
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

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Descriptions[0],
			&item.Descriptions[1],
			&item.Descriptions[2],
			&item.Descriptions[3],
		); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
