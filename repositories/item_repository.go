package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/artsfest/scoreboard/models"
)

var (
	ErrItemNotFound        = errors.New("competition item not found")
	ErrItemCategoryInvalid = errors.New("competition item references an unknown category")
	ErrItemResultInvalid   = errors.New("competition item result references an unknown participant")
)

type ItemRepository interface {
	Create(ctx context.Context, item *models.CompetitionItem) error
	GetByID(ctx context.Context, id int) (*models.CompetitionItem, error)
	List(ctx context.Context, onlyActive bool) ([]models.CompetitionItem, error)
	Update(ctx context.Context, item *models.CompetitionItem) error
	UpdateResults(ctx context.Context, id int, results models.ItemResults) error
	UpdateGrades(ctx context.Context, id int, grades []models.GradeEntry) error
	Delete(ctx context.Context, id int) error
}

type postgresItemRepository struct {
	db *sql.DB
}

func NewPostgresItemRepository(db *sql.DB) ItemRepository {
	return &postgresItemRepository{db: db}
}

const itemColumns = `id, title, category_id, item_type, sort_order, active,
	first_id, second_id, third_id, grades, created_at, updated_at`

func scanItem(scanner interface{ Scan(...any) error }) (*models.CompetitionItem, error) {
	var (
		item       models.CompetitionItem
		categoryID int
		itemType   string
		first      sql.NullInt64
		second     sql.NullInt64
		third      sql.NullInt64
		gradesRaw  []byte
	)
	err := scanner.Scan(
		&item.ID, &item.Title, &categoryID, &itemType, &item.Order, &item.Active,
		&first, &second, &third, &gradesRaw, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.Category = models.RefTo(categoryID)
	item.Type = models.ItemType(itemType)
	item.Results.First = nullableRef(first)
	item.Results.Second = nullableRef(second)
	item.Results.Third = nullableRef(third)

	if len(gradesRaw) > 0 {
		if err := json.Unmarshal(gradesRaw, &item.Grades); err != nil {
			return nil, fmt.Errorf("failed to decode grades of item %d: %w", item.ID, err)
		}
	}
	return &item, nil
}

func nullableRef(v sql.NullInt64) models.Ref {
	if !v.Valid {
		return models.Ref{}
	}
	return models.RefTo(int(v.Int64))
}

func refParam(r models.Ref) any {
	if id, ok := r.ID(); ok {
		return id
	}
	return nil
}

func (r *postgresItemRepository) Create(ctx context.Context, item *models.CompetitionItem) error {
	categoryID, ok := item.Category.ID()
	if !ok {
		return ErrItemCategoryInvalid
	}

	query := `
		INSERT INTO competition_items (title, category_id, item_type, sort_order, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		item.Title, categoryID, string(item.Type), item.Order, item.Active,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrItemCategoryInvalid
		}
		return err
	}
	return nil
}

func (r *postgresItemRepository) GetByID(ctx context.Context, id int) (*models.CompetitionItem, error) {
	query := `SELECT ` + itemColumns + ` FROM competition_items WHERE id = $1`

	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// List returns items in their configured order within category order.
func (r *postgresItemRepository) List(ctx context.Context, onlyActive bool) ([]models.CompetitionItem, error) {
	query := `SELECT ` + itemColumns + ` FROM competition_items`
	if onlyActive {
		query += ` WHERE active`
	}
	query += ` ORDER BY sort_order ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.CompetitionItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *postgresItemRepository) Update(ctx context.Context, item *models.CompetitionItem) error {
	categoryID, ok := item.Category.ID()
	if !ok {
		return ErrItemCategoryInvalid
	}

	query := `
		UPDATE competition_items
		SET title = $1, category_id = $2, item_type = $3, sort_order = $4, active = $5, updated_at = now()
		WHERE id = $6`

	result, err := r.db.ExecContext(ctx, query,
		item.Title, categoryID, string(item.Type), item.Order, item.Active, item.ID,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrItemCategoryInvalid
		}
		return err
	}
	return checkAffectedRows(result, ErrItemNotFound)
}

func (r *postgresItemRepository) UpdateResults(ctx context.Context, id int, results models.ItemResults) error {
	query := `
		UPDATE competition_items
		SET first_id = $1, second_id = $2, third_id = $3, updated_at = now()
		WHERE id = $4`

	result, err := r.db.ExecContext(ctx, query,
		refParam(results.First), refParam(results.Second), refParam(results.Third), id,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			return ErrItemResultInvalid
		}
		return err
	}
	return checkAffectedRows(result, ErrItemNotFound)
}

func (r *postgresItemRepository) UpdateGrades(ctx context.Context, id int, grades []models.GradeEntry) error {
	if grades == nil {
		grades = []models.GradeEntry{}
	}
	encoded, err := json.Marshal(grades)
	if err != nil {
		return fmt.Errorf("failed to encode grades: %w", err)
	}

	query := `
		UPDATE competition_items
		SET grades = $1, updated_at = now()
		WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, encoded, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrItemNotFound)
}

func (r *postgresItemRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM competition_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrItemNotFound)
}
