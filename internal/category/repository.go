package category

import (
	"context"
	"database/sql"
	"errors"
)

type Repository interface {
	List(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, categoryID int64) (*Category, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const categoryColumns = `
	category_id, category_name, description, parent_category_id,
	image_url, is_active, created_at`

func (r *repository) List(ctx context.Context) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT`+categoryColumns+`
		FROM categories
		WHERE is_active = TRUE
		ORDER BY category_name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(
			&c.CategoryID, &c.CategoryName, &c.Description, &c.ParentCategoryID,
			&c.ImageURL, &c.IsActive, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, categoryID int64) (*Category, error) {
	var c Category
	err := r.db.QueryRowContext(ctx, `
		SELECT`+categoryColumns+`
		FROM categories
		WHERE category_id = $1 AND is_active = TRUE`,
		categoryID,
	).Scan(
		&c.CategoryID, &c.CategoryName, &c.Description, &c.ParentCategoryID,
		&c.ImageURL, &c.IsActive, &c.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCategoryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
