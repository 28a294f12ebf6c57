package review

import (
	"context"
	"database/sql"
)

type Repository interface {
	Create(ctx context.Context, params AddParams) (*Review, error)
	ListByProduct(ctx context.Context, productID int64) ([]Review, error)
	RatingsByProduct(ctx context.Context, productID int64) ([]int, error)
	OrderContainsProduct(ctx context.Context, orderID, userID, productID int64) (bool, error)
	Exists(ctx context.Context, orderID, userID, productID int64) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, params AddParams) (*Review, error) {
	var rv Review
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reviews (order_id, product_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING review_id, order_id, product_id, user_id, rating, comment, is_approved, created_at`,
		params.OrderID, params.ProductID, params.UserID, params.Rating, params.Comment,
	).Scan(
		&rv.ReviewID, &rv.OrderID, &rv.ProductID, &rv.UserID,
		&rv.Rating, &rv.Comment, &rv.IsApproved, &rv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *repository) ListByProduct(ctx context.Context, productID int64) ([]Review, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			rv.review_id, rv.order_id, rv.product_id, rv.user_id,
			COALESCE(u.full_name, ''), rv.rating, rv.comment, rv.is_approved, rv.created_at
		FROM reviews rv
		LEFT JOIN users u ON rv.user_id = u.user_id
		WHERE rv.product_id = $1 AND rv.is_approved = TRUE
		ORDER BY rv.created_at DESC`,
		productID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []Review
	for rows.Next() {
		var rv Review
		if err := rows.Scan(
			&rv.ReviewID, &rv.OrderID, &rv.ProductID, &rv.UserID,
			&rv.ReviewerName, &rv.Rating, &rv.Comment, &rv.IsApproved, &rv.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *repository) RatingsByProduct(ctx context.Context, productID int64) ([]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT rating FROM reviews WHERE product_id = $1 AND is_approved = TRUE`,
		productID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ratings []int
	for rows.Next() {
		var rating int
		if err := rows.Scan(&rating); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}

// OrderContainsProduct verifies the reviewer actually bought the product
// in the referenced order.
func (r *repository) OrderContainsProduct(ctx context.Context, orderID, userID, productID int64) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1
			FROM orders o
			JOIN order_items oi ON oi.order_id = o.order_id
			WHERE o.order_id = $1 AND o.user_id = $2 AND oi.product_id = $3
		)`, orderID, userID, productID,
	).Scan(&ok)
	return ok, err
}

func (r *repository) Exists(ctx context.Context, orderID, userID, productID int64) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM reviews
			WHERE order_id = $1 AND user_id = $2 AND product_id = $3
		)`, orderID, userID, productID,
	).Scan(&ok)
	return ok, err
}
