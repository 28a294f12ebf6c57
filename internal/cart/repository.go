package cart

import (
	"context"
	"database/sql"
	"errors"

	"furnistore-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	GetOrCreateCartID(ctx context.Context, userID int64) (int64, error)
	GetItems(ctx context.Context, cartID int64) ([]Item, error)
	GetItemQuantity(ctx context.Context, cartID, productID int64) (int, error)
	UpsertItem(ctx context.Context, cartID, productID int64, quantity int) error
	UpdateItemQuantity(ctx context.Context, cartID, productID int64, quantity int) error
	DeleteItem(ctx context.Context, cartID, productID int64) error
	ClearItems(ctx context.Context, cartID int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// GetOrCreateCartID returns the user's cart, creating one for accounts
// that predate the register-time cart insert.
func (r *repository) GetOrCreateCartID(ctx context.Context, userID int64) (int64, error) {
	var cartID int64
	err := r.db.QueryRowContext(ctx,
		`SELECT cart_id FROM carts WHERE user_id = $1`, userID,
	).Scan(&cartID)
	if err == nil {
		return cartID, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	err = r.db.QueryRowContext(ctx,
		`INSERT INTO carts (user_id) VALUES ($1) RETURNING cart_id`, userID,
	).Scan(&cartID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to create cart",
			zap.Error(err), zap.Int64("user_id", userID))
		return 0, err
	}
	return cartID, nil
}

func (r *repository) GetItems(ctx context.Context, cartID int64) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			ci.cart_item_id, ci.product_id, p.product_name, p.product_code,
			p.price, ci.quantity, p.stock_quantity,
			COALESCE(p.image_urls[1], '')
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.added_at ASC`,
		cartID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.CartItemID, &it.ProductID, &it.ProductName, &it.ProductCode,
			&it.Price, &it.Quantity, &it.StockQuantity, &it.ImageURL,
		); err != nil {
			return nil, err
		}
		it.Subtotal = it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		items = append(items, it)
	}
	return items, rows.Err()
}

// GetItemQuantity returns 0 when the product is not in the cart.
func (r *repository) GetItemQuantity(ctx context.Context, cartID, productID int64) (int, error) {
	var quantity int
	err := r.db.QueryRowContext(ctx,
		`SELECT quantity FROM cart_items WHERE cart_id = $1 AND product_id = $2`,
		cartID, productID,
	).Scan(&quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return quantity, err
}

func (r *repository) UpsertItem(ctx context.Context, cartID, productID int64, quantity int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = $3, added_at = NOW()`,
		cartID, productID, quantity,
	)
	return err
}

func (r *repository) UpdateItemQuantity(ctx context.Context, cartID, productID int64, quantity int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cart_items SET quantity = $1 WHERE cart_id = $2 AND product_id = $3`,
		quantity, cartID, productID,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *repository) DeleteItem(ctx context.Context, cartID, productID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`,
		cartID, productID,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *repository) ClearItems(ctx context.Context, cartID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1`, cartID,
	)
	return err
}
