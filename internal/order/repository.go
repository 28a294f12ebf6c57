package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Repository interface {
	ListByUser(ctx context.Context, userID int64) ([]Order, error)
	GetByID(ctx context.Context, orderID int64) (*Order, error)
	ListAll(ctx context.Context, filters AdminFilters) (*PageResult, error)
	Update(ctx context.Context, orderID int64, params UpdateParams) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `
	o.order_id, o.order_code, o.user_id, COALESCE(u.full_name, ''),
	o.order_date, o.total_amount, o.shipping_fee, o.shipping_address,
	o.payment_method, o.payment_status, o.status, o.notes`

func scanOrder(scan func(dest ...any) error) (*Order, error) {
	var o Order
	err := scan(
		&o.OrderID, &o.OrderCode, &o.UserID, &o.CustomerName,
		&o.OrderDate, &o.TotalAmount, &o.ShippingFee, &o.ShippingAddress,
		&o.PaymentMethod, &o.PaymentStatus, &o.Status, &o.Notes,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT`+orderColumns+`,
			(SELECT COALESCE(SUM(oi.quantity), 0) FROM order_items oi WHERE oi.order_id = o.order_id)
		FROM orders o
		LEFT JOIN users u ON o.user_id = u.user_id
		WHERE o.user_id = $1
		ORDER BY o.order_date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(
			&o.OrderID, &o.OrderCode, &o.UserID, &o.CustomerName,
			&o.OrderDate, &o.TotalAmount, &o.ShippingFee, &o.ShippingAddress,
			&o.PaymentMethod, &o.PaymentStatus, &o.Status, &o.Notes,
			&o.ItemCount,
		); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, orderID int64) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, `
		SELECT`+orderColumns+`
		FROM orders o
		LEFT JOIN users u ON o.user_id = u.user_id
		WHERE o.order_id = $1`,
		orderID,
	).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			oi.order_item_id, oi.product_id, COALESCE(p.product_name, ''),
			COALESCE(p.image_urls[1], ''), oi.quantity, oi.unit_price
		FROM order_items oi
		LEFT JOIN products p ON oi.product_id = p.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.order_item_id ASC`,
		orderID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.OrderItemID, &it.ProductID, &it.ProductName,
			&it.ImageURL, &it.Quantity, &it.UnitPrice,
		); err != nil {
			return nil, err
		}
		it.Subtotal = it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		o.ItemCount += it.Quantity
		o.Items = append(o.Items, it)
	}
	return o, rows.Err()
}

func (r *repository) ListAll(ctx context.Context, filters AdminFilters) (*PageResult, error) {
	page := filters.Page
	if page < 1 {
		page = 1
	}
	limit := filters.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	where := []string{"TRUE"}
	args := []any{}
	if filters.Status != "" {
		where = append(where, fmt.Sprintf("o.status = $%d", len(args)+1))
		args = append(args, filters.Status)
	}
	whereClause := strings.Join(where, " AND ")

	var total int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM orders o WHERE "+whereClause, args...,
	).Scan(&total)
	if err != nil {
		return nil, err
	}

	query := "SELECT" + orderColumns + `
		FROM orders o
		LEFT JOIN users u ON o.user_id = u.user_id
		WHERE ` + whereClause +
		" ORDER BY o.order_date DESC" +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &PageResult{
		Orders:     orders,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (r *repository) Update(ctx context.Context, orderID int64, params UpdateParams) error {
	set := []string{"updated_at = NOW()"}
	args := []any{}

	if params.Status != "" {
		set = append(set, fmt.Sprintf("status = $%d", len(args)+1))
		args = append(args, params.Status)
	}
	if params.PaymentStatus != "" {
		set = append(set, fmt.Sprintf("payment_status = $%d", len(args)+1))
		args = append(args, params.PaymentStatus)
	}
	if params.Notes != nil {
		set = append(set, fmt.Sprintf("notes = $%d", len(args)+1))
		args = append(args, *params.Notes)
	}

	args = append(args, orderID)
	res, err := r.db.ExecContext(ctx,
		fmt.Sprintf("UPDATE orders SET %s WHERE order_id = $%d",
			strings.Join(set, ", "), len(args)),
		args...,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
