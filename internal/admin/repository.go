package admin

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Dashboard(ctx context.Context, dayStart, dayEnd time.Time) (*DashboardStats, error)
	StockStats(ctx context.Context, threshold int) (*StockStats, error)
	RevenueBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	OrderCountBetween(ctx context.Context, start, end time.Time) (int64, error)
	CustomerCountBetween(ctx context.Context, start, end time.Time) (int64, error)
	TopCustomers(ctx context.Context, limit int) ([]TopCustomer, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Dashboard(ctx context.Context, dayStart, dayEnd time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{}

	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE payment_status = 'Paid' AND order_date >= $1 AND order_date < $2`,
		dayStart, dayEnd,
	).Scan(&stats.TodayRevenue)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM orders
		WHERE status <> 'Pending' AND order_date >= $1 AND order_date < $2`,
		dayStart, dayEnd,
	).Scan(&stats.TodayOrders)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(oi.quantity), 0)
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.order_id
		WHERE o.payment_status = 'Paid' AND o.order_date >= $1 AND o.order_date < $2`,
		dayStart, dayEnd,
	).Scan(&stats.TodaySoldQuantity)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(oi.quantity), 0), COUNT(DISTINCT o.order_id)
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.order_id
		WHERE o.status = 'Returned'`,
	).Scan(&stats.RefundedQuantity, &stats.ReturnedOrders)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *repository) StockStats(ctx context.Context, threshold int) (*StockStats, error) {
	stats := &StockStats{Threshold: threshold}
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE stock_quantity = 0),
			COUNT(*) FILTER (WHERE stock_quantity > 0 AND stock_quantity <= $1),
			COUNT(*) FILTER (WHERE stock_quantity > $1)
		FROM products
		WHERE is_active = TRUE`,
		threshold,
	).Scan(&stats.OutOfStock, &stats.LowStock, &stats.InStock)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *repository) RevenueBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE payment_status = 'Paid' AND order_date >= $1 AND order_date < $2`,
		start, end,
	).Scan(&revenue)
	return revenue, err
}

func (r *repository) OrderCountBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM orders
		WHERE status <> 'Pending' AND order_date >= $1 AND order_date < $2`,
		start, end,
	).Scan(&count)
	return count, err
}

// CustomerCountBetween counts distinct buyers with at least one order
// that was not cancelled in the range.
func (r *repository) CustomerCountBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT user_id)
		FROM orders
		WHERE status <> 'Cancelled' AND order_date >= $1 AND order_date < $2`,
		start, end,
	).Scan(&count)
	return count, err
}

func (r *repository) TopCustomers(ctx context.Context, limit int) ([]TopCustomer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT u.user_id, u.full_name, u.email,
			COUNT(o.order_id), COALESCE(SUM(o.total_amount), 0)
		FROM users u
		JOIN orders o ON o.user_id = u.user_id AND o.payment_status = 'Paid'
		WHERE u.role = 'Member' AND u.is_active = TRUE
		GROUP BY u.user_id, u.full_name, u.email
		ORDER BY SUM(o.total_amount) DESC
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []TopCustomer
	for rows.Next() {
		var c TopCustomer
		if err := rows.Scan(&c.UserID, &c.FullName, &c.Email, &c.OrderCount, &c.TotalSpent); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
