package checkout

import (
	"context"
	"database/sql"
	"time"

	"furnistore-be/internal/db"
	"furnistore-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderInsert struct {
	UserID          int64
	OrderCode       string
	TotalAmount     decimal.Decimal
	ShippingFee     decimal.Decimal
	ShippingAddress string
	PaymentMethod   string
	Notes           string
}

type Repository interface {
	GetCartLines(ctx context.Context, userID int64) ([]Line, error)
	CreateOrder(ctx context.Context, order OrderInsert, lines []Line) (*PlacedOrder, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(database *sql.DB) Repository {
	return &repository{db: database}
}

func (r *repository) GetCartLines(ctx context.Context, userID int64) ([]Line, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			p.product_id, p.product_name, p.price, ci.quantity,
			p.stock_quantity, COALESCE(p.image_urls[1], '')
		FROM carts c
		JOIN cart_items ci ON ci.cart_id = c.cart_id
		JOIN products p ON p.product_id = ci.product_id
		WHERE c.user_id = $1 AND p.is_active = TRUE
		ORDER BY ci.added_at ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []Line
	for rows.Next() {
		var l Line
		if err := rows.Scan(
			&l.ProductID, &l.ProductName, &l.Price, &l.Quantity,
			&l.StockQuantity, &l.ImageURL,
		); err != nil {
			return nil, err
		}
		l.Subtotal = l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// CreateOrder writes the order, its items, the stock decrements and the
// matching inventory audit rows, then empties the cart. All of it commits
// or none of it does. Stock rows are locked before the re-check so two
// concurrent checkouts cannot both take the last unit.
func (r *repository) CreateOrder(ctx context.Context, order OrderInsert, lines []Line) (*PlacedOrder, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
		zap.String("order_code", order.OrderCode),
	)
	start := time.Now()

	var placed PlacedOrder
	err := db.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO orders (
				order_code, user_id, total_amount, shipping_fee,
				shipping_address, payment_method, payment_status, status, notes
			) VALUES ($1, $2, $3, $4, $5, $6, 'Pending', 'Pending', $7)
			RETURNING order_id, order_date`,
			order.OrderCode, order.UserID, order.TotalAmount, order.ShippingFee,
			order.ShippingAddress, order.PaymentMethod, order.Notes,
		).Scan(&placed.OrderID, &placed.OrderDate)
		if err != nil {
			return err
		}

		for _, l := range lines {
			var stock int
			err := tx.QueryRowContext(ctx,
				`SELECT stock_quantity FROM products WHERE product_id = $1 FOR UPDATE`,
				l.ProductID,
			).Scan(&stock)
			if err != nil {
				return err
			}
			if stock < l.Quantity {
				return &InsufficientStockError{
					ProductName: l.ProductName,
					Requested:   l.Quantity,
					Available:   stock,
				}
			}

			_, err = tx.ExecContext(ctx, `
				INSERT INTO order_items (order_id, product_id, quantity, unit_price)
				VALUES ($1, $2, $3, $4)`,
				placed.OrderID, l.ProductID, l.Quantity, l.Price,
			)
			if err != nil {
				return err
			}

			newStock := stock - l.Quantity
			_, err = tx.ExecContext(ctx, `
				UPDATE products
				SET stock_quantity = $1, updated_at = NOW()
				WHERE product_id = $2`,
				newStock, l.ProductID,
			)
			if err != nil {
				return err
			}

			_, err = tx.ExecContext(ctx, `
				INSERT INTO inventory_logs (
					product_id, change_type, quantity, old_stock, new_stock,
					reason, reference_type, reference_id, changed_by
				) VALUES ($1, 'Out', $2, $3, $4, $5, 'Order', $6, $7)`,
				l.ProductID, l.Quantity, stock, newStock,
				"Order "+order.OrderCode, placed.OrderID, order.UserID,
			)
			if err != nil {
				return err
			}
		}

		_, err = tx.ExecContext(ctx, `
			DELETE FROM cart_items
			WHERE cart_id IN (SELECT cart_id FROM carts WHERE user_id = $1)`,
			order.UserID,
		)
		return err
	})
	if err != nil {
		log.Error("order transaction failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}

	placed.OrderCode = order.OrderCode
	placed.TotalAmount = order.TotalAmount
	placed.ShippingFee = order.ShippingFee
	placed.Status = "Pending"
	placed.PaymentMethod = order.PaymentMethod
	placed.PaymentStatus = "Pending"

	log.Info("order placed",
		zap.Int64("order_id", placed.OrderID),
		zap.Int("line_count", len(lines)),
		zap.Duration("duration", time.Since(start)),
	)
	return &placed, nil
}
