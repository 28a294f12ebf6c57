package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLines() []Line {
	price := decimal.NewFromInt(2500000)
	return []Line{{
		ProductID:     7,
		ProductName:   "Oslo Sofa",
		Price:         price,
		Quantity:      2,
		StockQuantity: 8,
		Subtotal:      price.Mul(decimal.NewFromInt(2)),
	}}
}

func TestRepository_GetCartLines(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("FROM carts").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"product_id", "product_name", "price", "quantity", "stock_quantity", "image_url",
		}).AddRow(7, "Oslo Sofa", "2500000", 2, 8, "a.jpg"))

	lines, err := repo.GetCartLines(context.Background(), 1)
	assert.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Subtotal.Equal(decimal.NewFromInt(5000000)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	order := OrderInsert{
		UserID:          1,
		OrderCode:       "ORD-1700000000000-42",
		TotalAmount:     decimal.NewFromInt(5050000),
		ShippingFee:     decimal.NewFromInt(50000),
		ShippingAddress: "12 Tran Hung Dao, Hanoi",
		PaymentMethod:   "Cash",
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders").
			WillReturnRows(sqlmock.NewRows([]string{"order_id", "order_date"}).
				AddRow(100, time.Now()))
		mock.ExpectQuery("FOR UPDATE").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"stock_quantity"}).AddRow(8))
		mock.ExpectExec("INSERT INTO order_items").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("UPDATE products").
			WithArgs(6, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO inventory_logs").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("DELETE FROM cart_items").
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		placed, err := repo.CreateOrder(context.Background(), order, testLines())
		assert.NoError(t, err)
		assert.Equal(t, int64(100), placed.OrderID)
		assert.Equal(t, "Pending", placed.Status)
		assert.Equal(t, "Pending", placed.PaymentStatus)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollbackWhenStockRanOut", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders").
			WillReturnRows(sqlmock.NewRows([]string{"order_id", "order_date"}).
				AddRow(101, time.Now()))
		mock.ExpectQuery("FOR UPDATE").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"stock_quantity"}).AddRow(1))
		mock.ExpectRollback()

		_, err := repo.CreateOrder(context.Background(), order, testLines())
		var stockErr *InsufficientStockError
		assert.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "Oslo Sofa", stockErr.ProductName)
		assert.Equal(t, 1, stockErr.Available)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
