package admin

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_StockStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("FROM products").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"out", "low", "in"}).AddRow(2, 5, 40))

	stats, err := repo.StockStats(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.OutOfStock)
	assert.Equal(t, int64(5), stats.LowStock)
	assert.Equal(t, int64(40), stats.InStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RevenueBetween(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	mock.ExpectQuery("SELECT COALESCE").
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow("12000000"))

	revenue, err := repo.RevenueBetween(context.Background(), start, end)
	require.NoError(t, err)
	assert.True(t, revenue.Equal(decimal.NewFromInt(12000000)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_TopCustomers(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("FROM users u").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{
			"user_id", "full_name", "email", "count", "sum",
		}).AddRow(1, "Buyer One", "buyer@example.com", 4, "20200000"))

	customers, err := repo.TopCustomers(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, int64(4), customers[0].OrderCount)
	assert.True(t, customers[0].TotalSpent.Equal(decimal.NewFromInt(20200000)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
