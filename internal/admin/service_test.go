package admin

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Dashboard(ctx context.Context, dayStart, dayEnd time.Time) (*DashboardStats, error) {
	args := m.Called(ctx, dayStart, dayEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*DashboardStats), args.Error(1)
}

func (m *MockRepository) StockStats(ctx context.Context, threshold int) (*StockStats, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*StockStats), args.Error(1)
}

func (m *MockRepository) RevenueBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRepository) OrderCountBetween(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CustomerCountBetween(ctx context.Context, start, end time.Time) (int64, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) TopCustomers(ctx context.Context, limit int) ([]TopCustomer, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]TopCustomer), args.Error(1)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_RevenueChart(t *testing.T) {
	ctx := context.Background()

	t.Run("ShortRangeIsDaily", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("RevenueBetween", ctx, mock.Anything, mock.Anything).
			Return(decimal.NewFromInt(100000), nil)

		points, err := svc.RevenueChart(ctx, day(2026, 3, 1), day(2026, 3, 8))
		require.NoError(t, err)
		assert.Len(t, points, 7)
		assert.Equal(t, "2026-03-01", points[0].Label)
		assert.Equal(t, day(2026, 3, 2), points[0].EndDate)
		assert.Equal(t, day(2026, 3, 8), points[6].EndDate)
	})

	t.Run("LongRangeCapsAtTenBuckets", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("RevenueBetween", ctx, mock.Anything, mock.Anything).
			Return(decimal.NewFromInt(100000), nil)

		points, err := svc.RevenueChart(ctx, day(2026, 1, 1), day(2026, 3, 1))
		require.NoError(t, err)
		assert.Len(t, points, 10)
		assert.Equal(t, day(2026, 1, 1), points[0].StartDate)
		assert.Equal(t, day(2026, 3, 1), points[9].EndDate)
	})
}

func TestService_RangeStats(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	start, end := day(2026, 3, 1), day(2026, 4, 1)
	repo.On("RevenueBetween", ctx, start, end).Return(decimal.NewFromInt(12000000), nil)
	repo.On("OrderCountBetween", ctx, start, end).Return(int64(42), nil)
	repo.On("CustomerCountBetween", ctx, start, end).Return(int64(17), nil)

	stats, err := svc.RangeStats(ctx, start, end)
	require.NoError(t, err)
	assert.True(t, stats.Revenue.Equal(decimal.NewFromInt(12000000)))
	assert.Equal(t, int64(42), stats.Orders)
	assert.Equal(t, int64(17), stats.Customers)
}

func TestService_StockStats(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("StockStats", ctx, LowStockThreshold).Return(&StockStats{
		OutOfStock: 2, LowStock: 5, InStock: 40, Threshold: LowStockThreshold,
	}, nil)

	stats, err := svc.StockStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.LowStock)
	assert.Equal(t, LowStockThreshold, stats.Threshold)
}

func TestService_Dashboard(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)

	svc := &service{repo: repo, now: func() time.Time {
		return time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	}}

	dayStart := day(2026, 3, 15)
	repo.On("Dashboard", ctx, dayStart, dayStart.AddDate(0, 0, 1)).Return(&DashboardStats{
		TodayRevenue: decimal.NewFromInt(5050000),
		TodayOrders:  3,
	}, nil)

	stats, err := svc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TodayOrders)
	repo.AssertExpectations(t)
}
