package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, params AddParams) (*Review, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Review), args.Error(1)
}

func (m *MockRepository) ListByProduct(ctx context.Context, productID int64) ([]Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Review), args.Error(1)
}

func (m *MockRepository) RatingsByProduct(ctx context.Context, productID int64) ([]int, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockRepository) OrderContainsProduct(ctx context.Context, orderID, userID, productID int64) (bool, error) {
	args := m.Called(ctx, orderID, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Exists(ctx context.Context, orderID, userID, productID int64) (bool, error) {
	args := m.Called(ctx, orderID, userID, productID)
	return args.Bool(0), args.Error(1)
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()
	params := AddParams{OrderID: 100, ProductID: 7, UserID: 1, Rating: 4, Comment: "Solid frame"}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("OrderContainsProduct", ctx, int64(100), int64(1), int64(7)).Return(true, nil)
		repo.On("Exists", ctx, int64(100), int64(1), int64(7)).Return(false, nil)
		repo.On("Create", ctx, params).Return(&Review{ReviewID: 1, Rating: 4}, nil)

		rv, err := svc.Add(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, int64(1), rv.ReviewID)
	})

	t.Run("RatingOutOfRange", func(t *testing.T) {
		svc := NewService(new(MockRepository))

		bad := params
		bad.Rating = 6
		_, err := svc.Add(ctx, bad)
		assert.ErrorIs(t, err, ErrInvalidRating)
	})

	t.Run("NotPurchased", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("OrderContainsProduct", ctx, int64(100), int64(1), int64(7)).Return(false, nil)

		_, err := svc.Add(ctx, params)
		assert.ErrorIs(t, err, ErrNotPurchased)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("OrderContainsProduct", ctx, int64(100), int64(1), int64(7)).Return(true, nil)
		repo.On("Exists", ctx, int64(100), int64(1), int64(7)).Return(true, nil)

		_, err := svc.Add(ctx, params)
		assert.ErrorIs(t, err, ErrAlreadyReviewed)
	})
}

func TestService_Summary(t *testing.T) {
	ctx := context.Background()

	t.Run("RoundsToOneDecimal", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("RatingsByProduct", ctx, int64(7)).Return([]int{5, 4, 4}, nil)

		agg, err := svc.Summary(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, 4.3, agg.Average)
		assert.Equal(t, 3, agg.ReviewCount)
		assert.Equal(t, 2, agg.Stars[4])
		assert.Equal(t, 1, agg.Stars[5])
		assert.Equal(t, 0, agg.Stars[1])
	})

	t.Run("NoReviews", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("RatingsByProduct", ctx, int64(7)).Return([]int{}, nil)

		agg, err := svc.Summary(ctx, 7)
		require.NoError(t, err)
		assert.Zero(t, agg.Average)
		assert.Zero(t, agg.ReviewCount)
	})
}
