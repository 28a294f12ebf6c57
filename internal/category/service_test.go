package category

import (
	"context"
	"testing"

	"furnistore-be/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Category), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, categoryID int64) (*Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

// MockProductRepository stubs the single product lookup the service needs.
type MockProductRepository struct {
	product.Repository
	mock.Mock
}

func (m *MockProductRepository) ByCategory(ctx context.Context, categoryID int64, byParent bool, page, limit int) (*product.ListResult, error) {
	args := m.Called(ctx, categoryID, byParent, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.ListResult), args.Error(1)
}

func TestService_Tree(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo, new(MockProductRepository))

	parentID := int64(1)
	repo.On("List", ctx).Return([]Category{
		{CategoryID: 1, CategoryName: "Living Room"},
		{CategoryID: 2, CategoryName: "Sofas", ParentCategoryID: &parentID},
		{CategoryID: 3, CategoryName: "Coffee Tables", ParentCategoryID: &parentID},
		{CategoryID: 4, CategoryName: "Bedroom"},
	}, nil)

	roots, err := svc.Tree(ctx)
	assert.NoError(t, err)
	assert.Len(t, roots, 2)
	assert.Len(t, roots[0].SubCategories, 2)
	assert.Equal(t, "Sofas", roots[0].SubCategories[0].CategoryName)
	assert.Empty(t, roots[1].SubCategories)
}

func TestService_Products(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		prodRepo := new(MockProductRepository)
		svc := NewService(repo, prodRepo)

		repo.On("GetByID", ctx, int64(1)).Return(&Category{CategoryID: 1}, nil)
		prodRepo.On("ByCategory", ctx, int64(1), false, 1, 10).Return(&product.ListResult{
			Products: []product.Product{{ProductID: 7}},
			Total:    1, Page: 1, Limit: 10, TotalPages: 1,
		}, nil)

		result, err := svc.Products(ctx, 1, 1, 10)
		assert.NoError(t, err)
		assert.Len(t, result.Products, 1)
	})

	t.Run("CategoryNotFound", func(t *testing.T) {
		repo := new(MockRepository)
		prodRepo := new(MockProductRepository)
		svc := NewService(repo, prodRepo)

		repo.On("GetByID", ctx, int64(99)).Return(nil, ErrCategoryNotFound)

		_, err := svc.Products(ctx, 99, 1, 10)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
		prodRepo.AssertNotCalled(t, "ByCategory", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
