package product

import (
	"context"
	"errors"
	"testing"

	"furnistore-be/internal/inventory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, filters ListFilters) (*ListResult, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ListResult), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, productID int64, onlyActive bool) (*Product, error) {
	args := m.Called(ctx, productID, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) GetByCode(ctx context.Context, productCode string) (*Product, error) {
	args := m.Called(ctx, productCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Search(ctx context.Context, filters SearchFilters) ([]Product, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) Related(ctx context.Context, productID, categoryID int64, limit int) ([]Product, error) {
	args := m.Called(ctx, productID, categoryID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) ByCategory(ctx context.Context, categoryID int64, byParent bool, page, limit int) (*ListResult, error) {
	args := m.Called(ctx, categoryID, byParent, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ListResult), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, params CreateParams) (int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, productID int64, params UpdateParams) error {
	args := m.Called(ctx, productID, params)
	return args.Error(0)
}

func (m *MockRepository) SoftDelete(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockRepository) UpdateStock(ctx context.Context, productID int64, stockQuantity int) error {
	args := m.Called(ctx, productID, stockQuantity)
	return args.Error(0)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, productID int64, isActive bool) error {
	args := m.Called(ctx, productID, isActive)
	return args.Error(0)
}

func (m *MockRepository) CodeExists(ctx context.Context, productCode string, excludeID int64) (bool, error) {
	args := m.Called(ctx, productCode, excludeID)
	return args.Bool(0), args.Error(1)
}

// MockInventoryRepository is a mock implementation of inventory.Repository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) Create(ctx context.Context, e inventory.Entry) (int64, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInventoryRepository) FindByProduct(ctx context.Context, productID int64, page, limit int) (*inventory.Page, error) {
	args := m.Called(ctx, productID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Page), args.Error(1)
}

func sampleProduct(id int64, stock int) *Product {
	return &Product{
		ProductID:     id,
		ProductName:   "Oslo Sofa",
		ProductCode:   "SOFA-001",
		CategoryID:    3,
		Price:         decimal.NewFromInt(2500000),
		StockQuantity: stock,
		IsActive:      true,
	}
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		invRepo := new(MockInventoryRepository)
		svc := NewService(repo, invRepo)

		params := CreateParams{ProductCode: "SOFA-001", StockQuantity: 10}

		repo.On("CodeExists", ctx, "SOFA-001", int64(0)).Return(false, nil)
		repo.On("Create", ctx, params).Return(int64(7), nil)
		invRepo.On("Create", ctx, mock.MatchedBy(func(e inventory.Entry) bool {
			return e.ProductID == 7 &&
				e.ChangeType == inventory.ChangeIn &&
				e.Quantity == 10 &&
				e.ReferenceType == inventory.RefInitial
		})).Return(int64(1), nil)
		repo.On("GetByID", ctx, int64(7), false).Return(sampleProduct(7, 10), nil)

		p, err := svc.Create(ctx, params, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), p.ProductID)
		repo.AssertExpectations(t)
		invRepo.AssertExpectations(t)
	})

	t.Run("DuplicateCode", func(t *testing.T) {
		repo := new(MockRepository)
		invRepo := new(MockInventoryRepository)
		svc := NewService(repo, invRepo)

		repo.On("CodeExists", ctx, "SOFA-001", int64(0)).Return(true, nil)

		_, err := svc.Create(ctx, CreateParams{ProductCode: "SOFA-001"}, 1)
		assert.ErrorIs(t, err, ErrCodeExists)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("NegativeStock", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockInventoryRepository))

		_, err := svc.Create(ctx, CreateParams{ProductCode: "SOFA-001", StockQuantity: -1}, 1)
		assert.ErrorIs(t, err, ErrInvalidStock)
	})

	t.Run("ZeroStockSkipsLog", func(t *testing.T) {
		repo := new(MockRepository)
		invRepo := new(MockInventoryRepository)
		svc := NewService(repo, invRepo)

		params := CreateParams{ProductCode: "SOFA-002"}

		repo.On("CodeExists", ctx, "SOFA-002", int64(0)).Return(false, nil)
		repo.On("Create", ctx, params).Return(int64(8), nil)
		repo.On("GetByID", ctx, int64(8), false).Return(sampleProduct(8, 0), nil)

		_, err := svc.Create(ctx, params, 1)
		assert.NoError(t, err)
		invRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestService_AdjustStock(t *testing.T) {
	ctx := context.Background()

	t.Run("IncreaseLogsIn", func(t *testing.T) {
		repo := new(MockRepository)
		invRepo := new(MockInventoryRepository)
		svc := NewService(repo, invRepo)

		repo.On("GetByID", ctx, int64(7), false).Return(sampleProduct(7, 10), nil).Once()
		repo.On("UpdateStock", ctx, int64(7), 15).Return(nil)
		invRepo.On("Create", ctx, mock.MatchedBy(func(e inventory.Entry) bool {
			return e.ChangeType == inventory.ChangeIn &&
				e.Quantity == 5 &&
				e.OldStock == 10 && e.NewStock == 15 &&
				e.ReferenceType == inventory.RefAdjustment &&
				e.ChangedBy == 42
		})).Return(int64(1), nil)
		repo.On("GetByID", ctx, int64(7), false).Return(sampleProduct(7, 15), nil).Once()

		p, err := svc.AdjustStock(ctx, 7, 15, "Restock", 42)
		assert.NoError(t, err)
		assert.Equal(t, 15, p.StockQuantity)
		invRepo.AssertExpectations(t)
	})

	t.Run("DecreaseLogsOut", func(t *testing.T) {
		repo := new(MockRepository)
		invRepo := new(MockInventoryRepository)
		svc := NewService(repo, invRepo)

		repo.On("GetByID", ctx, int64(7), false).Return(sampleProduct(7, 10), nil)
		repo.On("UpdateStock", ctx, int64(7), 4).Return(nil)
		invRepo.On("Create", ctx, mock.MatchedBy(func(e inventory.Entry) bool {
			return e.ChangeType == inventory.ChangeOut && e.Quantity == 6
		})).Return(int64(1), nil)

		_, err := svc.AdjustStock(ctx, 7, 4, "", 42)
		assert.NoError(t, err)
		invRepo.AssertExpectations(t)
	})

	t.Run("NoChangeSkipsUpdate", func(t *testing.T) {
		repo := new(MockRepository)
		invRepo := new(MockInventoryRepository)
		svc := NewService(repo, invRepo)

		repo.On("GetByID", ctx, int64(7), false).Return(sampleProduct(7, 10), nil)

		_, err := svc.AdjustStock(ctx, 7, 10, "", 42)
		assert.NoError(t, err)
		repo.AssertNotCalled(t, "UpdateStock", mock.Anything, mock.Anything, mock.Anything)
		invRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("NegativeStock", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockInventoryRepository))

		_, err := svc.AdjustStock(ctx, 7, -5, "", 42)
		assert.ErrorIs(t, err, ErrInvalidStock)
	})
}

func TestService_Related(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockInventoryRepository))

		repo.On("GetByID", ctx, int64(7), true).Return(sampleProduct(7, 10), nil)
		repo.On("Related", ctx, int64(7), int64(3), 4).Return([]Product{*sampleProduct(8, 2)}, nil)

		products, err := svc.Related(ctx, 7)
		assert.NoError(t, err)
		assert.Len(t, products, 1)
	})

	t.Run("ProductNotFound", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, new(MockInventoryRepository))

		repo.On("GetByID", ctx, int64(99), true).Return(nil, ErrProductNotFound)

		_, err := svc.Related(ctx, 99)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestService_InventoryLogs(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	invRepo := new(MockInventoryRepository)
	svc := NewService(repo, invRepo)

	repo.On("GetByID", ctx, int64(7), false).Return(sampleProduct(7, 10), nil)
	invRepo.On("FindByProduct", ctx, int64(7), 1, 10).Return(&inventory.Page{
		Logs:  []inventory.Entry{{LogID: 1, ProductID: 7}},
		Total: 1, Page: 1, Limit: 10, TotalPages: 1,
	}, nil)

	page, err := svc.InventoryLogs(ctx, 7, 1, 10)
	assert.NoError(t, err)
	assert.Len(t, page.Logs, 1)
}

func TestService_RepoErrorPropagates(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo, new(MockInventoryRepository))

	repo.On("List", ctx, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.List(ctx, ListFilters{})
	assert.EqualError(t, err, "db error")
}
