package product

import (
	"context"

	"furnistore-be/internal/inventory"
	"furnistore-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, filters ListFilters) (*ListResult, error)
	GetByID(ctx context.Context, productID int64) (*Product, error)
	GetByCode(ctx context.Context, productCode string) (*Product, error)
	Search(ctx context.Context, filters SearchFilters) ([]Product, error)
	Related(ctx context.Context, productID int64) ([]Product, error)

	Create(ctx context.Context, params CreateParams, operatorID int64) (*Product, error)
	Update(ctx context.Context, productID int64, params UpdateParams) (*Product, error)
	Delete(ctx context.Context, productID int64) error
	AdjustStock(ctx context.Context, productID int64, newStock int, reason string, operatorID int64) (*Product, error)
	ToggleStatus(ctx context.Context, productID int64, isActive bool) (*Product, error)
	InventoryLogs(ctx context.Context, productID int64, page, limit int) (*inventory.Page, error)
}

type service struct {
	repo    Repository
	invRepo inventory.Repository
}

func NewService(repo Repository, invRepo inventory.Repository) Service {
	return &service{repo: repo, invRepo: invRepo}
}

func (s *service) List(ctx context.Context, filters ListFilters) (*ListResult, error) {
	return s.repo.List(ctx, filters)
}

func (s *service) GetByID(ctx context.Context, productID int64) (*Product, error) {
	return s.repo.GetByID(ctx, productID, true)
}

func (s *service) GetByCode(ctx context.Context, productCode string) (*Product, error) {
	return s.repo.GetByCode(ctx, productCode)
}

func (s *service) Search(ctx context.Context, filters SearchFilters) ([]Product, error) {
	return s.repo.Search(ctx, filters)
}

func (s *service) Related(ctx context.Context, productID int64) ([]Product, error) {
	p, err := s.repo.GetByID(ctx, productID, true)
	if err != nil {
		return nil, err
	}
	return s.repo.Related(ctx, p.ProductID, p.CategoryID, 4)
}

func (s *service) Create(ctx context.Context, params CreateParams, operatorID int64) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.String("product_code", params.ProductCode),
	)

	if params.StockQuantity < 0 {
		return nil, ErrInvalidStock
	}

	exists, err := s.repo.CodeExists(ctx, params.ProductCode, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCodeExists
	}

	productID, err := s.repo.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	if params.StockQuantity > 0 {
		_, err = s.invRepo.Create(ctx, inventory.Entry{
			ProductID:     productID,
			ChangeType:    inventory.ChangeIn,
			Quantity:      params.StockQuantity,
			OldStock:      0,
			NewStock:      params.StockQuantity,
			Reason:        "Initial stock",
			ReferenceType: inventory.RefInitial,
			ChangedBy:     operatorID,
		})
		if err != nil {
			// The product row is already committed; an audit gap is
			// recoverable, a lost product is not.
			log.Warn("failed to write initial stock log", zap.Error(err), zap.Int64("product_id", productID))
		}
	}

	return s.repo.GetByID(ctx, productID, false)
}

func (s *service) Update(ctx context.Context, productID int64, params UpdateParams) (*Product, error) {
	if _, err := s.repo.GetByID(ctx, productID, false); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, productID, params); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, productID, false)
}

func (s *service) Delete(ctx context.Context, productID int64) error {
	return s.repo.SoftDelete(ctx, productID)
}

// AdjustStock sets the absolute stock level and records the delta.
func (s *service) AdjustStock(ctx context.Context, productID int64, newStock int, reason string, operatorID int64) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AdjustStock"),
		zap.Int64("product_id", productID),
	)

	if newStock < 0 {
		return nil, ErrInvalidStock
	}

	p, err := s.repo.GetByID(ctx, productID, false)
	if err != nil {
		return nil, err
	}

	if newStock != p.StockQuantity {
		if err := s.repo.UpdateStock(ctx, productID, newStock); err != nil {
			return nil, err
		}

		changeType := inventory.ChangeIn
		quantity := newStock - p.StockQuantity
		if quantity < 0 {
			changeType = inventory.ChangeOut
			quantity = -quantity
		}
		if reason == "" {
			reason = "Manual adjustment"
		}
		_, err = s.invRepo.Create(ctx, inventory.Entry{
			ProductID:     productID,
			ChangeType:    changeType,
			Quantity:      quantity,
			OldStock:      p.StockQuantity,
			NewStock:      newStock,
			Reason:        reason,
			ReferenceType: inventory.RefAdjustment,
			ChangedBy:     operatorID,
		})
		if err != nil {
			log.Warn("failed to write stock adjustment log", zap.Error(err))
		}
	}

	return s.repo.GetByID(ctx, productID, false)
}

func (s *service) ToggleStatus(ctx context.Context, productID int64, isActive bool) (*Product, error) {
	if err := s.repo.UpdateStatus(ctx, productID, isActive); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, productID, false)
}

func (s *service) InventoryLogs(ctx context.Context, productID int64, page, limit int) (*inventory.Page, error) {
	if _, err := s.repo.GetByID(ctx, productID, false); err != nil {
		return nil, err
	}
	return s.invRepo.FindByProduct(ctx, productID, page, limit)
}
