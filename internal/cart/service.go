package cart

import (
	"context"
	"errors"

	"furnistore-be/internal/product"

	"github.com/shopspring/decimal"
)

type Service interface {
	View(ctx context.Context, userID int64) (*View, error)
	AddItem(ctx context.Context, userID, productID int64, quantity int) (*View, error)
	UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) (*View, error)
	RemoveItem(ctx context.Context, userID, productID int64) (*View, error)
	Clear(ctx context.Context, userID int64) (*View, error)
}

type service struct {
	repo     Repository
	products product.Repository
}

func NewService(repo Repository, products product.Repository) Service {
	return &service{repo: repo, products: products}
}

func (s *service) View(ctx context.Context, userID int64) (*View, error) {
	cartID, err := s.repo.GetOrCreateCartID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, cartID)
}

// AddItem accumulates quantity when the product is already in the cart.
// The stock check covers the combined quantity, not just the increment.
func (s *service) AddItem(ctx context.Context, userID, productID int64, quantity int) (*View, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	cartID, err := s.repo.GetOrCreateCartID(ctx, userID)
	if err != nil {
		return nil, err
	}

	p, err := s.products.GetByID(ctx, productID, true)
	if errors.Is(err, product.ErrProductNotFound) {
		return nil, ErrProductUnavailable
	}
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetItemQuantity(ctx, cartID, productID)
	if err != nil {
		return nil, err
	}

	total := existing + quantity
	if total > p.StockQuantity {
		return nil, ErrInsufficientStock
	}

	if err := s.repo.UpsertItem(ctx, cartID, productID, total); err != nil {
		return nil, err
	}
	return s.buildView(ctx, cartID)
}

// UpdateQuantity sets an absolute quantity. Zero or less removes the item.
func (s *service) UpdateQuantity(ctx context.Context, userID, productID int64, quantity int) (*View, error) {
	cartID, err := s.repo.GetOrCreateCartID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		if err := s.repo.DeleteItem(ctx, cartID, productID); err != nil {
			return nil, err
		}
		return s.buildView(ctx, cartID)
	}

	p, err := s.products.GetByID(ctx, productID, true)
	if errors.Is(err, product.ErrProductNotFound) {
		return nil, ErrProductUnavailable
	}
	if err != nil {
		return nil, err
	}
	if quantity > p.StockQuantity {
		return nil, ErrInsufficientStock
	}

	if err := s.repo.UpdateItemQuantity(ctx, cartID, productID, quantity); err != nil {
		return nil, err
	}
	return s.buildView(ctx, cartID)
}

func (s *service) RemoveItem(ctx context.Context, userID, productID int64) (*View, error) {
	cartID, err := s.repo.GetOrCreateCartID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteItem(ctx, cartID, productID); err != nil {
		return nil, err
	}
	return s.buildView(ctx, cartID)
}

func (s *service) Clear(ctx context.Context, userID int64) (*View, error) {
	cartID, err := s.repo.GetOrCreateCartID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.ClearItems(ctx, cartID); err != nil {
		return nil, err
	}
	return s.buildView(ctx, cartID)
}

func (s *service) buildView(ctx context.Context, cartID int64) (*View, error) {
	items, err := s.repo.GetItems(ctx, cartID)
	if err != nil {
		return nil, err
	}

	view := &View{
		CartID:      cartID,
		Items:       items,
		TotalAmount: decimal.Zero,
	}
	for _, it := range items {
		view.TotalItems += it.Quantity
		view.TotalAmount = view.TotalAmount.Add(it.Subtotal)
	}
	return view, nil
}
