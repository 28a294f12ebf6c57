package category

import (
	"context"

	"furnistore-be/internal/product"
)

type Service interface {
	Tree(ctx context.Context) ([]Category, error)
	GetByID(ctx context.Context, categoryID int64) (*Category, error)
	Products(ctx context.Context, categoryID int64, page, limit int) (*product.ListResult, error)
	ProductsByParent(ctx context.Context, parentID int64, page, limit int) (*product.ListResult, error)
}

type service struct {
	repo     Repository
	products product.Repository
}

func NewService(repo Repository, products product.Repository) Service {
	return &service{repo: repo, products: products}
}

// Tree nests sub categories under their parent. Only two levels exist,
// so one pass over the flat list is enough.
func (s *service) Tree(ctx context.Context) ([]Category, error) {
	flat, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	byParent := make(map[int64][]Category)
	var roots []Category
	for _, c := range flat {
		if c.ParentCategoryID != nil {
			byParent[*c.ParentCategoryID] = append(byParent[*c.ParentCategoryID], c)
			continue
		}
		roots = append(roots, c)
	}
	for i := range roots {
		roots[i].SubCategories = byParent[roots[i].CategoryID]
	}
	return roots, nil
}

func (s *service) GetByID(ctx context.Context, categoryID int64) (*Category, error) {
	return s.repo.GetByID(ctx, categoryID)
}

func (s *service) Products(ctx context.Context, categoryID int64, page, limit int) (*product.ListResult, error) {
	if _, err := s.repo.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}
	return s.products.ByCategory(ctx, categoryID, false, page, limit)
}

// ProductsByParent lists products across all child categories of a parent.
func (s *service) ProductsByParent(ctx context.Context, parentID int64, page, limit int) (*product.ListResult, error) {
	if _, err := s.repo.GetByID(ctx, parentID); err != nil {
		return nil, err
	}
	return s.products.ByCategory(ctx, parentID, true, page, limit)
}
