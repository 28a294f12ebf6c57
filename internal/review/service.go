package review

import (
	"context"
	"math"
)

type Service interface {
	Add(ctx context.Context, params AddParams) (*Review, error)
	ListByProduct(ctx context.Context, productID int64) ([]Review, error)
	Summary(ctx context.Context, productID int64) (*Aggregate, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Add(ctx context.Context, params AddParams) (*Review, error) {
	if params.Rating < 1 || params.Rating > 5 {
		return nil, ErrInvalidRating
	}

	purchased, err := s.repo.OrderContainsProduct(ctx, params.OrderID, params.UserID, params.ProductID)
	if err != nil {
		return nil, err
	}
	if !purchased {
		return nil, ErrNotPurchased
	}

	reviewed, err := s.repo.Exists(ctx, params.OrderID, params.UserID, params.ProductID)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, ErrAlreadyReviewed
	}

	return s.repo.Create(ctx, params)
}

func (s *service) ListByProduct(ctx context.Context, productID int64) ([]Review, error) {
	return s.repo.ListByProduct(ctx, productID)
}

// Summary computes the average to one decimal plus a star histogram.
func (s *service) Summary(ctx context.Context, productID int64) (*Aggregate, error) {
	ratings, err := s.repo.RatingsByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	agg := &Aggregate{
		ProductID: productID,
		Stars:     map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	if len(ratings) == 0 {
		return agg, nil
	}

	sum := 0
	for _, rating := range ratings {
		sum += rating
		agg.Stars[rating]++
	}
	agg.ReviewCount = len(ratings)
	agg.Average = math.Round(float64(sum)/float64(len(ratings))*10) / 10
	return agg, nil
}
