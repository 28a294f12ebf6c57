package order

import (
	"context"

	"furnistore-be/internal/user"
)

var validStatuses = map[Status]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusPackaging: true,
	StatusShipping:  true,
	StatusCompleted: true,
	StatusCancelled: true,
	StatusReturned:  true,
}

var validPaymentStatuses = map[PaymentStatus]bool{
	PaymentPending:  true,
	PaymentPaid:     true,
	PaymentFailed:   true,
	PaymentRefunded: true,
}

type Service interface {
	History(ctx context.Context, userID int64) ([]Order, error)
	Detail(ctx context.Context, requester *user.User, orderID int64) (*Order, error)
	All(ctx context.Context, filters AdminFilters) (*PageResult, error)
	Update(ctx context.Context, orderID int64, params UpdateParams) (*Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) History(ctx context.Context, userID int64) ([]Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Detail enforces ownership. Admins can read any order.
func (s *service) Detail(ctx context.Context, requester *user.User, orderID int64) (*Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if requester.Role != user.RoleAdmin && o.UserID != requester.UserID {
		return nil, ErrNotOrderOwner
	}
	return o, nil
}

func (s *service) All(ctx context.Context, filters AdminFilters) (*PageResult, error) {
	if filters.Status != "" && !validStatuses[filters.Status] {
		return nil, ErrInvalidStatus
	}
	return s.repo.ListAll(ctx, filters)
}

func (s *service) Update(ctx context.Context, orderID int64, params UpdateParams) (*Order, error) {
	if params.Status != "" && !validStatuses[params.Status] {
		return nil, ErrInvalidStatus
	}
	if params.PaymentStatus != "" && !validPaymentStatuses[params.PaymentStatus] {
		return nil, ErrInvalidPaymentStatus
	}
	if err := s.repo.Update(ctx, orderID, params); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, orderID)
}
