package user

import (
	"context"

	"furnistore-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Service interface {
	Register(ctx context.Context, params RegisterParams) (string, *User, error)
	Login(ctx context.Context, username, password string) (string, *User, error)
	GetProfile(ctx context.Context, userID int64) (*User, error)
	ChangePassword(ctx context.Context, userID int64, current, newPassword, confirm string) error

	Customers(ctx context.Context) ([]User, error)
	UpdateCustomer(ctx context.Context, userID int64, params UpdateCustomerParams) error
	DisableCustomer(ctx context.Context, userID int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, params RegisterParams) (string, *User, error) {
	log := logger.FromCtx(ctx)

	exists, err := s.repo.UsernameOrEmailExists(ctx, params.Username, params.Email)
	if err != nil {
		log.Error("failed to check existing user", zap.Error(err))
		return "", nil, err
	}
	if exists {
		return "", nil, ErrUserExists
	}

	hashed, err := HashPassword(params.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", nil, err
	}

	u, err := s.repo.Create(ctx, params, hashed)
	if err != nil {
		// The existence check above races with concurrent registrations;
		// the unique constraint is the authority.
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == PgUniqueViolation {
			return "", nil, ErrUserExists
		}
		log.Error("failed to create user", zap.String("username", params.Username), zap.Error(err))
		return "", nil, err
	}

	token, err := GenerateJWT(u.UserID, u.Username, u.Role)
	if err != nil {
		log.Error("failed to generate jwt", zap.Int64("user_id", u.UserID), zap.Error(err))
		return "", nil, err
	}

	log.Info("register service completed",
		zap.Int64("user_id", u.UserID),
		zap.String("username", u.Username),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, username, password string) (string, *User, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := GenerateJWT(u.UserID, u.Username, u.Role)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *service) GetProfile(ctx context.Context, userID int64) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *service) ChangePassword(ctx context.Context, userID int64, current, newPassword, confirm string) error {
	if newPassword != confirm {
		return ErrPasswordMismatch
	}

	hash, err := s.repo.GetPasswordHash(ctx, userID)
	if err != nil {
		return err
	}

	if !CheckPasswordHash(current, hash) {
		return ErrWrongPassword
	}

	newHash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, userID, newHash)
}

func (s *service) Customers(ctx context.Context) ([]User, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *service) UpdateCustomer(ctx context.Context, userID int64, params UpdateCustomerParams) error {
	return s.repo.UpdateCustomer(ctx, userID, params)
}

func (s *service) DisableCustomer(ctx context.Context, userID int64) error {
	return s.repo.DisableCustomer(ctx, userID)
}
