package user

import (
	"context"
	"database/sql"
	"errors"

	"furnistore-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, params RegisterParams, passwordHash string) (*User, error)
	UsernameOrEmailExists(ctx context.Context, username, email string) (bool, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, userID int64) (*User, error)
	GetPasswordHash(ctx context.Context, userID int64) (string, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	UpdateContact(ctx context.Context, userID int64, fullName, phone string) error

	ListCustomers(ctx context.Context) ([]User, error)
	UpdateCustomer(ctx context.Context, userID int64, params UpdateCustomerParams) error
	DisableCustomer(ctx context.Context, userID int64) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const userColumns = `user_id, username, email, password_hash, full_name, phone, address, role, is_active, created_at`

func scanUser(row *sql.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.UserID, &u.Username, &u.Email, &u.PasswordHash,
		&u.FullName, &u.Phone, &u.Address, &u.Role, &u.IsActive, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts the account row and its cart row in one transaction.
func (r *repository) Create(ctx context.Context, params RegisterParams, passwordHash string) (*User, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("username", params.Username),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	var u User
	err = tx.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password_hash, full_name, phone, address, role)
		VALUES ($1, $2, $3, $4, $5, $6, 'Member')
		RETURNING `+userColumns,
		params.Username, params.Email, passwordHash,
		params.FullName, params.Phone, params.Address,
	).Scan(
		&u.UserID, &u.Username, &u.Email, &u.PasswordHash,
		&u.FullName, &u.Phone, &u.Address, &u.Role, &u.IsActive, &u.CreatedAt,
	)
	if err != nil {
		log.Error("failed to insert user", zap.Error(err))
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO carts (user_id) VALUES ($1)`, u.UserID,
	)
	if err != nil {
		log.Error("failed to create cart for user", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true

	log.Info("user registered", zap.Int64("user_id", u.UserID))
	return &u, nil
}

func (r *repository) UsernameOrEmailExists(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE username = $1 OR email = $2
		)`, username, email,
	).Scan(&exists)
	return exists, err
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE username = $1 AND is_active = TRUE`, username))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (r *repository) FindByID(ctx context.Context, userID int64) (*User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE user_id = $1 AND is_active = TRUE`, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (r *repository) GetPasswordHash(ctx context.Context, userID int64) (string, error) {
	var hash string
	err := r.db.QueryRowContext(ctx,
		`SELECT password_hash FROM users WHERE user_id = $1`, userID,
	).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrUserNotFound
	}
	return hash, err
}

func (r *repository) UpdatePassword(ctx context.Context, userID int64, passwordHash string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $1, updated_at = NOW() WHERE user_id = $2`,
		passwordHash, userID,
	)
	return err
}

// UpdateContact refreshes the shipping contact fields captured at checkout.
// Blank values leave the stored ones untouched.
func (r *repository) UpdateContact(ctx context.Context, userID int64, fullName, phone string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET full_name = COALESCE(NULLIF($1, ''), full_name),
		    phone     = COALESCE(NULLIF($2, ''), phone),
		    updated_at = NOW()
		WHERE user_id = $3`,
		fullName, phone, userID,
	)
	return err
}

func (r *repository) ListCustomers(ctx context.Context) ([]User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE role = 'Member' AND is_active = TRUE
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []User
	for rows.Next() {
		var u User
		if err := rows.Scan(
			&u.UserID, &u.Username, &u.Email, &u.PasswordHash,
			&u.FullName, &u.Phone, &u.Address, &u.Role, &u.IsActive, &u.CreatedAt,
		); err != nil {
			return nil, err
		}
		customers = append(customers, u)
	}

	return customers, rows.Err()
}

func (r *repository) UpdateCustomer(ctx context.Context, userID int64, params UpdateCustomerParams) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET full_name = $1, phone = $2, address = $3, email = $4, updated_at = NOW()
		WHERE user_id = $5 AND role = 'Member'`,
		params.FullName, params.Phone, params.Address, params.Email, userID,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DisableCustomer soft-disables an account; rows are never hard-deleted.
func (r *repository) DisableCustomer(ctx context.Context, userID int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET is_active = FALSE, updated_at = NOW()
		WHERE user_id = $1 AND role = 'Member'`,
		userID,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
