package inventory

import (
	"context"
	"database/sql"

	"furnistore-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, e Entry) (int64, error)
	FindByProduct(ctx context.Context, productID int64, page, limit int) (*Page, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Create appends one audit row. The table is append-only; nothing ever
// updates or deletes inventory_logs.
func (r *repository) Create(ctx context.Context, e Entry) (int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.Int64("product_id", e.ProductID),
		zap.String("change_type", string(e.ChangeType)),
	)

	var logID int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO inventory_logs (
			product_id, change_type, quantity, old_stock, new_stock,
			reason, reference_type, reference_id, changed_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING log_id`,
		e.ProductID, e.ChangeType, e.Quantity, e.OldStock, e.NewStock,
		e.Reason, e.ReferenceType, e.ReferenceID, e.ChangedBy,
	).Scan(&logID)

	if err != nil {
		log.Error("failed to insert inventory log", zap.Error(err))
		return 0, err
	}

	return logID, nil
}

func (r *repository) FindByProduct(ctx context.Context, productID int64, page, limit int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	rows, err := r.db.QueryContext(ctx, `
		SELECT
			il.log_id, il.product_id, il.change_type, il.quantity,
			il.old_stock, il.new_stock, il.reason, il.reference_type,
			il.reference_id, il.changed_by, COALESCE(u.full_name, ''), il.changed_at
		FROM inventory_logs il
		LEFT JOIN users u ON il.changed_by = u.user_id
		WHERE il.product_id = $1
		ORDER BY il.changed_at DESC
		LIMIT $2 OFFSET $3`,
		productID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.LogID, &e.ProductID, &e.ChangeType, &e.Quantity,
			&e.OldStock, &e.NewStock, &e.Reason, &e.ReferenceType,
			&e.ReferenceID, &e.ChangedBy, &e.ChangedByName, &e.ChangedAt,
		); err != nil {
			return nil, err
		}
		logs = append(logs, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var total int64
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM inventory_logs WHERE product_id = $1`, productID,
	).Scan(&total)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &Page{
		Logs:       logs,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}
