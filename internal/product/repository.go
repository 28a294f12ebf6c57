package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"furnistore-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, filters ListFilters) (*ListResult, error)
	GetByID(ctx context.Context, productID int64, onlyActive bool) (*Product, error)
	GetByCode(ctx context.Context, productCode string) (*Product, error)
	Search(ctx context.Context, filters SearchFilters) ([]Product, error)
	Related(ctx context.Context, productID, categoryID int64, limit int) ([]Product, error)
	ByCategory(ctx context.Context, categoryID int64, byParent bool, page, limit int) (*ListResult, error)

	Create(ctx context.Context, params CreateParams) (int64, error)
	Update(ctx context.Context, productID int64, params UpdateParams) error
	SoftDelete(ctx context.Context, productID int64) error
	UpdateStock(ctx context.Context, productID int64, stockQuantity int) error
	UpdateStatus(ctx context.Context, productID int64, isActive bool) error
	CodeExists(ctx context.Context, productCode string, excludeID int64) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `
	p.product_id, p.product_name, p.product_code, p.category_id,
	COALESCE(c.category_name, ''), c.parent_category_id,
	p.price, p.description, p.material, p.color, p.dimensions, p.weight,
	p.brand, p.stock_quantity, p.image_urls, p.is_active, p.created_at, p.updated_at`

const productJoin = `
	FROM products p
	LEFT JOIN categories c ON p.category_id = c.category_id`

// Sort fields exposed to clients. Anything else falls back to CreatedAt,
// so ORDER BY never sees raw client input.
var sortColumns = map[string]string{
	"ProductName":   "p.product_name",
	"Price":         "p.price",
	"CreatedAt":     "p.created_at",
	"StockQuantity": "p.stock_quantity",
}

func scanProduct(scan func(dest ...any) error) (*Product, error) {
	var p Product
	err := scan(
		&p.ProductID, &p.ProductName, &p.ProductCode, &p.CategoryID,
		&p.CategoryName, &p.ParentCategoryID,
		&p.Price, &p.Description, &p.Material, &p.Color, &p.Dimensions, &p.Weight,
		&p.Brand, &p.StockQuantity, pq.Array(&p.ImageURLs), &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProducts(rows *sql.Rows) ([]Product, error) {
	var products []Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *repository) List(ctx context.Context, filters ListFilters) (*ListResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)
	start := time.Now()

	// ---------- pagination ----------
	limit := filters.Limit
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	page := filters.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	// ---------- where ----------
	where := []string{"p.is_active = TRUE"}
	args := []any{}

	if filters.CategoryID != nil {
		where = append(where, fmt.Sprintf("p.category_id = $%d", len(args)+1))
		args = append(args, *filters.CategoryID)
	}
	if filters.MinPrice != nil {
		where = append(where, fmt.Sprintf("p.price >= $%d", len(args)+1))
		args = append(args, *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		where = append(where, fmt.Sprintf("p.price <= $%d", len(args)+1))
		args = append(args, *filters.MaxPrice)
	}
	if filters.Brand != "" {
		where = append(where, fmt.Sprintf("p.brand ILIKE $%d", len(args)+1))
		args = append(args, "%"+filters.Brand+"%")
	}
	if filters.Material != "" {
		where = append(where, fmt.Sprintf("p.material ILIKE $%d", len(args)+1))
		args = append(args, "%"+filters.Material+"%")
	}

	whereClause := strings.Join(where, " AND ")

	// ---------- count ----------
	var total int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM products p WHERE "+whereClause, args...,
	).Scan(&total)
	if err != nil {
		log.Error("failed to count products", zap.Error(err))
		return nil, err
	}

	// ---------- sort ----------
	orderBy := "p.created_at"
	if col, ok := sortColumns[filters.SortBy]; ok {
		orderBy = col
	}
	dir := "DESC"
	if strings.EqualFold(filters.SortOrder, "asc") {
		dir = "ASC"
	}

	// ---------- query ----------
	query := "SELECT" + productColumns + productJoin +
		" WHERE " + whereClause +
		" ORDER BY " + orderBy + " " + dir +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}
	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		log.Error("row scan failed", zap.Error(err))
		return nil, err
	}

	log.Debug("list products success",
		zap.Int("rows", len(products)),
		zap.Int64("total", total),
		zap.Duration("duration", time.Since(start)),
	)

	return &ListResult{
		Products:   products,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (r *repository) GetByID(ctx context.Context, productID int64, onlyActive bool) (*Product, error) {
	query := "SELECT" + productColumns + productJoin + " WHERE p.product_id = $1"
	if onlyActive {
		query += " AND p.is_active = TRUE"
	}

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, productID).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	return p, err
}

func (r *repository) GetByCode(ctx context.Context, productCode string) (*Product, error) {
	query := "SELECT" + productColumns + productJoin +
		" WHERE p.product_code = $1 AND p.is_active = TRUE"

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, productCode).Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	return p, err
}

// Search runs a keyword search over name/description/brand, capped at 50 rows.
func (r *repository) Search(ctx context.Context, filters SearchFilters) ([]Product, error) {
	where := []string{"p.is_active = TRUE"}
	args := []any{}

	if filters.Query != "" {
		n := len(args) + 1
		where = append(where, fmt.Sprintf(
			"(p.product_name ILIKE $%d OR p.description ILIKE $%d OR p.brand ILIKE $%d)", n, n, n))
		args = append(args, "%"+filters.Query+"%")
	}
	if filters.CategoryID != nil {
		where = append(where, fmt.Sprintf("p.category_id = $%d", len(args)+1))
		args = append(args, *filters.CategoryID)
	}
	if filters.MinPrice != nil {
		where = append(where, fmt.Sprintf("p.price >= $%d", len(args)+1))
		args = append(args, *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		where = append(where, fmt.Sprintf("p.price <= $%d", len(args)+1))
		args = append(args, *filters.MaxPrice)
	}
	if filters.InStock {
		where = append(where, "p.stock_quantity > 0")
	}

	query := "SELECT" + productColumns + productJoin +
		" WHERE " + strings.Join(where, " AND ") +
		" ORDER BY p.created_at DESC LIMIT 50"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

// Related returns a random sample of in-stock products from the same category.
func (r *repository) Related(ctx context.Context, productID, categoryID int64, limit int) ([]Product, error) {
	query := "SELECT" + productColumns + productJoin + `
		WHERE p.category_id = $1
		  AND p.product_id != $2
		  AND p.is_active = TRUE
		  AND p.stock_quantity > 0
		ORDER BY RANDOM()
		LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, categoryID, productID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProducts(rows)
}

// ByCategory lists active products in a category. With byParent set it
// matches products whose category is a child of the given one instead.
func (r *repository) ByCategory(ctx context.Context, categoryID int64, byParent bool, page, limit int) (*ListResult, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	where := "p.is_active = TRUE AND p.category_id = $1"
	if byParent {
		where = "p.is_active = TRUE AND c.parent_category_id = $1"
	}

	var total int64
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM products p LEFT JOIN categories c ON p.category_id = c.category_id WHERE "+where,
		categoryID,
	).Scan(&total)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT"+productColumns+productJoin+
			" WHERE "+where+
			" ORDER BY p.created_at DESC LIMIT $2 OFFSET $3",
		categoryID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products, err := collectProducts(rows)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		Products:   products,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (r *repository) Create(ctx context.Context, params CreateParams) (int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("product_code", params.ProductCode),
	)

	var productID int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (
			product_name, product_code, category_id, price, description,
			material, color, dimensions, weight, brand, stock_quantity, image_urls
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING product_id`,
		params.ProductName, params.ProductCode, params.CategoryID, params.Price,
		params.Description, params.Material, params.Color, params.Dimensions,
		params.Weight, params.Brand, params.StockQuantity, pq.Array(params.ImageURLs),
	).Scan(&productID)

	if err != nil {
		log.Error("failed to insert product", zap.Error(err))
		return 0, err
	}

	log.Info("product created", zap.Int64("product_id", productID))
	return productID, nil
}

func (r *repository) Update(ctx context.Context, productID int64, params UpdateParams) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET product_name = $1, category_id = $2, price = $3, description = $4,
		    material = $5, color = $6, dimensions = $7, weight = $8, brand = $9,
		    image_urls = $10, updated_at = NOW()
		WHERE product_id = $11`,
		params.ProductName, params.CategoryID, params.Price, params.Description,
		params.Material, params.Color, params.Dimensions, params.Weight,
		params.Brand, pq.Array(params.ImageURLs), productID,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *repository) SoftDelete(ctx context.Context, productID int64) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET is_active = FALSE, updated_at = NOW()
		WHERE product_id = $1`,
		productID,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *repository) UpdateStock(ctx context.Context, productID int64, stockQuantity int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET stock_quantity = $1, updated_at = NOW()
		WHERE product_id = $2`,
		stockQuantity, productID,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *repository) UpdateStatus(ctx context.Context, productID int64, isActive bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET is_active = $1, updated_at = NOW()
		WHERE product_id = $2`,
		isActive, productID,
	)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (r *repository) CodeExists(ctx context.Context, productCode string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM products
			WHERE product_code = $1 AND product_id != $2
		)`, productCode, excludeID,
	).Scan(&exists)
	return exists, err
}
