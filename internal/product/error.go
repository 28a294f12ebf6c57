package product

import "errors"

var (
	// -- Resource State --
	ErrProductNotFound = errors.New("product not found")
	ErrCodeExists      = errors.New("product code already exists")

	// -- Validation & Input --
	ErrInvalidStock = errors.New("stock quantity must not be negative")
)
