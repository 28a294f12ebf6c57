package cart

import "errors"

var (
	ErrItemNotFound       = errors.New("cart item not found")
	ErrProductUnavailable = errors.New("product is not available")
	ErrInsufficientStock  = errors.New("not enough stock for requested quantity")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
)
