package checkout

import (
	"errors"
	"fmt"
)

var (
	// -- Validation & Input --
	ErrMissingShippingInfo = errors.New("full name, phone and shipping address are required")
	ErrInvalidPhone        = errors.New("phone number is not a valid Vietnamese number")

	// -- Order State --
	ErrCartEmpty = errors.New("cart is empty")
)

// InsufficientStockError names the product so the client can show which
// line blocked the order.
type InsufficientStockError struct {
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %q: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}
