package review

import "errors"

var (
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrNotPurchased    = errors.New("product was not purchased in this order")
	ErrAlreadyReviewed = errors.New("product already reviewed for this order")
)
