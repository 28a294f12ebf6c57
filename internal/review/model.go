package review

import "time"

type Review struct {
	ReviewID     int64     `json:"ReviewID"`
	OrderID      int64     `json:"OrderID"`
	ProductID    int64     `json:"ProductID"`
	UserID       int64     `json:"UserID"`
	ReviewerName string    `json:"ReviewerName,omitempty"`
	Rating       int       `json:"Rating"`
	Comment      string    `json:"Comment"`
	IsApproved   bool      `json:"IsApproved"`
	CreatedAt    time.Time `json:"CreatedAt"`
}

type AddParams struct {
	OrderID   int64
	ProductID int64
	UserID    int64
	Rating    int
	Comment   string
}

// Aggregate is the rating summary shown on product pages. Stars maps
// each rating value 1..5 to its review count.
type Aggregate struct {
	ProductID   int64       `json:"ProductID"`
	Average     float64     `json:"Average"`
	ReviewCount int         `json:"ReviewCount"`
	Stars       map[int]int `json:"Stars"`
}
