package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusPackaging Status = "Packaging"
	StatusShipping  Status = "Shipping"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
	StatusReturned  Status = "Returned"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentPaid     PaymentStatus = "Paid"
	PaymentFailed   PaymentStatus = "Failed"
	PaymentRefunded PaymentStatus = "Refunded"
)

type Item struct {
	OrderItemID int64           `json:"OrderItemID"`
	ProductID   int64           `json:"ProductID"`
	ProductName string          `json:"ProductName"`
	ImageURL    string          `json:"ImageURL"`
	Quantity    int             `json:"Quantity"`
	UnitPrice   decimal.Decimal `json:"UnitPrice"`
	Subtotal    decimal.Decimal `json:"Subtotal"`
}

type Order struct {
	OrderID         int64           `json:"OrderID"`
	OrderCode       string          `json:"OrderCode"`
	UserID          int64           `json:"UserID"`
	CustomerName    string          `json:"CustomerName,omitempty"`
	OrderDate       time.Time       `json:"OrderDate"`
	TotalAmount     decimal.Decimal `json:"TotalAmount"`
	ShippingFee     decimal.Decimal `json:"ShippingFee"`
	ShippingAddress string          `json:"ShippingAddress"`
	PaymentMethod   string          `json:"PaymentMethod"`
	PaymentStatus   PaymentStatus   `json:"PaymentStatus"`
	Status          Status          `json:"Status"`
	Notes           string          `json:"Notes"`
	ItemCount       int             `json:"ItemCount"`
	Items           []Item          `json:"Items,omitempty"`
}

type AdminFilters struct {
	Status Status
	Page   int
	Limit  int
}

type PageResult struct {
	Orders     []Order `json:"Orders"`
	Total      int64   `json:"Total"`
	Page       int     `json:"Page"`
	Limit      int     `json:"Limit"`
	TotalPages int     `json:"TotalPages"`
}

type UpdateParams struct {
	Status        Status
	PaymentStatus PaymentStatus
	Notes         *string
}
