package checkout

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is one cart row priced for checkout.
type Line struct {
	ProductID     int64           `json:"ProductID"`
	ProductName   string          `json:"ProductName"`
	Price         decimal.Decimal `json:"Price"`
	Quantity      int             `json:"Quantity"`
	StockQuantity int             `json:"StockQuantity"`
	Subtotal      decimal.Decimal `json:"Subtotal"`
	ImageURL      string          `json:"ImageURL"`
}

type Summary struct {
	Subtotal    decimal.Decimal `json:"Subtotal"`
	ShippingFee decimal.Decimal `json:"ShippingFee"`
	TotalAmount decimal.Decimal `json:"TotalAmount"`
	ItemCount   int             `json:"ItemCount"`
}

type UserInfo struct {
	FullName string `json:"FullName"`
	Phone    string `json:"Phone"`
	Address  string `json:"Address"`
	Email    string `json:"Email"`
}

// Info is everything the checkout page needs in one call.
type Info struct {
	User            UserInfo `json:"User"`
	Items           []Line   `json:"Items"`
	Summary         Summary  `json:"Summary"`
	ShippingMethods []string `json:"ShippingMethods"`
	PaymentMethods  []string `json:"PaymentMethods"`
}

type PlaceOrderParams struct {
	FullName        string
	Phone           string
	ShippingAddress string
	PaymentMethod   string
	Notes           string
}

type PlacedOrder struct {
	OrderID       int64           `json:"OrderID"`
	OrderCode     string          `json:"OrderCode"`
	TotalAmount   decimal.Decimal `json:"TotalAmount"`
	ShippingFee   decimal.Decimal `json:"ShippingFee"`
	Status        string          `json:"Status"`
	PaymentMethod string          `json:"PaymentMethod"`
	PaymentStatus string          `json:"PaymentStatus"`
	OrderDate     time.Time       `json:"OrderDate"`
}
