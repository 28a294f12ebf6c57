package cart

import "github.com/shopspring/decimal"

type Item struct {
	CartItemID    int64           `json:"CartItemID"`
	ProductID     int64           `json:"ProductID"`
	ProductName   string          `json:"ProductName"`
	ProductCode   string          `json:"ProductCode"`
	Price         decimal.Decimal `json:"Price"`
	Quantity      int             `json:"Quantity"`
	StockQuantity int             `json:"StockQuantity"`
	ImageURL      string          `json:"ImageURL"`
	Subtotal      decimal.Decimal `json:"Subtotal"`
}

// View is the full cart as returned to the client. Every mutation
// returns a fresh View so the frontend never has to patch local state.
type View struct {
	CartID      int64           `json:"CartID"`
	Items       []Item          `json:"Items"`
	TotalItems  int             `json:"TotalItems"`
	TotalAmount decimal.Decimal `json:"TotalAmount"`
}
