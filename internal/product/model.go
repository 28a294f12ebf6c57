package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID        int64           `json:"ProductID"`
	ProductName      string          `json:"ProductName"`
	ProductCode      string          `json:"ProductCode"`
	CategoryID       int64           `json:"CategoryID"`
	CategoryName     string          `json:"CategoryName,omitempty"`
	ParentCategoryID *int64          `json:"ParentCategoryID,omitempty"`
	Price            decimal.Decimal `json:"Price"`
	Description      string          `json:"Description"`
	Material         string          `json:"Material"`
	Color            string          `json:"Color"`
	Dimensions       string          `json:"Dimensions"`
	Weight           string          `json:"Weight"`
	Brand            string          `json:"Brand"`
	StockQuantity    int             `json:"StockQuantity"`
	ImageURLs        []string        `json:"ImageURLs"`
	IsActive         bool            `json:"IsActive"`
	CreatedAt        time.Time       `json:"CreatedAt"`
	UpdatedAt        time.Time       `json:"UpdatedAt"`
}

type ListFilters struct {
	Page       int
	Limit      int
	CategoryID *int64
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	Brand      string
	Material   string
	SortBy     string
	SortOrder  string
}

type ListResult struct {
	Products   []Product
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

type SearchFilters struct {
	Query      string
	CategoryID *int64
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	InStock    bool
}

type CreateParams struct {
	ProductName   string
	ProductCode   string
	CategoryID    int64
	Price         decimal.Decimal
	Description   string
	Material      string
	Color         string
	Dimensions    string
	Weight        string
	Brand         string
	StockQuantity int
	ImageURLs     []string
}

type UpdateParams struct {
	ProductName string
	CategoryID  int64
	Price       decimal.Decimal
	Description string
	Material    string
	Color       string
	Dimensions  string
	Weight      string
	Brand       string
	ImageURLs   []string
}
