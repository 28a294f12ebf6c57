package admin

import (
	"time"

	"github.com/shopspring/decimal"
)

// LowStockThreshold marks products that need restocking soon.
const LowStockThreshold = 5

type DashboardStats struct {
	TodayRevenue      decimal.Decimal `json:"TodayRevenue"`
	TodayOrders       int64           `json:"TodayOrders"`
	TodaySoldQuantity int64           `json:"TodaySoldQuantity"`
	RefundedQuantity  int64           `json:"RefundedQuantity"`
	ReturnedOrders    int64           `json:"ReturnedOrders"`
}

type StockStats struct {
	OutOfStock int64 `json:"OutOfStock"`
	LowStock   int64 `json:"LowStock"`
	InStock    int64 `json:"InStock"`
	Threshold  int   `json:"Threshold"`
}

type RangeStats struct {
	StartDate time.Time       `json:"StartDate"`
	EndDate   time.Time       `json:"EndDate"`
	Revenue   decimal.Decimal `json:"Revenue"`
	Orders    int64           `json:"Orders"`
	Customers int64           `json:"Customers"`
}

type ChartPoint struct {
	Label     string          `json:"Label"`
	StartDate time.Time       `json:"StartDate"`
	EndDate   time.Time       `json:"EndDate"`
	Revenue   decimal.Decimal `json:"Revenue"`
}

type TopCustomer struct {
	UserID     int64           `json:"UserID"`
	FullName   string          `json:"FullName"`
	Email      string          `json:"Email"`
	OrderCount int64           `json:"OrderCount"`
	TotalSpent decimal.Decimal `json:"TotalSpent"`
}
