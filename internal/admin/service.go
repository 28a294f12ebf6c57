package admin

import (
	"context"
	"time"
)

const maxChartPoints = 10

type Service interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	StockStats(ctx context.Context) (*StockStats, error)
	RangeStats(ctx context.Context, start, end time.Time) (*RangeStats, error)
	RevenueChart(ctx context.Context, start, end time.Time) ([]ChartPoint, error)
	TopCustomers(ctx context.Context) ([]TopCustomer, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Dashboard(ctx context.Context) (*DashboardStats, error) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.repo.Dashboard(ctx, dayStart, dayStart.AddDate(0, 0, 1))
}

func (s *service) StockStats(ctx context.Context) (*StockStats, error) {
	return s.repo.StockStats(ctx, LowStockThreshold)
}

func (s *service) RangeStats(ctx context.Context, start, end time.Time) (*RangeStats, error) {
	if !end.After(start) {
		end = start.AddDate(0, 0, 1)
	}

	stats := &RangeStats{StartDate: start, EndDate: end}
	var err error

	if stats.Revenue, err = s.repo.RevenueBetween(ctx, start, end); err != nil {
		return nil, err
	}
	if stats.Orders, err = s.repo.OrderCountBetween(ctx, start, end); err != nil {
		return nil, err
	}
	if stats.Customers, err = s.repo.CustomerCountBetween(ctx, start, end); err != nil {
		return nil, err
	}
	return stats, nil
}

// RevenueChart slices the range into buckets. Up to ten days gets one
// point per day; longer ranges get at most ten equal buckets.
func (s *service) RevenueChart(ctx context.Context, start, end time.Time) ([]ChartPoint, error) {
	if !end.After(start) {
		end = start.AddDate(0, 0, 1)
	}

	totalDays := int(end.Sub(start).Hours() / 24)
	if totalDays < 1 {
		totalDays = 1
	}

	buckets := totalDays
	if buckets > maxChartPoints {
		buckets = maxChartPoints
	}
	step := end.Sub(start) / time.Duration(buckets)

	points := make([]ChartPoint, 0, buckets)
	for i := 0; i < buckets; i++ {
		bucketStart := start.Add(step * time.Duration(i))
		bucketEnd := bucketStart.Add(step)
		if i == buckets-1 {
			bucketEnd = end
		}

		revenue, err := s.repo.RevenueBetween(ctx, bucketStart, bucketEnd)
		if err != nil {
			return nil, err
		}

		points = append(points, ChartPoint{
			Label:     bucketStart.Format("2006-01-02"),
			StartDate: bucketStart,
			EndDate:   bucketEnd,
			Revenue:   revenue,
		})
	}
	return points, nil
}

func (s *service) TopCustomers(ctx context.Context) ([]TopCustomer, error) {
	return s.repo.TopCustomers(ctx, 10)
}
