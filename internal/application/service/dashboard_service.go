package service

import (
	"context"

	"github.com/izaplantas/floricultura-api/internal/domain/entity"
	"github.com/izaplantas/floricultura-api/internal/domain/enum"
	"github.com/izaplantas/floricultura-api/internal/domain/repository"
)

// DashboardService derives back-office statistics from the stored
// collections. Nothing here is persisted; every call recomputes.
type DashboardService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	financeRepo repository.FinanceRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	financeRepo repository.FinanceRepository,
) *DashboardService {
	return &DashboardService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		financeRepo: financeRepo,
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TotalRevenue   float64           `json:"total_revenue"`
	TotalOrders    int               `json:"total_orders"`
	TotalProducts  int               `json:"total_products"`
	LowStockCount  int               `json:"low_stock_count"`
	PendingOrders  int               `json:"pending_orders"`
	DailySalesData []DailySalesPoint `json:"daily_sales_data"`
	Finance        *FinanceSummary   `json:"finance"`
}

// DailySalesPoint represents a daily sales data point
type DailySalesPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// GetDashboardStats returns dashboard statistics
func (s *DashboardService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.financeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		TotalOrders:   len(orders),
		TotalProducts: len(products),
		Finance:       SummarizeEntries(entries),
	}

	// Revenue counts every recorded order. Cancellations do not reverse
	// sales figures; the ledger is corrected manually when needed.
	var revenue int64
	for i := range orders {
		revenue += orders[i].Total
		if orders[i].Status == enum.OrderStatusPending {
			stats.PendingOrders++
		}
	}
	stats.TotalRevenue = float64(revenue) / 100

	for i := range products {
		if products[i].IsLowStock() {
			stats.LowStockCount++
		}
	}

	stats.DailySalesData = dailySales(orders, 7)

	return stats, nil
}

// dailySales buckets order revenue by calendar day and keeps the last
// n distinct days that have sales, oldest first. Orders are stored in
// placement order, so first-seen day order is chronological.
func dailySales(orders []entity.Order, n int) []DailySalesPoint {
	byDay := make(map[string]int64)
	var days []string
	for i := range orders {
		day := orders[i].Date.Format("2006-01-02")
		if _, seen := byDay[day]; !seen {
			days = append(days, day)
		}
		byDay[day] += orders[i].Total
	}

	if len(days) > n {
		days = days[len(days)-n:]
	}

	points := make([]DailySalesPoint, 0, len(days))
	for _, day := range days {
		points = append(points, DailySalesPoint{
			Date:    day,
			Revenue: float64(byDay[day]) / 100,
		})
	}
	return points
}
