package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/example/storefront/internal/models"
)

// StatsService computes the read-only admin dashboard aggregation.
type StatsService struct {
	db *gorm.DB
}

// NewStatsService constructs StatsService.
func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// TopProduct ranks a product by the number of orders touching its variants.
type TopProduct struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	OrderCount int64  `json:"order_count"`
}

// DashboardStats is the admin aggregation payload.
type DashboardStats struct {
	TotalProducts   int64        `json:"total_products"`
	TotalCategories int64        `json:"total_categories"`
	TotalOrders     int64        `json:"total_orders"`
	TotalUsers      int64        `json:"total_users"`
	RecentOrders    int64        `json:"recent_orders"`
	TotalRevenue    float64      `json:"total_revenue"`
	MonthlyRevenue  float64      `json:"monthly_revenue"`
	TopProducts     []TopProduct `json:"top_products"`
}

// Dashboard aggregates counts and revenue over all orders plus a trailing
// 30-day window. Sums default to zero when no orders exist.
func (s *StatsService) Dashboard() (DashboardStats, error) {
	var stats DashboardStats

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Product{}, &stats.TotalProducts},
		{&models.Category{}, &stats.TotalCategories},
		{&models.Order{}, &stats.TotalOrders},
		{&models.User{}, &stats.TotalUsers},
	}
	for _, c := range counts {
		if err := s.db.Model(c.model).Count(c.dest).Error; err != nil {
			return stats, err
		}
	}

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)

	if err := s.db.Model(&models.Order{}).
		Where("created_at >= ?", thirtyDaysAgo).
		Count(&stats.RecentOrders).Error; err != nil {
		return stats, err
	}

	if err := s.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return stats, err
	}

	if err := s.db.Model(&models.Order{}).
		Where("created_at >= ?", thirtyDaysAgo).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&stats.MonthlyRevenue).Error; err != nil {
		return stats, err
	}

	// Top 5 products by distinct orders referencing any of their variants.
	if err := s.db.Raw(`
		SELECT p.id, p.name, COUNT(DISTINCT oi.order_id) AS order_count
		FROM products p
		LEFT JOIN product_variants v ON v.product_id = p.id
		LEFT JOIN order_items oi ON oi.variant_id = v.id
		GROUP BY p.id, p.name
		ORDER BY order_count DESC
		LIMIT 5`).
		Scan(&stats.TopProducts).Error; err != nil {
		return stats, err
	}

	return stats, nil
}
