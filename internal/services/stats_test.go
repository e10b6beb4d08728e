package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/example/storefront/internal/models"
)

func TestDashboardEmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	stats, err := svc.Dashboard()
	require.NoError(t, err)
	require.EqualValues(t, 0, stats.TotalProducts)
	require.EqualValues(t, 0, stats.TotalOrders)
	require.EqualValues(t, 0, stats.TotalUsers)
	require.Equal(t, 0.0, stats.TotalRevenue)
	require.Equal(t, 0.0, stats.MonthlyRevenue)
}

func TestDashboardAggregates(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	checkout := NewCheckoutService(db)
	svc := NewStatsService(db)

	user := seedUser(t, db, "alice")
	variant := seedVariant(t, db, 100, 0, 50)

	_, err := carts.AddItem(user.ID, variant.ID, 2)
	require.NoError(t, err)
	_, err = checkout.PlaceOrder(user.ID, CheckoutRequest{})
	require.NoError(t, err)

	_, err = carts.AddItem(user.ID, variant.ID, 1)
	require.NoError(t, err)
	_, err = checkout.PlaceOrder(user.ID, CheckoutRequest{})
	require.NoError(t, err)

	stats, err := svc.Dashboard()
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.TotalProducts)
	require.EqualValues(t, 1, stats.TotalCategories)
	require.EqualValues(t, 2, stats.TotalOrders)
	require.EqualValues(t, 1, stats.TotalUsers)
	require.EqualValues(t, 2, stats.RecentOrders)
	require.Equal(t, 300.0, stats.TotalRevenue)
	require.Equal(t, 300.0, stats.MonthlyRevenue)
}

func TestDashboardTopProducts(t *testing.T) {
	db := newTestDB(t)
	carts := NewCartService(db)
	checkout := NewCheckoutService(db)
	svc := NewStatsService(db)

	user := seedUser(t, db, "alice")
	popular := seedVariant(t, db, 100, 0, 50)

	category := models.Category{Name: "Quiet", IsActive: true}
	require.NoError(t, db.Create(&category).Error)
	unsold := models.Product{Name: "Unsold", CategoryID: category.ID, BasePrice: 10, IsActive: true}
	require.NoError(t, db.Create(&unsold).Error)

	for i := 0; i < 2; i++ {
		_, err := carts.AddItem(user.ID, popular.ID, 1)
		require.NoError(t, err)
		_, err = checkout.PlaceOrder(user.ID, CheckoutRequest{})
		require.NoError(t, err)
	}

	stats, err := svc.Dashboard()
	require.NoError(t, err)
	require.Len(t, stats.TopProducts, 2)

	// Ranked by distinct orders; products without sales still appear at zero.
	require.Equal(t, popular.Product.Name, stats.TopProducts[0].Name)
	require.EqualValues(t, 2, stats.TopProducts[0].OrderCount)
	require.Equal(t, "Unsold", stats.TopProducts[1].Name)
	require.EqualValues(t, 0, stats.TopProducts[1].OrderCount)
}
