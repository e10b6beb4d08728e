package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/storefront/internal/database"
	"github.com/example/storefront/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedVariant(t *testing.T, db *gorm.DB, basePrice, modifier float64, inventory int) models.ProductVariant {
	t.Helper()

	category := models.Category{Name: "Category " + t.Name(), IsActive: true}
	require.NoError(t, db.Create(&category).Error)

	product := models.Product{
		Name:       "Product " + t.Name(),
		CategoryID: category.ID,
		BasePrice:  basePrice,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&product).Error)

	variant := models.ProductVariant{
		ProductID:      product.ID,
		Name:           "Default",
		SKU:            "SKU-" + strings.ReplaceAll(t.Name(), "/", "-"),
		PriceModifier:  modifier,
		InventoryCount: inventory,
		IsActive:       true,
	}
	require.NoError(t, db.Create(&variant).Error)
	variant.Product = &product
	return variant
}
