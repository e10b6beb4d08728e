package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/example/storefront/internal/models"
)

func TestAverageRating(t *testing.T) {
	require.Equal(t, 0.0, averageRating(nil))

	reviews := []models.ProductReview{
		{Rating: 5}, {Rating: 4}, {Rating: 5}, {Rating: 3}, {Rating: 5},
	}
	require.Equal(t, 4.4, averageRating(reviews))

	require.Equal(t, 4.5, averageRating([]models.ProductReview{{Rating: 4}, {Rating: 5}}))
	require.Equal(t, 1.0, averageRating([]models.ProductReview{{Rating: 1}}))
}

func TestPriceRangeFallsBackToBasePrice(t *testing.T) {
	p := models.Product{BasePrice: 100}
	minPrice, maxPrice := priceRange(&p)
	require.Equal(t, 100.0, minPrice)
	require.Equal(t, 100.0, maxPrice)
}

func TestPriceRangeSpansActiveVariants(t *testing.T) {
	p := models.Product{
		BasePrice: 100,
		Variants: []models.ProductVariant{
			{PriceModifier: 0, IsActive: true},
			{PriceModifier: 300, IsActive: true},
			{PriceModifier: -50, IsActive: true},
			{PriceModifier: 9000, IsActive: false},
		},
	}
	minPrice, maxPrice := priceRange(&p)
	require.Equal(t, 50.0, minPrice)
	require.Equal(t, 400.0, maxPrice)
}

func TestPriceRangeIgnoresInactiveOnly(t *testing.T) {
	// All variants inactive: the base price stands in for both ends.
	p := models.Product{
		BasePrice: 100,
		Variants: []models.ProductVariant{
			{PriceModifier: 300, IsActive: false},
		},
	}
	minPrice, maxPrice := priceRange(&p)
	require.Equal(t, 100.0, minPrice)
	require.Equal(t, 100.0, maxPrice)
}

func TestPrimaryImageFirstFlaggedWins(t *testing.T) {
	p := models.Product{
		Images: []models.ProductImage{
			{URL: "a.jpg", IsPrimary: false},
			{URL: "b.jpg", IsPrimary: true},
			{URL: "c.jpg", IsPrimary: true},
		},
	}
	payload, ok := primaryImage(&p).(fiber.Map)
	require.True(t, ok)
	require.Equal(t, "b.jpg", payload["url"])

	require.Nil(t, primaryImage(&models.Product{}))
}

func TestVariantPayloadFinalPrice(t *testing.T) {
	product := models.Product{BasePrice: 100}
	v := models.ProductVariant{
		Product:        &product,
		PriceModifier:  25,
		InventoryCount: 0,
		IsActive:       true,
	}
	payload := variantPayload(v)
	require.Equal(t, 125.0, payload["final_price"])
	require.Equal(t, false, payload["is_in_stock"])
}
