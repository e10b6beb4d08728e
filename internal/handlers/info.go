package handlers

import "github.com/gofiber/fiber/v2"

// APIInfo describes the API surface for anyone hitting the root endpoint.
func APIInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"name":    "Storefront API",
			"version": "1.0",
			"endpoints": fiber.Map{
				"auth":       "/api/auth/register, /api/auth/login",
				"categories": "/api/categories",
				"products":   "/api/products",
				"variants":   "/api/variants",
				"cart":       "/api/cart",
				"orders":     "/api/orders",
				"reviews":    "/api/products/:product_id/reviews",
				"wishlist":   "/api/wishlist",
				"coupons":    "/api/coupons",
				"profile":    "/api/profile",
				"admin":      "/api/admin/stats",
			},
		},
	})
}
