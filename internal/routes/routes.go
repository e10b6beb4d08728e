package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/storefront/internal/config"
	"github.com/example/storefront/internal/handlers"
	"github.com/example/storefront/internal/middleware"
	"github.com/example/storefront/internal/portal"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	catalogHandler := handlers.NewCatalogHandler(db)
	productHandler := handlers.NewProductHandler(db)
	cartHandler := handlers.NewCartHandler(db)
	orderHandler := handlers.NewOrderHandler(db)
	reviewHandler := handlers.NewReviewHandler(db)
	wishlistHandler := handlers.NewWishlistHandler(db)
	couponHandler := handlers.NewCouponHandler(db)
	profileHandler := handlers.NewProfileHandler(db)
	adminHandler := handlers.NewAdminHandler(db)

	requireAuth := middleware.AuthMiddleware(cfg)
	requireAdmin := middleware.AdminMiddleware(db)

	api := app.Group("/api")

	api.Get("/", handlers.APIInfo)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Catalog routes
	categories := api.Group("/categories")
	categories.Get("/", catalogHandler.ListCategories)
	categories.Post("/", requireAuth, requireAdmin, catalogHandler.CreateCategory)
	categories.Get("/:id", catalogHandler.GetCategory)
	categories.Put("/:id", requireAuth, requireAdmin, catalogHandler.UpdateCategory)
	categories.Delete("/:id", requireAuth, requireAdmin, catalogHandler.DeleteCategory)
	categories.Get("/:id/products", catalogHandler.CategoryProducts)

	// Product routes
	products := api.Group("/products")
	products.Get("/", productHandler.ListProducts)
	products.Get("/search", productHandler.ListProducts)
	products.Post("/", requireAuth, requireAdmin, productHandler.CreateProduct)
	products.Get("/:id", productHandler.GetProduct)
	products.Put("/:id", requireAuth, requireAdmin, productHandler.UpdateProduct)
	products.Delete("/:id", requireAuth, requireAdmin, productHandler.DeleteProduct)

	// Variant routes
	products.Get("/:product_id/variants", productHandler.ListVariants)
	products.Post("/:product_id/variants", requireAuth, requireAdmin, productHandler.CreateVariant)
	variants := api.Group("/variants")
	variants.Get("/:id", productHandler.GetVariant)
	variants.Put("/:id", requireAuth, requireAdmin, productHandler.UpdateVariant)
	variants.Delete("/:id", requireAuth, requireAdmin, productHandler.DeleteVariant)

	// Review routes
	products.Get("/:product_id/reviews", reviewHandler.ListProductReviews)
	products.Post("/:product_id/reviews", requireAuth, reviewHandler.CreateReview)
	reviews := api.Group("/reviews", requireAuth)
	reviews.Get("/:id", reviewHandler.GetReview)
	reviews.Put("/:id", reviewHandler.UpdateReview)
	reviews.Delete("/:id", reviewHandler.DeleteReview)

	// Coupon routes
	coupons := api.Group("/coupons")
	coupons.Get("/", couponHandler.ListCoupons)
	coupons.Post("/validate", couponHandler.ValidateCoupon)

	// Protected routes
	protected := api.Group("", requireAuth)

	cart := protected.Group("/cart")
	cart.Get("/", cartHandler.GetCart)
	cart.Post("/add", cartHandler.AddToCart)
	cart.Put("/items/:id", cartHandler.UpdateCartItem)
	cart.Delete("/items/:id/remove", cartHandler.RemoveCartItem)

	protected.Post("/orders", orderHandler.CreateOrder)
	protected.Get("/orders", orderHandler.ListOrders)
	protected.Get("/orders/:id", orderHandler.GetOrder)
	protected.Put("/orders/:id/status", requireAdmin, orderHandler.UpdateOrderStatus)

	wishlist := protected.Group("/wishlist")
	wishlist.Get("/", wishlistHandler.GetWishlist)
	wishlist.Post("/add/:product_id", wishlistHandler.AddToWishlist)
	wishlist.Delete("/remove/:product_id", wishlistHandler.RemoveFromWishlist)

	protected.Get("/profile", profileHandler.GetProfile)
	protected.Put("/profile", profileHandler.UpdateProfile)

	protected.Get("/admin/stats", requireAdmin, adminHandler.DashboardStats)

	// Server-rendered customer portal
	portalHandler := portal.NewHandler(db, cfg)

	shop := app.Group("/shop")
	shop.Get("/login", portalHandler.LoginPage)
	shop.Post("/login", portalHandler.Login)
	shop.Get("/logout", portalHandler.Logout)

	store := shop.Group("", portalHandler.RequireLogin)
	store.Get("/", portalHandler.Catalog)
	store.Get("/product/:id", portalHandler.ProductDetail)
	store.Get("/category/:id", portalHandler.CategoryProducts)
	store.Get("/cart", portalHandler.Cart)
	store.Post("/cart/add", portalHandler.AddToCart)
	store.Post("/cart/items/:id/update", portalHandler.UpdateCartItem)
	store.Post("/cart/items/:id/remove", portalHandler.RemoveCartItem)
}
