package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/storefront/internal/middleware"
	"github.com/example/storefront/internal/models"
)

// WishlistHandler manages the per-user wishlist.
type WishlistHandler struct {
	db *gorm.DB
}

// NewWishlistHandler constructs WishlistHandler.
func NewWishlistHandler(db *gorm.DB) *WishlistHandler {
	return &WishlistHandler{db: db}
}

func (h *WishlistHandler) getOrCreate(userID uuid.UUID) (models.Wishlist, error) {
	var wishlist models.Wishlist
	err := h.db.Where(models.Wishlist{UserID: userID}).FirstOrCreate(&wishlist).Error
	return wishlist, err
}

// GetWishlist returns the caller's wishlist, creating it on first access.
func (h *WishlistHandler) GetWishlist(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	wishlist, err := h.getOrCreate(userID)
	if err != nil {
		return err
	}

	if err := h.db.Preload("Items.Product.Category").
		Preload("Items.Product.Images").Preload("Items.Product.Variants").
		First(&wishlist, "id = ?", wishlist.ID).Error; err != nil {
		return err
	}

	items := make([]fiber.Map, 0, len(wishlist.Items))
	for _, item := range wishlist.Items {
		entry := fiber.Map{"id": item.ID, "added_at": item.CreatedAt}
		if item.Product != nil {
			entry["product"] = productListPayload(item.Product)
		}
		items = append(items, entry)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":          wishlist.ID,
			"items":       items,
			"total_items": len(items),
			"created_at":  wishlist.CreatedAt,
		},
	})
}

// AddToWishlist puts a product on the caller's wishlist. Adding a product
// that is already listed succeeds without creating a second entry; the
// status code tells the two cases apart.
func (h *WishlistHandler) AddToWishlist(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	productID, err := uuid.Parse(c.Params("product_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	wishlist, err := h.getOrCreate(userID)
	if err != nil {
		return err
	}

	item := models.WishlistItem{WishlistID: wishlist.ID, ProductID: productID}
	if err := h.db.Create(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.JSON(fiber.Map{"success": true, "message": "product already in wishlist"})
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "product added to wishlist"})
}

// RemoveFromWishlist drops a product from the caller's wishlist.
func (h *WishlistHandler) RemoveFromWishlist(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	productID, err := uuid.Parse(c.Params("product_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	var wishlist models.Wishlist
	if err := h.db.First(&wishlist, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "wishlist not found")
		}
		return err
	}

	result := h.db.Delete(&models.WishlistItem{},
		"wishlist_id = ? AND product_id = ?", wishlist.ID, productID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "product not in wishlist")
	}

	return c.JSON(fiber.Map{"success": true, "message": "product removed from wishlist"})
}
