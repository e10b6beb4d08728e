package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/storefront/internal/middleware"
	"github.com/example/storefront/internal/services"
)

// CartHandler exposes the cart engine over JSON.
type CartHandler struct {
	db    *gorm.DB
	carts *services.CartService
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(db *gorm.DB) *CartHandler {
	return &CartHandler{db: db, carts: services.NewCartService(db)}
}

// GetCart returns the caller's cart, creating it on first access.
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	cart, err := h.carts.Get(userID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": cartPayload(cart)})
}

type addToCartRequest struct {
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// AddToCart adds a variant to the caller's cart. Repeated adds of the same
// variant merge quantities into one line.
func (h *CartHandler) AddToCart(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var req addToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	variantID, err := uuid.Parse(req.VariantID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "product variant not found")
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	item, err := h.carts.AddItem(userID, variantID, quantity)
	if err != nil {
		return cartError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": cartItemPayload(item)})
}

type updateCartItemRequest struct {
	Quantity *int `json:"quantity"`
}

// UpdateCartItem overwrites a line's quantity; zero or below removes it.
func (h *CartHandler) UpdateCartItem(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "cart item not found")
	}

	var req updateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Quantity == nil {
		return fiber.NewError(fiber.StatusBadRequest, "quantity is required")
	}

	item, err := h.carts.UpdateItem(userID, itemID, *req.Quantity)
	if err != nil {
		return cartError(err)
	}

	if item == nil {
		return c.JSON(fiber.Map{"success": true, "message": "item removed from cart"})
	}

	return c.JSON(fiber.Map{"success": true, "data": cartItemPayload(*item)})
}

// RemoveCartItem deletes a line from the caller's cart.
func (h *CartHandler) RemoveCartItem(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "cart item not found")
	}

	if err := h.carts.RemoveItem(userID, itemID); err != nil {
		return cartError(err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "item removed from cart"})
}

// cartError maps service sentinels to HTTP statuses.
func cartError(err error) error {
	switch {
	case errors.Is(err, services.ErrVariantNotFound):
		return fiber.NewError(fiber.StatusNotFound, "product variant not found")
	case errors.Is(err, services.ErrCartItemNotFound):
		return fiber.NewError(fiber.StatusNotFound, "cart item not found")
	case errors.Is(err, services.ErrInsufficientInventory):
		return fiber.NewError(fiber.StatusBadRequest, "insufficient inventory")
	case errors.Is(err, services.ErrInvalidQuantity):
		return fiber.NewError(fiber.StatusBadRequest, "quantity must be greater than zero")
	case errors.Is(err, services.ErrEmptyCart):
		return fiber.NewError(fiber.StatusBadRequest, "cart is empty")
	}
	return err
}
