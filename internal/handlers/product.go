package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/storefront/internal/models"
	"github.com/example/storefront/internal/utils"
)

// ProductHandler manages products and their variants.
type ProductHandler struct {
	db *gorm.DB
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// sortColumns whitelists orderings accepted from the client.
var sortColumns = map[string]string{
	"name":        "name",
	"-name":       "name desc",
	"base_price":  "base_price",
	"-base_price": "base_price desc",
	"created_at":  "created_at",
	"-created_at": "created_at desc",
}

// ListProducts returns paginated active products with optional filters:
// category, search (name/description), min_price, max_price, sort.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.Product{}).Where("is_active = ?", true)

	if v := c.Query("category"); v != "" {
		if id, err := uuid.Parse(v); err == nil {
			query = query.Where("category_id = ?", id)
		}
	}

	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	if v := c.Query("min_price"); v != "" {
		if minPrice, err := strconv.ParseFloat(v, 64); err == nil {
			query = query.Where("base_price >= ?", minPrice)
		}
	}

	if v := c.Query("max_price"); v != "" {
		if maxPrice, err := strconv.ParseFloat(v, 64); err == nil {
			query = query.Where("base_price <= ?", maxPrice)
		}
	}

	order := "created_at desc"
	if col, ok := sortColumns[c.Query("sort")]; ok {
		order = col
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var products []models.Product
	if err := query.Preload("Category").Preload("Images").Preload("Variants").
		Order(order).
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&products).Error; err != nil {
		return err
	}

	payload := make([]fiber.Map, 0, len(products))
	for i := range products {
		payload = append(payload, productListPayload(&products[i]))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    payload,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetProduct returns the full detail payload including images, variants,
// reviews and the average rating.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	var product models.Product
	if err := h.db.Preload("Category").Preload("Images").Preload("Variants").
		Preload("Reviews.User").
		First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": productDetailPayload(&product)})
}

type productRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CategoryID  string   `json:"category_id"`
	BasePrice   *float64 `json:"base_price"`
	IsActive    *bool    `json:"is_active"`
}

// CreateProduct persists a new product.
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" || req.CategoryID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name and category_id are required")
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid category_id")
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  categoryID,
		IsActive:    true,
	}
	if req.BasePrice != nil {
		if *req.BasePrice < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "base_price must not be negative")
		}
		product.BasePrice = *req.BasePrice
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := h.db.Create(&product).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": product})
}

// UpdateProduct updates product fields.
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid category_id")
		}
		updates["category_id"] = categoryID
	}
	if req.BasePrice != nil {
		if *req.BasePrice < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "base_price must not be negative")
		}
		updates["base_price"] = *req.BasePrice
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}

	if err := h.db.Model(&product).Updates(updates).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

// DeleteProduct removes a product; images, variants and reviews cascade.
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	if err := h.db.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Variants

// ListVariants returns a product's active variants.
func (h *ProductHandler) ListVariants(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("product_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	pg := utils.ParsePagination(c)
	query := h.db.Model(&models.ProductVariant{}).
		Where("product_id = ? AND is_active = ?", productID, true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return err
	}

	var variants []models.ProductVariant
	if err := query.Preload("Product").Order("name").
		Limit(pg.Limit).Offset(pg.Offset).
		Find(&variants).Error; err != nil {
		return err
	}

	payload := make([]fiber.Map, 0, len(variants))
	for _, v := range variants {
		payload = append(payload, variantPayload(v))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    payload,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetVariant returns a single variant.
func (h *ProductHandler) GetVariant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "variant not found")
	}

	var variant models.ProductVariant
	if err := h.db.Preload("Product").First(&variant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "variant not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": variantPayload(variant)})
}

type variantRequest struct {
	Name           string   `json:"name"`
	SKU            string   `json:"sku"`
	PriceModifier  *float64 `json:"price_modifier"`
	InventoryCount *int     `json:"inventory_count"`
	IsActive       *bool    `json:"is_active"`
}

// CreateVariant persists a new variant under a product.
func (h *ProductHandler) CreateVariant(c *fiber.Ctx) error {
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

	var req variantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.SKU == "" {
		return fiber.NewError(fiber.StatusBadRequest, "sku is required")
	}

	variant := models.ProductVariant{
		ProductID: productID,
		Name:      req.Name,
		SKU:       req.SKU,
		IsActive:  true,
	}
	if req.PriceModifier != nil {
		variant.PriceModifier = *req.PriceModifier
	}
	if req.InventoryCount != nil {
		if *req.InventoryCount < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "inventory_count must not be negative")
		}
		variant.InventoryCount = *req.InventoryCount
	}
	if req.IsActive != nil {
		variant.IsActive = *req.IsActive
	}

	if err := h.db.Create(&variant).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "sku already exists")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": variant})
}

// UpdateVariant updates variant fields.
func (h *ProductHandler) UpdateVariant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "variant not found")
	}

	var variant models.ProductVariant
	if err := h.db.First(&variant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "variant not found")
		}
		return err
	}

	var req variantRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.SKU != "" {
		updates["sku"] = req.SKU
	}
	if req.PriceModifier != nil {
		updates["price_modifier"] = *req.PriceModifier
	}
	if req.InventoryCount != nil {
		if *req.InventoryCount < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "inventory_count must not be negative")
		}
		updates["inventory_count"] = *req.InventoryCount
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}

	if err := h.db.Model(&variant).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "sku already exists")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": variant})
}

// DeleteVariant removes a variant.
func (h *ProductHandler) DeleteVariant(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "variant not found")
	}

	if err := h.db.Delete(&models.ProductVariant{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
