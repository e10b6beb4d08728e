package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/storefront/internal/middleware"
	"github.com/example/storefront/internal/models"
)

// ReviewHandler manages product reviews.
type ReviewHandler struct {
	db *gorm.DB
}

// NewReviewHandler constructs ReviewHandler.
func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

// ListProductReviews returns all reviews for a product, newest first.
func (h *ReviewHandler) ListProductReviews(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("product_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "product not found")
	}

	var reviews []models.ProductReview
	if err := h.db.Preload("User").
		Where("product_id = ?", productID).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return err
	}

	payload := make([]fiber.Map, 0, len(reviews))
	for _, r := range reviews {
		payload = append(payload, reviewPayload(r))
	}

	return c.JSON(fiber.Map{"success": true, "data": payload})
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

// CreateReview posts a review; a user gets at most one per product, a second
// attempt surfaces as a conflict.
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
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

	var req reviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Rating < 1 || req.Rating > 5 {
		return fiber.NewError(fiber.StatusBadRequest, "rating must be between 1 and 5")
	}

	review := models.ProductReview{
		ProductID: productID,
		UserID:    userID,
		Rating:    req.Rating,
		Title:     req.Title,
		Comment:   req.Comment,
	}

	if err := h.db.Create(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "you have already reviewed this product")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": reviewPayload(review)})
}

// GetReview returns one of the caller's own reviews.
func (h *ReviewHandler) GetReview(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "review not found")
	}

	var review models.ProductReview
	if err := h.db.Preload("User").
		First(&review, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "review not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": reviewPayload(review)})
}

// UpdateReview edits the caller's own review.
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "review not found")
	}

	var review models.ProductReview
	if err := h.db.First(&review, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "review not found")
		}
		return err
	}

	var req reviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Rating != 0 {
		if req.Rating < 1 || req.Rating > 5 {
			return fiber.NewError(fiber.StatusBadRequest, "rating must be between 1 and 5")
		}
		updates["rating"] = req.Rating
	}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Comment != "" {
		updates["comment"] = req.Comment
	}
	if len(updates) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "no fields to update")
	}

	if err := h.db.Model(&review).Updates(updates).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": reviewPayload(review)})
}

// DeleteReview removes the caller's own review.
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	userID, ok := middleware.GetCurrentUserID(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "review not found")
	}

	result := h.db.Delete(&models.ProductReview{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "review not found")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
