package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/storefront/internal/services"
)

// CouponHandler exposes coupon listing and validation.
type CouponHandler struct {
	db      *gorm.DB
	coupons *services.CouponService
}

// NewCouponHandler constructs CouponHandler.
func NewCouponHandler(db *gorm.DB) *CouponHandler {
	return &CouponHandler{db: db, coupons: services.NewCouponService(db)}
}

// ListCoupons returns coupons that are currently applicable.
func (h *CouponHandler) ListCoupons(c *fiber.Ctx) error {
	coupons, err := h.coupons.ListValid(time.Now())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": coupons})
}

type validateCouponRequest struct {
	Code        string   `json:"code"`
	OrderAmount *float64 `json:"order_amount"`
}

// ValidateCoupon evaluates a code against an order amount. Validation never
// consumes a use; the outcome is purely advisory.
func (h *CouponHandler) ValidateCoupon(c *fiber.Ctx) error {
	var req validateCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Code == "" || req.OrderAmount == nil {
		return fiber.NewError(fiber.StatusBadRequest, "code and order_amount are required")
	}

	result, err := h.coupons.Validate(req.Code, *req.OrderAmount)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
