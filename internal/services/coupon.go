package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/example/storefront/internal/models"
)

// CouponService evaluates coupon codes against order amounts. Validation has
// no side effects: used_count is never incremented here.
type CouponService struct {
	db *gorm.DB
}

// NewCouponService constructs CouponService.
func NewCouponService(db *gorm.DB) *CouponService {
	return &CouponService{db: db}
}

// CouponValidation is the outcome of a validation request.
type CouponValidation struct {
	Valid          bool    `json:"valid"`
	DiscountAmount float64 `json:"discount_amount,omitempty"`
	DiscountType   string  `json:"discount_type,omitempty"`
	DiscountValue  float64 `json:"discount_value,omitempty"`
	Reason         string  `json:"error,omitempty"`
}

// Validate checks a code against an order amount. Percentage coupons discount
// a fraction of the amount; fixed coupons discount a flat value that may
// exceed the order amount (no clamping).
func (s *CouponService) Validate(code string, orderAmount float64) (CouponValidation, error) {
	var coupon models.Coupon
	if err := s.db.First(&coupon, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CouponValidation{Valid: false, Reason: "Invalid coupon code"}, nil
		}
		return CouponValidation{}, err
	}

	if !coupon.IsValid(time.Now()) || orderAmount < coupon.MinOrderAmount {
		return CouponValidation{
			Valid:  false,
			Reason: "Coupon is not valid or minimum order amount not met",
		}, nil
	}

	discount := coupon.DiscountValue
	if coupon.DiscountType == models.DiscountTypePercentage {
		discount = orderAmount * coupon.DiscountValue / 100
	}

	return CouponValidation{
		Valid:          true,
		DiscountAmount: discount,
		DiscountType:   coupon.DiscountType,
		DiscountValue:  coupon.DiscountValue,
	}, nil
}

// ListValid returns coupons that are active and inside their validity window.
func (s *CouponService) ListValid(now time.Time) ([]models.Coupon, error) {
	var coupons []models.Coupon
	err := s.db.Where("is_active = ? AND valid_from <= ? AND valid_until >= ?", true, now, now).
		Find(&coupons).Error
	return coupons, err
}
