package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/example/storefront/internal/models"
)

func seedCoupon(t *testing.T, db *gorm.DB, code, discountType string, value, minOrder float64, mutate func(*models.Coupon)) models.Coupon {
	t.Helper()

	now := time.Now()
	coupon := models.Coupon{
		Code:           code,
		DiscountType:   discountType,
		DiscountValue:  value,
		MinOrderAmount: minOrder,
		IsActive:       true,
		ValidFrom:      now.Add(-time.Hour),
		ValidUntil:     now.Add(24 * time.Hour),
	}
	if mutate != nil {
		mutate(&coupon)
	}
	require.NoError(t, db.Create(&coupon).Error)
	return coupon
}

func TestValidatePercentageCoupon(t *testing.T) {
	db := newTestDB(t)
	svc := NewCouponService(db)
	seedCoupon(t, db, "WELCOME10", models.DiscountTypePercentage, 10, 50, nil)

	result, err := svc.Validate("WELCOME10", 100)
	require.NoError(t, err)
	require.True(t, result.Valid)
	require.Equal(t, 10.0, result.DiscountAmount)
	require.Equal(t, models.DiscountTypePercentage, result.DiscountType)
	require.Equal(t, 10.0, result.DiscountValue)
}

func TestValidateBelowMinimum(t *testing.T) {
	db := newTestDB(t)
	svc := NewCouponService(db)
	seedCoupon(t, db, "WELCOME10", models.DiscountTypePercentage, 10, 50, nil)

	result, err := svc.Validate("WELCOME10", 40)
	require.NoError(t, err)
	require.False(t, result.Valid)
	require.Equal(t, "Coupon is not valid or minimum order amount not met", result.Reason)
}

func TestValidateUnknownCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewCouponService(db)

	result, err := svc.Validate("NOPE", 100)
	require.NoError(t, err)
	require.False(t, result.Valid)
	require.Equal(t, "Invalid coupon code", result.Reason)
}

func TestValidateExpiredCoupon(t *testing.T) {
	db := newTestDB(t)
	svc := NewCouponService(db)
	seedCoupon(t, db, "OLD", models.DiscountTypePercentage, 10, 0, func(c *models.Coupon) {
		c.ValidFrom = time.Now().Add(-48 * time.Hour)
		c.ValidUntil = time.Now().Add(-24 * time.Hour)
	})

	result, err := svc.Validate("OLD", 100)
	require.NoError(t, err)
	require.False(t, result.Valid)
}

func TestCreateInactiveCouponPersists(t *testing.T) {
	db := newTestDB(t)
	coupon := seedCoupon(t, db, "OFF", models.DiscountTypePercentage, 10, 0, func(c *models.Coupon) {
		c.IsActive = false
	})

	// The false flag must survive the insert as-is; a column default must not
	// overwrite it.
	var stored models.Coupon
	require.NoError(t, db.First(&stored, "id = ?", coupon.ID).Error)
	require.False(t, stored.IsActive)
}

func TestValidateInactiveCoupon(t *testing.T) {
	db := newTestDB(t)
	svc := NewCouponService(db)
	seedCoupon(t, db, "OFF", models.DiscountTypePercentage, 10, 0, func(c *models.Coupon) {
		c.IsActive = false
	})

	result, err := svc.Validate("OFF", 100)
	require.NoError(t, err)
	require.False(t, result.Valid)
}

func TestValidateExhaustedCoupon(t *testing.T) {
	db := newTestDB(t)
	svc := NewCouponService(db)
	maxUses := 5
	seedCoupon(t, db, "FULL", models.DiscountTypePercentage, 10, 0, func(c *models.Coupon) {
		c.MaxUses = &maxUses
		c.UsedCount = 5
	})

	result, err := svc.Validate("FULL", 100)
	require.NoError(t, err)
	require.False(t, result.Valid)
}

func TestValidateFixedCouponNotClamped(t *testing.T) {
	db := newTestDB(t)
	svc := NewCouponService(db)
	seedCoupon(t, db, "SAVE20", models.DiscountTypeFixed, 20, 0, nil)

	// A fixed discount larger than the order amount is reported as-is.
	result, err := svc.Validate("SAVE20", 15)
	require.NoError(t, err)
	require.True(t, result.Valid)
	require.Equal(t, 20.0, result.DiscountAmount)
}

func TestValidateHasNoSideEffects(t *testing.T) {
	db := newTestDB(t)
	svc := NewCouponService(db)
	coupon := seedCoupon(t, db, "WELCOME10", models.DiscountTypePercentage, 10, 0, nil)

	for i := 0; i < 3; i++ {
		_, err := svc.Validate("WELCOME10", 100)
		require.NoError(t, err)
	}

	var stored models.Coupon
	require.NoError(t, db.First(&stored, "id = ?", coupon.ID).Error)
	require.Equal(t, 0, stored.UsedCount)
}

func TestListValidFiltersWindowAndActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewCouponService(db)
	seedCoupon(t, db, "LIVE", models.DiscountTypePercentage, 10, 0, nil)
	seedCoupon(t, db, "DEAD", models.DiscountTypePercentage, 10, 0, func(c *models.Coupon) {
		c.ValidUntil = time.Now().Add(-time.Hour)
	})
	seedCoupon(t, db, "OFF", models.DiscountTypePercentage, 10, 0, func(c *models.Coupon) {
		c.IsActive = false
	})

	coupons, err := svc.ListValid(time.Now())
	require.NoError(t, err)
	require.Len(t, coupons, 1)
	require.Equal(t, "LIVE", coupons[0].Code)
}
