package models

import "time"

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Coupon grants a percentage or fixed discount within a validity window.
// UsedCount is reported but not incremented by any request path; MaxUses
// only takes effect if the counter is bumped out-of-band.
type Coupon struct {
	BaseModel
	Code           string    `gorm:"uniqueIndex" json:"code"`
	Description    string    `json:"description"`
	DiscountType   string    `gorm:"type:varchar(10)" json:"discount_type"`
	DiscountValue  float64   `json:"discount_value"`
	MinOrderAmount float64   `json:"min_order_amount"`
	MaxUses        *int      `json:"max_uses"`
	UsedCount      int       `json:"used_count"`
	IsActive       bool      `json:"is_active"`
	ValidFrom      time.Time `json:"valid_from"`
	ValidUntil     time.Time `json:"valid_until"`
}

// IsValid reports whether the coupon can be applied at the given instant:
// active, inside [ValidFrom, ValidUntil], and not usage-exhausted.
func (c *Coupon) IsValid(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if now.Before(c.ValidFrom) || now.After(c.ValidUntil) {
		return false
	}
	if c.MaxUses != nil && c.UsedCount >= *c.MaxUses {
		return false
	}
	return true
}
