package models

import "github.com/google/uuid"

// Cart holds a user's pending line items. One cart per user, created lazily
// on first access and kept (emptied) after checkout.
type Cart struct {
	BaseModel
	UserID uuid.UUID  `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	Items  []CartItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// TotalItems sums the quantities across all loaded lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums quantity times variant final price across loaded lines.
// Derived at read time, never stored.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for i := range c.Items {
		total += c.Items[i].TotalPrice()
	}
	return total
}

// CartItem is one (cart, variant) line. The pair is unique; repeated adds
// merge into the existing line.
type CartItem struct {
	BaseModel
	CartID    uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_cart_items_cart_variant" json:"cart_id"`
	VariantID uuid.UUID       `gorm:"type:uuid;uniqueIndex:idx_cart_items_cart_variant" json:"variant_id"`
	Variant   *ProductVariant `json:"variant,omitempty"`
	Quantity  int             `json:"quantity"`
}

// TotalPrice is quantity times the variant's current final price.
func (i *CartItem) TotalPrice() float64 {
	if i.Variant == nil {
		return 0
	}
	return i.Variant.FinalPrice() * float64(i.Quantity)
}
