package models

import "github.com/google/uuid"

type Product struct {
	BaseModel
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CategoryID  uuid.UUID `gorm:"type:uuid;index;not null" json:"category_id"`
	Category    *Category `json:"category,omitempty"`
	BasePrice   float64   `json:"base_price"`
	IsActive    bool      `json:"is_active"`

	Images   []ProductImage   `gorm:"constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Variants []ProductVariant `gorm:"constraint:OnDelete:CASCADE" json:"variants,omitempty"`
	Reviews  []ProductReview  `gorm:"constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

// ProductImage is a gallery entry. Multiple images may be flagged primary;
// readers order by is_primary and take the first match.
type ProductImage struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	URL       string    `json:"url"`
	AltText   string    `json:"alt_text"`
	IsPrimary bool      `json:"is_primary"`
}

// ProductVariant is the purchasable SKU-level unit of a product.
type ProductVariant struct {
	BaseModel
	ProductID      uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	Product        *Product  `json:"product,omitempty"`
	Name           string    `json:"name"`
	SKU            string    `gorm:"uniqueIndex" json:"sku"`
	PriceModifier  float64   `json:"price_modifier"`
	InventoryCount int       `json:"inventory_count"`
	IsActive       bool      `json:"is_active"`
}

// FinalPrice is the product base price plus the variant modifier.
// The Product association must be loaded.
func (v *ProductVariant) FinalPrice() float64 {
	if v.Product == nil {
		return v.PriceModifier
	}
	return v.Product.BasePrice + v.PriceModifier
}

// InStock reports whether any inventory remains.
func (v *ProductVariant) InStock() bool {
	return v.InventoryCount > 0
}
