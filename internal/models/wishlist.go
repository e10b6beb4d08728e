package models

import "github.com/google/uuid"

// Wishlist is created lazily, one per user.
type Wishlist struct {
	BaseModel
	UserID uuid.UUID      `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	Items  []WishlistItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// WishlistItem is unique per (wishlist, product); a repeated add is a no-op.
type WishlistItem struct {
	BaseModel
	WishlistID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_wishlist_items_wishlist_product" json:"wishlist_id"`
	ProductID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_wishlist_items_wishlist_product" json:"product_id"`
	Product    *Product  `json:"product,omitempty"`
}
