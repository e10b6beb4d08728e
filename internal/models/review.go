package models

import "github.com/google/uuid"

// ProductReview is limited to one per (product, user) pair.
type ProductReview struct {
	BaseModel
	ProductID          uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_product_user" json:"product_id"`
	UserID             uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_product_user" json:"user_id"`
	User               *User     `json:"user,omitempty"`
	Rating             int       `json:"rating"`
	Title              string    `json:"title"`
	Comment            string    `json:"comment"`
	IsVerifiedPurchase bool      `json:"is_verified_purchase"`
	HelpfulVotes       int       `json:"helpful_votes"`
}
