package models

import "github.com/google/uuid"

// Category forms a tree via the optional parent reference. Deleting a
// category cascades to its children and products.
type Category struct {
	BaseModel
	Name        string     `gorm:"uniqueIndex" json:"name"`
	Description string     `json:"description"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index" json:"parent_id"`
	Parent      *Category  `json:"parent,omitempty"`
	IsActive    bool       `json:"is_active"`

	Children []Category `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"children,omitempty"`
	Products []Product  `gorm:"constraint:OnDelete:CASCADE" json:"products,omitempty"`
}
