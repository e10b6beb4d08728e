package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated customer or administrator.
type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex" json:"username"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	PasswordHash string `json:"-"`
	IsAdmin      bool   `json:"is_admin"`

	Profile *UserProfile    `json:"profile,omitempty"`
	Orders  []Order         `json:"orders,omitempty"`
	Reviews []ProductReview `json:"reviews,omitempty"`
}

// UserProfile holds contact and address details, one per user.
type UserProfile struct {
	BaseModel
	UserID      uuid.UUID  `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	PhoneNumber string     `json:"phone_number"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	State       string     `json:"state"`
	ZipCode     string     `json:"zip_code"`
	Country     string     `json:"country"`
	AvatarURL   string     `json:"avatar_url"`
}
