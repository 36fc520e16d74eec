package models

import "time"

// User represents a patient account. Admin accounts live in the same
// table with role "admin".
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	ProfileImg   string    `gorm:"size:255" json:"profile_img,omitempty"`
	Role         string    `gorm:"type:enum('patient','admin');default:'patient'" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// RefreshToken represents the refresh_tokens table. A token belongs to
// either a hospital or a user account, discriminated by AccountRole.
type RefreshToken struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	AccountID   uint      `gorm:"not null;index" json:"account_id"`
	AccountRole string    `gorm:"size:20;not null" json:"account_role"`
	TokenHash   string    `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt   time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt   time.Time `json:"created_at"`
	Revoked     bool      `gorm:"default:false" json:"revoked"`
}

// TableName specifies the table name for RefreshToken model
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
