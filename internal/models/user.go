package models

import "time"

type User struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Username    string     `gorm:"size:50;uniqueIndex" json:"username"`
	Email       string     `gorm:"size:255;uniqueIndex" json:"email"`
	Password    string     `gorm:"column:hashed_password" json:"-"`
	IsSuperuser bool       `gorm:"default:false" json:"is_superuser"`
	IsDeleted   bool       `gorm:"default:false;index" json:"-"`
	DeletedAt   *time.Time `json:"-"`
	TierID      *uint      `json:"tier_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// RegisterUserRequest defines the request body for registering a user
type RegisterUserRequest struct {
	Username string `json:"username" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest accepts either a username or an email as the identifier
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

// RefreshRequest defines the request body for exchanging a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse is returned by login and refresh
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type" example:"bearer"`
}
