package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uint       `gorm:"primaryKey" json:"id" example:"1"`
	UUID        uuid.UUID  `gorm:"type:uuid;uniqueIndex" json:"uuid" swaggerignore:"true"`
	Name        string     `gorm:"size:100;index" json:"name" example:"Tech"`
	Description *string    `gorm:"size:500" json:"description,omitempty" example:"Technology articles"`
	IsActive    bool       `gorm:"default:true" json:"is_active" example:"true"`
	CreatedAt   time.Time  `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time  `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	// Name uniqueness is enforced among live rows only, via a partial
	// unique index created at migration time.
	IsDeleted bool       `gorm:"default:false;index" json:"-"`
	DeletedAt *time.Time `json:"-"`
}

// CreateCategoryRequest defines the request body for creating a category
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateCategoryRequest defines the request body for updating a category.
// Pointer fields distinguish "absent" from zero values so unset fields are
// left untouched.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}

// CategoryListResponse is the paginated list envelope for categories
type CategoryListResponse struct {
	Categories []Category `json:"categories"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	Size       int        `json:"size"`
	Pages      int        `json:"pages"`
}
