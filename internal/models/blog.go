package models

import (
	"time"

	"github.com/google/uuid"
)

// Blog is soft-deleted only: Delete flips IsDeleted and stamps DeletedAt,
// and every default lookup excludes flagged rows.
type Blog struct {
	ID              uint       `gorm:"primaryKey" json:"id" example:"1"`
	UUID            uuid.UUID  `gorm:"type:uuid;uniqueIndex" json:"uuid" swaggerignore:"true"`
	Title           string     `gorm:"size:255;index" json:"title" example:"My first blog"`
	Content         string     `gorm:"type:text" json:"content"`
	CreatedByUserID uint       `gorm:"index" json:"created_by_user_id" example:"1"`
	CreatedAt       time.Time  `gorm:"index" json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt       time.Time  `json:"updated_at" example:"2023-01-01T00:00:00Z"`
	IsDeleted       bool       `gorm:"default:false;index" json:"is_deleted"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
}

// CreateBlogRequest defines the request body for creating a blog
type CreateBlogRequest struct {
	Title   string `json:"title" binding:"required,min=2,max=255"`
	Content string `json:"content" binding:"required,min=1,max=50000"`
}

// UpdateBlogRequest defines the request body for partially updating a blog
type UpdateBlogRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=2,max=255"`
	Content *string `json:"content" binding:"omitempty,min=1,max=50000"`
}

// BlogListResponse is the paginated list envelope for blogs
type BlogListResponse struct {
	Data  []Blog `json:"data"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
	Pages int    `json:"pages"`
}
