package models

import (
	"time"

	"github.com/google/uuid"
)

// Article is hard-deleted, so it carries no soft-delete bookkeeping.
type Article struct {
	ID          uint      `gorm:"primaryKey" json:"id" example:"1"`
	UUID        uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"uuid" swaggerignore:"true"`
	Title       string    `gorm:"size:200;index" json:"title" example:"Sample Article Title"`
	Content     string    `gorm:"type:text" json:"content"`
	Summary     *string   `gorm:"size:500" json:"summary,omitempty"`
	CategoryID  uint      `gorm:"index" json:"category_id" example:"1"`
	AuthorID    uint      `gorm:"index" json:"author_id" example:"1"`
	IsPublished bool      `gorm:"default:false;index" json:"is_published"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt   time.Time `json:"updated_at" example:"2023-01-01T00:00:00Z"`

	// Populated only by the detailed lookups; nil otherwise so the plain
	// responses stay flat.
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Author   *User     `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// CreateArticleRequest defines the request body for creating an article
type CreateArticleRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=200"`
	Content     string  `json:"content" binding:"required,min=1"`
	Summary     *string `json:"summary" binding:"omitempty,max=500"`
	CategoryID  uint    `json:"category_id" binding:"required"`
	IsPublished bool    `json:"is_published"`
	IsActive    *bool   `json:"is_active"`
}

// UpdateArticleRequest defines the request body for partially updating an article
type UpdateArticleRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Content     *string `json:"content" binding:"omitempty,min=1"`
	Summary     *string `json:"summary" binding:"omitempty,max=500"`
	CategoryID  *uint   `json:"category_id"`
	IsPublished *bool   `json:"is_published"`
	IsActive    *bool   `json:"is_active"`
}

// ArticleListResponse is the paginated list envelope for articles
type ArticleListResponse struct {
	Articles []Article `json:"articles"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	Size     int       `json:"size"`
	Pages    int       `json:"pages"`
}
