package models

import "time"

// BlogComment is a node in a per-blog comment tree. ParentID is nil for
// top-level comments; a parent must belong to the same blog as its replies.
type BlogComment struct {
	ID        uint       `gorm:"primaryKey" json:"id" example:"1"`
	Content   string     `gorm:"type:text" json:"content"`
	BlogID    uint       `gorm:"index" json:"blog_id" example:"1"`
	UserID    uint       `gorm:"index" json:"user_id" example:"1"`
	ParentID  *uint      `gorm:"index" json:"parent_id,omitempty"`
	IsEdited  bool       `gorm:"default:false" json:"is_edited"`
	EditedAt  *time.Time `json:"edited_at,omitempty"`
	CreatedAt time.Time  `gorm:"index" json:"created_at" example:"2023-01-01T00:00:00Z"`
	UpdatedAt time.Time  `json:"updated_at" example:"2023-01-01T00:00:00Z"`

	Replies []BlogComment `gorm:"foreignKey:ParentID" json:"replies,omitempty"`
}

// CreateCommentRequest defines the request body for commenting on a blog
type CreateCommentRequest struct {
	Content  string `json:"content" binding:"required,min=1,max=2000"`
	ParentID *uint  `json:"parent_id"`
}

// UpdateCommentRequest defines the request body for editing a comment
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// CommentListResponse is the paginated list envelope for top-level comments
type CommentListResponse struct {
	Comments []BlogComment `json:"comments"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	Size     int           `json:"size"`
	Pages    int           `json:"pages"`
}
