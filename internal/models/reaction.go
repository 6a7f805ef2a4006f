package models

import "time"

// ReactionType is the catalog both reaction tables point at.
type ReactionType struct {
	ID          uint       `gorm:"primaryKey" json:"id" example:"1"`
	Name        string     `gorm:"size:50;uniqueIndex" json:"name" example:"like"`
	Emoji       string     `gorm:"size:10" json:"emoji" example:"👍"`
	DisplayName string     `gorm:"size:50" json:"display_name" example:"Like"`
	SortOrder   int        `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	IsDeleted   bool       `gorm:"default:false" json:"-"`
	DeletedAt   *time.Time `json:"-"`
}

// BlogReaction records one user's reaction to one blog. The composite unique
// index is the authoritative at-most-one-per-(blog,user) guarantee.
type BlogReaction struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	BlogID         uint      `gorm:"index;uniqueIndex:idx_blog_user_reaction" json:"blog_id"`
	UserID         uint      `gorm:"index;uniqueIndex:idx_blog_user_reaction" json:"user_id"`
	ReactionTypeID uint      `json:"reaction_type_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// CommentReaction records one user's reaction to one comment.
type CommentReaction struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CommentID uint `gorm:"index;uniqueIndex:idx_comment_user_reaction" json:"comment_id"`
	UserID    uint `gorm:"index;uniqueIndex:idx_comment_user_reaction" json:"user_id"`
	// Column name kept from the legacy schema.
	ReactionTypeID uint      `gorm:"column:reactions_type_id" json:"reaction_type_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// SetReactionRequest defines the request body for reacting to a blog or comment
type SetReactionRequest struct {
	ReactionTypeID uint `json:"reaction_type_id" binding:"required"`
}

// ReactionCount is one row of a per-type reaction tally
type ReactionCount struct {
	ReactionTypeID uint   `json:"reaction_type_id"`
	Name           string `json:"name"`
	Emoji          string `json:"emoji"`
	Count          int64  `json:"count"`
}
