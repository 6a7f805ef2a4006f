package repository

import (
	"time"

	"blogify/internal/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *models.BlogComment) error
	FindByID(id uint) (*models.BlogComment, error)
	FindByBlog(blogID uint, offset, limit int) ([]models.BlogComment, int64, error)
	FindReplies(parentID uint) ([]models.BlogComment, error)
	Update(id uint, content string) (*models.BlogComment, error)
	Delete(id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.BlogComment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) FindByID(id uint) (*models.BlogComment, error) {
	var comment models.BlogComment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByBlog pages the top-level comments of a blog oldest first, with one
// level of replies preloaded. Total counts top-level comments only.
func (r *commentRepository) FindByBlog(blogID uint, offset, limit int) ([]models.BlogComment, int64, error) {
	query := r.db.Model(&models.BlogComment{}).
		Where("blog_id = ? AND parent_id IS NULL", blogID)

	var comments []models.BlogComment
	if err := query.Session(&gorm.Session{}).
		Preload("Replies", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order("created_at ASC").
		Offset(offset).Limit(limit).
		Find(&comments).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

func (r *commentRepository) FindReplies(parentID uint) ([]models.BlogComment, error) {
	var replies []models.BlogComment
	err := r.db.Where("parent_id = ?", parentID).
		Order("created_at ASC").
		Find(&replies).Error
	return replies, err
}

// Update rewrites the content and marks the comment edited.
func (r *commentRepository) Update(id uint, content string) (*models.BlogComment, error) {
	now := time.Now().UTC()
	if err := r.db.Model(&models.BlogComment{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"content":   content,
			"is_edited": true,
			"edited_at": now,
		}).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete removes a comment together with its whole reply subtree and every
// reaction attached to any removed comment. Descendants are collected level
// by level through the parent_id index rather than held as in-memory links.
func (r *commentRepository) Delete(id uint) error {
	ids := []uint{id}
	frontier := []uint{id}
	for len(frontier) > 0 {
		var children []uint
		if err := r.db.Model(&models.BlogComment{}).
			Where("parent_id IN ?", frontier).
			Pluck("id", &children).Error; err != nil {
			return err
		}
		ids = append(ids, children...)
		frontier = children
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id IN ?", ids).
			Delete(&models.CommentReaction{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&models.BlogComment{}).Error
	})
}
