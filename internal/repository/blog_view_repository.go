package repository

import (
	"time"

	"blogify/internal/models"

	"gorm.io/gorm"
)

type BlogViewRepository interface {
	Record(view *models.BlogView) error
	CountByBlog(blogID uint) (int64, error)
}

type blogViewRepository struct {
	db *gorm.DB
}

func NewBlogViewRepository(db *gorm.DB) BlogViewRepository {
	return &blogViewRepository{db: db}
}

// Record appends one view row; the log is never updated afterwards.
func (r *blogViewRepository) Record(view *models.BlogView) error {
	if view.ViewedAt.IsZero() {
		view.ViewedAt = time.Now().UTC()
	}
	return r.db.Create(view).Error
}

func (r *blogViewRepository) CountByBlog(blogID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.BlogView{}).Where("blog_id = ?", blogID).Count(&count).Error
	return count, err
}
