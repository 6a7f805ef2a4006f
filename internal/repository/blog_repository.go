package repository

import (
	"time"

	"blogify/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogRepository interface {
	Create(blog *models.Blog) error
	FindByID(id uint) (*models.Blog, error)
	FindByTitle(title string) (*models.Blog, error)
	FindAll(offset, limit int) ([]models.Blog, int64, error)
	Update(id uint, data map[string]interface{}) (*models.Blog, error)
	Delete(id uint) (bool, error)
}

type blogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

func (r *blogRepository) Create(blog *models.Blog) error {
	blog.UUID = uuid.New()
	return r.db.Create(blog).Error
}

// FindByID never returns a soft-deleted blog.
func (r *blogRepository) FindByID(id uint) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&blog).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindByTitle is the uniqueness pre-check; only live rows count.
func (r *blogRepository) FindByTitle(title string) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.Where("title = ? AND is_deleted = ?", title, false).First(&blog).Error
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// FindAll pages live blogs oldest first, with an independent count query.
func (r *blogRepository) FindAll(offset, limit int) ([]models.Blog, int64, error) {
	query := r.db.Model(&models.Blog{}).Where("is_deleted = ?", false)

	var blogs []models.Blog
	if err := query.Session(&gorm.Session{}).
		Order("created_at ASC").
		Offset(offset).Limit(limit).
		Find(&blogs).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

func (r *blogRepository) Update(id uint, data map[string]interface{}) (*models.Blog, error) {
	if err := r.db.Model(&models.Blog{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(data).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete soft-deletes; the row stays in place with its audit fields stamped.
func (r *blogRepository) Delete(id uint) (bool, error) {
	now := time.Now().UTC()
	result := r.db.Model(&models.Blog{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"deleted_at": now,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
