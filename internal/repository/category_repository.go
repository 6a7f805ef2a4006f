package repository

import (
	"time"

	"blogify/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	FindByID(id uint) (*models.Category, error)
	FindByName(name string) (*models.Category, error)
	FindAll(isActive *bool, offset, limit int) ([]models.Category, int64, error)
	Update(id uint, data map[string]interface{}) (*models.Category, error)
	Delete(id uint) (bool, error)
	Deactivate(id uint) (*models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	category.UUID = uuid.New()
	return r.db.Create(category).Error
}

func (r *categoryRepository) FindByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindByName(name string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("name = ? AND is_deleted = ?", name, false).First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// FindAll runs the page select and the count as two independent queries, so
// the total may lag the page under concurrent writes.
func (r *categoryRepository) FindAll(isActive *bool, offset, limit int) ([]models.Category, int64, error) {
	query := r.db.Model(&models.Category{}).Where("is_deleted = ?", false)
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}

	var categories []models.Category
	if err := query.Session(&gorm.Session{}).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&categories).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return categories, total, nil
}

func (r *categoryRepository) Update(id uint, data map[string]interface{}) (*models.Category, error) {
	if err := r.db.Model(&models.Category{}).Where("id = ?", id).Updates(data).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete soft-deletes the category. The returned bool reports whether a live
// row existed.
func (r *categoryRepository) Delete(id uint) (bool, error) {
	now := time.Now().UTC()
	result := r.db.Model(&models.Category{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"is_deleted": true,
			"deleted_at": now,
			"is_active":  false,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Deactivate clears is_active without touching the soft-delete flags.
func (r *categoryRepository) Deactivate(id uint) (*models.Category, error) {
	category, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(category).Update("is_active", false).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}
