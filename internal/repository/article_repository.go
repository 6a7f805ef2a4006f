package repository

import (
	"blogify/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArticleFilter narrows article listings; nil fields are ignored.
type ArticleFilter struct {
	CategoryID  *uint
	AuthorID    *uint
	IsPublished *bool
	IsActive    *bool
}

type ArticleRepository interface {
	Create(article *models.Article) error
	FindByID(id uint) (*models.Article, error)
	FindByIDWithRelations(id uint) (*models.Article, error)
	FindAll(filter ArticleFilter, offset, limit int) ([]models.Article, int64, error)
	FindAllWithRelations(filter ArticleFilter, offset, limit int) ([]models.Article, int64, error)
	Update(id uint, data map[string]interface{}) (*models.Article, error)
	Delete(id uint) (bool, error)
	CategoryExists(id uint) (bool, error)
	AuthorExists(id uint) (bool, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (f ArticleFilter) apply(query *gorm.DB) *gorm.DB {
	if f.CategoryID != nil {
		query = query.Where("category_id = ?", *f.CategoryID)
	}
	if f.AuthorID != nil {
		query = query.Where("author_id = ?", *f.AuthorID)
	}
	if f.IsPublished != nil {
		query = query.Where("is_published = ?", *f.IsPublished)
	}
	if f.IsActive != nil {
		query = query.Where("is_active = ?", *f.IsActive)
	}
	return query
}

func (r *articleRepository) Create(article *models.Article) error {
	article.UUID = uuid.New()
	return r.db.Create(article).Error
}

func (r *articleRepository) FindByID(id uint) (*models.Article, error) {
	var article models.Article
	if err := r.db.First(&article, id).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) FindByIDWithRelations(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Category").Preload("Author").First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) FindAll(filter ArticleFilter, offset, limit int) ([]models.Article, int64, error) {
	return r.findAll(filter, offset, limit, false)
}

func (r *articleRepository) FindAllWithRelations(filter ArticleFilter, offset, limit int) ([]models.Article, int64, error) {
	return r.findAll(filter, offset, limit, true)
}

func (r *articleRepository) findAll(filter ArticleFilter, offset, limit int, withRelations bool) ([]models.Article, int64, error) {
	query := filter.apply(r.db.Model(&models.Article{}))

	page := query.Session(&gorm.Session{}).
		Order("created_at DESC").
		Offset(offset).Limit(limit)
	if withRelations {
		page = page.Preload("Category").Preload("Author")
	}

	var articles []models.Article
	if err := page.Find(&articles).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

func (r *articleRepository) Update(id uint, data map[string]interface{}) (*models.Article, error) {
	if err := r.db.Model(&models.Article{}).Where("id = ?", id).Updates(data).Error; err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

// Delete removes the row permanently. Articles are the one entity family
// with hard deletes.
func (r *articleRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Article{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CategoryExists only counts live, active categories as valid references.
func (r *articleRepository) CategoryExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).
		Where("id = ? AND is_active = ? AND is_deleted = ?", id, true, false).
		Count(&count).Error
	return count > 0, err
}

func (r *articleRepository) AuthorExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
