package repository

import (
	"strings"

	"blogify/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByUsernameOrEmail(identifier string) (*models.User, error)
	ExistsByUsername(username string) (bool, error)
	ExistsByEmail(email string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsernameOrEmail resolves a token subject. Soft-deleted accounts are
// returned too; callers decide whether a deleted account is acceptable.
func (r *userRepository) FindByUsernameOrEmail(identifier string) (*models.User, error) {
	column := "username"
	if strings.Contains(identifier, "@") {
		column = "email"
	}
	var user models.User
	if err := r.db.Where(column+" = ?", identifier).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByUsername counts soft-deleted accounts too; a deleted account still
// reserves its username.
func (r *userRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
