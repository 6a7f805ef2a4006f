package database

import (
	"log"

	"blogify/internal/models"

	"gorm.io/gorm"
)

func MigrateDatabase() error {
	log.Println("Running database migrations...")

	err := DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Article{},
		&models.Blog{},
		&models.BlogComment{},
		&models.ReactionType{},
		&models.BlogReaction{},
		&models.CommentReaction{},
		&models.BlogView{},
	)

	if err != nil {
		log.Printf("Error during migration: %v", err)
		return err
	}

	if err := CreateLiveUniqueIndexes(DB); err != nil {
		log.Printf("Error creating unique indexes: %v", err)
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// CreateLiveUniqueIndexes enforces name and title uniqueness among live rows
// only. A partial index keeps the constraint off soft-deleted rows, so any
// number of deleted rows may share a name while at most one live row holds it.
func CreateLiveUniqueIndexes(db *gorm.DB) error {
	statements := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_category_name_live ON categories (name) WHERE is_deleted = false`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_blog_title_live ON blogs (title) WHERE is_deleted = false`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
