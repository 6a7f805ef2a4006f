package repository

import (
	"blogify/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReactionRepository interface {
	ListTypes() ([]models.ReactionType, error)
	FindTypeByID(id uint) (*models.ReactionType, error)

	SetBlogReaction(blogID, userID, typeID uint) (*models.BlogReaction, error)
	RemoveBlogReaction(blogID, userID uint) (bool, error)
	CountBlogReactions(blogID uint) ([]models.ReactionCount, error)

	SetCommentReaction(commentID, userID, typeID uint) (*models.CommentReaction, error)
	RemoveCommentReaction(commentID, userID uint) (bool, error)
	CountCommentReactions(commentID uint) ([]models.ReactionCount, error)
}

type reactionRepository struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

func (r *reactionRepository) ListTypes() ([]models.ReactionType, error) {
	var types []models.ReactionType
	err := r.db.Where("is_deleted = ?", false).
		Order("sort_order ASC").
		Find(&types).Error
	return types, err
}

func (r *reactionRepository) FindTypeByID(id uint) (*models.ReactionType, error) {
	var rt models.ReactionType
	err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&rt).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

// SetBlogReaction inserts the caller's reaction or switches its type if one
// already exists. The unique index on (blog_id, user_id) arbitrates races.
func (r *reactionRepository) SetBlogReaction(blogID, userID, typeID uint) (*models.BlogReaction, error) {
	reaction := &models.BlogReaction{
		BlogID:         blogID,
		UserID:         userID,
		ReactionTypeID: typeID,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "blog_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"reaction_type_id": typeID}),
	}).Create(reaction).Error
	if err != nil {
		return nil, err
	}

	var saved models.BlogReaction
	if err := r.db.Where("blog_id = ? AND user_id = ?", blogID, userID).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *reactionRepository) RemoveBlogReaction(blogID, userID uint) (bool, error) {
	result := r.db.Where("blog_id = ? AND user_id = ?", blogID, userID).
		Delete(&models.BlogReaction{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *reactionRepository) CountBlogReactions(blogID uint) ([]models.ReactionCount, error) {
	var counts []models.ReactionCount
	err := r.db.Model(&models.BlogReaction{}).
		Select("blog_reactions.reaction_type_id, reaction_types.name, reaction_types.emoji, COUNT(*) AS count").
		Joins("JOIN reaction_types ON reaction_types.id = blog_reactions.reaction_type_id").
		Where("blog_reactions.blog_id = ?", blogID).
		Group("blog_reactions.reaction_type_id, reaction_types.name, reaction_types.emoji, reaction_types.sort_order").
		Order("reaction_types.sort_order ASC").
		Scan(&counts).Error
	return counts, err
}

func (r *reactionRepository) SetCommentReaction(commentID, userID, typeID uint) (*models.CommentReaction, error) {
	reaction := &models.CommentReaction{
		CommentID:      commentID,
		UserID:         userID,
		ReactionTypeID: typeID,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "comment_id"}, {Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"reactions_type_id": typeID}),
	}).Create(reaction).Error
	if err != nil {
		return nil, err
	}

	var saved models.CommentReaction
	if err := r.db.Where("comment_id = ? AND user_id = ?", commentID, userID).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *reactionRepository) RemoveCommentReaction(commentID, userID uint) (bool, error) {
	result := r.db.Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&models.CommentReaction{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *reactionRepository) CountCommentReactions(commentID uint) ([]models.ReactionCount, error) {
	var counts []models.ReactionCount
	err := r.db.Model(&models.CommentReaction{}).
		Select("comment_reactions.reactions_type_id AS reaction_type_id, reaction_types.name, reaction_types.emoji, COUNT(*) AS count").
		Joins("JOIN reaction_types ON reaction_types.id = comment_reactions.reactions_type_id").
		Where("comment_reactions.comment_id = ?", commentID).
		Group("comment_reactions.reactions_type_id, reaction_types.name, reaction_types.emoji, reaction_types.sort_order").
		Order("reaction_types.sort_order ASC").
		Scan(&counts).Error
	return counts, err
}
