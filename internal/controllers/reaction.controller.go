package controllers

import (
	"net/http"

	"blogify/internal/middleware"
	"blogify/internal/models"
	"blogify/internal/repository"

	"github.com/gin-gonic/gin"
)

type ReactionController struct {
	repo     repository.ReactionRepository
	blogs    repository.BlogRepository
	comments repository.CommentRepository
}

func NewReactionController(
	repo repository.ReactionRepository,
	blogs repository.BlogRepository,
	comments repository.CommentRepository,
) *ReactionController {
	return &ReactionController{repo: repo, blogs: blogs, comments: comments}
}

// GetReactionTypes godoc
// @Summary List reaction types
// @Tags reactions
// @Produce json
// @Success 200 {object} map[string]interface{} "Reaction types retrieved successfully"
// @Router /reactions/types [get]
func (rc *ReactionController) GetReactionTypes(c *gin.Context) {
	types, err := rc.repo.ListTypes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve reaction types",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Reaction types retrieved successfully",
		"data":    types,
	})
}

// SetBlogReaction godoc
// @Summary React to a blog
// @Description Sets the caller's reaction, replacing any previous one; one reaction per user per blog
// @Tags reactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Param reaction body models.SetReactionRequest true "Reaction type"
// @Success 200 {object} map[string]interface{} "Reaction saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data or reaction type"
// @Failure 404 {object} map[string]interface{} "Blog not found"
// @Router /blogs/{id}/reactions [put]
func (rc *ReactionController) SetBlogReaction(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		unauthorized(c)
		return
	}

	blogID, ok := pathID(c)
	if !ok {
		return
	}

	req, ok := rc.bindReaction(c)
	if !ok {
		return
	}

	if _, err := rc.blogs.FindByID(blogID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Blog not found",
			"error":   "No blog exists with the provided ID",
		})
		return
	}

	reaction, err := rc.repo.SetBlogReaction(blogID, user.ID, req.ReactionTypeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save reaction",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Reaction saved successfully",
		"data":    reaction,
	})
}

// RemoveBlogReaction godoc
// @Summary Remove the caller's blog reaction
// @Tags reactions
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Success 204 "Reaction removed"
// @Failure 400 {object} map[string]interface{} "Invalid blog ID"
// @Failure 404 {object} map[string]interface{} "No reaction to remove"
// @Router /blogs/{id}/reactions [delete]
func (rc *ReactionController) RemoveBlogReaction(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		unauthorized(c)
		return
	}

	blogID, ok := pathID(c)
	if !ok {
		return
	}

	existed, err := rc.repo.RemoveBlogReaction(blogID, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to remove reaction",
			"error":   err.Error(),
		})
		return
	}
	if !existed {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Reaction not found",
			"error":   "The caller has no reaction on this blog",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetBlogReactions godoc
// @Summary Count blog reactions per type
// @Tags reactions
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {object} map[string]interface{} "Reaction counts retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid blog ID"
// @Failure 404 {object} map[string]interface{} "Blog not found"
// @Router /blogs/{id}/reactions [get]
func (rc *ReactionController) GetBlogReactions(c *gin.Context) {
	blogID, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := rc.blogs.FindByID(blogID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Blog not found",
			"error":   "No blog exists with the provided ID",
		})
		return
	}

	counts, err := rc.repo.CountBlogReactions(blogID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to count reactions",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Reaction counts retrieved successfully",
		"data":    counts,
	})
}

// SetCommentReaction godoc
// @Summary React to a comment
// @Description Sets the caller's reaction, replacing any previous one; one reaction per user per comment
// @Tags reactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Param reaction body models.SetReactionRequest true "Reaction type"
// @Success 200 {object} map[string]interface{} "Reaction saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data or reaction type"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Router /comments/{id}/reactions [put]
func (rc *ReactionController) SetCommentReaction(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		unauthorized(c)
		return
	}

	commentID, ok := pathID(c)
	if !ok {
		return
	}

	req, ok := rc.bindReaction(c)
	if !ok {
		return
	}

	if _, err := rc.comments.FindByID(commentID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Comment not found",
			"error":   "No comment exists with the provided ID",
		})
		return
	}

	reaction, err := rc.repo.SetCommentReaction(commentID, user.ID, req.ReactionTypeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save reaction",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Reaction saved successfully",
		"data":    reaction,
	})
}

// RemoveCommentReaction godoc
// @Summary Remove the caller's comment reaction
// @Tags reactions
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 204 "Reaction removed"
// @Failure 400 {object} map[string]interface{} "Invalid comment ID"
// @Failure 404 {object} map[string]interface{} "No reaction to remove"
// @Router /comments/{id}/reactions [delete]
func (rc *ReactionController) RemoveCommentReaction(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		unauthorized(c)
		return
	}

	commentID, ok := pathID(c)
	if !ok {
		return
	}

	existed, err := rc.repo.RemoveCommentReaction(commentID, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to remove reaction",
			"error":   err.Error(),
		})
		return
	}
	if !existed {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Reaction not found",
			"error":   "The caller has no reaction on this comment",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCommentReactions godoc
// @Summary Count comment reactions per type
// @Tags reactions
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]interface{} "Reaction counts retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid comment ID"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Router /comments/{id}/reactions [get]
func (rc *ReactionController) GetCommentReactions(c *gin.Context) {
	commentID, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := rc.comments.FindByID(commentID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Comment not found",
			"error":   "No comment exists with the provided ID",
		})
		return
	}

	counts, err := rc.repo.CountCommentReactions(commentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to count reactions",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Reaction counts retrieved successfully",
		"data":    counts,
	})
}

// bindReaction validates the body and that the reaction type exists.
func (rc *ReactionController) bindReaction(c *gin.Context) (models.SetReactionRequest, bool) {
	var req models.SetReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return req, false
	}

	if _, err := rc.repo.FindTypeByID(req.ReactionTypeID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Unknown reaction type",
			"error":   "reaction_type_id does not reference a reaction type",
		})
		return req, false
	}

	return req, true
}
