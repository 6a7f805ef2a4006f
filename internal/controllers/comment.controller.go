package controllers

import (
	"net/http"

	"blogify/internal/middleware"
	"blogify/internal/models"
	"blogify/internal/repository"
	"blogify/internal/utils"

	"github.com/gin-gonic/gin"
)

type CommentController struct {
	repo  repository.CommentRepository
	blogs repository.BlogRepository
}

func NewCommentController(repo repository.CommentRepository, blogs repository.BlogRepository) *CommentController {
	return &CommentController{repo: repo, blogs: blogs}
}

// CreateComment godoc
// @Summary Comment on a blog
// @Description Create a top-level comment or a reply; a reply's parent must belong to the same blog
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Param comment body models.CreateCommentRequest true "Comment data"
// @Success 201 {object} map[string]interface{} "Comment created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data or parent reference"
// @Failure 404 {object} map[string]interface{} "Blog not found"
// @Router /blogs/{id}/comments [post]
func (cc *CommentController) CreateComment(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		unauthorized(c)
		return
	}

	blogID, ok := pathID(c)
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := cc.blogs.FindByID(blogID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Blog not found",
			"error":   "No blog exists with the provided ID",
		})
		return
	}

	if req.ParentID != nil {
		parent, err := cc.repo.FindByID(*req.ParentID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Parent comment not found",
				"error":   "parent_id does not reference an existing comment",
			})
			return
		}
		if parent.BlogID != blogID {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Parent comment belongs to a different blog",
				"error":   "Replies must stay on the blog of their parent",
			})
			return
		}
	}

	comment := models.BlogComment{
		Content:  req.Content,
		BlogID:   blogID,
		UserID:   user.ID,
		ParentID: req.ParentID,
	}

	if err := cc.repo.Create(&comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create comment",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Comment created successfully",
		"data":    comment,
	})
}

// GetComments godoc
// @Summary List comments of a blog
// @Description Retrieve top-level comments with their replies, oldest first
// @Tags comments
// @Produce json
// @Param id path int true "Blog ID"
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size (1-100)"
// @Success 200 {object} models.CommentListResponse
// @Failure 400 {object} map[string]interface{} "Invalid pagination parameters"
// @Failure 404 {object} map[string]interface{} "Blog not found"
// @Router /blogs/{id}/comments [get]
func (cc *CommentController) GetComments(c *gin.Context) {
	blogID, ok := pathID(c)
	if !ok {
		return
	}

	page, size, err := utils.ParsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid pagination parameters",
			"error":   err.Error(),
		})
		return
	}

	if _, err := cc.blogs.FindByID(blogID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Blog not found",
			"error":   "No blog exists with the provided ID",
		})
		return
	}

	comments, total, err := cc.repo.FindByBlog(blogID, utils.Offset(page, size), size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve comments",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.CommentListResponse{
		Comments: comments,
		Total:    total,
		Page:     page,
		Size:     size,
		Pages:    utils.TotalPages(total, size),
	})
}

// GetReplies godoc
// @Summary List replies of a comment
// @Description Retrieve the direct replies of a comment, oldest first
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} map[string]interface{} "Replies retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid comment ID"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Router /comments/{id}/replies [get]
func (cc *CommentController) GetReplies(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := cc.repo.FindByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Comment not found",
			"error":   "No comment exists with the provided ID",
		})
		return
	}

	replies, err := cc.repo.FindReplies(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve replies",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Replies retrieved successfully",
		"data":    replies,
	})
}

// UpdateComment godoc
// @Summary Edit a comment
// @Description Rewrite the content and mark the comment edited; author or superuser only
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Param comment body models.UpdateCommentRequest true "New content"
// @Success 200 {object} map[string]interface{} "Comment updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 403 {object} map[string]interface{} "Caller does not own the comment"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Router /comments/{id} [put]
func (cc *CommentController) UpdateComment(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		unauthorized(c)
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	comment, err := cc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Comment not found",
			"error":   "No comment exists with the provided ID",
		})
		return
	}

	if comment.UserID != user.ID && !user.IsSuperuser {
		forbidden(c)
		return
	}

	updated, err := cc.repo.Update(id, req.Content)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update comment",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Comment updated successfully",
		"data":    updated,
	})
}

// DeleteComment godoc
// @Summary Delete a comment
// @Description Removes the comment, its reply subtree and their reactions; author or superuser only
// @Tags comments
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 204 "Comment deleted"
// @Failure 400 {object} map[string]interface{} "Invalid comment ID"
// @Failure 403 {object} map[string]interface{} "Caller does not own the comment"
// @Failure 404 {object} map[string]interface{} "Comment not found"
// @Router /comments/{id} [delete]
func (cc *CommentController) DeleteComment(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		unauthorized(c)
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	comment, err := cc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Comment not found",
			"error":   "No comment exists with the provided ID",
		})
		return
	}

	if comment.UserID != user.ID && !user.IsSuperuser {
		forbidden(c)
		return
	}

	if err := cc.repo.Delete(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete comment",
			"error":   err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
