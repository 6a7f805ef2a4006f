package controllers

import (
	"errors"
	"net/http"

	"blogify/internal/middleware"
	"blogify/internal/models"
	"blogify/internal/repository"
	"blogify/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BlogController struct {
	repo  repository.BlogRepository
	views repository.BlogViewRepository
}

func NewBlogController(repo repository.BlogRepository, views repository.BlogViewRepository) *BlogController {
	return &BlogController{repo: repo, views: views}
}

// CreateBlog godoc
// @Summary Create a new blog
// @Description Create a blog owned by the authenticated user; titles must be unique among live blogs
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param blog body models.CreateBlogRequest true "Blog data"
// @Success 201 {object} map[string]interface{} "Blog created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data or duplicate title"
// @Failure 401 {object} map[string]interface{} "Missing or invalid credentials"
// @Router /blogs/create [post]
func (bc *BlogController) CreateBlog(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req models.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := bc.repo.FindByTitle(req.Title); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Blog with this title already exists",
			"error":   "Duplicate blog title",
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create blog",
			"error":   err.Error(),
		})
		return
	}

	blog := models.Blog{
		Title:           req.Title,
		Content:         req.Content,
		CreatedByUserID: user.ID,
	}

	if err := bc.repo.Create(&blog); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Blog with this title already exists",
				"error":   "Duplicate blog title",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create blog",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Blog created successfully",
		"data":    blog,
	})
}

// GetBlogByID godoc
// @Summary Get a blog by ID
// @Description Retrieve a live blog; the read is recorded in the view log
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Success 200 {object} map[string]interface{} "Blog retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid blog ID"
// @Failure 404 {object} map[string]interface{} "Blog not found"
// @Router /blogs/get/{id} [get]
func (bc *BlogController) GetBlogByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	blog, err := bc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Blog not found",
			"error":   "No blog exists with the provided ID",
		})
		return
	}

	view := models.BlogView{
		BlogID:    blog.ID,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		SessionID: c.GetHeader("X-Session-ID"),
	}
	if user, ok := middleware.CurrentUser(c); ok {
		view.UserID = &user.ID
	}
	// A failed view write must not break the read.
	_ = bc.views.Record(&view)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Blog retrieved successfully",
		"data":    blog,
	})
}

// GetAllBlogs godoc
// @Summary List blogs
// @Description Retrieve live blogs with pagination, oldest first
// @Tags blogs
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size (1-100)"
// @Success 200 {object} models.BlogListResponse
// @Failure 400 {object} map[string]interface{} "Invalid pagination parameters"
// @Router /blogs/get-all [get]
func (bc *BlogController) GetAllBlogs(c *gin.Context) {
	page, size, err := utils.ParsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid pagination parameters",
			"error":   err.Error(),
		})
		return
	}

	blogs, total, err := bc.repo.FindAll(utils.Offset(page, size), size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve blogs",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.BlogListResponse{
		Data:  blogs,
		Total: total,
		Page:  page,
		Size:  size,
		Pages: utils.TotalPages(total, size),
	})
}

// UpdateBlog godoc
// @Summary Update a blog
// @Description Partial update; only the owner or a superuser may update
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Param blog body models.UpdateBlogRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Blog updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data or duplicate title"
// @Failure 403 {object} map[string]interface{} "Caller does not own the blog"
// @Failure 404 {object} map[string]interface{} "Blog not found"
// @Router /blogs/update/{id} [put]
func (bc *BlogController) UpdateBlog(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		unauthorized(c)
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	blog, err := bc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Blog not found",
			"error":   "No blog exists with the provided ID",
		})
		return
	}

	if blog.CreatedByUserID != user.ID && !user.IsSuperuser {
		forbidden(c)
		return
	}

	if req.Title != nil && *req.Title != blog.Title {
		if _, err := bc.repo.FindByTitle(*req.Title); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Blog with this title already exists",
				"error":   "Duplicate blog title",
			})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to update blog",
				"error":   err.Error(),
			})
			return
		}
	}

	data := map[string]interface{}{}
	if req.Title != nil {
		data["title"] = *req.Title
	}
	if req.Content != nil {
		data["content"] = *req.Content
	}

	updated, err := bc.repo.Update(id, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update blog",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Blog updated successfully",
		"data":    updated,
	})
}

// DeleteBlog godoc
// @Summary Delete a blog
// @Description Soft delete; only the owner or a superuser may delete
// @Tags blogs
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Success 204 "Blog deleted"
// @Failure 400 {object} map[string]interface{} "Invalid blog ID"
// @Failure 403 {object} map[string]interface{} "Caller does not own the blog"
// @Failure 404 {object} map[string]interface{} "Blog not found"
// @Router /blogs/delete/{id} [delete]
func (bc *BlogController) DeleteBlog(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		unauthorized(c)
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	blog, err := bc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Blog not found",
			"error":   "No blog exists with the provided ID",
		})
		return
	}

	if blog.CreatedByUserID != user.ID && !user.IsSuperuser {
		forbidden(c)
		return
	}

	existed, err := bc.repo.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete blog",
			"error":   err.Error(),
		})
		return
	}
	if !existed {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Blog not found",
			"error":   "No blog exists with the provided ID",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetBlogViews godoc
// @Summary Count views of a blog
// @Tags blogs
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {object} map[string]interface{} "View count retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid blog ID"
// @Failure 404 {object} map[string]interface{} "Blog not found"
// @Router /blogs/{id}/views [get]
func (bc *BlogController) GetBlogViews(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if _, err := bc.repo.FindByID(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Blog not found",
			"error":   "No blog exists with the provided ID",
		})
		return
	}

	count, err := bc.views.CountByBlog(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to count views",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "View count retrieved successfully",
		"data":    gin.H{"blog_id": id, "views": count},
	})
}
