package controllers

import (
	"net/http"
	"strconv"

	"blogify/internal/middleware"
	"blogify/internal/models"
	"blogify/internal/repository"
	"blogify/internal/utils"

	"github.com/gin-gonic/gin"
)

type ArticleController struct {
	repo repository.ArticleRepository
}

func NewArticleController(repo repository.ArticleRepository) *ArticleController {
	return &ArticleController{repo: repo}
}

// CreateArticle godoc
// @Summary Create a new article
// @Description Create an article owned by the authenticated user; the category must exist and be active
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param article body models.CreateArticleRequest true "Article data"
// @Success 201 {object} map[string]interface{} "Article created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data or dangling reference"
// @Failure 401 {object} map[string]interface{} "Missing or invalid credentials"
// @Router /articles [post]
func (ac *ArticleController) CreateArticle(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		unauthorized(c)
		return
	}

	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if ok := ac.referenceChecks(c, req.CategoryID, user.ID); !ok {
		return
	}

	article := models.Article{
		Title:       req.Title,
		Content:     req.Content,
		Summary:     req.Summary,
		CategoryID:  req.CategoryID,
		AuthorID:    user.ID,
		IsPublished: req.IsPublished,
		IsActive:    true,
	}
	if req.IsActive != nil {
		article.IsActive = *req.IsActive
	}

	if err := ac.repo.Create(&article); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Article created successfully",
		"data":    article,
	})
}

// GetArticles godoc
// @Summary List articles
// @Description Retrieve articles with pagination and filters, newest first
// @Tags articles
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size (1-100)"
// @Param category_id query int false "Filter by category"
// @Param author_id query int false "Filter by author"
// @Param is_published query bool false "Filter by published status"
// @Param is_active query bool false "Filter by active status"
// @Success 200 {object} models.ArticleListResponse
// @Failure 400 {object} map[string]interface{} "Invalid pagination or filter parameters"
// @Router /articles [get]
func (ac *ArticleController) GetArticles(c *gin.Context) {
	ac.listArticles(c, ac.repo.FindAll)
}

// GetArticlesDetailed godoc
// @Summary List articles with relations
// @Description Same as the plain listing but with category and author embedded
// @Tags articles
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size (1-100)"
// @Param category_id query int false "Filter by category"
// @Param author_id query int false "Filter by author"
// @Param is_published query bool false "Filter by published status"
// @Param is_active query bool false "Filter by active status"
// @Success 200 {object} models.ArticleListResponse
// @Failure 400 {object} map[string]interface{} "Invalid pagination or filter parameters"
// @Router /articles/detailed [get]
func (ac *ArticleController) GetArticlesDetailed(c *gin.Context) {
	ac.listArticles(c, ac.repo.FindAllWithRelations)
}

func (ac *ArticleController) listArticles(
	c *gin.Context,
	find func(repository.ArticleFilter, int, int) ([]models.Article, int64, error),
) {
	page, size, err := utils.ParsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid pagination parameters",
			"error":   err.Error(),
		})
		return
	}

	filter, ok := articleFilter(c)
	if !ok {
		return
	}

	articles, total, err := find(filter, utils.Offset(page, size), size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve articles",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ArticleListResponse{
		Articles: articles,
		Total:    total,
		Page:     page,
		Size:     size,
		Pages:    utils.TotalPages(total, size),
	})
}

// GetArticleByID godoc
// @Summary Get an article by ID
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid article ID"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /articles/{id} [get]
func (ac *ArticleController) GetArticleByID(c *gin.Context) {
	ac.getArticle(c, ac.repo.FindByID)
}

// GetArticleDetailed godoc
// @Summary Get an article by ID with relations
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} map[string]interface{} "Article retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid article ID"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /articles/{id}/detailed [get]
func (ac *ArticleController) GetArticleDetailed(c *gin.Context) {
	ac.getArticle(c, ac.repo.FindByIDWithRelations)
}

func (ac *ArticleController) getArticle(c *gin.Context, find func(uint) (*models.Article, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	article, err := find(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article retrieved successfully",
		"data":    article,
	})
}

// UpdateArticle godoc
// @Summary Update an article
// @Description Partial update; only the author or a superuser may update
// @Tags articles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Param article body models.UpdateArticleRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Article updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data or dangling reference"
// @Failure 403 {object} map[string]interface{} "Caller does not own the article"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /articles/{id} [put]
func (ac *ArticleController) UpdateArticle(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		unauthorized(c)
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	article, err := ac.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
		return
	}

	if article.AuthorID != user.ID && !user.IsSuperuser {
		forbidden(c)
		return
	}

	if req.CategoryID != nil {
		exists, err := ac.repo.CategoryExists(*req.CategoryID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to update article",
				"error":   err.Error(),
			})
			return
		}
		if !exists {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Category not found or inactive",
				"error":   "category_id does not reference an active category",
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
	if req.Summary != nil {
		data["summary"] = *req.Summary
	}
	if req.CategoryID != nil {
		data["category_id"] = *req.CategoryID
	}
	if req.IsPublished != nil {
		data["is_published"] = *req.IsPublished
	}
	if req.IsActive != nil {
		data["is_active"] = *req.IsActive
	}

	updated, err := ac.repo.Update(id, data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update article",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Article updated successfully",
		"data":    updated,
	})
}

// DeleteArticle godoc
// @Summary Delete an article
// @Description Hard delete; only the author or a superuser may delete
// @Tags articles
// @Security BearerAuth
// @Param id path int true "Article ID"
// @Success 204 "Article deleted"
// @Failure 400 {object} map[string]interface{} "Invalid article ID"
// @Failure 403 {object} map[string]interface{} "Caller does not own the article"
// @Failure 404 {object} map[string]interface{} "Article not found"
// @Router /articles/{id} [delete]
func (ac *ArticleController) DeleteArticle(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		unauthorized(c)
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	article, err := ac.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
		return
	}

	if article.AuthorID != user.ID && !user.IsSuperuser {
		forbidden(c)
		return
	}

	existed, err := ac.repo.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete article",
			"error":   err.Error(),
		})
		return
	}
	if !existed {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Article not found",
			"error":   "No article exists with the provided ID",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// referenceChecks rejects creates whose category or author reference dangles.
func (ac *ArticleController) referenceChecks(c *gin.Context, categoryID, authorID uint) bool {
	categoryOK, err := ac.repo.CategoryExists(categoryID)
	if err == nil && categoryOK {
		var authorOK bool
		authorOK, err = ac.repo.AuthorExists(authorID)
		if err == nil && !authorOK {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Author not found",
				"error":   "The authenticated user no longer exists",
			})
			return false
		}
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create article",
			"error":   err.Error(),
		})
		return false
	}
	if !categoryOK {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Category not found or inactive",
			"error":   "category_id does not reference an active category",
		})
		return false
	}
	return true
}

func articleFilter(c *gin.Context) (repository.ArticleFilter, bool) {
	var filter repository.ArticleFilter

	for name, target := range map[string]**uint{
		"category_id": &filter.CategoryID,
		"author_id":   &filter.AuthorID,
	} {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		value, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid query parameter",
				"error":   name + " must be a valid positive integer",
			})
			return filter, false
		}
		id := uint(value)
		*target = &id
	}

	isPublished, ok := boolQuery(c, "is_published")
	if !ok {
		return filter, false
	}
	filter.IsPublished = isPublished

	isActive, ok := boolQuery(c, "is_active")
	if !ok {
		return filter, false
	}
	filter.IsActive = isActive

	return filter, true
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"status":  "error",
		"message": "Authentication required",
		"error":   "Could not validate credentials",
	})
}

func forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{
		"status":  "error",
		"message": "Not enough permissions",
		"error":   "Only the owner or a superuser may perform this action",
	})
}
