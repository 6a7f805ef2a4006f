package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"blogify/internal/models"
	"blogify/internal/repository"
	"blogify/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct {
	repo repository.CategoryRepository
}

func NewCategoryController(repo repository.CategoryRepository) *CategoryController {
	return &CategoryController{repo: repo}
}

// CreateCategory godoc
// @Summary Create a new category
// @Description Create a category; names must be unique among live categories
// @Tags categories
// @Accept json
// @Produce json
// @Param category body models.CreateCategoryRequest true "Category data"
// @Success 201 {object} map[string]interface{} "Category created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data or duplicate name"
// @Router /categories [post]
func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	// Pre-check for a friendlier error; the unique index is the backstop.
	if _, err := cc.repo.FindByName(req.Name); err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Category with this name already exists",
			"error":   "Duplicate category name",
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create category",
			"error":   err.Error(),
		})
		return
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := cc.repo.Create(&category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Category with this name already exists",
				"error":   "Duplicate category name",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create category",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Category created successfully",
		"data":    category,
	})
}

// GetCategories godoc
// @Summary List categories
// @Description Retrieve categories with pagination and an optional is_active filter
// @Tags categories
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size (1-100)"
// @Param is_active query bool false "Filter by active status"
// @Success 200 {object} models.CategoryListResponse
// @Failure 400 {object} map[string]interface{} "Invalid pagination parameters"
// @Router /categories [get]
func (cc *CategoryController) GetCategories(c *gin.Context) {
	page, size, err := utils.ParsePagination(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid pagination parameters",
			"error":   err.Error(),
		})
		return
	}

	isActive, ok := boolQuery(c, "is_active")
	if !ok {
		return
	}

	categories, total, err := cc.repo.FindAll(isActive, utils.Offset(page, size), size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve categories",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.CategoryListResponse{
		Categories: categories,
		Total:      total,
		Page:       page,
		Size:       size,
		Pages:      utils.TotalPages(total, size),
	})
}

// GetCategoryByID godoc
// @Summary Get a category by ID
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]interface{} "Category retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid category ID"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Router /categories/{id} [get]
func (cc *CategoryController) GetCategoryByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := cc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Category not found",
			"error":   "No category exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Category retrieved successfully",
		"data":    category,
	})
}

// UpdateCategory godoc
// @Summary Update a category
// @Description Apply a partial update; omitted fields are left untouched
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param category body models.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Category updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data or duplicate name"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Router /categories/{id} [put]
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	category, err := cc.repo.FindByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Category not found",
			"error":   "No category exists with the provided ID",
		})
		return
	}

	if req.Name != nil && *req.Name != category.Name {
		if _, err := cc.repo.FindByName(*req.Name); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Category with this name already exists",
				"error":   "Duplicate category name",
			})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to update category",
				"error":   err.Error(),
			})
			return
		}
	}

	data := map[string]interface{}{}
	if req.Name != nil {
		data["name"] = *req.Name
	}
	if req.Description != nil {
		data["description"] = *req.Description
	}
	if req.IsActive != nil {
		data["is_active"] = *req.IsActive
	}

	updated, err := cc.repo.Update(id, data)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Category with this name already exists",
				"error":   "Duplicate category name",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update category",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Category updated successfully",
		"data":    updated,
	})
}

// DeleteCategory godoc
// @Summary Delete a category
// @Description Soft-delete: the row is flagged and stamped, never removed
// @Tags categories
// @Param id path int true "Category ID"
// @Success 204 "Category deleted"
// @Failure 400 {object} map[string]interface{} "Invalid category ID"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Router /categories/{id} [delete]
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	existed, err := cc.repo.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete category",
			"error":   err.Error(),
		})
		return
	}
	if !existed {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Category not found",
			"error":   "No category exists with the provided ID",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeactivateCategory godoc
// @Summary Deactivate a category
// @Description Clears is_active without soft-deleting the row
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]interface{} "Category deactivated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid category ID"
// @Failure 404 {object} map[string]interface{} "Category not found"
// @Router /categories/{id}/deactivate [patch]
func (cc *CategoryController) DeactivateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := cc.repo.Deactivate(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Category not found",
			"error":   "No category exists with the provided ID",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Category deactivated successfully",
		"data":    category,
	})
}

// pathID parses the :id path parameter, answering 400 itself on failure.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid ID",
			"error":   "ID must be a valid positive integer",
		})
		return 0, false
	}
	return uint(id), true
}

// boolQuery parses an optional boolean query parameter, answering 400 itself
// on malformed input.
func boolQuery(c *gin.Context, name string) (*bool, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid query parameter",
			"error":   name + " must be true or false",
		})
		return nil, false
	}
	return &value, true
}
