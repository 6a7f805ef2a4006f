package routes

import (
	"blogify/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterCategoryRoutes(router *gin.Engine, categoryController *controllers.CategoryController) {
	categoryRoutes := router.Group("/categories")
	{
		categoryRoutes.POST("", categoryController.CreateCategory)
		categoryRoutes.GET("", categoryController.GetCategories)
		categoryRoutes.GET("/:id", categoryController.GetCategoryByID)
		categoryRoutes.PUT("/:id", categoryController.UpdateCategory)
		categoryRoutes.DELETE("/:id", categoryController.DeleteCategory)
		categoryRoutes.PATCH("/:id/deactivate", categoryController.DeactivateCategory)
	}
}
