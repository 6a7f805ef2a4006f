package routes

import (
	"blogify/internal/controllers"
	"blogify/internal/middleware"
	"blogify/internal/repository"

	"github.com/gin-gonic/gin"
)

func RegisterBlogRoutes(router *gin.Engine, blogController *controllers.BlogController, userRepo repository.UserRepository) {
	blogRoutesPublic := router.Group("/blogs")
	{
		blogRoutesPublic.GET("/get-all", blogController.GetAllBlogs)
		blogRoutesPublic.GET("/:id/views", blogController.GetBlogViews)
	}
	blogRoutesPrivate := router.Group("/blogs")
	blogRoutesPrivate.Use(middleware.AuthMiddleware(userRepo))
	{
		blogRoutesPrivate.POST("/create", blogController.CreateBlog)
		blogRoutesPrivate.GET("/get/:id", blogController.GetBlogByID)
		blogRoutesPrivate.PUT("/update/:id", blogController.UpdateBlog)
		blogRoutesPrivate.DELETE("/delete/:id", blogController.DeleteBlog)
	}
}
