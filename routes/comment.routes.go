package routes

import (
	"blogify/internal/controllers"
	"blogify/internal/middleware"
	"blogify/internal/repository"

	"github.com/gin-gonic/gin"
)

func RegisterCommentRoutes(router *gin.Engine, commentController *controllers.CommentController, userRepo repository.UserRepository) {
	blogComments := router.Group("/blogs")
	{
		blogComments.GET("/:id/comments", middleware.OptionalAuthMiddleware(userRepo), commentController.GetComments)
		blogComments.POST("/:id/comments", middleware.AuthMiddleware(userRepo), commentController.CreateComment)
	}
	router.GET("/comments/:id/replies", commentController.GetReplies)

	commentRoutes := router.Group("/comments")
	commentRoutes.Use(middleware.AuthMiddleware(userRepo))
	{
		commentRoutes.PUT("/:id", commentController.UpdateComment)
		commentRoutes.DELETE("/:id", commentController.DeleteComment)
	}
}
