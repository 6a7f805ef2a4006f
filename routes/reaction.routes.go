package routes

import (
	"blogify/internal/controllers"
	"blogify/internal/middleware"
	"blogify/internal/repository"

	"github.com/gin-gonic/gin"
)

func RegisterReactionRoutes(router *gin.Engine, reactionController *controllers.ReactionController, userRepo repository.UserRepository) {
	router.GET("/reactions/types", reactionController.GetReactionTypes)

	blogReactions := router.Group("/blogs")
	{
		blogReactions.GET("/:id/reactions", reactionController.GetBlogReactions)
		blogReactions.PUT("/:id/reactions", middleware.AuthMiddleware(userRepo), reactionController.SetBlogReaction)
		blogReactions.DELETE("/:id/reactions", middleware.AuthMiddleware(userRepo), reactionController.RemoveBlogReaction)
	}
	commentReactions := router.Group("/comments")
	{
		commentReactions.GET("/:id/reactions", reactionController.GetCommentReactions)
		commentReactions.PUT("/:id/reactions", middleware.AuthMiddleware(userRepo), reactionController.SetCommentReaction)
		commentReactions.DELETE("/:id/reactions", middleware.AuthMiddleware(userRepo), reactionController.RemoveCommentReaction)
	}
}
