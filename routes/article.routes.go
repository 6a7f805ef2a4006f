package routes

import (
	"blogify/internal/controllers"
	"blogify/internal/middleware"
	"blogify/internal/repository"

	"github.com/gin-gonic/gin"
)

func RegisterArticleRoutes(router *gin.Engine, articleController *controllers.ArticleController, userRepo repository.UserRepository) {
	articleRoutesPublic := router.Group("/articles")
	{
		articleRoutesPublic.GET("", articleController.GetArticles)
		articleRoutesPublic.GET("/detailed", articleController.GetArticlesDetailed)
		articleRoutesPublic.GET("/:id", articleController.GetArticleByID)
		articleRoutesPublic.GET("/:id/detailed", articleController.GetArticleDetailed)
	}
	articleRoutesPrivate := router.Group("/articles")
	articleRoutesPrivate.Use(middleware.AuthMiddleware(userRepo))
	{
		articleRoutesPrivate.POST("", articleController.CreateArticle)
		articleRoutesPrivate.PUT("/:id", articleController.UpdateArticle)
		articleRoutesPrivate.DELETE("/:id", articleController.DeleteArticle)
	}
}
