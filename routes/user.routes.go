package routes

import (
	"blogify/internal/controllers"
	"blogify/internal/middleware"
	"blogify/internal/repository"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController, userRepo repository.UserRepository) {
	userRoutesPublic := router.Group("/users")
	{
		userRoutesPublic.POST("/register", userController.Register)
		userRoutesPublic.POST("/login", userController.Login)
		userRoutesPublic.POST("/refresh", userController.Refresh)
	}
	userRoutesPrivate := router.Group("/users")
	userRoutesPrivate.Use(middleware.AuthMiddleware(userRepo))
	{
		userRoutesPrivate.GET("/me", userController.GetCurrentUser)
	}
}
