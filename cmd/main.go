package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"blogify/database"
	"blogify/docs"
	"blogify/internal/controllers"
	"blogify/internal/logger"
	"blogify/internal/middleware"
	"blogify/internal/repository"
	"blogify/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Blogify API
// @version 1.0
// @description CRUD backend for articles, categories, blogs, comments and reactions.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on the environment")
	}

	logger.Init()
	defer logger.Log.Sync()

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Blogify API"
	docs.SwaggerInfo.Description = "CRUD backend for articles, categories, blogs, comments and reactions."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	categoryRepo := repository.NewCategoryRepository(database.DB)
	articleRepo := repository.NewArticleRepository(database.DB)
	blogRepo := repository.NewBlogRepository(database.DB)
	commentRepo := repository.NewCommentRepository(database.DB)
	reactionRepo := repository.NewReactionRepository(database.DB)
	blogViewRepo := repository.NewBlogViewRepository(database.DB)

	// Initialize controllers
	userController := controllers.NewUserController(userRepo)
	categoryController := controllers.NewCategoryController(categoryRepo)
	articleController := controllers.NewArticleController(articleRepo)
	blogController := controllers.NewBlogController(blogRepo, blogViewRepo)
	commentController := controllers.NewCommentController(commentRepo, blogRepo)
	reactionController := controllers.NewReactionController(reactionRepo, blogRepo, commentRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery(), middleware.CORS())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Blogify API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterUserRoutes(router, userController, userRepo)
	routes.RegisterCategoryRoutes(router, categoryController)
	routes.RegisterArticleRoutes(router, articleController, userRepo)
	routes.RegisterBlogRoutes(router, blogController, userRepo)
	routes.RegisterCommentRoutes(router, commentController, userRepo)
	routes.RegisterReactionRoutes(router, reactionController, userRepo)
	routes.RegisterSwaggerRoutes(router)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)

		c.JSON(200, gin.H{
			"database_health": err == nil && result == 1,
		})
	})

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)
	log.Printf("Database Health: http://localhost:%s/debug/database", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
