// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nousyukukangen-ringo/isibasigeru/config"
	"github.com/nousyukukangen-ringo/isibasigeru/controllers"
	"github.com/nousyukukangen-ringo/isibasigeru/middleware"
	"github.com/nousyukukangen-ringo/isibasigeru/services"
)

func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, storage *services.Storage, emailService *services.EmailService) {
	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	photoController := controllers.NewPhotoController(db, storage)
	postController := controllers.NewPostController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"success": true, "status": "healthy"})
	})

	// Stored images and the SPA page templates
	r.Static("/uploads", cfg.UploadDir)
	r.Static("/pages", cfg.PagesDir)

	api := r.Group("/api")

	// Auth routes (public, rate limited)
	limited := api.Group("/")
	limited.Use(middleware.RateLimit(30, 10))
	{
		limited.POST("/signup", authController.Signup)
		limited.POST("/login", authController.Login)
	}
	api.POST("/logout", authController.Logout)
	api.GET("/me", authController.Me)

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/all_posts", postController.AllPosts)
		protected.POST("/like", postController.Like)
		protected.POST("/comment", postController.Comment)

		sns := protected.Group("/sns")
		{
			sns.POST("/post", postController.Share)
			sns.POST("/delete", postController.Unshare)
		}

		photos := protected.Group("/photo")
		{
			photos.POST("/upload", photoController.Upload)
			photos.GET("/list", photoController.List)
			photos.DELETE("/:id", photoController.Delete)
		}
	}
}
