package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/raqamhq/raqam/internal/container"
	"github.com/raqamhq/raqam/internal/handlers"
	"github.com/raqamhq/raqam/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "raqam-api",
			})
		})

		// public routes
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", handlers.SignUp(container.AuthService))
			auth.POST("/signin", handlers.SignIn(container.AuthService))
			auth.POST("/signout", handlers.SignOut())
			auth.POST("/reset-password", handlers.ResetPassword(container.AuthService))
			auth.POST("/resend-verification", handlers.ResendVerification(container.AuthService))
		}

		// browsing is open: the marketplace is readable without an account
		v1.GET("/listings", handlers.ListListings(container.LocalStore))
		v1.GET("/listings/mine", handlers.MyListings(container.LocalStore))
		v1.GET("/listings/:id", handlers.GetListing(container.LocalStore))

		v1.GET("/favorites", handlers.GetFavorites(container.LocalStore))
		v1.POST("/favorites/:id/toggle", handlers.ToggleFavorite(container.LocalStore))

		v1.GET("/profile", handlers.GetProfile(container.LocalStore))

		v1.GET("/preferences", handlers.GetAppPreferences(container.LocalStore))
		v1.PUT("/preferences/:key", handlers.SetAppPreference(container.LocalStore))
		v1.GET("/theme", handlers.GetThemePreference(container.LocalStore))
		v1.PUT("/theme", handlers.SetThemePreference(container.LocalStore))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.AuthService, container.Logger))
	{
		protected.POST("/listings", handlers.CreateListing(container.LocalStore))
		protected.DELETE("/listings/:id", handlers.DeleteListing(container.LocalStore))

		protected.PATCH("/profile", handlers.UpdateProfile(container.LocalStore))
		protected.POST("/profile/avatar", handlers.UploadAvatar(container.LocalStore, container.Cloudinary))

		protected.POST("/reset", handlers.ResetData(container.LocalStore))
	}

	return r
}
