package routes

import (
	"github.com/AbdelrahmanAbudif/DevConnector/internal/container"
	"github.com/AbdelrahmanAbudif/DevConnector/internal/handlers"
	"github.com/AbdelrahmanAbudif/DevConnector/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "x-auth-token", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	authRequired := middleware.AuthMiddleware(container.TokenService, container.Logger)

	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "devconnector-api",
			})
		})
	}

	userRoutes := api.Group("/users")
	{
		userRoutes.POST("", handlers.ValidateBody(handlers.RegisterChecks()...), handlers.RegisterUser(container.UserService))
		userRoutes.POST("/login", handlers.ValidateBody(handlers.LoginChecks()...), handlers.LoginUser(container.UserService))
		userRoutes.POST("/avatar", authRequired, handlers.UploadAvatar(container.UserService))
	}

	profileRoutes := api.Group("/profile")
	{
		profileRoutes.GET("", handlers.ListProfiles(container.ProfileService))
		profileRoutes.GET("/user/:user_id", handlers.GetProfileByUserID(container.ProfileService))
		profileRoutes.GET("/me", authRequired, handlers.GetMyProfile(container.ProfileService))
		profileRoutes.POST("", authRequired, handlers.ValidateBody(handlers.ProfileChecks()...), handlers.UpsertProfile(container.ProfileService))
		profileRoutes.DELETE("", authRequired, handlers.DeleteAccount(container.ProfileService))
	}

	return r
}
