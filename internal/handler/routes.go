package handler

import (
	"net/http"

	"gamevault/backend/internal/auth"
	"gamevault/backend/internal/content"

	"github.com/gin-gonic/gin"
)

// RouteConfig carries what the middlewares need.
type RouteConfig struct {
	JWTSecret    string
	Guard        content.Guard
	LoginLimiter *auth.RateLimiter
}

// RegisterRoutes mounts the health check and the /api/v1 API on router.
func RegisterRoutes(router *gin.Engine, games *GameHandler, users *UserHandler, cfg RouteConfig) {
	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", users.RegisterUser)
			if cfg.LoginLimiter != nil {
				authRoutes.POST("/login", cfg.LoginLimiter.Middleware(), users.LoginUser)
			} else {
				authRoutes.POST("/login", users.LoginUser)
			}
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware(cfg.JWTSecret))
		{
			userRoutes.GET("/me", users.GetMe)
		}

		// Public catalog routes
		public := apiV1.Group("")
		public.Use(auth.OptionalAuthMiddleware(cfg.JWTSecret))
		{
			public.GET("/home", games.Home)
			public.GET("/games", games.ListGames)
			public.GET("/games/:slug", games.GetGameBySlug)
			public.GET("/daily-pick", games.DailyPick)
			public.GET("/daily-pick/stream", games.DailyPickStream)
			public.GET("/events", games.Events)
		}

		// Admin routes (protected by auth and admin check)
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(auth.AuthMiddleware(cfg.JWTSecret), auth.AdminMiddleware(cfg.Guard))
		{
			adminGameRoutes := adminRoutes.Group("/games")
			{
				adminGameRoutes.GET("", games.AdminListGames)
				adminGameRoutes.GET("/:id", games.AdminGetGame)
				adminGameRoutes.POST("", games.CreateGame)
				adminGameRoutes.PUT("/:id", games.UpdateGame)
				adminGameRoutes.DELETE("/:id", games.DeleteGame)
				adminGameRoutes.GET("/:id/review", games.AdminGetReview)
				adminGameRoutes.POST("/:id/review", games.CreateReview)
			}

			adminRoutes.PUT("/reviews/:id", games.UpdateReview)
		}
	}
}
