package routes

import (
	"github.com/gin-gonic/gin"

	"vinyl-store/internal/api/handlers"
	"vinyl-store/internal/api/middleware"
	"vinyl-store/internal/config"
	"vinyl-store/internal/events"
	"vinyl-store/internal/payment"
	"vinyl-store/internal/sessions"
)

// SetupRoutes wires the HTTP surface onto the engine.
func SetupRoutes(r *gin.Engine, cfg *config.Config, registry sessions.Registry, gateway payment.Gateway, bus *events.Bus) {
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())

	authHandler := handlers.NewAuthHandler(cfg, registry)
	userHandler := handlers.NewUserHandler()
	vinylHandler := handlers.NewVinylHandler()
	reviewHandler := handlers.NewReviewHandler()
	paymentHandler := handlers.NewPaymentHandler(cfg, gateway, bus)
	logsHandler := handlers.NewLogsHandler()

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		api.GET("/auth/google", authHandler.GoogleLogin)
		api.GET("/auth/google/callback", authHandler.GoogleCallback)
		api.POST("/auth/login", authHandler.Login)

		// The catalog is public; authentication only changes paging defaults.
		api.GET("/vinyls", middleware.OptionalAuthMiddleware(cfg, registry), vinylHandler.List)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg, registry))
		{
			protected.GET("/auth/logout", authHandler.Logout)
			protected.GET("/auth/active-users", authHandler.ActiveUsers)

			protected.GET("/users/profile", userHandler.GetProfile)
			protected.PATCH("/users/profile", userHandler.UpdateProfile)
			protected.DELETE("/users/profile", userHandler.DeleteProfile)
			protected.POST("/users/admin", middleware.RequireAdmin(), userHandler.SetAdmin)

			protected.POST("/vinyls", middleware.RequireAdmin(), vinylHandler.Create)
			protected.PATCH("/vinyls/:id", middleware.RequireAdmin(), vinylHandler.Update)
			protected.DELETE("/vinyls/:id", middleware.RequireAdmin(), vinylHandler.Delete)

			protected.POST("/reviews", reviewHandler.Create)
			protected.GET("/reviews/:vinylId", reviewHandler.ListByVinyl)
			protected.DELETE("/reviews/:vinylId/:reviewId", middleware.RequireAdmin(), reviewHandler.Delete)

			protected.POST("/payments/purchase", paymentHandler.Purchase)

			protected.GET("/logs", middleware.RequireAdmin(), logsHandler.List)
		}
	}
}
