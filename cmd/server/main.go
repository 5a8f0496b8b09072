package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"vinyl-store/internal/api/routes"
	"vinyl-store/internal/config"
	"vinyl-store/internal/events"
	"vinyl-store/internal/mailer"
	"vinyl-store/internal/models"
	"vinyl-store/internal/payment"
	"vinyl-store/internal/services"
	"vinyl-store/internal/sessions"
	"vinyl-store/internal/util"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := util.InitLogger(cfg.Server.Mode); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer util.SyncLogger()
	logger := util.GetLogger()

	// Initialize database
	if err := models.InitDB(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if err := models.RegisterAuditCallbacks(models.DB); err != nil {
		log.Fatalf("Failed to register audit callbacks: %v", err)
	}

	// Create default admin if database is empty
	authService := services.NewAuthService(cfg)
	if err := authService.CreateDefaultAdmin(); err != nil {
		logger.Sugar().Warnf("Failed to create default admin: %v", err)
	}

	// Session registry
	var registry sessions.Registry
	if cfg.Sessions.Store == "redis" {
		registry, err = sessions.NewRedisRegistry(cfg.Sessions.Redis.Addr, cfg.Sessions.Redis.Password, cfg.Sessions.Redis.DB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
	} else {
		registry = sessions.NewMemoryRegistry()
	}

	// Purchase events feed the confirmation mailer
	bus := events.NewBus(logger)
	m := mailer.NewMailer(cfg.Email, logger)
	bus.SubscribePurchaseCompleted(m.HandlePurchaseCompleted)

	var gateway payment.Gateway
	if cfg.Stripe.SecretKey != "" {
		gateway = payment.NewStripeGateway(cfg.Stripe.SecretKey)
	} else {
		logger.Warn("No Stripe key configured, using mock payment gateway")
		gateway = payment.NewMockGateway()
	}

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	r := gin.New()
	r.Use(gin.Recovery())

	// Setup routes
	routes.SetupRoutes(r, cfg, registry, gateway, bus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Run server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Sugar().Infof("Starting vinyl store server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
