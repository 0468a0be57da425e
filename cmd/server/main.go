package main

import (
	"little_lemon/internal/auth"
	"little_lemon/internal/config"
	"little_lemon/internal/database"
	"little_lemon/internal/handlers"
	"little_lemon/internal/migrations"
	"little_lemon/internal/redis"
	"little_lemon/internal/repository"
	"little_lemon/internal/services"
	"little_lemon/pkg/whatsapp"
	"log"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.RunMigrations(db, migrations.AdminSeed{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Redis backs the menu cache and token revocation; both are optional.
	var menuCache services.MenuCache
	var revoked services.RevocationStore
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Redis unavailable, running without cache and logout: %v", err)
	} else {
		defer redisClient.Close()
		menuCache = redisClient
		revoked = redisClient
	}

	var notifier services.Notifier
	if cfg.NotificationsEnabled() {
		whatsappClient := whatsapp.NewClient(cfg.WhatsAppAPIURL, cfg.WhatsAppUsername, cfg.WhatsAppPassword, cfg.WhatsAppPath)
		notifier = services.NewNotificationService(whatsappClient)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)

	// Initialize services
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	userService := services.NewUserService(userRepo)
	router := handlers.NewRouter(handlers.Services{
		Users:   userService,
		Auth:    services.NewAuthService(userService, tokens, revoked),
		Staff:   services.NewStaffService(userRepo, groupRepo),
		Catalog: services.NewCatalogService(db, menuCache, cfg.CacheTTL),
		Cart:    services.NewCartService(db),
		Orders:  services.NewOrderService(db, notifier),
	})

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
