package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/plumehq/plume/pkg/plume/auth"
	"github.com/plumehq/plume/pkg/plume/config"
	"github.com/plumehq/plume/pkg/plume/database"
	"github.com/plumehq/plume/pkg/plume/follows"
	"github.com/plumehq/plume/pkg/plume/groups"
	"github.com/plumehq/plume/pkg/plume/middleware"
	"github.com/plumehq/plume/pkg/plume/models"
	"github.com/plumehq/plume/pkg/plume/posts"
	"github.com/plumehq/plume/pkg/plume/profiles"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/plumehq/plume/api/swagger"
)

// @title Plume API
// @version 1.0
// @description A blog-style publishing backend: posts, topical groups, comments, and follow feeds.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token. Format: "Bearer {token}"

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	auth.Configure(cfg.JWTSecret, cfg.TokenTTL)
	if cfg.JWTSecret == "" {
		slog.Warn("PLUME_JWT_SECRET not set, using development default")
	}

	if err := database.Connect(cfg.DBPath); err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := models.AutoMigrate(database.GetDB()); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed", "path", cfg.DBPath)

	if err := ensureAdminExists(); err != nil {
		slog.Error("Failed to ensure admin user exists", "error", err)
		os.Exit(1)
	}

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	db := database.GetDB()

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		authHandler := auth.NewHandler(db)
		authHandler.RegisterRoutes(api.Group("/auth"))

		// Public reads carry the viewer identity when a token is present;
		// it only drives relationship flags like is_following.
		public := api.Group("", auth.OptionalAuthMiddleware())

		postsHandler := posts.NewHandler(db)
		if cfg.FeedCacheTTL > 0 {
			postsHandler.RegisterRoutes(public, middleware.CacheResponse(cfg.FeedCacheTTL))
		} else {
			postsHandler.RegisterRoutes(public)
		}

		groupsHandler := groups.NewHandler(db)
		groupsHandler.RegisterRoutes(public)

		profilesHandler := profiles.NewHandler(db)
		profilesHandler.RegisterRoutes(public)

		// Mutations require a full login
		authed := api.Group("", auth.AuthMiddleware())
		postsHandler.RegisterAuthedRoutes(authed)

		followsHandler := follows.NewHandler(db)
		followsHandler.RegisterRoutes(authed)

		// Admin routes (group management)
		adminGroup := api.Group("/admin")
		adminGroup.Use(auth.AuthMiddleware(), auth.RequireAdmin())
		groupsHandler.RegisterAdminRoutes(adminGroup)
	}

	slog.Info("Starting Plume server", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureAdminExists creates a default admin user if no admin exists.
// Groups are admin-managed, so a fresh install needs one to be useful.
func ensureAdminExists() error {
	db := database.GetDB()

	var count int64
	if err := db.Model(&models.User{}).Where("system_role = ?", models.SystemRoleAdmin).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	hashedPassword, err := auth.HashPassword("changeme")
	if err != nil {
		return err
	}

	adminUser := models.User{
		Username:     "admin",
		Email:        "admin@plume.local",
		Name:         "Admin",
		PasswordHash: hashedPassword,
		SystemRole:   models.SystemRoleAdmin,
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	slog.Info("Created default admin user", "username", adminUser.Username, "password", "changeme")
	return nil
}
