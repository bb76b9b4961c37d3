package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"sevasetu/internal/adapters/http/middleware"
	"sevasetu/internal/adapters/http/routes"
	"sevasetu/internal/adapters/llm"
	"sevasetu/internal/adapters/persistence/models"
	"sevasetu/internal/adapters/persistence/repositories"
	"sevasetu/internal/config"
	"sevasetu/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "sevasetu/docs" // Swagger docs
)

// @title SevaSetu API
// @version 1.0
// @description Welfare scheme discovery and eligibility API for Indian government schemes

// @contact.name API Support
// @contact.email support@sevasetu.gov.in

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed the scheme catalog
	if cfg.SeedOnStart {
		if err := config.SeedDatabase(db); err != nil {
			log.Printf("⚠️  Warning: Failed to seed schemes: %v", err)
		}
	}

	// Assistant model (Gemini)
	chatModel, err := llm.NewGeminiClient(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize assistant model: %v", err)
	}

	// Nightly recommendation sweep
	if cfg.Recommendation.SweepEnabled {
		profileRepo := repositories.NewProfileRepository(db)
		schemeRepo := repositories.NewSchemeRepository(db)
		recommendationRepo := repositories.NewRecommendationRepository(db)
		userRepo := repositories.NewUserRepository(db)
		refreshTokenRepo := repositories.NewRefreshTokenRepository(db)

		eligibilityService := services.NewEligibilityService(cfg.Recommendation.EligibleThreshold)
		recommendationService := services.NewRecommendationService(profileRepo, schemeRepo, recommendationRepo, eligibilityService)
		authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)

		sweep := services.NewSweepService(profileRepo, recommendationService, authService, cfg.Recommendation.SweepSchedule)
		if err := sweep.Start(); err != nil {
			log.Fatalf("❌ Failed to start recommendation sweep: %v", err)
		}
		defer sweep.Stop()
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "SevaSetu API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg, chatModel)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [ENV: %s]", cfg.AppPort, cfg.AppEnv)
	if err := app.Listen(cfg.AppHost + ":" + cfg.AppPort); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
