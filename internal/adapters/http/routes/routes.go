package routes

import (
	"sevasetu/internal/adapters/http/handlers"
	"sevasetu/internal/adapters/http/middleware"
	"sevasetu/internal/adapters/persistence/repositories"
	"sevasetu/internal/config"
	"sevasetu/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, chatModel services.ChatModel) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	schemeRepo := repositories.NewSchemeRepository(db)
	recommendationRepo := repositories.NewRecommendationRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	chatRepo := repositories.NewChatRepository(db)
	grievanceRepo := repositories.NewGrievanceRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	eligibilityService := services.NewEligibilityService(cfg.Recommendation.EligibleThreshold)
	recommendationService := services.NewRecommendationService(profileRepo, schemeRepo, recommendationRepo, eligibilityService)
	profileService := services.NewProfileService(profileRepo, userRepo, recommendationService)
	schemeService := services.NewSchemeService(schemeRepo, profileRepo, eligibilityService)
	notificationService := services.NewNotificationService(true)
	applicationService := services.NewApplicationService(applicationRepo, schemeRepo, notificationService)
	chatService := services.NewChatService(chatRepo, chatModel)
	grievanceService := services.NewGrievanceService(grievanceRepo, notificationService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	profileHandler := handlers.NewProfileHandler(profileService)
	schemeHandler := handlers.NewSchemeHandler(schemeService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	chatHandler := handlers.NewChatHandler(chatService)
	grievanceHandler := handlers.NewGrievanceHandler(grievanceService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Auth routes (public, rate limited)
	authRoutes := apiV1.Group("/auth")
	authRoutes.Use(middleware.AuthRateLimiter())
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/refresh", authHandler.RefreshToken)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)
	authRoutes.Post("/logout-all", middleware.AuthMiddleware(cfg), authHandler.LogoutAll)

	// Profile routes (authenticated)
	profileRoutes := apiV1.Group("/profile")
	profileRoutes.Use(middleware.AuthMiddleware(cfg))
	profileRoutes.Get("/", profileHandler.Get)
	profileRoutes.Post("/", profileHandler.Create)
	profileRoutes.Put("/", profileHandler.Update)
	profileRoutes.Put("/language", profileHandler.UpdateLanguage)

	// Scheme catalog routes (public reads, eligibility requires auth)
	schemeRoutes := apiV1.Group("/schemes")
	schemeRoutes.Get("/", schemeHandler.List)
	schemeRoutes.Get("/categories", schemeHandler.Categories)
	schemeRoutes.Get("/popular", schemeHandler.Popular)
	schemeRoutes.Get("/:id", schemeHandler.Get)
	schemeRoutes.Get("/:id/eligibility", middleware.AuthMiddleware(cfg), schemeHandler.CheckEligibility)

	// Recommendation routes (authenticated)
	recommendationRoutes := apiV1.Group("/recommendations")
	recommendationRoutes.Use(middleware.AuthMiddleware(cfg))
	recommendationRoutes.Get("/", recommendationHandler.Get)
	recommendationRoutes.Post("/generate", recommendationHandler.Generate)
	recommendationRoutes.Post("/refresh", recommendationHandler.Refresh)
	recommendationRoutes.Get("/category/:category", recommendationHandler.GetByCategory)

	// Application routes (authenticated)
	applicationRoutes := apiV1.Group("/applications")
	applicationRoutes.Use(middleware.AuthMiddleware(cfg))
	applicationRoutes.Post("/", applicationHandler.Create)
	applicationRoutes.Get("/", applicationHandler.List)
	applicationRoutes.Get("/:id", applicationHandler.Get)
	applicationRoutes.Put("/:id/status", applicationHandler.UpdateStatus)

	// Chat routes (anonymous allowed, rate limited)
	chatRoutes := apiV1.Group("/chat")
	chatRoutes.Use(middleware.ChatRateLimiter())
	chatRoutes.Use(middleware.OptionalAuth(cfg))
	chatRoutes.Post("/conversations", chatHandler.Start)
	chatRoutes.Get("/conversations/:session_id", chatHandler.Get)
	chatRoutes.Post("/messages", chatHandler.SendMessage)
	chatRoutes.Post("/translate", chatHandler.Translate)

	// Grievance routes (authenticated)
	grievanceRoutes := apiV1.Group("/grievances")
	grievanceRoutes.Use(middleware.AuthMiddleware(cfg))
	grievanceRoutes.Post("/", grievanceHandler.Create)
	grievanceRoutes.Get("/", grievanceHandler.List)
	grievanceRoutes.Get("/:id", grievanceHandler.Get)
	grievanceRoutes.Put("/:id/status", grievanceHandler.UpdateStatus)
}
