package routes

import (
	"fmt"

	"identity-org-backend/internal/api/handlers"
	"identity-org-backend/internal/api/middleware"
	"identity-org-backend/internal/auth"
	"identity-org-backend/internal/config"
	"identity-org-backend/internal/password"
	"identity-org-backend/internal/phone"
	"identity-org-backend/internal/repository"
	"identity-org-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	authConfig, err := auth.NewAuthConfig(cfg)
	if err != nil {
		return nil, err
	}
	tokenService, err := auth.NewTokenService(authConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(tokenService)

	validator := service.NewValidator()
	hasher := password.NewHasher(password.Params{
		Time:    cfg.PasswordHashTime,
		Memory:  cfg.PasswordHashMemory,
		Threads: cfg.PasswordHashThreads,
	})
	phones := phone.NewNormalizer(cfg.DefaultPhoneRegion)

	// Initialize store
	store := repository.NewCredentialStore(db)

	// Initialize services
	identityService := service.NewIdentityService(store, hasher, tokenService, phones, validator)
	accessControl := service.NewAccessControlService(store)
	organisationService := service.NewOrganisationService(store, accessControl, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, Version)
	authHandler := handlers.NewAuthHandler(identityService)
	organisationHandler := handlers.NewOrganisationHandler(organisationService)
	userHandler := handlers.NewUserHandler(organisationService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// Everything under /api requires a bearer token
	api := router.Group("/api")
	api.Use(authMiddleware.RequireAuth())
	{
		organisations := api.Group("/organisations")
		{
			organisations.GET("", organisationHandler.ListOrganisations)
			organisations.POST("", organisationHandler.CreateOrganisation)
			organisations.GET("/:orgId", organisationHandler.GetOrganisation)
			organisations.POST("/:orgId/users", organisationHandler.AddMember)
		}

		api.GET("/users/:id", userHandler.GetUser)
	}

	return router, nil
}
