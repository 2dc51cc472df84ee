package app

import (
	"fmt"

	"awards_backend/internal/config"
	"awards_backend/internal/handlers"
	"awards_backend/internal/logger"
	"awards_backend/internal/middleware"
	"awards_backend/internal/models"
	"awards_backend/internal/repositories"
	"awards_backend/internal/routes"
	"awards_backend/internal/services"
	"awards_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func Run() {
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	userRepo := repositories.NewUserRepository(cfg.Store.Path)
	logger.Info("User store ready", "path", userRepo.Path())

	if err := seedFirstAdmin(userRepo, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, userRepo)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "name", cfg.Project.Name, "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles the full engine: middleware, services, handlers
// and routes. Tests run against the engine it returns.
func SetupRouter(cfg *config.Config, userRepo *repositories.UserRepository) *gin.Engine {
	serviceContainer := initializeServices(userRepo)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg)
	routes.RegisterRoutes(ginRouter, cfg.Project.APIPrefix, appHandlers)

	return ginRouter
}

func initializeServices(userRepo *repositories.UserRepository) *services.ServiceContainer {
	return &services.ServiceContainer{
		AccountService: services.NewAccountService(userRepo),
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AccountHandler: handlers.NewAccountHandler(baseHandler, services.AccountService),
		ContentHandler: handlers.NewContentHandler(baseHandler),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.Origins))
	return router
}

// seedFirstAdmin creates the configured admin account in the user store
// if it does not exist yet. Safe to run on every startup.
func seedFirstAdmin(userRepo *repositories.UserRepository, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	return userRepo.Update(func(db *models.Database) error {
		if db.FindByEmail(adminEmail) != nil {
			logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
			return nil
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}

		db.Users = append(db.Users, &models.User{
			ID:                db.NextID(),
			Email:             adminEmail,
			Password:          string(hashedPassword),
			AppliedCategories: []string{},
			Submissions:       map[string]models.Submission{},
			IsAdmin:           true,
		})

		logger.Info("Created first admin user", "email", adminEmail)
		return nil
	})
}
