package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           Job Board API
// @version         1.0
// @description     Backend for the job board platform using Clean Architecture.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job board backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional, rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	categoryRepo := postgres.NewCategoryRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	savedJobRepo := postgres.NewSavedJobRepository(dbPool)
	resetRepo := postgres.NewPasswordResetRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact form and password reset will be unavailable")
	}

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	gate := usecase.NewAccessGate(profileRepo)
	authUC := usecase.NewAuthUsecase(userRepo, resetRepo, gate, emailService, validate, cfg)
	profileUC := usecase.NewProfileUsecase(userRepo, profileRepo, gate, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, categoryRepo, applicationRepo, savedJobRepo, profileRepo, gate, cfg)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, gate, cfg)
	savedJobUC := usecase.NewSavedJobUsecase(savedJobRepo, jobRepo, gate, cfg)
	contactUC := usecase.NewContactUsecase(emailService)
	healthUC := usecase.NewHealthUsecase(dbPool)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		ProfileUC:   profileUC,
		JobUC:       jobUC,
		AppUC:       applicationUC,
		SavedUC:     savedJobUC,
		ContactUC:   contactUC,
		HealthUC:    healthUC,
		ProfileRepo: profileRepo,
		Config:      cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
