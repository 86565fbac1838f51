package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go-vacancy-backend/config"
	_ "go-vacancy-backend/docs" // Important for Swagger
	v1 "go-vacancy-backend/internal/delivery/http/v1"
	"go-vacancy-backend/internal/domain"
	"go-vacancy-backend/internal/repository/filestore"
	"go-vacancy-backend/internal/repository/sqlrepo"
	"go-vacancy-backend/internal/usecase"
	"go-vacancy-backend/pkg/database"
	"go-vacancy-backend/pkg/logger"
	"go-vacancy-backend/pkg/redis"
	"go-vacancy-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Vacancy Backend API
// @version         1.0
// @description     Accounts, job vacancies and CV submissions.
// @host            localhost:3000
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)
	logger.Log.Info("Starting vacancy backend", "port", cfg.Port, "db_driver", cfg.Dialect)

	ctx := context.Background()

	// 3. Setup Database (migrations run on open)
	db, err := database.Open(ctx, cfg.Dialect, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// 4. Optional Redis for rate limiting
	var redisClient *goredis.Client
	checks := map[string]domain.Pinger{"database": db}
	redisClient, err = redis.Connect(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	switch {
	case errors.Is(err, redis.ErrNotConfigured):
		logger.Log.Info("Redis not configured, rate limiting in memory")
	case err != nil:
		logger.Log.Warn("Redis unavailable, rate limiting in memory", "error", err)
		redisClient = nil
	default:
		defer redisClient.Close()
		checks["redis"] = redis.Pinger{Client: redisClient}
	}

	// 5. Upload directory
	cvStore := filestore.NewCVStore(cfg.UploadDir)
	if err := cvStore.EnsureDir(); err != nil {
		logger.Log.Error("Failed to create upload directory", "error", err)
		os.Exit(1)
	}

	// 6. Setup Repositories
	accountRepo := sqlrepo.NewAccountRepository(db)
	vacancyRepo := sqlrepo.NewVacancyRepository(db)
	applicationRepo := sqlrepo.NewApplicationRepository(db)

	// 7. Setup UseCases
	validate := validation.New()
	accountUC := usecase.NewAccountUsecase(accountRepo, validate)
	vacancyUC := usecase.NewVacancyUsecase(vacancyRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, cvStore, validate, cfg.MaxCVBytes)
	healthUC := usecase.NewHealthUsecase(checks)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AccountUC:     accountUC,
		VacancyUC:     vacancyUC,
		ApplicationUC: applicationUC,
		HealthUC:      healthUC,
		Redis:         redisClient,
		Config:        cfg,
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
	logger.Log.Info("Server listening", "addr", srv.Addr)

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
