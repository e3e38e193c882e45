package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/app"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/config"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/database"
	apphttp "github.com/Sandeepsharmawagle/Findjob-Backend/internal/http"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/http/handlers"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/http/metrics"
	httpmw "github.com/Sandeepsharmawagle/Findjob-Backend/internal/http/middleware"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/http/response"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/observability"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/repository/postgres"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/security"
	"github.com/Sandeepsharmawagle/Findjob-Backend/internal/upload"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := observability.NewLogger(cfg.IsProduction())
	defer logger.Sync()

	db := database.NewPostgres(database.PostgresConfig{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxIdle:     cfg.DBConnMaxIdle,
		ConnMaxLifetime: cfg.DBConnMaxLife,
	})
	defer db.Close()

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(migrateCtx, db); err != nil {
		cancelMigrate()
		log.Fatalf("migrate: %v", err)
	}
	cancelMigrate()

	userRepo := postgres.NewUserRepository(db)
	jobRepo := postgres.NewJobRepository(db)
	applicationRepo := postgres.NewApplicationRepository(db)

	tokens := security.NewTokenProvider(cfg.JWTSecret)

	authService := app.NewAuthService(userRepo, tokens, logger, cfg.TokenTTL)
	jobService := app.NewJobService(jobRepo, applicationRepo, logger)
	applicationService := app.NewApplicationService(applicationRepo, jobRepo, logger)
	adminService := app.NewAdminService(userRepo, jobRepo, applicationRepo, logger)

	uploads, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload dir: %v", err)
	}

	var limiter httpmw.Limiter = httpmw.NewRateLimiter()
	if cfg.RedisAddr != "" {
		limiter = httpmw.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}

	authHandler := handlers.NewAuthHandler(authService, limiter)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, uploads, limiter)
	employerHandler := handlers.NewEmployerHandler(jobService, applicationService)
	adminHandler := handlers.NewAdminHandler(adminService)
	authMiddleware := httpmw.NewAuthMiddleware(tokens, userRepo)

	collector := metrics.NewCollector()
	response.SetErrorCollector(collector)
	response.SetExposeDetails(!cfg.IsProduction())

	router := apphttp.NewRouter(apphttp.RouterDependencies{
		AuthHandler:        authHandler,
		JobHandler:         jobHandler,
		ApplicationHandler: applicationHandler,
		EmployerHandler:    employerHandler,
		AdminHandler:       adminHandler,
		AuthMiddleware:     authMiddleware,
		Metrics:            collector,
		Logger:             logger.Zap(),
		UploadDir:          cfg.UploadDir,
		AllowedOrigins:     cfg.AllowedOrigins,
		RequestTimeout:     cfg.RequestTimeout,
	})
	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("API started on :" + cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
