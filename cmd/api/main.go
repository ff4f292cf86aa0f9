package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/api"
	"go-portfolio-backend/internal/repository/sqlstore"
	"go-portfolio-backend/internal/storage"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/logger"
	"go-portfolio-backend/pkg/redis"
	"go-portfolio-backend/pkg/token"
)

// @title           Portfolio Backend API
// @version         1.0
// @description     Backend for a personal portfolio site using Clean Architecture.
// @host            localhost:3002
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port, "driver", cfg.DBDriver)

	ctx := context.Background()

	store, err := sqlstore.Open(ctx, sqlstore.Options{
		Driver:      cfg.DBDriver,
		DatabaseURL: cfg.DatabaseURL,
		SQLitePath:  cfg.SQLitePath,
	})
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Migrate(ctx); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	if err := store.Seed(ctx, sqlstore.SeedOptions{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
	}); err != nil {
		logger.Log.Error("Failed to seed initial data", "error", err)
		os.Exit(1)
	}

	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	assets, err := storage.NewStore(cfg.UploadDir)
	if err != nil {
		logger.Log.Error("Failed to prepare upload directories", "error", err)
		os.Exit(1)
	}

	tokens := token.NewManager(cfg.JWTSecret, time.Duration(cfg.TokenExpiryHours)*time.Hour)

	userRepo := sqlstore.NewUserRepository(store)
	profileRepo := sqlstore.NewProfileRepository(store)
	projectRepo := sqlstore.NewProjectRepository(store)
	skillRepo := sqlstore.NewSkillRepository(store)
	experienceRepo := sqlstore.NewExperienceRepository(store)
	certificationRepo := sqlstore.NewCertificationRepository(store)
	testimonialRepo := sqlstore.NewTestimonialRepository(store)
	contactRepo := sqlstore.NewContactRepository(store)
	statsRepo := sqlstore.NewStatsRepository(store)

	router := api.NewRouter(api.RouterDeps{
		AuthUC:          usecase.NewAuthUsecase(userRepo, tokens),
		ProfileUC:       usecase.NewProfileUsecase(profileRepo, assets),
		ProjectUC:       usecase.NewProjectUsecase(projectRepo, assets),
		SkillUC:         usecase.NewSkillUsecase(skillRepo),
		ExperienceUC:    usecase.NewExperienceUsecase(experienceRepo),
		CertificationUC: usecase.NewCertificationUsecase(certificationRepo),
		TestimonialUC:   usecase.NewTestimonialUsecase(testimonialRepo),
		ContactUC:       usecase.NewContactUsecase(contactRepo),
		StatsUC:         usecase.NewStatsUsecase(statsRepo),
		Tokens:          tokens,
		Store:           store,
		Assets:          assets,
		Config:          cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}
	logger.Log.Info("Server exited")
}
