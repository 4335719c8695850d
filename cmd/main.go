package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/playsphere/playsphere/cache"
	"github.com/playsphere/playsphere/config"
	"github.com/playsphere/playsphere/db"
	"github.com/playsphere/playsphere/handlers"
	"github.com/playsphere/playsphere/repositories"
	api "github.com/playsphere/playsphere/routes"
	"github.com/playsphere/playsphere/scoring"
	"github.com/playsphere/playsphere/services"
	"github.com/playsphere/playsphere/storage"
)

const profileCacheTTL = 5 * time.Minute

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	// Инициализация загрузчика файлов (Cloudflare R2)
	uploader, err := storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
		AccountID:       cfg.R2AccountID,
		AccessKeyID:     cfg.R2AccessKeyID,
		SecretAccessKey: cfg.R2SecretAccessKey,
		BucketName:      cfg.R2BucketName,
		PublicBaseURL:   cfg.R2PublicBaseURL,
	})
	if err != nil {
		logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Cloudflare R2 uploader initialized")

	// Кэш профилей поверх Redis. Опционален: без REDIS_ADDR просто
	// работаем без кэша.
	var profileCache *cache.ProfileCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		defer redisClient.Close()
		profileCache = cache.NewProfileCache(redisClient, profileCacheTTL)
		logger.Info("profile cache enabled", slog.String("redis", cfg.RedisAddr))
	}

	// Инициализация WebSocket Hub
	wsHub := scoring.NewHub()
	go wsHub.Run()
	logger.Info("WebSocket Hub started")

	// Инициализация репозиториев
	adminRepo := repositories.NewPostgresAdminRepository(dbConn)
	userRepo := repositories.NewPostgresUserRepository(dbConn)
	playerRepo := repositories.NewPostgresPlayerRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	coachRepo := repositories.NewPostgresCoachRepository(dbConn)
	registrationRepo := repositories.NewPostgresRegistrationRepository(dbConn)
	cricketRepo := repositories.NewPostgresCricketMatchRepository(dbConn)
	footballRepo := repositories.NewPostgresFootballMatchRepository(dbConn)
	badmintonRepo := repositories.NewPostgresBadmintonMatchRepository(dbConn)
	logger.Info("Repositories initialized")

	// Инициализация сервисов
	authService := services.NewAuthService(adminRepo, userRepo)
	playerService := services.NewPlayerService(playerRepo, teamRepo, uploader)
	teamService := services.NewTeamService(teamRepo, playerRepo, uploader)
	registrationService := services.NewRegistrationService(coachRepo, registrationRepo, playerRepo, uploader)
	cricketService := services.NewCricketMatchService(cricketRepo, teamRepo, playerRepo, wsHub)
	footballService := services.NewFootballMatchService(footballRepo, teamRepo, playerRepo, wsHub)
	badmintonService := services.NewBadmintonMatchService(badmintonRepo, teamRepo, playerRepo, wsHub)
	profileService := services.NewProfileService(
		playerRepo,
		teamRepo,
		coachRepo,
		cricketRepo,
		footballRepo,
		badmintonRepo,
		uploader,
		profileCache,
		logger,
	)
	logger.Info("Services initialized")

	// Инициализация обработчиков HTTP
	jwtSecret := []byte(cfg.JWTSecretKey)
	router := api.InitRoutes(api.Handlers{
		Auth:         handlers.NewAuthHandler(authService, jwtSecret),
		Registration: handlers.NewRegistrationHandler(registrationService),
		Player:       handlers.NewPlayerHandler(playerService),
		Team:         handlers.NewTeamHandler(teamService),
		Cricket:      handlers.NewCricketMatchHandler(cricketService),
		Football:     handlers.NewFootballMatchHandler(footballService),
		Badminton:    handlers.NewBadmintonMatchHandler(badmintonService),
		Profile:      handlers.NewProfileHandler(profileService),
		Live:         handlers.NewLiveHandler(wsHub, logger),
	}, jwtSecret)
	logger.Info("Routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
