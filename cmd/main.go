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

	"github.com/artsfest/scoreboard/config"
	"github.com/artsfest/scoreboard/db"
	"github.com/artsfest/scoreboard/handlers"
	"github.com/artsfest/scoreboard/live"
	"github.com/artsfest/scoreboard/repositories"
	"github.com/artsfest/scoreboard/routes"
	"github.com/artsfest/scoreboard/services"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

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

	if err := db.Migrate(dbConn); err != nil {
		logger.Error("failed to apply database migrations", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database migrations applied")

	hub := live.NewHub(logger)
	go hub.Run()
	logger.Info("live hub started")

	participantRepo := repositories.NewPostgresParticipantRepository(dbConn)
	categoryRepo := repositories.NewPostgresCategoryRepository(dbConn)
	itemRepo := repositories.NewPostgresItemRepository(dbConn)
	settingsRepo := repositories.NewPostgresSettingsRepository(dbConn)
	userRepo := repositories.NewPostgresUserRepository(dbConn)
	logger.Info("repositories initialized")

	scoreboardService := services.NewScoreboardService(participantRepo, categoryRepo, itemRepo, settingsRepo)

	// The notifier recomputes the live payload after every mutation, so it
	// needs the scoreboard service and must exist before the write services.
	notifier := services.NewNotifier(scoreboardService, hub, logger)

	authService := services.NewAuthService(userRepo, logger)
	participantService := services.NewParticipantService(participantRepo, notifier)
	categoryService := services.NewCategoryService(categoryRepo)
	itemService := services.NewItemService(itemRepo, settingsRepo, notifier)
	settingsService := services.NewSettingsService(settingsRepo, notifier)
	logger.Info("services initialized")

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := authService.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			cancel()
			logger.Error("failed to bootstrap admin account", slog.Any("error", err))
			os.Exit(1)
		}
		cancel()
	}

	h := routes.Handlers{
		Auth:        handlers.NewAuthHandler(authService, cfg.JWTSecretKey),
		Scoreboard:  handlers.NewScoreboardHandler(scoreboardService),
		Participant: handlers.NewParticipantHandler(participantService),
		Category:    handlers.NewCategoryHandler(categoryService),
		Item:        handlers.NewItemHandler(itemService),
		Settings:    handlers.NewSettingsHandler(settingsService),
		WebSocket:   handlers.NewWebSocketHandler(hub),
	}
	router := routes.InitRoutes(h, []byte(cfg.JWTSecretKey), cfg.CORSAllowedOrigins)
	logger.Info("routes configured")

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
