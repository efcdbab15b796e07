package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Dosada05/swiss-tournament/config"
	"github.com/Dosada05/swiss-tournament/db"
	"github.com/Dosada05/swiss-tournament/handlers"
	"github.com/Dosada05/swiss-tournament/live"
	"github.com/Dosada05/swiss-tournament/repositories"
	api "github.com/Dosada05/swiss-tournament/routes"
	"github.com/Dosada05/swiss-tournament/services"
	"github.com/Dosada05/swiss-tournament/storage"
	"github.com/Dosada05/swiss-tournament/utils"
)

func main() {
	hashPassword := flag.String("hash-password", "", "print the bcrypt hash of the given password for ADMIN_PASSWORD_HASH and exit")
	flag.Parse()

	if *hashPassword != "" {
		hash, err := utils.HashPassword(*hashPassword)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to hash password: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort), slog.Bool("r2_enabled", cfg.R2Enabled()))

	dbConn, err := db.Connect(cfg.DatabaseURL, cfg.DBConnectTimeout)
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

	if cfg.ApplySchema {
		if err := db.ApplySchema(context.Background(), dbConn); err != nil {
			logger.Error("failed to apply schema", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("schema applied")
	}

	var snapshotStore storage.ObjectStore
	if cfg.R2Enabled() {
		snapshotStore, err = storage.NewR2Store(context.Background(), storage.R2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 store", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 store initialized")
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	hub := live.NewHub(logger)
	go hub.Run(hubCtx)

	tournamentService := services.NewTournamentService(
		dbConn,
		repositories.NewPostgresPlayerRepository(),
		repositories.NewPostgresMatchRepository(),
		repositories.NewPostgresStandingRepository(),
		hub,
		logger,
	)
	snapshotService := services.NewSnapshotService(tournamentService, snapshotStore, logger)

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		[]byte(cfg.JWTSecretKey),
		handlers.NewTournamentHandler(tournamentService, snapshotService),
		handlers.NewAuthHandler(cfg.AdminPasswordHash, []byte(cfg.JWTSecretKey)),
		handlers.NewWebSocketHandler(hub, tournamentService),
	)

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
