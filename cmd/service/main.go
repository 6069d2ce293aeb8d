package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/paulajardimf/poo-1-exercicios/internal/api"
	"github.com/paulajardimf/poo-1-exercicios/internal/config"
	"github.com/paulajardimf/poo-1-exercicios/internal/log"
	"github.com/paulajardimf/poo-1-exercicios/internal/storage/db"
	"github.com/paulajardimf/poo-1-exercicios/internal/storage/repository"
	"github.com/paulajardimf/poo-1-exercicios/internal/storage/store"
)

func main() {
	// .env is optional; variables may come from the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()
	log.Configure(log.Config{Level: cfg.LogLevel})
	logger := log.WithComponent("service")

	database, err := db.NewConnection(db.Config{Driver: cfg.DBDriver, URL: cfg.DatabaseURL})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer database.Close()

	dialect := store.SQLite
	if cfg.DBDriver == "postgres" {
		dialect = store.Postgres
	}

	videoRepo := repository.NewVideoRepository(database, dialect)
	if err := videoRepo.EnsureSchema(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure schema")
	}

	router := api.NewRouter(videoRepo, cfg.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
}
