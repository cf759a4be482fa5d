package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dfryer1193/masterblog/blog/application"
	"github.com/dfryer1193/masterblog/blog/domain"
	"github.com/dfryer1193/masterblog/blog/persistence"
	"github.com/dfryer1193/masterblog/internal/middleware"
	"github.com/dfryer1193/masterblog/internal/rest"
	"github.com/dfryer1193/masterblog/shared/config"
	"github.com/dfryer1193/masterblog/shared/db/sqlite"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const shutdownTimeout = 5 * time.Second

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Fatal().Err(err).Str("level", cfg.Log.Level).Msg("Unknown log level")
	}
	zerolog.SetGlobalLevel(level)

	schema, err := domain.ParseSchema(cfg.Schema)
	if err != nil {
		log.Fatal().Err(err).Str("schema", cfg.Schema).Msg("Invalid schema setting")
	}

	repo, cleanup, err := buildRepository(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up storage")
	}
	defer cleanup()

	postService := application.NewPostService(repo, schema)

	if cfg.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.LogRequests())
	router.Use(gin.CustomRecovery(middleware.HandlePanics()))
	rest.NewApi(router, postService)

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: cors.AllowAll().Handler(router),
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("driver", cfg.Storage.Driver).
			Str("schema", string(schema)).
			Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to shutdown server")
	}

	log.Info().Msg("Server stopped")
}

// buildRepository picks the post backend from configuration. The returned
// cleanup releases whatever the backend holds open.
func buildRepository(cfg config.StorageConfig) (domain.PostRepository, func(), error) {
	switch strings.ToLower(cfg.Driver) {
	case "file":
		return persistence.NewFilePostRepository(cfg.Path), func() {}, nil
	case "memory":
		return persistence.NewMemoryPostRepository(), func() {}, nil
	case "sqlite":
		database := sqlite.NewSQLiteDB(sqlite.NewSQLiteConfig(cfg.SQLitePath))
		if err := database.Connect(); err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := database.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close database")
			}
		}
		return persistence.NewSQLitePostRepository(database.DB()), cleanup, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
