package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/apetrov/my-blog-be/internal/api"
	"github.com/apetrov/my-blog-be/internal/auth"
	"github.com/apetrov/my-blog-be/internal/config"
	"github.com/apetrov/my-blog-be/internal/logger"
	"github.com/apetrov/my-blog-be/internal/monitoring"
	"github.com/apetrov/my-blog-be/internal/services"
	"github.com/apetrov/my-blog-be/internal/storage"
	"github.com/apetrov/my-blog-be/internal/storage/jsonfile"
	"github.com/apetrov/my-blog-be/internal/storage/sqlite"
	"github.com/apetrov/my-blog-be/internal/util"
	"github.com/apetrov/my-blog-be/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.IsProduction())

	clock := util.NewRealClock()

	// Set up the collection store
	var store storage.Store
	switch cfg.StorageBackend {
	case config.BackendSQLite:
		db, err := sqlite.New(cfg.DatabasePath)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to open database")
		}
		defer db.Close()
		if err := db.Migrate(); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply database migrations")
		}
		store = db
	case config.BackendJSONFile:
		fs, err := jsonfile.New(cfg.DataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize data directory")
		}
		store = fs
	default:
		log.Fatal().Str("backend", cfg.StorageBackend).Msg("Unknown storage backend")
	}

	// Set up WebSocket hub for the live event feed
	hub := websocket.NewHub()
	go hub.Run()

	// Set up services
	eventService := services.NewEventService(store, clock, hub)
	userService := services.NewUserService(store, eventService)
	postService := services.NewPostService(store, eventService)
	commentService := services.NewCommentService(store, eventService, clock)
	photoService := services.NewPhotoService(store, eventService)
	backupService := services.NewBackupService(cfg.DataDir, cfg.BackupPath, clock)

	// Set up the session token manager
	tokens := auth.NewTokenManager(cfg.JWTSecret, clock)

	// Set up and run the backup scheduler when configured
	var scheduler *monitoring.BackupScheduler
	if cfg.BackupCron != "" {
		scheduler, err = monitoring.NewBackupScheduler(backupService, cfg.BackupCron, clock)
		if err != nil {
			log.Fatal().Err(err).Str("cron", cfg.BackupCron).Msg("Invalid backup schedule")
		}
		go scheduler.Run()
	}

	// Set up router
	router := api.NewRouter(cfg, tokens, hub, userService, postService, commentService, photoService, eventService)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Msg("Server starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	if scheduler != nil {
		scheduler.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exiting")
}
