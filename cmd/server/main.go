package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/camica-bit/fitness-tracker-ai/internal/api"
	"github.com/camica-bit/fitness-tracker-ai/internal/config"
	"github.com/camica-bit/fitness-tracker-ai/internal/engine"
	"github.com/camica-bit/fitness-tracker-ai/internal/generation"
	"github.com/camica-bit/fitness-tracker-ai/internal/repository"
	"github.com/camica-bit/fitness-tracker-ai/internal/repository/file"
	mongorepo "github.com/camica-bit/fitness-tracker-ai/internal/repository/mongo"
	"github.com/camica-bit/fitness-tracker-ai/internal/service"
	"github.com/camica-bit/fitness-tracker-ai/internal/storage"
	"github.com/camica-bit/fitness-tracker-ai/pkg/logger"
)

func main() {
	log := logger.New()
	defer log.Sync()

	log.Info("Starting Fitness Tracker AI server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalw("could not load config", "error", err)
	}

	// --- Storage Backing ---
	var (
		profileRepo  repository.ProfileRepository
		planRepo     repository.PlanRepository
		progressRepo repository.ProgressRepository
	)

	switch cfg.Database.Backend {
	case "file":
		store, err := file.Open(cfg.Database.DataDir)
		if err != nil {
			log.Fatalw("could not open file store", "dir", cfg.Database.DataDir, "error", err)
		}
		profileRepo, planRepo, progressRepo = store.Profiles(), store.Plans(), store.Progress()
		log.Infow("file store opened", "dir", cfg.Database.DataDir)
	default:
		dbClient, err := mongorepo.ConnectDB(cfg.Database.URI)
		if err != nil {
			log.Fatalw("could not connect to MongoDB", "error", err)
		}
		defer func() {
			if err := mongorepo.DisconnectDB(dbClient); err != nil {
				log.Errorw("failed to disconnect MongoDB", "error", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)

		go func() { // Run index creation in the background.
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			defer cancel()
			mongorepo.EnsurePlanIndexes(ctx, appDB.Collection("plans"))
		}()

		profileRepo = mongorepo.NewMongoProfileRepository(appDB)
		planRepo = mongorepo.NewMongoPlanRepository(appDB)
		progressRepo = mongorepo.NewMongoProgressRepository(appDB)
		log.Info("MongoDB connection established")
	}

	// --- Generation Client ---
	generator, err := generation.NewClient(generation.Config{
		APIKey:      cfg.Generation.APIKey,
		BaseURL:     cfg.Generation.BaseURL,
		Model:       cfg.Generation.Model,
		MaxTokens:   cfg.Generation.MaxTokens,
		Temperature: cfg.Generation.Temperature,
	})
	if err != nil {
		log.Fatalw("could not initialize generation client", "error", err)
	}

	// --- Response Archive (optional) ---
	var archive storage.ResponseArchive
	if cfg.S3.Enabled {
		archive, err = storage.NewS3Archive(cfg.S3)
		if err != nil {
			log.Fatalw("could not initialize S3 response archive", "error", err)
		}
		log.Infow("response archive enabled", "bucket", cfg.S3.BucketName)
	}

	// --- Engine & Services ---
	orchestrator := engine.NewOrchestrator(generator, planRepo, progressRepo, archive, log, engine.Config{
		Timeout:         cfg.Generation.Timeout,
		UpstreamRetries: cfg.Generation.Retries,
		Backoff:         cfg.Generation.Backoff,
	})
	workoutService := service.NewWorkoutService(profileRepo, planRepo, progressRepo, orchestrator, log)
	progressService := service.NewProgressService(planRepo, progressRepo, log)

	// --- HTTP Server ---
	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, workoutService, progressService, log)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second, // generation requests can take a while
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Infow("server starting", "address", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("listen and serve error", "error", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("Server exiting.")
}
