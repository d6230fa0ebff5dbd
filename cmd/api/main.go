package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dishly/internal/auth"
	"dishly/internal/config"
	"dishly/internal/db"
	"dishly/internal/extract"
	"dishly/internal/food"
	"dishly/internal/geo"
	"dishly/internal/menu"
	"dishly/internal/restaurant"
	"dishly/internal/router"
	"dishly/internal/storage"
	"dishly/internal/upload"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	readHeaderTimeout = 30 * time.Second
	// extraction waits on the model, so requests may run long
	writeTimeout    = 5 * time.Minute
	shutdownTimeout = 10 * time.Second
)

// objectStore is what the API needs from the bucket.
type objectStore interface {
	upload.Storage
	extract.Signer
}

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	config.SetupLogging(cfg.Env, cfg.LogLevel)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// ───────────────────────── DB ─────────────────────────
	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}

	pgDB, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	var store objectStore
	if cfg.UsesObjectStorage() {
		r2Client, err := storage.NewR2Client(ctx, cfg.R2)
		if err != nil {
			logrus.Fatalf("R2 init failed: %v", err)
		}
		store = r2Client
	} else {
		store = storage.NewMemoryStore()
	}

	if reason := cfg.ExtractionDisabledReason(); reason != "" {
		logrus.WithField("reason", reason).
			Warn("menu extraction disabled: uploads and /functions/menu-scraper will answer 500")
	}

	// ───────────────────────── SERVICES ─────────────────────────
	extractService := extract.NewService(
		cfg.Extraction(),
		store,
		cfg.Extractor(),
		extract.NewPostgresRepository(pgDB),
	)

	uploader := upload.NewUploader(store, upload.LocalInvoker{Extractor: extractService})

	foodService := food.NewService(
		food.NewPostgresRepository(pgDB),
		geo.Maps{EmbedKey: cfg.MapsEmbedKey},
	)

	handlers := router.Handlers{
		Auth:        auth.NewHandler(auth.NewService(auth.NewPostgresProfileRepository(pgDB))),
		Foods:       food.NewHandler(foodService),
		Restaurants: restaurant.NewHandler(restaurant.NewService(restaurant.NewPostgresRepository(pgDB), foodService)),
		Menus:       menu.NewHandler(menu.NewService(uploader, menu.NewPostgresRepository(pgDB))),
		Extract:     extract.NewHandler(extractService),
	}

	// ───────────────────────── START ─────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.NewRouter(handlers, cfg.CORSOrigins),
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}

	go func() {
		logrus.WithField("addr", srv.Addr).Info("API running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server stopped: %v", err)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	logrus.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("graceful shutdown failed")
	}
}
