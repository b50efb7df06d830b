package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/insightdash/backend/internal/application/analytics"
	"github.com/insightdash/backend/internal/domain/history"
	"github.com/insightdash/backend/internal/infrastructure/config"
	"github.com/insightdash/backend/internal/infrastructure/logger"
	"github.com/insightdash/backend/internal/infrastructure/persistence"
	"github.com/insightdash/backend/internal/infrastructure/upload"
	"github.com/insightdash/backend/internal/interfaces/http/handler"
	"github.com/insightdash/backend/internal/interfaces/http/middleware"
	"github.com/insightdash/backend/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting InsightDash Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Upload history storage is optional; driver "none" runs the server
	// without it.
	var db *persistence.Database
	var historyRepo history.Repository
	if cfg.Database.Driver != "none" {
		gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
		db, err = persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
		if err != nil {
			log.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Error closing database", zap.Error(err))
			}
		}()
		historyRepo = persistence.NewGormUploadHistoryRepository(db.DB)
		log.Info("Database connected successfully", zap.String("driver", cfg.Database.Driver))
	} else {
		log.Info("Upload history disabled")
	}

	// Analytics pipeline and file reader
	pipeline := analytics.NewPipeline(log)
	reader := upload.NewReader(cfg.Upload.MaxRows, cfg.Upload.MaxColumns)

	// HTTP handlers
	dashboardHandler := handler.NewDashboardHandler(pipeline, reader, historyRepo, cfg.Upload.MaxFileSize, log)
	systemHandler := handler.NewSystemHandler(version, pinger(db))

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack in order: request ID, panic recovery, request
	// logging, CORS, body size limit.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// The multipart form itself carries overhead beyond the file, so the
	// body limit sits above the per-file limit.
	engine.Use(middleware.BodyLimit(cfg.Upload.MaxFileSize + 1<<20))

	// Register API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(dashboardHandler)
	r.Register(systemHandler)
	if historyRepo != nil {
		r.Register(handler.NewHistoryHandler(historyRepo))
	}
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// pinger adapts the optional database to the health check. A typed nil
// inside a non-nil interface would defeat the handler's nil check.
func pinger(db *persistence.Database) handler.Pinger {
	if db == nil {
		return nil
	}
	return db
}
