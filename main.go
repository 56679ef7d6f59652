package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/skill-swap/api-go/config"
	"github.com/skill-swap/api-go/routes"
	"github.com/skill-swap/api-go/services"
	"go.uber.org/zap"
)

func main() {
	seedOnly := flag.Bool("seed-admin", false, "create the configured admin account and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Error creating logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Initialize database
	db, err := config.InitDB(cfg.Database)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	if cfg.Auth.AdminEmail != "" {
		created, err := services.NewAuthService(db, cfg.Auth.JWTSecret).
			SeedAdmin(context.Background(), cfg.Auth.AdminName, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)
		if err != nil {
			logger.Fatal("admin seeding failed", zap.Error(err))
		}
		logger.Info("admin account checked", zap.String("email", cfg.Auth.AdminEmail), zap.Bool("created", created))
	} else {
		logger.Warn("ADMIN_EMAIL not set, no admin account seeded")
	}
	if *seedOnly {
		return
	}

	gin.SetMode(gin.ReleaseMode)
	r := routes.NewRouter(db, cfg)

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "Content-Disposition"},
		MaxAge:         600,
	}).Handler(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("starting server", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
}
