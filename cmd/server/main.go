package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/ReeseAstor/88Away-sub000/internal/auth"
	"github.com/ReeseAstor/88Away-sub000/internal/config"
	"github.com/ReeseAstor/88Away-sub000/internal/handler"
	"github.com/ReeseAstor/88Away-sub000/internal/middleware"
	"github.com/ReeseAstor/88Away-sub000/internal/repository/postgres"
	activityService "github.com/ReeseAstor/88Away-sub000/internal/service/activity"
	analyticsService "github.com/ReeseAstor/88Away-sub000/internal/service/analytics"
	"github.com/ReeseAstor/88Away-sub000/internal/service/publishing"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	logOut := io.Writer(os.Stdout)
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, config.MaxLogFiles)
		if err != nil {
			log.Fatalf("Failed to setup log file: %v", err)
		}
		defer logFile.Close()
		logOut = io.MultiWriter(os.Stdout, logFile)
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create JWT verifier
	jwtVerifier, err := auth.NewJWTVerifier(cfg.JWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Load AI pricing overrides
	pricing, err := config.LoadPricing(cfg.PricingFile)
	if err != nil {
		log.Fatalf("Failed to load pricing config: %v", err)
	}

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: postgres.NewTableNames(cfg.TablePrefix),
		Logger: logger,
	}
	analyticsStore := postgres.NewAnalyticsReader(repoConfig)
	activityRepo := postgres.NewActivityLogRepository(repoConfig)
	sessionRepo := postgres.NewWritingSessionRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Create services
	analyticsSvc := analyticsService.NewService(
		analyticsStore,
		publishing.Readiness,
		publishing.Attribute,
		analyticsService.Options{
			TokenCostRate: pricing.TokenCostRate,
			PersonaLabels: pricing.PersonaLabels,
			Timeout:       cfg.AnalyticsTimeout,
		},
		logger,
	)
	activitySvc := activityService.NewService(activityRepo, sessionRepo, txManager, logger)

	// Create handlers
	analyticsHandler := handler.NewAnalyticsHandler(analyticsSvc, logger)
	activityHandler := handler.NewActivityHandler(activitySvc, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", analyticsHandler.HealthCheck)

	// Analytics routes
	mux.HandleFunc("GET /api/projects/{id}/analytics", analyticsHandler.GetProjectAnalytics)

	// Write-path routes feeding the analytics read path
	mux.HandleFunc("POST /api/projects/{id}/activity", activityHandler.LogActivity)
	mux.HandleFunc("POST /api/projects/{id}/sessions", activityHandler.StartSession)
	mux.HandleFunc("POST /api/sessions/{id}/end", activityHandler.EndSession)

	// Build middleware chain
	var httpHandler http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	httpHandler = middleware.AuthMiddleware(jwtVerifier)(httpHandler)
	httpHandler = middleware.Recovery(logger)(httpHandler)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	httpHandler = corsHandler.Handler(httpHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
