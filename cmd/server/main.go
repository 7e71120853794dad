package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/healthforge/healthforge/internal/catalog"
	"github.com/healthforge/healthforge/internal/config"
	"github.com/healthforge/healthforge/internal/database"
	"github.com/healthforge/healthforge/internal/handlers"
	"github.com/healthforge/healthforge/internal/logging"
	"github.com/healthforge/healthforge/internal/middleware"
	"github.com/healthforge/healthforge/internal/search"
	"github.com/healthforge/healthforge/internal/services/kit"
)

func main() {
	if err := run(); err != nil {
		logging.Error("Application error", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
}

func run() error {
	logger := logging.New()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cfg.Server.Debug {
		logger.SetLevel(logging.LevelDebug)
		logging.SetDefaultLevel(logging.LevelDebug)
	}

	logger.Info("Starting HealthForge server...")

	logger.Info("Connecting to PostgreSQL", map[string]interface{}{
		"host": cfg.Database.Host,
		"port": cfg.Database.Port,
	})
	db, err := database.NewPostgresDB(cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	migrator, err := database.NewMigrator(cfg.Database.DSN(), "migrations")
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	if err := migrator.Up(); err != nil {
		_ = migrator.Close()
		return fmt.Errorf("running migrations: %w", err)
	}
	_ = migrator.Close()

	logger.Info("Connecting to Redis", map[string]interface{}{
		"addr": cfg.Redis.Addr(),
	})
	redisDB, err := database.NewRedisDB(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer func() { _ = redisDB.Close() }()

	store := catalog.NewStore(catalog.NewPoolAdapter(db.Pool))

	var searcher search.Searcher
	switch cfg.Search.Backend {
	case "algolia":
		searcher = search.NewAlgoliaClient(cfg.Search)
	default:
		searcher = store
	}
	logger.Info("Search backend selected", map[string]interface{}{
		"backend": cfg.Search.Backend,
	})

	engine := kit.NewEngine(searcher)

	healthHandler := handlers.NewHealthHandler(db, redisDB)
	kitHandler := handlers.NewKitHandler(engine)
	catalogHandler := handlers.NewCatalogHandler(store)
	optionsHandler := handlers.NewOptionsHandler()

	securityHeaders := middleware.NewSecurityHeaders(cfg.Server.Secure)
	requestLogger := middleware.NewRequestLogger(logger)
	kitRateLimiter := middleware.NewKitRateLimiter(redisDB.Client, cfg.RateLimit.KitRequests, cfg.RateLimit.KitWindow)

	router := mux.NewRouter()

	// Health endpoints (no rate limit)
	router.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)
	router.HandleFunc("/ready", healthHandler.Ready).Methods(http.MethodGet)
	router.HandleFunc("/live", healthHandler.Live).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.Handle("/kit", kitRateLimiter.Limit(http.HandlerFunc(kitHandler.Build))).Methods(http.MethodPost)
	api.HandleFunc("/catalog", catalogHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/options", optionsHandler.Get).Methods(http.MethodGet)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	var handler http.Handler = router
	handler = corsHandler.Handler(handler)
	handler = securityHeaders.Apply(handler)
	handler = requestLogger.Apply(handler)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("Server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Could not gracefully shutdown the server", map[string]interface{}{
				"error": err.Error(),
			})
		}
		close(done)
	}()

	logger.Info("Server listening", map[string]interface{}{
		"addr": addr,
	})
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	<-done
	logger.Info("Server stopped")
	return nil
}
