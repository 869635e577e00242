package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	_ "github.com/charakka/opsboard/docs"
	"github.com/charakka/opsboard/internal/dashboard"
	httpDelivery "github.com/charakka/opsboard/internal/dashboard/delivery/http"
	"github.com/charakka/opsboard/internal/prefs"
	"github.com/charakka/opsboard/pkg/logger"
	"github.com/charakka/opsboard/pkg/tracing"

	"github.com/gorilla/mux"
)

func main() {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	serviceName := getEnv("SERVICE_NAME", "opsboard")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting dashboard")

	ctx := context.Background()

	if getEnvBool("TRACING_ENABLED", true) {
		tp, err := tracing.InitTracer(serviceName, os.Getenv("JAEGER_ENDPOINT"))
		if err != nil {
			logger.Logger.Warn().Err(err).Msg("Tracing disabled: failed to initialize tracer")
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tracing.Shutdown(shutdownCtx, tp); err != nil {
					logger.Logger.Warn().Err(err).Msg("Failed to shut down tracer")
				}
			}()
		}
	}

	store := buildPrefsStore()
	strictPrice := dashboard.StrictPrice(getEnvBool("STRICT_PRICE", false))

	handler := dashboard.InitializeDashboardHandler(ctx, store, strictPrice)

	logger.Logger.Info().
		Bool("strict_price", bool(strictPrice)).
		Msg("Dashboard session initialized")

	httpPort := getEnv("HTTP_PORT", "8090")
	startHTTPServer(handler, httpPort)
}

func startHTTPServer(handler *httpDelivery.DashboardHandler, port string) {
	router := mux.NewRouter()

	config := httpDelivery.DefaultMiddlewareConfig()
	httpDelivery.RegisterMiddlewares(router, config)

	handler.RegisterRoutes(router)
	handler.RegisterHealthCheck(router)
	httpDelivery.RegisterSwaggerDocs(router)

	router.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    ":" + port,
		Handler: httpDelivery.SetupCORS(config)(router),
	}

	go func() {
		logger.Logger.Info().
			Str("port", port).
			Str("metrics_endpoint", "/metrics").
			Str("swagger_endpoint", "/swagger/index.html").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced server shutdown")
	}
}

// buildPrefsStore selects the preference backend. The file store is the
// default; Redis is for deployments that already run one; memory keeps
// nothing across restarts.
func buildPrefsStore() prefs.Store {
	backend := getEnv("PREFS_BACKEND", "file")
	switch backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
		})
		logger.Logger.Info().Str("backend", "redis").Msg("Preference store configured")
		return prefs.NewRedisStore(client)
	case "memory":
		logger.Logger.Info().Str("backend", "memory").Msg("Preference store configured")
		return prefs.NewMemoryStore()
	default:
		path := getEnv("PREFS_FILE", "opsboard_prefs.json")
		logger.Logger.Info().Str("backend", "file").Str("path", path).Msg("Preference store configured")
		return prefs.NewFileStore(path)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
