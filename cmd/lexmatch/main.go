package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/lexmatch-io/lexmatch/internal/annotator/english"
	"github.com/lexmatch-io/lexmatch/internal/config"
	"github.com/lexmatch-io/lexmatch/internal/db"
	dbRedis "github.com/lexmatch-io/lexmatch/internal/db/redis"
	"github.com/lexmatch-io/lexmatch/internal/domain"
	logpkg "github.com/lexmatch-io/lexmatch/internal/logger"
	"github.com/lexmatch-io/lexmatch/internal/metrics"
	"github.com/lexmatch-io/lexmatch/internal/repository/anncache"
	chiTransport "github.com/lexmatch-io/lexmatch/internal/transport/chi"
	openaiAnn "github.com/lexmatch-io/lexmatch/internal/transport/openai"
	analysisuc "github.com/lexmatch-io/lexmatch/internal/usecase/analysis"
	"github.com/lexmatch-io/lexmatch/internal/usecase/annotation"
	healthuc "github.com/lexmatch-io/lexmatch/internal/usecase/health"
	"github.com/lexmatch-io/lexmatch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting lexmatch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("annotator_provider", cfg.Annotator.Provider),
		zap.Strings("cache_addrs", cfg.Cache.Addrs),
	)

	// Annotation cache store is optional: no addrs means no cache.
	ctx := context.Background()
	var store db.Store
	if len(cfg.Cache.Addrs) > 0 {
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create cache store", zap.Error(err))
		}
		defer store.Close()

		if err := store.WaitForReady(ctx, time.Duration(cfg.Cache.ReadinessTimeout)*time.Second); err != nil {
			logger.Fatal("Cache store not ready", zap.Error(err))
		}
		logger.Info("Connected to annotation cache")
	}

	// Register annotator metrics explicitly (no init())
	metrics.RegisterAnnotatorMetrics()

	annotator := buildAnnotator(cfg.Annotator, cfg.Cache, store, logger)
	logger.Info("Annotator created", zap.String("provider", cfg.Annotator.Provider))

	// Use case services
	analysisSvc := analysisuc.New(annotator).WithMaxInputBytes(cfg.Annotator.MaxInputBytes)
	healthSvc := healthuc.New(newAnnotatorHealthChecker(annotator), dbPinger(store))

	// Create chi server
	server := chiTransport.NewServer(analysisSvc, annotator, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// dbPinger converts a possibly-nil store into a health check dependency.
// Go gotcha: a typed nil wrapped in an interface is not == nil.
func dbPinger(store db.Store) healthuc.DBPinger {
	if store == nil {
		return nil
	}
	return store
}

// annotatorHealthChecker wraps domain.Annotator to implement health.AnnotatorChecker.
type annotatorHealthChecker struct {
	annotator domain.Annotator
}

func newAnnotatorHealthChecker(annotator domain.Annotator) *annotatorHealthChecker {
	return &annotatorHealthChecker{annotator: annotator}
}

func (h *annotatorHealthChecker) HealthCheck(ctx context.Context) error {
	if hc, ok := h.annotator.(domain.HealthChecker); ok {
		if err := hc.HealthCheck(ctx); err != nil {
			return fmt.Errorf("annotator health check: %w", err)
		}
	}
	return nil
}

// buildAnnotator assembles the decorator chain: provider -> Cached -> Instrumented
func buildAnnotator(
	annCfg config.AnnotatorConfig,
	cacheCfg config.CacheConfig,
	store db.Store,
	logger *zap.Logger,
) domain.Annotator {
	// Base provider (with transport metrics built-in)
	var base domain.Annotator
	switch annCfg.Provider {
	case "openai":
		base = openaiAnn.NewAnnotator(&openaiAnn.Config{
			APIKey:   annCfg.OpenAI.APIKey,
			BaseURL:  annCfg.OpenAI.BaseURL,
			Model:    annCfg.OpenAI.Model,
			Provider: annCfg.Provider,
			Logger:   logger,
		})
	default:
		base = english.New()
	}

	// Cached
	annotator := base
	if store != nil {
		ttl := time.Duration(cacheCfg.TTLHours) * time.Hour
		annotator = anncache.New(base, store, annCfg.Provider, ttl, metrics.AnnotationCacheTotal, logger)
	}

	// Instrumented (logging, outermost)
	return annotation.NewInstrumentedAnnotator(annotator, annCfg.Provider, logger)
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
