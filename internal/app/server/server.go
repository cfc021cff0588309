package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"timetally/internal/platform/config"
	"timetally/internal/platform/metrics"
	"timetally/internal/transport/http/api"
	workhourshandler "timetally/internal/transport/http/handlers/workhours"
	"timetally/internal/transport/http/middleware"
)

// Run wires the API server (and, when enabled, the metrics sidecar) and
// blocks until SIGINT/SIGTERM, then drains in-flight requests.
func Run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	collector := metrics.New()

	apiServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(cfg, logger, collector),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("api server listening", zap.String("addr", cfg.Addr))
		if err := apiServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var metricsServer *http.Server
	if cfg.MetricsEnabled {
		metricsServer = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           newMetricsRouter(collector),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("metrics server listening", zap.String("addr", cfg.MetricsAddr))
			if err := metricsServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("api shutdown", zap.Error(err))
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics shutdown", zap.Error(err))
		}
	}
	return nil
}

func newRouter(cfg config.Config, logger *zap.Logger, collector *metrics.Collector) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger, collector))
	router.Use(middleware.Recoverer(logger))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.AuthSecret))
		workhourshandler.NewHandler(logger).RegisterRoutes(r)
	})

	return router
}

func newMetricsRouter(collector *metrics.Collector) http.Handler {
	router := chi.NewRouter()
	router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		_ = api.WriteJSON(w, http.StatusOK, collector.Snapshot())
	})
	return router
}
