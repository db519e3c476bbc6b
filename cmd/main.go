package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/fisa/internal/adapters/http/api"
	"github.com/okian/fisa/internal/adapters/http/site"
	"github.com/okian/fisa/internal/adapters/http/swagger"
	"github.com/okian/fisa/internal/config"
	"github.com/okian/fisa/pkg/logger"
	"github.com/okian/fisa/pkg/metrics"
)

func main() {
	// Text logging until the configured format is known.
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> .env -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Get().Error(ctx, "failed to load config", logger.Error(err))
		os.Exit(1)
	}

	if err := logger.Init(logger.WithFormat(cfg.LogFormat)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	log := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if err := run(ctx, cfg, log); err != nil {
		log.Error(ctx, "server exited", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

// run serves until ctx is cancelled, then shuts the server down.
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	apiServer := api.NewServer(
		api.WithLogger(logger.Named("http")),
		api.WithMetricsPath(cfg.MetricsPath),
	)
	srv := newHTTPServer(cfg, apiServer.Handler(newMux(ctx, cfg, apiServer)))

	go startSystemMetricsUpdater(ctx, cfg.SystemMetricsInterval(), metrics.SampleSystem, logger.Named("metrics"))

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for shutdown signal or a listener failure.
	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info(ctx, "server stopped")
	return nil
}

// newMux registers every route on a fresh mux.
func newMux(ctx context.Context, cfg *config.Config, apiServer *api.Server) *http.ServeMux {
	mux := http.NewServeMux()
	apiServer.Register(ctx, mux)
	site.Register(ctx, mux)
	if cfg.DocsEnabled {
		swagger.Register(ctx, mux)
	}
	return mux
}

func newHTTPServer(cfg *config.Config, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadTimeout:       cfg.ReadTimeout(),
		WriteTimeout:      cfg.WriteTimeout(),
		IdleTimeout:       cfg.IdleTimeout(),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout(),
	}
}

// startSystemMetricsUpdater samples process and host metrics every interval
// until ctx is cancelled.
func startSystemMetricsUpdater(ctx context.Context, interval time.Duration, sample func(context.Context) error, log logger.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sample(ctx); err != nil {
				log.Warn(ctx, "system metrics sample failed", logger.Error(err))
			}
		}
	}
}
