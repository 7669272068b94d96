package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/vector-ai/vector-mcp-server/internal/http/health"
	"github.com/vector-ai/vector-mcp-server/internal/settings"
	"github.com/vector-ai/vector-mcp-server/internal/timeutil"
)

// App controls the HTTP server lifecycle.
type App struct {
	baseCtx         context.Context
	server          *http.Server
	health          *health.Handler
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// New initializes the HTTP server with the JSON-RPC handler, health
// endpoints and any extra routes.
func New(baseCtx context.Context, httpCfg settings.HTTPConfig, handler http.Handler, extra map[string]http.Handler, logger *slog.Logger, shutdownTimeout time.Duration) (*App, error) {
	if handler == nil {
		return nil, fmt.Errorf("handler is nil")
	}
	if baseCtx == nil {
		return nil, fmt.Errorf("base context is nil")
	}

	healthHandler := health.New()
	mux := http.NewServeMux()
	mux.Handle(httpCfg.Path, handler)
	mux.HandleFunc("/healthz", healthHandler.Healthz)
	mux.HandleFunc("/readyz", healthHandler.Readyz)
	for path, route := range extra {
		if strings.TrimSpace(path) == "" || route == nil {
			continue
		}
		mux.Handle(path, route)
	}

	srv := &http.Server{
		Addr:         httpCfg.Listen,
		Handler:      mux,
		ReadTimeout:  timeutil.ParseDurationOrDefault(httpCfg.ReadTimeout, 15*time.Second),
		WriteTimeout: timeutil.ParseDurationOrDefault(httpCfg.WriteTimeout, 15*time.Second),
		IdleTimeout:  timeutil.ParseDurationOrDefault(httpCfg.IdleTimeout, 60*time.Second),
	}

	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &App{
		baseCtx:         baseCtx,
		server:          srv,
		health:          healthHandler,
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.health.SetReady()
		if a.logger != nil {
			a.logger.Info("http server started", "addr", a.server.Addr)
		}
		errCh <- a.server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		if a.logger != nil {
			a.logger.Info("shutdown requested")
		}
		return a.shutdown()
	case err := <-errCh:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		if a.logger != nil {
			a.logger.Error("http server error", "error", err)
		}
		return err
	}
}

func (a *App) shutdown() error {
	a.health.SetNotReady()
	ctx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
