// Package app holds the lifecycle of the webhook service: the HTTP server in
// front and the review worker pool behind it.
package app

import (
	"context"
	"log/slog"

	"github.com/sevigo/pr-warden/internal/config"
	"github.com/sevigo/pr-warden/internal/core"
)

// HTTPServer is the part of server.Server the App drives.
type HTTPServer interface {
	Start() error
	Stop(ctx context.Context) error
}

// App holds the main application components.
type App struct {
	cfg        *config.Config
	server     HTTPServer
	dispatcher core.JobDispatcher
	logger     *slog.Logger
}

// NewApp assembles an App from already constructed components.
func NewApp(cfg *config.Config, server HTTPServer, dispatcher core.JobDispatcher, logger *slog.Logger) *App {
	return &App{
		cfg:        cfg,
		server:     server,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Start runs the HTTP server and blocks until it stops.
func (a *App) Start() error {
	a.logger.Info("starting PR Warden",
		"server_port", a.cfg.Server.Port,
		"auth_mode", a.cfg.GitHub.AuthMode,
		"llm_provider", a.cfg.AI.LLMProvider,
		"model", a.cfg.AI.Model,
		"max_workers", a.cfg.Jobs.MaxWorkers,
		"risk_threshold", a.cfg.Review.RiskThreshold)

	if err := a.server.Start(); err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}
	return nil
}

// Stop shuts down the application cleanly. The server stops first so no new
// deliveries are accepted, then queued reviews are allowed to finish.
func (a *App) Stop(ctx context.Context) error {
	a.logger.Info("shutting down PR Warden services")

	serverErr := a.server.Stop(ctx)
	if serverErr != nil {
		a.logger.Error("error during HTTP server shutdown", "error", serverErr)
	}

	a.dispatcher.Stop()

	if serverErr != nil {
		a.logger.Error("PR Warden stopped with errors", "error", serverErr)
		return serverErr
	}

	a.logger.Info("PR Warden stopped successfully")
	return nil
}
