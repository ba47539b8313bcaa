// Package wire assembles the application's dependency graph.
package wire

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/wire"

	"github.com/sevigo/pr-warden/internal/app"
	"github.com/sevigo/pr-warden/internal/config"
	"github.com/sevigo/pr-warden/internal/core"
	"github.com/sevigo/pr-warden/internal/github"
	"github.com/sevigo/pr-warden/internal/jobs"
	"github.com/sevigo/pr-warden/internal/llm"
	"github.com/sevigo/pr-warden/internal/logger"
	"github.com/sevigo/pr-warden/internal/review"
	"github.com/sevigo/pr-warden/internal/server"
)

// PipelineSet builds a review pipeline from configuration and a host client factory.
var PipelineSet = wire.NewSet(
	llm.NewPromptManager,
	provideLLMClient,
	provideReviewPrompts,
	providePipelineOptions,
	review.NewPipeline,
	wire.Bind(new(review.Prompts), new(*llm.ReviewPrompts)),
)

// AppSet builds the webhook service.
var AppSet = wire.NewSet(
	PipelineSet,
	config.LoadConfig,
	provideLoggerConfig,
	provideLogWriter,
	logger.NewLogger,
	provideHostClientFactory,
	jobs.NewReviewJob,
	provideDispatcher,
	server.NewServer,
	app.NewApp,
	wire.Bind(new(jobs.EventHandler), new(*review.Pipeline)),
	wire.Bind(new(app.HTTPServer), new(*server.Server)),
)

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogWriter(cfg logger.Config) (io.Writer, func(), error) {
	return logger.NewWriter(cfg)
}

// provideHostClientFactory selects the authentication strategy.
func provideHostClientFactory(ctx context.Context, cfg *config.Config, logger *slog.Logger) (core.HostClientFactory, error) {
	gh := cfg.GitHub
	switch gh.AuthMode {
	case config.AuthModeApp:
		logger.Info("authenticating as GitHub App", "app_id", gh.AppID)
		return github.NewInstallationFactory(gh.AppID, gh.PrivateKeyPath, gh.APIURL, gh.RequestTimeout, logger)
	case config.AuthModeToken:
		logger.Info("authenticating with a personal access token")
		return github.NewTokenFactory(ctx, gh.Token, gh.APIURL, gh.RequestTimeout, logger)
	default:
		return nil, fmt.Errorf("unsupported GitHub auth mode: %q", gh.AuthMode)
	}
}

func provideLLMClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (core.LLMClient, error) {
	return llm.NewClient(ctx, cfg.AI, logger)
}

func provideReviewPrompts(pm *llm.PromptManager, cfg *config.Config) *llm.ReviewPrompts {
	return llm.NewReviewPrompts(pm, cfg.AI.LLMProvider)
}

func providePipelineOptions(cfg *config.Config) review.Options {
	r := cfg.Review
	return review.Options{
		RiskThreshold:          r.RiskThreshold,
		AutoApprove:            r.AutoApprove,
		ValidateAnchors:        r.ValidateAnchors,
		SummaryTemperature:     r.SummaryTemperature,
		CritiqueTemperature:    r.CritiqueTemperature,
		MaxConcurrentCritiques: r.MaxCritiqueWorkers,
		FetchTimeout:           r.FetchTimeout,
		LLMTimeout:             r.LLMTimeout,
		HostTimeout:            r.HostTimeout,
		CustomInstructions:     r.CustomInstructions,
	}
}

// provideDispatcher ties the worker pool's lifetime to the injector cleanup.
func provideDispatcher(job core.Job, cfg *config.Config, logger *slog.Logger) (core.JobDispatcher, func()) {
	d := jobs.NewDispatcher(job, cfg.Jobs.MaxWorkers, cfg.Jobs.QueueSize, logger)
	return d, d.Stop
}
