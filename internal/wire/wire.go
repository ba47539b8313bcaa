//go:build wireinject
// +build wireinject

package wire

import (
	"context"
	"log/slog"

	"github.com/google/wire"

	"github.com/sevigo/pr-warden/internal/app"
	"github.com/sevigo/pr-warden/internal/config"
	"github.com/sevigo/pr-warden/internal/core"
	"github.com/sevigo/pr-warden/internal/review"
)

// InitializeApp wires the webhook service.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	wire.Build(AppSet)
	return &app.App{}, nil, nil
}

// InitializePipeline wires a pipeline around an externally chosen host client
// factory, as the CLI does for one-shot and dry runs.
func InitializePipeline(ctx context.Context, cfg *config.Config, hosts core.HostClientFactory, logger *slog.Logger) (*review.Pipeline, error) {
	wire.Build(PipelineSet)
	return &review.Pipeline{}, nil
}
