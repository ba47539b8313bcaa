// Package llm adapts completion backends to core.LLMClient and renders the
// prompts of the review pipeline.
package llm

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sevigo/pr-warden/internal/config"
	"github.com/sevigo/pr-warden/internal/core"
)

// NewClient creates the completion client for the configured provider.
func NewClient(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (core.LLMClient, error) {
	logger.Info("using LLM provider", "provider", cfg.LLMProvider, "model", cfg.Model)

	switch cfg.LLMProvider {
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.Model, cfg.MaxTokens, logger), nil
	case config.ProviderAnthropic:
		return NewAnthropicClient(cfg.AnthropicAPIKey, cfg.AnthropicBaseURL, cfg.Model, cfg.MaxTokens, logger), nil
	case config.ProviderOllama:
		return NewOllamaClient(cfg.OllamaHost, cfg.Model, logger)
	case config.ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set")
		}
		return NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.Model, logger)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.LLMProvider)
	}
}
