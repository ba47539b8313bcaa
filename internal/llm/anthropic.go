package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/sevigo/pr-warden/internal/core"
)

const defaultAnthropicMaxTokens = 4096

type anthropicClient struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
	logger    *slog.Logger
}

// NewAnthropicClient returns a Messages API backed core.LLMClient. An empty
// baseURL uses the public API.
func NewAnthropicClient(apiKey, baseURL, model string, maxTokens int, logger *slog.Logger) core.LLMClient {
	limit := int64(maxTokens)
	if limit <= 0 {
		limit = defaultAnthropicMaxTokens
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &anthropicClient{
		client:    anthropic.NewClient(opts...),
		model:     anthropic.Model(model),
		maxTokens: limit,
		logger:    logger,
	}
}

func (c *anthropicClient) Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error) {
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt))},
		Temperature: anthropic.Float(temperature),
	})
	if err != nil {
		return "", fmt.Errorf("%w: anthropic completion: %w", core.ErrLLMUnavailable, err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			b.WriteString(text.Text)
		}
	}

	c.logger.Debug("anthropic completion finished", "model", c.model, "stop_reason", msg.StopReason)

	content := strings.TrimSpace(b.String())
	if content == "" {
		return "", fmt.Errorf("%w: anthropic returned no text content", core.ErrLLMUnavailable)
	}
	return content, nil
}
