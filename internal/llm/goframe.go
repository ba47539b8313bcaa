package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/llms/gemini"
	"github.com/sevigo/goframe/llms/ollama"

	"github.com/sevigo/pr-warden/internal/core"
)

// goframeClient adapts a goframe model. goframe models take a single prompt, so
// the system prompt is prepended and the sampling temperature is the model's own.
type goframeClient struct {
	call   func(ctx context.Context, prompt string) (string, error)
	name   string
	logger *slog.Logger
}

// NewGoframeClient wraps an already constructed goframe model.
func NewGoframeClient(model llms.Model, name string, logger *slog.Logger) core.LLMClient {
	return &goframeClient{
		call: func(ctx context.Context, prompt string) (string, error) {
			return model.Call(ctx, prompt)
		},
		name:   name,
		logger: logger,
	}
}

// NewOllamaClient connects to a local Ollama server.
func NewOllamaClient(host, model string, logger *slog.Logger) (core.LLMClient, error) {
	m, err := ollama.New(
		ollama.WithServerURL(host),
		ollama.WithHTTPClient(newOllamaHTTPClient()),
		ollama.WithModel(model),
		ollama.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama model: %w", err)
	}
	return NewGoframeClient(m, model, logger), nil
}

// NewGeminiClient connects to the Gemini API.
func NewGeminiClient(ctx context.Context, apiKey, model string, logger *slog.Logger) (core.LLMClient, error) {
	m, err := gemini.New(ctx, gemini.WithModel(model), gemini.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini model: %w", err)
	}
	return NewGoframeClient(m, model, logger), nil
}

func (c *goframeClient) Complete(ctx context.Context, systemPrompt, userPrompt string, _ float64) (string, error) {
	prompt := userPrompt
	if systemPrompt != "" {
		prompt = systemPrompt + "\n\n" + userPrompt
	}

	type result struct {
		resp string
		err  error
	}
	resultCh := make(chan result, 1)

	go func() {
		resp, err := c.call(ctx, prompt)
		resultCh <- result{resp, err}
	}()

	// Not every goframe backend honours cancellation; stop waiting on ctx.
	select {
	case res := <-resultCh:
		if res.err != nil {
			return "", fmt.Errorf("%w: %s completion: %w", core.ErrLLMUnavailable, c.name, res.err)
		}
		content := strings.TrimSpace(res.resp)
		if content == "" {
			return "", fmt.Errorf("%w: %s returned an empty completion", core.ErrLLMUnavailable, c.name)
		}
		return content, nil
	case <-ctx.Done():
		c.logger.Warn("completion abandoned", "model", c.name, "error", ctx.Err())
		return "", fmt.Errorf("%w: %s completion: %w", core.ErrLLMUnavailable, c.name, ctx.Err())
	}
}

// newOllamaHTTPClient uses generous timeouts since local models can be slow.
func newOllamaHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxConnsPerHost:     10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
		Timeout: 15 * time.Minute,
	}
}
