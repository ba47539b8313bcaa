package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/pr-warden/internal/config"
	"github.com/sevigo/pr-warden/internal/core"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenAIClient_Complete(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"chatcmpl-1","object":"chat.completion","created":1,"model":"gpt-4",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"  Line 3: typo\n"}}],
			"usage":{"prompt_tokens":5,"completion_tokens":3,"total_tokens":8}}`)
	}))
	defer server.Close()

	client := NewOpenAIClient("sk-test", server.URL, "gpt-4", 256, discardLogger())
	out, err := client.Complete(context.Background(), "persona", "critique this", 0.2)
	require.NoError(t, err)
	assert.Equal(t, "Line 3: typo", out)

	assert.Equal(t, "gpt-4", body["model"])
	assert.InDelta(t, 0.2, body["temperature"], 1e-9)
	assert.EqualValues(t, 256, body["max_tokens"])
	messages, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "user", messages[1].(map[string]any)["role"])
}

func TestOpenAIClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{"bad request", http.StatusBadRequest, `{"error":{"message":"bad model","type":"invalid_request_error"}}`},
		{"no choices", http.StatusOK, `{"id":"x","object":"chat.completion","created":1,"model":"gpt-4","choices":[]}`},
		{"empty content", http.StatusOK, `{"id":"x","object":"chat.completion","created":1,"model":"gpt-4",
			"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"   "}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				fmt.Fprint(w, tt.payload)
			}))
			defer server.Close()

			client := NewOpenAIClient("sk-test", server.URL, "gpt-4", 0, discardLogger())
			_, err := client.Complete(context.Background(), "s", "u", 0.2)
			assert.ErrorIs(t, err, core.ErrLLMUnavailable)
		})
	}
}

func TestAnthropicClient_Complete(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-ant", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"msg_1","type":"message","role":"assistant","model":"claude-3-5-sonnet-latest",
			"content":[{"type":"text","text":"The change adds "},{"type":"text","text":"a helper."}],
			"stop_reason":"end_turn","usage":{"input_tokens":10,"output_tokens":5}}`)
	}))
	defer server.Close()

	client := NewAnthropicClient("sk-ant", server.URL, "claude-3-5-sonnet-latest", 0, discardLogger())
	out, err := client.Complete(context.Background(), "persona", "summarize", 0.2)
	require.NoError(t, err)
	assert.Equal(t, "The change adds a helper.", out)

	assert.EqualValues(t, defaultAnthropicMaxTokens, body["max_tokens"])
	assert.InDelta(t, 0.2, body["temperature"], 1e-9)
	system, ok := body["system"].([]any)
	require.True(t, ok)
	assert.Equal(t, "persona", system[0].(map[string]any)["text"])
}

func TestAnthropicClient_ErrorWrapsSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"type":"error","error":{"type":"invalid_request_error","message":"bad"}}`)
	}))
	defer server.Close()

	client := NewAnthropicClient("sk-ant", server.URL, "m", 100, discardLogger())
	_, err := client.Complete(context.Background(), "s", "u", 0)
	assert.ErrorIs(t, err, core.ErrLLMUnavailable)
}

func newFuncClient(fn func(ctx context.Context, prompt string) (string, error)) core.LLMClient {
	return &goframeClient{call: fn, name: "test-model", logger: discardLogger()}
}

func TestGoframeClient_Complete(t *testing.T) {
	t.Run("prepends the system prompt", func(t *testing.T) {
		var got string
		client := newFuncClient(func(_ context.Context, prompt string) (string, error) {
			got = prompt
			return " summary \n", nil
		})

		out, err := client.Complete(context.Background(), "persona", "task", 0.2)
		require.NoError(t, err)
		assert.Equal(t, "summary", out)
		assert.Equal(t, "persona\n\ntask", got)
	})

	t.Run("model error", func(t *testing.T) {
		client := newFuncClient(func(context.Context, string) (string, error) {
			return "", errors.New("connection refused")
		})
		_, err := client.Complete(context.Background(), "", "task", 0)
		assert.ErrorIs(t, err, core.ErrLLMUnavailable)
	})

	t.Run("empty completion", func(t *testing.T) {
		client := newFuncClient(func(context.Context, string) (string, error) { return "\n", nil })
		_, err := client.Complete(context.Background(), "", "task", 0)
		assert.ErrorIs(t, err, core.ErrLLMUnavailable)
	})

	t.Run("stops waiting on cancellation", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)
		client := newFuncClient(func(context.Context, string) (string, error) {
			<-release
			return "late", nil
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err := client.Complete(ctx, "", "task", 0)
		assert.ErrorIs(t, err, core.ErrLLMUnavailable)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestNewClient_UnsupportedProvider(t *testing.T) {
	_, err := NewClient(context.Background(), config.AIConfig{LLMProvider: "mystery"}, discardLogger())
	assert.Error(t, err)
}

func TestNewClient_OpenAI(t *testing.T) {
	client, err := NewClient(context.Background(), config.AIConfig{
		LLMProvider:  config.ProviderOpenAI,
		Model:        "gpt-4",
		OpenAIAPIKey: "sk-test",
	}, discardLogger())
	require.NoError(t, err)
	assert.IsType(t, &openAIClient{}, client)
}
