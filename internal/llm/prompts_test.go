package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPromptManager_LoadsDefaults(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	for _, key := range []PromptKey{SystemPrompt, SummaryPrompt, CritiquePrompt} {
		_, err := pm.Get(key, DefaultProvider)
		assert.NoError(t, err, "missing default template for %s", key)
	}
}

func TestPromptManager_ProviderFallback(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	ollama, err := pm.Get(CritiquePrompt, "ollama")
	require.NoError(t, err)
	assert.Equal(t, "critique_ollama", ollama.Name())

	fallback, err := pm.Get(CritiquePrompt, "anthropic")
	require.NoError(t, err)
	assert.Equal(t, "critique_default", fallback.Name())

	_, err = pm.Get("unknown", DefaultProvider)
	assert.Error(t, err)
}

func TestPromptManager_MissingKeyFails(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)

	_, err = pm.Render(SummaryPrompt, DefaultProvider, map[string]string{})
	assert.Error(t, err)
}

func TestSplitPromptName(t *testing.T) {
	tests := []struct {
		in       string
		key      PromptKey
		provider ModelProvider
		ok       bool
	}{
		{"summary_default", SummaryPrompt, DefaultProvider, true},
		{"critique_ollama", CritiquePrompt, "ollama", true},
		{"multi_part_key_gemini", "multi_part_key", "gemini", true},
		{"nounderscore", "", "", false},
		{"_default", "", "", false},
		{"summary_", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			key, provider, ok := splitPromptName(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.provider, provider)
		})
	}
}

func TestReviewPrompts(t *testing.T) {
	pm, err := NewPromptManager()
	require.NoError(t, err)
	prompts := NewReviewPrompts(pm, "openai")

	t.Run("system", func(t *testing.T) {
		system, err := prompts.System()
		require.NoError(t, err)
		assert.Equal(t, "You are a helpful senior engineer.", system)
	})

	t.Run("summary", func(t *testing.T) {
		summary, err := prompts.Summary("File: a.go\n+x\n\n")
		require.NoError(t, err)
		assert.Equal(t, "Summarize the following pull request diff in plain English:\n\nFile: a.go\n+x\n\n\n", summary)
	})

	t.Run("critique without instructions", func(t *testing.T) {
		critique, err := prompts.Critique("a.go", "@@ -0,0 +1 @@\n+x", nil)
		require.NoError(t, err)
		assert.Contains(t, critique, "Line <line number in the new version of the file>: <comment>")
		assert.Contains(t, critique, "File: a.go\n@@ -0,0 +1 @@\n+x")
		assert.NotContains(t, critique, "Additional instructions")
		assert.Contains(t, critique, "reply with exactly: No findings.")
	})

	t.Run("critique with instructions", func(t *testing.T) {
		critique, err := prompts.Critique("a.go", "+x", []string{"Check error wrapping."})
		require.NoError(t, err)
		assert.Contains(t, critique, "Additional instructions:\n- Check error wrapping.")
	})

	t.Run("empty provider uses defaults", func(t *testing.T) {
		critique, err := NewReviewPrompts(pm, "").Critique("a.go", "+x", nil)
		require.NoError(t, err)
		assert.Contains(t, critique, "Review the following change to a.go")
	})

	t.Run("every critique template asks for an explicit no-findings reply", func(t *testing.T) {
		for _, provider := range []string{"", "ollama"} {
			critique, err := NewReviewPrompts(pm, provider).Critique("a.go", "+x", nil)
			require.NoError(t, err)
			assert.Contains(t, critique, "No findings.", "provider %q", provider)
		}
	})
}
