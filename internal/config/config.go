package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/pr-warden/internal/logger"
)

// Authentication modes for the GitHub host client.
const (
	AuthModeToken = "token"
	AuthModeApp   = "app"
)

// Supported LLM providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
	ProviderGemini    = "gemini"
)

// Config holds the application's configuration values.
type Config struct {
	Server  ServerConfig
	GitHub  GitHubConfig
	AI      AIConfig
	Review  ReviewConfig
	Jobs    JobsConfig
	Logging logger.Config
}

// ServerConfig configures the webhook HTTP server.
type ServerConfig struct {
	Port string
}

// GitHubConfig selects and configures the host authentication strategy.
type GitHubConfig struct {
	AuthMode       string
	Token          string
	AppID          int64
	PrivateKeyPath string
	WebhookSecret  string
	APIURL         string
	RequestTimeout time.Duration
}

// AIConfig configures the completion backend.
type AIConfig struct {
	LLMProvider      string
	Model            string
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	AnthropicAPIKey  string
	AnthropicBaseURL string
	GeminiAPIKey     string
	OllamaHost       string
	MaxTokens        int
}

// ReviewConfig holds the tunables of the review pipeline.
type ReviewConfig struct {
	RiskThreshold       int
	AutoApprove         bool
	ValidateAnchors     bool
	SummaryTemperature  float64
	CritiqueTemperature float64
	MaxCritiqueWorkers  int
	FetchTimeout        time.Duration
	LLMTimeout          time.Duration
	HostTimeout         time.Duration
	PolicyPath          string
	CustomInstructions  []string
}

// JobsConfig sizes the webhook worker pool.
type JobsConfig struct {
	MaxWorkers int
	QueueSize  int
}

var defaultModels = map[string]string{
	ProviderOpenAI:    "gpt-4",
	ProviderAnthropic: "claude-3-5-sonnet-latest",
	ProviderOllama:    "gemma3:latest",
	ProviderGemini:    "gemini-2.5-flash",
}

func setDefaults() {
	viper.SetDefault("SERVER_PORT", "6000")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("LOG_OUTPUT", "stdout")

	viper.SetDefault("GITHUB_AUTH_MODE", AuthModeToken)
	viper.SetDefault("GITHUB_PRIVATE_KEY_PATH", "keys/pr-warden.private-key.pem")
	viper.SetDefault("GITHUB_API_URL", "https://api.github.com")
	viper.SetDefault("HOST_TIMEOUT", "30s")

	viper.SetDefault("LLM_PROVIDER", ProviderOpenAI)
	viper.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	viper.SetDefault("LLM_MAX_TOKENS", 4096)

	viper.SetDefault("REVIEW_RISK_THRESHOLD", 10)
	viper.SetDefault("REVIEW_AUTO_APPROVE", true)
	viper.SetDefault("REVIEW_VALIDATE_ANCHORS", true)
	viper.SetDefault("SUMMARY_TEMPERATURE", 0.2)
	viper.SetDefault("CRITIQUE_TEMPERATURE", 0.2)
	viper.SetDefault("MAX_CRITIQUE_WORKERS", 4)
	viper.SetDefault("FETCH_TIMEOUT", "30s")
	viper.SetDefault("LLM_TIMEOUT", "2m")
	viper.SetDefault("REVIEW_POLICY_PATH", "")

	viper.SetDefault("MAX_WORKERS", 5)
	viper.SetDefault("QUEUE_SIZE", 100)
}

// LoadConfig reads configuration from environment variables and a .env file,
// sets sensible defaults, applies the optional review policy file and validates
// the result. Flags bound to viper by the CLI take precedence.
func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			slog.Debug("no .env file found, using environment only")
		} else {
			slog.Error("failed to read .env file", "error", err)
		}
	}

	provider := strings.ToLower(viper.GetString("LLM_PROVIDER"))
	model := viper.GetString("LLM_MODEL")
	if model == "" {
		model = defaultModels[provider]
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		GitHub: GitHubConfig{
			AuthMode:       strings.ToLower(viper.GetString("GITHUB_AUTH_MODE")),
			Token:          viper.GetString("GITHUB_TOKEN"),
			AppID:          viper.GetInt64("GITHUB_APP_ID"),
			PrivateKeyPath: viper.GetString("GITHUB_PRIVATE_KEY_PATH"),
			WebhookSecret:  viper.GetString("GITHUB_WEBHOOK_SECRET"),
			APIURL:         viper.GetString("GITHUB_API_URL"),
			RequestTimeout: viper.GetDuration("HOST_TIMEOUT"),
		},
		AI: AIConfig{
			LLMProvider:      provider,
			Model:            model,
			OpenAIAPIKey:     viper.GetString("OPENAI_API_KEY"),
			OpenAIBaseURL:    viper.GetString("OPENAI_BASE_URL"),
			AnthropicAPIKey:  viper.GetString("ANTHROPIC_API_KEY"),
			AnthropicBaseURL: viper.GetString("ANTHROPIC_BASE_URL"),
			GeminiAPIKey:     viper.GetString("GEMINI_API_KEY"),
			OllamaHost:       viper.GetString("OLLAMA_HOST"),
			MaxTokens:        viper.GetInt("LLM_MAX_TOKENS"),
		},
		Review: ReviewConfig{
			RiskThreshold:       viper.GetInt("REVIEW_RISK_THRESHOLD"),
			AutoApprove:         viper.GetBool("REVIEW_AUTO_APPROVE"),
			ValidateAnchors:     viper.GetBool("REVIEW_VALIDATE_ANCHORS"),
			SummaryTemperature:  viper.GetFloat64("SUMMARY_TEMPERATURE"),
			CritiqueTemperature: viper.GetFloat64("CRITIQUE_TEMPERATURE"),
			MaxCritiqueWorkers:  viper.GetInt("MAX_CRITIQUE_WORKERS"),
			FetchTimeout:        viper.GetDuration("FETCH_TIMEOUT"),
			LLMTimeout:          viper.GetDuration("LLM_TIMEOUT"),
			HostTimeout:         viper.GetDuration("HOST_TIMEOUT"),
			PolicyPath:          viper.GetString("REVIEW_POLICY_PATH"),
		},
		Jobs: JobsConfig{
			MaxWorkers: viper.GetInt("MAX_WORKERS"),
			QueueSize:  viper.GetInt("QUEUE_SIZE"),
		},
		Logging: logger.Config{
			Level:  strings.ToLower(viper.GetString("LOG_LEVEL")),
			Format: strings.ToLower(viper.GetString("LOG_FORMAT")),
			Output: strings.ToLower(viper.GetString("LOG_OUTPUT")),
		},
	}

	if cfg.Review.PolicyPath != "" {
		policy, err := LoadReviewPolicy(cfg.Review.PolicyPath)
		if err != nil {
			return nil, err
		}
		policy.Apply(&cfg.Review)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the loaded values are usable together.
func (c *Config) Validate() error {
	if err := c.GitHub.Validate(); err != nil {
		return err
	}
	if err := c.AI.Validate(); err != nil {
		return err
	}
	return c.Review.Validate()
}

// Validate checks the fields required by the selected authentication mode.
func (g GitHubConfig) Validate() error {
	switch g.AuthMode {
	case AuthModeToken:
		if g.Token == "" {
			return fmt.Errorf("GITHUB_TOKEN must be set when GITHUB_AUTH_MODE is %q", AuthModeToken)
		}
	case AuthModeApp:
		if g.AppID == 0 {
			return fmt.Errorf("GITHUB_APP_ID must be set when GITHUB_AUTH_MODE is %q", AuthModeApp)
		}
		if g.PrivateKeyPath == "" {
			return fmt.Errorf("GITHUB_PRIVATE_KEY_PATH must be set when GITHUB_AUTH_MODE is %q", AuthModeApp)
		}
	default:
		return fmt.Errorf("unsupported GITHUB_AUTH_MODE: %q", g.AuthMode)
	}
	return nil
}

// Validate checks that the provider is known and has its credentials.
func (a AIConfig) Validate() error {
	switch a.LLMProvider {
	case ProviderOpenAI:
		if a.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY must be set for the openai provider")
		}
	case ProviderAnthropic:
		if a.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY must be set for the anthropic provider")
		}
	case ProviderGemini:
		if a.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY must be set for the gemini provider")
		}
	case ProviderOllama:
		if a.OllamaHost == "" {
			return fmt.Errorf("OLLAMA_HOST must be set for the ollama provider")
		}
	default:
		return fmt.Errorf("unsupported LLM provider: %s", a.LLMProvider)
	}
	if a.Model == "" {
		return fmt.Errorf("LLM_MODEL must be set")
	}
	return nil
}

// Validate checks the pipeline tunables.
func (r ReviewConfig) Validate() error {
	if r.RiskThreshold < 0 {
		return fmt.Errorf("REVIEW_RISK_THRESHOLD must not be negative, got %d", r.RiskThreshold)
	}
	if r.SummaryTemperature < 0 || r.SummaryTemperature > 2 {
		return fmt.Errorf("SUMMARY_TEMPERATURE must be within [0, 2], got %g", r.SummaryTemperature)
	}
	if r.CritiqueTemperature < 0 || r.CritiqueTemperature > 2 {
		return fmt.Errorf("CRITIQUE_TEMPERATURE must be within [0, 2], got %g", r.CritiqueTemperature)
	}
	if r.MaxCritiqueWorkers < 1 {
		return fmt.Errorf("MAX_CRITIQUE_WORKERS must be at least 1, got %d", r.MaxCritiqueWorkers)
	}
	return nil
}
