package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	githubToken string
	llmProvider string
	llmModel    string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "warden-cli",
	Short: "warden-cli is the command-line interface for PR Warden.",
	Long:  `A CLI for running PR Warden reviews outside the webhook server, for example against a single pull request or as a dry run.`,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&githubToken, "github-token", "t", "", "GitHub token")
	flags.StringVar(&llmProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama, gemini)")
	flags.StringVar(&llmModel, "model", "", "LLM model name")
	flags.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	bindings := map[string]string{
		"GITHUB_TOKEN": "github-token",
		"LLM_PROVIDER": "llm-provider",
		"LLM_MODEL":    "model",
		"LOG_LEVEL":    "log-level",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
			slog.Error("Error binding flag", "flag", flag, "error", err)
			os.Exit(1)
		}
	}
}

// initConfig lets dashed environment names map onto config keys.
func initConfig() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
