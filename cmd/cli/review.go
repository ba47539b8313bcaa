package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sevigo/pr-warden/internal/config"
	"github.com/sevigo/pr-warden/internal/core"
	"github.com/sevigo/pr-warden/internal/github"
	"github.com/sevigo/pr-warden/internal/logger"
	"github.com/sevigo/pr-warden/internal/review"
	"github.com/sevigo/pr-warden/internal/wire"
)

var (
	dryRun  bool
	verbose bool
)

var reviewCmd = &cobra.Command{
	Use:   "review [pr-url]",
	Short: "Run one review cycle for a GitHub pull request",
	Long: `Run one review cycle for a GitHub pull request.

The review command fetches the changed files, posts an AI summary, and either
auto-approves small changes or submits inline findings. With --dry-run nothing
is posted; the summary and the review are printed instead.

Examples:
  warden-cli review https://github.com/owner/repo/pull/123
  warden-cli review --dry-run owner/repo#123`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() { //nolint:gochecknoinits // Cobra command registration
	reviewCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the summary and review instead of posting them")
	reviewCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the pipeline trace and timing")
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ref, err := github.ParsePullRequestURL(args[0])
	if err != nil {
		return fmt.Errorf("invalid PR URL: %w\n\nExpected format: https://github.com/owner/repo/pull/123", err)
	}

	// The CLI always acts with the caller's token.
	viper.Set("GITHUB_AUTH_MODE", config.AuthModeToken)
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w\n\nTip: set GITHUB_TOKEN and the key of your LLM provider", err)
	}

	log := logger.NewLogger(cfg.Logging, os.Stderr)

	hosts, err := github.NewTokenFactory(ctx, cfg.GitHub.Token, cfg.GitHub.APIURL, cfg.GitHub.RequestTimeout, log)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	var recorder *recordingFactory
	if dryRun {
		recorder = newRecordingFactory(hosts)
		hosts = recorder
	}

	pipeline, err := wire.InitializePipeline(ctx, cfg, hosts, log)
	if err != nil {
		return fmt.Errorf("failed to initialize review pipeline: %w", err)
	}

	titleColor.Println("PR Warden review")
	dimColor.Printf("   Target: %s\n", ref)
	if dryRun {
		warnColor.Println("   Dry run: nothing will be posted")
	}
	fmt.Println()

	start := time.Now()
	res := pipeline.HandleEvent(ctx, &core.ReviewEvent{
		EventType:    core.PullRequestEventType,
		Action:       "opened",
		RepoOwner:    ref.Owner,
		RepoName:     ref.Repo,
		RepoFullName: ref.Owner + "/" + ref.Repo,
		PRNumber:     ref.Number,
	})

	if recorder != nil {
		printRecorded(recorder.host)
	}
	printResult(res, verbose, time.Since(start))

	if res.State == review.StateAborted {
		return fmt.Errorf("review aborted: %w", res.Err)
	}
	return nil
}
