package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"github.com/sevigo/pr-warden/internal/core"
)

// publicAPIURL is the default REST endpoint; anything else is treated as GitHub Enterprise.
const publicAPIURL = "https://api.github.com"

// newAPIClient builds a go-github client over httpClient, pointing it at an
// enterprise installation when baseURL is set.
func newAPIClient(httpClient *http.Client, baseURL string) (*github.Client, error) {
	client := github.NewClient(httpClient)
	baseURL = strings.TrimSuffix(baseURL, "/")
	if baseURL == "" || baseURL == publicAPIURL {
		return client, nil
	}
	enterprise, err := client.WithEnterpriseURLs(baseURL, baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid GitHub API URL %q: %w", baseURL, err)
	}
	return enterprise, nil
}

type tokenFactory struct {
	client core.HostClient
}

// NewTokenFactory authenticates every request with a single personal access token.
// The client is created once and shared across deliveries.
func NewTokenFactory(ctx context.Context, token, baseURL string, timeout time.Duration, logger *slog.Logger) (core.HostClientFactory, error) {
	if token == "" {
		return nil, fmt.Errorf("GitHub token is empty")
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = timeout

	client, err := newAPIClient(tc, baseURL)
	if err != nil {
		return nil, err
	}
	return &tokenFactory{client: NewGitHubClient(client, logger)}, nil
}

func (f *tokenFactory) ForInstallation(_ context.Context, _ int64) (core.HostClient, error) {
	return f.client, nil
}

type installationFactory struct {
	appClient *github.Client
	baseURL   string
	timeout   time.Duration
	logger    *slog.Logger
}

// NewInstallationFactory authenticates as a GitHub App and mints an installation
// token for every delivery.
func NewInstallationFactory(appID int64, privateKeyPath, baseURL string, timeout time.Duration, logger *slog.Logger) (core.HostClientFactory, error) {
	privateKey, err := os.ReadFile(privateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key from %s: %w", privateKeyPath, err)
	}

	appTransport, err := ghinstallation.NewAppsTransport(http.DefaultTransport, appID, privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub App transport: %w", err)
	}
	if trimmed := strings.TrimSuffix(baseURL, "/"); trimmed != "" && trimmed != publicAPIURL {
		appTransport.BaseURL = trimmed
	}

	appClient, err := newAPIClient(&http.Client{Transport: appTransport, Timeout: timeout}, baseURL)
	if err != nil {
		return nil, err
	}

	return &installationFactory{
		appClient: appClient,
		baseURL:   baseURL,
		timeout:   timeout,
		logger:    logger,
	}, nil
}

// ForInstallation exchanges the app JWT for an installation token and returns a
// client bound to it.
func (f *installationFactory) ForInstallation(ctx context.Context, installationID int64) (core.HostClient, error) {
	if installationID <= 0 {
		return nil, fmt.Errorf("%w: installation ID is missing from the event", core.ErrHostUnavailable)
	}

	token, _, err := f.appClient.Apps.CreateInstallationToken(ctx, installationID, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create installation token for %d: %w", core.ErrHostUnavailable, installationID, err)
	}
	if token.GetToken() == "" {
		return nil, fmt.Errorf("%w: received an empty installation token", core.ErrHostUnavailable)
	}
	f.logger.Debug("created installation token", "installation_id", installationID, "expires_at", token.GetExpiresAt())

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token.GetToken()})
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = f.timeout

	client, err := newAPIClient(tc, f.baseURL)
	if err != nil {
		return nil, err
	}
	return NewGitHubClient(client, f.logger), nil
}
