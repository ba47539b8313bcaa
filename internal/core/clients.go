package core

import (
	"context"
	"errors"
)

var (
	// ErrHostUnavailable wraps any failed call to the source-control host.
	ErrHostUnavailable = errors.New("host unavailable")
	// ErrLLMUnavailable wraps any failed completion call.
	ErrLLMUnavailable = errors.New("llm unavailable")
)

// HostClient is the subset of the source-control host API used by the review pipeline.
//
//go:generate mockgen -destination=../../mocks/mock_host_client.go -package=mocks . HostClient,HostClientFactory
type HostClient interface {
	FetchChangedFiles(ctx context.Context, owner, repo string, number int) ([]ChangedFile, error)
	PostIssueComment(ctx context.Context, owner, repo string, number int, body string) error
	SubmitReview(ctx context.Context, owner, repo string, number int, headSHA string, decision ReviewDecision) error
}

// HostClientFactory yields a HostClient authenticated for a given app installation.
// Token-based factories ignore the installation ID.
type HostClientFactory interface {
	ForInstallation(ctx context.Context, installationID int64) (HostClient, error)
}

// LLMClient is a black-box completion service: prompt text in, free text out.
//
//go:generate mockgen -destination=../../mocks/mock_llm_client.go -package=mocks . LLMClient
type LLMClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, temperature float64) (string, error)
}
