// Package core defines the essential interfaces and data structures that form the
// backbone of the application. These components are designed to be abstract,
// allowing for flexible and decoupled implementations of the application's logic.
package core

import (
	"fmt"

	"github.com/google/go-github/v73/github"
)

// PullRequestEventType is the X-GitHub-Event value the review pipeline reacts to.
const PullRequestEventType = "pull_request"

// reviewableActions lists the pull_request actions that trigger a review cycle.
var reviewableActions = map[string]struct{}{
	"opened":      {},
	"synchronize": {},
	"edited":      {},
}

// IsReviewable reports whether an event type and action pair should start a review.
func IsReviewable(eventType, action string) bool {
	if eventType != PullRequestEventType {
		return false
	}
	_, ok := reviewableActions[action]
	return ok
}

// ReviewEvent is the application's internal view of a webhook delivery.
type ReviewEvent struct {
	EventType  string
	Action     string
	DeliveryID string

	RepoOwner    string
	RepoName     string
	RepoFullName string

	PRNumber int
	HeadSHA  string
	FilesURL string

	InstallationID int64
}

// EventFromPullRequest transforms a raw GitHub PullRequestEvent into a ReviewEvent.
// It acts as an anti-corruption layer: the payload must identify a repository and
// a pull request before any job is queued for it. The action is not filtered here;
// IsReviewable decides whether the event is acted upon.
func EventFromPullRequest(event *github.PullRequestEvent) (*ReviewEvent, error) {
	if event == nil {
		return nil, fmt.Errorf("pull request event is nil")
	}

	repo := event.GetRepo()
	if repo == nil || repo.GetOwner() == nil || repo.GetOwner().GetLogin() == "" || repo.GetName() == "" {
		return nil, fmt.Errorf("repository or owner information is missing from the event")
	}

	prNumber := event.GetNumber()
	if prNumber <= 0 {
		prNumber = event.GetPullRequest().GetNumber()
	}
	if prNumber <= 0 {
		return nil, fmt.Errorf("invalid pull request number: %d", prNumber)
	}

	owner := repo.GetOwner().GetLogin()
	fullName := repo.GetFullName()
	if fullName == "" {
		fullName = owner + "/" + repo.GetName()
	}

	return &ReviewEvent{
		EventType:      PullRequestEventType,
		Action:         event.GetAction(),
		RepoOwner:      owner,
		RepoName:       repo.GetName(),
		RepoFullName:   fullName,
		PRNumber:       prNumber,
		HeadSHA:        event.GetPullRequest().GetHead().GetSHA(),
		FilesURL:       filesURL(repo.GetURL(), prNumber),
		InstallationID: event.GetInstallation().GetID(),
	}, nil
}

// filesURL points at the changed-file listing for a pull request.
func filesURL(repoAPIURL string, number int) string {
	if repoAPIURL == "" {
		return ""
	}
	return fmt.Sprintf("%s/pulls/%d/files", repoAPIURL, number)
}
