// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v73/github"

	"github.com/sevigo/pr-warden/internal/core"
)

const (
	reviewEventApprove = "APPROVE"
	reviewEventComment = "COMMENT"
	reviewSideRight    = "RIGHT"
	filesPerPage       = 100
)

type gitHubClient struct {
	client *github.Client
	logger *slog.Logger
}

// NewGitHubClient wraps the official go-github client as a core.HostClient.
func NewGitHubClient(client *github.Client, logger *slog.Logger) core.HostClient {
	return &gitHubClient{client: client, logger: logger}
}

// FetchChangedFiles retrieves the list of files modified in a pull request.
// It follows pagination since the API returns at most 100 files per page.
func (g *gitHubClient) FetchChangedFiles(ctx context.Context, owner, repo string, number int) ([]core.ChangedFile, error) {
	var allFiles []core.ChangedFile
	opts := &github.ListOptions{PerPage: filesPerPage}

	for {
		files, resp, err := g.client.PullRequests.ListFiles(ctx, owner, repo, number, opts)
		if err != nil {
			g.logger.Error("failed to list files for pull request", "owner", owner, "repo", repo, "pr", number, "error", err)
			return nil, fmt.Errorf("%w: list files of %s/%s#%d: %w", core.ErrHostUnavailable, owner, repo, number, err)
		}

		for _, file := range files {
			allFiles = append(allFiles, core.ChangedFile{
				Path:    file.GetFilename(),
				Patch:   file.GetPatch(),
				Changes: file.GetChanges(),
				Status:  file.GetStatus(),
			})
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return allFiles, nil
}

// PostIssueComment creates a conversation-level comment on the pull request.
func (g *gitHubClient) PostIssueComment(ctx context.Context, owner, repo string, number int, body string) error {
	comment := &github.IssueComment{Body: github.Ptr(body)}
	if _, _, err := g.client.Issues.CreateComment(ctx, owner, repo, number, comment); err != nil {
		g.logger.Error("failed to create comment", "owner", owner, "repo", repo, "pr", number, "error", err)
		return fmt.Errorf("%w: create comment on %s/%s#%d: %w", core.ErrHostUnavailable, owner, repo, number, err)
	}
	return nil
}

// SubmitReview creates a pull request review from a decision. Approvals carry
// only a body; comment reviews carry the inline comments on the RIGHT side.
func (g *gitHubClient) SubmitReview(ctx context.Context, owner, repo string, number int, headSHA string, decision core.ReviewDecision) error {
	req := newReviewRequest(headSHA, decision)
	if _, _, err := g.client.PullRequests.CreateReview(ctx, owner, repo, number, req); err != nil {
		g.logger.Error("failed to create pull request review",
			"owner", owner, "repo", repo, "pr", number,
			"decision", decision.Kind.String(), "comments", len(decision.Comments),
			"error", err)
		return fmt.Errorf("%w: create review on %s/%s#%d: %w", core.ErrHostUnavailable, owner, repo, number, err)
	}
	return nil
}

func newReviewRequest(headSHA string, decision core.ReviewDecision) *github.PullRequestReviewRequest {
	req := &github.PullRequestReviewRequest{}
	if headSHA != "" {
		req.CommitID = github.Ptr(headSHA)
	}
	if decision.Body != "" {
		req.Body = github.Ptr(decision.Body)
	}

	switch decision.Kind {
	case core.DecisionApprove:
		req.Event = github.Ptr(reviewEventApprove)
	case core.DecisionCommentWithInline:
		req.Event = github.Ptr(reviewEventComment)
		for _, c := range decision.Comments {
			req.Comments = append(req.Comments, &github.DraftReviewComment{
				Path: github.Ptr(c.Path),
				Line: github.Ptr(c.Line),
				Side: github.Ptr(reviewSideRight),
				Body: github.Ptr(c.Body),
			})
		}
	default:
		req.Event = github.Ptr(reviewEventComment)
	}
	return req
}
