package core

import (
	"testing"

	"github.com/google/go-github/v73/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsReviewable(t *testing.T) {
	tests := []struct {
		eventType string
		action    string
		want      bool
	}{
		{"pull_request", "opened", true},
		{"pull_request", "synchronize", true},
		{"pull_request", "edited", true},
		{"pull_request", "closed", false},
		{"pull_request", "labeled", false},
		{"pull_request", "", false},
		{"issues", "opened", false},
		{"push", "", false},
		{"", "opened", false},
	}

	for _, tt := range tests {
		t.Run(tt.eventType+"/"+tt.action, func(t *testing.T) {
			assert.Equal(t, tt.want, IsReviewable(tt.eventType, tt.action))
		})
	}
}

func validPullRequestEvent() *github.PullRequestEvent {
	return &github.PullRequestEvent{
		Action: github.Ptr("opened"),
		Number: github.Ptr(12),
		PullRequest: &github.PullRequest{
			Number: github.Ptr(12),
			Head:   &github.PullRequestBranch{SHA: github.Ptr("deadbeef")},
		},
		Repo: &github.Repository{
			Name:     github.Ptr("widgets"),
			FullName: github.Ptr("octo/widgets"),
			URL:      github.Ptr("https://api.github.com/repos/octo/widgets"),
			Owner:    &github.User{Login: github.Ptr("octo")},
		},
		Installation: &github.Installation{ID: github.Ptr(int64(99))},
	}
}

func TestEventFromPullRequest(t *testing.T) {
	t.Run("maps a complete payload", func(t *testing.T) {
		ev, err := EventFromPullRequest(validPullRequestEvent())
		require.NoError(t, err)

		assert.Equal(t, &ReviewEvent{
			EventType:      PullRequestEventType,
			Action:         "opened",
			RepoOwner:      "octo",
			RepoName:       "widgets",
			RepoFullName:   "octo/widgets",
			PRNumber:       12,
			HeadSHA:        "deadbeef",
			FilesURL:       "https://api.github.com/repos/octo/widgets/pulls/12/files",
			InstallationID: 99,
		}, ev)
	})

	t.Run("falls back to the pull request number", func(t *testing.T) {
		raw := validPullRequestEvent()
		raw.Number = nil
		ev, err := EventFromPullRequest(raw)
		require.NoError(t, err)
		assert.Equal(t, 12, ev.PRNumber)
	})

	t.Run("derives the full name", func(t *testing.T) {
		raw := validPullRequestEvent()
		raw.Repo.FullName = nil
		raw.Repo.URL = nil
		ev, err := EventFromPullRequest(raw)
		require.NoError(t, err)
		assert.Equal(t, "octo/widgets", ev.RepoFullName)
		assert.Empty(t, ev.FilesURL)
	})

	t.Run("keeps non-reviewable actions", func(t *testing.T) {
		raw := validPullRequestEvent()
		raw.Action = github.Ptr("closed")
		ev, err := EventFromPullRequest(raw)
		require.NoError(t, err)
		assert.Equal(t, "closed", ev.Action)
	})

	errorCases := map[string]func(*github.PullRequestEvent){
		"missing repository": func(e *github.PullRequestEvent) { e.Repo = nil },
		"missing owner":      func(e *github.PullRequestEvent) { e.Repo.Owner = nil },
		"missing repo name":  func(e *github.PullRequestEvent) { e.Repo.Name = nil },
		"missing number": func(e *github.PullRequestEvent) {
			e.Number = nil
			e.PullRequest.Number = nil
		},
	}
	for name, mutate := range errorCases {
		t.Run(name, func(t *testing.T) {
			raw := validPullRequestEvent()
			mutate(raw)
			_, err := EventFromPullRequest(raw)
			assert.Error(t, err)
		})
	}

	t.Run("nil event", func(t *testing.T) {
		_, err := EventFromPullRequest(nil)
		assert.Error(t, err)
	})
}
