package github

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	prURLRegex       = regexp.MustCompile(`^(?:https?://)?[^/]+/([^/]+)/([^/]+)/pull/(\d+)$`)
	prShorthandRegex = regexp.MustCompile(`^([^/\s]+)/([^/#\s]+)#(\d+)$`)
)

// PullRequestRef identifies a pull request on the host.
type PullRequestRef struct {
	Owner  string
	Repo   string
	Number int
}

func (r PullRequestRef) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}

// ParsePullRequestURL accepts https://<host>/{owner}/{repo}/pull/{number}, with or
// without the scheme, or the owner/repo#number shorthand.
func ParsePullRequestURL(raw string) (PullRequestRef, error) {
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "/")

	matches := prURLRegex.FindStringSubmatch(raw)
	if matches == nil {
		matches = prShorthandRegex.FindStringSubmatch(raw)
	}
	if len(matches) != 4 {
		return PullRequestRef{}, fmt.Errorf("invalid pull request URL format: %s", raw)
	}

	number, err := strconv.Atoi(matches[3])
	if err != nil || number <= 0 {
		return PullRequestRef{}, fmt.Errorf("invalid PR number '%s'", matches[3])
	}

	return PullRequestRef{Owner: matches[1], Repo: matches[2], Number: number}, nil
}
