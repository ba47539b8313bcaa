package github

import (
	"regexp"
	"strconv"
	"strings"
)

var hunkHeaderRegex = regexp.MustCompile(`^@@ -\d+(?:,\d+)? \+(\d+)(?:,\d+)? @@`)

// CommentableLines returns the new-side line numbers of a unified diff patch,
// which are the only lines a review comment with side RIGHT can be attached to.
func CommentableLines(patch string) map[int]struct{} {
	lines := make(map[int]struct{})
	current := -1

	for _, line := range strings.Split(patch, "\n") {
		if strings.HasPrefix(line, "@@") {
			current = -1
			if m := hunkHeaderRegex.FindStringSubmatch(line); len(m) == 2 {
				if start, err := strconv.Atoi(m[1]); err == nil {
					current = start
				}
			}
			continue
		}
		if current < 0 {
			continue
		}

		switch {
		case strings.HasPrefix(line, "+"), strings.HasPrefix(line, " "):
			lines[current] = struct{}{}
			current++
		case strings.HasPrefix(line, `\`):
			// "\ No newline at end of file"
		}
	}

	return lines
}
