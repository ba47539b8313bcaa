package review

import (
	"log/slog"
	"strings"

	"github.com/sevigo/pr-warden/internal/core"
	"github.com/sevigo/pr-warden/internal/github"
)

// SplitByAnchor separates comments whose line exists on the new side of their
// file's patch from those that point elsewhere. Comments on files outside the
// bundle are dropped.
func SplitByAnchor(logger *slog.Logger, comments []core.InlineComment, bundle core.DiffBundle) (inline, offDiff []core.InlineComment) {
	validLines := make(map[string]map[int]struct{}, len(bundle.Entries))
	for _, e := range bundle.Entries {
		validLines[e.Path] = github.CommentableLines(e.Patch)
	}

	for _, c := range comments {
		c.Path = strings.TrimPrefix(c.Path, "./")
		lines, ok := validLines[c.Path]
		if !ok {
			logger.Warn("dropping comment on file outside the bundle", "file", c.Path, "line", c.Line)
			continue
		}
		if _, ok := lines[c.Line]; ok {
			inline = append(inline, c)
			continue
		}
		logger.Debug("moving comment to review body (off-diff line)", "file", c.Path, "line", c.Line)
		offDiff = append(offDiff, c)
	}
	return inline, offDiff
}
