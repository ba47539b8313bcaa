package review

import (
	"fmt"
	"strings"

	"github.com/sevigo/pr-warden/internal/core"
)

const (
	summaryHeader    = "**PR Summary (AI):**"
	approvalHeadline = "✅ Auto-approved by AI bot"
	critiqueHeadline = "AI review complete. Human review recommended."
)

func formatSummaryComment(summary string) string {
	return summaryHeader + "\n\n" + strings.TrimSpace(summary)
}

func formatApprovalBody(totalChanges, threshold int) string {
	return fmt.Sprintf("%s: %d changed line(s), below the review threshold of %d.", approvalHeadline, totalChanges, threshold)
}

// formatCritiqueBody lists the findings that could not be anchored to a diff line.
func formatCritiqueBody(offDiff []core.InlineComment) string {
	if len(offDiff) == 0 {
		return critiqueHeadline
	}

	var sb strings.Builder
	sb.WriteString(critiqueHeadline)
	sb.WriteString("\n\n#### Findings outside the diff\n\n")
	for _, c := range offDiff {
		body := c.Body
		if body == "" {
			body = "_(no details)_"
		}
		fmt.Fprintf(&sb, "- `%s` line %d: %s\n", c.Path, c.Line, body)
	}
	return strings.TrimRight(sb.String(), "\n")
}
