// Package review implements the pull request review pipeline: diff collection,
// risk classification, critique parsing and the orchestration that turns a
// webhook event into a summary comment and a review decision.
package review

import (
	"strings"

	"github.com/sevigo/pr-warden/internal/core"
)

// CollectDiff bundles the patches of the changed files into a single prompt text
// and sums the change counts of every file, including files without a patch.
// Files without a patch are skipped silently; a repeated path keeps its first entry.
func CollectDiff(files []core.ChangedFile) (core.DiffBundle, int) {
	var (
		bundle core.DiffBundle
		sb     strings.Builder
		total  int
	)
	seen := make(map[string]struct{}, len(files))

	for _, f := range files {
		total += f.Changes
		if f.Patch == "" {
			continue
		}
		if _, dup := seen[f.Path]; dup {
			continue
		}
		seen[f.Path] = struct{}{}

		bundle.Entries = append(bundle.Entries, core.DiffEntry{Path: f.Path, Patch: f.Patch})
		sb.WriteString("File: ")
		sb.WriteString(f.Path)
		sb.WriteString("\n")
		sb.WriteString(f.Patch)
		sb.WriteString("\n\n")
	}

	bundle.Text = sb.String()
	return bundle, total
}
