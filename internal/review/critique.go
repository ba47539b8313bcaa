package review

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/sevigo/pr-warden/internal/core"
)

const critiqueLinePrefix = "Line"

// ParseCritique extracts "Line N: comment" entries from free-form LLM output.
// Lines that do not follow the convention are dropped; the function never fails
// and returns an empty result when nothing matches.
func ParseCritique(path, text string) []core.InlineComment {
	comments := []core.InlineComment{}

	for line := range strings.Lines(text) {
		if c, ok := parseCritiqueLine(path, line); ok {
			comments = append(comments, c)
		}
	}
	return comments
}

func parseCritiqueLine(path, raw string) (core.InlineComment, bool) {
	line := strings.TrimSpace(raw)
	if !strings.HasPrefix(line, critiqueLinePrefix) {
		return core.InlineComment{}, false
	}

	head, body, found := strings.Cut(line, ":")
	if !found {
		return core.InlineComment{}, false
	}

	lineNo, ok := parseLineNumber(strings.TrimPrefix(head, critiqueLinePrefix))
	if !ok || lineNo <= 0 {
		return core.InlineComment{}, false
	}

	return core.InlineComment{
		Path: path,
		Line: lineNo,
		Body: strings.TrimSpace(body),
	}, true
}

// parseLineNumber reads the first whitespace-delimited token of s as an integer.
// "Line27" and "Line 27" both yield 27.
func parseLineNumber(s string) (int, bool) {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, false
	}
	return n, true
}
