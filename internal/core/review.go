package core

import "fmt"

// ChangedFile is a single file entry of a pull request as reported by the host.
// Patch is empty when the host omits it (binary files, oversized diffs).
type ChangedFile struct {
	Path    string
	Patch   string
	Changes int
	Status  string
}

// DiffEntry is one file's contribution to a DiffBundle.
type DiffEntry struct {
	Path  string
	Patch string
}

// DiffBundle is the ordered set of patches sent to the LLM for one review cycle.
type DiffBundle struct {
	Entries []DiffEntry
	Text    string
}

// Paths returns the paths of the bundled files in bundle order.
func (b DiffBundle) Paths() []string {
	paths := make([]string, 0, len(b.Entries))
	for _, e := range b.Entries {
		paths = append(paths, e.Path)
	}
	return paths
}

// RiskTier is a coarse classification of change size.
type RiskTier int

const (
	RiskLow RiskTier = iota
	RiskStandard
)

func (t RiskTier) String() string {
	switch t {
	case RiskLow:
		return "LOW"
	case RiskStandard:
		return "STANDARD"
	default:
		return fmt.Sprintf("RiskTier(%d)", int(t))
	}
}

// InlineComment is a review comment anchored to a line the LLM pointed at.
// The line is not verified against diff hunks unless anchor validation is enabled.
type InlineComment struct {
	Path string
	Line int
	Body string
}

// DecisionKind selects how a review is submitted to the host.
type DecisionKind int

const (
	DecisionApprove DecisionKind = iota
	DecisionCommentWithInline
	DecisionCommentWithoutInline
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionApprove:
		return "APPROVE"
	case DecisionCommentWithInline:
		return "COMMENT_WITH_INLINE"
	case DecisionCommentWithoutInline:
		return "COMMENT_WITHOUT_INLINE"
	default:
		return fmt.Sprintf("DecisionKind(%d)", int(k))
	}
}

// ReviewDecision is the single review outcome of a pipeline run.
type ReviewDecision struct {
	Kind     DecisionKind
	Body     string
	Comments []InlineComment
}

// ApproveDecision approves the pull request with an explanatory body.
func ApproveDecision(body string) ReviewDecision {
	return ReviewDecision{Kind: DecisionApprove, Body: body}
}

// InlineDecision submits line-anchored comments with an optional note as body.
func InlineDecision(comments []InlineComment, note string) ReviewDecision {
	return ReviewDecision{Kind: DecisionCommentWithInline, Body: note, Comments: comments}
}

// NoteDecision submits a comment review that carries only a body.
func NoteDecision(note string) ReviewDecision {
	return ReviewDecision{Kind: DecisionCommentWithoutInline, Body: note}
}
