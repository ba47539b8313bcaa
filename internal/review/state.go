package review

import (
	"fmt"

	"github.com/sevigo/pr-warden/internal/core"
)

// State is a step of a single pipeline run.
type State int

const (
	StateReceived State = iota
	StateAborted
	StateFilesFetched
	StateSummarized
	StateCommentPosted
	StateRiskAssessed
	StateApproved
	StateCritiqued
	StateDone
)

var stateNames = map[State]string{
	StateReceived:      "RECEIVED",
	StateAborted:       "ABORTED",
	StateFilesFetched:  "FILES_FETCHED",
	StateSummarized:    "SUMMARIZED",
	StateCommentPosted: "COMMENT_POSTED",
	StateRiskAssessed:  "RISK_ASSESSED",
	StateApproved:      "APPROVED",
	StateCritiqued:     "CRITIQUED",
	StateDone:          "DONE",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return s == StateDone || s == StateAborted
}

// Result describes how a pipeline run ended. Err carries the fatal failure of an
// aborted run, or the last non-fatal failure of a completed one.
type Result struct {
	State    State
	Trace    []State
	Tier     core.RiskTier
	Files    int
	Changes  int
	Decision *core.ReviewDecision
	Err      error
}

// Reached reports whether the run passed through s.
func (r Result) Reached(s State) bool {
	for _, t := range r.Trace {
		if t == s {
			return true
		}
	}
	return false
}

func (r *Result) enter(s State) {
	r.State = s
	r.Trace = append(r.Trace, s)
}
