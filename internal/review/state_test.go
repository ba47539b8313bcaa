package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateString(t *testing.T) {
	assert.Equal(t, "RECEIVED", StateReceived.String())
	assert.Equal(t, "COMMENT_POSTED", StateCommentPosted.String())
	assert.Equal(t, "DONE", StateDone.String())
	assert.Equal(t, "State(99)", State(99).String())
}

func TestStateTerminal(t *testing.T) {
	for s := StateReceived; s <= StateDone; s++ {
		want := s == StateDone || s == StateAborted
		assert.Equal(t, want, s.Terminal(), s.String())
	}
}

func TestResultTrace(t *testing.T) {
	var res Result
	res.enter(StateReceived)
	res.enter(StateFilesFetched)
	res.enter(StateDone)

	assert.Equal(t, StateDone, res.State)
	assert.True(t, res.Reached(StateFilesFetched))
	assert.False(t, res.Reached(StateSummarized))
	assert.True(t, res.State.Terminal())
}
