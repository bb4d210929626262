package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tail-island/qashogi-go/internal/state"
	"github.com/tail-island/qashogi-go/internal/types"
)

// This pins the exact count LegalActions(Initial()) returns, so a future
// change to move generation is caught by a failing test rather than
// silently accepted.
func TestInitialLegalActionCount(t *testing.T) {
	// Slots 0..2 sit on the full home row (squares 0..2) and slot 3 sits
	// one row forward at square 4, so its four possible kinds alone
	// already contribute 11 actions (chick 1, giraffe 3, elephant 2,
	// lion 5); summing every owned slot's per-kind destination count (ally
	// squares excluded, enemy squares are valid capturing destinations)
	// gives 21. No hand drops exist yet.
	actions := LegalActions(state.Initial())
	assert.Equal(t, 21, len(actions))
}

func TestInitialActionsAreAllBoardMoves(t *testing.T) {
	for _, a := range LegalActions(state.Initial()) {
		assert.False(t, a.IsDrop(), "no hand pieces exist in the initial state")
	}
}

func TestLegalExcludesAllySquares(t *testing.T) {
	s := state.Initial()
	ally := s.AllyMask()
	for _, a := range LegalActions(s) {
		assert.Zero(t, ally&(1<<a.To), "action %v lands on an ally square", a)
	}
}

func TestNextStateRejectsIllegalAction(t *testing.T) {
	_, ok := NextState(state.Initial(), types.Action{From: 0, To: 11})
	assert.False(t, ok)
}

func TestNextStateAcceptsGeneratedAction(t *testing.T) {
	s := state.Initial()
	a := LegalActions(s)[0]
	_, ok := NextState(s, a)
	assert.True(t, ok)
}

func TestIsTerminalFalseAtStart(t *testing.T) {
	assert.False(t, IsTerminal(state.Initial()))
}
