package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tail-island/qashogi-go/internal/bitutil"
	"github.com/tail-island/qashogi-go/internal/movetable"
	"github.com/tail-island/qashogi-go/internal/types"
)

func TestInitialStateShape(t *testing.T) {
	s := Initial()
	assert.Equal(t, uint8(0b0000_1111), s.Ownership)
	want := [types.SlotCount]bitutil.BoardMask{1, 2, 4, 16, 128, 512, 1024, 2048}
	assert.Equal(t, want, s.Boards)
	for i := 0; i < types.SlotCount; i++ {
		assert.Equal(t, types.AllUnpromoted, s.Pieces[i], "slot %d", i)
	}
	assert.Equal(t, uint64(0), s.Turn)
}

// narrowing must only preserve kinds whose move table actually reaches
// the observed destination - computed from the move table itself rather
// than a hardcoded guess at which kinds qualify.
func expectedNarrow(t *testing.T, old types.KindMask, from, to types.Square) types.KindMask {
	t.Helper()
	var want types.KindMask
	for k := types.Chick; k < types.KindCount; k++ {
		if old.Has(k) && movetable.Nexts(k, from)&(1<<to) != 0 {
			want |= 1 << k
		}
	}
	return want
}

func TestNarrowingOnFirstMove(t *testing.T) {
	s := Initial()
	from, to := types.Square(0), types.Square(3)
	i := s.SlotAt(from)
	want := expectedNarrow(t, s.Pieces[i], from, to)
	assert.NotZero(t, want, "at least one kind must justify the move")

	next := Apply(s, types.Action{From: uint8(from), To: uint8(to)})
	// the state is rotated after Apply; the moved slot kept its index.
	assert.Equal(t, want, next.Pieces[i])
}

func TestExhaustionForcesLastSlotToLion(t *testing.T) {
	var pieces [types.SlotCount]types.KindMask
	pieces[0] = 0b0001
	pieces[1] = 0b0010
	pieces[2] = 0b0100
	pieces[3] = 0b1111
	pieces[4], pieces[5], pieces[6], pieces[7] = types.AllUnpromoted, types.AllUnpromoted, types.AllUnpromoted, types.AllUnpromoted

	exhaustCollapse(&pieces)

	assert.Equal(t, types.KindMask(0b1000), pieces[3])
}

func TestHandLionStripClearsUncertainLion(t *testing.T) {
	s := Initial()
	// move the slot on square 4 onto an enemy-occupied square, then
	// inspect the captured slot in the rotated successor.
	from := types.Square(4)
	enemySlot := s.SlotAt(7)
	require := assert.New(t)
	require.GreaterOrEqual(enemySlot, 0)

	// narrow the capturing slot down to {lion} so the capture is legal
	// under the king-like move and exercise the hand-lion strip on a
	// slot that is NOT the certain-lion capture itself.
	s.Pieces[s.SlotAt(from)] = types.LionBit
	to := types.Square(7)

	next := Apply(s, types.Action{From: uint8(from), To: uint8(to)})

	// after rotation, the captured slot (now in the capturer's hand,
	// i.e. not owned in the rotated state) must have had its lion bit
	// stripped unless it is certain to be {lion}.
	assert.False(t, next.IsOwned(enemySlot))
	assert.False(t, next.Pieces[enemySlot].Has(types.Lion))
}

func TestLegalTransitionsPreserveInvariants(t *testing.T) {
	s := Initial()
	assertValid(t, s)
	next := Apply(s, types.Action{From: 0, To: 3})
	assertValid(t, next)
}

func assertValid(t *testing.T, s State) {
	t.Helper()
	assert.True(t, s.invariantsHold())
}

func TestWonAfterCertainLionCapture(t *testing.T) {
	s := Initial()
	s.Ownership = 0b1111_1110 // slot 0 not owned (enemy, rotated-view setup)
	s.Pieces[0] = types.LionBit
	s.Boards[0] = 0
	assert.True(t, Won(s))
}

func TestLostWhenEnemyLionThreatensHomeRow(t *testing.T) {
	s := Initial()
	// place a non-owned slot on the home row with lion still possible.
	s.Ownership = 0b0000_0111 // slot 3 becomes non-owned
	s.Boards[1] = 0
	s.Boards[3] = 1 << 1
	s.Pieces[3] |= types.LionBit
	assert.True(t, Lost(s))
}
