// qashogi-go - quantum animal shogi rules engine and state-space search
//
// MIT License
//
// Copyright (c) 2020-2026 The qashogi-go Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package state

import (
	"github.com/tail-island/qashogi-go/internal/assert"
	"github.com/tail-island/qashogi-go/internal/bitutil"
	"github.com/tail-island/qashogi-go/internal/types"
)

// promotionMask keeps the giraffe/elephant/lion bits of a mask untouched
// and folds a possible chick into a possible hen.
const promotionMask = types.GiraffeBit | types.ElephantBit | types.LionBit | types.HenBit

// Apply performs the next-state transition for action a, trusting
// that a is legal (callers that need the check should go through
// movegen.NextState, which validates against movegen.LegalActions first).
// The receiver is never mutated; Apply always returns a fresh State.
func Apply(s State, a types.Action) State {
	next := s
	if a.IsDrop() {
		next.drop(a)
	} else {
		next.move(types.Square(a.From), types.Square(a.To))
	}
	next.rotate()
	if assert.DEBUG {
		assert.Assert(next.invariantsHold(), "state invariants violated after Apply(%v, %v)", s, a)
	}
	return next
}

// invariantsHold reports whether every slot occupies at most one square,
// no two slots overlap, and each origin group never claims more slots for
// a kind-possibility set than that set's own popcount allows. Checked
// only under the debug build tag (internal/assert).
func (s State) invariantsHold() bool {
	var seen bitutil.BoardMask
	for i := 0; i < types.SlotCount; i++ {
		if s.Boards[i]&(s.Boards[i]-1) != 0 {
			return false
		}
		if seen&s.Boards[i] != 0 {
			return false
		}
		seen |= s.Boards[i]
	}
	for _, group := range OwnedGroups {
		var counts [16]int
		for _, slot := range group {
			counts[s.Pieces[slot].Unpromoted()]++
		}
		for m := 1; m <= 15; m++ {
			if counts[m] > types.KindMask(m).PopCount() {
				return false
			}
		}
	}
	return true
}

func (s *State) move(from, to types.Square) {
	toBit := bitutil.BoardMask(1) << to

	// (a) capture: the defender's slot, if any, is unpromoted and handed
	// to the mover.
	if c := s.SlotAt(to); c >= 0 {
		s.Pieces[c] = s.Pieces[c].Unpromoted()
		s.Ownership |= 1 << uint(c)
		s.Boards[c] = 0
	}

	// (b) the moving slot.
	i := s.SlotAt(from)

	// (c) narrowing collapse on the observed move.
	s.Pieces[i] = narrow(s.Pieces[i], from, to)

	// (d) exhaustion collapse.
	exhaustCollapse(&s.Pieces)

	// (e) promotion: only a chick, only into the far row.
	if toBit&types.FarRowMask != 0 && s.Pieces[i].Has(types.Chick) {
		s.Pieces[i] = (s.Pieces[i] | s.Pieces[i]<<4) & promotionMask
	}

	// (f) move the slot; ownership is unchanged (still the mover's).
	s.Boards[i] = toBit

	// (g) hand-lion strip: a piece already in hand cannot have been the
	// lion, because capturing the lion ends the game. A slot already
	// certain to be the lion ({lion} exactly) is the captured-lion case
	// itself and is left for the terminal predicate to observe.
	for j := 0; j < types.SlotCount; j++ {
		if !s.IsOwned(j) || s.IsOnBoard(j) {
			continue
		}
		if s.Pieces[j].Has(types.Lion) && s.Pieces[j] != types.LionBit {
			s.Pieces[j] &^= types.LionBit
		}
	}

	// (h) exhaustion collapse again.
	exhaustCollapse(&s.Pieces)
}

func (s *State) drop(a types.Action) {
	hand := s.HandSlots()
	i := hand[a.HandOrdinal()]
	s.Boards[i] = bitutil.BoardMask(1) << a.To
}

// rotate re-expresses the state from the other player's perspective:
// ownership is complemented and every bitboard is spun 180 degrees.
func (s *State) rotate() {
	s.Ownership = ^s.Ownership
	for i := 0; i < types.SlotCount; i++ {
		s.Boards[i] = bitutil.Reverse12(s.Boards[i])
	}
	s.Turn++
}
