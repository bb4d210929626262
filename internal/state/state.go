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

// Package state holds the game State value type and the operations that
// are total over it: the initial position, the constraint-collapse
// propagators, the next-state transition, and the win/loss terminal
// predicates. A State is immutable once returned; every mutating
// operation takes a State by value and returns a freshly built one.
package state

import (
	"fmt"
	"strings"

	"github.com/tail-island/qashogi-go/internal/bitutil"
	"github.com/tail-island/qashogi-go/internal/types"
)

// initialSquares are the starting board squares of slots 0..7: slots 0..3
// originate on the side to move, slots 4..7 on the opponent.
var initialSquares = [types.SlotCount]types.Square{0, 1, 2, 4, 7, 9, 10, 11}

// State is the compact record of one game position: per-slot kind
// possibility masks, the ownership bitmask, per-slot board bitboards, and
// the half-move counter.
type State struct {
	Pieces    [types.SlotCount]types.KindMask
	Ownership uint8
	Boards    [types.SlotCount]bitutil.BoardMask
	Turn      uint64
}

// Initial returns the starting position: slots 0..3 on the side-to-move's
// home squares with every kind still possible, slots 4..7 likewise on the
// opponent's squares, ownership bits 0..3 set, turn 0.
func Initial() State {
	var s State
	for i := 0; i < types.SlotCount; i++ {
		s.Pieces[i] = types.AllUnpromoted
		s.Boards[i] = 1 << initialSquares[i]
	}
	s.Ownership = 0b0000_1111
	return s
}

// OwnedGroups are the two fixed origin groups used by exhaustion collapse
// and by the invariant check: slots 0..3 and slots 4..7.
var OwnedGroups = [2][types.OriginGroupSize]int{
	{0, 1, 2, 3},
	{4, 5, 6, 7},
}

// IsOwned reports whether slot i belongs to the side to move.
func (s State) IsOwned(i int) bool {
	return s.Ownership&(1<<uint(i)) != 0
}

// IsOnBoard reports whether slot i currently occupies a square.
func (s State) IsOnBoard(i int) bool {
	return s.Boards[i] != 0
}

// IsInHand reports whether slot i is present (pieces[i] != 0) but off the
// board - i.e. held in its owner's hand.
func (s State) IsInHand(i int) bool {
	return s.Boards[i] == 0 && s.Pieces[i] != 0
}

// AllyMask is the union of board squares occupied by the side to move.
func (s State) AllyMask() bitutil.BoardMask {
	var m bitutil.BoardMask
	for i := 0; i < types.SlotCount; i++ {
		if s.IsOwned(i) {
			m |= s.Boards[i]
		}
	}
	return m
}

// EnemyMask is the union of board squares occupied by the non-owning side.
func (s State) EnemyMask() bitutil.BoardMask {
	var m bitutil.BoardMask
	for i := 0; i < types.SlotCount; i++ {
		if !s.IsOwned(i) {
			m |= s.Boards[i]
		}
	}
	return m
}

// SlotAt returns the slot occupying square sq, or -1 if the square is empty.
func (s State) SlotAt(sq types.Square) int {
	bit := bitutil.BoardMask(1) << sq
	for i := 0; i < types.SlotCount; i++ {
		if s.Boards[i]&bit != 0 {
			return i
		}
	}
	return -1
}

// HandSlots returns the indices of the side to move's hand slots, in
// ascending slot-index order - the same order a drop Action's hand
// ordinal numbers them in.
func (s State) HandSlots() []int {
	var out []int
	for i := 0; i < types.SlotCount; i++ {
		if s.IsOwned(i) && s.IsInHand(i) {
			out = append(out, i)
		}
	}
	return out
}

// String renders a compact ASCII board: one 3-wide row per board row
// (far row first), an upper-case letter for the side to move's pieces
// and lower-case for the opponent's, the possibility mask spelled out
// when more than one kind remains possible. Trailing lines list the
// mover's hand, the other side's hand and the turn counter. This is a
// debug rendering for %v and test failure
// messages, not a presentation-layer adapter.
func (s State) String() string {
	cells := [types.SquareCount]string{}
	for i := range cells {
		cells[i] = "."
	}
	for i := 0; i < types.SlotCount; i++ {
		if !s.IsOnBoard(i) {
			continue
		}
		sq := s.Boards[i].Lsb()
		label := s.Pieces[i].String()
		if s.IsOwned(i) {
			label = strings.ToUpper(label)
		}
		cells[sq] = label
	}

	var b strings.Builder
	for row := 3; row >= 0; row-- {
		for col := 0; col < 3; col++ {
			fmt.Fprintf(&b, "%-4s", cells[row*3+col])
		}
		b.WriteByte('\n')
	}

	var ownHand, enemyHand []string
	for i := 0; i < types.SlotCount; i++ {
		if !s.IsInHand(i) {
			continue
		}
		if s.IsOwned(i) {
			ownHand = append(ownHand, s.Pieces[i].String())
		} else {
			enemyHand = append(enemyHand, s.Pieces[i].String())
		}
	}
	fmt.Fprintf(&b, "hand(mover): %s\n", strings.Join(ownHand, " "))
	fmt.Fprintf(&b, "hand(other): %s\n", strings.Join(enemyHand, " "))
	fmt.Fprintf(&b, "turn %d\n", s.Turn)
	return b.String()
}
