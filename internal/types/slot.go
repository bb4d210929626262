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

package types

import "fmt"

// SlotCount is the number of logical pieces per game: 4 per origin group,
// 2 origin groups.
const SlotCount = 8

// OriginGroupSize is the number of slots sharing one origin (and thus one
// exhaustion-collapse accounting group).
const OriginGroupSize = 4

// Square indexes one of the 12 board squares: bit i = column (i%3), row (i/3).
type Square uint8

const (
	SquareCount = 12
	NoSquare    = Square(0xFF)
)

// HomeRowMask is the side-to-move's own row (squares 0..2); FarRowMask is the
// promotion zone (squares 9..11).
const (
	HomeRowMask = 0b000_000_000_111
	FarRowMask  = 0b111_000_000_000
)

// Action is a (from, to) legal-move pair. From is either a board square
// (0..12) or 12+h, the h-th hand slot of the side to move. To is
// always a board square.
type Action struct {
	From uint8
	To   uint8
}

// IsDrop reports whether the action drops a piece from hand rather than
// moving one already on the board.
func (a Action) IsDrop() bool {
	return a.From >= SquareCount
}

// HandOrdinal returns the hand-slot ordinal encoded by From. Only valid
// when IsDrop() is true.
func (a Action) HandOrdinal() int {
	return int(a.From) - SquareCount
}

func (a Action) String() string {
	if a.IsDrop() {
		return fmt.Sprintf("drop#%d->%d", a.HandOrdinal(), a.To)
	}
	return fmt.Sprintf("%d->%d", a.From, a.To)
}
