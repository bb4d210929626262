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

import "github.com/tail-island/qashogi-go/internal/types"

// Won reports whether, in a state already rotated after a move, the side
// that just moved won by that move: the enemy lion (in the rotated
// view, a slot with its ownership bit cleared) sits captured in hand and
// is certainly the lion.
func Won(s State) bool {
	for i := 0; i < types.SlotCount; i++ {
		if s.IsOwned(i) {
			continue
		}
		if s.Boards[i] == 0 && s.Pieces[i] == types.LionBit {
			return true
		}
	}
	return false
}

// Lost reports whether the side to move has already lost: a non-owned
// slot sits on our home row (the opponent's far row) and might still be
// the lion, meaning the opponent can declare it the lion and win by
// having reached the far row.
// This alone is not the full terminal predicate - movegen.IsTerminal
// combines it with the look-ahead win check.
func Lost(s State) bool {
	for i := 0; i < types.SlotCount; i++ {
		if s.IsOwned(i) {
			continue
		}
		if s.Boards[i] == 0 || s.Boards[i]&types.HomeRowMask == 0 {
			continue
		}
		if s.Pieces[i].Has(types.Lion) {
			return true
		}
	}
	return false
}
