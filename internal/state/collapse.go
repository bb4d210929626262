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
	"github.com/tail-island/qashogi-go/internal/movetable"
	"github.com/tail-island/qashogi-go/internal/types"
)

// narrow collapses a slot's possibility mask after observing it move from
// square to square: only kinds whose move table actually reaches to
// survive. At least one kind must have justified the move, so the
// result is always non-zero on legal input.
func narrow(old types.KindMask, from, to types.Square) types.KindMask {
	var next types.KindMask
	for k := types.Chick; k < types.KindCount; k++ {
		if old.Has(k) && movetable.Nexts(k, from)&(1<<to) != 0 {
			next |= 1 << k
		}
	}
	return next
}

// exhaustCollapse runs the exhaustion propagator to a fixed point
// over both origin groups. Each origin group holds exactly one slot of
// each of the 4 original kinds, so once popcount(m) slots are narrowed to
// exactly the possibility set m, no other slot in the group may still
// claim a kind in m.
func exhaustCollapse(pieces *[types.SlotCount]types.KindMask) {
	for _, group := range OwnedGroups {
		exhaustGroup(pieces, group)
	}
}

func exhaustGroup(pieces *[types.SlotCount]types.KindMask, group [types.OriginGroupSize]int) {
	for {
		changed := false
		for m := types.KindMask(1); m <= 15; m++ {
			count := 0
			for _, slot := range group {
				if pieces[slot].Unpromoted() == m {
					count++
				}
			}
			if count < m.PopCount() {
				continue
			}
			for _, slot := range group {
				u := pieces[slot].Unpromoted()
				if u == m || u&m == 0 {
					continue
				}
				cleared := pieces[slot] &^ (m | m<<4)
				if cleared != pieces[slot] {
					pieces[slot] = cleared
					changed = true
				}
			}
			if changed {
				break // restart the outer (mask) loop for this group.
			}
		}
		if !changed {
			return
		}
	}
}
