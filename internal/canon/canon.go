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

// Package canon implements the symmetric-canonical 128-bit state encoding:
// a per-slot descriptor packed into a fixed-width accumulator, minimized
// against the encoding of the board's left-right mirror so that the
// search driver's visited set dedups states that differ only by that
// reflection. A struct-packed rather than hashed encoding is used because
// the descriptor must be invertible up to symmetry, not merely collision
// resistant.
package canon

import (
	"math/big"
	"sort"

	"github.com/tail-island/qashogi-go/internal/bitutil"
	"github.com/tail-island/qashogi-go/internal/state"
	"github.com/tail-island/qashogi-go/internal/types"
)

// descriptor packs slot i's kind-possibility mask, promoted-marker and
// inverted-ownership bit into a 7-bit per-slot unit.
func descriptor(s state.State, i int) uint64 {
	promoted := uint64(0)
	if s.Pieces[i].Unpromoted().PopCount() != 1 && i >= 4 {
		promoted = 1
	}
	owned := uint64(0)
	if s.Ownership>>uint(i)&1 != 0 {
		owned = 1
	}
	d := uint64(s.Pieces[i]) & 0x1F
	d |= promoted << 5
	d |= (1 - owned) << 6
	return d
}

// Encode packs board-slot descriptors at bit position 7*square(i) of
// accumulator A, hand-slot descriptors sorted ascending at bit positions
// 0, 7, 14, ... of accumulator B, result A | (B << 84) - so the hand
// descriptors land at bits 84, 91, 98, ... of the key - truncated modulo
// 2^128 (types.KeyFromBig).
func Encode(s state.State) types.Key {
	a := new(big.Int)
	var hands []uint64

	for i := 0; i < types.SlotCount; i++ {
		if s.Boards[i] != 0 {
			sq := s.Boards[i].Lsb()
			d := new(big.Int).Lsh(big.NewInt(int64(descriptor(s, i))), uint(7*sq))
			a.Or(a, d)
		} else if s.Pieces[i] != 0 {
			hands = append(hands, descriptor(s, i))
		}
	}

	sort.Slice(hands, func(x, y int) bool { return hands[x] < hands[y] })

	b := new(big.Int)
	for idx, d := range hands {
		shifted := new(big.Int).Lsh(big.NewInt(int64(d)), uint(7*idx))
		b.Or(b, shifted)
	}
	b.Lsh(b, 84)

	result := new(big.Int).Or(a, b)
	return types.KeyFromBig(result)
}

// Mirror reflects every slot's board position across the board's middle
// column (bitutil.Mirror12), leaving piece possibilities and ownership
// untouched - the column-reflection symmetry Canonical minimizes against.
func Mirror(s state.State) state.State {
	next := s
	for i := 0; i < types.SlotCount; i++ {
		next.Boards[i] = bitutil.Mirror12(s.Boards[i])
	}
	return next
}

// Canonical is the mirror-minimized key used for visited-set dedup: the
// smaller, under types.Key.Less, of Encode(s) and Encode(Mirror(s)).
func Canonical(s state.State) types.Key {
	return Encode(s).Min(Encode(Mirror(s)))
}
