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

// Package bitutil implements the small bit-twiddling primitives shared by
// the move table, move generator and canonical encoder: iterating the set
// bits of a board mask and mirroring a 12-bit board left-to-right.
package bitutil

import "math/bits"

// BoardMask is a 12-bit mask over the 3x4 board, bit i = column (i%3),
// row (i/3).
type BoardMask uint16

// Lsb returns the index of the least significant set bit, or -1 if empty.
func (m BoardMask) Lsb() int {
	if m == 0 {
		return -1
	}
	return bits.TrailingZeros16(uint16(m))
}

// PopLsb removes and returns the least significant set bit's index, or -1
// if the mask is empty.
func (m *BoardMask) PopLsb() int {
	lsb := m.Lsb()
	if lsb < 0 {
		return -1
	}
	*m &= *m - 1
	return lsb
}

// PopCount returns the number of set bits.
func (m BoardMask) PopCount() int {
	return bits.OnesCount16(uint16(m))
}

// Bits returns the set bit positions of m, least significant first. It
// allocates; hot paths (legal-action generation) should prefer PopLsb in a
// loop instead.
func Bits(m BoardMask) []int {
	out := make([]int, 0, m.PopCount())
	for b := m; b != 0; {
		out = append(out, b.PopLsb())
	}
	return out
}

// mirrorPairs are the column-0/column-2 swaps for each of the board's 4
// rows: (0,2), (3,5), (6,8), (9,11).
var mirrorPairs = [4][2]uint{
	{0, 2},
	{3, 5},
	{6, 8},
	{9, 11},
}

// Mirror12 reflects a 12-bit board mask across the middle column, swapping
// column 0 with column 2 in each of the 4 rows. Column 1 (the middle
// column) is fixed by construction.
func Mirror12(m BoardMask) BoardMask {
	out := m & 0b010_010_010_010 // middle column bits pass through untouched
	for _, p := range mirrorPairs {
		lo, hi := p[0], p[1]
		if m&(1<<lo) != 0 {
			out |= 1 << hi
		}
		if m&(1<<hi) != 0 {
			out |= 1 << lo
		}
	}
	return out
}

// Reverse12 reverses the low 12 bits of m (bit i <-> bit 11-i), the
// effect of rotating the whole board 180 degrees - used when a state is
// re-expressed from the other player's perspective.
func Reverse12(m BoardMask) BoardMask {
	var r BoardMask
	for i := 0; i < 12; i++ {
		if m&(1<<uint(i)) != 0 {
			r |= 1 << uint(11-i)
		}
	}
	return r
}
