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

// Package movetable precomputes, for every piece kind and board square,
// the bitboard of squares reachable in a single move. It is the only
// process-wide state in the core: a pure, read-only
// table computed once at first use and never mutated afterwards.
package movetable

import (
	"sync"

	"github.com/tail-island/qashogi-go/internal/bitutil"
	"github.com/tail-island/qashogi-go/internal/types"
)

const (
	maskAll = 0xFFF

	// column masks used to prevent a shift from wrapping a piece into the
	// opposite edge column.
	northSrcMask = 0b000_111_111_111 // rows 0..2
	southSrcMask = 0b111_111_111_000 // rows 1..3
	eastSrcMask  = 0b011_011_011_011 // columns 0..1
	westSrcMask  = 0b110_110_110_110 // columns 1..2
)

func north(b bitutil.BoardMask) bitutil.BoardMask { return (b & northSrcMask) << 3 }
func south(b bitutil.BoardMask) bitutil.BoardMask { return (b & southSrcMask) >> 3 }
func east(b bitutil.BoardMask) bitutil.BoardMask  { return (b & eastSrcMask) << 1 }
func west(b bitutil.BoardMask) bitutil.BoardMask  { return (b & westSrcMask) >> 1 }

var (
	once  sync.Once
	nexts [types.KindCount][types.SquareCount]bitutil.BoardMask
)

// Nexts returns NEXTS[kind][square]: the 12-bit mask of squares reachable
// from square in a single move as kind. The table is computed lazily on
// first use and is safe for concurrent readers thereafter.
func Nexts(kind types.Kind, square types.Square) bitutil.BoardMask {
	once.Do(compute)
	return nexts[kind][square]
}

func compute() {
	for s := types.Square(0); s < types.SquareCount; s++ {
		b := bitutil.BoardMask(1) << s

		n, so, e, w := north(b), south(b), east(b), west(b)
		ne, nw := north(e), north(w)
		se, sw := south(e), south(w)

		nexts[types.Chick][s] = n
		nexts[types.Giraffe][s] = n | so | e | w
		nexts[types.Elephant][s] = ne | nw | se | sw
		nexts[types.Lion][s] = n | so | e | w | ne | nw | se | sw
		nexts[types.Hen][s] = n | so | e | w | ne | nw
	}
}
