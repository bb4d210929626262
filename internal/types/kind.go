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

// Package types holds the shared value types of the rules engine: piece
// kinds, kind-possibility masks, board squares, slots, and the (from, to)
// action pair. Kinds are table-driven constants, never an interface
// hierarchy - the possibility mask is the whole point of the representation.
package types

import "math/bits"

// Kind identifies one of the five piece kinds. Hen is the promoted Chick.
type Kind uint8

const (
	Chick Kind = iota
	Giraffe
	Elephant
	Lion
	Hen
	KindCount
)

func (k Kind) String() string {
	switch k {
	case Chick:
		return "chick"
	case Giraffe:
		return "giraffe"
	case Elephant:
		return "elephant"
	case Lion:
		return "lion"
	case Hen:
		return "hen"
	default:
		return "?"
	}
}

// letter is the single-character code used by State.String for a kind.
func (k Kind) letter() byte {
	return "cgelh"[k]
}

// KindMask is a 5-bit mask of possible kinds (bit k set iff kind k is
// still possible); bit 4 is the Hen bit. A zero mask means the slot is
// extinct (captured and reduced to no possibility); State.IsInHand treats
// such an off-board slot as absent rather than held in hand.
type KindMask uint8

// Has reports whether kind k is still possible.
func (m KindMask) Has(k Kind) bool {
	return m&(1<<k) != 0
}

// PopCount returns the number of possible kinds.
func (m KindMask) PopCount() int {
	return bits.OnesCount8(uint8(m))
}

// Unpromoted folds the Hen bit back onto the Chick bit, yielding the 4-bit
// possibility mask over the original (unpromoted) kinds: u = (m | m>>4) & 0xF.
func (m KindMask) Unpromoted() KindMask {
	return (m | m>>4) & 0xF
}

// String renders the mask as the concatenation of single-letter kind
// codes, e.g. "cg" for {chick, giraffe}.
func (m KindMask) String() string {
	if m == 0 {
		return "-"
	}
	var b []byte
	for k := Chick; k < KindCount; k++ {
		if m.Has(k) {
			b = append(b, k.letter())
		}
	}
	return string(b)
}

const (
	// ChickBit .. HenBit are the single-kind masks, used throughout the
	// collapse and transition logic.
	ChickBit    KindMask = 1 << Chick
	GiraffeBit  KindMask = 1 << Giraffe
	ElephantBit KindMask = 1 << Elephant
	LionBit     KindMask = 1 << Lion
	HenBit      KindMask = 1 << Hen

	// AllUnpromoted is the possibility mask before any collapse: the four
	// original kinds, hen excluded (a slot is never born a hen).
	AllUnpromoted KindMask = ChickBit | GiraffeBit | ElephantBit | LionBit
)
