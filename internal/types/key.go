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

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// Key is a 128-bit state encoding, split into two 64-bit halves so it
// remains a plain comparable value usable as a map key (the visited set
// keys on it directly rather than hashing a byte slice on every probe).
type Key struct {
	Hi, Lo uint64
}

// KeyFromBig truncates b modulo 2^128 and packs the low 128 bits into a
// Key. Descriptor packing (internal/canon) can in principle place a hand
// slot's descriptor past bit 127 when many slots are simultaneously in
// hand; the truncation is intentionally silent, matching plain 128-bit
// wrapping arithmetic, rather than an error.
func KeyFromBig(b *big.Int) Key {
	mod := new(big.Int).Lsh(big.NewInt(1), 128)
	v := new(big.Int).Mod(b, mod)
	var buf [16]byte
	v.FillBytes(buf[:])
	return Key{
		Hi: binary.BigEndian.Uint64(buf[0:8]),
		Lo: binary.BigEndian.Uint64(buf[8:16]),
	}
}

// Less gives Key a total order so two encodings of a state (straight and
// mirrored) can be compared to pick the canonical (smaller) one.
func (k Key) Less(other Key) bool {
	if k.Hi != other.Hi {
		return k.Hi < other.Hi
	}
	return k.Lo < other.Lo
}

// Min returns the smaller of k and other under Less.
func (k Key) Min(other Key) Key {
	if other.Less(k) {
		return other
	}
	return k
}

func (k Key) String() string {
	return fmt.Sprintf("%016x%016x", k.Hi, k.Lo)
}
