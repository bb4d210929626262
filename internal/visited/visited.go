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

// Package visited implements the search driver's visited set: an
// open-addressed hash set over 128-bit canonical keys, growing by doubling
// once its load factor passes a threshold - the same power-of-two bucket
// count and mask-based hash addressing as a transposition table, stripped
// to presence-only entries, since the search driver needs membership and
// insertion, not a replacement policy or move/value payload.
package visited

import (
	"github.com/op/go-logging"

	"github.com/tail-island/qashogi-go/internal/qlog"
	"github.com/tail-island/qashogi-go/internal/types"
	"github.com/tail-island/qashogi-go/internal/util"
)

// maxLoadFactor triggers a doubling resize once the table is this full.
const maxLoadFactor = 0.75

// Set is a presence-only open-addressed hash set of types.Key, not safe
// for concurrent use (the search driver is single-threaded).
type Set struct {
	log      *logging.Logger
	slots    []slot
	mask     uint64
	size     int
	occupied int
}

type slot struct {
	key types.Key
	set bool
}

// New returns an empty Set whose table starts with capacityHint slots,
// rounded up to the next power of two with a floor of 16. The first
// resize comes once more than maxLoadFactor of those slots are in use.
func New(capacityHint int) *Set {
	n := uint64(16)
	for n < uint64(capacityHint) {
		n <<= 1
	}
	return &Set{
		log:   qlog.GetLog(),
		slots: make([]slot, n),
		mask:  n - 1,
	}
}

// Len returns the number of distinct keys currently stored.
func (s *Set) Len() int {
	return s.size
}

// Contains reports whether key is already in the set.
func (s *Set) Contains(key types.Key) bool {
	i := s.index(key)
	for s.slots[i].set {
		if s.slots[i].key == key {
			return true
		}
		i = (i + 1) & s.mask
	}
	return false
}

// Insert adds key to the set, reporting whether it was novel (true) or
// already present (false) - the search driver's "if key not in visited,
// insert and push" test-and-set in one call.
func (s *Set) Insert(key types.Key) bool {
	if float64(s.occupied+1) > maxLoadFactor*float64(len(s.slots)) {
		s.grow()
	}
	i := s.index(key)
	for s.slots[i].set {
		if s.slots[i].key == key {
			return false
		}
		i = (i + 1) & s.mask
	}
	s.slots[i] = slot{key: key, set: true}
	s.occupied++
	s.size++
	return true
}

func (s *Set) index(key types.Key) uint64 {
	return (key.Hi ^ key.Lo) & s.mask
}

func (s *Set) grow() {
	old := s.slots
	n := uint64(len(old)) << 1
	s.slots = make([]slot, n)
	s.mask = n - 1
	s.occupied = 0
	s.log.Debugf("visited set resized to %d slots (%d keys stored)", n, s.size)
	s.log.Debug(util.MemStat())
	for _, e := range old {
		if !e.set {
			continue
		}
		i := s.index(e.key)
		for s.slots[i].set {
			i = (i + 1) & s.mask
		}
		s.slots[i] = slot{key: e.key, set: true}
		s.occupied++
	}
}
