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

// Package movegen enumerates legal actions over a state.State and wires
// them to the next-state transition: the validated next_state operation
// and the look-ahead terminal predicate both need "is this
// action in legal_actions" and so live here rather than in package state.
package movegen

import (
	"github.com/tail-island/qashogi-go/internal/bitutil"
	"github.com/tail-island/qashogi-go/internal/movetable"
	"github.com/tail-island/qashogi-go/internal/state"
	"github.com/tail-island/qashogi-go/internal/types"
)

// LegalActions returns every legal (from, to) pair for s: the
// concatenation of board moves (one per possible kind of each owned
// on-board slot) and hand drops. Duplicate (from, to) pairs arising from
// multiple possible kinds on the same slot are not eliminated - legality
// is a boolean union and the next-state transition is a pure function of
// the pair, so the visited set absorbs the duplication.
func LegalActions(s state.State) []types.Action {
	allyMask := s.AllyMask()
	enemyMask := s.EnemyMask()

	var actions []types.Action
	actions = appendBoardMoves(actions, s, allyMask)
	actions = appendDrops(actions, s, allyMask, enemyMask)
	return actions
}

func appendBoardMoves(actions []types.Action, s state.State, allyMask bitutil.BoardMask) []types.Action {
	for i := 0; i < types.SlotCount; i++ {
		if !s.IsOwned(i) || !s.IsOnBoard(i) {
			continue
		}
		from := types.Square(s.Boards[i].Lsb())
		for k := types.Chick; k < types.KindCount; k++ {
			if !s.Pieces[i].Has(k) {
				continue
			}
			dests := movetable.Nexts(k, from) &^ allyMask
			for dests != 0 {
				to := dests.PopLsb()
				actions = append(actions, types.Action{From: uint8(from), To: uint8(to)})
			}
		}
	}
	return actions
}

func appendDrops(actions []types.Action, s state.State, allyMask, enemyMask bitutil.BoardMask) []types.Action {
	empty := ^(allyMask | enemyMask) & 0xFFF
	for h := range s.HandSlots() {
		for dests := empty; dests != 0; {
			to := dests.PopLsb()
			actions = append(actions, types.Action{From: uint8(types.SquareCount + h), To: uint8(to)})
		}
	}
	return actions
}

// NextState is the checked form of the next-state transition:
// validates a against LegalActions(s) and applies it, or reports false
// on an illegal action. Driver code that only ever applies actions it
// just generated from LegalActions should call state.Apply directly and
// skip this check.
func NextState(s state.State, a types.Action) (state.State, bool) {
	if !Legal(s, a) {
		return state.State{}, false
	}
	return state.Apply(s, a), true
}

// Legal reports whether a appears in LegalActions(s).
func Legal(s state.State, a types.Action) bool {
	for _, la := range LegalActions(s) {
		if la == a {
			return true
		}
	}
	return false
}

// IsTerminal implements the search driver's terminal predicate: s is terminal if some legal action wins immediately,
// or - absent such an action - the side to move has already lost.
func IsTerminal(s state.State) bool {
	for _, a := range LegalActions(s) {
		if state.Won(state.Apply(s, a)) {
			return true
		}
	}
	return state.Lost(s)
}
