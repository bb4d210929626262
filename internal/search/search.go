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

// Package search is the exhaustive state-space enumerator: a
// frontier stack seeded with the initial state, a canonical-key visited
// set for dedup, and a plain pop/expand loop. There is no move
// evaluation, no alpha-beta, no iterative deepening here - the driver's
// one output of interest is the cardinality of the visited set - but the
// walk itself is shaped like a perft traversal (push successors, count,
// repeat), and it reports a supplementary Stats struct the way a search
// driver reports its statistics alongside its principal result.
package search

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tail-island/qashogi-go/internal/canon"
	"github.com/tail-island/qashogi-go/internal/config"
	"github.com/tail-island/qashogi-go/internal/movegen"
	"github.com/tail-island/qashogi-go/internal/qlog"
	"github.com/tail-island/qashogi-go/internal/state"
	"github.com/tail-island/qashogi-go/internal/util"
	"github.com/tail-island/qashogi-go/internal/visited"
)

var out = message.NewPrinter(language.German)

// Stats is extra data not essential to the driver's single required
// output (the reachable-state count, Run's first return value) - the
// supplementary diagnostics an enumerator accumulates in place of a move
// searcher's principal variation and score.
type Stats struct {
	StatesVisited    uint64
	TerminalStates   uint64
	MaxFrontierDepth int
	Elapsed          time.Duration
}

// StatesPerSecond reports Stats.StatesVisited over Stats.Elapsed.
func (s Stats) StatesPerSecond() uint64 {
	return util.Nps(s.StatesVisited, s.Elapsed)
}

func (s Stats) String() string {
	return out.Sprintf("visited=%d terminal=%d maxDepth=%d elapsed=%s states/sec=%d",
		s.StatesVisited, s.TerminalStates, s.MaxFrontierDepth, s.Elapsed, s.StatesPerSecond())
}

// frame pairs a frontier entry with the depth it was reached at, purely
// for Stats.MaxFrontierDepth bookkeeping.
type frame struct {
	s     state.State
	depth int
}

// Run enumerates every state reachable from state.Initial() under
// next_state, deduplicated by canon.Canonical: pop a state, skip
// it if terminal, otherwise push every novel successor. maxDepth bounds
// the frontier depth explored; 0 (and config.Settings.Search's default)
// means unbounded. Returns the count of distinct canonical states
// visited - the single output of interest - plus the supplementary Stats.
func Run(maxDepth int) (int, Stats) {
	start := time.Now()
	log := qlog.GetSearchLog()

	v := visited.New(config.Settings.Search.VisitedInitialCapacity)
	var stats Stats

	initial := state.Initial()
	v.Insert(canon.Canonical(initial))
	stats.StatesVisited++

	frontier := []frame{{s: initial, depth: 0}}

	for len(frontier) > 0 {
		top := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		stats.MaxFrontierDepth = util.Max(stats.MaxFrontierDepth, top.depth)

		if movegen.IsTerminal(top.s) {
			stats.TerminalStates++
			continue
		}
		if maxDepth > 0 && top.depth >= maxDepth {
			continue
		}

		for _, a := range movegen.LegalActions(top.s) {
			next := state.Apply(top.s, a)
			if !v.Insert(canon.Canonical(next)) {
				continue
			}
			stats.StatesVisited++
			frontier = append(frontier, frame{s: next, depth: top.depth + 1})
		}

		every := config.Settings.Search.ProgressEvery
		if every > 0 && stats.StatesVisited%every < uint64(len(frontier))+1 {
			log.Infof("visited=%d frontier=%d", stats.StatesVisited, len(frontier))
		}
	}

	stats.Elapsed = time.Since(start)
	// good point in time to let the garbage collector do its work - the
	// frontier is drained and only the visited set is still live.
	log.Debug(util.GcWithStats())
	return v.Len(), stats
}
