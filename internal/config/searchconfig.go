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
//

package config

// searchConfiguration holds the search driver's resource bounds: no
// move evaluation or pruning knobs live here, since the driver exhausts
// the reachable state space rather than searching toward a best move.
type searchConfiguration struct {
	// VisitedInitialCapacity seeds internal/visited.New, avoiding repeated
	// grow() doublings for runs whose rough state-space size is known.
	VisitedInitialCapacity int

	// MaxFrontierDepth bounds a run from the command line for experiments
	// that don't need the full reachable-state count; 0 means unbounded.
	MaxFrontierDepth int

	// ProgressEvery logs driver progress (states visited, frontier size)
	// after each pop whose visited-state count lies at most the frontier
	// length past a multiple of N; 0 disables progress logging.
	ProgressEvery uint64
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Search.VisitedInitialCapacity = 1 << 16
	Settings.Search.MaxFrontierDepth = 0
	Settings.Search.ProgressEvery = 100_000
}

// setupSearch is Setup's per-section step for the search settings. The
// search defaults are already set by init above, so it applies nothing
// further.
func setupSearch() {
}
