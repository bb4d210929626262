//
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

package search

import (
	"os"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/tail-island/qashogi-go/internal/config"
	"github.com/tail-island/qashogi-go/internal/qlog"
)

var logTest *logging.Logger

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	logTest = qlog.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

// maxDepth=1 lets the initial state expand once: the root itself sits at
// depth 0, so bounding the frontier to depth 1 still visits every direct
// successor before the bound takes effect on the next pop.
func TestRunMaxDepthOneExpandsOnePlyPastInitial(t *testing.T) {
	count, stats := Run(1)

	assert.Greater(t, count, 1, "the initial state has legal moves, so depth 1 must reach successors")
	assert.Equal(t, 1, stats.MaxFrontierDepth)
}

func TestRunBoundedDepthGrowsVisitedCount(t *testing.T) {
	shallow, _ := Run(1)
	deeper, _ := Run(2)

	assert.Greater(t, deeper, shallow)
}

func TestRunBoundedDepthNeverExceedsMaxFrontierDepth(t *testing.T) {
	const maxDepth = 3

	_, stats := Run(maxDepth)

	assert.LessOrEqual(t, stats.MaxFrontierDepth, maxDepth)
}

func TestRunReportsElapsedAndThroughput(t *testing.T) {
	_, stats := Run(2)

	logTest.Debug(stats.String())
	assert.NotZero(t, stats.Elapsed)
	assert.NotEmpty(t, stats.String())
}

func TestRunDeeperBoundKeepsGrowingVisitedCount(t *testing.T) {
	// The full state space is far too large to enumerate exhaustively in a
	// unit test, so instead of an unbounded run this checks that raising
	// the bound from 3 to 4 plies keeps strictly growing the visited count
	// rather than stalling (which would indicate the visited set is
	// rejecting states it shouldn't).
	three, _ := Run(3)
	four, _ := Run(4)

	assert.Greater(t, four, three)
}
