// +build !debug

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

// Package assert lets the state and search-driver invariants (disjoint
// slot bitboards, per-origin-group possibility counts) be stated inline
// without a runtime cost in release builds: the check always compiles,
// but Assert is a no-op unless built with the debug tag.
package assert

// DEBUG is true only in binaries built with -tags debug.
const DEBUG = false

// Assert panics with msg if test is false. A no-op in release builds;
// still guard expensive test expressions with `if assert.DEBUG` so the
// compiler can eliminate them entirely.
func Assert(test bool, msg string, a ...interface{}) {}
