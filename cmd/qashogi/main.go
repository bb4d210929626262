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

package main

import (
	"flag"
	"runtime"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tail-island/qashogi-go/internal/config"
	"github.com/tail-island/qashogi-go/internal/qlog"
	"github.com/tail-island/qashogi-go/internal/search"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(off|critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search driver log level\n(off|critical|error|warning|notice|info|debug)")
	maxDepth := flag.Int("maxdepth", 0, "bound the frontier depth explored\n0 enumerates the full reachable state space")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the run to cpu.pprof")
	versionInfo := flag.Bool("version", false, "prints version and exits")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
	if *maxDepth != 0 {
		config.Settings.Search.MaxFrontierDepth = *maxDepth
	}

	// resetting log level after config.Setup() - qlog's loggers are package
	// vars created at import time, before config.LogLevel/SearchLogLevel
	// are known.
	qlog.GetLog()
	qlog.GetSearchLog()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	count, stats := search.Run(config.Settings.Search.MaxFrontierDepth)
	out.Printf("reachable canonical states: %d\n", count)
	out.Println(stats)
}

func printVersionInfo() {
	out.Println("qashogi-go state-space enumerator")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
}
