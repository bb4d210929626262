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

// Package qlog is a thin helper over "github.com/op/go-logging" that
// keeps every call site to one line: a named Logger, a backend and a
// formatter, reconfigured from internal/config's log levels on each
// GetLog/GetSearchLog/GetTestLog call. Only the
// engine, search-driver and test loggers exist; the core speaks no wire
// protocol and needs no protocol logger.
package qlog

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/tail-island/qashogi-go/internal/config"
)

var (
	engineLog *logging.Logger
	searchLog *logging.Logger
	testLog   *logging.Logger

	standardFormat = logging.MustStringFormatter(`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	engineLog = logging.MustGetLogger("engine")
	searchLog = logging.MustGetLogger("search")
	testLog = logging.MustGetLogger("test")
}

// GetLog returns the standard engine logger, backed by os.Stdout and
// leveled from config.LogLevel.
func GetLog() *logging.Logger {
	return configure(engineLog, config.LogLevel)
}

// GetSearchLog returns the search-driver logger, leveled from
// config.SearchLogLevel - separated from GetLog so a caller can quiet the
// driver's per-state progress logging independently of the rest.
func GetSearchLog() *logging.Logger {
	return configure(searchLog, config.SearchLogLevel)
}

// GetTestLog returns the logger _test.go files use, leveled from
// config.TestLogLevel.
func GetTestLog() *logging.Logger {
	return configure(testLog, config.TestLogLevel)
}

func configure(l *logging.Logger, level int) *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(level), "")
	l.SetBackend(leveled)
	return l
}
