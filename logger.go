// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmorph

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so slog never
// builds the record in the first place.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the package logger used by mutators created without
// WithLogger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs the logger used by every Mutator that was not given
// one through WithLogger. The package is silent until SetLogger is
// called; nil silences it again. It may be called from any goroutine.
//
// Mutators write warn records when an edit does not apply to its target
// and is skipped: shifting or filled-splitting an open sub-path,
// unsplitting a sub-path that was never split, or deleting a command
// that is not a split segment. Debug records trace tree changes and
// each build.
//
//	pathmorph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger. The outline package logs through
// it, so one SetLogger call configures both.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
