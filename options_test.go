// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmorph

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultMutatorOptions(t *testing.T) {
	o := defaultMutatorOptions()
	if o.logger != nil {
		t.Error("default options should not carry a logger")
	}
}

// TestWithLogger tests that a per-mutator logger overrides the package logger.
func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p := BuildPath().Rect(0, 0, 10, 10).Build()
	m := p.Mutate(WithLogger(logger))
	if m.log() != logger {
		t.Fatal("mutator did not use the logger passed with WithLogger")
	}

	if _, err := m.SplitStrokedSubPath(0, 2).Build(); err != nil {
		t.Fatalf("Build() = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "stroked split") {
		t.Errorf("expected debug record for the split, got: %s", out)
	}
	if !strings.Contains(out, "built path") {
		t.Errorf("expected debug record for the build, got: %s", out)
	}
}

func TestMutatorFallsBackToPackageLogger(t *testing.T) {
	m := BuildPath().Rect(0, 0, 10, 10).Build().Mutate()
	if m.log() != Logger() {
		t.Error("mutator without WithLogger should use Logger()")
	}
}
