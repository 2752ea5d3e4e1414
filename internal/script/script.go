// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package script loads declarative edit scripts and applies them to paths.
//
// A script is a list of operations, each naming a Mutator edit and its
// arguments:
//
//	ops:
//	  - op: reverse
//	    args: {subpath: 0}
//	  - op: split-command
//	    args: {subpath: 0, command: 2, ts: [0.25, 0.5]}
//	  - op: build
//	  - op: shift-forward
//	    args: {subpath: 0, count: 1}
//
// Edits between two build operations form one batch. A trailing batch is
// built implicitly.
package script

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a script document.
type Format string

const (
	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"

	// FormatTOML is a TOML document.
	FormatTOML Format = "toml"
)

var (
	// ErrFormat is returned for an unknown script format.
	ErrFormat = errors.New("script: unknown format")

	// ErrUnknownOp is returned for an operation name that is not an edit.
	ErrUnknownOp = errors.New("script: unknown operation")
)

// Script is a sequence of edit operations.
type Script struct {
	Ops []Op `yaml:"ops" toml:"ops"`
}

// Op is one edit operation. Args are decoded according to Name.
type Op struct {
	Name string         `yaml:"op" toml:"op"`
	Args map[string]any `yaml:"args,omitempty" toml:"args,omitempty"`
}

// FormatFromPath derives the script format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
	}
}

// Load reads a script document from r.
func Load(r io.Reader, format Format) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("script: read: %w", err)
	}
	var s Script
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("script: parse yaml: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("script: parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
	for i, op := range s.Ops {
		if _, ok := handlers[op.Name]; !ok && op.Name != opBuild {
			return nil, fmt.Errorf("%w: %q at index %d", ErrUnknownOp, op.Name, i)
		}
	}
	return &s, nil
}
