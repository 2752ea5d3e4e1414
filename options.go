// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmorph

import "log/slog"

// MutatorOption configures a Mutator during creation.
//
// Example:
//
//	m := path.Mutate(pathmorph.WithLogger(logger))
type MutatorOption func(*mutatorOptions)

// mutatorOptions holds optional configuration for Mutator creation.
type mutatorOptions struct {
	logger *slog.Logger
}

// defaultMutatorOptions returns the default mutator options.
func defaultMutatorOptions() mutatorOptions {
	return mutatorOptions{
		logger: nil, // Falls back to Logger() when nil
	}
}

// WithLogger sets the logger used by a single Mutator, overriding the
// package logger configured with SetLogger.
func WithLogger(l *slog.Logger) MutatorOption {
	return func(o *mutatorOptions) {
		o.logger = l
	}
}
