// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmorph

import "errors"

var (
	// ErrNoSplitValues is returned when a command split is requested
	// without any parametric values.
	ErrNoSplitValues = errors.New("pathmorph: at least one split value is required")

	// ErrInvalidSplitValue is returned for split values outside (0, 1).
	ErrInvalidSplitValue = errors.New("pathmorph: split value must be in the open interval (0, 1)")

	// ErrSubPathIndex is returned for an external sub-path index outside
	// the sub-path ordering.
	ErrSubPathIndex = errors.New("pathmorph: sub-path index out of range")

	// ErrCommandIndex is returned for a command index outside its sub-path.
	ErrCommandIndex = errors.New("pathmorph: command index out of range")

	// ErrNotSplitPoint is returned when unsplitting a point that was not
	// produced by a command split.
	ErrNotSplitPoint = errors.New("pathmorph: command does not end at a split point")

	// ErrMoveCommand is returned when splitting or converting a move command.
	ErrMoveCommand = errors.New("pathmorph: operation not supported on a move command")

	// ErrConvertType is returned for an unsupported conversion target.
	ErrConvertType = errors.New("pathmorph: unsupported conversion target type")

	// ErrInvalidPath is returned when authored commands do not form a
	// valid path (for example a sub-path that does not begin with a move).
	ErrInvalidPath = errors.New("pathmorph: invalid path")

	// ErrInvariant reports a corrupted snapshot: index arithmetic failed
	// to locate a command that must exist.
	ErrInvariant = errors.New("pathmorph: internal invariant violated")
)
