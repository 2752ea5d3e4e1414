// Package pathmorph provides non-destructive structural editing of vector
// paths.
//
// # Overview
//
// A Path is an immutable sequence of drawing commands (move, line,
// quadratic, cubic, close) grouped into sub-paths. Editing a path never
// changes it: Mutate returns a Mutator that records a batch of edits and
// Build produces a new Path. Every edit can be traced back to the
// authored commands, so edits such as reversal or command splits can be
// undone exactly.
//
// # Quick Start
//
//	import "github.com/gogpu/pathmorph"
//
//	p := pathmorph.BuildPath().Rect(0, 0, 10, 10).Build()
//
//	q, err := p.Mutate().
//	    ReverseSubPath(0).
//	    ShiftSubPathForward(0, 1).
//	    SplitCommandInHalf(0, 2).
//	    Build()
//
// # Architecture
//
// The package is organized into:
//   - Geometry: Point, Matrix, Line, QuadBez, CubicBez
//   - Commands: Command and CommandState, a run of commands derived from
//     one authored command through splits and conversions
//   - Sub-paths: SubPathState, a node of a tree of sub-paths; leaves render,
//     internal nodes record how a sub-path was split
//   - Snapshots: PathState and Path; Mutator edits a snapshot
//
// # Indexing
//
// Edits address sub-paths by their external index, the position in the
// sub-path ordering, and commands by their index within the rendered
// sub-path. Reversal and shifting are stored as flags on a leaf and
// applied when the path is built, so external indices always refer to
// what the caller sees.
//
// # Errors
//
// Invalid arguments stop the batch: the mutator records the error and
// Build returns it. Edits that do not apply to their target, such as
// shifting an open sub-path, are ignored and logged at warn level. See
// SetLogger.
package pathmorph

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = ""
)
