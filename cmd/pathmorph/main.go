// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command pathmorph applies structural edit scripts to vector paths.
//
// Usage:
//
//	pathmorph apply --d "M0 0 L10 0 L10 10 Z" --script edits.yaml
//	pathmorph apply --glyph A --script edits.toml --png out.png
//	pathmorph glyph A --size 64 --parser gotext
//	pathmorph shape star --sides 6 --radius 40
package main

func main() {
	Execute()
}
