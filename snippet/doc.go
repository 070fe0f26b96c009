// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package snippet implements the layout engine that turns a source string
// plus a set of byte-range annotations into a two-dimensional grid of
// styled cells: gutters, carets, multi-line connectors, labels, and diff
// suggestion blocks.
//
// This package is pure and single-threaded: every exported function takes
// its inputs by value or shared reference and returns a result with no
// retained state. It does not parse source code, does not touch the file
// system, and does not measure the real terminal; callers supply a
// destination width.
//
// The package is organized bottom-up, following its own internal dependency
// order:
//
//   - width.go     display-width tables and the control-character
//     replacement table
//   - sourcemap.go line splitting and byte-offset -> (line, char, display)
//     resolution
//   - classify.go  lifts raw annotations into single/multi-line line
//     annotations with assigned connector depths
//   - buffer.go    the styled 2-D character grid
//   - margin.go    horizontal viewport selection
//   - layout.go    the snippet layout engine itself, including the vertical
//     fold of long unannotated runs
//   - suggestion.go diff-style patch rendering
//   - decor.go     ASCII vs Unicode glyph tables
package snippet
