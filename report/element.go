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

package report

import "github.com/riftlang/snippet/snippet"

// Element is one row-producing piece of a [Group]. It is a closed sum
// type: every concrete implementation lives in this file, and the driver
// in renderer.go switches over them exhaustively.
type Element interface {
	isElement()
}

// TitleID names a diagnostic code, optionally hyperlinked to documentation.
type TitleID struct {
	Code string
	URL  string
}

// Title is a heading line. Primary distinguishes the "error[E0001]: msg"
// banner (bold, one per group) from a secondary "= note: msg" style
// section header.
type Title struct {
	Level   Level
	Text    string
	ID      *TitleID
	Primary bool
}

func (Title) isElement() {}

// Message is a source-aligned footer-style note attached to the group.
type Message struct {
	Level Level
	Text  string
}

func (Message) isElement() {}

// Cause is an annotated source block: the group's main evidence.
type Cause struct {
	Snippet snippet.Snippet[snippet.Annotation]
}

func (Cause) isElement() {}

// Suggestion is a source block whose markers are replacement patches
// rather than annotations.
type Suggestion struct {
	Snippet snippet.Snippet[snippet.Patch]
}

func (Suggestion) isElement() {}

// Origin is a standalone location line, with no snippet body.
type Origin struct {
	Path    string
	Line    *int
	Column  *int
	Primary bool
}

func (Origin) isElement() {}

// Padding is a blank row carrying only the column separator.
type Padding struct{}

func (Padding) isElement() {}

// Group is an ordered sequence of [Element] sharing one severity level.
type Group struct {
	Level    Level
	Elements []Element
}

// Report is an ordered sequence of [Group].
type Report struct {
	Groups []Group
}
