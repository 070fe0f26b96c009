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

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/riftlang/snippet/snippet"
)

func TestRenderTitleWithID(t *testing.T) {
	g := NewGroup(Error, "unexpected token", WithID("E0001", ""))
	out := Renderer{Decor: snippet.Ascii}.Render(&Report{Groups: []Group{g}})
	assert.Equal(t, "error[E0001]: unexpected token", out)
}

func TestRenderTitleWithHyperlinkedID(t *testing.T) {
	g := NewGroup(Error, "unexpected token", WithID("E0001", "https://example.com/E0001"))
	out := Renderer{Decor: snippet.Ascii}.Render(&Report{Groups: []Group{g}})
	assert.Contains(t, out, "\x1B]8;;https://example.com/E0001\x1B\\")
	assert.Contains(t, out, "unexpected token")
}

func TestRenderNoteAndHelpFooters(t *testing.T) {
	g := NewGroup(Warning, "deprecated call",
		WithNote("scheduled for removal in v2"),
		WithHelpf("use %s instead", "NewThing"))
	out := Renderer{Decor: snippet.Ascii}.Render(&Report{Groups: []Group{g}})

	lines := strings.Split(out, "\n")
	assert.Equal(t, "warning: deprecated call", lines[0])
	assert.Equal(t, "  = note: scheduled for removal in v2", lines[1])
	assert.Equal(t, "  = help: use NewThing instead", lines[2])
}

func TestRenderMultipleGroupsAreBlankSeparated(t *testing.T) {
	a := NewGroup(Error, "first")
	b := NewGroup(Error, "second")
	out := Renderer{Decor: snippet.Ascii}.Render(&Report{Groups: []Group{a, b}})
	assert.Equal(t, "error: first\n\nerror: second", out)
}

func TestShortMessageJoinsPrimaryLabels(t *testing.T) {
	g := NewGroup(Error, "mismatched types",
		WithCause("test.rs", "let x: i32 = \"s\";", 1, []snippet.Annotation{
			{Start: 13, End: 16, Label: "expected `i32`, found `&str`", Kind: snippet.KindPrimary},
		}))
	out := Renderer{ShortMessage: true}.Render(&Report{Groups: []Group{g}})
	assert.Equal(t, "test.rs:1:14: error: mismatched types: expected `i32`, found `&str`", out)
}

func TestShortMessageFallsBackWithoutLocation(t *testing.T) {
	g := NewGroup(Info, "build finished")
	out := Renderer{ShortMessage: true}.Render(&Report{Groups: []Group{g}})
	assert.Equal(t, "info: build finished", out)
}

func TestRenderDiffSuggestionShowsRemovalAndAddition(t *testing.T) {
	g := NewGroup(Error, "wrong value",
		WithSuggestion("test.rs", "let x = 2;", 1, []snippet.Patch{
			{Start: 8, End: 9, Replacement: "3"},
		}))
	out := Renderer{Decor: snippet.Ascii}.Render(&Report{Groups: []Group{g}})
	assert.Contains(t, out, "- let x = 2;")
	assert.Contains(t, out, "+ let x = 3;")
}

func TestAnonymizedLineNumbersUseLLGutter(t *testing.T) {
	source := strings.Repeat("x\n", 55) + "y\nz\n"
	g := NewGroup(Error, "problem",
		WithCause("test.rs", source, 1, []snippet.Annotation{
			{Start: 0, End: 1, Kind: snippet.KindPrimary},
		}))
	r := Renderer{Decor: snippet.Ascii, AnonymizedLineNumbers: true}
	out := r.Render(&Report{Groups: []Group{g}})
	assert.Equal(t, 2, r.lineNumWidth(&Report{Groups: []Group{g}}))
	assert.Contains(t, out, "LL | x")
	assert.NotContains(t, out, "56 |")
}
