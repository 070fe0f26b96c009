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

package snippet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySuggestionDiff(t *testing.T) {
	mode := ClassifySuggestion("let mut x = 1;", []Patch{{Start: 4, End: 8, Replacement: ""}})
	assert.Equal(t, ModeDiff, mode)
}

func TestClassifySuggestionAdd(t *testing.T) {
	mode := ClassifySuggestion("fn foo() {}\n", []Patch{{Start: 0, End: 0, Replacement: "#[inline]\n"}})
	assert.Equal(t, ModeAdd, mode)
}

func TestClassifySuggestionUnderline(t *testing.T) {
	mode := ClassifySuggestion("let x = 1;", []Patch{{Start: 4, End: 5, Replacement: "y"}})
	assert.Equal(t, ModeUnderline, mode)
}

func TestRenderSuggestionDiffProducesRemovalAndAddition(t *testing.T) {
	buf := NewStyledBuffer()
	lay := SnippetLayout{LineNumWidth: 1, TermWidth: 140, Decor: DecorFor(Ascii)}
	RenderSuggestion(buf, 0, "let mut x = 1;", []Patch{{Start: 4, End: 8, Replacement: ""}}, 1, lay)
	got := buf.Render(PlainStylesheet())
	assert.Contains(t, got, "- let mut x = 1;")
	assert.Contains(t, got, "+ let x = 1;")
}
