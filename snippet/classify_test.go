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
	"github.com/stretchr/testify/require"
)

func TestClassifySingleline(t *testing.T) {
	sm := NewSourceMap("let x = 1;", 1)
	_, lines := ClassifyAnnotations(sm, []Annotation{
		{Start: 4, End: 5, Label: "variable", Kind: KindPrimary},
	}, false)

	require.Len(t, lines, 1)
	require.Len(t, lines[0].Annotations, 1)
	a := lines[0].Annotations[0]
	assert.Equal(t, Singleline, a.Type)
	assert.Equal(t, 4, a.Start.Display)
	assert.Equal(t, 5, a.End.Display)
}

func TestClassifyMultilineAssignsDepth(t *testing.T) {
	source := "fn foo() {\n    body();\n}\n"
	sm := NewSourceMap(source, 1)
	_, lines := ClassifyAnnotations(sm, []Annotation{
		{Start: 0, End: 24, Label: "function", Kind: KindPrimary},
	}, false)

	var start, end *LineAnnotation
	for i := range lines {
		for j := range lines[i].Annotations {
			switch lines[i].Annotations[j].Type {
			case MultilineStart:
				start = &lines[i].Annotations[j]
			case MultilineEnd:
				end = &lines[i].Annotations[j]
			}
		}
	}
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, 1, start.Depth)
	assert.Equal(t, 1, end.Depth)
}

func TestClassifyOverlappingMultilineGetDistinctDepths(t *testing.T) {
	source := "a(\n  b(\n    c\n  )\n)\n"
	sm := NewSourceMap(source, 1)
	maxDepth, lines := ClassifyAnnotations(sm, []Annotation{
		{Start: 0, End: len(source), Kind: KindPrimary, Label: "outer"},
		{Start: 3, End: 17, Kind: KindContext, Label: "inner"},
	}, false)

	assert.Equal(t, 2, maxDepth)

	depths := map[int]bool{}
	for _, l := range lines {
		for _, a := range l.Annotations {
			if a.Type == MultilineStart {
				depths[a.Depth] = true
			}
		}
	}
	assert.Len(t, depths, 2, "overlapping multi-line spans must use distinct depths")
}

func TestClassifyZeroWidthBump(t *testing.T) {
	sm := NewSourceMap("abc", 1)
	_, lines := ClassifyAnnotations(sm, []Annotation{
		{Start: 1, End: 1, Kind: KindPrimary},
	}, false)

	require.Len(t, lines, 1)
	a := lines[0].Annotations[0]
	assert.Equal(t, 1, a.Start.Display)
	assert.Equal(t, 2, a.End.Display)
}

func TestClassifyPanicsOnSpanBeyondEOF(t *testing.T) {
	sm := NewSourceMap("abc", 1)
	assert.Panics(t, func() {
		ClassifyAnnotations(sm, []Annotation{{Start: 0, End: 100, Kind: KindPrimary}}, false)
	})
}

func TestClassifyVisibleKindForcesLineWithNoUnderline(t *testing.T) {
	sm := NewSourceMap("fn foo() {\n    body();\n}\n", 1)
	_, lines := ClassifyAnnotations(sm, []Annotation{
		{Start: 11, End: 15, Kind: KindVisible},
	}, true)

	require.Len(t, lines, 1)
	require.Len(t, lines[0].Annotations, 1)
	a := lines[0].Annotations[0]
	assert.Equal(t, Singleline, a.Type)
	assert.Equal(t, KindVisible, a.Kind)
	assert.Equal(t, a.Start, a.End, "a visible annotation carries no span, just a line marker")
}

func TestClassifyVisibleKindCollapsesMultilineSpanToFirstLine(t *testing.T) {
	sm := NewSourceMap("a(\n  b(\n    c\n  )\n)\n", 1)
	_, lines := ClassifyAnnotations(sm, []Annotation{
		{Start: 0, End: 19, Kind: KindVisible},
	}, true)

	require.Len(t, lines, 1, "a Visible annotation never spans multiple lines")
	assert.Equal(t, 1, lines[0].LineIndex)
}

func TestClassifySnapsSpanToPrecedingRuneBoundary(t *testing.T) {
	sm := NewSourceMap("café bar", 1)
	_, lines := ClassifyAnnotations(sm, []Annotation{
		// "café" is "c","a","f",0xc3,0xa9; byte 4 lands inside the
		// two-byte é encoding and must snap back to byte 3.
		{Start: 4, End: 5, Kind: KindPrimary},
	}, false)

	require.Len(t, lines, 1)
	require.Len(t, lines[0].Annotations, 1)
	a := lines[0].Annotations[0]
	assert.Equal(t, 3, a.Start.Char)
}

func TestClassifyAdjacentMultilineSpansGetNoMiddlePlaceholder(t *testing.T) {
	sm := NewSourceMap("AAAA\nBBBB\nCCCC\n", 1)
	_, lines := ClassifyAnnotations(sm, []Annotation{
		{Start: 1, End: 6, Kind: KindPrimary, Label: "outer"},
		{Start: 2, End: 7, Kind: KindContext, Label: "inner"},
	}, true)

	require.Len(t, lines, 2, "a two-line span touches exactly its start and end line")
	for _, l := range lines {
		for _, a := range l.Annotations {
			assert.NotEqual(t, MultilineLine, a.Type, "adjacent spans have no interior line to show")
		}
	}
}

func TestIsVisibleMiddleLine(t *testing.T) {
	assert.False(t, isVisibleMiddleLine("   "))
	assert.False(t, isVisibleMiddleLine("// plain comment"))
	assert.True(t, isVisibleMiddleLine("/// doc comment"))
	assert.True(t, isVisibleMiddleLine("//! module doc"))
	assert.True(t, isVisibleMiddleLine("    real_code();"))
	assert.False(t, isVisibleMiddleLine("}"))
}
