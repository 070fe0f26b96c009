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

func TestNewSourceMapSplitsLineEndings(t *testing.T) {
	sm := NewSourceMap("a\r\nb\nc", 1)
	lines := sm.Lines()
	require.Len(t, lines, 3)

	assert.Equal(t, "a", lines[0].Text)
	assert.Equal(t, CRLF, lines[0].EndKind)
	assert.Equal(t, "b", lines[1].Text)
	assert.Equal(t, LF, lines[1].EndKind)
	assert.Equal(t, "c", lines[2].Text)
	assert.Equal(t, EOF, lines[2].EndKind)
}

func TestNewSourceMapLineStartOffset(t *testing.T) {
	sm := NewSourceMap("x\ny", 10)
	lines := sm.Lines()
	assert.Equal(t, 10, lines[0].Index)
	assert.Equal(t, 11, lines[1].Index)
}

func TestSpanToLocationsWithinLine(t *testing.T) {
	sm := NewSourceMap("hello world", 1)
	start, end := sm.SpanToLocations(0, 5)
	assert.Equal(t, Loc{Line: 1, Char: 0, Display: 0, Byte: 0}, start)
	assert.Equal(t, Loc{Line: 1, Char: 5, Display: 5, Byte: 5}, end)
}

func TestSpanToLocationsZeroWidth(t *testing.T) {
	sm := NewSourceMap("hello", 1)
	start, end := sm.SpanToLocations(2, 2)
	assert.Equal(t, start, end)
	assert.Equal(t, 2, start.Display)
}

func TestSpanToLocationsMultiline(t *testing.T) {
	sm := NewSourceMap("foo\nbar\nbaz", 1)
	start, end := sm.SpanToLocations(1, 9)
	assert.Equal(t, 1, start.Line)
	assert.Equal(t, 1, start.Char)
	assert.Equal(t, 3, end.Line)
	assert.Equal(t, 1, end.Char)
}

func TestGetLine(t *testing.T) {
	sm := NewSourceMap("one\ntwo\nthree", 1)
	text, ok := sm.GetLine(2)
	require.True(t, ok)
	assert.Equal(t, "two", text)

	_, ok = sm.GetLine(99)
	assert.False(t, ok)
}

func TestSpanToLines(t *testing.T) {
	sm := NewSourceMap("a\nb\nc\nd", 1)
	lines := sm.SpanToLines(2, 5)
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Index)
	assert.Equal(t, 3, lines[1].Index)
}
