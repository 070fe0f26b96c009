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

func TestOutputReplacementsSorted(t *testing.T) {
	require.True(t, checkReplacementsSorted(OutputReplacements), "OutputReplacements must be sorted and duplicate-free")
}

func TestCharWidthTab(t *testing.T) {
	assert.Equal(t, TabWidth, CharWidth('\t'))
}

func TestCharWidthControlsAndBiDi(t *testing.T) {
	assert.Equal(t, 1, CharWidth(0x0001))
	assert.Equal(t, 1, CharWidth(0x007F))
	assert.Equal(t, 1, CharWidth(0x202A))
	assert.Equal(t, 1, CharWidth(0x200D))
}

func TestCharWidthWide(t *testing.T) {
	assert.Equal(t, 2, CharWidth('世'))
	assert.Equal(t, 1, CharWidth('a'))
}

func TestStringWidth(t *testing.T) {
	assert.Equal(t, 5, StringWidth("hello"))
	assert.Equal(t, 4, StringWidth("世界"))
}

func TestNormalizeWhitespaceReplacesControls(t *testing.T) {
	out := NormalizeWhitespace("a\x01b")
	assert.Equal(t, "a␁b", out)
}

func TestNormalizeWhitespaceIdempotent(t *testing.T) {
	s := "hello \x01 world‍"
	once := NormalizeWhitespace(s)
	twice := NormalizeWhitespace(once)
	assert.Equal(t, once, twice, "normalizing an already-normalized string must be a no-op")
}

func TestExpandTabsAlignsToTabstop(t *testing.T) {
	assert.Equal(t, "    x", ExpandTabs("\tx", 0))
	assert.Equal(t, "a   x", ExpandTabs("a\tx", 0))
}
