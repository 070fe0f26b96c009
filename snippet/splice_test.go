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

func TestSpliceLinesInsertion(t *testing.T) {
	complete, highlights := SpliceLines("let x = 1;", []Patch{{Start: 4, End: 4, Replacement: "mut "}})
	assert.Equal(t, "let mut x = 1;", complete)
	require.Len(t, highlights, 1)
	assert.Equal(t, "mut ", complete[highlights[0].Start:highlights[0].End])
}

func TestSpliceLinesDeletionHasNoHighlight(t *testing.T) {
	complete, highlights := SpliceLines("let mut x = 1;", []Patch{{Start: 4, End: 8, Replacement: ""}})
	assert.Equal(t, "let x = 1;", complete)
	assert.Empty(t, highlights)
}

func TestSpliceLinesReplacement(t *testing.T) {
	complete, highlights := SpliceLines("foo(bar)", []Patch{{Start: 4, End: 7, Replacement: "baz"}})
	assert.Equal(t, "foo(baz)", complete)
	require.Len(t, highlights, 1)
	assert.Equal(t, "baz", complete[highlights[0].Start:highlights[0].End])
}

func TestSpliceLinesPanicsOnOverlap(t *testing.T) {
	assert.Panics(t, func() {
		SpliceLines("abcdef", []Patch{
			{Start: 0, End: 3, Replacement: "x"},
			{Start: 2, End: 5, Replacement: "y"},
		})
	})
}

func TestSpliceLinesMultiplePatchesAscendingOrder(t *testing.T) {
	complete, _ := SpliceLines("abcdef", []Patch{
		{Start: 4, End: 6, Replacement: "Z"},
		{Start: 0, End: 1, Replacement: "A"},
	})
	assert.Equal(t, "AbcdZ", complete)
}
