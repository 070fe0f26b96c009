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

func TestMarginNoTrimWhenLineFits(t *testing.T) {
	m := NewMargin(0, 0, 20, 20, 140, 20)
	assert.False(t, m.WasCutLeft())
	assert.False(t, m.WasCutRight(20))
	assert.Equal(t, 0, m.Left(20))
	assert.Equal(t, 20, m.Right(20))
}

func TestMarginTrimsDeepIndentation(t *testing.T) {
	m := NewMargin(40, 40, 50, 50, 80, 50)
	assert.True(t, m.WasCutLeft())
	assert.True(t, m.Left(50) > 0)
}

func TestMarginFallsBackToSpanWindow(t *testing.T) {
	m := NewMargin(0, 1000, 1010, 1010, 40, 1010)
	assert.True(t, m.WasCutLeft())
	left := m.Left(1010)
	right := m.Right(1010)
	assert.True(t, left <= 1000)
	assert.True(t, right >= 1010 || right-left <= 40)
}
