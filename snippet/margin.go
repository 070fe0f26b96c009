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

// marginPadding is slack reserved so a trimmed line still has room to show
// the "..." ellipsis without crowding the code it's trimming.
const marginPadding = 6

// Margin decides which horizontal slice of a long source line to display,
// balancing the desire to show the whole span being annotated against a
// fixed terminal width.
type Margin struct {
	whitespaceLeft int
	spanLeft       int
	spanRight      int
	labelRight     int
	columnWidth    int
	computedLeft   int
	computedRight  int
}

// NewMargin computes a Margin for a line whose leading whitespace run is
// whitespaceLeft columns wide, whose annotated span runs from spanLeft to
// spanRight, whose right-most label (if any shares the line) ends at
// labelRight, rendered into a terminal columnWidth columns wide, given that
// the longest source line in the snippet is maxLineLen columns.
func NewMargin(whitespaceLeft, spanLeft, spanRight, labelRight, columnWidth, maxLineLen int) Margin {
	m := Margin{
		whitespaceLeft: satSub(whitespaceLeft, marginPadding),
		spanLeft:       satSub(spanLeft, marginPadding),
		spanRight:      spanRight + marginPadding,
		labelRight:     labelRight + marginPadding,
		columnWidth:    columnWidth,
	}
	m.compute(maxLineLen)
	return m
}

func satSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}

func (m *Margin) compute(maxLineLen int) {
	if m.whitespaceLeft > 20 {
		m.computedLeft = m.whitespaceLeft - 16
	} else {
		m.computedLeft = 0
	}

	m.computedRight = maxLineLen
	if m.computedLeft > m.computedRight {
		m.computedRight = m.computedLeft
	}

	if m.computedRight-m.computedLeft <= m.columnWidth {
		return
	}

	switch {
	case m.labelRight-m.whitespaceLeft <= m.columnWidth:
		m.computedLeft = m.whitespaceLeft
		m.computedRight = m.computedLeft + m.columnWidth
	case m.labelRight-m.spanLeft <= m.columnWidth:
		padLeft := (m.columnWidth - (m.labelRight - m.spanLeft)) / 2
		m.computedLeft = satSub(m.spanLeft, padLeft)
		m.computedRight = m.computedLeft + m.columnWidth
	case m.spanRight-m.spanLeft <= m.columnWidth:
		padLeft := (m.columnWidth - (m.spanRight - m.spanLeft)) / 5 * 2
		m.computedLeft = satSub(m.spanLeft, padLeft)
		m.computedRight = m.computedLeft + m.columnWidth
	default:
		m.computedLeft = m.spanLeft
		m.computedRight = m.spanRight
	}
}

// WasCutLeft reports whether the computed window trims anything from the
// start of the line.
func (m Margin) WasCutLeft() bool {
	return m.computedLeft > 0
}

// WasCutRight reports whether the computed window trims anything from the
// end of a line lineLen columns wide.
func (m Margin) WasCutRight(lineLen int) bool {
	right := m.computedRight
	if m.computedRight == m.spanRight || m.computedRight == m.labelRight {
		right -= marginPadding
	}
	return right < lineLen && m.computedLeft+m.columnWidth < lineLen
}

// Left returns the first column of the window to display for a line
// lineLen columns wide.
func (m Margin) Left(lineLen int) int {
	if m.computedLeft < lineLen {
		return m.computedLeft
	}
	return lineLen
}

// Right returns the column just past the last column of the window to
// display for a line lineLen columns wide.
func (m Margin) Right(lineLen int) int {
	if lineLen-m.computedLeft <= m.columnWidth {
		return lineLen
	}
	if lineLen < m.computedRight {
		return lineLen
	}
	return m.computedRight
}
