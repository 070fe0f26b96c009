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

import "strings"

// StyleTag names a semantic style a [StyledBuffer] cell can carry. The
// mapping from tag to actual ANSI escape is supplied separately by a
// [Stylesheet], so the buffer itself never hard-codes a color.
type StyleTag int

const (
	// NoStyle is the zero value: an unstyled cell.
	NoStyle StyleTag = iota
	MainHeaderMsg
	HeaderMsg
	LineAndColumn
	LineNumber
	Quotation
	UnderlinePrimary
	UnderlineSecondary
	LabelPrimary
	LabelSecondary
	Addition
	Removal
)

// StyledCell is one character cell of a [StyledBuffer].
type StyledCell struct {
	Ch    rune
	Style StyleTag
}

// spaceCell is the filler rune used to pad rows that [Putc] or [Prepend]
// extend past their current length.
const spaceCell = ' '

// StyledBuffer is a 2-D grid of [StyledCell], built up a row at a time and
// finally flattened to a string by [StyledBuffer.Render]. It is the output
// target every drawing routine in this package writes into; nothing outside
// this package constructs one directly.
type StyledBuffer struct {
	lines [][]StyledCell
}

// NewStyledBuffer returns an empty buffer.
func NewStyledBuffer() *StyledBuffer {
	return &StyledBuffer{}
}

// NumLines reports how many rows the buffer currently has.
func (b *StyledBuffer) NumLines() int {
	return len(b.lines)
}

// Row returns a copy of line's cells, or nil if line is out of range. It
// exists for tests that need to assert on cell-level structure rather than
// the flattened, styled string [Render] produces.
func (b *StyledBuffer) Row(line int) []StyledCell {
	if line < 0 || line >= len(b.lines) {
		return nil
	}
	row := make([]StyledCell, len(b.lines[line]))
	copy(row, b.lines[line])
	return row
}

func (b *StyledBuffer) ensureLine(line int) {
	for line >= len(b.lines) {
		b.lines = append(b.lines, nil)
	}
}

func (b *StyledBuffer) ensureCol(line, col int) {
	row := b.lines[line]
	for len(row) <= col {
		row = append(row, StyledCell{Ch: spaceCell, Style: NoStyle})
	}
	b.lines[line] = row
}

// Putc writes a single styled character at (line, col), extending the buffer
// with blank rows/padding as needed. Writing past the end of a row pads the
// gap with plain spaces, matching the Rust StyledBuffer's putc.
func (b *StyledBuffer) Putc(line, col int, ch rune, style StyleTag) {
	b.ensureLine(line)
	b.ensureCol(line, col)
	b.lines[line][col] = StyledCell{Ch: ch, Style: style}
}

// Puts writes s starting at (line, col) rune by rune, all with the same
// style, and returns the display width consumed.
func (b *StyledBuffer) Puts(line, col int, s string, style StyleTag) int {
	c := col
	for _, r := range s {
		b.Putc(line, c, r, style)
		c += CharWidth(r)
	}
	return c - col
}

// Append writes s immediately after the current end of line, returning the
// column it was written at.
func (b *StyledBuffer) Append(line int, s string, style StyleTag) int {
	b.ensureLine(line)
	col := len(b.lines[line])
	b.Puts(line, col, s, style)
	return col
}

// Prepend inserts s at the start of line, shifting existing content right.
// This mirrors the Rust StyledBuffer's prepend, which first pads the line
// out then writes s over the new leading space.
func (b *StyledBuffer) Prepend(line int, s string, style StyleTag) {
	b.ensureLine(line)
	n := StringWidth(s)
	padded := make([]StyledCell, len(b.lines[line])+n)
	for i := 0; i < n; i++ {
		padded[i] = StyledCell{Ch: spaceCell, Style: NoStyle}
	}
	copy(padded[n:], b.lines[line])
	b.lines[line] = padded
	b.Puts(line, 0, s, style)
}

// SetStyleRange overwrites the style of every existing cell in
// [startCol, endCol) on line with style, without changing the characters.
// Columns past the current row length are left untouched: this call never
// extends a row on its own, matching how underline layering is meant to be
// applied only after the text it decorates has been written.
func (b *StyledBuffer) SetStyleRange(line, startCol, endCol int, style StyleTag) {
	if line >= len(b.lines) {
		return
	}
	row := b.lines[line]
	if endCol > len(row) {
		endCol = len(row)
	}
	for c := startCol; c < endCol; c++ {
		if c < 0 {
			continue
		}
		row[c].Style = style
	}
}

// Stylesheet maps [StyleTag] to the ANSI SGR escape sequence that activates
// it, plus the sequence that resets to plain text. A zero-value Stylesheet
// renders every tag as plain text, which is how [PlainStylesheet] and
// short-message/non-colorized rendering behave.
type Stylesheet struct {
	Codes map[StyleTag]string
	Reset string
}

// PlainStylesheet returns a Stylesheet that emits no escape codes at all.
func PlainStylesheet() Stylesheet {
	return Stylesheet{}
}

func (s Stylesheet) codeFor(tag StyleTag) string {
	if s.Codes == nil {
		return ""
	}
	return s.Codes[tag]
}

// Render flattens the buffer to a string using sheet to resolve styles,
// emitting an escape sequence only when the active style actually changes
// from one cell to the next (minimal-transition emission), and a final
// reset at the end of any row that used styling. Rows are newline-joined;
// the result has no trailing newline.
func (b *StyledBuffer) Render(sheet Stylesheet) string {
	rendered := make([]string, len(b.lines))
	for i, row := range b.lines {
		var line strings.Builder
		cur := NoStyle
		used := false
		for _, cell := range row {
			if cell.Style != cur {
				if cell.Style == NoStyle {
					if used {
						line.WriteString(sheet.Reset)
					}
				} else {
					line.WriteString(sheet.codeFor(cell.Style))
					used = true
				}
				cur = cell.Style
			}
			line.WriteRune(cell.Ch)
		}
		if used && cur != NoStyle {
			line.WriteString(sheet.Reset)
		}
		rendered[i] = strings.TrimRight(line.String(), " ")
	}
	return strings.Join(rendered, "\n")
}
