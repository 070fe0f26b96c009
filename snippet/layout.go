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
	"fmt"
	"sort"
	"strings"
)

// DefaultInnerContext is the number of unannotated lines kept on each side
// of a fold marker when a run of unannotated lines grows too long to show
// in full.
const DefaultInnerContext = 3

// DefaultTermWidth is the terminal width assumed when a caller does not
// configure one explicitly.
const DefaultTermWidth = 140

// SnippetLayout carries the settings a [RenderSnippet] call needs that are
// not local to one snippet: the gutter width (kept uniform across every
// snippet in a report so line numbers align) and the rendering options.
type SnippetLayout struct {
	LineNumWidth int
	TermWidth    int
	Anonymized   bool
	Decor        Decor
	InnerContext int
}

func (lay SnippetLayout) innerContext() int {
	if lay.InnerContext > 0 {
		return lay.InnerContext
	}
	return DefaultInnerContext
}

func (lay SnippetLayout) termWidth() int {
	if lay.TermWidth > 0 {
		return lay.TermWidth
	}
	return DefaultTermWidth
}

// codeOffset is the column the source text itself starts at, per the
// global gutter-layout invariant: gutter occupies [0, lineNumWidth+2),
// then one blank column, then the connector band [start, start+maxDepth),
// then one more blank column before the code.
func codeOffset(lineNumWidth, maxDepth int) int {
	band := 0
	if maxDepth > 0 {
		band = maxDepth + 1
	}
	return lineNumWidth + 3 + band
}

func connectorColumn(lineNumWidth, depth int) int {
	return lineNumWidth + 3 + (depth - 1)
}

// RenderSnippet lays out one annotated source snippet into buf starting at
// row startRow, and returns the row just past the last one written.
func RenderSnippet(buf *StyledBuffer, startRow int, sm *SourceMap, anns []Annotation, lay SnippetLayout) int {
	maxDepth, lines := ClassifyAnnotations(sm, anns, true)
	offset := codeOffset(lay.LineNumWidth, maxDepth)
	row := startRow

	type rowPlan struct {
		line AnnotatedLine
		fold bool
	}
	plan := make([]rowPlan, 0, len(lines))
	for i, al := range lines {
		if i > 0 {
			gapFrom := lines[i-1].LineIndex + 1
			gapTo := al.LineIndex - 1
			run := gapTo - gapFrom + 1
			ic := lay.innerContext()
			switch {
			case run <= 0:
			case run <= 2*ic+1:
				for l := gapFrom; l <= gapTo; l++ {
					plan = append(plan, rowPlan{line: AnnotatedLine{LineIndex: l}})
				}
			default:
				for l := gapFrom; l < gapFrom+ic; l++ {
					plan = append(plan, rowPlan{line: AnnotatedLine{LineIndex: l}})
				}
				plan = append(plan, rowPlan{fold: true})
				for l := gapTo - ic + 1; l <= gapTo; l++ {
					plan = append(plan, rowPlan{line: AnnotatedLine{LineIndex: l}})
				}
			}
		}
		plan = append(plan, rowPlan{line: al})
	}

	for _, p := range plan {
		if p.fold {
			row = renderFoldRow(buf, row, lay)
			continue
		}
		row = renderSourceRow(buf, row, sm, p.line, lay, offset, maxDepth)
	}

	return row
}

func lineNumberText(lineIndex, width int, anonymized bool) string {
	if anonymized {
		return padLeft("LL", width)
	}
	return padLeft(fmt.Sprintf("%d", lineIndex), width)
}

func padLeft(s string, width int) string {
	n := width - StringWidth(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(" ", n) + s
}

func renderFoldRow(buf *StyledBuffer, row int, lay SnippetLayout) int {
	buf.Puts(row, 0, padLeft(lay.Decor.Fold, lay.LineNumWidth), LineNumber)
	buf.Puts(row, lay.LineNumWidth+1, lay.Decor.ColumnSeparator, LineAndColumn)
	return row + 1
}

func renderSourceRow(buf *StyledBuffer, row int, sm *SourceMap, al AnnotatedLine, lay SnippetLayout, offset, maxDepth int) int {
	text, _ := sm.GetLine(al.LineIndex)
	expanded := ExpandTabs(text, 0)
	lineLen := StringWidth(expanded)

	spanLeft, spanRight, labelRight := lineLen, 0, 0
	hasDrawn := false
	for _, a := range al.Annotations {
		if a.Type == MultilineLine || a.Kind == KindVisible {
			continue
		}
		if a.Start.Display < spanLeft {
			spanLeft = a.Start.Display
		}
		if a.End.Display > spanRight {
			spanRight = a.End.Display
		}
		lr := a.End.Display
		if a.Label != "" {
			lr += StringWidth(a.Label) + 2
		}
		if lr > labelRight {
			labelRight = lr
		}
		hasDrawn = true
	}
	if !hasDrawn {
		spanLeft, spanRight = 0, 0
	}

	margin := NewMargin(leadingWhitespaceWidth(expanded), spanLeft, spanRight, labelRight, lay.termWidth(), lineLen)
	left := margin.Left(lineLen)
	right := margin.Right(lineLen)
	visible := sliceByDisplay(expanded, left, right)

	buf.Puts(row, 0, lineNumberText(al.LineIndex, lay.LineNumWidth, lay.Anonymized), LineNumber)
	buf.Puts(row, lay.LineNumWidth+1, lay.Decor.ColumnSeparator, LineAndColumn)

	codeCol := offset
	if margin.WasCutLeft() {
		codeCol += buf.Puts(row, codeCol, lay.Decor.MarginEllipsis, Quotation)
	}
	codeCol += buf.Puts(row, codeCol, visible, Quotation)
	if margin.WasCutRight(lineLen) {
		buf.Puts(row, codeCol, lay.Decor.MarginEllipsis, Quotation)
	}

	for _, a := range al.Annotations {
		// A MultilineStart's own code row draws no connector: the bar
		// down to the gutter begins on the underline row below it,
		// where renderUnderlines draws the opening corner.
		if a.Type != MultilineLine && a.Type != MultilineEnd {
			continue
		}
		col := connectorColumn(lay.LineNumWidth, a.Depth)
		style := UnderlineSecondary
		if a.Kind == KindPrimary {
			style = UnderlinePrimary
		}
		buf.Puts(row, col, lay.Decor.VerticalFor(a.Kind == KindPrimary), style)
	}

	maxRow := renderUnderlines(buf, row, al, lay, offset, left, maxDepth, expanded)
	if maxRow > row {
		return maxRow + 1
	}
	return row + 1
}

func leadingWhitespaceWidth(s string) int {
	n := 0
	for _, r := range s {
		if r != ' ' {
			break
		}
		n++
	}
	return n
}

// sliceByDisplay returns the substring of s (which must contain only
// single-column ASCII and pre-expanded whitespace, plus possibly
// double-width runes) occupying display columns [left, right).
func sliceByDisplay(s string, left, right int) string {
	var out strings.Builder
	col := 0
	for _, r := range s {
		w := CharWidth(r)
		if col >= right {
			break
		}
		if col >= left {
			out.WriteRune(r)
		}
		col += w
	}
	return out.String()
}

const longSpanFactor = 2
const longSpanMinWidth = 10

type carrot struct {
	ann  LineAnnotation
	slot int
}

// mergeIdenticalExtent collapses annotations that share an identical
// display extent and type down to one entry, preferring whichever one
// carries a label, so two annotations of the same type covering the same
// range (e.g. a context span duplicating a primary one) draw a single
// caret instead of two stacked ones.
func mergeIdenticalExtent(active []carrot) []carrot {
	type key struct {
		start, end int
		typ        LineAnnotationType
	}
	groups := map[key][]carrot{}
	var order []key
	for _, c := range active {
		k := key{c.ann.Start.Display, c.ann.End.Display, c.ann.Type}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], c)
	}

	out := make([]carrot, 0, len(order))
	for _, k := range order {
		group := groups[k]
		chosen := group[0]
		for _, c := range group[1:] {
			if c.ann.Label != "" && chosen.ann.Label == "" {
				chosen = c
			}
		}
		out = append(out, chosen)
	}
	return out
}

// compactConnector implements the classifier's compact "/" case: when a
// nested group of multi-line spans leaves a single depth-1 MultilineStart
// alone on a line with nothing but whitespace before its start column, a
// single "/" replaces the usual corner-and-bar run. This only applies when
// the snippet actually nests spans (maxDepth > 1); a standalone multi-line
// span always draws its full corner and bar, matching the undecorated
// single-span case.
func compactConnector(active []carrot, lay SnippetLayout, maxDepth int, codeText string) (col int, style StyleTag, ok bool) {
	if maxDepth <= 1 || len(active) != 1 {
		return 0, 0, false
	}
	a := active[0].ann
	if a.Type != MultilineStart || a.Depth != 1 {
		return 0, 0, false
	}
	if !isWhitespacePrefixDisplay(codeText, a.Start.Display) {
		return 0, 0, false
	}
	style = UnderlineSecondary
	if a.Kind == KindPrimary {
		style = UnderlinePrimary
	}
	return connectorColumn(lay.LineNumWidth, a.Depth), style, true
}

func isWhitespacePrefixDisplay(s string, uptoDisplay int) bool {
	col := 0
	for _, r := range s {
		if col >= uptoDisplay {
			return true
		}
		if r != ' ' && r != '\t' {
			return false
		}
		col += CharWidth(r)
	}
	return true
}

// renderUnderlines draws carets, multi-line corners, label stems and label
// text for every annotation touching this row, per §4.6's underline pass.
//
// Annotations are slotted in descending order of start column: the
// latest-starting, typically narrowest span claims slot 0 first, so wider
// spans that enclose it stack into higher slots further from the code.
// Annotations with an identical extent are merged to a single slot first.
// When every surviving annotation on the line is a MultilineStart, slots
// are reversed afterward so the one nearest the gutter is the outermost
// span. A lone depth-1 MultilineStart after an all-whitespace prefix draws
// a compact "/" instead of a full corner-and-bar run.
func renderUnderlines(buf *StyledBuffer, codeRow int, al AnnotatedLine, lay SnippetLayout, offset, left, maxDepth int, codeText string) int {
	var active []carrot
	for _, a := range al.Annotations {
		if a.Type == MultilineLine || a.Kind == KindVisible {
			continue
		}
		active = append(active, carrot{ann: a})
	}
	if len(active) == 0 {
		return codeRow
	}

	active = mergeIdenticalExtent(active)

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].ann.Start.Display != active[j].ann.Start.Display {
			return active[i].ann.Start.Display > active[j].ann.Start.Display
		}
		return active[i].ann.Start.Char > active[j].ann.Start.Char
	})

	type occupant struct{ lo, hi, slot int }
	var occupants []occupant
	allMultilineStart := true
	for i := range active {
		if active[i].ann.Type != MultilineStart {
			allMultilineStart = false
		}
		lo := active[i].ann.Start.Display
		hi := active[i].ann.End.Display + 2
		if active[i].ann.Label != "" {
			hi += StringWidth(active[i].ann.Label)
		}
		slot := 0
		for {
			conflict := false
			for _, o := range occupants {
				if o.slot == slot && lo < o.hi && o.lo < hi {
					conflict = true
					break
				}
			}
			if !conflict {
				break
			}
			slot++
			if slot > len(active) {
				panic(InvariantViolated{What: "underline slot assignment did not converge"})
			}
		}
		active[i].slot = slot
		occupants = append(occupants, occupant{lo: lo, hi: hi, slot: slot})
	}

	if allMultilineStart && len(active) > 1 {
		maxSlot := 0
		for _, c := range active {
			if c.slot > maxSlot {
				maxSlot = c.slot
			}
		}
		for i := range active {
			active[i].slot = maxSlot - active[i].slot
		}
	}

	if col, style, ok := compactConnector(active, lay, maxDepth, codeText); ok {
		buf.Puts(codeRow+1, col, lay.Decor.CompactConnector, style)
		return codeRow + 1
	}

	underlineRow := codeRow + 1
	maxRow := underlineRow
	isPrimaryRowGlyph := func(primary bool) string {
		return lay.Decor.UnderlineFor(primary)
	}

	for _, c := range active {
		a := c.ann
		primary := a.Kind == KindPrimary
		style := UnderlineSecondary
		if primary {
			style = UnderlinePrimary
		}

		startCol := offset + a.Start.Display - left
		endCol := offset + a.End.Display - left
		if endCol <= startCol {
			endCol = startCol + 1
		}

		width := endCol - startCol
		if a.Type == Singleline && width > 2*lay.termWidth() && width > longSpanMinWidth {
			keep := lay.termWidth() / 3
			if keep < 5 {
				keep = 5
			}
			buf.Puts(underlineRow, startCol, strings.Repeat(isPrimaryRowGlyph(primary), keep), style)
			buf.Puts(underlineRow, startCol+keep, lay.Decor.MarginEllipsis, Quotation)
			buf.Puts(underlineRow, endCol-keep, strings.Repeat(isPrimaryRowGlyph(primary), keep), style)
		} else {
			buf.Puts(underlineRow, startCol, strings.Repeat(isPrimaryRowGlyph(primary), width), style)
		}

		if a.Type == MultilineStart || a.Type == MultilineEnd {
			connCol := connectorColumn(lay.LineNumWidth, a.Depth)
			for col := connCol + 1; col < startCol; col++ {
				buf.Puts(underlineRow, col, lay.Decor.HorizontalFor(primary), style)
			}
			corner := lay.Decor.CornerStartFor(primary)
			if a.Type == MultilineEnd {
				corner = lay.Decor.CornerEndFor(primary)
			}
			buf.Puts(underlineRow, connCol, corner, style)
		}

		if a.Label == "" {
			continue
		}

		stemCol := endCol + 1
		if c.slot != 0 {
			stemCol = startCol
		}
		labelStyle := LabelSecondary
		if primary {
			labelStyle = LabelPrimary
		}
		for r := underlineRow + 1; r < underlineRow+1+c.slot; r++ {
			buf.Puts(r, stemCol, lay.Decor.VerticalFor(primary), style)
		}
		labelRow := underlineRow + 1 + c.slot
		parts := strings.Split(a.Label, "\n")
		for i, part := range parts {
			buf.Puts(labelRow+i, stemCol, part, labelStyle)
		}
		if labelRow+len(parts)-1 > maxRow {
			maxRow = labelRow + len(parts) - 1
		}
	}

	return maxRow
}
