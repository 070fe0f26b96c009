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
	"sort"
	"strings"
)

// SuggestionMode classifies how a set of patches should be displayed.
type SuggestionMode int

const (
	// ModeNone means the patches don't fit any of the other shapes.
	ModeNone SuggestionMode = iota
	// ModeAdd means the suggestion is a single patch inserting a whole new
	// line above the existing code.
	ModeAdd
	// ModeDiff means the suggestion deletes or destructively replaces text
	// and the result collapses to a single output line: render as
	// "- old" / "+ new" rows.
	ModeDiff
	// ModeUnderline means the suggestion mutates text within one line
	// without deleting or adding whole lines.
	ModeUnderline
)

// ClassifySuggestion decides which of the four suggestion display shapes
// applies to patches applied against source, per §4.7.
func ClassifySuggestion(source string, patches []Patch) SuggestionMode {
	complete, _ := SpliceLines(source, patches)
	singleLineComplete := !strings.Contains(complete, "\n")

	destructive := false
	for _, p := range patches {
		old := source[p.Start:p.End]
		if p.Replacement == "" && old != "" {
			destructive = true
		} else if p.Replacement != old && old != "" {
			destructive = true
		}
	}
	if destructive && singleLineComplete {
		return ModeDiff
	}

	if len(patches) == 1 {
		p := patches[0]
		lineStart := strings.LastIndexByte(source[:p.Start], '\n') + 1
		added := complete[lineStart : p.Start+len(p.Replacement)]
		if strings.HasSuffix(p.Replacement, "\n") &&
			strings.TrimSpace(p.Replacement) == strings.TrimSpace(added) {
			return ModeAdd
		}
	}

	for _, p := range patches {
		old := source[p.Start:p.End]
		if !strings.Contains(old, "\n") && !strings.Contains(p.Replacement, "\n") && p.Replacement != old {
			return ModeUnderline
		}
	}

	return ModeNone
}

// RenderSuggestion lays out a suggestion's patches against source, starting
// at lineStart, into buf at row startRow, returning the row just past the
// last one written.
//
// Only [ModeDiff] has a layout of its own ("- old" / "+ new" rows). Every
// other mode renders the spliced result as an ordinary snippet with primary
// carets under each inserted or replaced range; no "~"/"+" markers are
// drawn for [ModeUnderline].
func RenderSuggestion(buf *StyledBuffer, startRow int, source string, patches []Patch, lineStart int, lay SnippetLayout) int {
	switch ClassifySuggestion(source, patches) {
	case ModeDiff:
		return renderDiffRows(buf, startRow, source, patches, lineStart, lay)
	default:
		return renderSplicedRows(buf, startRow, source, patches, lineStart, lay)
	}
}

// renderDiffRows renders the Diff shape: every old line touched by a
// destructive patch in Removal style, followed by the single spliced
// result line in Addition style. ClassifySuggestion only selects this mode
// when the spliced result collapses to one line, so a single Addition row
// always suffices.
func renderDiffRows(buf *StyledBuffer, row int, source string, patches []Patch, lineStart int, lay SnippetLayout) int {
	sm := NewSourceMap(source, lineStart)
	complete, _ := SpliceLines(source, patches)

	touched := map[int]bool{}
	for _, p := range patches {
		if p.Replacement == source[p.Start:p.End] {
			continue
		}
		lo, hi := sm.SpanToLocations(p.Start, p.End)
		for l := lo.Line; l <= hi.Line; l++ {
			touched[l] = true
		}
	}
	if len(touched) == 0 {
		return row
	}

	lines := make([]int, 0, len(touched))
	for l := range touched {
		lines = append(lines, l)
	}
	sort.Ints(lines)

	for _, l := range lines {
		text, ok := sm.GetLine(l)
		if !ok {
			continue
		}
		row = writeDiffLine(buf, row, l, lay, lay.Decor.DiffRemove, text, Removal)
	}
	return writeDiffLine(buf, row, lines[0], lay, lay.Decor.DiffAdd, complete, Addition)
}

func writeDiffLine(buf *StyledBuffer, row, lineIndex int, lay SnippetLayout, marker, text string, style StyleTag) int {
	buf.Puts(row, 0, lineNumberText(lineIndex, lay.LineNumWidth, lay.Anonymized), LineNumber)
	buf.Puts(row, lay.LineNumWidth+1, marker, style)
	buf.Puts(row, lay.LineNumWidth+1+StringWidth(marker), ExpandTabs(text, 0), style)
	return row + 1
}

func renderSplicedRows(buf *StyledBuffer, row int, source string, patches []Patch, lineStart int, lay SnippetLayout) int {
	complete, highlights := SpliceLines(source, patches)
	sm := NewSourceMap(complete, lineStart)

	anns := make([]Annotation, 0, len(highlights))
	for _, h := range highlights {
		anns = append(anns, Annotation{Start: h.Start, End: h.End, Kind: KindPrimary, HighlightSource: true})
	}

	return RenderSnippet(buf, row, sm, anns, lay)
}
