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

// EndLineKind describes how a source line was terminated.
type EndLineKind int

const (
	// EOF means the line is the final segment of the source, with no
	// trailing newline.
	EOF EndLineKind = iota
	// LF means the line ends in a bare '\n'.
	LF
	// CRLF means the line ends in "\r\n".
	CRLF
)

// Len is the number of bytes this line ending occupies.
func (k EndLineKind) Len() int {
	switch k {
	case LF:
		return 1
	case CRLF:
		return 2
	default:
		return 0
	}
}

// LineInfo describes one line of a source string.
type LineInfo struct {
	// Text is the line's content; it never contains '\n' or a trailing '\r'.
	Text string
	// Index is the 1-based line number, offset by the SourceMap's line_start.
	Index int
	// StartByte is the byte offset of the first byte of Text.
	StartByte int
	// EndByte is the byte offset just past the line terminator (or just
	// past the last byte of Text, for the final EOF line).
	EndByte int
	// EndKind records which kind of terminator follows Text.
	EndKind EndLineKind
}

// Loc is a resolved location within a source string.
type Loc struct {
	// Line is the 1-based line number.
	Line int
	// Char is the 0-based character count from the start of the line.
	Char int
	// Display is the 0-based column in display cells from the start of the
	// line.
	Display int
	// Byte is the 0-based byte offset within the source.
	Byte int
}

// SourceMap indexes a source string into lines and resolves byte offsets
// into [Loc] values.
type SourceMap struct {
	source string
	lines  []LineInfo
}

// NewSourceMap scans source once, splitting it into lines. lineStart is the
// 1-based line number of the first line (so that a source string which is a
// sub-slice of a larger file can report its true position).
func NewSourceMap(source string, lineStart int) *SourceMap {
	sm := &SourceMap{source: source}

	idx := 0
	rest := source
	cur := 0
	for i := 0; ; i++ {
		nl := indexByte(rest, '\n')
		if nl == -1 {
			sm.lines = append(sm.lines, LineInfo{
				Text:      rest,
				Index:     lineStart + i,
				StartByte: cur,
				EndByte:   cur + len(rest),
				EndKind:   EOF,
			})
			break
		}

		line := rest[:nl]
		kind := LF
		if nl > 0 && line[nl-1] == '\r' {
			line = line[:nl-1]
			kind = CRLF
		}

		sm.lines = append(sm.lines, LineInfo{
			Text:      line,
			Index:     lineStart + i,
			StartByte: cur,
			EndByte:   cur + nl + 1,
			EndKind:   kind,
		})

		cur += nl + 1
		rest = rest[nl+1:]
		idx++
	}

	return sm
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// Source returns the original source string this map indexes.
func (sm *SourceMap) Source() string { return sm.source }

// Lines returns every [LineInfo] this map computed, in order.
func (sm *SourceMap) Lines() []LineInfo { return sm.lines }

// GetLine returns the text of the line with the given 1-based index, found
// by linear scan, and whether it was found.
func (sm *SourceMap) GetLine(lineIndex int) (string, bool) {
	for _, li := range sm.lines {
		if li.Index == lineIndex {
			return li.Text, true
		}
	}
	return "", false
}

// lineFor returns the LineInfo containing the given byte offset (or the
// last line, if offset is at or past the end of the source).
func (sm *SourceMap) lineFor(offset int) LineInfo {
	for _, li := range sm.lines {
		if offset >= li.StartByte && offset < li.EndByte {
			return li
		}
	}
	return sm.lines[len(sm.lines)-1]
}

// lineForEnd returns the line whose EndByte is strictly past offset-1,
// which is how the end of a half-open [start,end) byte range is resolved
// to a line.
func (sm *SourceMap) lineForEnd(offset int) LineInfo {
	end := offset - 1
	for _, li := range sm.lines {
		if li.EndByte > end {
			return li
		}
	}
	return sm.lines[len(sm.lines)-1]
}

// locWithin computes the (char, display) position of byteOffset relative to
// the start of li, bumping char by one if byteOffset falls inside li's line
// terminator rather than its visible text (spec §4.2, "one virtual position
// per line ending").
func locWithin(li LineInfo, byteOffset int) (char, display int) {
	n := byteOffset - li.StartByte
	if n > len(li.Text) {
		n = len(li.Text)
	}
	if n < 0 {
		n = 0
	}

	for _, r := range li.Text[:n] {
		char++
		display += CharWidth(r)
	}

	if byteOffset-li.StartByte > len(li.Text) {
		char++
	}

	return char, display
}

// SpanToLocations resolves a half-open byte range [start, end) into its
// start and end [Loc]s, per spec §4.2.
func (sm *SourceMap) SpanToLocations(start, end int) (Loc, Loc) {
	startInfo := sm.lineFor(start)
	sChar, sDisplay := locWithin(startInfo, start)
	startLoc := Loc{Line: startInfo.Index, Char: sChar, Display: sDisplay, Byte: start}

	if end == start {
		return startLoc, startLoc
	}

	endInfo := sm.lineForEnd(end)
	eChar, eDisplay := locWithin(endInfo, end)
	endLoc := Loc{Line: endInfo.Index, Char: eChar, Display: eDisplay, Byte: end}

	if startLoc.Line != endLoc.Line && end > endInfo.StartByte+len(endInfo.Text) {
		endLoc.Char++
		endLoc.Display++
	}

	return startLoc, endLoc
}

// SpanToLines returns every LineInfo whose range intersects [start, end),
// inclusive of both endpoints' lines.
func (sm *SourceMap) SpanToLines(start, end int) []LineInfo {
	lo, hi := sm.SpanToLocations(start, end)
	var out []LineInfo
	for _, li := range sm.lines {
		if li.Index >= lo.Line && li.Index <= hi.Line {
			out = append(out, li)
		}
	}
	return out
}
