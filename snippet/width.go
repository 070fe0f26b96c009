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

	"github.com/rivo/uniseg"
)

// TabWidth is the number of display columns a tab character expands to.
const TabWidth = 4

// CharWidth returns the number of terminal display columns that r occupies.
//
// Tabs are reported as [TabWidth] even though their true width depends on
// the column they start at; callers that need tabstop-aware alignment
// should use [ExpandTabs] first. C0/C1 control characters and BiDi/flow
// control codepoints are reported as width 1, matching the placeholder
// glyph they are replaced with on output (the zero-width joiner is also
// reported as width 1, although it is replaced with nothing). Everything else falls back to
// East-Asian-Width classification via uniseg.
func CharWidth(r rune) int {
	switch {
	case r == '\t':
		return TabWidth
	case isC0OrC1(r):
		return 1
	case isBiDiOrFlow(r):
		return 1
	}

	w := uniseg.StringWidth(string(r))
	if w <= 0 {
		return 1
	}
	return w
}

// StringWidth sums [CharWidth] over every rune of s. It does not perform
// tabstop alignment; use [ExpandTabs] first if the string contains tabs and
// the starting column is not a multiple of [TabWidth].
func StringWidth(s string) int {
	var w int
	for _, r := range s {
		w += CharWidth(r)
	}
	return w
}

func isC0OrC1(r rune) bool {
	return (r >= 0x0000 && r <= 0x0008) ||
		(r >= 0x000B && r <= 0x001F) ||
		r == 0x007F
}

func isBiDiOrFlow(r rune) bool {
	switch r {
	case 0x202A, 0x202B, 0x202C, 0x202D, 0x202E,
		0x2066, 0x2067, 0x2068, 0x2069,
		0x200D:
		return true
	}
	return false
}

// replacement is one entry of [OutputReplacements].
type replacement struct {
	from rune
	to   string
}

// OutputReplacements is the sorted, duplicate-free table of substitutions
// applied to every rendered source row before display, so that underline
// positions stay aligned with what is actually printed. It is modeled on
// rustc_errors::emitter::OUTPUT_REPLACEMENTS: control characters become
// their Unicode "Control Pictures" glyphs, the zero-width joiner vanishes,
// BiDi/flow-control codepoints become the replacement character, and tabs
// become four spaces (callers doing column-accurate tabstop expansion
// should prefer [ExpandTabs], which is tabstop-aware; this table's tab
// entry exists only so naive callers degrade safely).
var OutputReplacements = sortedReplacements([]replacement{
	{0x0000, "␀"}, {0x0001, "␁"}, {0x0002, "␂"}, {0x0003, "␃"},
	{0x0004, "␄"}, {0x0005, "␅"}, {0x0006, "␆"}, {0x0007, "␇"},
	{0x0008, "␈"}, {'\t', "    "},
	{0x000B, "␋"}, {0x000C, "␌"}, {0x000D, "␍"}, {0x000E, "␎"},
	{0x000F, "␏"}, {0x0010, "␐"}, {0x0011, "␑"}, {0x0012, "␒"},
	{0x0013, "␓"}, {0x0014, "␔"}, {0x0015, "␕"}, {0x0016, "␖"},
	{0x0017, "␗"}, {0x0018, "␘"}, {0x0019, "␙"}, {0x001A, "␚"},
	{0x001B, "␛"}, {0x001C, "␜"}, {0x001D, "␝"}, {0x001E, "␞"},
	{0x001F, "␟"}, {0x007F, "␡"},
	{0x200D, ""},
	{0x202A, "�"}, {0x202B, "�"}, {0x202C, "�"}, {0x202D, "�"},
	{0x202E, "�"}, {0x2066, "�"}, {0x2067, "�"}, {0x2068, "�"},
	{0x2069, "�"},
})

func sortedReplacements(table []replacement) []replacement {
	sort.Slice(table, func(i, j int) bool { return table[i].from < table[j].from })
	return table
}

// checkReplacementsSorted is exercised by width_test.go as the self-test
// required by spec testable property 5: the table must be strictly
// ascending with no duplicate keys.
func checkReplacementsSorted(table []replacement) bool {
	for i := 1; i < len(table); i++ {
		if table[i-1].from >= table[i].from {
			return false
		}
	}
	return true
}

// NormalizeWhitespace applies [OutputReplacements] to s via binary search,
// leaving every other character untouched.
func NormalizeWhitespace(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	for _, r := range s {
		lo, hi := 0, len(OutputReplacements)
		for lo < hi {
			mid := (lo + hi) / 2
			if OutputReplacements[mid].from < r {
				lo = mid + 1
			} else {
				hi = mid
			}
		}
		if lo < len(OutputReplacements) && OutputReplacements[lo].from == r {
			out.WriteString(OutputReplacements[lo].to)
		} else {
			out.WriteRune(r)
		}
	}
	return out.String()
}

// ExpandTabs replaces tabs in s with spaces so that the result lands on
// [TabWidth]-aligned columns, starting at display column startColumn.
// Non-tab characters are copied through NormalizeWhitespace first so that
// control characters are replaced the same way tabs are.
func ExpandTabs(s string, startColumn int) string {
	var out strings.Builder
	column := startColumn
	for _, r := range s {
		if r == '\t' {
			pad := TabWidth - (column % TabWidth)
			for i := 0; i < pad; i++ {
				out.WriteByte(' ')
			}
			column += pad
			continue
		}
		rep := NormalizeWhitespace(string(r))
		out.WriteString(rep)
		column += StringWidth(rep)
	}
	return out.String()
}
