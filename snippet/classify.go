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
	"unicode/utf8"
)

// AnnotationKind distinguishes the primary annotation of a snippet (the one
// the diagnostic is actually about) from supporting context annotations and
// from lines that must simply be shown without any caret at all.
type AnnotationKind int

const (
	// KindContext marks an annotation that provides supporting context.
	KindContext AnnotationKind = iota
	// KindPrimary marks the annotation the diagnostic is actually about.
	KindPrimary
	// KindVisible forces its line to be displayed without drawing a caret
	// or label: it never contributes to margin clipping or to connector
	// depth, and a span that spans multiple lines is collapsed to just
	// its first line.
	KindVisible
)

// kindSortRank orders a line's annotations for display: primary first, then
// context, then visible-only lines last.
func kindSortRank(k AnnotationKind) int {
	switch k {
	case KindPrimary:
		return 2
	case KindContext:
		return 1
	default:
		return 0
	}
}

// snapToRuneBoundary rounds offset down to the nearest byte index in s that
// does not land inside a multi-byte rune, so a span computed against a
// different encoding of the same text degrades instead of corrupting a
// slice.
func snapToRuneBoundary(s string, offset int) int {
	if offset <= 0 || offset >= len(s) {
		return offset
	}
	for offset > 0 && !utf8.RuneStart(s[offset]) {
		offset--
	}
	return offset
}

// Annotation is a single labeled byte range within a snippet's source.
type Annotation struct {
	Start, End      int
	Label           string
	Kind            AnnotationKind
	HighlightSource bool
}

// LineAnnotationType describes how a [LineAnnotation] relates to the line it
// is attached to: entirely within it, or one edge of a span that continues
// onto other lines.
type LineAnnotationType int

const (
	// Singleline annotations start and end within the same line.
	Singleline LineAnnotationType = iota
	// MultilineStart is the first line of a span that continues below.
	MultilineStart
	// MultilineLine is an interior line of a multi-line span: it carries no
	// carets of its own, only a connecting sidebar.
	MultilineLine
	// MultilineEnd is the last line of a span that began above.
	MultilineEnd
)

// LineAnnotation is an [Annotation] projected onto a single line, with byte
// offsets resolved to display columns and, for multi-line spans, a sidebar
// depth slot assigned.
type LineAnnotation struct {
	Start, End      Loc
	Label           string
	Kind            AnnotationKind
	HighlightSource bool
	Type            LineAnnotationType
	Depth           int
}

// AnnotatedLine is one source line together with every [LineAnnotation] that
// touches it, in source order.
type AnnotatedLine struct {
	LineIndex   int
	Annotations []LineAnnotation
}

type multilineSpan struct {
	ann             Annotation
	lo, hi          Loc
	depth           int
	overlapsExactly bool
}

// ClassifyAnnotations resolves each annotation's byte range against sm,
// splits single-line spans from multi-line ones, assigns each multi-line
// span a connector depth, and returns every line touched by an annotation
// in source order.
//
// Depth assignment follows the classifier's crossing-minimization rule:
// multi-line spans are sorted by (start line ascending, end line
// descending, start byte ascending); every depth starts at 1, and each span
// in turn bumps the depth of every later span (in that order) whose line
// range overlaps it, stopping at the first non-overlapping span; depths are
// then reversed (depth = maxDepth - depth + 1) so outer spans land in outer
// connector columns. When two spans have an identical range, only the
// first draws connectors; the second becomes a Singleline entry at the
// first one's end position, so the pair renders as one caret with both
// labels instead of two connectors.
//
// Only lines touched by at least one annotation are returned, whatever the
// value of fold; fold does not change the result, and no blank placeholder
// rows are produced for unannotated lines.
//
// An annotation of [KindVisible] never gets a caret or label: its span is
// collapsed to its first line and attached there purely to keep the fold
// pass above from dropping that line.
//
// A span whose start or end offset lands inside a multi-byte rune is
// rounded down to the nearest preceding rune boundary before resolution, so
// an offset computed against a different encoding of the same text
// degrades instead of corrupting a slice.
//
// ClassifyAnnotations panics with [SpanBeyondEOF] if any annotation's range
// extends past the end of sm's source, and with [InvariantViolated] if its
// own depth bookkeeping produces a value outside [1, maxDepth].
func ClassifyAnnotations(sm *SourceMap, anns []Annotation, fold bool) (maxDepth int, lines []AnnotatedLine) {
	srcLen := len(sm.Source())

	type resolved struct {
		ann    Annotation
		lo, hi Loc
	}
	resolveds := make([]resolved, len(anns))
	for i, a := range anns {
		start := snapToRuneBoundary(sm.Source(), a.Start)
		end := snapToRuneBoundary(sm.Source(), a.End)
		if end > srcLen+1 {
			panic(SpanBeyondEOF{Start: start, End: end, SourceLen: srcLen})
		}
		lo, hi := sm.SpanToLocations(start, end)
		if lo.Line == hi.Line && lo.Display == hi.Display {
			hi.Display++
		}
		resolveds[i] = resolved{ann: a, lo: lo, hi: hi}
	}

	byLine := map[int][]LineAnnotation{}
	var multi []*multilineSpan

	for _, r := range resolveds {
		if r.ann.Kind == KindVisible {
			byLine[r.lo.Line] = append(byLine[r.lo.Line], LineAnnotation{
				Start: r.lo,
				End:   r.lo,
				Kind:  KindVisible,
				Type:  Singleline,
			})
			continue
		}
		if r.lo.Line == r.hi.Line {
			byLine[r.lo.Line] = append(byLine[r.lo.Line], LineAnnotation{
				Start: r.lo,
				End:   r.hi,
				Label: r.ann.Label,
				Kind:  r.ann.Kind,
				HighlightSource: r.ann.HighlightSource,
				Type:            Singleline,
			})
			continue
		}
		multi = append(multi, &multilineSpan{ann: r.ann, lo: r.lo, hi: r.hi, depth: 1})
	}

	sort.SliceStable(multi, func(i, j int) bool {
		if multi[i].lo.Line != multi[j].lo.Line {
			return multi[i].lo.Line < multi[j].lo.Line
		}
		if multi[i].hi.Line != multi[j].hi.Line {
			return multi[i].hi.Line > multi[j].hi.Line
		}
		return multi[i].lo.Byte < multi[j].lo.Byte
	})

	for i := range multi {
		for j := i + 1; j < len(multi); j++ {
			overlaps := multi[j].lo.Line <= multi[i].hi.Line && multi[i].lo.Line <= multi[j].hi.Line
			if !overlaps {
				break
			}
			identical := multi[i].lo == multi[j].lo && multi[i].hi == multi[j].hi
			if identical {
				multi[j].overlapsExactly = true
				continue
			}
			multi[j].depth++
		}
	}

	for _, m := range multi {
		if m.depth > maxDepth {
			maxDepth = m.depth
		}
	}
	for _, m := range multi {
		m.depth = maxDepth - m.depth + 1
		if m.depth < 1 || m.depth > maxDepth {
			panic(InvariantViolated{What: fmt.Sprintf("multiline span depth %d out of range [1,%d]", m.depth, maxDepth)})
		}
	}

	for _, m := range multi {
		if m.overlapsExactly {
			byLine[m.hi.Line] = append(byLine[m.hi.Line], LineAnnotation{
				Start:           m.hi,
				End:             m.hi,
				Label:           m.ann.Label,
				Kind:            m.ann.Kind,
				HighlightSource: m.ann.HighlightSource,
				Type:            Singleline,
			})
			continue
		}

		byLine[m.lo.Line] = append(byLine[m.lo.Line], LineAnnotation{
			Start: m.lo,
			End:   m.lo,
			Kind:  m.ann.Kind,
			HighlightSource: m.ann.HighlightSource,
			Type:            MultilineStart,
			Depth:           m.depth,
		})

		for _, l := range visibleMiddleLines(sm, m.lo.Line, m.hi.Line) {
			byLine[l] = append(byLine[l], LineAnnotation{
				Kind:            m.ann.Kind,
				HighlightSource: m.ann.HighlightSource,
				Type:            MultilineLine,
				Depth:           m.depth,
			})
		}

		byLine[m.hi.Line] = append(byLine[m.hi.Line], LineAnnotation{
			Start:           m.hi,
			End:             m.hi,
			Label:           m.ann.Label,
			Kind:            m.ann.Kind,
			HighlightSource: m.ann.HighlightSource,
			Type:            MultilineEnd,
			Depth:           m.depth,
		})
	}

	lineIdxs := make([]int, 0, len(byLine))
	for l := range byLine {
		lineIdxs = append(lineIdxs, l)
	}
	sort.Ints(lineIdxs)

	lines = make([]AnnotatedLine, 0, len(lineIdxs))
	for _, l := range lineIdxs {
		as := byLine[l]
		if fold && len(as) == 0 {
			continue
		}
		sort.SliceStable(as, func(i, j int) bool {
			if as[i].Kind != as[j].Kind {
				return kindSortRank(as[i].Kind) > kindSortRank(as[j].Kind)
			}
			return as[i].Start.Display < as[j].Start.Display
		})
		lines = append(lines, AnnotatedLine{LineIndex: l, Annotations: as})
	}

	return maxDepth, lines
}

// visibleMiddleLines returns the interior lines of a multi-line span that
// should carry a MultilineLine placeholder.
//
// It scans backward from min(loLine+4, hiLine)-1 down to loLine for the
// last line that is not whitespace-only, a bare bracket, or a plain "//"
// comment (doc comments "///"/"//!" still count as content), and includes
// every line from loLine+1 up through that line, whether or not each one
// individually passes the filter — only the trailing run is trimmed. If no
// line in the window passes, no placeholder lines are added at all.
// Separately, hiLine-1 is added when the window didn't already include it
// and it passes the same filter. Adjacent lines (hiLine == loLine+1) always produce no
// placeholders, since there is no interior to show.
func visibleMiddleLines(sm *SourceMap, loLine, hiLine int) []int {
	middle := loLine + 4
	if hiLine < middle {
		middle = hiLine
	}

	until := loLine
	for l := middle - 1; l >= loLine; l-- {
		text, ok := sm.GetLine(l)
		if ok && isVisibleMiddleLine(text) {
			until = l + 1
			break
		}
	}

	var out []int
	for l := loLine + 1; l < until; l++ {
		out = append(out, l)
	}

	lineEnd := hiLine - 1
	if lineEnd > loLine && lineEnd >= until {
		if text, ok := sm.GetLine(lineEnd); ok && isVisibleMiddleLine(text) {
			out = append(out, lineEnd)
		}
	}

	return out
}

func isVisibleMiddleLine(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "//") && !strings.HasPrefix(trimmed, "///") && !strings.HasPrefix(trimmed, "//!") {
		return false
	}
	if len(trimmed) == 1 && strings.ContainsAny(trimmed, "{}()[]") {
		return false
	}
	return true
}
