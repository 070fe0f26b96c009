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

package report

import (
	"fmt"
	"strings"

	"github.com/riftlang/snippet/snippet"
)

// renderShort renders rep in the compact one-line-per-group format used
// by tools that shell out to a linter and parse its stderr, rather than
// show a human the full annotated source.
func (r Renderer) renderShort(rep *Report) string {
	lines := make([]string, 0, len(rep.Groups))
	for _, g := range rep.Groups {
		lines = append(lines, shortLine(g))
	}
	return strings.Join(lines, "\n")
}

func shortLine(g Group) string {
	title, ok := firstTitle(g)
	if !ok {
		return ""
	}

	path, line, col, hasLoc := firstLocation(g)
	labels := primaryLabels(g)

	text := title.Text
	if len(labels) > 0 {
		text = text + ": " + strings.Join(labels, ", ")
	}

	if !hasLoc {
		return fmt.Sprintf("%s: %s", title.Level.Name, text)
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s", path, line, col, title.Level.Name, text)
}

func firstTitle(g Group) (Title, bool) {
	for _, el := range g.Elements {
		if t, ok := el.(Title); ok {
			return t, true
		}
	}
	return Title{}, false
}

func firstLocation(g Group) (path string, line, col int, ok bool) {
	for _, el := range g.Elements {
		switch e := el.(type) {
		case Origin:
			l, c := 1, 1
			if e.Line != nil {
				l = *e.Line
			}
			if e.Column != nil {
				c = *e.Column
			}
			return e.Path, l, c, true
		case Cause:
			if loc, lok := firstAnnotationLoc(e.Snippet); lok {
				return e.Snippet.Path, loc.Line, loc.Char + 1, true
			}
			return e.Snippet.Path, e.Snippet.LineStart, 1, true
		}
	}
	return "", 0, 0, false
}

func firstAnnotationLoc(sn snippet.Snippet[snippet.Annotation]) (snippet.Loc, bool) {
	if len(sn.Markers) == 0 {
		return snippet.Loc{}, false
	}
	sm := snippet.NewSourceMap(sn.Source, sn.LineStart)
	best := sn.Markers[0]
	for _, a := range sn.Markers {
		if a.Kind == snippet.KindPrimary {
			best = a
			break
		}
	}
	loc, _ := sm.SpanToLocations(best.Start, best.End)
	return loc, true
}

// primaryLabels collects the labels of every primary annotation in the
// group's first Cause element, in the order its markers were given.
func primaryLabels(g Group) []string {
	for _, el := range g.Elements {
		c, ok := el.(Cause)
		if !ok {
			continue
		}
		var labels []string
		for _, a := range c.Snippet.Markers {
			if a.Kind == snippet.KindPrimary && a.Label != "" {
				labels = append(labels, a.Label)
			}
		}
		return labels
	}
	return nil
}
