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

// Package report builds on [snippet] to drive a full diagnostic report —
// titles, origins, annotated snippets, suggestions and footers — through
// to a single rendered string.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/riftlang/snippet/snippet"
)

// Renderer turns a [Report] into a string. Its fields are the only
// configuration surface; there is no config file, flags, or environment
// lookup at this layer.
type Renderer struct {
	// Decor selects ASCII or Unicode box-drawing glyphs.
	Decor snippet.DecorStyle
	// AnonymizedLineNumbers replaces every gutter number with "LL".
	AnonymizedLineNumbers bool
	// ShortMessage switches to the one-line-per-group format (§4.9).
	ShortMessage bool
	// TermWidth bounds how wide a source line is shown before margin
	// clipping kicks in. Zero uses [snippet.DefaultTermWidth].
	TermWidth int
	// Colorize emits ANSI SGR escapes; false renders plain text.
	Colorize bool
	// InnerContext is the number of lines of context kept on each side of
	// a fold marker. Zero uses [snippet.DefaultInnerContext].
	InnerContext int
}

// Render renders rep to a string. Calling Render twice on the same
// Renderer and Report yields byte-identical output.
func (r Renderer) Render(rep *Report) string {
	if r.ShortMessage {
		return r.renderShort(rep)
	}

	lineNumWidth := r.lineNumWidth(rep)
	decor := snippet.DecorFor(r.Decor)

	var out strings.Builder
	for i, g := range rep.Groups {
		if i > 0 {
			out.WriteString("\n\n")
		}
		r.renderGroup(&out, g, lineNumWidth, decor, i < len(rep.Groups)-1)
	}
	return out.String()
}

func (r Renderer) termWidth() int {
	if r.TermWidth > 0 {
		return r.TermWidth
	}
	return snippet.DefaultTermWidth
}

// lineNumWidth computes the gutter width from the largest line number
// touched by any snippet in the report, kept uniform across every group
// so line numbers align down the page.
func (r Renderer) lineNumWidth(rep *Report) int {
	if r.AnonymizedLineNumbers {
		return 2
	}
	maxLine := 1
	for _, g := range rep.Groups {
		for _, el := range g.Elements {
			switch e := el.(type) {
			case Cause:
				if l := lastLine(e.Snippet.Source, e.Snippet.LineStart); l > maxLine {
					maxLine = l
				}
			case Suggestion:
				if l := lastLine(e.Snippet.Source, e.Snippet.LineStart); l > maxLine {
					maxLine = l
				}
			case Origin:
				if e.Line != nil && *e.Line > maxLine {
					maxLine = *e.Line
				}
			}
		}
	}
	return len(strconv.Itoa(maxLine))
}

func lastLine(source string, lineStart int) int {
	return lineStart + strings.Count(source, "\n")
}

func (r Renderer) layout(lineNumWidth int, decor snippet.Decor) snippet.SnippetLayout {
	return snippet.SnippetLayout{
		LineNumWidth: lineNumWidth,
		TermWidth:    r.termWidth(),
		Anonymized:   r.AnonymizedLineNumbers,
		Decor:        decor,
		InnerContext: r.InnerContext,
	}
}

func (r Renderer) renderGroup(out *strings.Builder, g Group, lineNumWidth int, decor snippet.Decor, notLast bool) {
	sheet := r.stylesheetFor(g.Level)
	buf := snippet.NewStyledBuffer()
	lay := r.layout(lineNumWidth, decor)
	row := 0
	wroteBody := false

	for i, el := range g.Elements {
		switch e := el.(type) {
		case Title:
			row = writeTitle(buf, row, e)
		case Message:
			row = writeMessage(buf, row, e, lineNumWidth, decor)
		case Origin:
			row = writeOrigin(buf, row, e, lineNumWidth, decor, i == 0)
		case Cause:
			row = writeImplicitOrigin(buf, row, e.Snippet, lineNumWidth, decor)
			row = snippet.RenderSnippet(buf, row, snippet.NewSourceMap(e.Snippet.Source, e.Snippet.LineStart), e.Snippet.Markers, lay)
			wroteBody = true
		case Suggestion:
			row = writeImplicitOrigin(buf, row, e.Snippet, lineNumWidth, decor)
			row = snippet.RenderSuggestion(buf, row, e.Snippet.Source, e.Snippet.Markers, e.Snippet.LineStart, lay)
			wroteBody = true
		case Padding:
			row = writePadding(buf, row, lineNumWidth, decor)
		}
	}

	if wroteBody && notLast {
		writeClosingCorner(buf, row, lineNumWidth, decor)
	}

	out.WriteString(buf.Render(sheet))
}

func writeTitle(buf *snippet.StyledBuffer, row int, t Title) int {
	var heading string
	switch {
	case t.ID != nil:
		tag := fmt.Sprintf("%s[%s]", t.Level.Name, t.ID.Code)
		if t.ID.URL != "" {
			tag = hyperlink(t.ID.URL, tag)
		}
		heading = fmt.Sprintf("%s: %s", tag, t.Text)
	case t.Primary:
		heading = fmt.Sprintf("%s: %s", t.Level.Name, t.Text)
	default:
		heading = fmt.Sprintf("= %s: %s", t.Level.Name, t.Text)
	}

	style := snippet.HeaderMsg
	if t.Primary {
		style = snippet.MainHeaderMsg
	}
	buf.Puts(row, 0, heading, style)
	return row + 1
}

// hyperlink wraps text in an OSC-8 terminal hyperlink pointing at url.
func hyperlink(url, text string) string {
	return "\x1B]8;;" + url + "\x1B\\" + text + "\x1B]8;;\x1B\\"
}

func writeMessage(buf *snippet.StyledBuffer, row int, m Message, lineNumWidth int, decor snippet.Decor) int {
	gutter := strings.Repeat(" ", lineNumWidth+1) + decor.NoteSeparator + " "
	buf.Puts(row, 0, gutter+m.Level.Name+": "+m.Text, snippet.HeaderMsg)
	return row + 1
}

func writeOrigin(buf *snippet.StyledBuffer, row int, o Origin, lineNumWidth int, decor snippet.Decor, first bool) int {
	header := decor.ContinuationHeader
	if first {
		header = decor.InitialHeader
	}
	loc := o.Path
	if o.Line != nil {
		if o.Column != nil {
			loc = fmt.Sprintf("%s:%d:%d", o.Path, *o.Line, *o.Column)
		} else {
			loc = fmt.Sprintf("%s:%d", o.Path, *o.Line)
		}
	}
	buf.Puts(row, 0, strings.Repeat(" ", lineNumWidth)+" "+header+" "+loc, snippet.LineAndColumn)
	return row + 1
}

// writeImplicitOrigin emits the "--> path:line:col" header and the blank
// gutter separator row that precedes a snippet's first source row, unless
// the snippet carries no path (in which case the caller already wrote an
// explicit [Origin]).
func writeImplicitOrigin[M any](buf *snippet.StyledBuffer, row int, sn snippet.Snippet[M], lineNumWidth int, decor snippet.Decor) int {
	if sn.Path == "" {
		return row
	}
	loc := fmt.Sprintf("%s:%d:1", sn.Path, sn.LineStart)
	buf.Puts(row, 0, strings.Repeat(" ", lineNumWidth)+" "+decor.InitialHeader+" "+loc, snippet.LineAndColumn)
	row++
	buf.Puts(row, lineNumWidth+1, decor.ColumnSeparator, snippet.LineAndColumn)
	return row + 1
}

func writePadding(buf *snippet.StyledBuffer, row int, lineNumWidth int, decor snippet.Decor) int {
	buf.Puts(row, lineNumWidth+1, decor.ColumnSeparator, snippet.LineAndColumn)
	return row + 1
}

func writeClosingCorner(buf *snippet.StyledBuffer, row int, lineNumWidth int, decor snippet.Decor) int {
	glyph := decor.EndSeparator
	if decor.ColumnSeparator == "|" {
		glyph = "|"
	}
	buf.Puts(row, lineNumWidth+1, glyph, snippet.LineAndColumn)
	return row + 1
}

func (r Renderer) stylesheetFor(lvl Level) snippet.Stylesheet {
	if !r.Colorize {
		return snippet.PlainStylesheet()
	}
	bold := "\x1b[1m"
	levelColor := fmt.Sprintf("\x1b[1;%dm", lvl.Color)
	return snippet.Stylesheet{
		Codes: map[snippet.StyleTag]string{
			snippet.MainHeaderMsg:      levelColor,
			snippet.HeaderMsg:          bold,
			snippet.LineNumber:         "\x1b[34m",
			snippet.LineAndColumn:      "\x1b[34m",
			snippet.Quotation:          "\x1b[2m",
			snippet.UnderlinePrimary:   levelColor,
			snippet.UnderlineSecondary: "\x1b[34m",
			snippet.LabelPrimary:       levelColor,
			snippet.LabelSecondary:     "\x1b[34m",
			snippet.Addition:           "\x1b[32m",
			snippet.Removal:            "\x1b[31m",
		},
		Reset: "\x1b[0m",
	}
}
