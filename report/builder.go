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

	"github.com/riftlang/snippet/snippet"
)

// GroupOption configures a [Group] under construction, in the same
// functional-options style used to build a single diagnostic: each option
// appends one more [Element].
type GroupOption func(*Group)

// NewGroup builds a [Group] at the given level, starting with its primary
// title, then applying every option in order.
func NewGroup(level Level, title string, opts ...GroupOption) Group {
	g := Group{Level: level}
	g.Elements = append(g.Elements, Title{Level: level, Text: title, Primary: true})
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// WithID attaches a diagnostic code (and optional doc URL) to the group's
// title, which is always its first element, wherever the option appears
// in the list.
func WithID(code, url string) GroupOption {
	return func(g *Group) {
		if len(g.Elements) == 0 {
			return
		}
		t, ok := g.Elements[0].(Title)
		if !ok {
			return
		}
		t.ID = &TitleID{Code: code, URL: url}
		g.Elements[0] = t
	}
}

// WithCause attaches an annotated source block.
func WithCause(path, source string, lineStart int, markers []snippet.Annotation) GroupOption {
	return func(g *Group) {
		g.Elements = append(g.Elements, Cause{Snippet: snippet.Snippet[snippet.Annotation]{
			Path: path, Source: source, LineStart: lineStart, Markers: markers,
		}})
	}
}

// WithSuggestion attaches a source block whose markers are patches.
func WithSuggestion(path, source string, lineStart int, patches []snippet.Patch) GroupOption {
	return func(g *Group) {
		g.Elements = append(g.Elements, Suggestion{Snippet: snippet.Snippet[snippet.Patch]{
			Path: path, Source: source, LineStart: lineStart, Markers: patches,
		}})
	}
}

// WithOrigin attaches a standalone location line.
func WithOrigin(path string, line, column int, primary bool) GroupOption {
	return func(g *Group) {
		g.Elements = append(g.Elements, Origin{Path: path, Line: &line, Column: &column, Primary: primary})
	}
}

// WithNote appends a "= note: ..." footer message.
func WithNote(text string) GroupOption {
	return func(g *Group) {
		g.Elements = append(g.Elements, Message{Level: NoteLevel, Text: text})
	}
}

// WithNotef is [WithNote] with fmt.Sprintf formatting.
func WithNotef(format string, args ...any) GroupOption {
	return WithNote(fmt.Sprintf(format, args...))
}

// WithHelp appends a "= help: ..." footer message.
func WithHelp(text string) GroupOption {
	return func(g *Group) {
		g.Elements = append(g.Elements, Message{Level: HelpLevel, Text: text})
	}
}

// WithHelpf is [WithHelp] with fmt.Sprintf formatting.
func WithHelpf(format string, args ...any) GroupOption {
	return WithHelp(fmt.Sprintf(format, args...))
}

// WithPadding appends a blank separator row.
func WithPadding() GroupOption {
	return func(g *Group) {
		g.Elements = append(g.Elements, Padding{})
	}
}
