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

// DecorStyle selects which glyph table draw routines pull from: plain ASCII
// or Unicode box-drawing characters.
type DecorStyle int

const (
	// Ascii selects the seven-bit glyph table.
	Ascii DecorStyle = iota
	// Unicode selects the box-drawing glyph table.
	Unicode
)

// Decor is a table of every glyph a drawing routine needs, resolved once per
// render from a [DecorStyle] so the rest of the package never embeds a glyph
// literal directly.
type Decor struct {
	InitialHeader      string // "-->" / "╭▸"
	ContinuationHeader string // ":::" / "⸬"
	ColumnSeparator    string // "|" / "│"
	Fold               string // "..." / "‡"
	NoteSeparator      string // "=" / "├ " (continuation)
	EndSeparator       string // "=" / "╰ " (end)
	UnderlinePrimary   string // "^" / "━"
	UnderlineSecondary string // "-" / "─"
	CornerStart        string // "_" / "┌" or "┏"
	CornerEnd          string // "^" / "└" or "┗"
	VerticalPrimary    string // "|" / "┃"
	VerticalSecondary  string // "|" / "│"
	MarginEllipsis     string // "..." / "…"
	DiffAdd            string // "+ "
	DiffRemove         string // "- "
	UnderlineReplace   string // "~"
	CompactConnector   string // "/", both styles
}

// DecorFor resolves the full glyph table for style.
func DecorFor(style DecorStyle) Decor {
	if style == Unicode {
		return Decor{
			InitialHeader:      "╭▸",
			ContinuationHeader: "⸬",
			ColumnSeparator:    "│",
			Fold:               "‡",
			NoteSeparator:      "├ ",
			EndSeparator:       "╰ ",
			UnderlinePrimary:   "━",
			UnderlineSecondary: "─",
			CornerStart:        "┌",
			CornerEnd:          "└",
			VerticalPrimary:    "┃",
			VerticalSecondary:  "│",
			MarginEllipsis:     "…",
			DiffAdd:            "+ ",
			DiffRemove:         "- ",
			UnderlineReplace:   "~",
			CompactConnector:   "/",
		}
	}
	return Decor{
		InitialHeader:      "-->",
		ContinuationHeader: ":::",
		ColumnSeparator:    "|",
		Fold:               "...",
		NoteSeparator:      "=",
		EndSeparator:       "=",
		UnderlinePrimary:   "^",
		UnderlineSecondary: "-",
		CornerStart:        "_",
		CornerEnd:          "^",
		VerticalPrimary:    "|",
		VerticalSecondary:  "|",
		MarginEllipsis:     "...",
		DiffAdd:            "+ ",
		DiffRemove:         "- ",
		UnderlineReplace:   "~",
		CompactConnector:   "/",
	}
}

// CornerStartFor picks the opening corner of a multi-line span; in Unicode
// it is the heavy "┏" when the span is the primary annotation, matching rustc's heavier "┏" sidebar for
// the primary span versus the thin "┌" used for context spans.
func (d Decor) CornerStartFor(primary bool) string {
	if d.CornerStart == "┌" && primary {
		return "┏"
	}
	return d.CornerStart
}

// CornerEndFor is the corresponding heavy/light choice for the closing
// corner of a multi-line span.
func (d Decor) CornerEndFor(primary bool) string {
	if d.CornerEnd == "└" && primary {
		return "┗"
	}
	return d.CornerEnd
}

// VerticalFor picks the sidebar glyph for a primary versus context
// multi-line connector.
func (d Decor) VerticalFor(primary bool) string {
	if primary {
		return d.VerticalPrimary
	}
	return d.VerticalSecondary
}

// UnderlineFor picks the caret/underline glyph for a primary versus context
// annotation.
func (d Decor) UnderlineFor(primary bool) string {
	if primary {
		return d.UnderlinePrimary
	}
	return d.UnderlineSecondary
}

// HorizontalFor picks the glyph used to connect a multi-line corner to its
// caret column. Unicode reuses the same box-drawing line as the underline
// itself; ASCII keeps this visually distinct ("_") from the caret glyph
// ("^"/"-") it leads into.
func (d Decor) HorizontalFor(primary bool) string {
	if d.CornerStart == "_" {
		return "_"
	}
	return d.UnderlineFor(primary)
}
