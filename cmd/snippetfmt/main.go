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

// Command snippetfmt is a thin demonstration of the report builder API: it
// renders one fixed diagnostic in whichever mode its flags select. It is
// not a linter driver; real callers build a [report.Report] from their own
// diagnostics and call [report.Renderer.Render] directly.
package main

import (
	"flag"
	"fmt"

	"github.com/riftlang/snippet/report"
	"github.com/riftlang/snippet/snippet"
)

func main() {
	unicode := flag.Bool("unicode", false, "use Unicode box-drawing glyphs instead of ASCII")
	color := flag.Bool("color", false, "emit ANSI color escapes")
	short := flag.Bool("short", false, "render in short, one-line-per-group mode")
	anonymize := flag.Bool("anonymize-lines", false, "replace every gutter line number with LL")
	flag.Parse()

	rep := exampleReport()

	decor := snippet.Ascii
	if *unicode {
		decor = snippet.Unicode
	}
	r := report.Renderer{
		Decor:                 decor,
		Colorize:              *color,
		ShortMessage:          *short,
		AnonymizedLineNumbers: *anonymize,
	}

	fmt.Println(r.Render(rep))
}

func exampleReport() *report.Report {
	source := "let mut count = 0;\ncount = count + 1;\n"
	g := report.NewGroup(report.Error, "value assigned to `count` is never read",
		report.WithID("unused_assignments", ""),
		report.WithCause("example.rs", source, 1, []snippet.Annotation{
			{Start: 0, End: 18, Kind: snippet.KindContext, Label: "first assignment"},
			{Start: 19, End: 38, Kind: snippet.KindPrimary, Label: "never read"},
		}),
		report.WithHelp("maybe it is overwritten before being read?"),
	)
	return &report.Report{Groups: []report.Group{g}}
}
