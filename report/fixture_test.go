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
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/riftlang/snippet/snippet"
)

// The types below are a tiny YAML schema for describing a one-group report
// in a golden test fixture: just enough to exercise a title, an optional
// cause, and its annotations.

type annotationFixture struct {
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
	Label string `yaml:"label"`
	Kind  string `yaml:"kind"`
}

type causeFixture struct {
	Path        string              `yaml:"path"`
	Source      string              `yaml:"source"`
	LineStart   int                 `yaml:"line_start"`
	Annotations []annotationFixture `yaml:"annotations"`
}

type reportFixture struct {
	Level string        `yaml:"level"`
	Title string        `yaml:"title"`
	Cause *causeFixture `yaml:"cause"`
}

func levelFor(name string) Level {
	switch name {
	case "warning":
		return Warning
	case "info":
		return Info
	default:
		return Error
	}
}

func (f annotationFixture) toAnnotation() snippet.Annotation {
	kind := snippet.KindContext
	switch f.Kind {
	case "primary":
		kind = snippet.KindPrimary
	case "visible":
		kind = snippet.KindVisible
	}
	return snippet.Annotation{Start: f.Start, End: f.End, Label: f.Label, Kind: kind}
}

func buildFixtureReport(t *testing.T, text string) *Report {
	t.Helper()
	var f reportFixture
	if err := yaml.Unmarshal([]byte(text), &f); err != nil {
		t.Fatalf("golden: invalid fixture: %v", err)
	}

	var opts []GroupOption
	if f.Cause != nil {
		anns := make([]snippet.Annotation, len(f.Cause.Annotations))
		for i, a := range f.Cause.Annotations {
			anns[i] = a.toAnnotation()
		}
		opts = append(opts, WithCause(f.Cause.Path, f.Cause.Source, f.Cause.LineStart, anns))
	}

	g := NewGroup(levelFor(f.Level), f.Title, opts...)
	return &Report{Groups: []Group{g}}
}
