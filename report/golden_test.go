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

	"github.com/riftlang/snippet/internal/golden"
	"github.com/riftlang/snippet/snippet"
)

func TestGoldenReports(t *testing.T) {
	corpus := golden.Corpus{
		Root:       "testdata/golden",
		Refresh:    "SNIPPET_GOLDEN_REFRESH",
		Extensions: []string{"yaml"},
		Outputs:    []golden.Output{{Extension: "txt"}},
	}

	corpus.Run(t, func(t *testing.T, path, text string, outputs []string) {
		rep := buildFixtureReport(t, text)
		r := Renderer{Decor: snippet.Ascii}
		outputs[0] = r.Render(rep)
	})
}
