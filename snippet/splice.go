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

import "sort"

// Patch is a single replacement applied to a source string: the bytes in
// [Start, End) are removed and Replacement is put in their place. Start ==
// End is a pure insertion; an empty Replacement is a pure deletion.
type Patch struct {
	Start, End  int
	Replacement string
}

// Highlight is a byte range within the spliced output that [SpliceLines]
// considers newly-added text, for rendering in the addition style.
type Highlight struct {
	Start, End int
}

// SpliceLines applies patches to source in ascending start order and
// returns the resulting text plus the byte ranges of that result that it
// inserted. Patches must not overlap; SpliceLines panics with
// [OverlappingPatches] if two patches' ranges intersect, and with
// [SpanBeyondEOF] if a patch ends past the end of source.
func SpliceLines(source string, patches []Patch) (complete string, highlights []Highlight) {
	sorted := make([]Patch, len(patches))
	copy(sorted, patches)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	for _, p := range sorted {
		if p.End > len(source) {
			panic(SpanBeyondEOF{Start: p.Start, End: p.End, SourceLen: len(source)})
		}
	}

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start < sorted[i-1].End {
			panic(OverlappingPatches{
				AStart: sorted[i-1].Start, AEnd: sorted[i-1].End,
				BStart: sorted[i].Start, BEnd: sorted[i].End,
			})
		}
	}

	var b []byte
	cur := 0
	for _, p := range sorted {
		b = append(b, source[cur:p.Start]...)
		start := len(b)
		b = append(b, p.Replacement...)
		end := len(b)
		if end > start {
			highlights = append(highlights, Highlight{Start: start, End: end})
		}
		cur = p.End
	}
	b = append(b, source[cur:]...)

	return string(b), highlights
}
