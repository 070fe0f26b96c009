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

import "fmt"

// SpanBeyondEOF is panicked when an annotation's byte range extends past the
// end of the source it annotates. This can only happen if a caller built a
// [Patch] or annotation with an out-of-range offset; it is always a
// programmer error, never a property of untrusted input, so it is not
// returned as an error.
type SpanBeyondEOF struct {
	Start, End int
	SourceLen  int
}

func (e SpanBeyondEOF) Error() string {
	return fmt.Sprintf("snippet: span [%d, %d) extends beyond end of source (len %d)", e.Start, e.End, e.SourceLen)
}

// OverlappingPatches is panicked when two suggestion patches applied to the
// same source overlap in byte range, which makes splicing them ambiguous.
type OverlappingPatches struct {
	AStart, AEnd int
	BStart, BEnd int
}

func (e OverlappingPatches) Error() string {
	return fmt.Sprintf("snippet: patches [%d, %d) and [%d, %d) overlap", e.AStart, e.AEnd, e.BStart, e.BEnd)
}

// InvariantViolated is panicked when internal bookkeeping (depth assignment,
// slot allocation) reaches a state the algorithm claims
// is unreachable. Seeing this means the library itself has a bug.
type InvariantViolated struct {
	What string
}

func (e InvariantViolated) Error() string {
	return "snippet: invariant violated: " + e.What
}
