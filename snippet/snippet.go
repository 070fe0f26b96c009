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

// Snippet is a source string plus the markers laid over it: either
// [Annotation]s (for a Cause) or [Patch]es (for a Suggestion). It owns
// nothing but the borrowed strings passed to it; Markers is kept in the
// order given.
type Snippet[M any] struct {
	Path      string
	Source    string
	LineStart int
	Markers   []M
	Fold      bool
}
