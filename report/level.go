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

// Level is a diagnostic's severity. Unlike a closed enum, Level is open:
// callers may define their own with [NewLevel] alongside the five
// prebuilt ones, each carrying its own ANSI color.
type Level struct {
	Name  string
	Color int
}

// NewLevel returns a custom severity named name, colored by the given
// ANSI SGR foreground color code (30-37, 90-97).
func NewLevel(name string, color int) Level {
	return Level{Name: name, Color: color}
}

var (
	// Error is the most severe prebuilt level.
	Error = Level{Name: "error", Color: 31}
	// Warning flags a likely but non-fatal problem.
	Warning = Level{Name: "warning", Color: 33}
	// Info is a neutral, informational level.
	Info = Level{Name: "info", Color: 36}
	// NoteLevel backs secondary "= note: ..." headers and footer messages.
	NoteLevel = Level{Name: "note", Color: 36}
	// HelpLevel backs "= help: ..." suggestions.
	HelpLevel = Level{Name: "help", Color: 32}
)
