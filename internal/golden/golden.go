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

// Package golden provides a framework for writing file-based golden tests
// over rendered reports.
//
// The primary entry-point is [Corpus]. Define a new corpus in an ordinary Go
// test body and call [Corpus.Run] to execute it.
//
// Corpora can be "refreshed" to update the golden files with new data
// generated by the test instead of comparing it. To do this, run the test
// with the environment variable that [Corpus.Refresh] names set to a file
// glob matching the test files to regenerate expectations for.
package golden

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a test data corpus: a table-driven test where the table
// is a directory tree on disk.
type Corpus struct {
	// Root is the test data directory, relative to the directory of the file
	// that calls [Corpus.Run].
	Root string

	// Refresh is an environment variable name; when set to a non-empty glob,
	// a matching test's golden files are overwritten instead of compared.
	Refresh string

	// Extensions are the file extensions (without a dot) that define a test
	// case, e.g. "yaml".
	Extensions []string

	// Outputs are the golden outputs produced for each test case.
	Outputs []Output
}

// Output is one golden file produced per test case.
type Output struct {
	// Extension is appended to the input file's name to find this output's
	// golden file; "foo.yaml" with Extension "txt" looks for "foo.yaml.txt".
	Extension string

	// Compare defaults to [CompareAndDiff] when nil.
	Compare CompareFunc
}

// CompareFunc compares got against want, returning "" if they match and a
// human-readable diff otherwise.
type CompareFunc func(got, want string) string

// Run walks c.Root for matching files and, for each one, calls test with the
// file's path and contents, then compares the strings test wrote into
// outputs against the corresponding golden files.
func (c Corpus) Run(t *testing.T, test func(t *testing.T, path, text string, outputs []string)) {
	testDir := callerDir(t, 1)
	root := filepath.Join(testDir, c.Root)
	t.Logf("golden: searching for files in %q", root)

	var tests []string
	err := filepath.Walk(root, func(p string, fi fs.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		for _, extn := range c.Extensions {
			if strings.HasSuffix(p, "."+extn) {
				tests = append(tests, p)
				break
			}
		}
		return err
	})
	if err != nil {
		t.Fatal("golden: error while walking testdata:", err)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if refresh != "" && !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}

	for _, path := range tests {
		name, _ := filepath.Rel(testDir, path)
		name = filepath.ToSlash(name)
		testName, _ := filepath.Rel(root, path)
		testName = filepath.ToSlash(testName)

		t.Run(testName, func(t *testing.T) {
			raw, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("golden: error while loading input file %q: %v", path, err)
			}

			input := string(raw)
			results := make([]string, len(c.Outputs))

			panicked, stack := catch(func() { test(t, name, input, results) })
			if panicked != nil {
				t.Logf("golden: test panicked: %v\n%s", panicked, stack)
				t.Fail()
			}

			matched, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				if panicked != nil && results[i] == "" {
					continue
				}

				goldenPath := fmt.Sprint(path, ".", output.Extension)

				if !matched {
					want, err := os.ReadFile(goldenPath)
					if err != nil && !errors.Is(err, os.ErrNotExist) {
						t.Logf("golden: error while loading output file %q: %v", goldenPath, err)
						t.Fail()
						continue
					}

					cmp := output.Compare
					if cmp == nil {
						cmp = CompareAndDiff
					}
					if diff := cmp(results[i], string(want)); diff != "" {
						t.Logf("golden: output mismatch for %q:\n%s", goldenPath, diff)
						t.Fail()
					}
					continue
				}

				if results[i] == "" {
					if err := os.Remove(goldenPath); err != nil && !errors.Is(err, os.ErrNotExist) {
						t.Logf("golden: error while deleting output file %q: %v", goldenPath, err)
						t.Fail()
					}
				} else if err := os.WriteFile(goldenPath, []byte(results[i]), 0o600); err != nil {
					t.Logf("golden: error while writing output file %q: %v", goldenPath, err)
					t.Fail()
				}
			}
		})
	}
}

// CompareAndDiff is a [CompareFunc] that returns a unified, colorized diff
// of the two strings when they differ.
func CompareAndDiff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	lines := strings.Split(diff, "\n")
	for i, s := range lines {
		switch {
		case strings.HasPrefix(s, "+"):
			lines[i] = "\033[1;92m" + s + "\033[0m"
		case strings.HasPrefix(s, "-"):
			lines[i] = "\033[1;91m" + s + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

// callerDir returns the directory of the file skip frames above the caller
// of this function, used to resolve Corpus.Root relative to the _test.go
// file that constructed the Corpus.
func callerDir(t *testing.T, skip int) string {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		t.Fatal("golden: could not determine caller")
	}
	return filepath.Dir(file)
}

// catch runs cb and captures any panic instead of letting it propagate.
func catch(cb func()) (recovered any, stack []byte) {
	defer func() {
		recovered = recover()
		if recovered != nil {
			stack = debug.Stack()
		}
	}()
	cb()
	return
}
