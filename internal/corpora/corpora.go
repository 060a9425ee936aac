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

// Package corpora runs golden tests over a directory of test cases.
//
// Each test case is a file; its expected outputs live next to it, in files
// named after the test case plus an extension for each output.
package corpora

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes a test data corpus: table-driven tests where the table
// is in the file system.
type Corpus struct {
	// The root of the test data directory, relative to the file that calls
	// [Corpus.Run].
	Root string

	// An environment variable holding a glob of test cases whose outputs
	// should be rewritten instead of checked.
	Refresh string

	// File extensions (without a dot) of files which define a test case.
	Extensions []string

	// Outputs of each test case. A missing output file is treated as
	// expecting the empty string.
	Outputs []Output
}

// Output is an output of a test case.
type Output struct {
	// The extension of the output, appended to the name of the test case's
	// file: for "a.yaml" and Extension "txt", the output is "a.yaml.txt".
	Extension string

	// Compares the output with its expected value. If nil, outputs are
	// compared byte-for-byte.
	Compare Compare
}

// Compare compares a test output with its expected value.
//
// Returns the empty string if they match, or a message describing the
// difference otherwise.
type Compare func(got, want string) string

// Run runs test on every test case of the corpus, in parallel.
//
// test must fill in one element of outputs for each of [Corpus.Outputs].
func (c Corpus) Run(t *testing.T, test func(t *testing.T, path, text string, outputs []string)) {
	t.Helper()

	testDir := callerDir(0)
	root := filepath.Join(testDir, c.Root)

	var tests []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		ext := strings.TrimPrefix(filepath.Ext(p), ".")
		if !d.IsDir() && slices.Contains(c.Extensions, ext) {
			tests = append(tests, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("corpora: error while walking %q: %v", root, err)
	}
	if len(tests) == 0 {
		t.Fatalf("corpora: no test cases in %q", root)
	}

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing test data because %s=%s", c.Refresh, refresh)
	}

	for _, path := range tests {
		name, _ := filepath.Rel(root, path)
		name = filepath.ToSlash(name)
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			input, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("corpora: error while loading input file %q: %v", path, err)
			}

			outputs := make([]string, len(c.Outputs))
			test(t, name, string(input), outputs)

			refresh, _ := doublestar.Match(refresh, name)
			for i, output := range c.Outputs {
				path := path + "." + output.Extension
				if refresh {
					if err := write(path, outputs[i]); err != nil {
						t.Errorf("corpora: %v", err)
					}
					continue
				}

				want, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("corpora: error while loading output file %q: %v", path, err)
					continue
				}

				compare := output.Compare
				if compare == nil {
					compare = Diff
				}
				if diff := compare(outputs[i], string(want)); diff != "" {
					t.Errorf("output mismatch for %q:\n%s", path, diff)
				}
			}
		})
	}
}

// Diff compares two strings byte-for-byte, and returns a colorized unified
// diff if they differ.
func Diff(got, want string) string {
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
	if diff == "" {
		// Only trailing newlines differ, which SplitLines cannot see.
		return fmt.Sprintf("want %q\ngot  %q", want, got)
	}

	lines := strings.Split(diff, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = "\033[1;92m" + line + "\033[0m"
		case strings.HasPrefix(line, "-"):
			lines[i] = "\033[1;91m" + line + "\033[0m"
		}
	}
	return strings.Join(lines, "\n")
}

func write(path, output string) error {
	if output == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("error while deleting output file %q: %w", path, err)
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
		return fmt.Errorf("error while writing output file %q: %w", path, err)
	}
	return nil
}

func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		panic("corpora: could not determine test file's directory")
	}
	return filepath.Dir(file)
}
