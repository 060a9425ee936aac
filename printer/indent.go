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

package printer

import "strings"

// indentation is the indentation of a line, as a queue of parts.
//
// Indentation levels and alignments are kept separate so that with tabs,
// alignment followed by another level is printed as tabs while trailing
// alignment is printed as spaces.
type indentation struct {
	// Each part is either an indentation level (0) or a number of columns
	// of alignment (> 0).
	parts []int

	value string
	width int

	// Cached result of indent().
	indented *indentation
}

// indent returns ind with one more indentation level.
func (ind *indentation) indent(opts *Options) *indentation {
	if ind.indented == nil {
		ind.indented = newIndentation(append(ind.parts[:len(ind.parts):len(ind.parts)], 0), opts)
	}
	return ind.indented
}

// align returns ind with n more columns of alignment. If n is negative, the
// innermost part is removed instead.
func (ind *indentation) align(n int, opts *Options) *indentation {
	switch {
	case n == 0:
		return ind
	case n < 0:
		if len(ind.parts) == 0 {
			return ind
		}
		return newIndentation(ind.parts[:len(ind.parts)-1], opts)
	default:
		return newIndentation(append(ind.parts[:len(ind.parts):len(ind.parts)], n), opts)
	}
}

func newIndentation(parts []int, opts *Options) *indentation {
	var (
		value  strings.Builder
		width  int
		tabs   int
		spaces int
	)
	addTabs := func(n int) {
		value.WriteString(strings.Repeat("\t", n))
		width += opts.TabWidth * n
	}
	addSpaces := func(n int) {
		value.WriteString(strings.Repeat(" ", n))
		width += n
	}
	flush := func() {
		if opts.UseTabs && tabs > 0 {
			addTabs(tabs)
		} else if !opts.UseTabs && spaces > 0 {
			addSpaces(spaces)
		}
		tabs, spaces = 0, 0
	}

	for _, n := range parts {
		if n > 0 {
			tabs++
			spaces += n
			continue
		}

		flush()
		if opts.UseTabs {
			addTabs(1)
		} else {
			addSpaces(opts.TabWidth)
		}
	}

	// Trailing alignment is always spaces.
	if spaces > 0 {
		addSpaces(spaces)
	}

	return &indentation{parts: parts, value: value.String(), width: width}
}
