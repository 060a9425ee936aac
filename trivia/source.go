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

package trivia

import "unicode/utf8"

// IsNextLineEmpty returns whether the line after end is blank.
//
// Only the second character after end is examined: the line is blank if it
// is a newline. Thus "a;\r\nb" has a blank line after "a;", while two
// trailing spaces after end hide a blank line.
func IsNextLineEmpty(source string, end int) bool {
	if end < 0 || end >= len(source) {
		return false
	}
	_, n := utf8.DecodeRuneInString(source[end:])
	return end+n < len(source) && source[end+n] == '\n'
}

// HasNewline returns whether a newline follows offset, after any spaces.
func HasNewline(source string, offset int) bool {
	i := skipSpaces(source, offset)
	return skipNewline(source, i) != i
}

// HasNewlineBefore returns whether a newline precedes offset, before any
// spaces.
func HasNewlineBefore(source string, offset int) bool {
	i := skipSpacesBack(source, offset-1)
	return skipNewlineBack(source, i) != i
}

// IsPreviousLineEmpty returns whether the line before the one containing
// offset is blank.
func IsPreviousLineEmpty(source string, offset int) bool {
	i := skipSpacesBack(source, offset-1)
	i = skipNewlineBack(source, i)
	i = skipSpacesBack(source, i)
	return skipNewlineBack(source, i) != i
}

// skipSpaces returns the offset of the first byte at or after i that is not
// a space or a tab.
func skipSpaces(source string, i int) int {
	for i >= 0 && i < len(source) && (source[i] == ' ' || source[i] == '\t') {
		i++
	}
	return i
}

// skipSpacesBack returns the offset of the last byte at or before i that is
// not a space or a tab, or -1.
func skipSpacesBack(source string, i int) int {
	for i >= 0 && i < len(source) && (source[i] == ' ' || source[i] == '\t') {
		i--
	}
	return i
}

// skipNewline returns the offset after the newline at i, or i if there is
// none.
func skipNewline(source string, i int) int {
	if i < 0 || i >= len(source) {
		return i
	}
	switch source[i] {
	case '\r':
		if i+1 < len(source) && source[i+1] == '\n' {
			return i + 2
		}
		return i + 1
	case '\n':
		return i + 1
	}
	return i
}

// skipNewlineBack returns the offset before the newline ending at i, or i
// if there is none.
func skipNewlineBack(source string, i int) int {
	if i < 0 || i >= len(source) {
		return i
	}
	switch source[i] {
	case '\n':
		if i > 0 && source[i-1] == '\r' {
			return i - 2
		}
		return i - 1
	case '\r':
		return i - 1
	}
	return i
}
