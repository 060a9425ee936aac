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

package reporter

import (
	"errors"
	"fmt"

	"github.com/bufbuild/docfmt/trivia"
)

// ErrInvalidSource is a sentinel error that is returned by formatting calls
// when errors were reported but the configured [ErrorReporter] always
// returned nil.
var ErrInvalidSource = errors.New("format failed: invalid source")

// Position is a location in a source file.
type Position struct {
	Filename string
	Span     trivia.Span
}

// String implements [fmt.Stringer].
func (p Position) String() string {
	name := p.Filename
	if name == "" {
		name = "<input>"
	}
	return fmt.Sprintf("%s:%v", name, p.Span)
}

// ErrorWithPos is an error about a source file that includes information
// about the location in the file that caused the error.
//
// The value of Error() will contain both the Position and the underlying
// error. The value of Unwrap() will only be the underlying error.
type ErrorWithPos interface {
	error
	GetPosition() Position
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and position.
func Error(pos Position, err error) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: err}
}

// Errorf creates a new ErrorWithPos whose underlying error is created using
// the given message format and arguments (via fmt.Errorf).
func Errorf(pos Position, format string, args ...any) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithPos struct {
	underlying error
	pos        Position
}

func (e errorWithPos) Error() string {
	return fmt.Sprintf("%v: %v", e.pos, e.underlying)
}

// GetPosition implements the ErrorWithPos interface.
func (e errorWithPos) GetPosition() Position {
	return e.pos
}

// Unwrap implements the ErrorWithPos interface.
func (e errorWithPos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithPos{}
