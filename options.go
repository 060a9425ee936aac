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

package docfmt

import (
	"fmt"
	"strings"

	"github.com/bufbuild/docfmt/printer"
	"github.com/bufbuild/docfmt/reporter"
)

// Options configures formatting.
//
// The zero value is not valid; start from [DefaultOptions].
type Options struct {
	// The width of a line, in columns.
	PrintWidth int
	// The number of columns an indentation level takes up.
	TabWidth int
	// If set, indentation levels are printed as tabs.
	UseTabs bool

	QuoteProps    QuoteProps
	TrailingComma TrailingComma
	// If set, object literals get spaces inside their braces: { a }.
	BracketSpacing bool
	ArrowParens    ArrowParens
	EndOfLine      EndOfLine

	// The name of the file being formatted, used in diagnostics.
	Filename string
	// Receives diagnostics. If nil, the first error aborts formatting and
	// warnings are dropped.
	Reporter reporter.Reporter
}

// DefaultOptions returns the default formatting options.
func DefaultOptions() Options {
	return Options{
		PrintWidth:     80,
		TabWidth:       2,
		BracketSpacing: true,
	}
}

// OptionError is returned for an option with an invalid value.
type OptionError struct {
	Field string
	Value any
}

// Error implements [error].
func (e *OptionError) Error() string {
	return fmt.Sprintf("docfmt: invalid value for %s: %v", e.Field, e.Value)
}

// Validate checks that every field of o has a valid value.
func (o Options) Validate() error {
	switch {
	case o.PrintWidth <= 0:
		return &OptionError{Field: "printWidth", Value: o.PrintWidth}
	case o.TabWidth <= 0:
		return &OptionError{Field: "tabWidth", Value: o.TabWidth}
	}
	if _, ok := ParseQuoteProps(o.QuoteProps.String()); !ok {
		return &OptionError{Field: "quoteProps", Value: o.QuoteProps}
	}
	if _, ok := ParseTrailingComma(o.TrailingComma.String()); !ok {
		return &OptionError{Field: "trailingComma", Value: o.TrailingComma}
	}
	if _, ok := ParseArrowParens(o.ArrowParens.String()); !ok {
		return &OptionError{Field: "arrowParens", Value: o.ArrowParens}
	}
	if _, ok := ParseEndOfLine(o.EndOfLine.String()); !ok {
		return &OptionError{Field: "endOfLine", Value: o.EndOfLine}
	}
	return nil
}

// ShouldPrintComma reports whether a list at the given level gets a
// trailing comma when it breaks.
func (o Options) ShouldPrintComma(level CommaLevel) bool {
	switch o.TrailingComma {
	case TrailingCommaAll:
		return true
	case TrailingCommaES5:
		return level == CommaES5
	default:
		return false
	}
}

// NewLine returns the newline sequence to print for source.
//
// With [EndOfLineAuto], this is the first line ending found in source, or
// "\n" if there is none.
func (o Options) NewLine(source string) string {
	switch o.EndOfLine {
	case EndOfLineCRLF:
		return "\r\n"
	case EndOfLineCR:
		return "\r"
	case EndOfLineAuto:
		i := strings.IndexAny(source, "\r\n")
		switch {
		case i < 0 || source[i] == '\n':
			return "\n"
		case strings.HasPrefix(source[i:], "\r\n"):
			return "\r\n"
		default:
			return "\r"
		}
	default:
		return "\n"
	}
}

func (o Options) printer(source string) printer.Options {
	return printer.Options{
		PrintWidth: o.PrintWidth,
		TabWidth:   o.TabWidth,
		UseTabs:    o.UseTabs,
		NewLine:    o.NewLine(source),
	}
}
