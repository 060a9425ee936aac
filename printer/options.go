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

// Options configures [Print].
type Options struct {
	// The width of a line, in columns. Defaults to 80.
	PrintWidth int

	// The number of columns an indentation level takes up, and that a tab
	// counts as. Defaults to 2.
	TabWidth int

	// If set, indentation levels are printed as tabs.
	UseTabs bool

	// The newline sequence. Defaults to "\n".
	NewLine string
}

// WithDefaults replaces unset fields of o with their defaults.
func (o Options) WithDefaults() Options {
	if o.PrintWidth <= 0 {
		o.PrintWidth = 80
	}
	if o.TabWidth <= 0 {
		o.TabWidth = 2
	}
	if o.NewLine == "" {
		o.NewLine = "\n"
	}
	return o
}
