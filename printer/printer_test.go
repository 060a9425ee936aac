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

package printer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/docfmt/doc"
	"github.com/bufbuild/docfmt/printer"
)

func TestPrint(t *testing.T) {
	t.Parallel()

	list := func(b *doc.Builder, items ...string) doc.Doc {
		var docs []doc.Doc
		for _, item := range items {
			docs = append(docs, b.Text(item))
		}
		return b.Group(
			b.Text("["),
			b.Indent(b.SoftLine(), b.Join(b.Concat(b.Text(","), b.Line()), docs...)),
			b.IfBreak(b.Text(","), 0),
			b.SoftLine(),
			b.Text("]"),
		)
	}

	tests := []struct {
		name    string
		options printer.Options
		build   func(b *doc.Builder) doc.Doc
		want    string
	}{
		{
			name:  "flat",
			build: func(b *doc.Builder) doc.Doc { return b.Group(b.Text("a"), b.Line(), b.Text("b")) },
			want:  "a b",
		},
		{
			name:    "broken",
			options: printer.Options{PrintWidth: 1},
			build:   func(b *doc.Builder) doc.Doc { return b.Group(b.Text("a"), b.Line(), b.Text("b")) },
			want:    "a\nb",
		},
		{
			name:    "exact-fit",
			options: printer.Options{PrintWidth: 3},
			build:   func(b *doc.Builder) doc.Doc { return b.Group(b.Text("a"), b.Line(), b.Text("b")) },
			want:    "a b",
		},
		{
			name:    "fill",
			options: printer.Options{PrintWidth: 6},
			build: func(b *doc.Builder) doc.Doc {
				return b.Fill(b.Text("aaaa"), b.Line(), b.Text("b"), b.Line(), b.Text("cccccccccccc"))
			},
			want: "aaaa\nb\ncccccccccccc",
		},
		{
			name:    "fill-next-separator",
			options: printer.Options{PrintWidth: 5},
			build: func(b *doc.Builder) doc.Doc {
				return b.Fill(b.Text("aa"), b.Line(), b.Text("bb"), b.Line(), b.Text("c"))
			},
			want: "aa\nbb c",
		},
		{
			name:    "fill-pairs",
			options: printer.Options{PrintWidth: 10},
			build: func(b *doc.Builder) doc.Doc {
				var parts []doc.Doc
				for i, word := range strings.Fields("one two three four five six") {
					if i > 0 {
						parts = append(parts, b.Line())
					}
					parts = append(parts, b.Text(word))
				}
				return b.Fill(parts...)
			},
			want: "one two\nthree\nfour five\nsix",
		},
		{
			name: "nested-hard-line",
			build: func(b *doc.Builder) doc.Doc {
				inner := b.Group(b.Text("a"), b.Line(), b.Text("b"), b.HardLine(), b.Text("c"))
				return b.Group(b.Text("("), b.Indent(b.SoftLine(), inner), b.SoftLine(), b.Text(")"))
			},
			want: "(\n  a\n  b\n  c\n)",
		},
		{
			name:    "list",
			options: printer.Options{PrintWidth: 10},
			build: func(b *doc.Builder) doc.Doc {
				return b.Concat(list(b, "1", "2"), b.HardLine(), list(b, "1", "2", "3", "4", "5"))
			},
			want: "[1, 2]\n[\n  1,\n  2,\n  3,\n  4,\n  5,\n]",
		},
		{
			name:    "tabs",
			options: printer.Options{TabWidth: 4, UseTabs: true},
			build: func(b *doc.Builder) doc.Doc {
				return b.Concat(b.Text("a"), b.Indent(b.Align(2,
					b.HardLine(), b.Text("x"),
					b.Indent(b.HardLine(), b.Text("y")),
				)))
			},
			want: "a\n\t  x\n\t\t\ty",
		},
		{
			name:    "spaces",
			options: printer.Options{TabWidth: 4},
			build: func(b *doc.Builder) doc.Doc {
				return b.Concat(b.Text("a"), b.Indent(b.Align(2,
					b.HardLine(), b.Text("x"),
					b.Indent(b.HardLine(), b.Text("y")),
				)))
			},
			want: "a\n      x\n          y",
		},
		{
			name: "dedent",
			build: func(b *doc.Builder) doc.Doc {
				return b.Indent(b.Text("a"), b.Indent(b.HardLine(), b.Text("b"), b.Dedent(b.HardLine(), b.Text("c"))))
			},
			want: "a\n    b\n  c",
		},
		{
			name: "literal-line",
			build: func(b *doc.Builder) doc.Doc {
				return b.Indent(b.Text("a "), b.LiteralLine(), b.Text("b  "), b.HardLine(), b.Text("c"))
			},
			want: "a \nb\n  c",
		},
		{
			name: "line-suffix",
			build: func(b *doc.Builder) doc.Doc {
				return b.Concat(b.Text("a"), b.LineSuffix(b.Text(" // c")), b.Text(","), b.HardLine(), b.Text("b"))
			},
			want: "a, // c\nb",
		},
		{
			name: "line-suffix-eof",
			build: func(b *doc.Builder) doc.Doc {
				return b.Concat(b.Text("a"), b.LineSuffix(b.Text(" // c")))
			},
			want: "a // c",
		},
		{
			name: "line-suffix-boundary",
			build: func(b *doc.Builder) doc.Doc {
				return b.Concat(
					b.Text("a"), b.LineSuffixBoundary(),
					b.LineSuffix(b.Text(" // c")), b.LineSuffixBoundary(), b.Text("b"),
				)
			},
			want: "a // c\nb",
		},
		{
			name:    "conditional-first",
			options: printer.Options{PrintWidth: 5},
			build: func(b *doc.Builder) doc.Doc {
				return b.ConditionalGroup(b.Text("abc"), b.Text("x"))
			},
			want: "abc",
		},
		{
			name:    "conditional-second",
			options: printer.Options{PrintWidth: 5},
			build: func(b *doc.Builder) doc.Doc {
				return b.ConditionalGroup(b.Text("aaaaaaaa"), b.Text("bb"))
			},
			want: "bb",
		},
		{
			name:    "conditional-last",
			options: printer.Options{PrintWidth: 3},
			build: func(b *doc.Builder) doc.Doc {
				return b.ConditionalGroup(b.Text("aaaaaaaa"), b.Concat(b.Text("cc"), b.Line(), b.Text("dd")))
			},
			want: "cc\ndd",
		},
		{
			name:    "if-break-for",
			options: printer.Options{PrintWidth: 2},
			build: func(b *doc.Builder) doc.Doc {
				id := b.NewGroupID()
				return b.Concat(
					b.GroupWith(doc.GroupOptions{ID: id}, b.Text("x"), b.Line(), b.Text("y")),
					b.Group(b.IfBreakFor(id, b.Text("B"), b.Text("F"))),
				)
			},
			want: "x\nyB",
		},
		{
			name: "if-break-for-flat",
			build: func(b *doc.Builder) doc.Doc {
				id := b.NewGroupID()
				return b.Concat(
					b.GroupWith(doc.GroupOptions{ID: id}, b.Text("x"), b.Line(), b.Text("y")),
					b.GroupWith(doc.GroupOptions{ShouldBreak: true}, b.IfBreakFor(id, b.Text("B"), b.Text("F"))),
				)
			},
			want: "x yF",
		},
		{
			name: "trim",
			build: func(b *doc.Builder) doc.Doc {
				return b.Concat(b.Text("a \t "), b.Trim(), b.Text("b"))
			},
			want: "ab",
		},
		{
			name: "trailing-whitespace",
			build: func(b *doc.Builder) doc.Doc {
				return b.Indent(b.Text("a"), b.Text(" "), b.HardLine(), b.HardLine(), b.Text("b"))
			},
			want: "a\n\n  b",
		},
		{
			name:    "crlf",
			options: printer.Options{PrintWidth: 1, NewLine: "\r\n"},
			build:   func(b *doc.Builder) doc.Doc { return b.Group(b.Text("a"), b.Line(), b.Text("b")) },
			want:    "a\r\nb",
		},
		{
			name:    "wide",
			options: printer.Options{PrintWidth: 5},
			build:   func(b *doc.Builder) doc.Doc { return b.Group(b.Text("日本"), b.Line(), b.Text("b")) },
			want:    "日本\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var b doc.Builder
			got, err := printer.Print(b.Finish(tt.build(&b)), tt.options)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrintDefect(t *testing.T) {
	t.Parallel()

	var b doc.Builder
	_, err := printer.Print(b.Finish(b.Fill(b.Text("a"), b.Line())), printer.Options{})

	var defect *doc.DefectError
	require.ErrorAs(t, err, &defect)
	assert.Equal(t, doc.KindFill, defect.Kind)
}

func TestPrintWidth(t *testing.T) {
	t.Parallel()

	for width := 12; width < 50; width++ {
		var b doc.Builder
		var items []doc.Doc
		for _, s := range strings.Fields("alpha beta gamma delta epsilon zeta") {
			items = append(items, b.Text(s))
		}
		root := b.Group(
			b.Text("f("),
			b.Indent(b.SoftLine(), b.Join(b.Concat(b.Text(","), b.Line()), items...)),
			b.SoftLine(),
			b.Text(")"),
		)

		got, err := printer.Print(b.Finish(root), printer.Options{PrintWidth: width})
		require.NoError(t, err)

		flat := "f(alpha, beta, gamma, delta, epsilon, zeta)"
		if width >= len(flat) {
			assert.Equal(t, flat, got)
			continue
		}
		for _, line := range strings.Split(got, "\n") {
			assert.LessOrEqual(t, len(line), width, "width %d: %q", width, got)
		}
	}
}
