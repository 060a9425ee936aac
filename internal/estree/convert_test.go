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

package estree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/docfmt"
	"github.com/bufbuild/docfmt/internal/estree"
)

func format(t *testing.T, source string, opts docfmt.Options) string {
	t.Helper()

	prog, comments, err := estree.Parse("test.js", source)
	require.NoError(t, err)
	out, err := docfmt.Format(estree.Converter{}, prog, source, comments, opts)
	require.NoError(t, err)
	return out
}

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		opts   func(*docfmt.Options)
		want   string
	}{
		{name: "statements", source: "a\nb", want: "a\nb"},
		{name: "semicolons", source: "a; b;\nc", want: "a\nb\nc"},
		{name: "semicolon-blank-line", source: "a;;\nb", want: "a\n\nb"},
		{name: "blank-line", source: "a /* c */\n\nb", want: "a /* c */\n\nb"},
		{name: "blank-lines", source: "a /* c */\n\n\nb", want: "a /* c */\n\nb"},
		{name: "leading-comment", source: "// c\na", want: "// c\na"},
		{name: "leading-comment-spaces", source: "// c  \n\nb;", want: "// c\nb"},
		{name: "leading-block-spaces", source: "/* c */  \n\nb;", want: "/* c */\nb"},
		{name: "trailing-comment", source: "a; // c\nb", want: "a // c\nb"},
		{name: "last-comments", source: "a\n// b\n\n// c\n", want: "a\n// b\n\n// c"},
		{name: "empty", source: "", want: ""},
		{name: "only-comment", source: "/* a */\n", want: "/* a */"},

		{name: "array", source: "[1,2,  3]", want: "[1, 2, 3]"},
		{name: "array-empty", source: "[ ]", want: "[]"},
		{name: "array-dangling", source: "[ // c\n]", want: "[\n  // c\n]"},
		{
			name:   "array-broken",
			source: "[aaaa, bbbb, cccc]",
			opts:   func(o *docfmt.Options) { o.PrintWidth = 10 },
			want:   "[\n  aaaa,\n  bbbb,\n  cccc,\n]",
		},
		{
			name:   "array-blank-line",
			source: "[a,\n\nb]",
			opts:   func(o *docfmt.Options) { o.PrintWidth = 5 },
			want:   "[\n  a,\n\n  b,\n]",
		},
		{name: "array-blank-line-flat", source: "[a,\n\nb]", want: "[a, b]"},
		{name: "array-own-line-comment", source: "[\n  a,\n  // c\n]", want: "[\n  a,\n  // c\n]"},
		{name: "nested", source: "[[1], [2, [3]]]", want: "[[1], [2, [3]]]"},

		{name: "call", source: "f( a,b )", want: "f(a, b)"},
		{name: "call-chain", source: "f(a)(b)", want: "f(a)(b)"},
		{
			name:   "call-broken",
			source: "f(aaaa, bbbb, cccc)",
			opts:   func(o *docfmt.Options) { o.PrintWidth = 10 },
			want:   "f(\n  aaaa,\n  bbbb,\n  cccc,\n)",
		},
		{
			name:   "call-comment",
			source: "f(a, // c\n b)",
			want:   "f(\n  a, // c\n  b,\n)",
		},

		{name: "object", source: "{a:1,'b':2}", want: "{ a: 1, b: 2 }"},
		{name: "object-empty", source: "{}", want: "{}"},
		{name: "object-shorthand", source: "{a, b}", want: "{ a, b }"},
		{name: "object-expanded", source: "{\n a: 1}", want: "{\n  a: 1,\n}"},
		{
			name:   "object-no-bracket-spacing",
			source: "{a: 1}",
			opts:   func(o *docfmt.Options) { o.BracketSpacing = false },
			want:   "{a: 1}",
		},
		{name: "quote-props-needed", source: "{'a': 1, 'b-c': 2}", want: "{ 'a': 1, 'b-c': 2 }"},
		{
			name:   "quote-props-consistent",
			source: "{a: 1, 'b-c': 2}",
			opts:   func(o *docfmt.Options) { o.QuoteProps = docfmt.QuotePropsConsistent },
			want:   `{ "a": 1, 'b-c': 2 }`,
		},
		{
			name:   "quote-props-consistent-unneeded",
			source: "{a: 1, 'b': 2}",
			opts:   func(o *docfmt.Options) { o.QuoteProps = docfmt.QuotePropsConsistent },
			want:   "{ a: 1, b: 2 }",
		},
		{
			name:   "quote-props-preserve",
			source: "{'a': 1, b: 2}",
			opts:   func(o *docfmt.Options) { o.QuoteProps = docfmt.QuotePropsPreserve },
			want:   "{ 'a': 1, b: 2 }",
		},

		{name: "arrow", source: "x => x", want: "(x) => x"},
		{name: "arrow-params", source: "( x,y ) => [x, y]", want: "(x, y) => [x, y]"},
		{name: "arrow-empty", source: "() => {}", want: "() => {}"},
		{
			name:   "arrow-avoid",
			source: "(x) => x",
			opts:   func(o *docfmt.Options) { o.ArrowParens = docfmt.ArrowParensAvoid },
			want:   "x => x",
		},
		{
			name:   "arrow-avoid-rest",
			source: "(...x) => x",
			opts:   func(o *docfmt.Options) { o.ArrowParens = docfmt.ArrowParensAvoid },
			want:   "(...x) => x",
		},
		{name: "block", source: "() => {a; b}", want: "() => {\n  a\n  b\n}"},
		{name: "block-blank-line", source: "() => {a\n\n\nb}", want: "() => {\n  a\n\n  b\n}"},
		{name: "block-dangling", source: "() => { // c\n}", want: "() => {\n  // c\n}"},
		{
			name:   "block-tabs",
			source: "() => {a}",
			opts:   func(o *docfmt.Options) { o.UseTabs = true },
			want:   "() => {\n\ta\n}",
		},

		{name: "unsupported", source: "a\n#x   y#\nb", want: "a\n#x   y#\nb"},
		{name: "unsupported-arg", source: "f(#x /* c */#,  y)", want: "f(#x /* c */#, y)"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			opts := docfmt.DefaultOptions()
			if test.opts != nil {
				test.opts(&opts)
			}
			got := format(t, test.source, opts)
			assert.Equal(t, test.want, got)

			// Formatting is idempotent.
			assert.Equal(t, got, format(t, got, opts))
		})
	}
}

func TestTrailingComma(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   [3]string // All, ES5, None.
	}{
		{
			name:   "array",
			source: "[aaaa, bbbb]",
			want: [3]string{
				"[\n  aaaa,\n  bbbb,\n]",
				"[\n  aaaa,\n  bbbb,\n]",
				"[\n  aaaa,\n  bbbb\n]",
			},
		},
		{
			name:   "object",
			source: "{aaaa, bbbb}",
			want: [3]string{
				"{\n  aaaa,\n  bbbb,\n}",
				"{\n  aaaa,\n  bbbb,\n}",
				"{\n  aaaa,\n  bbbb\n}",
			},
		},
		{
			name:   "args",
			source: "f(aaaa, bbbb)",
			want: [3]string{
				"f(\n  aaaa,\n  bbbb,\n)",
				"f(\n  aaaa,\n  bbbb\n)",
				"f(\n  aaaa,\n  bbbb\n)",
			},
		},
		{
			name:   "params",
			source: "(aaaa, bbbb) => a",
			want: [3]string{
				"(\n  aaaa,\n  bbbb,\n) => a",
				"(\n  aaaa,\n  bbbb\n) => a",
				"(\n  aaaa,\n  bbbb\n) => a",
			},
		},
		{
			name:   "rest",
			source: "f(aaaa, ...bbbb)",
			want: [3]string{
				"f(\n  aaaa,\n  ...bbbb\n)",
				"f(\n  aaaa,\n  ...bbbb\n)",
				"f(\n  aaaa,\n  ...bbbb\n)",
			},
		},
		{
			name:   "flat",
			source: "[a, b]",
			want:   [3]string{"[a, b]", "[a, b]", "[a, b]"},
		},
	}

	settings := []docfmt.TrailingComma{
		docfmt.TrailingCommaAll,
		docfmt.TrailingCommaES5,
		docfmt.TrailingCommaNone,
	}
	for _, test := range tests {
		for i, setting := range settings {
			t.Run(test.name+"/"+setting.String(), func(t *testing.T) {
				t.Parallel()

				opts := docfmt.DefaultOptions()
				opts.PrintWidth = 8
				opts.TrailingComma = setting
				assert.Equal(t, test.want[i], format(t, test.source, opts))
			})
		}
	}
}
