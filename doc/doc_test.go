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

package doc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/docfmt/doc"
)

func TestBuilder(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var b doc.Builder
	assert.Equal(doc.Doc(0), b.Text(""))
	assert.Equal(doc.Doc(0), b.Concat())

	a := b.Text("a")
	assert.Equal(a, b.Concat(a))
	assert.Equal(b.Line(), b.Line())
	assert.NotEqual(b.Line(), b.SoftLine())
	assert.Equal(doc.Doc(0), b.IfBreak(0, 0))

	d := b.Finish(b.Text("日本"))
	n := d.Node(d.Root())
	assert.Equal(doc.KindText, n.Kind())
	assert.Equal(4, n.Width())

	assert.Equal(doc.KindEmpty, d.Node(0).Kind())
}

func TestDebug(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(b *doc.Builder) doc.Doc
		want  string
	}{
		{
			name: "group",
			build: func(b *doc.Builder) doc.Doc {
				return b.Group(b.Text("a"), b.Line(), b.Text("b"))
			},
			want: `group(["a", line, "b"])`,
		},
		{
			name: "verbatim",
			build: func(b *doc.Builder) doc.Doc {
				return b.Verbatim("/*\r\n * x\n */")
			},
			want: `["/*", literalline, " * x", literalline, " */"]`,
		},
		{
			name: "options",
			build: func(b *doc.Builder) doc.Doc {
				id := b.NewGroupID()
				return b.GroupWith(
					doc.GroupOptions{ID: id, ShouldBreak: true},
					b.Indent(b.SoftLine(), b.Text("x")),
					b.IfBreakFor(id, b.Text(","), 0),
				)
			},
			want: `group([indent([softline, "x"]), ifBreak(",", "", { groupId: g1 })], { shouldBreak: true, id: g1 })`,
		},
		{
			name: "misc",
			build: func(b *doc.Builder) doc.Doc {
				return b.Concat(
					b.ConditionalGroup(b.Text("a"), b.Text("b")),
					b.Fill(b.Text("x"), b.Line(), b.Text("y")),
					b.Align(2, b.HardLine()),
					b.Dedent(b.LiteralLine()),
					b.LineSuffix(b.Text("//")),
					b.LineSuffixBoundary(),
					b.BreakParent(),
					b.Trim(),
				)
			},
			want: `[conditionalGroup(["a", "b"]), fill(["x", line, "y"]), align(2, hardline), dedent(literalline), lineSuffix("//"), lineSuffixBoundary, breakParent, trim]`,
		},
		{
			name: "join",
			build: func(b *doc.Builder) doc.Doc {
				return b.Join(b.Text(", "), b.Text("a"), b.Text("b"), b.Text("c"))
			},
			want: `["a", ", ", "b", ", ", "c"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var b doc.Builder
			assert.Equal(t, tt.want, doc.Debug(b.Finish(tt.build(&b))))
		})
	}
}

func TestPropagate(t *testing.T) {
	t.Parallel()

	t.Run("nested", func(t *testing.T) {
		t.Parallel()
		assert := assert.New(t)

		var b doc.Builder
		inner := b.Group(b.Text("a"), b.HardLine(), b.Text("b"))
		outer := b.Group(b.Text("["), b.Indent(inner), b.Text("]"))
		sibling := b.Group(b.Text("c"), b.Line(), b.Text("d"))
		root := b.Concat(outer, sibling)

		breaks := doc.Propagate(b.Finish(root))
		assert.True(breaks.Broken(inner))
		assert.True(breaks.Broken(outer))
		assert.False(breaks.Broken(sibling))
	})

	t.Run("break-parent", func(t *testing.T) {
		t.Parallel()
		assert := assert.New(t)

		var b doc.Builder
		inner := b.Group(b.LineSuffix(b.Text(" // c")), b.BreakParent())
		outer := b.Group(inner)

		breaks := doc.Propagate(b.Finish(outer))
		assert.True(breaks.Broken(inner))
		assert.True(breaks.Broken(outer))
	})

	t.Run("conditional", func(t *testing.T) {
		t.Parallel()
		assert := assert.New(t)

		var b doc.Builder
		inner := b.Group(b.Text("a"), b.HardLine())
		cond := b.ConditionalGroup(b.Text("flat"), inner)
		outer := b.Group(cond)

		breaks := doc.Propagate(b.Finish(outer))
		assert.True(breaks.Broken(inner))
		assert.False(breaks.Broken(cond))
		assert.False(breaks.Broken(outer))

		var b2 doc.Builder
		cond = b2.GroupWith(doc.GroupOptions{ShouldBreak: true}, b2.Text("x"))
		outer = b2.Group(cond)
		breaks = doc.Propagate(b2.Finish(outer))
		assert.True(breaks.Broken(outer))
	})

	t.Run("shared", func(t *testing.T) {
		t.Parallel()
		assert := assert.New(t)

		var b doc.Builder
		shared := b.Concat(b.Text("x"), b.LiteralLine())
		g1 := b.Group(shared)
		g2 := b.Group(b.Text("y"), shared)

		breaks := doc.Propagate(b.Finish(b.Concat(g1, g2)))
		assert.True(breaks.Broken(g1))
		assert.True(breaks.Broken(g2))
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()

		var b doc.Builder
		id := b.NewGroupID()
		g := b.GroupWith(doc.GroupOptions{ID: id}, b.Text("a"))
		root := b.Concat(g, b.IfBreakFor(id, b.Text("b"), b.Text("c")))
		require.NoError(t, doc.Validate(b.Finish(root)))

		enclosing := b.NewGroupID()
		root = b.GroupWith(doc.GroupOptions{ID: enclosing},
			b.Fill(b.Text("a"), b.Line(), b.Text("b")),
			b.IfBreakFor(enclosing, b.Text(","), 0),
		)
		require.NoError(t, doc.Validate(b.Finish(root)))
	})

	t.Run("fill", func(t *testing.T) {
		t.Parallel()

		var b doc.Builder
		fill := b.Fill(b.Text("a"), b.Line())
		err := doc.Validate(b.Finish(b.Group(fill)))

		var defect *doc.DefectError
		require.ErrorAs(t, err, &defect)
		assert.Equal(t, fill, defect.Node)
		assert.Equal(t, doc.KindFill, defect.Kind)
	})

	t.Run("group-after", func(t *testing.T) {
		t.Parallel()

		var b doc.Builder
		id := b.NewGroupID()
		ifBreak := b.IfBreakFor(id, b.Text(","), 0)
		root := b.Concat(ifBreak, b.GroupWith(doc.GroupOptions{ID: id}, b.Text("a")))
		err := doc.Validate(b.Finish(root))

		var defect *doc.DefectError
		require.ErrorAs(t, err, &defect)
		assert.Equal(t, ifBreak, defect.Node)
		assert.Equal(t, doc.KindIfBreak, defect.Kind)
	})

	t.Run("unknown-group", func(t *testing.T) {
		t.Parallel()

		var b doc.Builder
		ifBreak := b.IfBreakFor(7, b.Text(","), 0)
		err := doc.Validate(b.Finish(ifBreak))

		var defect *doc.DefectError
		require.ErrorAs(t, err, &defect)
		assert.Contains(t, defect.Error(), "if-break")
	})

	t.Run("newline", func(t *testing.T) {
		t.Parallel()

		var b doc.Builder
		err := doc.Validate(b.Finish(b.Text("a\nb")))

		var defect *doc.DefectError
		require.ErrorAs(t, err, &defect)
		assert.Equal(t, doc.KindText, defect.Kind)
	})
}

func TestEmbed(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var inner doc.Builder
	id := inner.NewGroupID()
	fragment := inner.Finish(inner.GroupWith(
		doc.GroupOptions{ID: id},
		inner.Text("x"), inner.SoftLine(), inner.IfBreakFor(id, inner.Text(","), 0),
	))

	var outer doc.Builder
	outer.NewGroupID()
	embedded := outer.Embed(fragment)
	root := outer.Finish(outer.Concat(outer.Text("`"), embedded, outer.Text("`")))

	assert.Equal(`["`+"`"+`", group(["x", softline, ifBreak(",", "", { groupId: g2 })], { id: g2 }), "`+"`"+`"]`, doc.Debug(root))
	assert.Equal(2, root.Groups())
	assert.NoError(doc.Validate(root))
}

func TestWillBreak(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var b doc.Builder
	assert.False(b.WillBreak(b.Group(b.Text("a"), b.Line())))
	assert.True(b.WillBreak(b.Indent(b.Group(b.Text("a"), b.HardLine()))))
	assert.True(b.WillBreak(b.GroupWith(doc.GroupOptions{ShouldBreak: true}, b.Text("a"))))
	assert.True(b.WillBreak(b.IfBreak(0, b.BreakParent())))
	assert.False(b.WillBreak(b.ConditionalGroup(b.Text("a"), b.HardLine())))
}
