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

package doc

import (
	"slices"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/docfmt/internal/arena"
)

// Builder allocates document nodes.
//
// Builders never look at source text or formatting options; they only
// compose. A zero Builder is ready to use.
type Builder struct {
	nodes  arena.Arena[node]
	edges  []Doc
	groups GroupID

	// Lazily-allocated singletons.
	line, softLine, hardLine, literalLine Doc
	breakParent, boundary, trim           Doc
}

// GroupOptions configures a group built with [Builder.GroupWith].
type GroupOptions struct {
	// The group's ID, from [Builder.NewGroupID]. Zero means none.
	ID GroupID

	// If set, the group always renders broken.
	ShouldBreak bool
}

// Finish wraps root into a [Document].
func (b *Builder) Finish(root Doc) Document {
	return Document{b: b, root: root}
}

// NewGroupID issues a new group ID.
//
// IDs are issued separately from groups so that content inside a group
// can refer to the group that will enclose it.
func (b *Builder) NewGroupID() GroupID {
	b.groups++
	return b.groups
}

// Text returns a document for the given literal text, which must not
// contain newlines; use [Builder.Verbatim] for arbitrary text.
func (b *Builder) Text(text string) Doc {
	if text == "" {
		return 0
	}
	return b.new(node{kind: KindText, text: text, width: uniseg.StringWidth(text)})
}

// Verbatim returns a document for text that may span several lines.
//
// Lines are joined with literal lines, so continuation lines are printed
// exactly as given, without indentation.
func (b *Builder) Verbatim(text string) Doc {
	if !strings.ContainsAny(text, "\r\n") {
		return b.Text(text)
	}

	var parts []Doc
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			parts = append(parts, b.LiteralLine())
		}
		parts = append(parts, b.Text(strings.TrimSuffix(line, "\r")))
	}
	return b.Concat(parts...)
}

// Concat returns the concatenation of parts. Empty parts are dropped.
func (b *Builder) Concat(parts ...Doc) Doc {
	if slices.Contains(parts, 0) {
		parts = slices.DeleteFunc(slices.Clone(parts), func(d Doc) bool { return d == 0 })
	}
	switch len(parts) {
	case 0:
		return 0
	case 1:
		return parts[0]
	}
	return b.newWith(node{kind: KindConcat}, parts)
}

// Join returns parts separated by sep.
func (b *Builder) Join(sep Doc, parts ...Doc) Doc {
	joined := make([]Doc, 0, max(0, 2*len(parts)-1))
	for i, part := range parts {
		if i > 0 {
			joined = append(joined, sep)
		}
		joined = append(joined, part)
	}
	return b.Concat(joined...)
}

// Line returns a line break that renders as a space when flat.
func (b *Builder) Line() Doc {
	return b.singleton(&b.line, node{kind: KindLine, line: LineSoft, space: true})
}

// SoftLine returns a line break that renders as nothing when flat.
func (b *Builder) SoftLine() Doc {
	return b.singleton(&b.softLine, node{kind: KindLine, line: LineSoft})
}

// HardLine returns a line break that always breaks. It forces every
// enclosing group to break.
func (b *Builder) HardLine() Doc {
	return b.singleton(&b.hardLine, node{kind: KindLine, line: LineHard})
}

// LiteralLine is like [Builder.HardLine], but the next line is not
// indented.
func (b *Builder) LiteralLine() Doc {
	return b.singleton(&b.literalLine, node{kind: KindLine, line: LineLiteral})
}

// Indent indents the concatenation of parts by one level.
func (b *Builder) Indent(parts ...Doc) Doc {
	return b.new(node{kind: KindIndent, a: b.Concat(parts...)})
}

// Align aligns the concatenation of parts by n columns. If n is negative,
// the innermost level of indentation is removed instead.
func (b *Builder) Align(n int, parts ...Doc) Doc {
	contents := b.Concat(parts...)
	if n == 0 {
		return contents
	}
	return b.new(node{kind: KindAlign, columns: n, a: contents})
}

// Dedent removes the innermost level of indentation from the concatenation
// of parts.
func (b *Builder) Dedent(parts ...Doc) Doc {
	return b.Align(-1, parts...)
}

// Group groups the concatenation of parts: either all of its soft lines
// break, or none of them do.
func (b *Builder) Group(parts ...Doc) Doc {
	return b.GroupWith(GroupOptions{}, parts...)
}

// GroupWith is like [Builder.Group], but with additional options.
func (b *Builder) GroupWith(opts GroupOptions, parts ...Doc) Doc {
	return b.new(node{
		kind:        KindGroup,
		id:          opts.ID,
		shouldBreak: opts.ShouldBreak,
		a:           b.Concat(parts...),
	})
}

// ConditionalGroup returns a group that renders the first of states that
// fits flat, or the last one, broken, if none do.
//
// States should be ordered from least to most broken. Panics if states is
// empty.
func (b *Builder) ConditionalGroup(states ...Doc) Doc {
	if len(states) == 0 {
		panic("doc: conditional group without states")
	}
	return b.newWith(node{kind: KindGroup}, states)
}

// IfBreak selects between two documents according to the mode of the
// innermost enclosing group.
func (b *Builder) IfBreak(whenBreak, whenFlat Doc) Doc {
	return b.IfBreakFor(0, whenBreak, whenFlat)
}

// IfBreakFor is like [Builder.IfBreak], but selects according to the mode
// of the group with the given ID, which must be printed before this
// document. Zero means the innermost enclosing group.
func (b *Builder) IfBreakFor(id GroupID, whenBreak, whenFlat Doc) Doc {
	if whenBreak == 0 && whenFlat == 0 {
		return 0
	}
	return b.new(node{kind: KindIfBreak, id: id, a: whenBreak, b: whenFlat})
}

// LineSuffix defers the concatenation of parts until just before the next
// newline.
func (b *Builder) LineSuffix(parts ...Doc) Doc {
	return b.new(node{kind: KindLineSuffix, a: b.Concat(parts...)})
}

// LineSuffixBoundary forces a newline if there are deferred line suffixes.
func (b *Builder) LineSuffixBoundary() Doc {
	return b.singleton(&b.boundary, node{kind: KindLineSuffixBoundary})
}

// BreakParent forces every enclosing group to break.
func (b *Builder) BreakParent() Doc {
	return b.singleton(&b.breakParent, node{kind: KindBreakParent})
}

// Trim removes trailing whitespace already printed on the current line.
func (b *Builder) Trim() Doc {
	return b.singleton(&b.trim, node{kind: KindTrim})
}

// Fill returns a sequence of alternating content and separator documents,
// starting and ending with content. Each separator breaks only if the
// content around it would not fit on the line.
func (b *Builder) Fill(parts ...Doc) Doc {
	return b.newWith(node{kind: KindFill}, parts)
}

// WillBreak returns whether d contains a forced break outside of any
// conditional group: a hard line, a break parent or a group built with
// ShouldBreak.
func (b *Builder) WillBreak(d Doc) bool {
	seen := make(map[Doc]struct{})
	stack := []Doc{d}
	for len(stack) > 0 {
		d := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if d == 0 {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}

		n := b.nodes.At(arena.Untyped(d))
		switch n.kind {
		case KindLine:
			if n.line != LineSoft {
				return true
			}
		case KindBreakParent:
			return true
		case KindGroup:
			if n.shouldBreak {
				return true
			}
			if n.count > 0 {
				stack = append(stack, b.edges[n.first])
			} else {
				stack = append(stack, n.a)
			}
		case KindConcat, KindFill:
			stack = append(stack, b.edges[n.first:n.first+n.count]...)
		case KindIndent, KindAlign, KindLineSuffix:
			stack = append(stack, n.a)
		case KindIfBreak:
			stack = append(stack, n.a, n.b)
		}
	}
	return false
}

// Embed copies every node of doc into this builder and returns its root.
//
// Group IDs of doc are renumbered so that they do not collide with IDs
// issued by b.
func (b *Builder) Embed(doc Document) Doc {
	if doc.b == nil || doc.root == 0 {
		return 0
	}
	if doc.b == b {
		return doc.root
	}

	offset := b.groups
	b.groups += doc.b.groups
	group := func(id GroupID) GroupID {
		if id == 0 {
			return 0
		}
		return id + offset
	}

	remap := make([]Doc, doc.b.nodes.Len()+1)
	for p, n := range doc.b.nodes.All() {
		m := *n
		m.id = group(m.id)
		m.a, m.b = remap[m.a], remap[m.b]

		var children []Doc
		if m.count > 0 {
			children = make([]Doc, m.count)
			for i, child := range doc.b.edges[n.first : n.first+n.count] {
				children[i] = remap[child]
			}
		}
		m.first, m.count = 0, 0
		remap[p] = b.newWith(m, children)
	}
	return remap[doc.root]
}

func (b *Builder) singleton(cache *Doc, n node) Doc {
	if *cache == 0 {
		*cache = b.new(n)
	}
	return *cache
}

func (b *Builder) new(n node) Doc {
	return Doc(b.nodes.New(n))
}

func (b *Builder) newWith(n node, children []Doc) Doc {
	if len(children) > 0 {
		n.first = uint32(len(b.edges))
		n.count = uint32(len(children))
		b.edges = append(b.edges, children...)
	}
	return b.new(n)
}
