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

// Package doc defines the document algebra used to describe a layout
// independently of the final text.
//
// A document is a tree of nodes allocated on the arena of a [Builder] and
// referred to by opaque [Doc] handles. Because a node can only refer to
// nodes built before it, documents are acyclic, and a sub-document may be
// shared by several parents without being copied.
//
// Documents are rendered by package printer; [Propagate] computes which
// groups must break before rendering begins.
package doc

import (
	"github.com/bufbuild/docfmt/internal/arena"
)

//go:generate go run github.com/bufbuild/docfmt/internal/enum kind.yaml

// Doc is a handle to a node of a [Document].
//
// The zero Doc is the empty document, which renders nothing.
type Doc uint32

// GroupID names a group so that [Builder.IfBreakFor] can select content by
// that group's mode.
//
// The zero GroupID means "no group".
type GroupID uint32

// Document is a finished document: a root [Doc] together with the arena
// that owns its nodes.
//
// A Document is immutable; building more nodes on the same [Builder] does
// not affect it.
type Document struct {
	b    *Builder
	root Doc
}

// Root returns the root of this document.
func (d Document) Root() Doc {
	return d.root
}

// Groups returns the number of group IDs issued while building d.
//
// Every [GroupID] that appears in d is in the range [1, Groups()].
func (d Document) Groups() int {
	if d.b == nil {
		return 0
	}
	return int(d.b.groups)
}

// Len returns the number of nodes allocated on d's arena, including nodes
// not reachable from its root.
func (d Document) Len() int {
	if d.b == nil {
		return 0
	}
	return d.b.nodes.Len()
}

// Node returns a read-only view of the node that h refers to.
func (d Document) Node(h Doc) Node {
	if h == 0 || d.b == nil {
		return Node{raw: &empty}
	}
	return Node{raw: d.b.nodes.At(arena.Untyped(h)), edges: d.b.edges}
}

// Node is a read-only view of a single node.
type Node struct {
	raw   *node
	edges []Doc
}

// Kind returns this node's kind.
func (n Node) Kind() Kind { return n.raw.kind }

// Text returns the text of a [KindText] node.
func (n Node) Text() string { return n.raw.text }

// Width returns the display width of a [KindText] node.
func (n Node) Width() int { return n.raw.width }

// LineKind returns the kind of a [KindLine] node.
func (n Node) LineKind() LineKind { return n.raw.line }

// Space returns whether a soft [KindLine] renders a space when flat.
func (n Node) Space() bool { return n.raw.space }

// Columns returns the alignment of a [KindAlign] node. Negative values
// remove the innermost level of indentation instead.
func (n Node) Columns() int { return n.raw.columns }

// ID returns the ID of a [KindGroup] node, or the target of a [KindIfBreak]
// node.
func (n Node) ID() GroupID { return n.raw.id }

// ShouldBreak returns whether a [KindGroup] was explicitly built broken.
func (n Node) ShouldBreak() bool { return n.raw.shouldBreak }

// Conditional returns whether a [KindGroup] has expanded states.
func (n Node) Conditional() bool { return n.raw.kind == KindGroup && n.raw.count > 0 }

// Contents returns the contents of an indent, align, line suffix or group.
//
// For a conditional group, this is its first state.
func (n Node) Contents() Doc {
	if n.Conditional() {
		return n.edges[n.raw.first]
	}
	return n.raw.a
}

// States returns the expanded states of a conditional group, least broken
// first.
func (n Node) States() []Doc {
	if !n.Conditional() {
		return nil
	}
	return n.Children()
}

// Children returns the parts of a concatenation or a fill, or the states of
// a conditional group.
func (n Node) Children() []Doc {
	return n.edges[n.raw.first : n.raw.first+n.raw.count : n.raw.first+n.raw.count]
}

// WhenBreak returns the content a [KindIfBreak] renders when its group
// breaks.
func (n Node) WhenBreak() Doc { return n.raw.a }

// WhenFlat returns the content a [KindIfBreak] renders when its group is
// flat.
func (n Node) WhenFlat() Doc { return n.raw.b }

// node is the arena representation of a document node.
type node struct {
	kind  Kind
	line  LineKind
	space bool

	text  string
	width int

	columns int

	id          GroupID
	shouldBreak bool

	// Single children: contents, or WhenBreak/WhenFlat for KindIfBreak.
	a, b Doc

	// Range of Builder.edges holding the node's children.
	first, count uint32
}

var empty = node{kind: KindEmpty}
