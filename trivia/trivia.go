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

// Package trivia models the comments of a source file, and reattaches them
// to a regenerated layout.
//
// Comments are extracted by a lexer upstream and handed over as a sorted
// [List]. A [Reconciler] walks that list once, front to back, while a
// document is built for the source, and decides for each node which
// comments lead it, trail it, or dangle inside it.
package trivia

import (
	"fmt"
	"iter"

	"github.com/bufbuild/docfmt/internal/interval"
)

//go:generate go run github.com/bufbuild/docfmt/internal/enum kind.yaml

// Span is a range of byte offsets into a source file, from Start
// (inclusive) to End (exclusive).
type Span struct {
	Start, End int
}

// Len returns the number of bytes in s.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains returns whether other lies within s.
func (s Span) Contains(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}

// Comment is a comment in a source file.
type Comment struct {
	Start, End int
	Kind       Kind
}

// Span returns the span of c.
func (c Comment) Span() Span {
	return Span{c.Start, c.End}
}

// Text returns the text of c in source.
func (c Comment) Text(source string) string {
	return source[c.Start:c.End]
}

// List is an immutable, sorted list of non-overlapping comments.
//
// The zero List is empty.
type List struct {
	comments []Comment
	index    *interval.Map[int, int]
}

// New validates comments and returns them as a [List].
//
// Comments must be non-empty, sorted by offset, and must not overlap.
func New(comments ...Comment) (List, error) {
	index := new(interval.Map[int, int])
	for i, c := range comments {
		if c.Start < 0 || c.End <= c.Start {
			return List{}, fmt.Errorf("trivia: invalid comment span %v", c.Span())
		}
		if i > 0 && c.Start < comments[i-1].Start {
			return List{}, fmt.Errorf("trivia: comment %v is out of order after %v", c.Span(), comments[i-1].Span())
		}
		if overlap := index.Insert(c.Start, c.End-1, i); overlap.Value != nil {
			return List{}, fmt.Errorf("trivia: comment %v overlaps %v", c.Span(), comments[*overlap.Value].Span())
		}
	}
	return List{comments: comments, index: index}, nil
}

// Len returns the number of comments in l.
func (l List) Len() int {
	return len(l.comments)
}

// At returns the nth comment of l.
func (l List) At(n int) Comment {
	return l.comments[n]
}

// All returns an iterator over the comments of l, in order.
func (l List) All() iter.Seq2[int, Comment] {
	return func(yield func(int, Comment) bool) {
		for i, c := range l.comments {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Containing returns the comment containing the given byte offset, if
// there is one.
func (l List) Containing(offset int) (Comment, bool) {
	if l.index == nil {
		return Comment{}, false
	}
	found := l.index.Get(offset)
	if found.Value == nil {
		return Comment{}, false
	}
	return l.comments[*found.Value], true
}

// Within returns an iterator over the comments of l that lie within span,
// along with their indices.
func (l List) Within(span Span) iter.Seq2[int, Comment] {
	return func(yield func(int, Comment) bool) {
		if l.index == nil || span.Len() <= 0 {
			return
		}
		for found := range l.index.Overlapping(span.Start, span.End-1) {
			c := l.comments[*found.Value]
			if !span.Contains(c.Span()) {
				continue
			}
			if !yield(*found.Value, c) {
				return
			}
		}
	}
}

// Cursor returns a cursor at the first comment of l.
func (l List) Cursor() Cursor {
	return Cursor{list: l}
}

// Cursor is a position in a [List].
//
// Cursors are values: advancing a cursor returns a new one.
type Cursor struct {
	list List
	next int
}

// Index returns the index of the comment c points to.
func (c Cursor) Index() int {
	return c.next
}

// Done returns whether every comment has been passed.
func (c Cursor) Done() bool {
	return c.next >= c.list.Len()
}

// Peek returns the comment c points to, if any.
func (c Cursor) Peek() (Comment, bool) {
	if c.Done() {
		return Comment{}, false
	}
	return c.list.At(c.next), true
}

// Advance returns a cursor pointing to the next comment.
func (c Cursor) Advance() Cursor {
	if !c.Done() {
		c.next++
	}
	return c
}
