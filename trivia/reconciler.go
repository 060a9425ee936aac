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

import (
	"iter"
	"strings"

	"github.com/bufbuild/docfmt/doc"
)

// separators may appear between a node and its trailing comments.
const separators = " \t\r\n,;"

// Reconciler attaches comments to the documents built for the nodes of a
// source file.
//
// Comments are consumed strictly in order: once the reconciler has moved
// past a comment, it is never considered again. A Reconciler is used for a
// single traversal of a single file.
type Reconciler struct {
	b      *doc.Builder
	source string
	list   List
	cursor Cursor

	// End of the last comment consumed.
	end int
}

// NewReconciler returns a reconciler over the comments of source, which
// builds documents on b.
func NewReconciler(b *doc.Builder, source string, comments List) *Reconciler {
	return &Reconciler{
		b:      b,
		source: source,
		list:   comments,
		cursor: comments.Cursor(),
	}
}

// Cursor returns the position of the reconciler in its comment list.
func (r *Reconciler) Cursor() Cursor {
	return r.cursor
}

// Leading consumes the comments that end before span, and returns them
// formatted to go in front of span's document.
func (r *Reconciler) Leading(span Span) doc.Doc {
	var parts []doc.Doc
	for {
		c, ok := r.cursor.Peek()
		if !ok || c.End > span.Start {
			break
		}
		r.consume(c)

		parts = append(parts, r.comment(c))
		switch {
		case c.Kind == LineComment:
			parts = append(parts, r.b.HardLine())
		case !HasNewline(r.source, c.End):
			parts = append(parts, r.b.Text(" "))
		case HasNewlineBefore(r.source, c.Start):
			parts = append(parts, r.b.HardLine())
		default:
			parts = append(parts, r.b.Line())
		}

		// One blank line after the comment is kept, detected the same way
		// as after a node.
		if IsNextLineEmpty(r.source, c.End) {
			parts = append(parts, r.b.HardLine())
		}
	}
	return r.b.Concat(parts...)
}

// Trailing consumes the comments that follow span on the same line,
// separated from it only by blanks and separators such as "," and ";", and
// returns them formatted to go after span's document.
func (r *Reconciler) Trailing(span Span) doc.Doc {
	return r.trailing(span, -1)
}

// TrailingUntil is like [Reconciler.Trailing], but also consumes the
// comments on the lines after span that end at or before limit. Use this
// for the last node of a list, with limit the start of the list's closing
// delimiter.
func (r *Reconciler) TrailingUntil(span Span, limit int) doc.Doc {
	return r.trailing(span, limit)
}

func (r *Reconciler) trailing(span Span, limit int) doc.Doc {
	var (
		parts []doc.Doc
		end   = span.End

		// Whether the previous comment was deferred to the end of the line,
		// and whether it was a block comment.
		suffix, block bool
	)
	for {
		c, ok := r.cursor.Peek()
		if !ok || c.Start < end {
			break
		}
		between := r.source[end:c.Start]
		if strings.Trim(between, separators) != "" {
			break
		}
		if strings.ContainsAny(between, "\r\n") && (limit < 0 || c.End > limit) {
			break
		}
		r.consume(c)

		isBlock := c.Kind == BlockComment
		switch {
		case (suffix && !block) || HasNewlineBefore(r.source, c.Start):
			var blank doc.Doc
			if IsPreviousLineEmpty(r.source, c.Start) {
				blank = r.b.HardLine()
			}
			parts = append(parts, r.b.LineSuffix(r.b.HardLine(), blank, r.comment(c)))
			suffix = true

		case !isBlock:
			parts = append(parts, r.b.LineSuffix(r.b.Text(" "), r.comment(c)), r.b.BreakParent())
			suffix = true

		case suffix:
			parts = append(parts, r.b.LineSuffix(r.b.Text(" "), r.comment(c)))

		default:
			parts = append(parts, r.b.Text(" "), r.comment(c))
		}
		block = isBlock
		end = c.End
	}
	return r.b.Concat(parts...)
}

// Dangling consumes the comments up to the end of span, which is expected to
// have no other content, and returns them one per line. Unless sameIndent
// is set, they are indented and start on a new line.
func (r *Reconciler) Dangling(span Span, sameIndent bool) doc.Doc {
	var (
		parts []doc.Doc
		last  Comment
	)
	for c := range r.take(span) {
		parts = append(parts, r.comment(c))
		last = c
	}
	if len(parts) == 0 {
		return 0
	}

	d := r.b.Join(r.b.HardLine(), parts...)
	if last.Kind == LineComment {
		d = r.b.Concat(d, r.b.BreakParent())
	}
	if sameIndent {
		return d
	}
	return r.b.Indent(r.b.HardLine(), d)
}

// Skip consumes the comments up to the end of span without printing them,
// for spans that are printed verbatim.
func (r *Reconciler) Skip(span Span) {
	for range r.take(span) {
	}
}

// Attach returns d surrounded by its leading and trailing comments.
func (r *Reconciler) Attach(leading, d, trailing doc.Doc) doc.Doc {
	return r.b.Concat(leading, d, trailing)
}

// End returns the end of span, extended over any comments consumed after
// it.
func (r *Reconciler) End(span Span) int {
	return max(span.End, r.end)
}

// IsNextLineEmpty reports whether the line after end is blank; see
// [IsNextLineEmpty].
func (r *Reconciler) IsNextLineEmpty(end int) bool {
	return IsNextLineEmpty(r.source, end)
}

// BlankLine returns a hard line if the source has a blank line after span
// and the comments consumed after it, and nothing otherwise.
func (r *Reconciler) BlankLine(span Span) doc.Doc {
	if r.IsNextLineEmpty(r.End(span)) {
		return r.b.HardLine()
	}
	return 0
}

// take consumes every comment that has not been consumed yet, up to and
// including the last one within span.
func (r *Reconciler) take(span Span) iter.Seq[Comment] {
	return func(yield func(Comment) bool) {
		last := -1
		for i := range r.list.Within(span) {
			last = i
		}
		for {
			c, ok := r.cursor.Peek()
			if !ok || r.cursor.Index() > last {
				return
			}
			r.consume(c)
			if !yield(c) {
				return
			}
		}
	}
}

func (r *Reconciler) consume(c Comment) {
	r.cursor = r.cursor.Advance()
	r.end = max(r.end, c.End)
}

func (r *Reconciler) comment(c Comment) doc.Doc {
	return r.b.Verbatim(c.Text(r.source))
}
