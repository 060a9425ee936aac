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
	"errors"
	"fmt"

	"github.com/bufbuild/docfmt/doc"
	"github.com/bufbuild/docfmt/printer"
	"github.com/bufbuild/docfmt/reporter"
	"github.com/bufbuild/docfmt/trivia"
)

// ErrUnsupported is returned by a [Converter] for a node it cannot
// format. The node is then printed as it appears in the source.
var ErrUnsupported = errors.New("unsupported syntax")

// Node is a syntax tree node.
type Node interface {
	// Span returns the byte range of the node in the source.
	Span() trivia.Span
}

// Converter builds documents for the nodes of a syntax tree.
//
// Converters call [Context.Print] for child nodes, never Convert directly,
// so that comments are attached to them.
type Converter interface {
	Convert(ctx *Context, node Node) (doc.Doc, error)
}

// ConverterFunc adapts a function to a [Converter].
type ConverterFunc func(ctx *Context, node Node) (doc.Doc, error)

// Convert implements [Converter].
func (f ConverterFunc) Convert(ctx *Context, node Node) (doc.Doc, error) {
	return f(ctx, node)
}

// Context is the state of a single formatting call.
type Context struct {
	*doc.Builder

	Options Options
	Source  string
	// Attaches the source's comments. Every comment is consumed exactly
	// once, in source order.
	Comments *trivia.Reconciler

	conv    Converter
	handler *reporter.Handler
}

// Print builds the document for node, with its leading comments and the
// comments that follow it on the same line.
//
// If the converter returns [ErrUnsupported], or an error with a position
// that the reporter chooses to continue past, node is printed verbatim.
func (c *Context) Print(node Node) (doc.Doc, error) {
	span := node.Span()
	leading := c.Comments.Leading(span)

	d, err := c.conv.Convert(c, node)
	if err != nil {
		if d, err = c.fallback(span, err); err != nil {
			return 0, err
		}
	}

	return c.Comments.Attach(leading, d, c.Comments.Trailing(span)), nil
}

// End returns the end of node, extended over the comments printed after
// it.
func (c *Context) End(node Node) int {
	return c.Comments.End(node.Span())
}

// Position returns the diagnostic position of span.
func (c *Context) Position(span trivia.Span) reporter.Position {
	return reporter.Position{Filename: c.Options.Filename, Span: span}
}

func (c *Context) fallback(span trivia.Span, err error) (doc.Doc, error) {
	var ewp reporter.ErrorWithPos
	switch {
	case errors.Is(err, ErrUnsupported):
		c.handler.HandleWarning(c.Position(span), err)
	case errors.As(err, &ewp):
		if err := c.handler.HandleError(ewp); err != nil {
			return 0, err
		}
	default:
		return 0, err
	}

	if span.Start < 0 || span.End > len(c.Source) || span.Start > span.End {
		return 0, fmt.Errorf("docfmt: node span %v out of range of %d-byte source", span, len(c.Source))
	}
	c.Comments.Skip(span)
	return c.Verbatim(c.Source[span.Start:span.End]), nil
}

// Build converts root into a document, without printing it.
//
// The document can be printed with [printer.Print], or embedded into
// another document with [doc.Builder.Embed].
func Build(conv Converter, root Node, source string, comments trivia.List, opts Options) (doc.Document, error) {
	if err := opts.Validate(); err != nil {
		return doc.Document{}, err
	}

	b := new(doc.Builder)
	ctx := &Context{
		Builder:  b,
		Options:  opts,
		Source:   source,
		Comments: trivia.NewReconciler(b, source, comments),
		conv:     conv,
		handler:  reporter.NewHandler(opts.Reporter),
	}

	d, err := ctx.Print(root)
	if err != nil {
		return doc.Document{}, err
	}

	// Comments after the last node go on lines of their own.
	blank := ctx.Comments.BlankLine(root.Span())
	if rest := ctx.Comments.Dangling(trivia.Span{End: len(source)}, true); rest != 0 {
		d = b.Concat(d, b.HardLine(), blank, rest)
	}

	if err := ctx.handler.Error(); err != nil {
		return doc.Document{}, err
	}
	return b.Finish(d), nil
}

// Format converts root into a document and prints it.
func Format(conv Converter, root Node, source string, comments trivia.List, opts Options) (string, error) {
	d, err := Build(conv, root, source, comments, opts)
	if err != nil {
		return "", err
	}
	return printer.Print(d, opts.printer(source))
}
