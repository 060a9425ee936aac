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

package estree

import (
	"fmt"
	"strings"

	"github.com/bufbuild/docfmt"
	"github.com/bufbuild/docfmt/doc"
	"github.com/bufbuild/docfmt/internal/ext/slicesx"
	"github.com/bufbuild/docfmt/trivia"
)

// Converter builds documents for the nodes of this package.
type Converter struct{}

var _ docfmt.Converter = Converter{}

// property is a property along with whether any key of its object needs
// quotes.
type property struct {
	*Property
	quoted bool
}

// list describes the delimiters and separators of a comma-separated list.
type list struct {
	open, close string
	level       docfmt.CommaLevel
	// The range of the list, delimiters included.
	span trivia.Span
	// Pad the contents with spaces when flat.
	spaces bool
	// Always break.
	broken bool
}

// Convert implements [docfmt.Converter].
func (c Converter) Convert(ctx *docfmt.Context, node docfmt.Node) (doc.Doc, error) {
	switch n := node.(type) {
	case *Program:
		if len(n.Body) == 0 {
			return ctx.Comments.Dangling(n.Span(), true), nil
		}
		return c.statements(ctx, n.Body, n.End)

	case *ExprStmt:
		return ctx.Print(n.Expr)

	case *Ident:
		return ctx.Text(n.Name), nil
	case *String:
		return ctx.Text(n.Raw), nil
	case *Number:
		return ctx.Text(n.Raw), nil

	case *Spread:
		arg, err := ctx.Print(n.Arg)
		if err != nil {
			return 0, err
		}
		return ctx.Concat(ctx.Text("..."), arg), nil

	case *Array:
		return c.list(ctx, list{
			open: "[", close: "]",
			level: docfmt.CommaES5,
			span:  n.Span(),
		}, n.Elements)

	case *Object:
		return c.object(ctx, n)
	case *Property:
		return c.property(ctx, property{Property: n})
	case property:
		return c.property(ctx, n)

	case *Call:
		callee, err := ctx.Print(n.Callee)
		if err != nil {
			return 0, err
		}
		args, err := c.list(ctx, list{
			open: "(", close: ")",
			level: docfmt.CommaAll,
			span:  n.Parens.Span(),
		}, n.Args)
		if err != nil {
			return 0, err
		}
		return ctx.Concat(callee, args), nil

	case *Arrow:
		return c.arrow(ctx, n)

	case *Block:
		if len(n.Body) == 0 {
			dangling := ctx.Comments.Dangling(n.Span(), false)
			if dangling == 0 {
				return ctx.Text("{}"), nil
			}
			return ctx.Concat(ctx.Text("{"), dangling, ctx.HardLine(), ctx.Text("}")), nil
		}
		body, err := c.statements(ctx, n.Body, n.End-1)
		if err != nil {
			return 0, err
		}
		return ctx.Concat(
			ctx.Text("{"),
			ctx.Indent(ctx.HardLine(), body),
			ctx.HardLine(),
			ctx.Text("}"),
		), nil

	case *Unsupported:
		return 0, docfmt.ErrUnsupported

	default:
		return 0, fmt.Errorf("%w: %T", docfmt.ErrUnsupported, node)
	}
}

// statements prints a statement list, one per line. Comments on their own
// lines after the last statement, up to limit, are printed after it.
func (c Converter) statements(ctx *docfmt.Context, body []Node, limit int) (doc.Doc, error) {
	parts := make([]doc.Doc, 0, 3*len(body))
	for i, stmt := range body {
		d, err := ctx.Print(stmt)
		if err != nil {
			return 0, err
		}
		if i == len(body)-1 {
			d = ctx.Concat(d, ctx.Comments.TrailingUntil(until(ctx, stmt), limit))
			parts = append(parts, d)
			break
		}
		parts = append(parts, d, ctx.HardLine(), ctx.Comments.BlankLine(stmt.Span()))
	}
	return ctx.Concat(parts...), nil
}

func (c Converter) list(ctx *docfmt.Context, l list, elems []Node) (doc.Doc, error) {
	if len(elems) == 0 {
		dangling := ctx.Comments.Dangling(l.span, false)
		if dangling == 0 {
			return ctx.Text(l.open + l.close), nil
		}
		return ctx.Group(ctx.Text(l.open), dangling, ctx.SoftLine(), ctx.Text(l.close)), nil
	}

	edge := ctx.SoftLine()
	if l.spaces {
		edge = ctx.Line()
	}

	parts := make([]doc.Doc, 0, 4*len(elems)+1)
	parts = append(parts, edge)
	for i, elem := range elems {
		d, err := ctx.Print(elem)
		if err != nil {
			return 0, err
		}

		if i == len(elems)-1 {
			parts = append(parts, d, ctx.Comments.TrailingUntil(until(ctx, elem), l.span.End-1))
			break
		}
		parts = append(parts, d, ctx.Text(","), ctx.Line())
		if ctx.Comments.IsNextLineEmpty(afterComma(ctx.Source, ctx.End(elem))) {
			parts = append(parts, ctx.SoftLine())
		}
	}

	// Nothing may follow a rest element.
	if _, rest := elems[len(elems)-1].(*Spread); !rest && ctx.Options.ShouldPrintComma(l.level) {
		parts = append(parts, ctx.IfBreak(ctx.Text(","), 0))
	}

	return ctx.GroupWith(
		doc.GroupOptions{ShouldBreak: l.broken},
		ctx.Text(l.open),
		ctx.Indent(parts...),
		edge,
		ctx.Text(l.close),
	), nil
}

func (c Converter) object(ctx *docfmt.Context, n *Object) (doc.Doc, error) {
	quoted := needsQuotes(n.Props)
	elems := make([]Node, len(n.Props))
	for i, p := range n.Props {
		elems[i] = property{Property: p, quoted: quoted}
	}

	l := list{
		open: "{", close: "}",
		level:  docfmt.CommaES5,
		span:   n.Span(),
		spaces: ctx.Options.BracketSpacing,
	}
	// An object written with a newline after its brace stays expanded.
	if len(n.Props) > 0 {
		l.broken = strings.ContainsAny(ctx.Source[n.Start:n.Props[0].Start], "\n")
	}
	return c.list(ctx, l, elems)
}

func (c Converter) property(ctx *docfmt.Context, p property) (doc.Doc, error) {
	key, err := c.key(ctx, p)
	if err != nil {
		return 0, err
	}
	if p.Value == nil {
		return key, nil
	}
	value, err := ctx.Print(p.Value)
	if err != nil {
		return 0, err
	}
	return ctx.Concat(key, ctx.Text(": "), value), nil
}

// key prints a property key, adding or removing quotes according to
// [docfmt.Options.QuoteProps].
func (c Converter) key(ctx *docfmt.Context, p property) (doc.Doc, error) {
	var text string
	switch key := p.Key.(type) {
	case *String:
		unquoted := key.Raw[1 : len(key.Raw)-1]
		switch ctx.Options.QuoteProps {
		case docfmt.QuotePropsAsNeeded, docfmt.QuotePropsConsistent:
			if !p.quoted && isIdent(unquoted) {
				text = unquoted
			}
		}
	case *Ident:
		if p.quoted && ctx.Options.QuoteProps == docfmt.QuotePropsConsistent {
			text = `"` + key.Name + `"`
		}
	}
	if text == "" {
		return ctx.Print(p.Key)
	}

	span := p.Key.Span()
	leading := ctx.Comments.Leading(span)
	return ctx.Comments.Attach(leading, ctx.Text(text), ctx.Comments.Trailing(span)), nil
}

func (c Converter) arrow(ctx *docfmt.Context, n *Arrow) (doc.Doc, error) {
	var (
		params doc.Doc
		err    error
	)
	first, _ := slicesx.Get(n.Params, 0)
	_, ident := first.(*Ident)
	if len(n.Params) == 1 && ident && ctx.Options.ArrowParens == docfmt.ArrowParensAvoid &&
		!hasComments(ctx, n.Parens.Span(), first.Span()) {
		params, err = ctx.Print(n.Params[0])
	} else {
		params, err = c.list(ctx, list{
			open: "(", close: ")",
			level: docfmt.CommaAll,
			span:  n.Parens.Span(),
		}, n.Params)
	}
	if err != nil {
		return 0, err
	}

	body, err := ctx.Print(n.Body)
	if err != nil {
		return 0, err
	}
	return ctx.Concat(params, ctx.Text(" => "), body), nil
}

// until returns the span to look for trailing comments after node from.
func until(ctx *docfmt.Context, node Node) trivia.Span {
	return trivia.Span{Start: node.Span().Start, End: ctx.End(node)}
}

// afterComma returns the offset after the comma that follows end, if any.
func afterComma(source string, end int) int {
	i := end
	for i < len(source) && (source[i] == ' ' || source[i] == '\t') {
		i++
	}
	if i < len(source) && source[i] == ',' {
		return i + 1
	}
	return end
}

// hasComments reports whether span contains comments outside of inner.
func hasComments(ctx *docfmt.Context, span, inner trivia.Span) bool {
	for cursor := ctx.Comments.Cursor(); !cursor.Done(); cursor = cursor.Advance() {
		c, _ := cursor.Peek()
		if c.Start >= span.End {
			break
		}
		if c.Start >= span.Start && !inner.Contains(c.Span()) {
			return true
		}
	}
	return false
}

// needsQuotes reports whether any of the keys of an object's properties
// must be quoted.
func needsQuotes(props []*Property) bool {
	for _, p := range props {
		if s, ok := p.Key.(*String); ok && !isIdent(s.Raw[1:len(s.Raw)-1]) {
			return true
		}
	}
	return false
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$',
			'a' <= r && r <= 'z',
			'A' <= r && r <= 'Z':
		case '0' <= r && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
