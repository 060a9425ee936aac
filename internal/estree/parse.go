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
	"strings"

	"github.com/bufbuild/docfmt/reporter"
	"github.com/bufbuild/docfmt/trivia"
)

// Parse parses source into a program and the comments in it.
func Parse(filename, source string) (*Program, trivia.List, error) {
	p := &parser{filename: filename, src: source}
	prog, err := p.program()
	if err != nil {
		return nil, trivia.List{}, err
	}
	comments, err := trivia.New(p.comments...)
	if err != nil {
		return nil, trivia.List{}, err
	}
	return prog, comments, nil
}

type parser struct {
	filename string
	src      string
	pos      int
	comments []trivia.Comment
}

func (p *parser) program() (*Program, error) {
	prog := &Program{Range: Range{End: len(p.src)}}
	for {
		p.skip()
		switch {
		case p.pos >= len(p.src):
			return prog, nil
		case p.src[p.pos] == ';':
			p.pos++
			continue
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		prog.Body = append(prog.Body, stmt)
	}
}

func (p *parser) statement() (Node, error) {
	expr, err := p.expr()
	if err != nil {
		return nil, err
	}
	stmt := &ExprStmt{Range: Range{Start: expr.Span().Start, End: expr.Span().End}, Expr: expr}

	i := stmt.End
	for i < len(p.src) && (p.src[i] == ' ' || p.src[i] == '\t') {
		i++
	}
	if i < len(p.src) && p.src[i] == ';' {
		stmt.End = i + 1
		p.pos = i + 1
	}
	return stmt, nil
}

func (p *parser) expr() (Node, error) {
	p.skip()
	if p.pos >= len(p.src) {
		return nil, p.errorf("unexpected end of input")
	}

	start := p.pos
	var (
		node Node
		err  error
	)
	switch c := p.src[p.pos]; {
	case strings.HasPrefix(p.src[p.pos:], "..."):
		p.pos += 3
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &Spread{Range: Range{start, arg.Span().End}, Arg: arg}, nil

	case isIdentStart(c):
		ident := p.ident()
		if p.arrowNext() {
			return p.arrow(start, []Node{ident}, Range{})
		}
		node = ident

	case '0' <= c && c <= '9':
		for p.pos < len(p.src) && (isIdentPart(p.src[p.pos]) || p.src[p.pos] == '.') {
			p.pos++
		}
		node = &Number{Range: Range{start, p.pos}, Raw: p.src[start:p.pos]}

	case c == '"' || c == '\'':
		if node, err = p.string(); err != nil {
			return nil, err
		}

	case c == '[':
		elems, end, err := p.list('[', ']')
		if err != nil {
			return nil, err
		}
		node = &Array{Range: Range{start, end}, Elements: elems}

	case c == '{':
		if node, err = p.object(); err != nil {
			return nil, err
		}

	case c == '(':
		params, end, err := p.list('(', ')')
		if err != nil {
			return nil, err
		}
		if !p.arrowNext() {
			return nil, p.errorf("expected =>")
		}
		return p.arrow(start, params, Range{start, end})

	case c == '#':
		end := strings.IndexByte(p.src[p.pos+1:], '#')
		if end < 0 {
			return nil, p.errorf("unterminated #")
		}
		p.pos += end + 2
		node = &Unsupported{Range: Range{start, p.pos}}

	default:
		return nil, p.errorf("unexpected %q", c)
	}

	// Calls must open their argument list right after the callee.
	for p.pos < len(p.src) && p.src[p.pos] == '(' {
		parens := p.pos
		args, end, err := p.list('(', ')')
		if err != nil {
			return nil, err
		}
		node = &Call{
			Range:  Range{start, end},
			Callee: node,
			Args:   args,
			Parens: Range{parens, end},
		}
	}
	return node, nil
}

func (p *parser) ident() *Ident {
	start := p.pos
	for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
		p.pos++
	}
	return &Ident{Range: Range{start, p.pos}, Name: p.src[start:p.pos]}
}

func (p *parser) string() (*String, error) {
	start := p.pos
	quote := p.src[p.pos]
	for p.pos++; p.pos < len(p.src); p.pos++ {
		switch p.src[p.pos] {
		case '\\':
			p.pos++
		case '\n':
			return nil, p.errorf("unterminated string")
		case quote:
			p.pos++
			return &String{Range: Range{start, p.pos}, Raw: p.src[start:p.pos]}, nil
		}
	}
	return nil, p.errorf("unterminated string")
}

// list parses a comma-separated list of expressions between open and close,
// returning the offset after close.
func (p *parser) list(open, close byte) ([]Node, int, error) {
	p.pos++ // open
	var nodes []Node
	for {
		p.skip()
		if p.pos < len(p.src) && p.src[p.pos] == close {
			p.pos++
			return nodes, p.pos, nil
		}
		node, err := p.expr()
		if err != nil {
			return nil, 0, err
		}
		nodes = append(nodes, node)

		p.skip()
		switch {
		case p.pos < len(p.src) && p.src[p.pos] == ',':
			p.pos++
		case p.pos < len(p.src) && p.src[p.pos] == close:
		default:
			return nil, 0, p.errorf("expected , or %q", close)
		}
	}
}

func (p *parser) object() (*Object, error) {
	obj := &Object{Range: Range{Start: p.pos}}
	p.pos++ // {
	for {
		p.skip()
		if p.pos < len(p.src) && p.src[p.pos] == '}' {
			p.pos++
			obj.End = p.pos
			return obj, nil
		}

		prop, err := p.property()
		if err != nil {
			return nil, err
		}
		obj.Props = append(obj.Props, prop)

		p.skip()
		switch {
		case p.pos < len(p.src) && p.src[p.pos] == ',':
			p.pos++
		case p.pos < len(p.src) && p.src[p.pos] == '}':
		default:
			return nil, p.errorf("expected , or }")
		}
	}
}

func (p *parser) property() (*Property, error) {
	if p.pos >= len(p.src) {
		return nil, p.errorf("unexpected end of input")
	}

	var key Node
	switch c := p.src[p.pos]; {
	case isIdentStart(c):
		key = p.ident()
	case c == '"' || c == '\'':
		s, err := p.string()
		if err != nil {
			return nil, err
		}
		key = s
	case '0' <= c && c <= '9':
		start := p.pos
		for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
			p.pos++
		}
		key = &Number{Range: Range{start, p.pos}, Raw: p.src[start:p.pos]}
	default:
		return nil, p.errorf("expected property name")
	}
	prop := &Property{Range: Range{key.Span().Start, key.Span().End}, Key: key}

	save := p.pos
	p.skip()
	if p.pos >= len(p.src) || p.src[p.pos] != ':' {
		if _, ok := key.(*Ident); !ok {
			return nil, p.errorf("expected :")
		}
		p.pos = save
		return prop, nil
	}
	p.pos++

	value, err := p.expr()
	if err != nil {
		return nil, err
	}
	prop.Value = value
	prop.End = value.Span().End
	return prop, nil
}

// arrowNext consumes a => if one is next.
func (p *parser) arrowNext() bool {
	save := p.pos
	p.skip()
	if strings.HasPrefix(p.src[p.pos:], "=>") {
		p.pos += 2
		return true
	}
	p.pos = save
	return false
}

func (p *parser) arrow(start int, params []Node, parens Range) (*Arrow, error) {
	arrow := &Arrow{Params: params, Parens: parens}

	p.skip()
	if p.pos < len(p.src) && p.src[p.pos] == '{' {
		block := &Block{Range: Range{Start: p.pos}}
		p.pos++
		for {
			p.skip()
			if p.pos >= len(p.src) {
				return nil, p.errorf("unterminated block")
			}
			if p.src[p.pos] == '}' {
				p.pos++
				break
			}
			if p.src[p.pos] == ';' {
				p.pos++
				continue
			}
			stmt, err := p.statement()
			if err != nil {
				return nil, err
			}
			block.Body = append(block.Body, stmt)
		}
		block.End = p.pos
		arrow.Body = block
	} else {
		body, err := p.expr()
		if err != nil {
			return nil, err
		}
		arrow.Body = body
	}

	arrow.Range = Range{start, arrow.Body.Span().End}
	return arrow, nil
}

// skip skips whitespace and comments, recording the comments.
func (p *parser) skip() {
	for p.pos < len(p.src) {
		switch rest := p.src[p.pos:]; {
		case rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\r' || rest[0] == '\n':
			p.pos++
		case strings.HasPrefix(rest, "//"):
			end := strings.IndexAny(rest, "\r\n")
			if end < 0 {
				end = len(rest)
			}
			p.comment(p.pos, p.pos+end, trivia.LineComment)
		case strings.HasPrefix(rest, "/*"):
			end := strings.Index(rest[2:], "*/")
			if end < 0 {
				// Let the caller fail on the stray slash.
				return
			}
			p.comment(p.pos, p.pos+end+4, trivia.BlockComment)
		default:
			return
		}
	}
}

func (p *parser) comment(start, end int, kind trivia.Kind) {
	// Skipping may cover the same comment twice after backtracking.
	if n := len(p.comments); n == 0 || p.comments[n-1].Start < start {
		p.comments = append(p.comments, trivia.Comment{Start: start, End: end, Kind: kind})
	}
	p.pos = end
}

func (p *parser) errorf(format string, args ...any) error {
	pos := reporter.Position{
		Filename: p.filename,
		Span:     trivia.Span{Start: p.pos, End: min(p.pos+1, len(p.src))},
	}
	return reporter.Errorf(pos, format, args...)
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || '0' <= c && c <= '9'
}
