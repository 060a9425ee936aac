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

// Package printer renders a [doc.Document] to text.
//
// Rendering is a single forward pass over an explicit command stack. Each
// group is printed flat if it, together with the rest of the current line,
// fits in the remaining width; this lookahead never goes past the end of
// the current line, and decisions are never revisited.
package printer

import (
	"fmt"

	"github.com/bufbuild/docfmt/doc"
	"github.com/bufbuild/docfmt/internal/ext/slicesx"
)

const (
	modeFlat mode = iota
	modeBreak
)

// mode is the mode a document is printed in.
type mode byte

// command is an entry of the printer's work stack.
type command struct {
	ind  *indentation
	mode mode
	doc  doc.Doc

	// For a fill, the range of parts this command covers. A zero limit means
	// all remaining parts.
	fill, limit int

	// A hard line that is not part of the document; see
	// [doc.KindLineSuffixBoundary].
	newline bool
}

type printer struct {
	Options

	doc    doc.Document
	breaks doc.Breaks

	out    []byte
	column int

	cmds     []command
	suffixes []command
	scratch  []command

	// Resolved modes of groups, by ID. Groups not yet printed read as flat.
	modes []mode

	// Set after a hard line is printed in flat mode: the next group must be
	// measured again even if its parent is flat.
	remeasure bool
}

// Print renders d.
//
// d is validated first, and any construction defect is returned as a
// [*doc.DefectError].
func Print(d doc.Document, options Options) (string, error) {
	if err := doc.Validate(d); err != nil {
		return "", err
	}

	p := &printer{
		Options: options.WithDefaults(),
		doc:     d,
		breaks:  doc.Propagate(d),
		modes:   make([]mode, d.Groups()+1),
	}

	p.cmds = append(p.cmds, command{ind: new(indentation), mode: modeBreak, doc: d.Root()})
	for len(p.cmds) > 0 {
		cmd, _ := slicesx.Pop(&p.cmds)
		if err := p.print(cmd); err != nil {
			return "", err
		}

		// Flush line suffixes left at the end of the document.
		if len(p.cmds) == 0 && len(p.suffixes) > 0 {
			p.cmds = slicesx.PushReversed(p.cmds, p.suffixes...)
			p.suffixes = p.suffixes[:0]
		}
	}

	return string(p.out), nil
}

func (p *printer) print(cmd command) error {
	if cmd.newline {
		p.line(cmd, doc.LineHard, false)
		return nil
	}

	n := p.doc.Node(cmd.doc)
	switch n.Kind() {
	case doc.KindEmpty, doc.KindBreakParent:

	case doc.KindText:
		p.out = append(p.out, n.Text()...)
		p.column += n.Width()

	case doc.KindConcat:
		p.pushAll(cmd, n.Children())

	case doc.KindIndent:
		p.push(command{ind: cmd.ind.indent(&p.Options), mode: cmd.mode, doc: n.Contents()})

	case doc.KindAlign:
		p.push(command{ind: cmd.ind.align(n.Columns(), &p.Options), mode: cmd.mode, doc: n.Contents()})

	case doc.KindTrim:
		p.column -= p.trim()

	case doc.KindGroup:
		p.group(cmd, n)
		if id := n.ID(); id != 0 {
			p.modes[id] = p.cmds[len(p.cmds)-1].mode
		}

	case doc.KindFill:
		p.fill(cmd, n)

	case doc.KindIfBreak:
		mode := cmd.mode
		if id := n.ID(); id != 0 {
			mode = p.modes[id]
		}
		next := n.WhenFlat()
		if mode == modeBreak {
			next = n.WhenBreak()
		}
		if next != 0 {
			p.push(command{ind: cmd.ind, mode: cmd.mode, doc: next})
		}

	case doc.KindLineSuffix:
		p.suffixes = append(p.suffixes, command{ind: cmd.ind, mode: cmd.mode, doc: n.Contents()})

	case doc.KindLineSuffixBoundary:
		if len(p.suffixes) > 0 {
			p.push(command{ind: cmd.ind, mode: cmd.mode, newline: true})
		}

	case doc.KindLine:
		p.line(cmd, n.LineKind(), n.Space())

	default:
		return fmt.Errorf("printer: unexpected %v node #%d", n.Kind(), cmd.doc)
	}
	return nil
}

func (p *printer) group(cmd command, n doc.Node) {
	broken := p.breaks.Broken(cmd.doc)
	if cmd.mode == modeFlat && !p.remeasure {
		mode := modeFlat
		if broken {
			mode = modeBreak
		}
		p.push(command{ind: cmd.ind, mode: mode, doc: n.Contents()})
		return
	}

	p.remeasure = false
	width := p.PrintWidth - p.column
	suffix := len(p.suffixes) > 0

	next := command{ind: cmd.ind, mode: modeFlat, doc: n.Contents()}
	if !broken && p.fits(next, p.cmds, width, suffix, false) {
		p.push(next)
		return
	}

	if !n.Conditional() {
		next.mode = modeBreak
		p.push(next)
		return
	}

	// Try the remaining states flat; the most expanded one is the fallback.
	states := n.States()
	if !broken {
		for _, state := range states[1:] {
			next := command{ind: cmd.ind, mode: modeFlat, doc: state}
			if p.fits(next, p.cmds, width, suffix, false) {
				p.push(next)
				return
			}
		}
	}
	p.push(command{ind: cmd.ind, mode: modeBreak, doc: states[len(states)-1]})
}

// fill prints the parts of a fill pairwise: a separator breaks unless the
// content on both sides of it fits on the line.
func (p *printer) fill(cmd command, n doc.Node) {
	parts := n.Children()
	if cmd.limit > 0 {
		parts = parts[:cmd.limit]
	}
	parts = parts[cmd.fill:]
	if len(parts) == 0 {
		return
	}

	width := p.PrintWidth - p.column
	suffix := len(p.suffixes) > 0

	content := command{ind: cmd.ind, mode: modeFlat, doc: parts[0]}
	contentFits := p.fits(content, nil, width, suffix, true)
	if !contentFits {
		content.mode = modeBreak
	}
	if len(parts) == 1 {
		p.push(content)
		return
	}

	sep := command{ind: cmd.ind, mode: modeBreak, doc: parts[1]}
	if len(parts) > 2 {
		p.push(command{ind: cmd.ind, mode: cmd.mode, doc: cmd.doc, fill: cmd.fill + 2, limit: cmd.limit})

		// The pair is measured along with the separator that follows it, so
		// that the next content never starts past the end of the line.
		pair := command{ind: cmd.ind, mode: modeFlat, doc: cmd.doc, fill: cmd.fill, limit: cmd.fill + min(4, len(parts))}
		if contentFits && p.fits(pair, nil, width, suffix, true) {
			sep.mode = modeFlat
		}
	} else if contentFits {
		sep.mode = modeFlat
	}

	p.push(sep)
	p.push(content)
}

func (p *printer) line(cmd command, kind doc.LineKind, space bool) {
	if cmd.mode == modeFlat {
		if kind == doc.LineSoft {
			if space {
				p.out = append(p.out, ' ')
				p.column++
			}
			return
		}
		p.remeasure = true
	}

	// Pending line suffixes are printed first; the line is queued behind
	// them.
	if len(p.suffixes) > 0 {
		p.push(cmd)
		p.cmds = slicesx.PushReversed(p.cmds, p.suffixes...)
		p.suffixes = p.suffixes[:0]
		return
	}

	if kind == doc.LineLiteral {
		p.out = append(p.out, p.NewLine...)
		p.column = 0
		return
	}

	p.trim()
	p.out = append(p.out, p.NewLine...)
	p.out = append(p.out, cmd.ind.value...)
	p.column = cmd.ind.width
}

// trim removes trailing spaces and tabs from the output, and returns how
// many were removed.
func (p *printer) trim() int {
	n := trailingWhitespace(p.out)
	p.out = p.out[:len(p.out)-n]
	return n
}

// fits returns whether next, followed by the rest of the current line,
// fits in width columns when printed flat.
//
// rest is the printer's command stack, which is read from the top without
// being modified. Measuring stops at the first line printed in break mode;
// if mustBeFlat is set, any group that must break fails the check.
func (p *printer) fits(next command, rest []command, width int, hasSuffix, mustBeFlat bool) bool {
	stack := append(p.scratch[:0], next)
	defer func() { p.scratch = stack[:0] }()

	var trailing int
	for width >= 0 {
		cmd, ok := slicesx.Pop(&stack)
		if !ok {
			if len(rest) == 0 {
				return true
			}
			stack = append(stack, rest[len(rest)-1])
			rest = rest[:len(rest)-1]
			continue
		}

		if cmd.newline {
			return true
		}

		n := p.doc.Node(cmd.doc)
		switch n.Kind() {
		case doc.KindText:
			width -= n.Width()
			if ws := trailingWhitespace(n.Text()); ws == len(n.Text()) {
				trailing += ws
			} else {
				trailing = ws
			}

		case doc.KindConcat:
			stack = pushAll(stack, cmd, n.Children())

		case doc.KindFill:
			parts := n.Children()
			if cmd.limit > 0 {
				parts = parts[:cmd.limit]
			}
			stack = pushAll(stack, cmd, parts[cmd.fill:])

		case doc.KindIndent, doc.KindAlign:
			stack = append(stack, command{mode: cmd.mode, doc: n.Contents()})

		case doc.KindTrim:
			width += trailing
			trailing = 0

		case doc.KindGroup:
			broken := p.breaks.Broken(cmd.doc)
			if mustBeFlat && broken {
				return false
			}
			mode, contents := cmd.mode, n.Contents()
			if broken {
				mode = modeBreak
			}
			if mode == modeBreak && n.Conditional() {
				contents = n.States()[len(n.States())-1]
			}
			stack = append(stack, command{mode: mode, doc: contents})

		case doc.KindIfBreak:
			mode := cmd.mode
			if id := n.ID(); id != 0 {
				mode = p.modes[id]
			}
			contents := n.WhenFlat()
			if mode == modeBreak {
				contents = n.WhenBreak()
			}
			if contents != 0 {
				stack = append(stack, command{mode: cmd.mode, doc: contents})
			}

		case doc.KindLine:
			if cmd.mode == modeBreak || n.LineKind() != doc.LineSoft {
				return true
			}
			if n.Space() {
				width--
				trailing++
			}

		case doc.KindLineSuffix:
			hasSuffix = true

		case doc.KindLineSuffixBoundary:
			if hasSuffix {
				return true
			}
		}
	}
	return false
}

func (p *printer) push(cmd command) {
	p.cmds = append(p.cmds, cmd)
}

func (p *printer) pushAll(cmd command, docs []doc.Doc) {
	p.cmds = pushAll(p.cmds, cmd, docs)
}

// pushAll pushes a command for each of docs, in reverse order, with the
// indentation and mode of cmd.
func pushAll(stack []command, cmd command, docs []doc.Doc) []command {
	for i := len(docs) - 1; i >= 0; i-- {
		stack = append(stack, command{ind: cmd.ind, mode: cmd.mode, doc: docs[i]})
	}
	return stack
}

func trailingWhitespace[S ~string | ~[]byte](s S) int {
	n := 0
	for i := len(s) - 1; i >= 0 && (s[i] == ' ' || s[i] == '\t'); i-- {
		n++
	}
	return n
}
