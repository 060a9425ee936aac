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

// Package estree is a small expression language in the style of
// JavaScript, used to exercise the formatter end to end.
//
// It covers identifiers, literals, arrays, objects, calls, arrow functions
// and blocks. Anything else is parsed as an [Unsupported] node, which the
// formatter copies through verbatim.
package estree

import "github.com/bufbuild/docfmt/trivia"

// Range is embedded in every node to implement docfmt.Node.
type Range struct {
	Start, End int
}

// Span returns the node's byte range in the source.
func (r Range) Span() trivia.Span {
	return trivia.Span{Start: r.Start, End: r.End}
}

// Node is any node of the syntax tree.
type Node interface {
	Span() trivia.Span
}

type (
	Program struct {
		Range
		Body []Node
	}

	// ExprStmt is an expression in statement position. The semicolon after
	// it, if any, is part of its range.
	ExprStmt struct {
		Range
		Expr Node
	}

	Ident struct {
		Range
		Name string
	}

	// String is a string literal. Raw includes the quotes.
	String struct {
		Range
		Raw string
	}

	Number struct {
		Range
		Raw string
	}

	Array struct {
		Range
		Elements []Node
	}

	// Spread is ...Arg, in an array, argument list or parameter list.
	Spread struct {
		Range
		Arg Node
	}

	Object struct {
		Range
		Props []*Property
	}

	// Property is Key: Value, or just Key if Value is nil. Key is an
	// [*Ident], [*String] or [*Number].
	Property struct {
		Range
		Key, Value Node
	}

	// Call is Callee(Args). Parens is the range of the argument list.
	Call struct {
		Range
		Callee Node
		Args   []Node
		Parens Range
	}

	// Arrow is an arrow function. Body is a [*Block] or an expression.
	//
	// Parens is the range of the parameter list, which is empty for a sole
	// parameter written without parentheses.
	Arrow struct {
		Range
		Params []Node
		Parens Range
		Body   Node
	}

	Block struct {
		Range
		Body []Node
	}

	// Unsupported is syntax outside of this language, delimited by #.
	Unsupported struct {
		Range
	}
)
