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
	"fmt"
	"strconv"
	"strings"
)

// Debug renders doc as pseudo-source that calls the builder functions that
// would construct it, such as
//
//	group([indent([softline, "a"]), softline])
//
// Shared nodes are printed at each of their uses.
func Debug(doc Document) string {
	var out strings.Builder
	debug(&out, doc, doc.root)
	return out.String()
}

func debug(out *strings.Builder, doc Document, d Doc) {
	n := doc.Node(d)
	list := func(docs []Doc) {
		out.WriteByte('[')
		for i, d := range docs {
			if i > 0 {
				out.WriteString(", ")
			}
			debug(out, doc, d)
		}
		out.WriteByte(']')
	}
	call := func(name string, args ...Doc) {
		out.WriteString(name)
		out.WriteByte('(')
		for i, d := range args {
			if i > 0 {
				out.WriteString(", ")
			}
			debug(out, doc, d)
		}
		out.WriteByte(')')
	}

	switch n.Kind() {
	case KindEmpty:
		out.WriteString(`""`)
	case KindText:
		out.WriteString(strconv.Quote(n.Text()))
	case KindConcat:
		list(n.Children())
	case KindLine:
		switch {
		case n.LineKind() == LineHard:
			out.WriteString("hardline")
		case n.LineKind() == LineLiteral:
			out.WriteString("literalline")
		case n.Space():
			out.WriteString("line")
		default:
			out.WriteString("softline")
		}
	case KindIndent:
		call("indent", n.Contents())
	case KindAlign:
		if n.Columns() < 0 {
			call("dedent", n.Contents())
			break
		}
		fmt.Fprintf(out, "align(%d, ", n.Columns())
		debug(out, doc, n.Contents())
		out.WriteByte(')')
	case KindGroup:
		if n.Conditional() {
			out.WriteString("conditionalGroup(")
			list(n.States())
		} else {
			out.WriteString("group(")
			debug(out, doc, n.Contents())
		}
		var opts []string
		if n.ShouldBreak() {
			opts = append(opts, "shouldBreak: true")
		}
		if n.ID() != 0 {
			opts = append(opts, fmt.Sprintf("id: g%d", n.ID()))
		}
		if len(opts) > 0 {
			fmt.Fprintf(out, ", { %s }", strings.Join(opts, ", "))
		}
		out.WriteByte(')')
	case KindIfBreak:
		out.WriteString("ifBreak(")
		debug(out, doc, n.WhenBreak())
		out.WriteString(", ")
		debug(out, doc, n.WhenFlat())
		if n.ID() != 0 {
			fmt.Fprintf(out, ", { groupId: g%d }", n.ID())
		}
		out.WriteByte(')')
	case KindLineSuffix:
		call("lineSuffix", n.Contents())
	case KindLineSuffixBoundary:
		out.WriteString("lineSuffixBoundary")
	case KindBreakParent:
		out.WriteString("breakParent")
	case KindFill:
		out.WriteString("fill(")
		list(n.Children())
		out.WriteByte(')')
	case KindTrim:
		out.WriteString("trim")
	default:
		fmt.Fprintf(out, "<%v>", n.Kind())
	}
}
