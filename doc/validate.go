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
	"strings"

	"github.com/bufbuild/docfmt/internal/ext/slicesx"
)

// DefectError is returned by [Validate] for a document that was built
// incorrectly.
type DefectError struct {
	Node   Doc
	Kind   Kind
	Detail string
}

// Error implements [error].
func (e *DefectError) Error() string {
	return fmt.Sprintf("doc: malformed %v node #%d: %s", e.Kind, e.Node, e.Detail)
}

// Validate checks doc for construction defects:
//
//   - a fill whose parts do not alternate content and separators, starting
//     and ending with content;
//   - an if-break targeting a group that is not printed before it;
//   - text containing a newline.
//
// The first defect in printing order is returned as a [*DefectError].
func Validate(doc Document) error {
	if doc.b == nil {
		return nil
	}

	seen := make(map[Doc]struct{})
	groups := make([]bool, doc.b.groups+1)

	stack := []Doc{doc.root}
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

		n := doc.Node(d)
		switch n.Kind() {
		case KindText:
			if strings.ContainsAny(n.Text(), "\r\n") {
				return &DefectError{Node: d, Kind: KindText, Detail: fmt.Sprintf("text %q contains a newline", n.Text())}
			}

		case KindFill:
			if len(n.Children())%2 == 0 {
				return &DefectError{Node: d, Kind: KindFill, Detail: fmt.Sprintf("%d parts; want an odd number", len(n.Children()))}
			}
			stack = slicesx.PushReversed(stack, n.Children()...)

		case KindConcat:
			stack = slicesx.PushReversed(stack, n.Children()...)

		case KindGroup:
			if id := n.ID(); id != 0 {
				if int(id) >= len(groups) {
					return &DefectError{Node: d, Kind: KindGroup, Detail: fmt.Sprintf("unknown group ID %d", id)}
				}
				groups[id] = true
			}
			if n.Conditional() {
				stack = slicesx.PushReversed(stack, n.States()...)
			} else {
				stack = append(stack, n.Contents())
			}

		case KindIfBreak:
			if id := n.ID(); id != 0 && (int(id) >= len(groups) || !groups[id]) {
				return &DefectError{Node: d, Kind: KindIfBreak, Detail: fmt.Sprintf("group %d is not printed before this node", id)}
			}
			stack = append(stack, n.WhenFlat(), n.WhenBreak())

		case KindIndent, KindAlign, KindLineSuffix:
			stack = append(stack, n.Contents())
		}
	}
	return nil
}
