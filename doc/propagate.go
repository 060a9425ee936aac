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

import "github.com/bufbuild/docfmt/internal/arena"

// Breaks records which groups of a [Document] must break.
//
// See [Propagate].
type Breaks struct {
	forced []bool
}

// Broken returns whether the group d must be rendered broken.
func (b Breaks) Broken(d Doc) bool {
	return int(d) < len(b.forced) && b.forced[d]
}

// Propagate marks every group of doc that must break.
//
// A group must break if it was built with ShouldBreak, or if it contains a
// hard line, a literal line, a break parent or a group that must break.
// Conditional groups make their own decision: they are never marked by
// their contents and do not pass their contents' breaks on to their parent.
//
// This is a single pass over doc's arena: nodes are allocated after their
// children, so allocation order visits every child before its parents.
func Propagate(doc Document) Breaks {
	if doc.b == nil {
		return Breaks{}
	}

	forced := make([]bool, doc.b.nodes.Len()+1)
	for p, n := range doc.b.nodes.All() {
		var force bool
		switch n.kind {
		case KindLine:
			force = n.line != LineSoft
		case KindBreakParent:
			force = true
		case KindIndent, KindAlign, KindLineSuffix:
			force = forced[n.a]
		case KindIfBreak:
			force = forced[n.a] || forced[n.b]
		case KindConcat, KindFill:
			for _, child := range doc.b.edges[n.first : n.first+n.count] {
				if forced[child] {
					force = true
					break
				}
			}
		case KindGroup:
			force = n.shouldBreak || (n.count == 0 && forced[n.a])
		}
		forced[arena.Untyped(p)] = force
	}
	return Breaks{forced: forced}
}
