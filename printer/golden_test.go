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

package printer_test

import (
	"fmt"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/docfmt/doc"
	"github.com/bufbuild/docfmt/internal/corpora"
	"github.com/bufbuild/docfmt/printer"
)

func TestGolden(t *testing.T) {
	t.Parallel()

	corpus := corpora.Corpus{
		Root:       "testdata",
		Refresh:    "DOCFMT_REFRESH",
		Extensions: []string{"yaml"},
		Outputs: []corpora.Output{
			{Extension: "txt"},
			{Extension: "debug"},
		},
	}

	corpus.Run(t, func(t *testing.T, path, text string, outputs []string) {
		var testCase struct {
			Width   int       `yaml:"width"`
			Indent  int       `yaml:"indent"`
			Tabs    bool      `yaml:"tabs"`
			Doc     yaml.Node `yaml:"doc"`
			Verbose bool      `yaml:"verbose"`
		}
		if err := yaml.Unmarshal([]byte(text), &testCase); err != nil {
			t.Fatalf("failed to parse test case %q: %v", path, err)
		}

		d := decoder{groups: make(map[string]doc.GroupID)}
		root, err := d.decode(&testCase.Doc)
		if err != nil {
			t.Fatalf("failed to decode document in %q: %v", path, err)
		}
		document := d.b.Finish(root)

		out, err := printer.Print(document, printer.Options{
			PrintWidth: testCase.Width,
			TabWidth:   testCase.Indent,
			UseTabs:    testCase.Tabs,
		})
		if err != nil {
			outputs[0] = fmt.Sprintf("error: %v\n", err)
		} else {
			outputs[0] = out
		}
		if testCase.Verbose {
			outputs[1] = doc.Debug(document) + "\n"
		}
	})
}

// decoder builds documents from YAML.
//
// Quoted scalars are text, and plain scalars name line breaks and markers.
// Sequences are concatenations; a mapping is a single call such as
// {group: [...]}, with extra keys for its options.
type decoder struct {
	b      doc.Builder
	groups map[string]doc.GroupID
}

func (d *decoder) decode(node *yaml.Node) (doc.Doc, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0 {
			return d.b.Text(node.Value), nil
		}
		switch node.Value {
		case "line":
			return d.b.Line(), nil
		case "softline":
			return d.b.SoftLine(), nil
		case "hardline":
			return d.b.HardLine(), nil
		case "literalline":
			return d.b.LiteralLine(), nil
		case "breakParent":
			return d.b.BreakParent(), nil
		case "lineSuffixBoundary":
			return d.b.LineSuffixBoundary(), nil
		case "trim":
			return d.b.Trim(), nil
		}
		return 0, fmt.Errorf("line %d: unknown document %q", node.Line, node.Value)

	case yaml.SequenceNode:
		parts, err := d.decodeAll(node)
		if err != nil {
			return 0, err
		}
		return d.b.Concat(parts...), nil

	case yaml.MappingNode:
		return d.decodeCall(node)
	}
	return 0, fmt.Errorf("line %d: unexpected YAML node", node.Line)
}

func (d *decoder) decodeAll(node *yaml.Node) ([]doc.Doc, error) {
	if node.Kind != yaml.SequenceNode {
		one, err := d.decode(node)
		return []doc.Doc{one}, err
	}
	parts := make([]doc.Doc, 0, len(node.Content))
	for _, child := range node.Content {
		part, err := d.decode(child)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}

func (d *decoder) decodeCall(node *yaml.Node) (doc.Doc, error) {
	args := make(map[string]*yaml.Node)
	var name string
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		args[key] = node.Content[i+1]
		if i == 0 {
			name = key
		}
	}

	id := func(key string) doc.GroupID {
		arg, ok := args[key]
		if !ok {
			return 0
		}
		if _, ok := d.groups[arg.Value]; !ok {
			d.groups[arg.Value] = d.b.NewGroupID()
		}
		return d.groups[arg.Value]
	}
	optional := func(key string) (doc.Doc, error) {
		arg, ok := args[key]
		if !ok {
			return 0, nil
		}
		return d.decode(arg)
	}

	// Issue IDs in document order, so that a group's ID exists before any
	// if-break that refers to it is decoded.
	groupID := id("id")

	switch name {
	case "group":
		parts, err := d.decodeAll(args[name])
		if err != nil {
			return 0, err
		}
		var shouldBreak bool
		if arg, ok := args["break"]; ok {
			if err := arg.Decode(&shouldBreak); err != nil {
				return 0, err
			}
		}
		return d.b.GroupWith(doc.GroupOptions{ID: groupID, ShouldBreak: shouldBreak}, parts...), nil

	case "conditionalGroup":
		states, err := d.decodeAll(args[name])
		if err != nil {
			return 0, err
		}
		return d.b.ConditionalGroup(states...), nil

	case "fill":
		parts, err := d.decodeAll(args[name])
		if err != nil {
			return 0, err
		}
		return d.b.Fill(parts...), nil

	case "indent", "dedent", "lineSuffix":
		parts, err := d.decodeAll(args[name])
		if err != nil {
			return 0, err
		}
		switch name {
		case "indent":
			return d.b.Indent(parts...), nil
		case "dedent":
			return d.b.Dedent(parts...), nil
		default:
			return d.b.LineSuffix(parts...), nil
		}

	case "align":
		var n int
		if err := args[name].Decode(&n); err != nil {
			return 0, err
		}
		parts, err := d.decodeAll(args["doc"])
		if err != nil {
			return 0, err
		}
		return d.b.Align(n, parts...), nil

	case "ifBreak":
		whenBreak, err := d.decode(args[name])
		if err != nil {
			return 0, err
		}
		whenFlat, err := optional("flat")
		if err != nil {
			return 0, err
		}
		return d.b.IfBreakFor(id("group"), whenBreak, whenFlat), nil
	}
	return 0, fmt.Errorf("line %d: unknown document %q", node.Line, name)
}
