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

// Package docfmt formats source code into a canonical layout.
//
// Formatting happens in phases, each in its own package:
//  1. Build a document. A [Converter] turns each node of a syntax tree into
//     a document, using the builders of package doc. Comments are attached
//     to nodes by a trivia.Reconciler as the tree is walked.
//     Also see: doc.Builder
//  2. Propagate breaks. Groups that contain a hard line are marked to
//     print broken.
//     Also see: doc.Propagate
//  3. Print. The printer walks the document once, choosing for each group
//     whether it fits flat on the rest of the line.
//     Also see: printer.Print
//
// [Format] runs all of these phases. [Build] stops after the first, for
// callers that embed the result into a larger document.
//
// # Converters
//
// docfmt does not know any language. A Converter builds the document for a
// node, calling [Context.Print] for its children. The [Context] embeds the
// document builder, and carries the options and the source text. A
// converter that cannot handle a node returns [ErrUnsupported], and the
// node is copied through from the source unchanged.
//
// # Options
//
// Options start from [DefaultOptions], and may be read from a
// configuration file with [LoadConfig]. Invalid options are rejected
// before any formatting.
//
// # Batches
//
// A [Batch] formats many files in parallel. Formatting calls share no
// state, so each file gets its own document.
package docfmt

//go:generate go run github.com/bufbuild/docfmt/internal/enum enums.yaml
