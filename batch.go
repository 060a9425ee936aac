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
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/bufbuild/docfmt/trivia"
)

// Unit is a single file to format.
type Unit struct {
	// Used in diagnostics, in place of [Options.Filename].
	Filename string
	Root     Node
	Source   string
	Comments trivia.List
}

// Batch formats many independent units in parallel.
type Batch struct {
	// Converts every unit. This field is required.
	Converter Converter
	// Options shared by every unit.
	Options Options
	// The maximum parallelism to use. If unspecified or set to a
	// non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
}

// Format formats units, returning their output in the same order.
//
// Each unit is formatted with its own document builder; nothing is shared
// between them except the options, whose reporter must therefore be safe
// for concurrent use. The first error cancels the units not yet started.
func (b *Batch) Format(ctx context.Context, units ...Unit) ([]string, error) {
	if len(units) == 0 {
		return nil, nil
	}
	if err := b.Options.Validate(); err != nil {
		return nil, err
	}

	par := b.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	out := make([]string, len(units))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(par)
	for i, unit := range units {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			opts := b.Options
			if unit.Filename != "" {
				opts.Filename = unit.Filename
			}
			text, err := Format(b.Converter, unit.Root, unit.Source, unit.Comments, opts)
			if err != nil {
				return err
			}
			out[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// FormatAll formats units in parallel with the default parallelism.
func FormatAll(ctx context.Context, conv Converter, units []Unit, opts Options) ([]string, error) {
	b := &Batch{Converter: conv, Options: opts}
	return b.Format(ctx, units...)
}
