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
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config is the contents of a configuration file. Unset fields keep the
// value of the options the file is applied to.
type Config struct {
	PrintWidth     *int    `yaml:"printWidth" toml:"printWidth"`
	TabWidth       *int    `yaml:"tabWidth" toml:"tabWidth"`
	UseTabs        *bool   `yaml:"useTabs" toml:"useTabs"`
	QuoteProps     *string `yaml:"quoteProps" toml:"quoteProps"`
	TrailingComma  *string `yaml:"trailingComma" toml:"trailingComma"`
	BracketSpacing *bool   `yaml:"bracketSpacing" toml:"bracketSpacing"`
	ArrowParens    *string `yaml:"arrowParens" toml:"arrowParens"`
	EndOfLine      *string `yaml:"endOfLine" toml:"endOfLine"`
}

// LoadConfig reads the configuration file at path and applies it to
// [DefaultOptions]. The format is chosen by extension: .yaml, .yml or
// .toml.
func LoadConfig(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}
	config, err := ParseConfig(data, filepath.Ext(path))
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	opts, err := config.Apply(DefaultOptions())
	if err != nil {
		return Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return opts, nil
}

// ParseConfig parses a configuration file in the format named by ext, which
// is a file extension including the dot. Unknown keys are an error.
func ParseConfig(data []byte, ext string) (Config, error) {
	var config Config
	switch ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, err
		}
	case ".toml":
		md, err := toml.Decode(string(data), &config)
		if err != nil {
			return Config{}, err
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return Config{}, fmt.Errorf("unknown key %q", keys[0].String())
		}
	default:
		return Config{}, fmt.Errorf("unsupported config format %q", ext)
	}
	return config, nil
}

// Apply returns opts with the fields set in c replaced, after validating the
// result.
func (c Config) Apply(opts Options) (Options, error) {
	if c.PrintWidth != nil {
		opts.PrintWidth = *c.PrintWidth
	}
	if c.TabWidth != nil {
		opts.TabWidth = *c.TabWidth
	}
	if c.UseTabs != nil {
		opts.UseTabs = *c.UseTabs
	}
	if c.BracketSpacing != nil {
		opts.BracketSpacing = *c.BracketSpacing
	}
	if err := parseEnum(c.QuoteProps, "quoteProps", ParseQuoteProps, &opts.QuoteProps); err != nil {
		return opts, err
	}
	if err := parseEnum(c.TrailingComma, "trailingComma", ParseTrailingComma, &opts.TrailingComma); err != nil {
		return opts, err
	}
	if err := parseEnum(c.ArrowParens, "arrowParens", ParseArrowParens, &opts.ArrowParens); err != nil {
		return opts, err
	}
	if err := parseEnum(c.EndOfLine, "endOfLine", ParseEndOfLine, &opts.EndOfLine); err != nil {
		return opts, err
	}
	return opts, opts.Validate()
}

func parseEnum[E any](value *string, field string, parse func(string) (E, bool), out *E) error {
	if value == nil {
		return nil
	}
	v, ok := parse(*value)
	if !ok {
		return &OptionError{Field: field, Value: *value}
	}
	*out = v
	return nil
}
