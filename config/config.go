/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"dirpx.dev/caseid/apis"
)

const (
	// DefaultSeparator joins record fields. It differs from the comma and
	// space a runner uses when it combines several parametrize axes.
	DefaultSeparator = "-"
	// DefaultElemSeparator joins collection elements.
	DefaultElemSeparator = "+"
	// DefaultPlaceholder replaces unsafe characters in textual values.
	DefaultPlaceholder = "_"
	// DefaultOpen opens a nested record or collection.
	DefaultOpen = "["
	// DefaultClose closes a nested record or collection.
	DefaultClose = "]"
	// SentinelMark starts every default sentinel. Text never renders with
	// it, so "nil" the string and nil the pointer stay apart.
	SentinelMark = "@"
	// DefaultEmptyRecord is the identifier of a record without fields.
	DefaultEmptyRecord = SentinelMark + "empty"
	// DefaultEmptyText is rendered for "" and empty byte slices.
	DefaultEmptyText = SentinelMark + "blank"
	// DefaultNil is rendered for nil pointers, interfaces, maps and slices.
	DefaultNil = SentinelMark + "nil"
	// DefaultMaxDepth represents the default for MaxDepth.
	// Test tables rarely nest more than a handful of levels.
	DefaultMaxDepth = 32
	// DefaultIncludeFieldNames represents the default for IncludeFieldNames.
	DefaultIncludeFieldNames = false
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return Sanitize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Separator:         DefaultSeparator,
		ElemSeparator:     DefaultElemSeparator,
		Placeholder:       DefaultPlaceholder,
		Open:              DefaultOpen,
		Close:             DefaultClose,
		EmptyRecord:       DefaultEmptyRecord,
		EmptyText:         DefaultEmptyText,
		Nil:               DefaultNil,
		MaxDepth:          DefaultMaxDepth,
		IncludeFieldNames: DefaultIncludeFieldNames,
	}
}

// Sanitize replaces unusable values with defaults. Blank separators and
// sentinels would make distinct records collide or produce blank ids.
func Sanitize(cfg apis.Config) apis.Config {
	def := DefaultConfig()
	if cfg.Separator == "" {
		cfg.Separator = def.Separator
	}
	if cfg.ElemSeparator == "" {
		cfg.ElemSeparator = def.ElemSeparator
	}
	if cfg.Placeholder == "" {
		cfg.Placeholder = def.Placeholder
	}
	if cfg.Open == "" || cfg.Close == "" {
		cfg.Open, cfg.Close = def.Open, def.Close
	}
	if cfg.EmptyRecord == "" {
		cfg.EmptyRecord = def.EmptyRecord
	}
	if cfg.EmptyText == "" {
		cfg.EmptyText = def.EmptyText
	}
	if cfg.Nil == "" {
		cfg.Nil = def.Nil
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = def.MaxDepth
	}
	return cfg
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithSeparator sets the field separator.
func WithSeparator(sep string) Option {
	return func(c *apis.Config) {
		c.Separator = sep
	}
}

// WithElemSeparator sets the collection element separator.
func WithElemSeparator(sep string) Option {
	return func(c *apis.Config) {
		c.ElemSeparator = sep
	}
}

// WithPlaceholder sets the replacement for unsafe characters.
func WithPlaceholder(p string) Option {
	return func(c *apis.Config) {
		c.Placeholder = p
	}
}

// WithBrackets sets the delimiters of nested records and collections.
func WithBrackets(open, close string) Option {
	return func(c *apis.Config) {
		c.Open, c.Close = open, close
	}
}

// WithEmptyRecord sets the identifier of field-less records.
func WithEmptyRecord(s string) Option {
	return func(c *apis.Config) {
		c.EmptyRecord = s
	}
}

// WithEmptyText sets the rendering of empty strings. A value that text
// can also render as, such as a plain word, makes "" ambiguous.
func WithEmptyText(s string) Option {
	return func(c *apis.Config) {
		c.EmptyText = s
	}
}

// WithNil sets the rendering of nil values. Like WithEmptyText, it should
// contain a rune that sanitized text never holds.
func WithNil(s string) Option {
	return func(c *apis.Config) {
		c.Nil = s
	}
}

// WithMaxDepth sets the MaxDepth option.
// A non-positive value resets to the default.
func WithMaxDepth(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxDepth = DefaultMaxDepth
			return
		}
		c.MaxDepth = max
	}
}

// WithIncludeFieldNames toggles "name=value" rendering.
func WithIncludeFieldNames(include bool) Option {
	return func(c *apis.Config) {
		c.IncludeFieldNames = include
	}
}
