// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package gomark

// Options configures the behavior of [Parse]. The zero value is the plain
// CommonMark core with no extensions and no resource ceilings.
type Options struct {
	// GithubFlavored enables GFM tables, strikethrough, task list items,
	// and footnotes.
	GithubFlavored bool
	// GFMExtendedAutolink is accepted but not consulted by the parser:
	// bare URLs, www. hosts, and email addresses are not turned into links.
	GFMExtendedAutolink bool
	// ObsidianFlavored enables wikilinks, embeds, callouts, tags, block-id
	// anchors, comments, highlighting, math, and front matter.
	ObsidianFlavored bool
	// MDXComponent is accepted but not consulted by the parser: raw HTML
	// handling is the same whether or not it is set.
	MDXComponent bool
	// CJKAutocorrect inserts a space between CJK text and adjacent ASCII
	// alphanumerics during the text post-pass.
	CJKAutocorrect bool
	// NormalizeChinesePunctuation converts half-width punctuation to
	// full-width inside CJK context and collapses repeated punctuation.
	NormalizeChinesePunctuation bool
	// CJKFriendlyDelimiters extends the emphasis flanking rules so that
	// CJK characters behave like letters rather than punctuation.
	CJKFriendlyDelimiters bool
	// SmartPunctuation converts -- and --- to dashes, ... to an ellipsis,
	// and curls straight quotes.
	SmartPunctuation bool

	// MaxInputBytes bounds the input size. Zero means unbounded.
	MaxInputBytes int
	// MaxNodes bounds the number of arena nodes the parse may allocate.
	// Zero means unbounded.
	MaxNodes int

	// CJKNouns lists proper nouns that CJKAutocorrect must not split.
	CJKNouns []string
	// CJKNounsFromFrontmatter names a front matter field (string or list
	// of strings) whose values are appended to CJKNouns for this parse.
	CJKNounsFromFrontmatter string
}

// Option configures an [Options] value in place.
type Option func(*Options)

// NewOptions builds an [Options] value from a sequence of [Option] values,
// applied in order.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithGithubFlavored enables GFM tables, strikethrough, and task lists.
func WithGithubFlavored() Option {
	return func(o *Options) { o.GithubFlavored = true }
}

// WithGFMExtendedAutolink sets [Options.GFMExtendedAutolink], which the
// parser does not consult.
func WithGFMExtendedAutolink() Option {
	return func(o *Options) { o.GFMExtendedAutolink = true }
}

// WithObsidianFlavored enables wikilinks, embeds, callouts, tags, block
// ids, comments, highlighting, math, and front matter.
func WithObsidianFlavored() Option {
	return func(o *Options) { o.ObsidianFlavored = true }
}

// WithMDXComponent sets [Options.MDXComponent], which the parser does not
// consult.
func WithMDXComponent() Option {
	return func(o *Options) { o.MDXComponent = true }
}

// WithCJKAutocorrect enables CJK/ASCII spacing correction.
func WithCJKAutocorrect() Option {
	return func(o *Options) { o.CJKAutocorrect = true }
}

// WithNormalizeChinesePunctuation enables full-width punctuation
// normalization.
func WithNormalizeChinesePunctuation() Option {
	return func(o *Options) { o.NormalizeChinesePunctuation = true }
}

// WithCJKFriendlyDelimiters enables CJK-aware emphasis flanking.
func WithCJKFriendlyDelimiters() Option {
	return func(o *Options) { o.CJKFriendlyDelimiters = true }
}

// WithSmartPunctuation enables dash/ellipsis/quote substitution.
func WithSmartPunctuation() Option {
	return func(o *Options) { o.SmartPunctuation = true }
}

// WithMaxInputBytes sets a resource ceiling on input size.
func WithMaxInputBytes(n int) Option {
	return func(o *Options) { o.MaxInputBytes = n }
}

// WithMaxNodes sets a resource ceiling on arena node count.
func WithMaxNodes(n int) Option {
	return func(o *Options) { o.MaxNodes = n }
}

// WithCJKNouns appends proper nouns that CJK autocorrect must not split.
func WithCJKNouns(nouns ...string) Option {
	return func(o *Options) { o.CJKNouns = append(o.CJKNouns, nouns...) }
}

// WithCJKNounsFromFrontmatter names a front matter field supplying
// additional CJK nouns.
func WithCJKNounsFromFrontmatter(field string) Option {
	return func(o *Options) { o.CJKNounsFromFrontmatter = field }
}
