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

// Package gomark provides a [CommonMark] parser with optional GitHub Flavored
// Markdown and Obsidian Flavored Markdown extensions, rendered to HTML.
//
// Parsing happens in two phases. The block phase walks the input line by
// line, descending into already-open containers and opening new ones,
// buffering raw text under leaf nodes. The inline phase then resolves each
// leaf's buffered text into emphasis, links, autolinks, and the other inline
// constructs, using a delimiter chain and a bracket chain swept after the
// leaf's lines have been scanned once.
//
// [CommonMark]: https://commonmark.org/
package gomark

import "fmt"

// ErrResourceLimit is the sentinel wrapped by [Parse] when an input exceeds
// a configured [Options.MaxInputBytes] or [Options.MaxNodes] ceiling.
var ErrResourceLimit = fmt.Errorf("gomark: resource limit exceeded")

// ErrInvalidUTF8 is the sentinel wrapped by [Parse] when the input is not
// well-formed UTF-8.
var ErrInvalidUTF8 = fmt.Errorf("gomark: input is not valid UTF-8")

// ErrFrontMatter names a YAML front matter decode failure. [Parse] does not
// return it: a front matter block that fails to decode leaves
// [Document.FrontMatter] nil and the parse succeeds.
var ErrFrontMatter = fmt.Errorf("gomark: front matter decode failed")
