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

import (
	"strings"

	"github.com/goccy/go-yaml"
)

// extractFrontMatter decodes a FrontMatterKind node's buffered YAML body
// into doc.FrontMatter and unlinks the node from the tree, since it is
// metadata rather than rendered content. Malformed YAML leaves FrontMatter
// nil rather than failing the whole parse.
func extractFrontMatter(doc *Document, opts Options) {
	idx := findFrontMatter(doc.tree, 0)
	if idx == noIndex {
		return
	}
	n := doc.tree.get(idx)
	if len(n.lines) > 0 {
		n.lines = n.lines[1:] // the opening fence line
	}
	var buf strings.Builder
	for _, ls := range n.lines {
		buf.Write(ls.src[ls.start:ls.end])
		buf.WriteByte('\n')
	}
	n.lines = nil

	var decoded map[string]any
	if err := yaml.Unmarshal([]byte(buf.String()), &decoded); err == nil {
		doc.FrontMatter = decoded
	}
	doc.tree.unlink(idx)

	if opts.CJKNounsFromFrontmatter != "" && doc.FrontMatter != nil {
		if v, ok := doc.FrontMatter[opts.CJKNounsFromFrontmatter]; ok {
			switch val := v.(type) {
			case string:
				doc.cjkNouns = append(doc.cjkNouns, val)
			case []any:
				for _, item := range val {
					if s, ok := item.(string); ok {
						doc.cjkNouns = append(doc.cjkNouns, s)
					}
				}
			}
		}
	}
}

// findFrontMatter reports the root's first child if it is a
// FrontMatterKind node, per the block starter's rule that front matter
// may only open on the document's very first line.
func findFrontMatter(t *arena, root int) int {
	first := t.firstChildOf(root)
	if first != noIndex && t.get(first).kind == FrontMatterKind {
		return first
	}
	return noIndex
}
