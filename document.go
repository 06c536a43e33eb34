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

// Document is the result of a successful [Parse]: the resolved syntax
// tree, plus the side tables the inline and reference phases built up
// along the way.
type Document struct {
	tree   *arena
	source []byte

	// LinkReferences maps a normalized reference label (see
	// NormalizeReferenceLabel) to its destination and optional title.
	LinkReferences ReferenceMap

	// Footnotes maps a normalized footnote label to the arena index of
	// its defining node; FootnoteOrder holds the reference order.
	Footnotes map[string]int
	// FootnoteOrder lists footnote labels in first-reference order; the
	// label at index i renders with back-reference number i+1.
	FootnoteOrder []string

	// Tags is the set of lowercased tag names discovered by the inline
	// engine, in first-discovery order.
	Tags []string

	// FrontMatter holds the decoded YAML front matter block, or nil if
	// the document had none.
	FrontMatter map[string]any

	// cjkNouns accumulates WithCJKNouns plus any nouns extracted from
	// FrontMatter via WithCJKNounsFromFrontmatter.
	cjkNouns []string
}

// Parse parses source as Markdown under opts, returning the resolved
// Document. It returns a non-nil error matching [ErrInvalidUTF8] or
// [ErrResourceLimit] if source cannot be parsed within the configured
// limits. Front matter that fails to decode does not fail the parse; it
// leaves [Document.FrontMatter] nil.
func Parse(source []byte, opts Options) (*Document, error) {
	return parseDocument(source, opts)
}

// Root returns the document's root node, always of kind [DocumentKind].
func (d *Document) Root() Node {
	return Node{doc: d, idx: 0}
}

// ReferenceMap maps a normalized link label to its definition.
type ReferenceMap map[string]LinkDefinition

// LinkDefinition is the destination and optional title of a link
// reference definition.
type LinkDefinition struct {
	Destination  string
	Title        string
	TitlePresent bool
}

// Node is a read-only handle to one node of a parsed [Document]. It wraps
// an arena index rather than a pointer, per this package's arena-indexed
// tree architecture; values are cheap to copy and remain valid for the
// document's lifetime.
type Node struct {
	doc *Document
	idx int
}

// IsZero reports whether n is the zero Node, which refers to no document.
func (n Node) IsZero() bool {
	return n.doc == nil
}

func (n Node) raw() *node {
	return n.doc.tree.get(n.idx)
}

// Kind returns n's node kind.
func (n Node) Kind() NodeKind {
	return n.raw().kind
}

// Range returns n's source range.
func (n Node) Range() Range {
	return n.raw().span
}

// BlockID returns n's Obsidian block-ref anchor, or "" if none was set.
func (n Node) BlockID() string {
	return n.raw().blockID
}

// Text returns the literal text payload of a Text, CharacterReference,
// RawHTML, Tag, Emoji, or Code node.
func (n Node) Text() string {
	return n.raw().text
}

// Data returns n's kind-specific payload, or nil if its kind carries none.
// Callers type-assert to the *Data type documented alongside the kind
// (e.g. n.Data().(*HeadingData) for a HeadingKind node).
func (n Node) Data() any {
	return n.raw().data
}

// ChildCount returns the number of n's children.
func (n Node) ChildCount() int {
	count := 0
	for c := n.doc.tree.firstChildOf(n.idx); c != noIndex; c = n.doc.tree.nextSiblingOf(c) {
		count++
	}
	return count
}

// Children returns n's children in document order.
func (n Node) Children() []Node {
	idxs := n.doc.tree.children(n.idx)
	out := make([]Node, len(idxs))
	for i, idx := range idxs {
		out[i] = Node{doc: n.doc, idx: idx}
	}
	return out
}

// Parent returns n's parent, or the zero Node if n is the root.
func (n Node) Parent() Node {
	p := n.doc.tree.parentOf(n.idx)
	if p == noIndex || p == n.idx {
		return Node{}
	}
	return Node{doc: n.doc, idx: p}
}

// PlainText concatenates the literal text of n's descendant Text,
// CharacterReference, and Emoji nodes, skipping markup-only nodes and raw
// HTML. It is used to compute an image's alt attribute and a heading's
// plain-text anchor slug.
func (n Node) PlainText() string {
	var buf []byte
	var walk func(Node)
	walk = func(cur Node) {
		switch cur.Kind() {
		case TextKind, CharacterReferenceKind, EmojiKind:
			buf = append(buf, cur.Text()...)
		case SoftBreakKind:
			buf = append(buf, ' ')
		case HardBreakKind:
			buf = append(buf, '\n')
		case ImageKind:
			// A nested image does not contribute its own alt text
			// recursively; CommonMark renders an empty string for it.
		default:
			for _, c := range cur.Children() {
				walk(c)
			}
		}
	}
	for _, c := range n.Children() {
		walk(c)
	}
	return string(buf)
}
