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

// runTextPostPass walks every Text node left by the inline phase and
// applies the optional CJK/punctuation transforms in §4.7, in the fixed
// order: CJK/ASCII spacing, then Chinese punctuation normalization, then
// dash/ellipsis substitution. Smart-quote curling already happened during
// the inline scan, since it needs the same flanking context emphasis does.
func runTextPostPass(doc *Document, opts Options) {
	if !opts.CJKAutocorrect && !opts.NormalizeChinesePunctuation && !opts.SmartPunctuation {
		return
	}
	nouns := opts.CJKNouns
	if len(doc.cjkNouns) > 0 {
		nouns = append(append([]string(nil), opts.CJKNouns...), doc.cjkNouns...)
	}
	walkTextNodes(doc.tree, 0, func(n *node) {
		text := n.text
		if opts.CJKAutocorrect {
			text = correctCJKSpacing(text, nouns)
		}
		if opts.NormalizeChinesePunctuation {
			text = normalizeChinesePunctuation(text)
		}
		if opts.SmartPunctuation {
			text = smartPunctuationDashesAndEllipses(text)
		}
		n.text = text
	})
}

func walkTextNodes(t *arena, idx int, f func(n *node)) {
	n := t.get(idx)
	if n.kind == TextKind {
		f(n)
	}
	for c := t.firstChildOf(idx); c != noIndex; c = t.nextSiblingOf(c) {
		walkTextNodes(t, c, f)
	}
}

// relocateFootnotes moves every referenced footnote definition out of its
// original position in the tree and into a single FootnoteListKind
// container appended at the document's end, ordered by first reference.
// Definitions that were never referenced are dropped, matching the
// renderer's contract that the footnote list mirrors what the text
// actually cites.
func relocateFootnotes(doc *Document) {
	if len(doc.FootnoteOrder) == 0 {
		return
	}
	root := 0
	end := doc.tree.get(root).span.End
	listIdx := doc.tree.createNode(node{kind: FootnoteListKind, span: Range{Start: end, End: end}})
	for _, label := range doc.FootnoteOrder {
		defIdx, ok := doc.Footnotes[label]
		if !ok {
			continue
		}
		doc.tree.unlink(defIdx)
		doc.tree.appendChild(listIdx, defIdx)
	}
	doc.tree.appendChild(root, listIdx)
}
