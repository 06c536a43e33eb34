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
	"fmt"
	"html"
	"io"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html/atom"
)

// sortedKeys returns m's keys in sorted order, for deterministic
// attribute output.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// An HTMLRenderer converts a parsed [Document] into HTML.
//
// # Security considerations
//
// Both CommonMark raw HTML and Obsidian's MDX-like component tags can
// introduce Cross-Site Scripting vulnerabilities when used with untrusted
// input. Set IgnoreRaw to drop raw HTML blocks and inline tags entirely,
// or use FilterTag to blank out specific tag names (GFM's disallowed-raw-
// html extension) while still showing the surrounding text.
type HTMLRenderer struct {
	// IgnoreRaw drops HTML blocks and inline raw HTML tags from the
	// output instead of passing them through.
	IgnoreRaw bool
	// FilterTag reports whether an element with the given lowercased tag
	// name should have its leading angle bracket escaped. A nil FilterTag
	// performs no filtering.
	FilterTag func(tag []byte) bool
}

// RenderHTML writes doc to w as HTML using the default [HTMLRenderer]
// options.
func RenderHTML(w io.Writer, doc *Document) error {
	return (&HTMLRenderer{}).Render(w, doc)
}

// Render writes doc to w as HTML. It returns the first error encountered,
// if any.
func (r *HTMLRenderer) Render(w io.Writer, doc *Document) error {
	dst := r.AppendDocument(nil, doc)
	if _, err := w.Write(dst); err != nil {
		return fmt.Errorf("render markdown to html: %w", err)
	}
	return nil
}

// AppendDocument appends the rendered HTML of doc to dst and returns the
// resulting byte slice.
func (r *HTMLRenderer) AppendDocument(dst []byte, doc *Document) []byte {
	state := &renderState{HTMLRenderer: r, dst: dst, doc: doc}
	for _, c := range doc.Root().Children() {
		state.node(c, nil)
	}
	return state.dst
}

type renderState struct {
	*HTMLRenderer
	dst      []byte
	lowerBuf []byte
	doc      *Document
}

func (r *renderState) openTagAttr(name atom.Atom) {
	start := len(r.dst)
	r.dst = append(r.dst, '<')
	r.dst = append(r.dst, name.String()...)
	if r.FilterTag != nil && r.FilterTag(r.dst[start+1:]) {
		r.dst = r.dst[:start]
		r.dst = append(r.dst, "&lt;"...)
		r.dst = append(r.dst, name.String()...)
	}
}

func (r *renderState) openTag(name atom.Atom) {
	r.openTagAttr(name)
	r.dst = append(r.dst, '>')
}

func (r *renderState) closeTag(name atom.Atom) {
	start := len(r.dst)
	r.dst = append(r.dst, "</"...)
	r.dst = append(r.dst, name.String()...)
	if r.FilterTag != nil && r.FilterTag(r.dst[start+2:]) {
		r.dst = r.dst[:start]
		r.dst = append(r.dst, "&lt;/"...)
		r.dst = append(r.dst, name.String()...)
	}
	r.dst = append(r.dst, '>')
}

func (r *renderState) attr(name, value string) {
	r.dst = append(r.dst, ' ')
	r.dst = append(r.dst, name...)
	r.dst = append(r.dst, `="`...)
	r.dst = append(r.dst, html.EscapeString(value)...)
	r.dst = append(r.dst, '"')
}

// colCtx threads a table's column alignments down to its head/data cells.
type colCtx struct {
	aligns []TableAlignment
	col    int
}

func alignAttr(a TableAlignment) string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return ""
}

// node renders n and, for containers, its children. cols carries the
// enclosing table's column alignments when n is a row or cell.
func (r *renderState) node(n Node, cols *colCtx) {
	switch n.Kind() {
	case ParagraphKind:
		r.openTag(atom.P)
		r.childrenOf(n, nil)
		r.closeTag(atom.P)
	case ThematicBreakKind:
		r.openTag(atom.Hr)
	case HeadingKind:
		data, _ := n.Data().(*HeadingData)
		level := 1
		if data != nil {
			level = data.Level
		}
		tag := headingAtom(level)
		r.openTagAttr(tag)
		if slug := headingSlug(n.PlainText()); slug != "" {
			r.attr("id", slug)
		}
		r.dst = append(r.dst, '>')
		r.childrenOf(n, nil)
		r.closeTag(tag)
	case BlockQuoteKind:
		r.openTag(atom.Blockquote)
		r.childrenOf(n, nil)
		r.closeTag(atom.Blockquote)
	case CalloutKind:
		r.renderCallout(n)
	case ListKind:
		data, _ := n.Data().(*ListData)
		tight := data != nil && data.Tight
		if data != nil && data.Style == OrderedMarker {
			r.openTagAttr(atom.Ol)
			if data.Start != 1 {
				r.attr("start", strconv.Itoa(data.Start))
			}
			r.dst = append(r.dst, '>')
			r.listItems(n, tight)
			r.closeTag(atom.Ol)
		} else {
			r.openTag(atom.Ul)
			r.listItems(n, tight)
			r.closeTag(atom.Ul)
		}
	case CodeKind:
		r.renderCode(n)
	case HTMLKind:
		if !r.IgnoreRaw {
			r.filterRaw([]byte(n.Text()))
		}
	case MathKind:
		r.renderMath(n)
	case FootnoteListKind:
		r.renderFootnoteList(n)
	case TableKind:
		data, _ := n.Data().(*TableData)
		aligns := []TableAlignment(nil)
		if data != nil {
			aligns = data.Alignments
		}
		r.openTag(atom.Table)
		for _, c := range n.Children() {
			r.node(c, &colCtx{aligns: aligns})
		}
		r.closeTag(atom.Table)
	case TableHeadKind:
		r.openTag(atom.Thead)
		r.childrenOf(n, cols)
		r.closeTag(atom.Thead)
	case TableBodyKind:
		r.openTag(atom.Tbody)
		r.childrenOf(n, cols)
		r.closeTag(atom.Tbody)
	case TableRowKind:
		r.openTag(atom.Tr)
		col := 0
		for _, c := range n.Children() {
			localCols := cols
			if cols != nil {
				localCols = &colCtx{aligns: cols.aligns, col: col}
			}
			r.node(c, localCols)
			col++
		}
		r.closeTag(atom.Tr)
	case TableHeadColKind:
		r.renderCell(n, atom.Th, cols)
	case TableDataColKind:
		r.renderCell(n, atom.Td, cols)
	case TextKind:
		r.dst = append(r.dst, escapeHTML(n.Text())...)
	case CharacterReferenceKind:
		r.dst = append(r.dst, escapeHTML(n.Text())...)
	case EmojiKind:
		r.dst = append(r.dst, n.Text()...)
	case SoftBreakKind:
		r.dst = append(r.dst, '\n')
	case HardBreakKind:
		r.dst = append(r.dst, "<br>\n"...)
	case EmphasisKind:
		r.openTag(atom.Em)
		r.childrenOf(n, nil)
		r.closeTag(atom.Em)
	case StrongKind:
		r.openTag(atom.Strong)
		r.childrenOf(n, nil)
		r.closeTag(atom.Strong)
	case StrikethroughKind:
		r.openTag(atom.Del)
		r.childrenOf(n, nil)
		r.closeTag(atom.Del)
	case HighlightingKind:
		r.openTag(atom.Mark)
		r.childrenOf(n, nil)
		r.closeTag(atom.Mark)
	case LinkKind:
		r.renderLink(n)
	case ImageKind:
		r.renderImage(n)
	case EmbedKind:
		r.renderEmbed(n)
	case TagKind:
		name := n.Text()
		r.openTagAttr(atom.A)
		r.attr("href", "#"+percentEncodeURI(name))
		r.attr("class", "tag")
		r.dst = append(r.dst, '>')
		r.dst = append(r.dst, '#')
		r.dst = append(r.dst, escapeHTML(name)...)
		r.closeTag(atom.A)
	case RawHTMLKind:
		if !r.IgnoreRaw {
			r.filterRaw([]byte(n.Text()))
		}
	}
}

func headingAtom(level int) atom.Atom {
	switch level {
	case 1:
		return atom.H1
	case 2:
		return atom.H2
	case 3:
		return atom.H3
	case 4:
		return atom.H4
	case 5:
		return atom.H5
	default:
		return atom.H6
	}
}

// headingSlug derives a GitHub-style anchor id from a heading's plain
// text: lowercased, whitespace collapsed to hyphens, everything but
// letters/digits/hyphens/underscores dropped.
func headingSlug(text string) string {
	var buf strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(text) {
		switch {
		case r == ' ' || r == '\t' || r == '\n':
			if !lastHyphen {
				buf.WriteByte('-')
				lastHyphen = true
			}
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-', r > 0x7f:
			buf.WriteRune(r)
			lastHyphen = r == '-'
		}
	}
	return strings.Trim(buf.String(), "-")
}

func (r *renderState) childrenOf(n Node, cols *colCtx) {
	for _, c := range n.Children() {
		r.node(c, cols)
	}
}

func (r *renderState) listItems(list Node, tight bool) {
	for _, item := range list.Children() {
		data, _ := item.Data().(*ListItemData)
		r.openTagAttr(atom.Li)
		if data != nil && data.HasCheckbox {
			r.attr("class", "task-list-item")
		}
		r.dst = append(r.dst, '>')
		if data != nil && data.HasCheckbox {
			r.dst = append(r.dst, `<input type="checkbox" disabled`...)
			if data.Checked {
				r.dst = append(r.dst, " checked"...)
			}
			r.dst = append(r.dst, "> "...)
		}
		for _, c := range item.Children() {
			if tight && c.Kind() == ParagraphKind {
				r.childrenOf(c, nil)
			} else {
				r.node(c, nil)
			}
		}
		r.closeTag(atom.Li)
	}
}

func (r *renderState) renderCode(n Node) {
	data, _ := n.Data().(*CodeData)
	if data != nil && data.Inline {
		r.openTag(atom.Code)
		r.dst = append(r.dst, escapeHTML(n.Text())...)
		r.closeTag(atom.Code)
		return
	}
	r.openTag(atom.Pre)
	r.openTagAttr(atom.Code)
	if data != nil && data.Info != "" {
		if lang := strings.Fields(data.Info); len(lang) > 0 {
			r.attr("class", "language-"+lang[0])
		}
	}
	r.dst = append(r.dst, '>')
	r.dst = append(r.dst, escapeHTML(n.Text())...)
	r.closeTag(atom.Code)
	r.closeTag(atom.Pre)
}

func (r *renderState) renderMath(n Node) {
	data, _ := n.Data().(*MathData)
	if data != nil && data.Block {
		r.openTagAttr(atom.Pre)
		r.attr("class", "math math-block")
		r.dst = append(r.dst, '>')
		r.dst = append(r.dst, escapeHTML(n.Text())...)
		r.closeTag(atom.Pre)
		return
	}
	r.openTagAttr(atom.Span)
	r.attr("class", "math math-inline")
	r.dst = append(r.dst, '>')
	r.dst = append(r.dst, escapeHTML(n.Text())...)
	r.closeTag(atom.Span)
}

func (r *renderState) renderCallout(n Node) {
	data, _ := n.Data().(*CalloutData)
	calloutType := "note"
	title := ""
	if data != nil {
		if data.Type != "" {
			calloutType = string(data.Type)
		} else if data.RawAlias != "" {
			calloutType = strings.ToLower(data.RawAlias)
		}
		title = data.Title
	}
	if title == "" {
		title = strings.ToUpper(calloutType[:1]) + calloutType[1:]
	}
	if data != nil && data.Foldable {
		r.openTagAttr(atom.Details)
		r.attr("class", "callout")
		r.attr("data-callout", calloutType)
		if !data.Folded {
			r.dst = append(r.dst, " open"...)
		}
		r.dst = append(r.dst, '>')
		r.openTagAttr(atom.Summary)
		r.attr("class", "callout-title")
		r.dst = append(r.dst, '>')
		r.dst = append(r.dst, escapeHTML(title)...)
		r.closeTag(atom.Summary)
		r.openTagAttr(atom.Div)
		r.attr("class", "callout-content")
		r.dst = append(r.dst, '>')
		r.childrenOf(n, nil)
		r.closeTag(atom.Div)
		r.closeTag(atom.Details)
		return
	}
	r.openTagAttr(atom.Div)
	r.attr("class", "callout")
	r.attr("data-callout", calloutType)
	r.dst = append(r.dst, '>')
	r.openTagAttr(atom.Div)
	r.attr("class", "callout-title")
	r.dst = append(r.dst, '>')
	r.dst = append(r.dst, escapeHTML(title)...)
	r.closeTag(atom.Div)
	r.openTagAttr(atom.Div)
	r.attr("class", "callout-content")
	r.dst = append(r.dst, '>')
	r.childrenOf(n, nil)
	r.closeTag(atom.Div)
	r.closeTag(atom.Div)
}

func (r *renderState) renderFootnoteList(n Node) {
	r.openTagAttr(atom.Section)
	r.attr("class", "footnotes")
	r.dst = append(r.dst, '>')
	r.openTag(atom.Ol)
	for _, def := range n.Children() {
		data, _ := def.Data().(*FootnoteData)
		index := 0
		if data != nil {
			index = data.Index
		}
		id := "fn:" + strconv.Itoa(index)
		r.openTagAttr(atom.Li)
		r.attr("id", id)
		r.dst = append(r.dst, '>')
		children := def.Children()
		for i, c := range children {
			if i == len(children)-1 && c.Kind() == ParagraphKind {
				r.openTag(atom.P)
				r.childrenOf(c, nil)
				r.dst = append(r.dst, ` <a href="#fnref:`...)
				r.dst = append(r.dst, strconv.Itoa(index)...)
				r.dst = append(r.dst, `" class="footnote-backref">↩</a>`...)
				r.closeTag(atom.P)
				continue
			}
			r.node(c, nil)
		}
		r.closeTag(atom.Li)
	}
	r.closeTag(atom.Ol)
	r.closeTag(atom.Section)
}

func (r *renderState) renderCell(n Node, tag atom.Atom, cols *colCtx) {
	r.openTagAttr(tag)
	if cols != nil && cols.col < len(cols.aligns) {
		if a := alignAttr(cols.aligns[cols.col]); a != "" {
			r.attr("align", a)
		}
	}
	r.dst = append(r.dst, '>')
	r.childrenOf(n, nil)
	r.closeTag(tag)
}

func (r *renderState) renderLink(n Node) {
	data, _ := n.Data().(*LinkData)
	if data != nil && data.Variant == FootnoteLink {
		idx := strconv.Itoa(data.FootnoteIndex)
		r.openTagAttr(atom.Sup)
		r.attr("id", "fnref:"+idx)
		r.dst = append(r.dst, '>')
		r.openTagAttr(atom.A)
		r.attr("href", "#fn:"+idx)
		r.attr("class", "footnote-ref")
		r.dst = append(r.dst, '>')
		r.dst = append(r.dst, escapeHTML(idx)...)
		r.closeTag(atom.A)
		r.closeTag(atom.Sup)
		return
	}
	r.openTagAttr(atom.A)
	if data != nil {
		r.attr("href", data.Destination)
		if data.TitlePresent {
			r.attr("title", data.Title)
		}
		if data.Variant == WikiLink {
			r.attr("class", "internal-link")
		}
	}
	r.dst = append(r.dst, '>')
	r.childrenOf(n, nil)
	r.closeTag(atom.A)
}

func (r *renderState) renderImage(n Node) {
	data, _ := n.Data().(*ImageData)
	r.openTagAttr(atom.Img)
	if data != nil {
		r.attr("src", data.Destination)
	}
	r.attr("alt", n.PlainText())
	if data != nil && data.TitlePresent {
		r.attr("title", data.Title)
	}
	r.dst = append(r.dst, '>')
}

func (r *renderState) renderEmbed(n Node) {
	data, _ := n.Data().(*EmbedData)
	if data == nil {
		return
	}
	lower := strings.ToLower(data.Path)
	isImage := strings.HasSuffix(lower, ".png") || strings.HasSuffix(lower, ".jpg") ||
		strings.HasSuffix(lower, ".jpeg") || strings.HasSuffix(lower, ".gif") ||
		strings.HasSuffix(lower, ".svg") || strings.HasSuffix(lower, ".webp")
	if !isImage {
		r.openTagAttr(atom.A)
		r.attr("class", "internal-embed")
		r.attr("href", percentEncodeURI(data.Path))
		r.dst = append(r.dst, '>')
		r.dst = append(r.dst, escapeHTML(data.Display)...)
		r.closeTag(atom.A)
		return
	}
	r.openTagAttr(atom.Img)
	r.attr("class", "internal-embed")
	r.attr("src", percentEncodeURI(data.Path))
	r.attr("alt", data.Display)
	if data.HasSize {
		r.attr("width", strconv.Itoa(data.Width))
		if data.Height > 0 {
			r.attr("height", strconv.Itoa(data.Height))
		}
	}
	for _, k := range sortedKeys(data.Attrs) {
		r.attr("data-"+k, data.Attrs[k])
	}
	r.dst = append(r.dst, '>')
}

// filterRaw copies rawHTML to dst, escaping the opening angle bracket of
// any tag FilterTag rejects (GFM's disallowed-raw-html extension). It
// cannot use a conventional HTML tokenizer since raw HTML in Markdown may
// be incomplete or start mid-tag.
func (r *renderState) filterRaw(rawHTML []byte) {
	if r.FilterTag == nil {
		r.dst = append(r.dst, rawHTML...)
		return
	}
	i := 0
	for i < len(rawHTML) {
		if rawHTML[i] != '<' {
			r.dst = append(r.dst, rawHTML[i])
			i++
			continue
		}
		tagStart := i + 1
		if tagStart < len(rawHTML) && rawHTML[tagStart] == '/' {
			tagStart++
		}
		j := tagStart
		for j < len(rawHTML) && isTagNameByte(rawHTML[j]) {
			j++
		}
		name := maybeLower(rawHTML[tagStart:j], &r.lowerBuf)
		if j > tagStart && r.FilterTag(name) {
			r.dst = append(r.dst, "&lt;"...)
			r.dst = append(r.dst, rawHTML[i+1:j]...)
		} else {
			r.dst = append(r.dst, rawHTML[i:j]...)
		}
		i = j
	}
}

func isTagNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '-'
}

func maybeLower(x []byte, buf *[]byte) []byte {
	hasUpper := false
	for _, b := range x {
		if b >= 'A' && b <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return x
	}
	*buf = (*buf)[:0]
	for _, b := range x {
		if b >= 'A' && b <= 'Z' {
			*buf = append(*buf, b-'A'+'a')
		} else {
			*buf = append(*buf, b)
		}
	}
	return *buf
}

// escapeHTML returns the HTML-escaped form of s, suitable for text-node
// content (not attribute values, which go through [renderState.attr]).
func escapeHTML(s string) string {
	var buf strings.Builder
	last := 0
	for i := 0; i < len(s); i++ {
		var esc string
		switch s[i] {
		case '&':
			esc = "&amp;"
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		case '"':
			esc = "&quot;"
		default:
			continue
		}
		buf.WriteString(s[last:i])
		buf.WriteString(esc)
		last = i + 1
	}
	if last == 0 {
		return s
	}
	buf.WriteString(s[last:])
	return buf.String()
}

// FilterTagGFM implements the same tag filtering as GitHub Flavored
// Markdown's tagfilter extension. It is suitable for use as
// [HTMLRenderer.FilterTag].
func FilterTagGFM(tag []byte) bool {
	tagAtom := atom.Lookup(tag)
	return tagAtom == atom.Title ||
		tagAtom == atom.Textarea ||
		tagAtom == atom.Style ||
		tagAtom == atom.Xmp ||
		tagAtom == atom.Iframe ||
		tagAtom == atom.Noembed ||
		tagAtom == atom.Noframes ||
		tagAtom == atom.Script ||
		tagAtom == atom.Plaintext
}
