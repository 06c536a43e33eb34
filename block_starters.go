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
	"strconv"
	"strings"
)

// tryThematicBreak recognizes a line of three or more matching `-`, `_`,
// or `*` characters, optionally space-separated.
func tryThematicBreak(p *blockParser) (openStatus, error) {
	if p.line.indent() >= 4 {
		return statusUnmatched, nil
	}
	snap := p.line.snapshot()
	p.line.skipIndent()
	marker := p.line.peek()
	if marker != '-' && marker != '_' && marker != '*' {
		p.line.resume(snap)
		return statusUnmatched, nil
	}
	count := 0
	for !p.line.atEnd() {
		b := p.line.take()
		switch {
		case b == marker:
			count++
		case b == ' ' || b == '\t':
		default:
			p.line.resume(snap)
			return statusUnmatched, nil
		}
	}
	if count < 3 {
		p.line.resume(snap)
		return statusUnmatched, nil
	}
	loc := p.line.locationAt(snap.cursor)
	if _, err := p.allocChild(p.container, node{kind: ThematicBreakKind, span: Range{Start: loc, End: p.line.locationAt(p.line.end)}}); err != nil {
		return statusUnmatched, err
	}
	return statusMatchedLeaf, nil
}

// tryATXHeading recognizes a 1-6 `#` ATX heading, with an optional closing
// run of `#` stripped along with surrounding spaces.
func tryATXHeading(p *blockParser) (openStatus, error) {
	if p.line.indent() >= 4 {
		return statusUnmatched, nil
	}
	snap := p.line.snapshot()
	p.line.skipIndent()
	loc := p.line.locationAt(snap.cursor)
	level := p.line.startsCount('#')
	if level < 1 || level > 6 {
		p.line.resume(snap)
		return statusUnmatched, nil
	}
	p.line.skip(level)
	if !p.line.atEnd() && p.line.peek() != ' ' && p.line.peek() != '\t' {
		p.line.resume(snap)
		return statusUnmatched, nil
	}
	p.line.advanceNextNonSpace()
	contentEnd := p.line.trimTrailingSpace()
	contentStart := p.line.cursor
	// Strip an optional trailing run of '#' that is itself preceded by a
	// space or at start of (trimmed) content.
	end := contentEnd
	for end > contentStart && p.line.src[end-1] == '#' {
		end--
	}
	if end < contentEnd && (end == contentStart || p.line.src[end-1] == ' ' || p.line.src[end-1] == '\t') {
		for end > contentStart && (p.line.src[end-1] == ' ' || p.line.src[end-1] == '\t') {
			end--
		}
		contentEnd = end
	}
	text := strings.TrimSpace(string(p.line.src[contentStart:contentEnd]))
	idx, err := p.allocChild(p.container, node{
		kind:    HeadingKind,
		span:    Range{Start: loc, End: p.line.locationAt(p.line.end)},
		data:    &HeadingData{Level: level},
	})
	if err != nil {
		return statusUnmatched, err
	}
	n := p.t.get(idx)
	n.text = text
	p.line.skip(p.line.end - p.line.cursor)
	return statusMatchedLeaf, nil
}

// trySetextHeading recognizes a `=` or `-` underline beneath the current
// Paragraph, converting it into a Setext Heading in place.
func trySetextHeading(p *blockParser) (openStatus, error) {
	if p.t.get(p.container).kind != ParagraphKind || p.line.indent() >= 4 {
		return statusUnmatched, nil
	}
	snap := p.line.snapshot()
	p.line.skipIndent()
	marker := p.line.peek()
	if marker != '=' && marker != '-' {
		p.line.resume(snap)
		return statusUnmatched, nil
	}
	n := p.line.startsCount(marker)
	p.line.skip(n)
	if !p.line.isRestBlank() {
		p.line.resume(snap)
		return statusUnmatched, nil
	}
	level := 2
	if marker == '=' {
		level = 1
	}
	cur := p.t.get(p.container)
	var buf strings.Builder
	for i, ls := range cur.lines {
		if i > 0 {
			buf.WriteByte('\n')
		}
		s := ls
		s.skipIndent()
		buf.Write(s.src[s.cursor:s.trimTrailingSpace()])
	}
	cur.kind = HeadingKind
	cur.data = &HeadingData{Level: level, Setext: true}
	cur.text = buf.String()
	cur.lines = nil
	p.line.skip(p.line.end - p.line.cursor)
	p.closeNode(p.container, p.line.locationAt(p.line.end))
	p.open = p.open[:len(p.open)-1]
	p.container = p.open[len(p.open)-1]
	return statusMatchedLeaf, nil
}

// tryBlockQuote recognizes a `>` container marker, optionally followed by
// one space.
func tryBlockQuote(p *blockParser) (openStatus, error) {
	if p.line.indent() >= 4 {
		return statusUnmatched, nil
	}
	snap := p.line.snapshot()
	p.line.advanceNextNonSpace()
	if p.line.peek() != '>' {
		p.line.resume(snap)
		return statusUnmatched, nil
	}
	loc := p.line.locationAt(snap.cursor)
	p.line.skip(1)
	if p.line.peek() == ' ' || p.line.peek() == '\t' {
		p.line.skip(1)
	}
	idx, err := p.allocChild(p.container, node{kind: BlockQuoteKind, processing: true, span: Range{Start: loc}})
	if err != nil {
		return statusUnmatched, err
	}
	p.pushContainer(idx)
	return statusMatchedContainer, nil
}

func contBlockQuote(p *blockParser, idx int) continueStatus {
	if p.line.indent() >= 4 {
		return statusUnprocessed
	}
	snap := p.line.snapshot()
	p.line.advanceNextNonSpace()
	if p.line.peek() != '>' {
		p.line.resume(snap)
		return statusUnprocessed
	}
	p.line.skip(1)
	if p.line.peek() == ' ' || p.line.peek() == '\t' {
		p.line.skip(1)
	}
	return statusFurther
}

// tryCallout recognizes Obsidian's `> [!type]` callout marker, a block
// quote whose first line carries a bracketed type annotation.
func tryCallout(p *blockParser) (openStatus, error) {
	if !p.opts.ObsidianFlavored || p.line.indent() >= 4 {
		return statusUnmatched, nil
	}
	snap := p.line.snapshot()
	p.line.advanceNextNonSpace()
	if p.line.peek() != '>' {
		p.line.resume(snap)
		return statusUnmatched, nil
	}
	loc := p.line.locationAt(snap.cursor)
	p.line.skip(1)
	if p.line.peek() == ' ' || p.line.peek() == '\t' {
		p.line.skip(1)
	}
	if p.line.peek() != '[' || p.line.peekAt(1) != '!' {
		p.line.resume(snap)
		return statusUnmatched, nil
	}
	p.line.skip(2)
	aliasStart := p.line.cursor
	closeRel := -1
	for i := 0; i+p.line.cursor < p.line.end; i++ {
		if p.line.src[p.line.cursor+i] == ']' {
			closeRel = i
			break
		}
	}
	if closeRel < 0 {
		p.line.resume(snap)
		return statusUnmatched, nil
	}
	alias := string(p.line.src[aliasStart : p.line.cursor+closeRel])
	p.line.skip(closeRel + 1)
	foldable := false
	folded := false
	if b := p.line.peek(); b == '+' || b == '-' {
		foldable = true
		folded = b == '-'
		p.line.skip(1)
	}
	if p.line.peek() == ' ' || p.line.peek() == '\t' {
		p.line.skip(1)
	}
	title := strings.TrimSpace(string(p.line.rest()))
	p.line.skip(p.line.end - p.line.cursor)

	idx, err := p.allocChild(p.container, node{
		kind:       CalloutKind,
		processing: true,
		span:       Range{Start: loc},
		data: &CalloutData{
			Type:     resolveCalloutAlias(alias),
			RawAlias: alias,
			Title:    title,
			Foldable: foldable,
			Folded:   folded,
		},
	})
	if err != nil {
		return statusUnmatched, err
	}
	p.pushContainer(idx)
	return statusMatchedContainer, nil
}

var calloutAliases = map[string]CalloutType{
	"note": CalloutNote, "abstract": CalloutAbstract, "summary": CalloutAbstract, "tldr": CalloutAbstract,
	"info": CalloutInfo, "todo": CalloutTodo,
	"tip": CalloutTip, "hint": CalloutTip, "important": CalloutTip,
	"success": CalloutSuccess, "check": CalloutSuccess, "done": CalloutSuccess,
	"question": CalloutQuestion, "help": CalloutQuestion, "faq": CalloutQuestion,
	"warning": CalloutWarning, "caution": CalloutWarning, "attention": CalloutWarning,
	"failure": CalloutFailure, "fail": CalloutFailure, "missing": CalloutFailure,
	"danger": CalloutDanger, "error": CalloutDanger,
	"bug":     CalloutBug,
	"example": CalloutExample,
	"quote":   CalloutQuote, "cite": CalloutQuote,
}

func resolveCalloutAlias(alias string) CalloutType {
	if t, ok := calloutAliases[strings.ToLower(alias)]; ok {
		return t
	}
	return CalloutCustom
}

// tryFencedCode recognizes a fence of three or more backticks or tildes.
func tryFencedCode(p *blockParser) (openStatus, error) {
	if p.line.indent() >= 4 {
		return statusUnmatched, nil
	}
	snap := p.line.snapshot()
	indent := p.line.indent()
	p.line.skipIndent()
	loc := p.line.locationAt(snap.cursor)
	marker := p.line.peek()
	if marker != '`' && marker != '~' {
		p.line.resume(snap)
		return statusUnmatched, nil
	}
	length := p.line.startsCount(marker)
	if length < 3 {
		p.line.resume(snap)
		return statusUnmatched, nil
	}
	p.line.skip(length)
	infoStart := p.line.cursor
	if marker == '`' {
		for i := p.line.cursor; i < p.line.end; i++ {
			if p.line.src[i] == '`' {
				p.line.resume(snap)
				return statusUnmatched, nil
			}
		}
	}
	info := strings.TrimSpace(string(p.line.src[infoStart:p.line.trimTrailingSpace()]))
	idx, err := p.allocChild(p.container, node{
		kind:       CodeKind,
		processing: true,
		span:       Range{Start: loc},
		data: &CodeData{
			Fenced: true, FenceByte: marker, FenceLen: length, IndentStrip: indent, Info: info,
		},
	})
	if err != nil {
		return statusUnmatched, err
	}
	p.pushContainer(idx)
	return statusMatchedLeaf, nil
}

func contCode(p *blockParser, idx int) continueStatus {
	data, ok := p.t.get(idx).data.(*CodeData)
	if !ok || !data.Fenced {
		if p.line.isRestBlank() {
			return statusFurther
		}
		if p.line.indent() < 4 {
			return statusUnprocessed
		}
		p.line.skipSpacesByColumns(4)
		return statusFurther
	}
	snap := p.line.snapshot()
	p.line.skipIndent()
	length := p.line.startsCount(data.FenceByte)
	if length >= data.FenceLen && p.line.advanceRestBlankAfter(length) {
		p.line.resume(snap)
		p.closeNode(idx, p.line.locationAt(p.line.end))
		return statusProcessed
	}
	p.line.resume(snap)
	p.line.skipSpacesByColumns(data.IndentStrip)
	return statusFurther
}

func onCloseCode(p *blockParser, idx int) {
	n := p.t.get(idx)
	data, _ := n.data.(*CodeData)
	if data != nil && data.Fenced && len(n.lines) > 0 {
		n.lines = n.lines[1:] // the opening fence line; its info string is in data.Info
	}
	if data != nil && !data.Fenced {
		for len(n.lines) > 0 && n.lines[len(n.lines)-1].isRestBlank() {
			n.lines = n.lines[:len(n.lines)-1]
		}
	}
	var buf strings.Builder
	for _, ls := range n.lines {
		buf.Write(ls.src[ls.cursor:ls.end])
		buf.WriteByte('\n')
	}
	n.text = buf.String()
	n.lines = nil
}

// tryIndentedCode recognizes a 4-space indented line that cannot interrupt
// a paragraph.
func tryIndentedCode(p *blockParser) (openStatus, error) {
	if p.line.indent() < 4 || p.t.get(p.container).kind == ParagraphKind || p.line.isRestBlank() {
		return statusUnmatched, nil
	}
	loc := p.line.locationAt(p.line.cursor)
	p.line.skipSpacesByColumns(4)
	idx, err := p.allocChild(p.container, node{kind: CodeKind, processing: true, span: Range{Start: loc}, data: &CodeData{}})
	if err != nil {
		return statusUnmatched, err
	}
	p.pushContainer(idx)
	return statusMatchedLeaf, nil
}

// onCloseHTML joins an HTML block's buffered lines verbatim; CommonMark
// passes block HTML through unescaped and without inline parsing.
func onCloseHTML(p *blockParser, idx int) {
	n := p.t.get(idx)
	var buf strings.Builder
	for _, ls := range n.lines {
		buf.Write(ls.src[ls.start:ls.end])
		buf.WriteByte('\n')
	}
	n.text = buf.String()
	n.lines = nil
}

// onCloseMathBlock joins an Obsidian math block's buffered lines verbatim,
// leaving out the opening `$$` line; the formula text is rendered as-is,
// with no inline parsing.
func onCloseMathBlock(p *blockParser, idx int) {
	n := p.t.get(idx)
	if len(n.lines) > 0 {
		n.lines = n.lines[1:]
	}
	var buf strings.Builder
	for i, ls := range n.lines {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.Write(ls.src[ls.start:ls.end])
	}
	n.text = buf.String()
	n.lines = nil
}

func contHTML(p *blockParser, idx int) continueStatus {
	if p.line.isRestBlank() {
		return statusUnprocessed
	}
	return statusFurther
}

func contParagraph(p *blockParser, idx int) continueStatus {
	if p.line.isRestBlank() {
		return statusUnprocessed
	}
	return statusFurther
}

func onCloseParagraph(p *blockParser, idx int) {
	n := p.t.get(idx)
	var buf strings.Builder
	for i, ls := range n.lines {
		if i > 0 {
			buf.WriteByte('\n')
		}
		s := ls
		s.skipIndent()
		buf.Write(s.src[s.cursor:s.trimTrailingSpace()])
	}
	n.text = buf.String()
}

func contMathBlock(p *blockParser, idx int) continueStatus {
	snap := p.line.snapshot()
	p.line.skipIndent()
	if p.line.startsWithBytes([]byte("$$")) {
		p.line.resume(snap)
		p.closeNode(idx, p.line.locationAt(p.line.end))
		return statusProcessed
	}
	p.line.resume(snap)
	return statusFurther
}

// tryMathBlockStart recognizes a `$$` fence opening an Obsidian math block.
func tryMathBlockStart(p *blockParser) (openStatus, error) {
	if !p.opts.ObsidianFlavored || p.line.indent() >= 4 {
		return statusUnmatched, nil
	}
	snap := p.line.snapshot()
	p.line.skipIndent()
	loc := p.line.locationAt(snap.cursor)
	if !p.line.startsWithBytes([]byte("$$")) {
		p.line.resume(snap)
		return statusUnmatched, nil
	}
	p.line.skip(2)
	if !p.line.isRestBlank() {
		p.line.resume(snap)
		return statusUnmatched, nil
	}
	idx, err := p.allocChild(p.container, node{kind: MathKind, processing: true, span: Range{Start: loc}, data: &MathData{Block: true}})
	if err != nil {
		return statusUnmatched, err
	}
	p.pushContainer(idx)
	return statusMatchedLeaf, nil
}

// tryFootnoteDefinition recognizes `[^label]:` at the start of a line.
func tryFootnoteDefinition(p *blockParser) (openStatus, error) {
	if !p.opts.GithubFlavored || p.line.indent() >= 4 {
		return statusUnmatched, nil
	}
	snap := p.line.snapshot()
	p.line.advanceNextNonSpace()
	loc := p.line.locationAt(snap.cursor)
	if p.line.peek() != '[' || p.line.peekAt(1) != '^' {
		p.line.resume(snap)
		return statusUnmatched, nil
	}
	p.line.skip(2)
	labelStart := p.line.cursor
	end := -1
	for i := p.line.cursor; i < p.line.end-1; i++ {
		if p.line.src[i] == ']' && p.line.src[i+1] == ':' {
			end = i
			break
		}
		if p.line.src[i] == '[' {
			p.line.resume(snap)
			return statusUnmatched, nil
		}
	}
	if end < 0 {
		p.line.resume(snap)
		return statusUnmatched, nil
	}
	label := string(p.line.src[labelStart:end])
	p.line.skip(end - p.line.cursor + 2)
	idx, err := p.allocChild(p.container, node{
		kind: FootnoteKind, processing: true, span: Range{Start: loc},
		data: &FootnoteData{Label: label},
	})
	if err != nil {
		return statusUnmatched, err
	}
	p.pushContainer(idx)
	return statusMatchedContainer, nil
}

func contListItem(p *blockParser, idx int) continueStatus {
	data, ok := p.t.get(idx).data.(*ListItemData)
	if !ok {
		// A footnote definition continues on blank lines and on lines
		// indented by four or more columns.
		if p.line.isRestBlank() {
			return statusFurther
		}
		if p.line.indentCols >= 4 {
			p.line.skipSpacesByColumns(4)
			return statusFurther
		}
		return statusUnprocessed
	}
	if p.line.isRestBlank() {
		return statusFurther
	}
	if p.line.indentCols >= data.ContentColumn {
		p.line.skipSpacesByColumns(data.ContentColumn)
		return statusFurther
	}
	return statusUnprocessed
}

func contTableRow(p *blockParser, idx int) continueStatus {
	return statusFurther
}

// tryTableDelimiterRow recognizes a GFM table delimiter row
// (`| --- | :---: |`) immediately below a one-line paragraph, converting
// that paragraph into a table head.
func tryTableDelimiterRow(p *blockParser) (openStatus, error) {
	if !p.opts.GithubFlavored {
		return statusUnmatched, nil
	}
	container := p.t.get(p.container)
	if container.kind != ParagraphKind || len(container.lines) != 1 {
		return statusUnmatched, nil
	}
	aligns, ok := parseTableDelimiterRow(p.line)
	if !ok {
		return statusUnmatched, nil
	}
	headerLine := container.lines[0]
	cells := splitTableRow(headerLine)
	if len(cells) == 0 {
		return statusUnmatched, nil
	}
	for len(aligns) < len(cells) {
		aligns = append(aligns, AlignNone)
	}
	aligns = aligns[:len(cells)]

	paragraphIdx := p.container
	parent := p.t.parentOf(paragraphIdx)
	loc := container.span.Start
	p.t.unlink(paragraphIdx)
	tableIdx, err := p.allocChild(parent, node{kind: TableKind, span: Range{Start: loc}, data: &TableData{ColumnCount: len(cells), Alignments: aligns}})
	if err != nil {
		return statusUnmatched, err
	}
	headIdx, err := p.allocChild(tableIdx, node{kind: TableHeadKind})
	if err != nil {
		return statusUnmatched, err
	}
	headRowIdx, err := p.allocChild(headIdx, node{kind: TableRowKind})
	if err != nil {
		return statusUnmatched, err
	}
	for _, cell := range cells {
		if _, err := p.allocChild(headRowIdx, node{kind: TableHeadColKind, text: cell}); err != nil {
			return statusUnmatched, err
		}
	}
	bodyIdx, err := p.allocChild(tableIdx, node{kind: TableBodyKind, processing: true})
	if err != nil {
		return statusUnmatched, err
	}

	p.closeNode(p.container, p.line.locationAt(p.line.end))
	p.open = p.open[:len(p.open)-1]
	p.open = append(p.open, tableIdx, bodyIdx)
	p.container = bodyIdx
	p.line.skip(p.line.end - p.line.cursor)
	return statusMatchedLeaf, nil
}

// addTableDataRow splits the current line into a TableRow of TableDataCol
// cells under the open TableBody, padding or truncating to the table's
// declared column count.
func (p *blockParser) addTableDataRow() {
	tableIdx := p.t.parentOf(p.container)
	data, _ := p.t.get(tableIdx).data.(*TableData)
	cells := splitTableRow(p.line)
	rowIdx, err := p.allocChild(p.container, node{kind: TableRowKind})
	if err != nil {
		return
	}
	count := 0
	if data != nil {
		count = data.ColumnCount
	}
	for i := 0; i < count; i++ {
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		if _, err := p.allocChild(rowIdx, node{kind: TableDataColKind, text: text}); err != nil {
			return
		}
	}
}

func parseTableDelimiterRow(line lineSpan) ([]TableAlignment, bool) {
	s := line
	s.skipIndent()
	var aligns []TableAlignment
	s.consumeIfByte('|')
	sawCell := false
	for {
		s.advanceNextNonSpace()
		if s.atEnd() {
			break
		}
		left := s.consumeIfByte(':')
		n := s.startsCount('-')
		if n == 0 {
			return nil, false
		}
		s.skip(n)
		right := s.consumeIfByte(':')
		sawCell = true
		switch {
		case left && right:
			aligns = append(aligns, AlignCenter)
		case right:
			aligns = append(aligns, AlignRight)
		case left:
			aligns = append(aligns, AlignLeft)
		default:
			aligns = append(aligns, AlignNone)
		}
		s.advanceNextNonSpace()
		if s.consumeIfByte('|') {
			continue
		}
		break
	}
	return aligns, sawCell && s.atEnd()
}

// splitTableRow splits a `|`-delimited table row into trimmed cell texts,
// honoring backslash-escaped pipes.
func splitTableRow(line lineSpan) []string {
	s := line
	s.skipIndent()
	s.consumeIfByte('|')
	end := s.trimTrailingSpace()
	raw := s.src[s.cursor:end]
	if len(raw) > 0 && raw[len(raw)-1] == '|' && (len(raw) < 2 || raw[len(raw)-2] != '\\') {
		raw = raw[:len(raw)-1]
	}
	var cells []string
	var cur []byte
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) && raw[i+1] == '|' {
			cur = append(cur, '|')
			i++
			continue
		}
		if raw[i] == '|' {
			cells = append(cells, strings.TrimSpace(string(cur)))
			cur = cur[:0]
			continue
		}
		cur = append(cur, raw[i])
	}
	cells = append(cells, strings.TrimSpace(string(cur)))
	return cells
}

// tryFrontMatter recognizes a `---` (or `+++`) fence on the document's
// very first line. Front matter is an Obsidian extension.
func tryFrontMatter(p *blockParser) (openStatus, error) {
	if !p.opts.ObsidianFlavored || !p.atDocStart || p.lineNo != 1 {
		return statusUnmatched, nil
	}
	snap := p.line.snapshot()
	var fence string
	switch {
	case p.line.startsWithBytes([]byte("---")):
		fence = "---"
	case p.line.startsWithBytes([]byte("+++")):
		fence = "+++"
	default:
		return statusUnmatched, nil
	}
	rest := p.line.src[p.line.cursor+len(fence) : p.line.end]
	if strings.TrimSpace(string(rest)) != "" {
		p.line.resume(snap)
		return statusUnmatched, nil
	}
	loc := p.line.locationAt(snap.cursor)
	idx, err := p.allocChild(p.container, node{kind: FrontMatterKind, processing: true, span: Range{Start: loc}, text: fence})
	if err != nil {
		return statusUnmatched, err
	}
	p.pushContainer(idx)
	return statusMatchedLeaf, nil
}

func contFrontMatter(p *blockParser, idx int) continueStatus {
	fence := p.t.get(idx).text
	if p.line.startsWithBytes([]byte(fence)) && strings.TrimSpace(string(p.line.rest()[len(fence):])) == "" {
		p.closeNode(idx, p.line.locationAt(p.line.end))
		return statusProcessed
	}
	return statusFurther
}

const (
	htmlClassPreLike HTMLBlockClass = 1 + iota
	htmlClassComment
	htmlClassProcessingInstruction
	htmlClassDeclaration
	htmlClassCDATA
	htmlClassKnownTag
	htmlClassGenericTag
	htmlClassBlank
)

var htmlRawStartTags = []string{"script", "pre", "style", "textarea"}

// tryHTMLBlockStart recognizes the subset of CommonMark's seven HTML block
// start conditions anchored on a recognizable opening token.
func tryHTMLBlockStart(p *blockParser) (openStatus, error) {
	if p.line.indent() >= 4 {
		return statusUnmatched, nil
	}
	snap := p.line.snapshot()
	s := p.line
	s.skipIndent()
	if s.peek() != '<' {
		return statusUnmatched, nil
	}
	loc := p.line.locationAt(snap.cursor)
	rest := s.src[s.cursor:s.end]
	class := HTMLBlockClass(0)
	switch {
	case hasCIPrefix(rest, "<!--"):
		class = htmlClassComment
	case hasCIPrefix(rest, "<?"):
		class = htmlClassProcessingInstruction
	case hasCIPrefix(rest, "<!") && len(rest) > 2 && isASCIIUpper(rest[2]):
		class = htmlClassDeclaration
	case hasCIPrefix(rest, "<![CDATA["):
		class = htmlClassCDATA
	default:
		tag, _ := scanHTMLTagName(rest)
		if tag == "" {
			return statusUnmatched, nil
		}
		for _, raw := range htmlRawStartTags {
			if strings.EqualFold(tag, raw) {
				class = htmlClassPreLike
				break
			}
		}
		if class == 0 {
			if p.t.get(p.container).kind == ParagraphKind {
				return statusUnmatched, nil
			}
			class = htmlClassGenericTag
		}
	}
	idx, err := p.allocChild(p.container, node{kind: HTMLKind, processing: true, span: Range{Start: loc}, data: &HTMLData{Class: class}})
	if err != nil {
		return statusUnmatched, err
	}
	p.pushContainer(idx)
	return statusMatchedLeaf, nil
}

func hasCIPrefix(b []byte, prefix string) bool {
	if len(b) < len(prefix) {
		return false
	}
	return strings.EqualFold(string(b[:len(prefix)]), prefix)
}

func isASCIIUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

func scanHTMLTagName(b []byte) (string, int) {
	i := 0
	if i < len(b) && b[i] == '<' {
		i++
	}
	if i < len(b) && b[i] == '/' {
		i++
	}
	start := i
	for i < len(b) && (isAlnum(b[i]) || b[i] == '-') {
		i++
	}
	return string(b[start:i]), i
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

// tryListItem recognizes a bullet (`-`, `+`, `*`), ordered (`N.`/`N)`), or
// GFM task-list marker beginning a list item, opening or reusing an
// enclosing List as needed.
func tryListItem(p *blockParser) (openStatus, error) {
	if p.line.indent() >= 4 {
		return statusUnmatched, nil
	}
	snap := p.line.snapshot()
	s := &p.line
	s.skipIndent()

	var style ListMarkerStyle
	var markerByte byte
	var number int
	switch b := s.peek(); {
	case b == '-' || b == '+' || b == '*':
		style = BulletMarker
		markerByte = b
		s.skip(1)
	case b >= '0' && b <= '9':
		digits := 0
		for s.peekAt(digits) >= '0' && s.peekAt(digits) <= '9' {
			digits++
		}
		if digits == 0 || digits > 9 {
			p.line.resume(snap)
			return statusUnmatched, nil
		}
		numStr := string(s.src[s.cursor : s.cursor+digits])
		n, _ := strconv.Atoi(numStr)
		number = n
		s.skip(digits)
		b2 := s.peek()
		if b2 != '.' && b2 != ')' {
			p.line.resume(snap)
			return statusUnmatched, nil
		}
		style = OrderedMarker
		markerByte = b2
		s.skip(1)
	default:
		p.line.resume(snap)
		return statusUnmatched, nil
	}

	if p.t.get(p.container).kind == ParagraphKind && style == BulletMarker && s.isRestBlank() {
		p.line.resume(snap)
		return statusUnmatched, nil // rule 1 exception: bare "- " can't interrupt a paragraph
	}

	if s.atEnd() {
		// marker alone on the line: content column is one past the marker
	} else if s.peek() != ' ' && s.peek() != '\t' {
		p.line.resume(snap)
		return statusUnmatched, nil
	}

	columnAt := func() int { return int(s.locationAt(s.cursor).Column - s.startColumn) }
	afterMarker := s.snapshot()
	var contentCol int
	if !s.atEnd() {
		taken := s.skipSpacesByColumns(5)
		if taken == 0 {
			taken = 1 // shouldn't happen; at least one separator byte required
		}
		if s.isRestBlank() {
			s.resume(afterMarker)
			taken = 1
			s.skip(1)
		}
		contentCol = columnAt()
	} else {
		contentCol = columnAt() + 1
	}

	checked, hasCheckbox := false, false
	if p.opts.GithubFlavored && !s.atEnd() {
		probe := s.snapshot()
		if s.peek() == '[' && (s.peekAt(1) == ' ' || s.peekAt(1) == 'x' || s.peekAt(1) == 'X') && s.peekAt(2) == ']' {
			hasCheckbox = true
			checked = s.peekAt(1) == 'x' || s.peekAt(1) == 'X'
			s.skip(3)
			if s.peek() == ' ' || s.peek() == '\t' {
				s.skip(1)
			}
			contentCol = columnAt()
		} else {
			s.resume(probe)
		}
	}

	loc := p.line.locationAt(snap.cursor)

	listParent := p.container
	needNewList := true
	sameStyleList := false
	if lst := p.t.get(p.container); lst.kind == ListKind {
		if data := lst.data.(*ListData); data.Style == style && (style != OrderedMarker || data.MarkerByte == markerByte) {
			needNewList = false
			sameStyleList = true
			if p.lastWasBlank {
				data.Tight = false
			}
		}
	}
	if needNewList && p.t.get(p.container).kind == ListKind && !sameStyleList {
		// A marker-style change starts a new list as a sibling of the old
		// one, rather than nesting inside it.
		end := p.line.locationAt(p.line.cursor)
		p.closeNode(p.container, end)
		p.open = p.open[:len(p.open)-1]
		listParent = p.open[len(p.open)-1]
		p.container = listParent
	}
	if needNewList {
		start := 1
		if style == OrderedMarker {
			start = number
		}
		listIdx, err := p.allocChild(listParent, node{kind: ListKind, processing: true, span: Range{Start: loc}, data: &ListData{Style: style, MarkerByte: markerByte, Start: start, Tight: true}})
		if err != nil {
			return statusUnmatched, err
		}
		p.pushContainer(listIdx)
	}
	itemIdx, err := p.allocChild(p.container, node{
		kind: ListItemKind, processing: true, span: Range{Start: loc},
		data: &ListItemData{Style: style, MarkerByte: markerByte, Number: number, Checked: checked, HasCheckbox: hasCheckbox, ContentColumn: contentCol},
	})
	if err != nil {
		return statusUnmatched, err
	}
	p.pushContainer(itemIdx)
	return statusMatchedContainer, nil
}
