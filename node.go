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

// NodeKind tags the variant a [Node] holds. The zero value is invalid;
// real nodes always carry one of the named constants.
type NodeKind uint8

const (
	// Containers.
	DocumentKind NodeKind = 1 + iota
	BlockQuoteKind
	ListKind
	ListItemKind
	CalloutKind
	FootnoteKind
	FootnoteListKind
	TableKind
	TableHeadKind
	TableBodyKind
	TableRowKind
	ParagraphKind
	HeadingKind

	// Leaves that accept raw lines.
	CodeKind
	HTMLKind
	MathKind
	TableHeadColKind
	TableDataColKind
	FrontMatterKind

	// Inlines.
	TextKind
	SoftBreakKind
	HardBreakKind
	EmphasisKind
	StrongKind
	StrikethroughKind
	HighlightingKind
	LinkKind
	ImageKind
	EmbedKind
	TagKind
	EmojiKind
	ThematicBreakKind
	CharacterReferenceKind
	RawHTMLKind
)

var nodeKindNames = map[NodeKind]string{
	DocumentKind:                "Document",
	BlockQuoteKind:               "BlockQuote",
	ListKind:                     "List",
	ListItemKind:                 "ListItem",
	CalloutKind:                  "Callout",
	FootnoteKind:                 "Footnote",
	FootnoteListKind:             "FootnoteList",
	TableKind:                    "Table",
	TableHeadKind:                "TableHead",
	TableBodyKind:                "TableBody",
	TableRowKind:                 "TableRow",
	ParagraphKind:                "Paragraph",
	HeadingKind:                  "Heading",
	CodeKind:                     "Code",
	HTMLKind:                     "Html",
	MathKind:                     "Math",
	TableHeadColKind:             "TableHeadCol",
	TableDataColKind:             "TableDataCol",
	FrontMatterKind:              "FrontMatter",
	TextKind:                     "Text",
	SoftBreakKind:                "SoftBreak",
	HardBreakKind:                "HardBreak",
	EmphasisKind:                 "Emphasis",
	StrongKind:                   "Strong",
	StrikethroughKind:            "Strikethrough",
	HighlightingKind:             "Highlighting",
	LinkKind:                     "Link",
	ImageKind:                    "Image",
	EmbedKind:                    "Embed",
	TagKind:                      "Tag",
	EmojiKind:                    "Emoji",
	ThematicBreakKind:            "ThematicBreak",
	CharacterReferenceKind:       "CharacterReference",
	RawHTMLKind:                  "RawHTML",
}

func (k NodeKind) String() string {
	if s, ok := nodeKindNames[k]; ok {
		return s
	}
	return "NodeKind(0)"
}

// isContainer reports whether nodes of kind k may have children.
func (k NodeKind) isContainer() bool {
	switch k {
	case DocumentKind, BlockQuoteKind, ListKind, ListItemKind, CalloutKind,
		FootnoteKind, FootnoteListKind, TableKind, TableHeadKind, TableBodyKind,
		TableRowKind, ParagraphKind, HeadingKind:
		return true
	}
	return false
}

// acceptsLines reports whether nodes of kind k directly buffer raw input
// lines during the block phase.
func (k NodeKind) acceptsLines() bool {
	switch k {
	case CodeKind, HTMLKind, MathKind, TableHeadColKind, TableDataColKind,
		ParagraphKind, HeadingKind, FrontMatterKind:
		return true
	}
	return false
}

// node is one arena slot's payload: its kind, source range, processing
// state, optional Obsidian block id, and kind-specific data.
type node struct {
	kind       NodeKind
	span       Range
	processing bool
	blockID    string

	data any // one of the *Data structs below, or nil

	// text holds literal content for Text/CharacterReference/RawHTML/Tag/
	// Emoji/Code nodes and the content of a Code/Math block.
	text string

	// lines buffers raw source lines for leaf kinds during the block
	// phase; it is consumed and cleared by the inline phase.
	lines []lineSpan

	lastLineBlank bool
}

// HeadingData carries ATX/Setext heading specifics.
type HeadingData struct {
	Level  int
	Setext bool
}

// ListMarkerStyle distinguishes bullet, ordered, and task-list markers.
type ListMarkerStyle uint8

const (
	BulletMarker ListMarkerStyle = iota
	OrderedMarker
	TaskMarker
)

// ListData carries list-level layout: marker style, byte, and whether the
// list renders tight (no <p> wrappers between items). Tight is cleared when
// a blank line separates two of the list's items; a blank line between two
// blocks inside one item does not clear it.
type ListData struct {
	Style      ListMarkerStyle
	MarkerByte byte // '-', '+', '*', '.', or ')'
	Start      int  // first item's ordered number; 1 if unspecified
	Tight      bool
}

// ListItemData carries one item's marker and continuation indent.
type ListItemData struct {
	Style          ListMarkerStyle
	MarkerByte     byte
	Number         int // ordered number of this item
	Checked        bool
	HasCheckbox    bool
	ContentColumn  int // column at which content (and continuations) begin
	MarkerWidth    int // bytes occupied by the marker + following spaces
}

// CodeData carries code-block and inline code-span specifics.
type CodeData struct {
	Inline    bool
	Fenced    bool
	FenceByte byte
	FenceLen  int
	IndentStrip int
	Info      string // raw info string; first word is the language
}

// HTMLBlockClass identifies which of CommonMark's seven HTML block
// conditions opened this block.
type HTMLBlockClass int

// HTMLData carries raw-HTML specifics.
type HTMLData struct {
	Inline bool
	Class  HTMLBlockClass
}

// MathData distinguishes inline vs. block math.
type MathData struct {
	Block bool
}

// LinkVariant distinguishes the three kinds of link inline nodes.
type LinkVariant uint8

const (
	DefaultLink LinkVariant = iota
	WikiLink
	FootnoteLink
)

// LinkData carries link destination/title and which syntax produced it.
type LinkData struct {
	Variant     LinkVariant
	Destination string
	Title       string
	TitlePresent bool
	FootnoteIndex int // 1-based, assigned on first reference
}

// ImageData carries image destination/title.
type ImageData struct {
	Destination string
	Title       string
	TitlePresent bool
}

// EmbedData carries an Obsidian embed's target and display options.
type EmbedData struct {
	Path      string
	Heading   string
	BlockRef  string
	Display   string
	Width     int
	Height    int
	HasSize   bool
	Attrs     map[string]string
}

// CalloutType enumerates the canonical Obsidian callout kinds a type
// alias resolves to.
type CalloutType string

const (
	CalloutNote      CalloutType = "note"
	CalloutAbstract  CalloutType = "abstract"
	CalloutInfo      CalloutType = "info"
	CalloutTodo      CalloutType = "todo"
	CalloutTip       CalloutType = "tip"
	CalloutSuccess   CalloutType = "success"
	CalloutQuestion  CalloutType = "question"
	CalloutWarning   CalloutType = "warning"
	CalloutFailure   CalloutType = "failure"
	CalloutDanger    CalloutType = "danger"
	CalloutBug       CalloutType = "bug"
	CalloutExample   CalloutType = "example"
	CalloutQuote     CalloutType = "quote"
	CalloutCustom    CalloutType = "" // RawAlias holds the literal alias text
)

// CalloutData carries a callout's resolved type, fold state, and title.
type CalloutData struct {
	Type      CalloutType
	RawAlias  string // the literal text between [! and ]
	Title     string
	Foldable  bool
	Folded    bool
}

// FootnoteData carries a footnote definition's label and use count.
type FootnoteData struct {
	Label    string
	RefCount int
	Index    int
}

// TableData carries column count and per-column alignment.
type TableData struct {
	ColumnCount int
	Alignments  []TableAlignment
}

// TableAlignment is a table column's declared alignment.
type TableAlignment uint8

const (
	AlignNone TableAlignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)
