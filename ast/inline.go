//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast

// Definitions of inline nodes.

// TextNode just contains some text.
type TextNode struct {
	Text string // The text itself.
}

func (*TextNode) inlineNode() {}

// WalkChildren does nothing.
func (*TextNode) WalkChildren(Visitor) { /* No children*/ }

// --------------------------------------------------------------------------

// SpaceNode tracks inter-word space characters.
type SpaceNode struct {
	Lexeme string
}

func (*SpaceNode) inlineNode() {}

// WalkChildren does nothing.
func (*SpaceNode) WalkChildren(Visitor) { /* No children*/ }

// --------------------------------------------------------------------------

// BreakNode signals a new line that must / should be interpreted as a new
// line break.
type BreakNode struct {
	Hard bool // Hard line break?
}

func (*BreakNode) inlineNode() {}

// WalkChildren does nothing.
func (*BreakNode) WalkChildren(Visitor) { /* No children*/ }

// --------------------------------------------------------------------------

// LinkNode contains the specified link.
type LinkNode struct {
	Ref     *Reference
	Inlines InlineSlice // The text associated with the link.
	Attrs   Attributes  // Optional attributes
}

func (*LinkNode) inlineNode() {}

// WalkChildren walks to the link text.
func (ln *LinkNode) WalkChildren(v Visitor) {
	if len(ln.Inlines) > 0 {
		Walk(v, &ln.Inlines)
	}
}

// --------------------------------------------------------------------------

// FootnoteNode contains an inline footnote definition.
type FootnoteNode struct {
	Label   string      // Footnote label, empty for anonymous footnotes
	Inlines InlineSlice // The footnote text.
}

func (*FootnoteNode) inlineNode() {}

// WalkChildren walks to the footnote text.
func (fn *FootnoteNode) WalkChildren(v Visitor) { Walk(v, &fn.Inlines) }

// --------------------------------------------------------------------------

// FootnoteRefNode references a footnote definition by its label.
type FootnoteRefNode struct {
	Label string
}

func (*FootnoteRefNode) inlineNode() {}

// WalkChildren does nothing.
func (*FootnoteRefNode) WalkChildren(Visitor) { /* No children*/ }

// --------------------------------------------------------------------------

// MarkNode contains a marked position within the document.
type MarkNode struct {
	Mark     string // The mark text itself
	Slug     string // Slugified mark text
	Fragment string // Unique fragment identifier within the document
}

func (*MarkNode) inlineNode() {}

// WalkChildren does nothing.
func (*MarkNode) WalkChildren(Visitor) { /* No children*/ }

// --------------------------------------------------------------------------

// FormatNode specifies some inline formatting.
type FormatNode struct {
	Kind    FormatKind
	Attrs   Attributes // Optional attributes.
	Inlines InlineSlice
}

// FormatKind specifies the format that is applied to the inline nodes.
type FormatKind int

// Constants for FormatKind
const (
	_            FormatKind = iota
	FormatBold              // Bold text.
	FormatItalic            // Italic text.
	FormatUnder             // Underlined text.
	FormatStrike            // Text that is no longer relevant or accurate.
)

func (*FormatNode) inlineNode() {}

// WalkChildren walks to the formatted text.
func (fn *FormatNode) WalkChildren(v Visitor) { Walk(v, &fn.Inlines) }

// --------------------------------------------------------------------------

// LiteralNode specifies some uninterpreted text.
type LiteralNode struct {
	Kind  LiteralKind
	Attrs Attributes // Optional attributes.
	Text  string
}

// LiteralKind specifies the format that is applied to code inline nodes.
type LiteralKind int

// Constants for LiteralKind
const (
	_               LiteralKind = iota
	LiteralProg                 // Inline program code.
	LiteralVerbatim             // Verbatim text.
	LiteralComment              // Inline comment
	LiteralHTML                 // Inline HTML, e.g. for Markdown
)

func (*LiteralNode) inlineNode() {}

// WalkChildren does nothing.
func (*LiteralNode) WalkChildren(Visitor) { /* No children*/ }
