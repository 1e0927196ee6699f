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

// Definition of block nodes.

// ParaNode contains just a sequence of inline elements.
// Another name is "paragraph".
type ParaNode struct {
	Inlines InlineSlice
}

func (*ParaNode) blockNode() {}
func (*ParaNode) itemNode()  {}

// WalkChildren walks down the inline elements.
func (pn *ParaNode) WalkChildren(v Visitor) { Walk(v, &pn.Inlines) }

// CreateParaNode creates a parameter block from inline nodes.
func CreateParaNode(nodes ...InlineNode) *ParaNode {
	return &ParaNode{Inlines: nodes}
}

//--------------------------------------------------------------------------

// HeadingNode stores the heading text, its level, and the blocks it
// dominates. The outline of a document is a tree of heading nodes.
type HeadingNode struct {
	Level    int
	Inlines  InlineSlice // Heading text, possibly formatted
	Slug     string      // Heading text, suitable to be used as an URL fragment
	Fragment string      // Unique fragment identifier within the document
	Attrs    Attributes
	Blocks   BlockSlice // Blocks up to the next heading of same or higher level
}

func (*HeadingNode) blockNode() {}
func (*HeadingNode) itemNode()  {}

// WalkChildren walks the heading text and the dominated blocks.
func (hn *HeadingNode) WalkChildren(v Visitor) {
	Walk(v, &hn.Inlines)
	Walk(v, &hn.Blocks)
}

//--------------------------------------------------------------------------

// CodeBlockNode contains lines of uninterpreted text.
type CodeBlockNode struct {
	Kind  CodeBlockKind
	Lang  string     // Language of the code, empty if not specified
	Name  string     // Name under which the block can be referenced
	Refs  []string   // Names of referenced code blocks, in order of occurrence
	Attrs Attributes // Remaining header arguments
	Lines []string
}

// CodeBlockKind specifies the kind of a code block node.
type CodeBlockKind int

// Constants for CodeBlockKind
const (
	_                CodeBlockKind = iota
	CodeBlockProg                  // Program source code
	CodeBlockExample               // Example text, verbatim
	CodeBlockComment               // Block comment
	CodeBlockHTML                  // Block HTML, e.g. for Markdown
)

func (*CodeBlockNode) blockNode() {}
func (*CodeBlockNode) itemNode()  {}

// WalkChildren does nothing.
func (*CodeBlockNode) WalkChildren(Visitor) { /* No children*/ }

//--------------------------------------------------------------------------

// RegionNode encapsulates a region of block nodes.
type RegionNode struct {
	Kind    RegionKind
	Attrs   Attributes
	Blocks  BlockSlice
	Inlines InlineSlice // Optional citation / caption at the end of the region
}

// RegionKind specifies the actual region type.
type RegionKind int

// Values for RegionKind
const (
	_            RegionKind = iota
	RegionSpan              // Just a span of blocks
	RegionQuote             // A longer quotation
	RegionCenter            // Centered blocks
	RegionVerse             // Line breaks matter
)

func (*RegionNode) blockNode() {}
func (*RegionNode) itemNode()  {}

// WalkChildren walks down the blocks and the optional text.
func (rn *RegionNode) WalkChildren(v Visitor) {
	Walk(v, &rn.Blocks)
	if len(rn.Inlines) > 0 {
		Walk(v, &rn.Inlines)
	}
}

//--------------------------------------------------------------------------

// DrawerNode stores a named drawer and its content.
type DrawerNode struct {
	Name   string // Drawer name, upper-cased
	Blocks BlockSlice
}

func (*DrawerNode) blockNode() {}
func (*DrawerNode) itemNode()  {}

// WalkChildren walks down the drawer content.
func (dn *DrawerNode) WalkChildren(v Visitor) { Walk(v, &dn.Blocks) }

//--------------------------------------------------------------------------

// HRuleNode specifies a horizontal rule.
type HRuleNode struct {
	Attrs Attributes
}

func (*HRuleNode) blockNode() {}
func (*HRuleNode) itemNode()  {}

// WalkChildren does nothing.
func (*HRuleNode) WalkChildren(Visitor) { /* No children*/ }

//--------------------------------------------------------------------------

// NestedListNode specifies a nestable list, either ordered or unordered.
type NestedListNode struct {
	Kind  NestedListKind
	Items []ItemSlice
	Attrs Attributes
}

// NestedListKind specifies the actual list type.
type NestedListKind int

// Values for NestedListKind
const (
	_                   NestedListKind = iota
	NestedListOrdered                  // Ordered list.
	NestedListUnordered                // Unordered list.
)

func (*NestedListNode) blockNode() {}
func (*NestedListNode) itemNode()  {}

// WalkChildren walks down the list items.
func (ln *NestedListNode) WalkChildren(v Visitor) {
	for _, item := range ln.Items {
		WalkItemSlice(v, item)
	}
}

//--------------------------------------------------------------------------

// TableNode specifies a full table.
type TableNode struct {
	Header TableRow    // The header row
	Align  []Alignment // Default column alignment
	Rows   []TableRow  // The slice of cell rows
}

// TableCell contains the data for one table cell.
type TableCell struct {
	Align   Alignment   // Cell alignment
	Inlines InlineSlice // Cell content
}

// WalkChildren walks the cell content.
func (cell *TableCell) WalkChildren(v Visitor) { Walk(v, &cell.Inlines) }

// TableRow is a slice of cells.
type TableRow []*TableCell

// Alignment specifies text alignment.
type Alignment int

// Constants for Alignment.
const (
	_            Alignment = iota
	AlignDefault           // Default alignment, inherited
	AlignLeft              // Left alignment
	AlignCenter            // Center the content
	AlignRight             // Right alignment
)

func (*TableNode) blockNode() {}

// WalkChildren walks all cells of the header and then row-wise all cells of
// the table body.
func (tn *TableNode) WalkChildren(v Visitor) {
	for _, cell := range tn.Header {
		Walk(v, cell)
	}
	for _, row := range tn.Rows {
		for _, cell := range row {
			Walk(v, cell)
		}
	}
}
