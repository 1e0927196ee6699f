//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package textenc encodes the abstract syntax tree into its text.
package textenc

import (
	"io"

	"orgpress.de/op/ast"
	"orgpress.de/op/domain/meta"
	"orgpress.de/op/encoder"
)

func init() {
	encoder.Register(encoder.EncodingText, func() encoder.Encoder { return Create() })
}

// Create returns the text encoder.
func Create() *Encoder { return &myTE }

// Encoder encodes just the text of the AST, without any markup.
type Encoder struct{}

var myTE Encoder

// WriteDocument writes metadata and content as text.
func (te *Encoder) WriteDocument(w io.Writer, dn *ast.DocumentNode, evalMeta encoder.EvalMetaFunc) (int, error) {
	v := newVisitor(w)
	te.writeMeta(&v.b, dn.Meta, evalMeta)
	v.visitBlockSlice(dn.Ast)
	return v.b.Flush()
}

// WriteMeta encodes metadata as text.
func (te *Encoder) WriteMeta(w io.Writer, m *meta.Meta, evalMeta encoder.EvalMetaFunc) (int, error) {
	b := encoder.NewEncWriter(w)
	te.writeMeta(&b, m, evalMeta)
	return b.Flush()
}

func (te *Encoder) writeMeta(b *encoder.EncWriter, m *meta.Meta, evalMeta encoder.EvalMetaFunc) {
	for _, pair := range m.Pairs() {
		switch meta.Type(pair.Key) {
		case meta.TypeBool:
			if meta.BoolValue(pair.Value) {
				b.WriteString(meta.ValueTrue)
			} else {
				b.WriteString(meta.ValueFalse)
			}
		case meta.TypeTagSet:
			for i, tag := range meta.ListFromValue(pair.Value) {
				if i > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(meta.CleanTag(tag))
			}
		case meta.TypeMarkup:
			if evalMeta != nil {
				is := evalMeta(pair.Value)
				te.WriteInlines(b, &is)
			} else {
				b.WriteString(pair.Value)
			}
		default:
			b.WriteString(pair.Value)
		}
		b.WriteByte('\n')
	}
}

// WriteBlocks writes the content of a block slice to the writer.
func (*Encoder) WriteBlocks(w io.Writer, bs *ast.BlockSlice) (int, error) {
	v := newVisitor(w)
	v.visitBlockSlice(*bs)
	return v.b.Flush()
}

// WriteInlines writes an inline slice to the writer.
func (*Encoder) WriteInlines(w io.Writer, is *ast.InlineSlice) (int, error) {
	v := newVisitor(w)
	ast.Walk(v, is)
	return v.b.Flush()
}

// visitor writes the abstract syntax tree to an io.Writer.
type visitor struct {
	b encoder.EncWriter
}

func newVisitor(w io.Writer) *visitor {
	return &visitor{b: encoder.NewEncWriter(w)}
}

func (v *visitor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.HeadingNode:
		ast.Walk(v, &n.Inlines)
		if len(n.Blocks) > 0 {
			v.b.WriteByte('\n')
			v.visitBlockSlice(n.Blocks)
		}
		return nil
	case *ast.CodeBlockNode:
		if n.Kind == ast.CodeBlockComment {
			return nil
		}
		for i, line := range n.Lines {
			v.writePosChar(i, '\n')
			v.b.WriteString(line)
		}
		return nil
	case *ast.RegionNode:
		v.visitBlockSlice(n.Blocks)
		if len(n.Inlines) > 0 {
			v.b.WriteByte('\n')
			ast.Walk(v, &n.Inlines)
		}
		return nil
	case *ast.NestedListNode:
		for i, item := range n.Items {
			v.writePosChar(i, '\n')
			for j, it := range item {
				v.writePosChar(j, '\n')
				ast.Walk(v, it)
			}
		}
		return nil
	case *ast.TableNode:
		if len(n.Header) > 0 {
			v.writeRow(n.Header)
			v.b.WriteByte('\n')
		}
		for i, row := range n.Rows {
			v.writePosChar(i, '\n')
			v.writeRow(row)
		}
		return nil
	case *ast.TextNode:
		v.b.WriteString(n.Text)
		return nil
	case *ast.SpaceNode:
		v.b.WriteByte(' ')
		return nil
	case *ast.BreakNode:
		if n.Hard {
			v.b.WriteByte('\n')
		} else {
			v.b.WriteByte(' ')
		}
		return nil
	case *ast.FootnoteNode:
		v.b.WriteByte(' ')
		return v // No 'return nil' to write text
	case *ast.FootnoteRefNode:
		return nil
	case *ast.LiteralNode:
		if n.Kind != ast.LiteralComment {
			v.b.WriteString(n.Text)
		}
		return nil
	}
	return v
}

func (v *visitor) writeRow(row ast.TableRow) {
	for i, cell := range row {
		v.writePosChar(i, ' ')
		ast.Walk(v, &cell.Inlines)
	}
}

func (v *visitor) visitBlockSlice(bns ast.BlockSlice) {
	for i, bn := range bns {
		v.writePosChar(i, '\n')
		ast.Walk(v, bn)
	}
}

func (v *visitor) writePosChar(pos int, ch byte) {
	if pos > 0 {
		v.b.WriteByte(ch)
	}
}
