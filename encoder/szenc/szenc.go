//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package szenc encodes the abstract syntax tree into a s-expression.
package szenc

import (
	"io"

	"codeberg.org/t73fde/sxpf"

	"orgpress.de/op/ast"
	"orgpress.de/op/domain/meta"
	"orgpress.de/op/encoder"
)

func init() {
	encoder.Register(encoder.EncodingSz, func() encoder.Encoder { return Create() })
}

// Create a s-expression encoder.
func Create() *Encoder {
	return &Encoder{trans: NewTransformer()}
}

type Encoder struct {
	trans *Transformer
}

// WriteDocument writes the encoded document to the writer.
func (enc *Encoder) WriteDocument(w io.Writer, dn *ast.DocumentNode, evalMeta encoder.EvalMetaFunc) (int, error) {
	t := enc.trans
	objs := []sxpf.Object{
		t.GetMeta(dn.Meta),
		t.GetSz(&dn.Ast),
		t.getChangelog(dn.Changelog),
	}
	return sxpf.MakeList(objs...).Print(w)
}

// WriteMeta encodes metadata as s-expression.
func (enc *Encoder) WriteMeta(w io.Writer, m *meta.Meta, _ encoder.EvalMetaFunc) (int, error) {
	return enc.trans.GetMeta(m).Print(w)
}

// WriteBlocks writes a block slice to the writer.
func (enc *Encoder) WriteBlocks(w io.Writer, bs *ast.BlockSlice) (int, error) {
	return enc.trans.GetSz(bs).Print(w)
}

// WriteInlines writes an inline slice to the writer.
func (enc *Encoder) WriteInlines(w io.Writer, is *ast.InlineSlice) (int, error) {
	return enc.trans.GetSz(is).Print(w)
}

// NewTransformer returns a new transformer to create s-expressions from AST
// nodes.
func NewTransformer() *Transformer {
	sf := sxpf.MakeMappedFactory()
	t := Transformer{sf: sf}

	t.mapCodeKindS = map[ast.CodeBlockKind]*sxpf.Symbol{
		ast.CodeBlockProg:    sf.MustMake("CODE"),
		ast.CodeBlockExample: sf.MustMake("EXAMPLE"),
		ast.CodeBlockComment: sf.MustMake("COMMENT-BLOCK"),
		ast.CodeBlockHTML:    sf.MustMake("HTML-BLOCK"),
	}
	t.mapRegionKindS = map[ast.RegionKind]*sxpf.Symbol{
		ast.RegionSpan:   sf.MustMake("REGION-BLOCK"),
		ast.RegionQuote:  sf.MustMake("REGION-QUOTE"),
		ast.RegionCenter: sf.MustMake("REGION-CENTER"),
		ast.RegionVerse:  sf.MustMake("REGION-VERSE"),
	}
	t.mapListKindS = map[ast.NestedListKind]*sxpf.Symbol{
		ast.NestedListOrdered:   sf.MustMake("ORDERED"),
		ast.NestedListUnordered: sf.MustMake("UNORDERED"),
	}
	t.mapFormatKindS = map[ast.FormatKind]*sxpf.Symbol{
		ast.FormatBold:   sf.MustMake("FORMAT-BOLD"),
		ast.FormatItalic: sf.MustMake("FORMAT-ITALIC"),
		ast.FormatUnder:  sf.MustMake("FORMAT-UNDER"),
		ast.FormatStrike: sf.MustMake("FORMAT-STRIKE"),
	}
	t.mapLiteralKindS = map[ast.LiteralKind]*sxpf.Symbol{
		ast.LiteralProg:     sf.MustMake("LITERAL-CODE"),
		ast.LiteralVerbatim: sf.MustMake("LITERAL-VERBATIM"),
		ast.LiteralComment:  sf.MustMake("LITERAL-COMMENT"),
		ast.LiteralHTML:     sf.MustMake("LITERAL-HTML"),
	}
	t.mapRefStateS = map[ast.RefState]*sxpf.Symbol{
		ast.RefStateInvalid:  sf.MustMake("INVALID"),
		ast.RefStateSelf:     sf.MustMake("SELF"),
		ast.RefStateHosted:   sf.MustMake("HOSTED"),
		ast.RefStateBased:    sf.MustMake("BASED"),
		ast.RefStateExternal: sf.MustMake("EXTERNAL"),
	}

	t.symBlock = sf.MustMake("BLOCK")
	t.symInline = sf.MustMake("INLINE")
	t.symPara = sf.MustMake("PARA")
	t.symHeading = sf.MustMake("HEADING")
	t.symThematic = sf.MustMake("THEMATIC")
	t.symDrawer = sf.MustMake("DRAWER")
	t.symItem = sf.MustMake("ITEM")
	t.symTable = sf.MustMake("TABLE")
	t.symRow = sf.MustMake("ROW")
	t.symCell = sf.MustMake("CELL")
	t.symText = sf.MustMake("TEXT")
	t.symSpace = sf.MustMake("SPACE")
	t.symSoft = sf.MustMake("SOFT")
	t.symHard = sf.MustMake("HARD")
	t.symLink = sf.MustMake("LINK")
	t.symMark = sf.MustMake("MARK")
	t.symFootnote = sf.MustMake("FOOTNOTE")
	t.symFootnoteRef = sf.MustMake("FOOTNOTE-REF")
	t.symAttr = sf.MustMake("ATTR")
	t.symMeta = sf.MustMake("META")
	t.symChangelog = sf.MustMake("CHANGELOG")
	t.symEntry = sf.MustMake("ENTRY")
	t.symUnknown = sf.MustMake("UNKNOWN")
	return &t
}

type Transformer struct {
	sf               sxpf.SymbolFactory
	mapCodeKindS     map[ast.CodeBlockKind]*sxpf.Symbol
	mapRegionKindS   map[ast.RegionKind]*sxpf.Symbol
	mapListKindS     map[ast.NestedListKind]*sxpf.Symbol
	mapFormatKindS   map[ast.FormatKind]*sxpf.Symbol
	mapLiteralKindS  map[ast.LiteralKind]*sxpf.Symbol
	mapRefStateS     map[ast.RefState]*sxpf.Symbol
	symBlock         *sxpf.Symbol
	symInline        *sxpf.Symbol
	symPara          *sxpf.Symbol
	symHeading       *sxpf.Symbol
	symThematic      *sxpf.Symbol
	symDrawer        *sxpf.Symbol
	symItem          *sxpf.Symbol
	symTable         *sxpf.Symbol
	symRow           *sxpf.Symbol
	symCell          *sxpf.Symbol
	symText          *sxpf.Symbol
	symSpace         *sxpf.Symbol
	symSoft          *sxpf.Symbol
	symHard          *sxpf.Symbol
	symLink          *sxpf.Symbol
	symMark          *sxpf.Symbol
	symFootnote      *sxpf.Symbol
	symFootnoteRef   *sxpf.Symbol
	symAttr          *sxpf.Symbol
	symMeta          *sxpf.Symbol
	symChangelog     *sxpf.Symbol
	symEntry         *sxpf.Symbol
	symUnknown       *sxpf.Symbol
}

// GetSz transforms the given AST node into a s-expression.
func (t *Transformer) GetSz(node ast.Node) *sxpf.List {
	switch n := node.(type) {
	case *ast.BlockSlice:
		return t.getNodeList(t.symBlock, t.blockObjs(*n))
	case *ast.InlineSlice:
		return t.getNodeList(t.symInline, t.inlineObjs(*n))
	case *ast.ParaNode:
		return t.getNodeList(t.symPara, t.inlineObjs(n.Inlines))
	case *ast.HeadingNode:
		return t.getHeading(n)
	case *ast.CodeBlockNode:
		return t.getCodeBlock(n)
	case *ast.RegionNode:
		return sxpf.MakeList(
			mapGetS(t, t.mapRegionKindS, n.Kind),
			t.getAttributes(n.Attrs),
			t.GetSz(&n.Blocks),
			t.getNodeList(t.symInline, t.inlineObjs(n.Inlines)),
		)
	case *ast.DrawerNode:
		return sxpf.MakeList(t.symDrawer, sxpf.MakeString(n.Name), t.GetSz(&n.Blocks))
	case *ast.HRuleNode:
		return sxpf.MakeList(t.symThematic, t.getAttributes(n.Attrs))
	case *ast.NestedListNode:
		return t.getNestedList(n)
	case *ast.TableNode:
		return t.getTable(n)
	case *ast.TextNode:
		return sxpf.MakeList(t.symText, sxpf.MakeString(n.Text))
	case *ast.SpaceNode:
		return sxpf.MakeList(t.symSpace, sxpf.MakeString(n.Lexeme))
	case *ast.BreakNode:
		if n.Hard {
			return sxpf.MakeList(t.symHard)
		}
		return sxpf.MakeList(t.symSoft)
	case *ast.LinkNode:
		objs := []sxpf.Object{
			t.symLink,
			mapGetS(t, t.mapRefStateS, n.Ref.State),
			sxpf.MakeString(n.Ref.String()),
		}
		return sxpf.MakeList(append(objs, t.inlineObjs(n.Inlines)...)...)
	case *ast.MarkNode:
		return sxpf.MakeList(
			t.symMark,
			sxpf.MakeString(n.Mark),
			sxpf.MakeString(n.Slug),
			sxpf.MakeString(n.Fragment),
		)
	case *ast.FormatNode:
		objs := []sxpf.Object{mapGetS(t, t.mapFormatKindS, n.Kind)}
		return sxpf.MakeList(append(objs, t.inlineObjs(n.Inlines)...)...)
	case *ast.LiteralNode:
		return sxpf.MakeList(
			mapGetS(t, t.mapLiteralKindS, n.Kind),
			sxpf.MakeString(n.Text),
		)
	case *ast.FootnoteNode:
		objs := []sxpf.Object{t.symFootnote, sxpf.MakeString(n.Label)}
		return sxpf.MakeList(append(objs, t.inlineObjs(n.Inlines)...)...)
	case *ast.FootnoteRefNode:
		return sxpf.MakeList(t.symFootnoteRef, sxpf.MakeString(n.Label))
	}
	return sxpf.MakeList(t.symUnknown)
}

// GetMeta transforms the metadata into a s-expression.
func (t *Transformer) GetMeta(m *meta.Meta) *sxpf.List {
	objs := []sxpf.Object{t.symMeta}
	if m != nil {
		for _, p := range m.Pairs() {
			objs = append(objs, sxpf.MakeList(t.sf.MustMake(p.Key), sxpf.MakeString(p.Value)))
		}
	}
	return sxpf.MakeList(objs...)
}

func (t *Transformer) getChangelog(entries []ast.ChangeEntry) *sxpf.List {
	objs := []sxpf.Object{t.symChangelog}
	for _, entry := range entries {
		objs = append(objs, sxpf.MakeList(
			t.symEntry,
			sxpf.MakeString(entry.Date),
			sxpf.MakeString(entry.Text),
		))
	}
	return sxpf.MakeList(objs...)
}

func (t *Transformer) getHeading(hn *ast.HeadingNode) *sxpf.List {
	return sxpf.MakeList(
		t.symHeading,
		sxpf.Int64(int64(hn.Level)),
		t.getAttributes(hn.Attrs),
		sxpf.MakeString(hn.Slug),
		sxpf.MakeString(hn.Fragment),
		t.getNodeList(t.symInline, t.inlineObjs(hn.Inlines)),
		t.GetSz(&hn.Blocks),
	)
}

func (t *Transformer) getCodeBlock(cn *ast.CodeBlockNode) *sxpf.List {
	lines := []sxpf.Object{}
	for _, line := range cn.Lines {
		lines = append(lines, sxpf.MakeString(line))
	}
	refs := []sxpf.Object{}
	for _, ref := range cn.Refs {
		refs = append(refs, sxpf.MakeString(ref))
	}
	return sxpf.MakeList(
		mapGetS(t, t.mapCodeKindS, cn.Kind),
		sxpf.MakeString(cn.Lang),
		sxpf.MakeString(cn.Name),
		sxpf.MakeList(refs...),
		t.getAttributes(cn.Attrs),
		sxpf.MakeList(lines...),
	)
}

func (t *Transformer) getNestedList(ln *ast.NestedListNode) *sxpf.List {
	objs := []sxpf.Object{mapGetS(t, t.mapListKindS, ln.Kind)}
	for _, item := range ln.Items {
		itemObjs := []sxpf.Object{t.symItem}
		for _, in := range item {
			itemObjs = append(itemObjs, t.GetSz(in))
		}
		objs = append(objs, sxpf.MakeList(itemObjs...))
	}
	return sxpf.MakeList(objs...)
}

func (t *Transformer) getTable(tn *ast.TableNode) *sxpf.List {
	objs := []sxpf.Object{t.symTable, t.getRow(tn.Header)}
	for _, row := range tn.Rows {
		objs = append(objs, t.getRow(row))
	}
	return sxpf.MakeList(objs...)
}

func (t *Transformer) getRow(row ast.TableRow) *sxpf.List {
	objs := []sxpf.Object{t.symRow}
	for _, cell := range row {
		objs = append(objs, t.getNodeList(t.symCell, t.inlineObjs(cell.Inlines)))
	}
	return sxpf.MakeList(objs...)
}

func (t *Transformer) getAttributes(a ast.Attributes) *sxpf.List {
	objs := []sxpf.Object{t.symAttr}
	for _, key := range a.Keys() {
		val, _ := a.Get(key)
		objs = append(objs, sxpf.MakeList(sxpf.MakeString(key), sxpf.MakeString(val)))
	}
	return sxpf.MakeList(objs...)
}

func (t *Transformer) getNodeList(sym *sxpf.Symbol, objs []sxpf.Object) *sxpf.List {
	return sxpf.MakeList(append([]sxpf.Object{sym}, objs...)...)
}

func (t *Transformer) blockObjs(bs ast.BlockSlice) []sxpf.Object {
	objs := make([]sxpf.Object, 0, len(bs))
	for _, bn := range bs {
		objs = append(objs, t.GetSz(bn))
	}
	return objs
}

func (t *Transformer) inlineObjs(is ast.InlineSlice) []sxpf.Object {
	objs := make([]sxpf.Object, 0, len(is))
	for _, in := range is {
		objs = append(objs, t.GetSz(in))
	}
	return objs
}

func mapGetS[T comparable](t *Transformer, m map[T]*sxpf.Symbol, k T) *sxpf.Symbol {
	if sym, found := m[k]; found {
		return sym
	}
	return t.symUnknown
}
