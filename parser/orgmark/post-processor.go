//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package orgmark

import "orgpress.de/op/ast"

// postProcessBlocks normalizes a block slice after parsing: empty
// paragraphs are removed, adjacent text nodes are merged, and spacing at
// the edges of inline slices is trimmed.
func postProcessBlocks(bs *ast.BlockSlice) {
	if bs == nil {
		return
	}
	out := (*bs)[:0]
	for _, bn := range *bs {
		switch n := bn.(type) {
		case *ast.ParaNode:
			postProcessInlines(&n.Inlines)
			if len(n.Inlines) == 0 {
				continue
			}
		case *ast.HeadingNode:
			postProcessInlines(&n.Inlines)
			postProcessBlocks(&n.Blocks)
		case *ast.RegionNode:
			postProcessBlocks(&n.Blocks)
			postProcessInlines(&n.Inlines)
		case *ast.DrawerNode:
			postProcessBlocks(&n.Blocks)
		case *ast.NestedListNode:
			for i := range n.Items {
				postProcessItemSlice(&n.Items[i])
			}
		case *ast.TableNode:
			postProcessTable(n)
		}
		out = append(out, bn)
	}
	*bs = out
}

func postProcessItemSlice(is *ast.ItemSlice) {
	out := (*is)[:0]
	for _, in := range *is {
		switch n := in.(type) {
		case *ast.ParaNode:
			postProcessInlines(&n.Inlines)
			if len(n.Inlines) == 0 {
				continue
			}
		case *ast.NestedListNode:
			for i := range n.Items {
				postProcessItemSlice(&n.Items[i])
			}
		}
		out = append(out, in)
	}
	*is = out
}

func postProcessTable(tn *ast.TableNode) {
	width := len(tn.Header)
	postProcessRow(tn.Header)
	for _, row := range tn.Rows {
		if len(row) > width {
			width = len(row)
		}
		postProcessRow(row)
	}
	if len(tn.Align) < width {
		tn.Align = make([]ast.Alignment, width)
		for i := range tn.Align {
			tn.Align[i] = ast.AlignDefault
		}
	}
}

func postProcessRow(row ast.TableRow) {
	for _, cell := range row {
		postProcessInlines(&cell.Inlines)
	}
}

// postProcessInlines normalizes an inline slice in place.
func postProcessInlines(is *ast.InlineSlice) {
	if is == nil || len(*is) == 0 {
		return
	}
	ins := *is
	for _, in := range ins {
		switch n := in.(type) {
		case *ast.FormatNode:
			postProcessInlines(&n.Inlines)
		case *ast.LinkNode:
			postProcessInlines(&n.Inlines)
		case *ast.FootnoteNode:
			postProcessInlines(&n.Inlines)
		}
	}
	out := ins[:0]
	for _, in := range ins {
		if len(out) > 0 {
			if tn, ok := in.(*ast.TextNode); ok {
				if prev, ok := out[len(out)-1].(*ast.TextNode); ok {
					prev.Text += tn.Text
					continue
				}
			}
			if bn, ok := in.(*ast.BreakNode); ok && !bn.Hard {
				if prev, ok := out[len(out)-1].(*ast.BreakNode); ok && prev.Hard {
					continue
				}
			}
		}
		out = append(out, in)
	}
	for len(out) > 0 && isInlineSpace(out[0]) {
		out = out[1:]
	}
	for len(out) > 0 && isInlineSpace(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	*is = out
}

func isInlineSpace(in ast.InlineNode) bool {
	switch n := in.(type) {
	case *ast.SpaceNode:
		return true
	case *ast.BreakNode:
		return !n.Hard
	}
	return false
}
