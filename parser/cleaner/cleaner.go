//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package cleaner provides functions to clean up the parsed AST.
package cleaner

import (
	"strconv"
	"strings"

	"orgpress.de/op/ast"
	"orgpress.de/op/encoder/textenc"
	"orgpress.de/op/strfun"
)

// CleanBlockSlice cleans the given block slice. The flat stream of heading
// nodes is nested into an outline tree, and all headings and marks receive
// a unique fragment identifier.
func CleanBlockSlice(bs *ast.BlockSlice) {
	*bs = nestOutline(*bs)
	cleanNode(bs)
}

// CleanInlineSlice cleans the given inline slice.
func CleanInlineSlice(is *ast.InlineSlice) { cleanNode(is) }

func cleanNode(n ast.Node) {
	cv := cleanVisitor{
		textEnc: textenc.Create(),
		hasMark: false,
		doMark:  false,
	}
	ast.Walk(&cv, n)
	if cv.hasMark {
		cv.doMark = true
		ast.Walk(&cv, n)
	}
}

// nestOutline builds the outline tree from a flat stream of blocks. Each
// heading dominates all following blocks up to the next heading of the same
// or a higher level. The currently open headings are kept on an explicit
// stack, so that arbitrarily deep outlines do not touch the call stack.
func nestOutline(bs ast.BlockSlice) ast.BlockSlice {
	root := make(ast.BlockSlice, 0, len(bs))
	var stack []*ast.HeadingNode
	appendBlock := func(bn ast.BlockNode) {
		if len(stack) == 0 {
			root = append(root, bn)
			return
		}
		top := stack[len(stack)-1]
		top.Blocks = append(top.Blocks, bn)
	}
	for _, bn := range bs {
		hn, ok := bn.(*ast.HeadingNode)
		if !ok {
			appendBlock(bn)
			continue
		}
		for len(stack) > 0 && stack[len(stack)-1].Level >= hn.Level {
			stack = stack[:len(stack)-1]
		}
		appendBlock(hn)
		stack = append(stack, hn)
	}
	return root
}

type cleanVisitor struct {
	textEnc *textenc.Encoder
	ids     map[string]ast.Node
	hasMark bool
	doMark  bool
}

func (cv *cleanVisitor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.HeadingNode:
		cv.visitHeading(n)
		return cv
	case *ast.MarkNode:
		cv.visitMark(n)
		return nil
	}
	return cv
}

func (cv *cleanVisitor) visitHeading(hn *ast.HeadingNode) {
	if cv.doMark || hn == nil || len(hn.Inlines) == 0 {
		return
	}
	if hn.Slug == "" {
		var sb strings.Builder
		if _, err := cv.textEnc.WriteInlines(&sb, &hn.Inlines); err != nil {
			return
		}
		hn.Slug = strfun.Slugify(sb.String())
	}
	if hn.Slug != "" {
		hn.Fragment = cv.addIdentifier(hn.Slug, hn)
	}
}

func (cv *cleanVisitor) visitMark(mn *ast.MarkNode) {
	if !cv.doMark {
		cv.hasMark = true
		return
	}
	if mn.Mark == "" {
		mn.Slug = ""
		mn.Fragment = cv.addIdentifier("*", mn)
		return
	}
	if mn.Slug == "" {
		mn.Slug = strfun.Slugify(mn.Mark)
	}
	mn.Fragment = cv.addIdentifier(mn.Slug, mn)
}

func (cv *cleanVisitor) addIdentifier(id string, node ast.Node) string {
	if cv.ids == nil {
		cv.ids = map[string]ast.Node{id: node}
		return id
	}
	if n, ok := cv.ids[id]; ok && n != node {
		prefix := id + "-"
		for count := 1; ; count++ {
			newID := prefix + strconv.Itoa(count)
			if n, ok := cv.ids[newID]; !ok || n == node {
				cv.ids[newID] = node
				return newID
			}
		}
	}
	cv.ids[id] = node
	return id
}

// CleanInlineLinks removes all links and footnotes from the given inline
// slice, but keeps their text.
func CleanInlineLinks(is *ast.InlineSlice) {
	if is == nil {
		return
	}
	result := make(ast.InlineSlice, 0, len(*is))
	for _, in := range *is {
		switch n := in.(type) {
		case *ast.LinkNode:
			CleanInlineLinks(&n.Inlines)
			result = append(result, n.Inlines...)
		case *ast.FootnoteNode, *ast.FootnoteRefNode:
			continue
		case *ast.FormatNode:
			CleanInlineLinks(&n.Inlines)
			result = append(result, n)
		default:
			result = append(result, in)
		}
	}
	*is = result
}

// CollectFootnotes walks the given block slice and returns all labeled
// footnote definitions, keyed by their label. The first definition of a
// label wins.
func CollectFootnotes(bs *ast.BlockSlice) map[string]*ast.FootnoteNode {
	fv := footnoteVisitor{defs: make(map[string]*ast.FootnoteNode)}
	ast.Walk(&fv, bs)
	return fv.defs
}

type footnoteVisitor struct {
	defs map[string]*ast.FootnoteNode
}

func (fv *footnoteVisitor) Visit(node ast.Node) ast.Visitor {
	if fn, ok := node.(*ast.FootnoteNode); ok && fn.Label != "" {
		if _, found := fv.defs[fn.Label]; !found {
			fv.defs[fn.Label] = fn
		}
	}
	return fv
}
