//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package cleaner_test

import (
	"testing"

	"orgpress.de/op/ast"
	"orgpress.de/op/parser/cleaner"
)

func heading(level int, words ...string) *ast.HeadingNode {
	return &ast.HeadingNode{Level: level, Inlines: ast.CreateInlineSliceFromWords(words...)}
}

func para(words ...string) *ast.ParaNode {
	return &ast.ParaNode{Inlines: ast.CreateInlineSliceFromWords(words...)}
}

func TestNestOutline(t *testing.T) {
	t.Parallel()
	bs := ast.BlockSlice{
		para("Preamble"),
		heading(1, "One"),
		para("Text", "under", "one"),
		heading(2, "One.One"),
		para("Deep", "text"),
		heading(3, "One.One.One"),
		para("Deeper", "text"),
		heading(2, "One.Two"),
		para("Sibling", "text"),
		heading(1, "Two"),
	}
	cleaner.CleanBlockSlice(&bs)

	if len(bs) != 3 {
		t.Fatalf("expected 3 top-level blocks, got %d", len(bs))
	}
	h1, ok := bs[1].(*ast.HeadingNode)
	if !ok {
		t.Fatalf("expected heading at top level, got %T", bs[1])
	}
	if len(h1.Blocks) != 3 {
		t.Fatalf("expected 3 blocks under first heading, got %d", len(h1.Blocks))
	}
	h11, ok := h1.Blocks[1].(*ast.HeadingNode)
	if !ok || h11.Level != 2 {
		t.Fatalf("expected level-2 heading under first heading, got %T", h1.Blocks[1])
	}
	h111, ok := h11.Blocks[1].(*ast.HeadingNode)
	if !ok || h111.Level != 3 {
		t.Fatalf("expected level-3 heading under level-2 heading, got %T", h11.Blocks[1])
	}
	if len(h111.Blocks) != 1 {
		t.Errorf("expected 1 block under deepest heading, got %d", len(h111.Blocks))
	}
	h12, ok := h1.Blocks[2].(*ast.HeadingNode)
	if !ok || h12.Level != 2 {
		t.Fatalf("expected second level-2 heading under first heading, got %T", h1.Blocks[2])
	}
	h2, ok := bs[2].(*ast.HeadingNode)
	if !ok || h2.Level != 1 {
		t.Fatalf("expected second level-1 heading at top level, got %T", bs[2])
	}
}

func TestSkippedLevels(t *testing.T) {
	t.Parallel()
	bs := ast.BlockSlice{
		heading(1, "Top"),
		heading(3, "Skipped"),
		heading(2, "Back"),
	}
	cleaner.CleanBlockSlice(&bs)
	if len(bs) != 1 {
		t.Fatalf("expected 1 top-level block, got %d", len(bs))
	}
	top := bs[0].(*ast.HeadingNode)
	if len(top.Blocks) != 2 {
		t.Fatalf("expected 2 headings under top, got %d", len(top.Blocks))
	}
	if h3 := top.Blocks[0].(*ast.HeadingNode); h3.Level != 3 {
		t.Errorf("expected level-3 heading, got level %d", h3.Level)
	}
	if h2 := top.Blocks[1].(*ast.HeadingNode); h2.Level != 2 {
		t.Errorf("expected level-2 heading, got level %d", h2.Level)
	}
}

func TestHeadingSlugs(t *testing.T) {
	t.Parallel()
	bs := ast.BlockSlice{
		heading(1, "Same", "Title"),
		heading(1, "Same", "Title"),
		heading(1, "Same", "Title"),
	}
	cleaner.CleanBlockSlice(&bs)
	exp := []string{"same-title", "same-title-1", "same-title-2"}
	for i, bn := range bs {
		hn := bn.(*ast.HeadingNode)
		if hn.Slug != "same-title" {
			t.Errorf("%d: expected slug 'same-title', got %q", i, hn.Slug)
		}
		if hn.Fragment != exp[i] {
			t.Errorf("%d: expected fragment %q, got %q", i, exp[i], hn.Fragment)
		}
	}
}

func TestCollectFootnotes(t *testing.T) {
	t.Parallel()
	first := &ast.FootnoteNode{Label: "a", Inlines: ast.CreateInlineSliceFromWords("first")}
	second := &ast.FootnoteNode{Label: "a", Inlines: ast.CreateInlineSliceFromWords("second")}
	bs := ast.BlockSlice{
		ast.CreateParaNode(first, &ast.FootnoteNode{Label: "b"}),
		ast.CreateParaNode(second),
	}
	defs := cleaner.CollectFootnotes(&bs)
	if len(defs) != 2 {
		t.Fatalf("expected 2 footnote definitions, got %d", len(defs))
	}
	if defs["a"] != first {
		t.Error("first definition of a label must win")
	}
}

func TestCleanInlineLinks(t *testing.T) {
	t.Parallel()
	is := ast.InlineSlice{
		&ast.LinkNode{
			Ref:     ast.ParseReference("https://orgpress.de"),
			Inlines: ast.CreateInlineSliceFromWords("link", "text"),
		},
		&ast.SpaceNode{Lexeme: " "},
		&ast.FootnoteRefNode{Label: "x"},
		&ast.TextNode{Text: "tail"},
	}
	cleaner.CleanInlineLinks(&is)
	if len(is) != 5 {
		t.Fatalf("expected 5 inline nodes, got %d", len(is))
	}
	if _, ok := is[0].(*ast.TextNode); !ok {
		t.Errorf("expected link text to survive, got %T", is[0])
	}
}
