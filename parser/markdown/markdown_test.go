//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package markdown_test

import (
	"testing"

	"orgpress.de/op/ast"
	"orgpress.de/op/domain/meta"
	"orgpress.de/op/input"
	"orgpress.de/op/parser"

	_ "orgpress.de/op/parser/markdown"
)

func parse(t *testing.T, src string) ast.BlockSlice {
	t.Helper()
	m := meta.New("test")
	bs, err := parser.ParseBlocks(input.NewInput([]byte(src)), m, meta.ValueSyntaxMD)
	if err != nil {
		t.Fatalf("ParseBlocks(%q): %v", src, err)
	}
	return bs
}

func TestHeadingOutline(t *testing.T) {
	t.Parallel()
	bs := parse(t, "# Title\n\nSome text.\n")
	if len(bs) != 1 {
		t.Fatalf("got %d top-level blocks, expected 1", len(bs))
	}
	hn, ok := bs[0].(*ast.HeadingNode)
	if !ok {
		t.Fatalf("expected heading, got %T", bs[0])
	}
	if hn.Level != 1 {
		t.Errorf("level=%d, expected 1", hn.Level)
	}
	if hn.Slug != "title" {
		t.Errorf("slug=%q, expected %q", hn.Slug, "title")
	}
	if len(hn.Blocks) != 1 {
		t.Fatalf("heading owns %d blocks, expected the paragraph", len(hn.Blocks))
	}
	if _, ok = hn.Blocks[0].(*ast.ParaNode); !ok {
		t.Errorf("nested block is %T, expected paragraph", hn.Blocks[0])
	}
}

func TestEmphasis(t *testing.T) {
	t.Parallel()
	bs := parse(t, "Some *em* and **strong** text.\n")
	pn, ok := bs[0].(*ast.ParaNode)
	if !ok {
		t.Fatalf("expected paragraph, got %T", bs[0])
	}
	var kinds []ast.FormatKind
	for _, in := range pn.Inlines {
		if fn, isFormat := in.(*ast.FormatNode); isFormat {
			kinds = append(kinds, fn.Kind)
		}
	}
	if len(kinds) != 2 || kinds[0] != ast.FormatItalic || kinds[1] != ast.FormatBold {
		t.Errorf("format kinds=%v, expected [italic bold]", kinds)
	}
}

func TestFencedCode(t *testing.T) {
	t.Parallel()
	bs := parse(t, "```go\nx := 1\n```\n")
	cn, ok := bs[0].(*ast.CodeBlockNode)
	if !ok {
		t.Fatalf("expected code block, got %T", bs[0])
	}
	if cn.Kind != ast.CodeBlockProg {
		t.Errorf("kind=%v, expected program code", cn.Kind)
	}
	if cn.Lang != "go" {
		t.Errorf("lang=%q, expected %q", cn.Lang, "go")
	}
	if len(cn.Lines) != 1 || cn.Lines[0] != "x := 1" {
		t.Errorf("lines=%q", cn.Lines)
	}
}

func TestBlockquote(t *testing.T) {
	t.Parallel()
	bs := parse(t, "> quoted text\n")
	rn, ok := bs[0].(*ast.RegionNode)
	if !ok {
		t.Fatalf("expected region, got %T", bs[0])
	}
	if rn.Kind != ast.RegionQuote {
		t.Errorf("kind=%v, expected quote region", rn.Kind)
	}
}

func TestList(t *testing.T) {
	t.Parallel()
	bs := parse(t, "- one\n- two\n")
	ln, ok := bs[0].(*ast.NestedListNode)
	if !ok {
		t.Fatalf("expected list, got %T", bs[0])
	}
	if ln.Kind != ast.NestedListUnordered {
		t.Errorf("kind=%v, expected unordered", ln.Kind)
	}
	if len(ln.Items) != 2 {
		t.Errorf("got %d items, expected 2", len(ln.Items))
	}
}

func TestLink(t *testing.T) {
	t.Parallel()
	bs := parse(t, "See [docs](https://example.com/doc).\n")
	pn := bs[0].(*ast.ParaNode)
	var link *ast.LinkNode
	for _, in := range pn.Inlines {
		if l, isLink := in.(*ast.LinkNode); isLink {
			link = l
		}
	}
	if link == nil {
		t.Fatal("no link node found")
	}
	if got := link.Ref.String(); got != "https://example.com/doc" {
		t.Errorf("ref=%q", got)
	}
}
