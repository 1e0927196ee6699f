//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast_test

import (
	"testing"

	"orgpress.de/op/ast"
)

func createTestTree() ast.BlockSlice {
	return ast.BlockSlice{
		&ast.HeadingNode{
			Level:   1,
			Inlines: ast.CreateInlineSliceFromWords("A", "Simple", "Heading"),
			Blocks: ast.BlockSlice{
				&ast.ParaNode{
					Inlines: ast.CreateInlineSliceFromWords("This", "is", "the", "introduction."),
				},
				&ast.NestedListNode{
					Kind: ast.NestedListUnordered,
					Items: []ast.ItemSlice{
						[]ast.ItemNode{
							&ast.ParaNode{
								Inlines: ast.CreateInlineSliceFromWords("Item", "1"),
							},
						},
						[]ast.ItemNode{
							&ast.ParaNode{
								Inlines: ast.CreateInlineSliceFromWords("Item", "2"),
							},
						},
					},
				},
			},
		},
		ast.CreateParaNode(
			&ast.FormatNode{
				Kind:    ast.FormatBold,
				Inlines: ast.CreateInlineSliceFromWords("Some", "emphasized", "text."),
			},
			&ast.SpaceNode{Lexeme: " "},
			&ast.LinkNode{
				Ref:     ast.ParseReference("https://orgpress.de"),
				Inlines: ast.CreateInlineSliceFromWords("URL", "text."),
			},
		),
	}
}

type countVisitor struct {
	textCount int
}

func (cv *countVisitor) Visit(node ast.Node) ast.Visitor {
	if _, ok := node.(*ast.TextNode); ok {
		cv.textCount++
	}
	return cv
}

func TestWalk(t *testing.T) {
	t.Parallel()
	root := createTestTree()
	v := countVisitor{}
	ast.Walk(&v, &root)
	if exp := 16; v.textCount != exp {
		t.Errorf("expected %d text nodes, got %d", exp, v.textCount)
	}
}

func BenchmarkWalk(b *testing.B) {
	root := createTestTree()
	v := countVisitor{}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		ast.Walk(&v, &root)
	}
}
