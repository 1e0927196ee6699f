//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package plain provides a parser for plain text data.
package plain

import (
	"strings"

	"orgpress.de/op/ast"
	"orgpress.de/op/domain/meta"
	"orgpress.de/op/input"
	"orgpress.de/op/parser"
)

func init() {
	parser.Register(&parser.Info{
		Name:         "plain",
		AltNames:     []string{meta.ValueSyntaxText, meta.ValueSyntaxNone, "txt"},
		IsASTParser:  false,
		IsTextFormat: true,
		ParseBlocks:  parseBlocks,
		ParseInlines: parseInlines,
	})
	parser.Register(&parser.Info{
		Name:         "html",
		AltNames:     []string{},
		IsASTParser:  false,
		IsTextFormat: true,
		ParseBlocks:  parseBlocksHTML,
		ParseInlines: parseInlinesHTML,
	})
}

func parseBlocks(inp *input.Input, _ *meta.Meta, syntax string) (ast.BlockSlice, error) {
	return doParseBlocks(inp, syntax, ast.CodeBlockExample), nil
}
func parseBlocksHTML(inp *input.Input, _ *meta.Meta, syntax string) (ast.BlockSlice, error) {
	return doParseBlocks(inp, syntax, ast.CodeBlockHTML), nil
}
func doParseBlocks(inp *input.Input, syntax string, kind ast.CodeBlockKind) ast.BlockSlice {
	content := inp.ScanLineContent()
	var lines []string
	if len(content) > 0 {
		lines = strings.Split(string(content), "\n")
	}
	return ast.BlockSlice{
		&ast.CodeBlockNode{
			Kind:  kind,
			Lang:  syntax,
			Lines: lines,
		},
	}
}

func parseInlines(inp *input.Input, syntax string) ast.InlineSlice {
	return doParseInlines(inp, syntax, ast.LiteralProg)
}
func parseInlinesHTML(inp *input.Input, syntax string) ast.InlineSlice {
	return doParseInlines(inp, syntax, ast.LiteralHTML)
}
func doParseInlines(inp *input.Input, _ string, kind ast.LiteralKind) ast.InlineSlice {
	pos := inp.Pos
	inp.SkipToEOL()
	return ast.InlineSlice{&ast.LiteralNode{
		Kind: kind,
		Text: string(inp.Src[pos:inp.Pos]),
	}}
}
