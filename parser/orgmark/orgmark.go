//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package orgmark provides a parser for Org markup.
package orgmark

import (
	"orgpress.de/op/ast"
	"orgpress.de/op/domain/meta"
	"orgpress.de/op/input"
	"orgpress.de/op/parser"
)

func init() {
	parser.Register(&parser.Info{
		Name:         meta.ValueSyntaxOrg,
		AltNames:     []string{"org-mode"},
		IsASTParser:  true,
		IsTextFormat: true,
		ParseBlocks:  parseBlocks,
		ParseInlines: parseInlines,
	})
}

func parseBlocks(inp *input.Input, _ *meta.Meta, _ string) (ast.BlockSlice, error) {
	p := &orgP{inp: inp}
	bs, _, err := p.parseBlockSlice(nil)
	if err != nil {
		return nil, err
	}
	postProcessBlocks(&bs)
	return bs, nil
}

func parseInlines(inp *input.Input, _ string) ast.InlineSlice {
	p := &orgP{inp: inp}
	is := p.parseInlineSlice()
	postProcessInlines(&is)
	return is
}

type orgP struct {
	inp       *input.Input        // Input stream
	lists     []openList          // Stack of open lists
	table     *ast.TableNode      // Current table
	example   *ast.CodeBlockNode  // Current fixed-width block
	nextName  string              // Pending "#+name:" value
	nextAttrs ast.Attributes      // Pending affiliated keywords
	nesting   int                 // Current nesting of inline markup
}

type openList struct {
	indent int
	node   *ast.NestedListNode
}

const maxNestingLevel = 50

// clearStacked removes all multi-line nodes from the parser.
func (cp *orgP) clearStacked() {
	cp.lists = nil
	cp.table = nil
	cp.example = nil
}

// takeName returns the pending block name and resets it.
func (cp *orgP) takeName() string {
	name := cp.nextName
	cp.nextName = ""
	return name
}

// takeAttrs returns the pending affiliated attributes and resets them.
func (cp *orgP) takeAttrs() ast.Attributes {
	a := cp.nextAttrs
	cp.nextAttrs = nil
	return a
}

func (cp *orgP) skipSpace() { cp.inp.SkipSpace() }

// countDelim reads from input until a non-delimiter is found and returns the
// number of delimiter runes.
func (cp *orgP) countDelim(delim rune) int {
	cnt := 0
	for cp.inp.Ch == delim {
		cnt++
		cp.inp.Next()
	}
	return cnt
}

// lineIndent returns the indentation of the current line, leaving the input
// at the first rune after it.
func (cp *orgP) lineIndent() int {
	cnt := 0
	inp := cp.inp
	for {
		switch inp.Ch {
		case ' ':
			cnt++
		case '\t':
			cnt += 8 - (cnt % 8)
		default:
			return cnt
		}
		inp.Next()
	}
}
