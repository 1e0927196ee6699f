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

import (
	"strings"

	"orgpress.de/op/ast"
	"orgpress.de/op/input"
)

// parseInlineSlice parses all inline elements until EOS.
func (cp *orgP) parseInlineSlice() ast.InlineSlice {
	inp := cp.inp
	var is ast.InlineSlice
	for inp.Ch != input.EOS {
		in := cp.parseInline()
		if in == nil {
			return is
		}
		is = append(is, in)
	}
	return is
}

// parseInline parses one inline element. Markup that does not complete on
// the current line is taken as literal text.
func (cp *orgP) parseInline() ast.InlineNode {
	inp := cp.inp
	pos := inp.Pos
	if cp.nesting < maxNestingLevel {
		cp.nesting++
		var in ast.InlineNode
		success := false
		switch inp.Ch {
		case input.EOS:
			cp.nesting--
			return nil
		case '\n', '\r':
			inp.EatEOL()
			cp.nesting--
			return &ast.BreakNode{}
		case ' ', '\t':
			cp.nesting--
			return cp.parseSpace()
		case '[':
			switch inp.Peek() {
			case '[':
				in, success = cp.parseLink()
			case 'f':
				in, success = cp.parseFootnote()
			}
		case '<':
			if inp.Peek() == '<' {
				in, success = cp.parseMark()
			}
		case '*', '/', '_', '+':
			in, success = cp.parseFormat()
		case '~', '=':
			in, success = cp.parseLiteral()
		case '\\':
			if inp.Peek() == '\\' {
				in, success = cp.parseHardBreak()
			}
		case '&':
			in, success = cp.parseEntity()
		}
		cp.nesting--
		if success {
			return in
		}
	}
	inp.SetPos(pos)
	return cp.parseText()
}

// parseSpace collects a run of spaces and tabs.
func (cp *orgP) parseSpace() *ast.SpaceNode {
	inp := cp.inp
	pos := inp.Pos
	for inp.Ch == ' ' || inp.Ch == '\t' {
		inp.Next()
	}
	return &ast.SpaceNode{Lexeme: string(inp.Src[pos:inp.Pos])}
}

// parseText collects a run of plain text, stopping before runes that may
// start other inline elements.
func (cp *orgP) parseText() *ast.TextNode {
	inp := cp.inp
	pos := inp.Pos
	if inp.Ch == input.EOS {
		return nil
	}
	inp.Next()
	for {
		switch inp.Ch {
		case input.EOS, '\n', '\r', ' ', '\t',
			'[', ']', '<', '>', '|', '&',
			'*', '/', '_', '+', '~', '=', '\\':
			return &ast.TextNode{Text: string(inp.Src[pos:inp.Pos])}
		}
		inp.Next()
	}
}

// parseLink parses "[[reference]]" and "[[reference][description]]".
func (cp *orgP) parseLink() (res ast.InlineNode, success bool) {
	inp := cp.inp
	inp.Next() // skip '['
	inp.Next() // skip '['
	refPos := inp.Pos
	for inp.Ch != ']' {
		if input.IsEOLEOS(inp.Ch) || inp.Ch == '[' {
			return nil, false
		}
		inp.Next()
	}
	ref := string(inp.Src[refPos:inp.Pos])
	if ref == "" {
		return nil, false
	}
	inp.Next() // skip ']'
	ln := &ast.LinkNode{Ref: ast.ParseReference(ref)}
	if inp.Ch == '[' {
		inp.Next()
		for inp.Ch != ']' {
			if input.IsEOLEOS(inp.Ch) {
				return nil, false
			}
			in := cp.parseInline()
			if in == nil {
				return nil, false
			}
			ln.Inlines = append(ln.Inlines, in)
		}
		inp.Next() // skip ']'
	}
	if inp.Ch != ']' {
		return nil, false
	}
	inp.Next()
	return ln, true
}

// parseFootnote parses footnote references "[fn:label]" and footnote
// definitions "[fn:label: text]" / "[fn:: text]".
func (cp *orgP) parseFootnote() (res ast.InlineNode, success bool) {
	inp := cp.inp
	inp.Next() // skip '['
	if !inp.Accept("fn:") {
		return nil, false
	}
	labelPos := inp.Pos
	for isLabelRune(inp.Ch) {
		inp.Next()
	}
	label := string(inp.Src[labelPos:inp.Pos])
	switch inp.Ch {
	case ']':
		if label == "" {
			return nil, false
		}
		inp.Next()
		return &ast.FootnoteRefNode{Label: label}, true
	case ':':
		inp.Next()
		cp.skipSpace()
		fn := &ast.FootnoteNode{Label: label}
		for inp.Ch != ']' {
			if input.IsEOLEOS(inp.Ch) {
				return nil, false
			}
			in := cp.parseInline()
			if in == nil {
				return nil, false
			}
			fn.Inlines = append(fn.Inlines, in)
		}
		inp.Next()
		return fn, true
	}
	return nil, false
}

// parseMark parses a "<<target>>" mark.
func (cp *orgP) parseMark() (res ast.InlineNode, success bool) {
	inp := cp.inp
	inp.Next() // skip '<'
	inp.Next() // skip '<'
	markPos := inp.Pos
	for inp.Ch != '>' {
		if input.IsEOLEOS(inp.Ch) || inp.Ch == '<' {
			return nil, false
		}
		inp.Next()
	}
	mark := string(inp.Src[markPos:inp.Pos])
	if mark == "" {
		return nil, false
	}
	inp.Next()
	if inp.Ch != '>' {
		return nil, false
	}
	inp.Next()
	return &ast.MarkNode{Mark: mark}, true
}

var mapRuneFormat = map[rune]ast.FormatKind{
	'*': ast.FormatBold,
	'/': ast.FormatItalic,
	'_': ast.FormatUnder,
	'+': ast.FormatStrike,
}

// parseFormat parses emphasized text. The emphasis marker must be preceded
// and followed by appropriate runes, and the emphasis must complete on the
// current line.
func (cp *orgP) parseFormat() (res ast.InlineNode, success bool) {
	inp := cp.inp
	fch := inp.Ch
	kind, ok := mapRuneFormat[fch]
	if !ok || !cp.validEmphPre() {
		return nil, false
	}
	inp.Next()
	if input.IsSpace(inp.Ch) || input.IsEOLEOS(inp.Ch) || inp.Ch == fch {
		return nil, false
	}
	fn := &ast.FormatNode{Kind: kind}
	for {
		if input.IsEOLEOS(inp.Ch) {
			return nil, false
		}
		if inp.Ch == fch && !isSpaceByte(inp.Src[inp.Pos-1]) && cp.validEmphPost() {
			inp.Next()
			return fn, true
		}
		in := cp.parseInline()
		if in == nil {
			return nil, false
		}
		fn.Inlines = append(fn.Inlines, in)
	}
}

// parseLiteral parses verbatim text delimited by '~' or '='. The content is
// not interpreted further.
func (cp *orgP) parseLiteral() (res ast.InlineNode, success bool) {
	inp := cp.inp
	fch := inp.Ch
	if !cp.validEmphPre() {
		return nil, false
	}
	inp.Next()
	if input.IsSpace(inp.Ch) || input.IsEOLEOS(inp.Ch) || inp.Ch == fch {
		return nil, false
	}
	pos := inp.Pos
	for {
		if input.IsEOLEOS(inp.Ch) {
			return nil, false
		}
		if inp.Ch == fch && !isSpaceByte(inp.Src[inp.Pos-1]) && cp.validEmphPost() {
			text := string(inp.Src[pos:inp.Pos])
			inp.Next()
			return &ast.LiteralNode{Kind: ast.LiteralProg, Text: text}, true
		}
		inp.Next()
	}
}

// parseEntity parses a character entity reference like "&amp;" or "&#x27;".
func (cp *orgP) parseEntity() (res ast.InlineNode, success bool) {
	if text, ok := cp.inp.ScanEntity(); ok {
		return &ast.TextNode{Text: text}, true
	}
	return nil, false
}

// parseHardBreak parses a "\\" line ending.
func (cp *orgP) parseHardBreak() (res ast.InlineNode, success bool) {
	inp := cp.inp
	inp.Next() // skip '\'
	inp.Next() // skip '\'
	cp.skipSpace()
	if !input.IsEOLEOS(inp.Ch) {
		return nil, false
	}
	inp.EatEOL()
	return &ast.BreakNode{Hard: true}, true
}

// validEmphPre reports whether the rune before the current position allows
// an emphasis to start there.
func (cp *orgP) validEmphPre() bool {
	inp := cp.inp
	if inp.Pos == 0 {
		return true
	}
	return strings.IndexByte(" \t\n\r-({'\"", inp.Src[inp.Pos-1]) >= 0
}

// validEmphPost reports whether the rune after the current position allows
// an emphasis to end at the current position.
func (cp *orgP) validEmphPost() bool {
	ch := cp.inp.Peek()
	if ch == input.EOS {
		return true
	}
	if ch < 128 {
		return strings.IndexByte(" \t\n\r-.,;:!?')}\"[|", byte(ch)) >= 0
	}
	return false
}

func isSpaceByte(b byte) bool { return b == ' ' || b == '\t' }

func isLabelRune(ch rune) bool {
	return ('a' <= ch && ch <= 'z') ||
		('A' <= ch && ch <= 'Z') ||
		('0' <= ch && ch <= '9') ||
		ch == '_' || ch == '-'
}
