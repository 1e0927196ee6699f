//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package markdown provides a parser for Markdown.
package markdown

import (
	"fmt"
	"strings"

	gm "github.com/yuin/goldmark"
	gmAst "github.com/yuin/goldmark/ast"
	gmText "github.com/yuin/goldmark/text"

	"orgpress.de/op/ast"
	"orgpress.de/op/domain/meta"
	"orgpress.de/op/input"
	"orgpress.de/op/parser"
)

func init() {
	parser.Register(&parser.Info{
		Name:         meta.ValueSyntaxMD,
		AltNames:     []string{"md"},
		IsASTParser:  true,
		IsTextFormat: true,
		ParseBlocks:  parseBlocks,
		ParseInlines: parseInlines,
	})
}

func parseBlocks(inp *input.Input, _ *meta.Meta, _ string) (ast.BlockSlice, error) {
	p := parseMarkdown(inp)
	return p.acceptBlockSlice(p.docNode), nil
}

func parseInlines(inp *input.Input, _ string) ast.InlineSlice {
	p := parseMarkdown(inp)
	var is ast.InlineSlice
	for child := p.docNode.FirstChild(); child != nil; child = child.NextSibling() {
		if para, ok := child.(*gmAst.Paragraph); ok {
			is = append(is, p.acceptInlineChildren(para)...)
		}
	}
	return is
}

func parseMarkdown(inp *input.Input) *mdP {
	source := append([]byte(nil), inp.Src[inp.Pos:]...)
	inp.SetPos(len(inp.Src))
	docNode := gm.DefaultParser().Parse(gmText.NewReader(source))
	return &mdP{source: source, docNode: docNode}
}

type mdP struct {
	source  []byte
	docNode gmAst.Node
}

func (p *mdP) acceptBlockSlice(docNode gmAst.Node) ast.BlockSlice {
	if docNode.Type() != gmAst.TypeDocument {
		panic(fmt.Sprintf("expected document, but got node type %v", docNode.Type()))
	}
	result := make(ast.BlockSlice, 0, docNode.ChildCount())
	for child := docNode.FirstChild(); child != nil; child = child.NextSibling() {
		if block := p.acceptBlock(child); block != nil {
			result = append(result, block)
		}
	}
	return result
}

func (p *mdP) acceptBlock(node gmAst.Node) ast.BlockNode {
	if node.Type() != gmAst.TypeBlock {
		panic(fmt.Sprintf("expected block node, but got node type %v", node.Type()))
	}
	switch n := node.(type) {
	case *gmAst.Paragraph:
		return p.acceptParagraph(n)
	case *gmAst.TextBlock:
		return p.acceptTextBlock(n)
	case *gmAst.Heading:
		return &ast.HeadingNode{Level: n.Level, Inlines: p.acceptInlineChildren(n)}
	case *gmAst.ThematicBreak:
		return &ast.HRuleNode{}
	case *gmAst.CodeBlock:
		return &ast.CodeBlockNode{Kind: ast.CodeBlockProg, Lines: p.acceptRawText(n)}
	case *gmAst.FencedCodeBlock:
		return p.acceptFencedCodeBlock(n)
	case *gmAst.Blockquote:
		return p.acceptBlockquote(n)
	case *gmAst.List:
		return p.acceptList(n)
	case *gmAst.HTMLBlock:
		return p.acceptHTMLBlock(n)
	}
	panic(fmt.Sprintf("unhandled block node of kind %v", node.Kind()))
}

func (p *mdP) acceptParagraph(node *gmAst.Paragraph) ast.BlockNode {
	if is := p.acceptInlineChildren(node); len(is) > 0 {
		return &ast.ParaNode{Inlines: is}
	}
	return nil
}

func (p *mdP) acceptTextBlock(node *gmAst.TextBlock) ast.BlockNode {
	if is := p.acceptInlineChildren(node); len(is) > 0 {
		return &ast.ParaNode{Inlines: is}
	}
	return nil
}

func (p *mdP) acceptFencedCodeBlock(node *gmAst.FencedCodeBlock) *ast.CodeBlockNode {
	var lang string
	if language := node.Language(p.source); len(language) > 0 {
		lang = cleanText(string(language))
	}
	return &ast.CodeBlockNode{
		Kind:  ast.CodeBlockProg,
		Lang:  lang,
		Lines: p.acceptRawText(node),
	}
}

func (p *mdP) acceptRawText(node gmAst.Node) []string {
	lines := node.Lines()
	result := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		s := lines.At(i)
		line := s.Value(p.source)
		if l := len(line); l > 0 {
			if l > 1 && line[l-2] == '\r' && line[l-1] == '\n' {
				line = line[0 : l-2]
			} else if line[l-1] == '\n' || line[l-1] == '\r' {
				line = line[0 : l-1]
			}
		}
		result = append(result, string(line))
	}
	return result
}

func (p *mdP) acceptBlockquote(node *gmAst.Blockquote) *ast.RegionNode {
	blocks := make(ast.BlockSlice, 0, node.ChildCount())
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if block := p.acceptBlock(child); block != nil {
			blocks = append(blocks, block)
		}
	}
	return &ast.RegionNode{Kind: ast.RegionQuote, Blocks: blocks}
}

func (p *mdP) acceptList(node *gmAst.List) ast.BlockNode {
	kind := ast.NestedListUnordered
	var attrs ast.Attributes
	if node.IsOrdered() {
		kind = ast.NestedListOrdered
		if node.Start != 1 {
			attrs = attrs.Set("start", fmt.Sprintf("%d", node.Start))
		}
	}
	items := make([]ast.ItemSlice, 0, node.ChildCount())
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		item, ok := child.(*gmAst.ListItem)
		if !ok {
			panic(fmt.Sprintf("expected list item node, but got %v", child.Kind()))
		}
		items = append(items, p.acceptItemSlice(item))
	}
	return &ast.NestedListNode{Kind: kind, Items: items, Attrs: attrs}
}

func (p *mdP) acceptItemSlice(node gmAst.Node) ast.ItemSlice {
	result := make(ast.ItemSlice, 0, node.ChildCount())
	for elem := node.FirstChild(); elem != nil; elem = elem.NextSibling() {
		if block := p.acceptBlock(elem); block != nil {
			result = append(result, block.(ast.ItemNode))
		}
	}
	return result
}

func (p *mdP) acceptHTMLBlock(node *gmAst.HTMLBlock) *ast.CodeBlockNode {
	lines := p.acceptRawText(node)
	if node.HasClosure() {
		closure := string(node.ClosureLine.Value(p.source))
		if l := len(closure); l > 1 && closure[l-1] == '\n' {
			closure = closure[:l-1]
		}
		lines = append(lines, closure)
	}
	return &ast.CodeBlockNode{Kind: ast.CodeBlockHTML, Lines: lines}
}

func (p *mdP) acceptInlineChildren(node gmAst.Node) ast.InlineSlice {
	result := make(ast.InlineSlice, 0, node.ChildCount())
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if inlines := p.acceptInline(child); inlines != nil {
			result = append(result, inlines...)
		}
	}
	return result
}

func (p *mdP) acceptInline(node gmAst.Node) ast.InlineSlice {
	if node.Type() != gmAst.TypeInline {
		panic(fmt.Sprintf("expected inline node, but got %v", node.Type()))
	}
	switch n := node.(type) {
	case *gmAst.Text:
		return p.acceptText(n)
	case *gmAst.String:
		return splitText(string(n.Value))
	case *gmAst.CodeSpan:
		return ast.InlineSlice{&ast.LiteralNode{
			Kind: ast.LiteralProg,
			Text: cleanCodeSpan(string(n.Text(p.source))),
		}}
	case *gmAst.Emphasis:
		return p.acceptEmphasis(n)
	case *gmAst.Link:
		return p.acceptLink(n)
	case *gmAst.AutoLink:
		return p.acceptAutoLink(n)
	case *gmAst.RawHTML:
		return p.acceptRawHTML(n)
	case *gmAst.Image:
		// Images are rendered as links to their source.
		return p.acceptImage(n)
	}
	panic(fmt.Sprintf("unhandled inline node %v", node.Kind()))
}

func (p *mdP) acceptText(node *gmAst.Text) ast.InlineSlice {
	segment := node.Segment
	if node.IsRaw() {
		return splitText(string(segment.Value(p.source)))
	}
	ins := splitText(string(segment.Value(p.source)))
	result := make(ast.InlineSlice, 0, len(ins)+1)
	for _, in := range ins {
		if tn, ok := in.(*ast.TextNode); ok {
			tn.Text = cleanText(tn.Text)
		}
		result = append(result, in)
	}
	if node.HardLineBreak() {
		result = append(result, &ast.BreakNode{Hard: true})
	} else if node.SoftLineBreak() {
		result = append(result, &ast.BreakNode{})
	}
	return result
}

// splitText transforms the text into a sequence of TextNode and SpaceNode.
func splitText(text string) ast.InlineSlice {
	if text == "" {
		return nil
	}
	result := make(ast.InlineSlice, 0, 1)
	state := 0 // 0=unknown, 1=non-spaces, 2=spaces
	lastPos := 0
	for pos, ch := range text {
		if input.IsSpace(ch) {
			if state == 1 {
				result = append(result, &ast.TextNode{Text: text[lastPos:pos]})
				lastPos = pos
			}
			state = 2
		} else {
			if state == 2 {
				result = append(result, &ast.SpaceNode{Lexeme: text[lastPos:pos]})
				lastPos = pos
			}
			state = 1
		}
	}
	if state == 2 {
		result = append(result, &ast.SpaceNode{Lexeme: text[lastPos:]})
	} else {
		result = append(result, &ast.TextNode{Text: text[lastPos:]})
	}
	return result
}

var ignoreAfterBS = map[byte]bool{
	'!': true, '"': true, '#': true, '$': true, '%': true, '&': true,
	'\'': true, '(': true, ')': true, '*': true, '+': true, ',': true,
	'-': true, '.': true, '/': true, ':': true, ';': true, '<': true,
	'=': true, '>': true, '?': true, '@': true, '[': true, '\\': true,
	']': true, '^': true, '_': true, '`': true, '{': true, '|': true,
	'}': true, '~': true,
}

// cleanText removes backslash escapes from text.
func cleanText(text string) string {
	lastPos := 0
	var sb strings.Builder
	for pos := 0; pos < len(text); pos++ {
		if text[pos] == '\\' && pos < len(text)-1 && ignoreAfterBS[text[pos+1]] {
			sb.WriteString(text[lastPos:pos])
			sb.WriteByte(text[pos+1])
			pos++
			lastPos = pos + 1
		}
	}
	if lastPos == 0 {
		return text
	}
	if lastPos < len(text) {
		sb.WriteString(text[lastPos:])
	}
	return sb.String()
}

func cleanCodeSpan(text string) string {
	if text == "" {
		return ""
	}
	lastPos := 0
	var sb strings.Builder
	for pos, ch := range text {
		if ch == '\n' {
			sb.WriteString(text[lastPos:pos])
			if pos < len(text)-1 {
				sb.WriteByte(' ')
			}
			lastPos = pos + 1
		}
	}
	if lastPos == 0 {
		return text
	}
	sb.WriteString(text[lastPos:])
	return sb.String()
}

func (p *mdP) acceptEmphasis(node *gmAst.Emphasis) ast.InlineSlice {
	kind := ast.FormatItalic
	if node.Level == 2 {
		kind = ast.FormatBold
	}
	return ast.InlineSlice{&ast.FormatNode{
		Kind:    kind,
		Inlines: p.acceptInlineChildren(node),
	}}
}

func (p *mdP) acceptLink(node *gmAst.Link) ast.InlineSlice {
	ref := ast.ParseReference(cleanText(string(node.Destination)))
	var attrs ast.Attributes
	if title := string(node.Title); len(title) > 0 {
		attrs = attrs.Set("title", cleanText(title))
	}
	return ast.InlineSlice{&ast.LinkNode{
		Ref:     ref,
		Inlines: p.acceptInlineChildren(node),
		Attrs:   attrs,
	}}
}

func (p *mdP) acceptImage(node *gmAst.Image) ast.InlineSlice {
	ref := ast.ParseReference(cleanText(string(node.Destination)))
	inlines := p.acceptInlineChildren(node)
	if len(inlines) == 0 {
		inlines = ast.InlineSlice{&ast.TextNode{Text: ref.String()}}
	}
	return ast.InlineSlice{&ast.LinkNode{Ref: ref, Inlines: inlines}}
}

func (p *mdP) acceptAutoLink(node *gmAst.AutoLink) ast.InlineSlice {
	u := node.URL(p.source)
	if node.AutoLinkType == gmAst.AutoLinkEmail && !strings.HasPrefix(strings.ToLower(string(u)), "mailto:") {
		u = append([]byte("mailto:"), u...)
	}
	ref := ast.ParseReference(cleanText(string(u)))
	label := node.Label(p.source)
	if len(label) == 0 {
		label = u
	}
	return ast.InlineSlice{&ast.LinkNode{
		Ref:     ref,
		Inlines: ast.InlineSlice{&ast.TextNode{Text: string(label)}},
	}}
}

func (p *mdP) acceptRawHTML(node *gmAst.RawHTML) ast.InlineSlice {
	segs := make([]string, 0, node.Segments.Len())
	for i := 0; i < node.Segments.Len(); i++ {
		segment := node.Segments.At(i)
		segs = append(segs, string(segment.Value(p.source)))
	}
	return ast.InlineSlice{&ast.LiteralNode{
		Kind: ast.LiteralHTML,
		Text: strings.Join(segs, ""),
	}}
}
