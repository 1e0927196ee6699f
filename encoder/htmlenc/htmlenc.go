//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package htmlenc encodes the abstract syntax tree into HTML5.
package htmlenc

import (
	"io"
	"strconv"
	"strings"

	"orgpress.de/op/ast"
	"orgpress.de/op/domain/meta"
	"orgpress.de/op/encoder"
	"orgpress.de/op/encoder/textenc"
	"orgpress.de/op/parser/cleaner"
	"orgpress.de/op/strfun"
)

func init() {
	encoder.Register(encoder.EncodingHTML, func() encoder.Encoder { return Create() })
}

// Create an encoder.
func Create() *Encoder { return &myHE }

// Encoder encodes documents as HTML5 pages or fragments.
type Encoder struct {
	textEnc *textenc.Encoder
}

var myHE = Encoder{textEnc: textenc.Create()}

// WriteDocument encodes a full document as a HTML5 page.
func (he *Encoder) WriteDocument(w io.Writer, dn *ast.DocumentNode, evalMeta encoder.EvalMetaFunc) (int, error) {
	v := newVisitor(w, &dn.Ast)
	v.b.WriteString("<!DOCTYPE html>\n<html")
	if lang, found := dn.Meta.Get(meta.KeyLang); found {
		v.b.WriteString(" lang=\"")
		v.writeAttr(lang)
		v.b.WriteString("\"")
	}
	v.b.WriteString(">\n<head>\n<meta charset=\"utf-8\">\n")
	var title ast.InlineSlice
	if plainTitle, found := dn.Meta.Get(meta.KeyTitle); found && evalMeta != nil {
		title = evalMeta(plainTitle)
		var sb strings.Builder
		_, _ = he.textEnc.WriteInlines(&sb, &title)
		v.b.WriteString("<title>")
		v.writeEscaped(sb.String())
		v.b.WriteString("</title>\n")
	}
	v.b.WriteString("</head>\n<body>\n")
	if len(title) > 0 {
		v.b.WriteString("<h1>")
		v.walkInlines(title)
		v.b.WriteString("</h1>\n")
	}
	v.walkBlocks(dn.Ast)
	v.writeEndnotes()
	v.b.WriteString("</body>\n</html>\n")
	return v.b.Flush()
}

// WriteMeta encodes metadata as HTML meta elements.
func (he *Encoder) WriteMeta(w io.Writer, m *meta.Meta, _ encoder.EvalMetaFunc) (int, error) {
	v := newVisitor(w, nil)
	for _, p := range m.Pairs() {
		v.b.WriteString("<meta name=\"op-")
		v.writeAttr(p.Key)
		v.b.WriteString("\" content=\"")
		v.writeAttr(p.Value)
		v.b.WriteString("\">\n")
	}
	return v.b.Flush()
}

// WriteBlocks encodes a block slice as a HTML fragment, with footnotes
// rendered as endnotes after the content.
func (*Encoder) WriteBlocks(w io.Writer, bs *ast.BlockSlice) (int, error) {
	v := newVisitor(w, bs)
	v.walkBlocks(*bs)
	v.writeEndnotes()
	return v.b.Flush()
}

// WriteInlines encodes an inline slice as a HTML fragment.
func (*Encoder) WriteInlines(w io.Writer, is *ast.InlineSlice) (int, error) {
	v := newVisitor(w, nil)
	v.walkInlines(*is)
	return v.b.Flush()
}

type endnote struct {
	num     int
	inlines ast.InlineSlice
}

type visitor struct {
	b         encoder.EncWriter
	footnotes map[string]*ast.FootnoteNode // label -> definition
	numbers   map[string]int               // label -> endnote number
	notes     []endnote                    // endnotes in order of first use
}

func newVisitor(w io.Writer, bs *ast.BlockSlice) *visitor {
	v := &visitor{
		b:       encoder.NewEncWriter(w),
		numbers: map[string]int{},
	}
	if bs != nil {
		v.footnotes = cleaner.CollectFootnotes(bs)
	} else {
		v.footnotes = map[string]*ast.FootnoteNode{}
	}
	return v
}

func (v *visitor) writeEscaped(s string)  { strfun.HTMLEscape(&v.b, s) }
func (v *visitor) writeAttr(s string)     { strfun.HTMLAttrEscape(&v.b, s) }
func (v *visitor) writeEscapedLines(lines []string) {
	for i, line := range lines {
		if i > 0 {
			_ = v.b.WriteByte('\n')
		}
		v.writeEscaped(line)
	}
}

func (v *visitor) walkBlocks(bs ast.BlockSlice) {
	for _, bn := range bs {
		v.writeBlock(bn)
	}
}

func (v *visitor) writeBlock(bn ast.BlockNode) {
	switch n := bn.(type) {
	case *ast.ParaNode:
		if isFootnoteDef(n) {
			// Definitions surface as endnotes, not in place.
			return
		}
		v.b.WriteString("<p>")
		v.walkInlines(n.Inlines)
		v.b.WriteString("</p>\n")
	case *ast.HeadingNode:
		v.writeHeading(n)
	case *ast.CodeBlockNode:
		v.writeCodeBlock(n)
	case *ast.RegionNode:
		v.writeRegion(n)
	case *ast.DrawerNode:
		v.b.WriteString("<div class=\"drawer\" data-drawer=\"")
		v.writeAttr(n.Name)
		v.b.WriteString("\">\n")
		v.walkBlocks(n.Blocks)
		v.b.WriteString("</div>\n")
	case *ast.HRuleNode:
		v.b.WriteString("<hr>\n")
	case *ast.NestedListNode:
		v.writeNestedList(n)
	case *ast.TableNode:
		v.writeTable(n)
	}
}

// isFootnoteDef reports whether the paragraph holds nothing but a labeled
// footnote definition.
func isFootnoteDef(pn *ast.ParaNode) bool {
	if len(pn.Inlines) != 1 {
		return false
	}
	fn, ok := pn.Inlines[0].(*ast.FootnoteNode)
	return ok && fn.Label != ""
}

func (v *visitor) writeHeading(hn *ast.HeadingNode) {
	// The document title occupies h1, the outline starts at h2.
	level := strconv.Itoa(hn.Level + 1)
	v.b.WriteStrings("<h", level)
	if fragment := hn.Fragment; fragment != "" {
		v.b.WriteString(" id=\"")
		v.writeAttr(fragment)
		v.b.WriteString("\"")
	}
	v.b.WriteString(">")
	v.walkInlines(hn.Inlines)
	v.b.WriteStrings("</h", level, ">\n")
	v.walkBlocks(hn.Blocks)
}

func (v *visitor) writeCodeBlock(cn *ast.CodeBlockNode) {
	switch cn.Kind {
	case ast.CodeBlockProg:
		v.b.WriteString("<pre><code")
		if cn.Lang != "" {
			v.b.WriteString(" class=\"language-")
			v.writeAttr(cn.Lang)
			v.b.WriteString("\"")
		}
		if cn.Name != "" {
			v.b.WriteString(" data-name=\"")
			v.writeAttr(cn.Name)
			v.b.WriteString("\"")
		}
		v.b.WriteString(">")
		v.writeEscapedLines(cn.Lines)
		v.b.WriteString("</code></pre>\n")
	case ast.CodeBlockExample:
		v.b.WriteString("<pre>")
		v.writeEscapedLines(cn.Lines)
		v.b.WriteString("</pre>\n")
	case ast.CodeBlockHTML:
		for _, line := range cn.Lines {
			v.b.WriteStrings(line, "\n")
		}
	case ast.CodeBlockComment:
		// Comments do not appear in the output.
	}
}

func (v *visitor) writeRegion(rn *ast.RegionNode) {
	var tag, class string
	switch rn.Kind {
	case ast.RegionQuote:
		tag = "blockquote"
	case ast.RegionCenter:
		tag, class = "div", "center"
	case ast.RegionVerse:
		tag, class = "div", "verse"
	default:
		tag = "div"
	}
	v.b.WriteStrings("<", tag)
	if class != "" {
		v.b.WriteStrings(" class=\"", class, "\"")
	}
	v.b.WriteString(">\n")
	v.walkBlocks(rn.Blocks)
	if len(rn.Inlines) > 0 {
		v.b.WriteString("<cite>")
		v.walkInlines(rn.Inlines)
		v.b.WriteString("</cite>\n")
	}
	v.b.WriteStrings("</", tag, ">\n")
}

func (v *visitor) writeNestedList(ln *ast.NestedListNode) {
	tag := "ul"
	if ln.Kind == ast.NestedListOrdered {
		tag = "ol"
	}
	v.b.WriteStrings("<", tag)
	if start, found := ln.Attrs.Get("start"); found {
		v.b.WriteString(" start=\"")
		v.writeAttr(start)
		v.b.WriteString("\"")
	}
	v.b.WriteString(">\n")
	for _, item := range ln.Items {
		v.b.WriteString("<li>")
		v.writeItemSlice(item)
		v.b.WriteString("</li>\n")
	}
	v.b.WriteStrings("</", tag, ">\n")
}

func (v *visitor) writeItemSlice(item ast.ItemSlice) {
	if len(item) == 1 {
		if pn, ok := item[0].(*ast.ParaNode); ok {
			v.walkInlines(pn.Inlines)
			return
		}
	}
	for _, in := range item {
		if bn, ok := in.(ast.BlockNode); ok {
			v.writeBlock(bn)
		}
	}
}

func (v *visitor) writeTable(tn *ast.TableNode) {
	v.b.WriteString("<table>\n")
	if len(tn.Header) > 0 {
		v.b.WriteString("<thead>\n<tr>")
		for _, cell := range tn.Header {
			v.b.WriteString("<th>")
			v.walkInlines(cell.Inlines)
			v.b.WriteString("</th>")
		}
		v.b.WriteString("</tr>\n</thead>\n")
	}
	v.b.WriteString("<tbody>\n")
	for _, row := range tn.Rows {
		v.b.WriteString("<tr>")
		for _, cell := range row {
			v.b.WriteString("<td>")
			v.walkInlines(cell.Inlines)
			v.b.WriteString("</td>")
		}
		v.b.WriteString("</tr>\n")
	}
	v.b.WriteString("</tbody>\n</table>\n")
}

func (v *visitor) walkInlines(is ast.InlineSlice) {
	for _, in := range is {
		v.writeInline(in)
	}
}

func (v *visitor) writeInline(in ast.InlineNode) {
	switch n := in.(type) {
	case *ast.TextNode:
		v.writeEscaped(n.Text)
	case *ast.SpaceNode:
		_ = v.b.WriteByte(' ')
	case *ast.BreakNode:
		if n.Hard {
			v.b.WriteString("<br>\n")
		} else {
			_ = v.b.WriteByte('\n')
		}
	case *ast.LinkNode:
		v.writeLink(n)
	case *ast.MarkNode:
		v.b.WriteString("<a id=\"")
		if n.Fragment != "" {
			v.writeAttr(n.Fragment)
		} else {
			v.writeAttr(n.Mark)
		}
		v.b.WriteString("\"></a>")
	case *ast.FormatNode:
		v.writeFormat(n)
	case *ast.LiteralNode:
		v.writeLiteral(n)
	case *ast.FootnoteNode:
		v.writeFootnoteMark(n.Label, n.Inlines)
	case *ast.FootnoteRefNode:
		fn, found := v.footnotes[n.Label]
		if !found {
			v.b.SetError(&encoder.UnresolvedFootnoteError{Label: n.Label})
			return
		}
		v.writeFootnoteMark(n.Label, fn.Inlines)
	}
}

func (v *visitor) writeLink(ln *ast.LinkNode) {
	v.b.WriteString("<a href=\"")
	v.writeAttr(ln.Ref.String())
	v.b.WriteString("\"")
	if ln.Ref.IsExternal() {
		v.b.WriteString(" rel=\"external\"")
	}
	if title, found := ln.Attrs.Get("title"); found {
		v.b.WriteString(" title=\"")
		v.writeAttr(title)
		v.b.WriteString("\"")
	}
	v.b.WriteString(">")
	if len(ln.Inlines) > 0 {
		v.walkInlines(ln.Inlines)
	} else {
		v.writeEscaped(ln.Ref.String())
	}
	v.b.WriteString("</a>")
}

var formatTags = map[ast.FormatKind][]string{
	ast.FormatBold:   {"<strong>", "</strong>"},
	ast.FormatItalic: {"<em>", "</em>"},
	ast.FormatUnder:  {"<span class=\"underline\">", "</span>"},
	ast.FormatStrike: {"<del>", "</del>"},
}

func (v *visitor) writeFormat(fn *ast.FormatNode) {
	tags, found := formatTags[fn.Kind]
	if !found {
		tags = []string{"<span>", "</span>"}
	}
	v.b.WriteString(tags[0])
	v.walkInlines(fn.Inlines)
	v.b.WriteString(tags[1])
}

func (v *visitor) writeLiteral(ln *ast.LiteralNode) {
	switch ln.Kind {
	case ast.LiteralProg, ast.LiteralVerbatim:
		v.b.WriteString("<code>")
		v.writeEscaped(ln.Text)
		v.b.WriteString("</code>")
	case ast.LiteralHTML:
		v.b.WriteString(ln.Text)
	case ast.LiteralComment:
		// Comments do not appear in the output.
	}
}

// writeFootnoteMark writes the numbered reference mark and registers the
// footnote text for the endnote section.
func (v *visitor) writeFootnoteMark(label string, inlines ast.InlineSlice) {
	key := label
	if key == "" {
		// Anonymous footnotes are distinct per occurrence.
		key = "\x00" + strconv.Itoa(len(v.notes))
	}
	num, found := v.numbers[key]
	if !found {
		num = len(v.notes) + 1
		v.numbers[key] = num
		v.notes = append(v.notes, endnote{num: num, inlines: inlines})
	}
	numStr := strconv.Itoa(num)
	v.b.WriteStrings(
		"<sup id=\"fnref:", numStr,
		"\"><a href=\"#fn:", numStr,
		"\" role=\"doc-noteref\">", numStr, "</a></sup>")
}

// writeEndnotes writes all used footnotes as a list of endnotes, each with
// a back-reference to its mark.
func (v *visitor) writeEndnotes() {
	if len(v.notes) == 0 {
		return
	}
	v.b.WriteString("<section role=\"doc-endnotes\">\n<hr>\n<ol>\n")
	for _, note := range v.notes {
		numStr := strconv.Itoa(note.num)
		v.b.WriteStrings("<li id=\"fn:", numStr, "\" role=\"doc-endnote\">")
		v.walkInlines(note.inlines)
		v.b.WriteStrings(
			" <a href=\"#fnref:", numStr,
			"\" role=\"doc-backlink\">&#x21a9;&#xfe0e;</a></li>\n")
	}
	v.b.WriteString("</ol>\n</section>\n")
}
