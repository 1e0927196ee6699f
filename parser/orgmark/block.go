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
	"orgpress.de/op/parser"
)

// stopFn reports whether the current line terminates the enclosing block
// structure. It must not consume any input.
type stopFn func(cp *orgP) bool

// parseBlockSlice parses a sequence of blocks, until EOS or until stop
// signals the terminator line of the enclosing structure.
func (cp *orgP) parseBlockSlice(stop stopFn) (bs ast.BlockSlice, terminated bool, err error) {
	inp := cp.inp
	var lastPara *ast.ParaNode
	bs = make(ast.BlockSlice, 0, 4)
	for inp.Ch != input.EOS {
		if stop != nil && stop(cp) {
			return bs, true, nil
		}
		bn, cont, err := cp.parseBlock(lastPara)
		if err != nil {
			return nil, false, err
		}
		if bn != nil {
			bs = append(bs, bn)
		}
		if !cont {
			lastPara, _ = bn.(*ast.ParaNode)
		}
	}
	return bs, false, nil
}

// parseBlock parses one block. The input is positioned at the start of a
// line. If the line cannot be interpreted as a structural element, it is
// parsed as paragraph text, possibly merged into the last paragraph.
func (cp *orgP) parseBlock(lastPara *ast.ParaNode) (res ast.BlockNode, cont bool, err error) {
	inp := cp.inp
	pos := inp.Pos
	indent := cp.lineIndent()

	var bn ast.BlockNode
	success := false

	switch inp.Ch {
	case input.EOS:
		return nil, false, nil
	case '\n', '\r':
		inp.EatEOL()
		cp.clearStacked()
		return nil, false, nil
	case '*':
		if indent == 0 {
			cp.clearStacked()
			bn, success = cp.parseHeading()
		}
	case '#':
		switch inp.Peek() {
		case '+':
			bn, success, err = cp.parseKeyword()
			if err != nil {
				return nil, false, err
			}
		case ' ', '\t', '\n', '\r', input.EOS:
			// Comment line
			inp.SkipToEOL()
			inp.EatEOL()
			return nil, false, nil
		}
	case ':':
		bn, success, err = cp.parseDrawer()
		if err != nil {
			return nil, false, err
		}
		if !success {
			cp.lists = nil
			cp.table = nil
			bn, success = cp.parseFixedWidth()
		}
	case '-':
		cp.table = nil
		cp.example = nil
		bn, success = cp.parseHRule()
		if !success {
			bn, success = cp.parseListItem(indent)
		}
	case '+', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		cp.table = nil
		cp.example = nil
		bn, success = cp.parseListItem(indent)
	case '|':
		cp.lists = nil
		cp.example = nil
		bn, success = cp.parseRow(), true
	case '[':
		if indent == 0 && inp.Peek() == 'f' {
			bn, success = cp.parseFootnoteDef()
			if success {
				cp.clearStacked()
			}
		}
	}

	if success {
		return bn, false, nil
	}

	inp.SetPos(pos)
	cp.lineIndent()
	cp.table = nil
	cp.example = nil
	if len(cp.lists) > 0 {
		if indent > cp.lists[len(cp.lists)-1].indent {
			cp.continueListItem()
			return nil, false, nil
		}
		cp.lists = nil
	}
	pn := cp.parseLinePara()
	if pn == nil {
		inp.EatEOL()
		return nil, false, nil
	}
	if lastPara != nil {
		// A line after a footnote definition continues the definition.
		if fn, ok := lastPara.Inlines[0].(*ast.FootnoteNode); ok && len(lastPara.Inlines) == 1 && fn.Label != "" {
			fn.Inlines = append(fn.Inlines, &ast.BreakNode{})
			fn.Inlines = append(fn.Inlines, pn.Inlines...)
			return nil, true, nil
		}
		lastPara.Inlines = append(lastPara.Inlines, &ast.BreakNode{})
		lastPara.Inlines = append(lastPara.Inlines, pn.Inlines...)
		return nil, true, nil
	}
	return pn, false, nil
}

// parseHeading parses a heading line. The number of leading asterisks gives
// the level of the heading.
func (cp *orgP) parseHeading() (hn *ast.HeadingNode, success bool) {
	inp := cp.inp
	delims := cp.countDelim('*')
	if inp.Ch != ' ' {
		return nil, false
	}
	inp.Next()
	cp.skipSpace()
	hn = &ast.HeadingNode{Level: delims}
	if todo, found := cp.parseTodoKeyword(); found {
		hn.Attrs = hn.Attrs.Set("todo", todo)
	}
	for {
		if input.IsEOLEOS(inp.Ch) {
			inp.EatEOL()
			return hn, true
		}
		in := cp.parseInline()
		if in == nil {
			inp.EatEOL()
			return hn, true
		}
		hn.Inlines = append(hn.Inlines, in)
	}
}

var todoKeywords = []string{"TODO", "DONE"}

func (cp *orgP) parseTodoKeyword() (string, bool) {
	inp := cp.inp
	pos := inp.Pos
	for _, kw := range todoKeywords {
		if inp.Accept(kw) {
			if inp.Ch == ' ' {
				inp.Next()
				cp.skipSpace()
				return kw, true
			}
			inp.SetPos(pos)
		}
	}
	return "", false
}

// parseHRule parses a horizontal rule: a line of five or more dashes.
func (cp *orgP) parseHRule() (hn *ast.HRuleNode, success bool) {
	inp := cp.inp
	pos := inp.Pos
	if cp.countDelim('-') >= 5 {
		cp.skipSpace()
		if input.IsEOLEOS(inp.Ch) {
			inp.EatEOL()
			cp.clearStacked()
			return &ast.HRuleNode{Attrs: cp.takeAttrs()}, true
		}
	}
	inp.SetPos(pos)
	return nil, false
}

// parseKeyword parses a "#+" line: either an affiliated keyword, the start
// of a greater block, or an in-body pragma that is skipped.
func (cp *orgP) parseKeyword() (res ast.BlockNode, success bool, err error) {
	inp := cp.inp
	pos := inp.Pos
	inp.Next() // skip '#'
	inp.Next() // skip '+'
	keyPos := inp.Pos
	for isKeywordRune(inp.Ch) {
		inp.Next()
	}
	key := strings.ToLower(string(inp.Src[keyPos:inp.Pos]))

	if blockWord := strings.TrimPrefix(key, "begin_"); blockWord != key && blockWord != "" {
		cp.clearStacked()
		bn, err := cp.parseBeginBlock(blockWord, inp.LineOf(pos))
		if err != nil {
			return nil, false, err
		}
		return bn, true, nil
	}
	if inp.Ch != ':' || key == "" {
		inp.SetPos(pos)
		return nil, false, nil
	}
	inp.Next()
	cp.skipSpace()
	valPos := inp.Pos
	inp.SkipToEOL()
	val := strings.TrimRight(string(inp.Src[valPos:inp.Pos]), " \t")
	inp.EatEOL()
	switch {
	case key == "name":
		cp.nextName = val
	case key == "caption":
		cp.nextAttrs = cp.nextAttrs.Set("caption", val)
	case strings.HasPrefix(key, "attr_"):
		for k, v := range parseHeaderArgs(val) {
			cp.nextAttrs = cp.nextAttrs.Set(k, v)
		}
	default:
		// Other in-body pragmas carry no content.
	}
	return nil, true, nil
}

func isKeywordRune(ch rune) bool {
	return ('a' <= ch && ch <= 'z') ||
		('A' <= ch && ch <= 'Z') ||
		('0' <= ch && ch <= '9') ||
		ch == '_' || ch == '-'
}

var regionKinds = map[string]ast.RegionKind{
	"quote":  ast.RegionQuote,
	"center": ast.RegionCenter,
	"verse":  ast.RegionVerse,
}

// parseBeginBlock parses a block that was opened with "#+begin_<word>".
func (cp *orgP) parseBeginBlock(word string, openLine int) (ast.BlockNode, error) {
	switch word {
	case "src":
		return cp.parseSrcBlock(openLine)
	case "example":
		return cp.parseVerbatimBlock(word, ast.CodeBlockExample, "", openLine)
	case "comment":
		return cp.parseVerbatimBlock(word, ast.CodeBlockComment, "", openLine)
	case "export":
		return cp.parseExportBlock(openLine)
	}
	if kind, ok := regionKinds[word]; ok {
		return cp.parseRegion(word, kind, openLine)
	}
	return cp.parseRegion(word, ast.RegionSpan, openLine)
}

// parseSrcBlock parses a "#+begin_src" block up to its "#+end_src" line.
func (cp *orgP) parseSrcBlock(openLine int) (*ast.CodeBlockNode, error) {
	inp := cp.inp
	cp.skipSpace()
	langPos := inp.Pos
	for !input.IsSpace(inp.Ch) && !input.IsEOLEOS(inp.Ch) {
		inp.Next()
	}
	lang := string(inp.Src[langPos:inp.Pos])
	cp.skipSpace()
	argPos := inp.Pos
	inp.SkipToEOL()
	attrs := parseHeaderArgs(string(inp.Src[argPos:inp.Pos]))
	inp.EatEOL()

	cn := &ast.CodeBlockNode{
		Kind: ast.CodeBlockProg,
		Lang: lang,
		Name: cp.takeName(),
	}
	for k, v := range cp.takeAttrs() {
		attrs = attrs.Set(k, v)
	}
	cn.Attrs = attrs
	if ref, ok := attrs.Get("noweb-ref"); ok && cn.Name == "" {
		cn.Name = ref
	}

	lines, terminated := cp.readVerbatimLines("src")
	if !terminated {
		name := cn.Name
		if name == "" {
			name = lang
		}
		return nil, &parser.StructuralError{Kind: "src block", Name: name, Line: openLine}
	}
	cn.Lines = lines
	for _, line := range lines {
		cn.Refs = scanRefs(line, cn.Refs)
	}
	return cn, nil
}

// parseVerbatimBlock parses a block whose content is not interpreted.
func (cp *orgP) parseVerbatimBlock(word string, kind ast.CodeBlockKind, lang string, openLine int) (*ast.CodeBlockNode, error) {
	inp := cp.inp
	inp.SkipToEOL()
	inp.EatEOL()
	cn := &ast.CodeBlockNode{
		Kind:  kind,
		Lang:  lang,
		Name:  cp.takeName(),
		Attrs: cp.takeAttrs(),
	}
	lines, terminated := cp.readVerbatimLines(word)
	if !terminated {
		return nil, &parser.StructuralError{Kind: word + " block", Name: cn.Name, Line: openLine}
	}
	cn.Lines = lines
	return cn, nil
}

// parseExportBlock parses a "#+begin_export" block. Only HTML export blocks
// carry semantics for the renderer, all other back-ends are kept verbatim.
func (cp *orgP) parseExportBlock(openLine int) (*ast.CodeBlockNode, error) {
	inp := cp.inp
	cp.skipSpace()
	langPos := inp.Pos
	for !input.IsSpace(inp.Ch) && !input.IsEOLEOS(inp.Ch) {
		inp.Next()
	}
	lang := strings.ToLower(string(inp.Src[langPos:inp.Pos]))
	kind := ast.CodeBlockExample
	if lang == "html" {
		kind = ast.CodeBlockHTML
	}
	return cp.parseVerbatimBlock("export", kind, lang, openLine)
}

// readVerbatimLines collects raw lines until the matching end line.
func (cp *orgP) readVerbatimLines(word string) (lines []string, terminated bool) {
	inp := cp.inp
	for {
		if inp.Ch == input.EOS {
			return lines, false
		}
		if cp.atBlockEnd(word, true) {
			return lines, true
		}
		pos := inp.Pos
		inp.SkipToEOL()
		lines = append(lines, string(inp.Src[pos:inp.Pos]))
		inp.EatEOL()
	}
}

// parseRegion parses a region block; its content is interpreted as blocks.
func (cp *orgP) parseRegion(word string, kind ast.RegionKind, openLine int) (*ast.RegionNode, error) {
	inp := cp.inp
	inp.SkipToEOL()
	inp.EatEOL()
	attrs := cp.takeAttrs()
	cp.takeName()
	blocks, terminated, err := cp.parseBlockSlice(func(p *orgP) bool {
		return p.atBlockEnd(word, false)
	})
	if err != nil {
		return nil, err
	}
	if !terminated {
		return nil, &parser.StructuralError{Kind: word + " block", Line: openLine}
	}
	cp.atBlockEnd(word, true)
	cp.clearStacked()
	return &ast.RegionNode{Kind: kind, Attrs: attrs, Blocks: blocks}, nil
}

// atBlockEnd reports whether the current line is "#+end_<word>". If consume
// is true and the line matches, it is consumed.
func (cp *orgP) atBlockEnd(word string, consume bool) bool {
	inp := cp.inp
	pos := inp.Pos
	cp.lineIndent()
	if !cp.acceptFold("#+end_") || !cp.acceptFold(word) {
		inp.SetPos(pos)
		return false
	}
	cp.skipSpace()
	if !input.IsEOLEOS(inp.Ch) {
		inp.SetPos(pos)
		return false
	}
	if !consume {
		inp.SetPos(pos)
		return true
	}
	inp.EatEOL()
	return true
}

// acceptFold matches the given lowercase string, ignoring ASCII case.
func (cp *orgP) acceptFold(s string) bool {
	inp := cp.inp
	for _, r := range s {
		ch := inp.Ch
		if 'A' <= ch && ch <= 'Z' {
			ch += 'a' - 'A'
		}
		if ch != r {
			return false
		}
		inp.Next()
	}
	return true
}

// parseDrawer parses a drawer, i.e. a ":NAME:" line followed by blocks up to
// the next ":END:" line.
func (cp *orgP) parseDrawer() (res ast.BlockNode, success bool, err error) {
	inp := cp.inp
	pos := inp.Pos
	inp.Next() // skip ':'
	namePos := inp.Pos
	for isDrawerNameRune(inp.Ch) {
		inp.Next()
	}
	if namePos == inp.Pos || inp.Ch != ':' {
		inp.SetPos(pos)
		return nil, false, nil
	}
	name := string(inp.Src[namePos:inp.Pos])
	inp.Next()
	cp.skipSpace()
	if !input.IsEOLEOS(inp.Ch) || strings.EqualFold(name, "end") {
		inp.SetPos(pos)
		return nil, false, nil
	}
	inp.EatEOL()
	cp.clearStacked()
	blocks, terminated, err := cp.parseBlockSlice(func(p *orgP) bool {
		return p.atDrawerEnd(false)
	})
	if err != nil {
		return nil, false, err
	}
	if !terminated {
		return nil, false, &parser.StructuralError{Kind: "drawer", Name: name, Line: inp.LineOf(pos)}
	}
	cp.atDrawerEnd(true)
	cp.clearStacked()
	return &ast.DrawerNode{Name: strings.ToUpper(name), Blocks: blocks}, true, nil
}

func isDrawerNameRune(ch rune) bool {
	return ('a' <= ch && ch <= 'z') ||
		('A' <= ch && ch <= 'Z') ||
		('0' <= ch && ch <= '9') ||
		ch == '_' || ch == '-'
}

// atDrawerEnd reports whether the current line is ":END:". If consume is
// true and the line matches, it is consumed.
func (cp *orgP) atDrawerEnd(consume bool) bool {
	inp := cp.inp
	pos := inp.Pos
	cp.lineIndent()
	if !cp.acceptFold(":end:") {
		inp.SetPos(pos)
		return false
	}
	cp.skipSpace()
	if !input.IsEOLEOS(inp.Ch) {
		inp.SetPos(pos)
		return false
	}
	if !consume {
		inp.SetPos(pos)
		return true
	}
	inp.EatEOL()
	return true
}

// parseFixedWidth parses a fixed-width line, i.e. a line that starts with
// ": ". Adjacent fixed-width lines are collected into one example block.
func (cp *orgP) parseFixedWidth() (res ast.BlockNode, success bool) {
	inp := cp.inp
	if ch := inp.Peek(); ch != ' ' && !input.IsEOLEOS(ch) {
		return nil, false
	}
	inp.Next() // skip ':'
	if inp.Ch == ' ' {
		inp.Next()
	}
	pos := inp.Pos
	inp.SkipToEOL()
	line := string(inp.Src[pos:inp.Pos])
	inp.EatEOL()
	if cp.example != nil {
		cp.example.Lines = append(cp.example.Lines, line)
		return nil, true
	}
	cp.example = &ast.CodeBlockNode{Kind: ast.CodeBlockExample, Lines: []string{line}}
	return cp.example, true
}

// parseListItem parses one list item line, managing the stack of open lists.
func (cp *orgP) parseListItem(indent int) (res ast.BlockNode, success bool) {
	inp := cp.inp
	pos := inp.Pos
	var kind ast.NestedListKind
	switch inp.Ch {
	case '-', '+':
		if ch := inp.Peek(); ch != ' ' && ch != '\t' {
			return nil, false
		}
		inp.Next()
		kind = ast.NestedListUnordered
	default:
		for '0' <= inp.Ch && inp.Ch <= '9' {
			inp.Next()
		}
		if inp.Ch != '.' && inp.Ch != ')' {
			inp.SetPos(pos)
			return nil, false
		}
		inp.Next()
		if ch := inp.Ch; ch != ' ' && ch != '\t' {
			inp.SetPos(pos)
			return nil, false
		}
		kind = ast.NestedListOrdered
	}
	cp.skipSpace()
	pn := cp.parseLinePara()
	if pn == nil {
		pn = &ast.ParaNode{}
		inp.EatEOL()
	}
	item := ast.ItemSlice{pn}

	for len(cp.lists) > 0 {
		top := cp.lists[len(cp.lists)-1]
		if top.indent > indent || (top.indent == indent && top.node.Kind != kind) {
			cp.lists = cp.lists[:len(cp.lists)-1]
			continue
		}
		break
	}
	if len(cp.lists) > 0 {
		top := cp.lists[len(cp.lists)-1]
		if top.indent == indent {
			top.node.Items = append(top.node.Items, item)
			return nil, true
		}
		// top.indent < indent: open a nested list inside the last item
		ln := &ast.NestedListNode{Kind: kind, Items: []ast.ItemSlice{item}}
		items := top.node.Items
		last := len(items) - 1
		items[last] = append(items[last], ln)
		cp.lists = append(cp.lists, openList{indent, ln})
		return nil, true
	}
	ln := &ast.NestedListNode{Kind: kind, Items: []ast.ItemSlice{item}}
	cp.lists = append(cp.lists, openList{indent, ln})
	return ln, true
}

// continueListItem appends an indented continuation line to the last open
// list item.
func (cp *orgP) continueListItem() {
	pn := cp.parseLinePara()
	if pn == nil {
		cp.inp.EatEOL()
		return
	}
	top := cp.lists[len(cp.lists)-1]
	items := top.node.Items
	item := items[len(items)-1]
	if lp, ok := item[len(item)-1].(*ast.ParaNode); ok {
		lp.Inlines = append(lp.Inlines, &ast.BreakNode{})
		lp.Inlines = append(lp.Inlines, pn.Inlines...)
		return
	}
	items[len(items)-1] = append(item, pn)
}

// parseRow parses one table line.
func (cp *orgP) parseRow() ast.BlockNode {
	inp := cp.inp
	if inp.Peek() == '-' {
		inp.SkipToEOL()
		inp.EatEOL()
		if cp.table == nil {
			cp.table = &ast.TableNode{}
			return cp.table
		}
		if len(cp.table.Header) == 0 && len(cp.table.Rows) > 0 {
			cp.table.Header = cp.table.Rows[0]
			cp.table.Rows = cp.table.Rows[1:]
		}
		return nil
	}
	row := make(ast.TableRow, 0, 4)
	for inp.Ch == '|' {
		inp.Next()
		cp.skipSpace()
		if input.IsEOLEOS(inp.Ch) {
			break
		}
		cell := &ast.TableCell{Align: ast.AlignDefault}
		for !input.IsEOLEOS(inp.Ch) && inp.Ch != '|' {
			in := cp.parseInline()
			if in == nil {
				break
			}
			cell.Inlines = append(cell.Inlines, in)
		}
		row = append(row, cell)
	}
	inp.EatEOL()
	if cp.table == nil {
		cp.table = &ast.TableNode{Rows: []ast.TableRow{row}}
		return cp.table
	}
	cp.table.Rows = append(cp.table.Rows, row)
	return nil
}

// parseLinePara parses the rest of the line as paragraph text.
// parseFootnoteDef parses a standalone footnote definition line
// "[fn:label] text". The definition does not render in place; the text
// appears as an endnote once the label is referenced.
func (cp *orgP) parseFootnoteDef() (ast.BlockNode, bool) {
	inp := cp.inp
	if !inp.Accept("[fn:") {
		return nil, false
	}
	pos := inp.Pos
	for isLabelRune(inp.Ch) {
		inp.Next()
	}
	label := string(inp.Src[pos:inp.Pos])
	if label == "" || inp.Ch != ']' {
		return nil, false
	}
	inp.Next() // skip ']'
	if !input.IsSpace(inp.Ch) && !input.IsEOLEOS(inp.Ch) {
		return nil, false
	}
	inp.SkipSpace()
	fn := &ast.FootnoteNode{Label: label}
	for !input.IsEOLEOS(inp.Ch) {
		in := cp.parseInline()
		if in == nil {
			break
		}
		fn.Inlines = append(fn.Inlines, in)
	}
	inp.EatEOL()
	return &ast.ParaNode{Inlines: ast.InlineSlice{fn}}, true
}

func (cp *orgP) parseLinePara() *ast.ParaNode {
	pn := &ast.ParaNode{}
	for {
		if input.IsEOLEOS(cp.inp.Ch) {
			cp.inp.EatEOL()
			break
		}
		in := cp.parseInline()
		if in == nil {
			break
		}
		pn.Inlines = append(pn.Inlines, in)
	}
	if len(pn.Inlines) == 0 {
		return nil
	}
	return pn
}

// parseHeaderArgs parses ":key value" pairs of a block header line.
func parseHeaderArgs(s string) ast.Attributes {
	var attrs ast.Attributes
	fields := strings.Fields(s)
	for i := 0; i < len(fields); i++ {
		if !strings.HasPrefix(fields[i], ":") || len(fields[i]) < 2 {
			continue
		}
		key := fields[i][1:]
		var vals []string
		for i+1 < len(fields) && !strings.HasPrefix(fields[i+1], ":") {
			vals = append(vals, fields[i+1])
			i++
		}
		attrs = attrs.Set(key, strings.Join(vals, " "))
	}
	return attrs
}

// scanRefs collects all noweb references "<<name>>" of the given line, in
// order of their first occurrence.
func scanRefs(line string, refs []string) []string {
	for {
		start := strings.Index(line, "<<")
		if start < 0 {
			return refs
		}
		line = line[start+2:]
		stop := strings.Index(line, ">>")
		if stop <= 0 {
			continue
		}
		name := line[:stop]
		line = line[stop+2:]
		if name == "" || strings.ContainsAny(name, "<>") {
			continue
		}
		found := false
		for _, ref := range refs {
			if ref == name {
				found = true
				break
			}
		}
		if !found {
			refs = append(refs, name)
		}
	}
}
