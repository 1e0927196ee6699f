//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package evaluator

import (
	"strings"

	"orgpress.de/op/ast"
	"orgpress.de/op/encoder/textenc"
)

// extractChangelog collects the entries of the document's changelog section:
// a heading named "Changelog", containing paragraphs or list items that open
// with a bolded date marker. Dates are kept as raw strings, a malformed date
// is display metadata and no cause for failure.
func extractChangelog(bs *ast.BlockSlice) []ast.ChangeEntry {
	hn := findChangelogHeading(*bs)
	if hn == nil {
		return nil
	}
	var entries []ast.ChangeEntry
	for _, bn := range hn.Blocks {
		switch n := bn.(type) {
		case *ast.ParaNode:
			entries = appendEntry(entries, n.Inlines)
		case *ast.NestedListNode:
			for _, item := range n.Items {
				for _, in := range item {
					if pn, ok := in.(*ast.ParaNode); ok {
						entries = appendEntry(entries, pn.Inlines)
					}
				}
			}
		}
	}
	return entries
}

func findChangelogHeading(bs ast.BlockSlice) *ast.HeadingNode {
	for _, bn := range bs {
		hn, ok := bn.(*ast.HeadingNode)
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(inlinesToString(&hn.Inlines)), "changelog") {
			return hn
		}
		if sub := findChangelogHeading(hn.Blocks); sub != nil {
			return sub
		}
	}
	return nil
}

func appendEntry(entries []ast.ChangeEntry, is ast.InlineSlice) []ast.ChangeEntry {
	if len(is) == 0 {
		return entries
	}
	var date string
	rest := is
	for len(rest) > 0 {
		if _, ok := rest[0].(*ast.SpaceNode); ok {
			rest = rest[1:]
			continue
		}
		break
	}
	if len(rest) > 0 {
		if fn, ok := rest[0].(*ast.FormatNode); ok && fn.Kind == ast.FormatBold {
			date = strings.TrimSpace(inlinesToString(&fn.Inlines))
			rest = rest[1:]
		}
	}
	text := strings.TrimLeft(inlinesToString(&rest), " \t:-")
	text = strings.TrimSpace(text)
	if date == "" && text == "" {
		return entries
	}
	return append(entries, ast.ChangeEntry{Date: date, Text: text})
}

func inlinesToString(is *ast.InlineSlice) string {
	var sb strings.Builder
	_, _ = textenc.Create().WriteInlines(&sb, is)
	return sb.String()
}
