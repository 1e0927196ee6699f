//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package htmlenc_test

import (
	"errors"
	"strings"
	"testing"

	"orgpress.de/op/ast"
	"orgpress.de/op/encoder"
	"orgpress.de/op/encoder/htmlenc"
	"orgpress.de/op/input"
	"orgpress.de/op/parser"
	_ "orgpress.de/op/parser/orgmark"
)

func encodeBlocks(t *testing.T, src string) (string, error) {
	t.Helper()
	bs, err := parser.ParseBlocks(input.NewInput([]byte(src)), nil, "org")
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	var sb strings.Builder
	_, err = htmlenc.Create().WriteBlocks(&sb, &bs)
	return sb.String(), err
}

func mustEncodeBlocks(t *testing.T, src string) string {
	t.Helper()
	got, err := encodeBlocks(t, src)
	if err != nil {
		t.Fatalf("encode %q: %v", src, err)
	}
	return got
}

func TestCodeBlockLanguage(t *testing.T) {
	t.Parallel()
	got := mustEncodeBlocks(t, "#+begin_src swift\nlet x = 1\n#+end_src\n")
	want := "<pre><code class=\"language-swift\">let x = 1</code></pre>\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHeadingFragment(t *testing.T) {
	t.Parallel()
	got := mustEncodeBlocks(t, "* My Title\ntext\n")
	if !strings.Contains(got, "<h2 id=\"my-title\">My Title</h2>") {
		t.Errorf("expected heading with fragment, got %q", got)
	}
	if !strings.Contains(got, "<p>text</p>") {
		t.Errorf("expected paragraph inside heading, got %q", got)
	}
}

func TestFootnoteEndnotes(t *testing.T) {
	t.Parallel()
	got := mustEncodeBlocks(t, "text[fn:: a note]\n")
	for _, want := range []string{
		"<sup id=\"fnref:1\">",
		"href=\"#fn:1\"",
		"role=\"doc-endnotes\"",
		"<li id=\"fn:1\" role=\"doc-endnote\">a note",
		"role=\"doc-backlink\"",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in output %q", want, got)
		}
	}
}

func TestLabeledFootnoteRef(t *testing.T) {
	t.Parallel()
	got := mustEncodeBlocks(t, "claim[fn:src] proof[fn:src: see docs]\n")
	if strings.Count(got, "role=\"doc-endnote\"") != 1 {
		t.Errorf("expected exactly one endnote, got %q", got)
	}
	if !strings.Contains(got, "see docs") {
		t.Errorf("expected footnote text, got %q", got)
	}
}

func TestFootnoteDefinitionLineNotRendered(t *testing.T) {
	t.Parallel()
	got := mustEncodeBlocks(t, "Claim[fn:1].\n\n[fn:1] The note.\n")
	if strings.Count(got, "<p>") != 1 {
		t.Errorf("definition line rendered as paragraph: %q", got)
	}
	if !strings.Contains(got, "The note.") {
		t.Errorf("expected endnote text, got %q", got)
	}
	if strings.Count(got, "role=\"doc-endnote\"") != 1 {
		t.Errorf("expected exactly one endnote, got %q", got)
	}
}

func TestUnresolvedFootnote(t *testing.T) {
	t.Parallel()
	_, err := encodeBlocks(t, "claim[fn:missing]\n")
	var uerr *encoder.UnresolvedFootnoteError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected unresolved footnote error, got %v", err)
	}
	if uerr.Label != "missing" {
		t.Errorf("expected label 'missing', got %q", uerr.Label)
	}
}

func TestDanglingMarkupStaysLiteral(t *testing.T) {
	t.Parallel()
	got := mustEncodeBlocks(t, "some *dangling text\n")
	if strings.Contains(got, "<strong>") {
		t.Errorf("dangling markup must not emphasize, got %q", got)
	}
	if !strings.Contains(got, "*dangling") {
		t.Errorf("dangling marker must stay literal, got %q", got)
	}
}

func TestEscaping(t *testing.T) {
	t.Parallel()
	got := mustEncodeBlocks(t, "#+begin_src swift\nif a < b && c > d {}\n#+end_src\n")
	if !strings.Contains(got, "if a &lt; b &amp;&amp; c &gt; d {}") {
		t.Errorf("expected escaped code, got %q", got)
	}
}

func TestInlines(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	is := ast.InlineSlice{
		&ast.FormatNode{Kind: ast.FormatBold, Inlines: ast.CreateInlineSliceFromWords("loud")},
		&ast.SpaceNode{Lexeme: " "},
		&ast.LiteralNode{Kind: ast.LiteralProg, Text: "code"},
	}
	if _, err := htmlenc.Create().WriteInlines(&sb, &is); err != nil {
		t.Fatalf("encode inlines: %v", err)
	}
	if got := sb.String(); got != "<strong>loud</strong> <code>code</code>" {
		t.Errorf("unexpected output %q", got)
	}
}
