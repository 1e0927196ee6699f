//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package szenc_test

import (
	"strings"
	"testing"

	"orgpress.de/op/domain/meta"
	"orgpress.de/op/encoder"
	"orgpress.de/op/input"
	"orgpress.de/op/parser"

	_ "orgpress.de/op/encoder/szenc"
	_ "orgpress.de/op/parser/orgmark"
)

func encodeSz(t *testing.T, src string) string {
	t.Helper()
	m := meta.New("test")
	bs, err := parser.ParseBlocks(input.NewInput([]byte(src)), m, meta.ValueSyntaxOrg)
	if err != nil {
		t.Fatalf("ParseBlocks(%q): %v", src, err)
	}
	var sb strings.Builder
	if _, err = encoder.Create(encoder.EncodingSz).WriteBlocks(&sb, &bs); err != nil {
		t.Fatalf("WriteBlocks(%q): %v", src, err)
	}
	return sb.String()
}

func TestEncodeBlocks(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		descr  string
		source string
		expect string
	}{
		{
			"simple text",
			"Hello, world",
			`(BLOCK (PARA (TEXT "Hello,") (SPACE " ") (TEXT "world")))`,
		},
		{
			"bold emphasis",
			"*bold* rest",
			`(BLOCK (PARA (FORMAT-BOLD (TEXT "bold")) (SPACE " ") (TEXT "rest")))`,
		},
		{
			"inline code",
			"~go fmt~",
			`(BLOCK (PARA (LITERAL-CODE "go fmt")))`,
		},
		{
			"heading owns its section",
			"* Top\n\nBody.",
			`(BLOCK (HEADING 1 (ATTR) "top" "top" (INLINE (TEXT "Top")) (BLOCK (PARA (TEXT "Body.")))))`,
		},
		{
			"footnote reference",
			"See[fn:1].",
			`(BLOCK (PARA (TEXT "See") (FOOTNOTE-REF "1") (TEXT ".")))`,
		},
		{
			"external link",
			"[[https://example.com][site]]",
			`(BLOCK (PARA (LINK EXTERNAL "https://example.com" (TEXT "site"))))`,
		},
		{
			"source block",
			"#+begin_src go\nx := 1\n#+end_src\n",
			`(BLOCK (CODE "go" "" () (ATTR) ("x := 1")))`,
		},
	}
	for _, tc := range testcases {
		got := encodeSz(t, tc.source)
		if got != tc.expect {
			t.Errorf("%s:\nexpected: %s\ngot:      %s", tc.descr, tc.expect, got)
		}
	}
}

func TestEncodeMeta(t *testing.T) {
	t.Parallel()
	m := meta.New("test")
	m.Set(meta.KeyTitle, "A Title")
	var sb strings.Builder
	if _, err := encoder.Create(encoder.EncodingSz).WriteMeta(&sb, m, nil); err != nil {
		t.Fatalf("WriteMeta: %v", err)
	}
	got := sb.String()
	if expect := `(META (title "A Title"))`; got != expect {
		t.Errorf("expected %s, got %s", expect, got)
	}
}
