//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package jsonenc_test

import (
	"strings"
	"testing"
	"time"

	"orgpress.de/op/domain"
	"orgpress.de/op/domain/meta"
	"orgpress.de/op/encoder/jsonenc"
)

func TestWriteRecordSlice(t *testing.T) {
	t.Parallel()
	recs := domain.RecordSlice{
		{
			Name:  "post",
			URL:   "https://example.com/post.html",
			Title: `A "quoted" title`,
			Tags:  []string{"go", "swift"},
			Date:  time.Date(2023, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		{Name: "note", Draft: true},
	}
	var sb strings.Builder
	if _, err := jsonenc.WriteRecordSlice(&sb, recs); err != nil {
		t.Fatalf("WriteRecordSlice: %v", err)
	}
	got := sb.String()
	for _, want := range []string{
		`"name":"post"`,
		`"title":"A \"quoted\" title"`,
		`"tags":["go","swift"]`,
		`"date":"2023-02-15"`,
		`"draft":true`,
		`"date":""`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %s in %s", want, got)
		}
	}
	if !strings.HasPrefix(got, "[") || !strings.HasSuffix(got, "]\n") {
		t.Errorf("no JSON array: %s", got)
	}
}

func TestWriteCategories(t *testing.T) {
	t.Parallel()
	ccs := meta.CountedCategories{
		{Name: "go", Count: 3},
		{Name: "swift", Count: 1},
	}
	var sb strings.Builder
	if _, err := jsonenc.WriteCategories(&sb, ccs); err != nil {
		t.Fatalf("WriteCategories: %v", err)
	}
	got := sb.String()
	if !strings.Contains(got, `{"name":"go","count":3}`) {
		t.Errorf("missing go entry in %s", got)
	}

	sb.Reset()
	if _, err := jsonenc.WriteCategories(&sb, nil); err != nil {
		t.Fatalf("WriteCategories(nil): %v", err)
	}
	if got = sb.String(); got != "[]\n" {
		t.Errorf("empty categories encode as %q", got)
	}
}

func TestEscape(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		in, exp string
	}{
		{"plain", "plain"},
		{"a\tb", `a\tb`},
		{`say "hi"`, `say \"hi\"`},
		{"back\\slash", `back\\slash`},
		{"ctrl\x01", `ctrl`},
	}
	for _, tc := range testcases {
		if got := string(jsonenc.Escape(tc.in)); got != tc.exp {
			t.Errorf("Escape(%q)=%q, expected %q", tc.in, got, tc.exp)
		}
	}
}
