//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package strfun_test

import (
	"strings"
	"testing"

	"orgpress.de/op/strfun"
)

func TestSlugify(t *testing.T) {
	t.Parallel()
	tests := []struct{ in, exp string }{
		{"simple test", "simple-test"},
		{"I'm a go developer", "i-m-a-go-developer"},
		{"-!->simple   test<-!-", "simple-test"},
		{"Hello, World", "hello-world"},
		{"Hëllô, Wörld", "hello-world"},
		{"Héllo, World", "hello-world"},
		{"", ""},
	}
	for i, tc := range tests {
		got := strfun.Slugify(tc.in)
		if got != tc.exp {
			t.Errorf("%d/%q: expected %q, got %q", i, tc.in, tc.exp, got)
		}
	}
}

func TestHTMLEscape(t *testing.T) {
	t.Parallel()
	tests := []struct{ in, exp string }{
		{"abc", "abc"},
		{"<", "&lt;"},
		{">", "&gt;"},
		{"&", "&amp;"},
		{`a<b&"c"`, `a&lt;b&amp;"c"`},
	}
	for i, tc := range tests {
		var sb strings.Builder
		strfun.HTMLEscape(&sb, tc.in)
		if got := sb.String(); got != tc.exp {
			t.Errorf("%d/%q: expected %q, got %q", i, tc.in, tc.exp, got)
		}
	}
}

func TestHTMLAttrEscape(t *testing.T) {
	t.Parallel()
	tests := []struct{ in, exp string }{
		{"abc", "abc"},
		{`"`, "&quot;"},
		{"<b>", "<b>"},
		{`a&"b"`, "a&amp;&quot;b&quot;"},
	}
	for i, tc := range tests {
		var sb strings.Builder
		strfun.HTMLAttrEscape(&sb, tc.in)
		if got := sb.String(); got != tc.exp {
			t.Errorf("%d/%q: expected %q, got %q", i, tc.in, tc.exp, got)
		}
	}
}

func TestXMLEscape(t *testing.T) {
	t.Parallel()
	tests := []struct{ in, exp string }{
		{"abc", "abc"},
		{"<a>", "&lt;a&gt;"},
		{`'"`, "&#39;&quot;"},
		{"a\tb", "a&#9;b"},
	}
	for i, tc := range tests {
		var sb strings.Builder
		strfun.XMLEscape(&sb, tc.in)
		if got := sb.String(); got != tc.exp {
			t.Errorf("%d/%q: expected %q, got %q", i, tc.in, tc.exp, got)
		}
	}
}

func TestSplitWords(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in  string
		exp []string
	}{
		{"", nil},
		{"alpha", []string{"alpha"}},
		{"alpha beta", []string{"alpha", "beta"}},
		{"alpha, beta,gamma", []string{"alpha", "beta", "gamma"}},
	}
	for i, tc := range tests {
		got := strfun.SplitWords(tc.in)
		if len(got) != len(tc.exp) {
			t.Errorf("%d/%q: expected %v, got %v", i, tc.in, tc.exp, got)
			continue
		}
		for j, w := range got {
			if w != tc.exp[j] {
				t.Errorf("%d/%q: expected %v, got %v", i, tc.in, tc.exp, got)
				break
			}
		}
	}
}

func TestSet(t *testing.T) {
	t.Parallel()
	s := strfun.NewSet("a", "b")
	if !s.Has("a") || !s.Has("b") {
		t.Error("set misses initial values")
	}
	if s.Has("c") {
		t.Error("set contains unexpected value")
	}
	s.Set("c")
	if !s.Has("c") {
		t.Error("set misses added value")
	}
}
