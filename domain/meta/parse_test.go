//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package meta_test

import (
	"strings"
	"testing"

	"orgpress.de/op/domain/meta"
	"orgpress.de/op/input"
)

func parseMetaStr(src string) *meta.Meta {
	return meta.NewFromInput("doc", input.NewInput([]byte(src)))
}

func TestNewFromInput(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		src string
		exp []meta.Pair
	}{
		{"", []meta.Pair{}},
		{"#+title: A Title", []meta.Pair{{"title", "A Title"}}},
		{"#+TITLE: A Title", []meta.Pair{{"title", "A Title"}}},
		{"#+title:   spaced   ", []meta.Pair{{"title", "spaced"}}},
		{"#+key: value\nBody follows", []meta.Pair{{"key", "value"}}},
		{"# just a comment\n#+key: value", []meta.Pair{{"key", "value"}}},
		{"\n\n#+key: value", []meta.Pair{{"key", "value"}}},
		{"#+author: Jane Doe\n#+lang: EN", []meta.Pair{
			{"author", "Jane Doe"}, {"lang", "en"}}},
	}
	for i, tc := range testcases {
		m := parseMetaStr(tc.src)
		pairs := m.Pairs()
		if len(pairs) != len(tc.exp) {
			t.Errorf("%d: wrong number of pairs: expected %v, got %v", i, tc.exp, pairs)
			continue
		}
		for j, p := range pairs {
			if p != tc.exp[j] {
				t.Errorf("%d: expected pair %v, got %v", i, tc.exp[j], p)
			}
		}
	}
}

func TestBodyNotConsumed(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		src  string
		rest string
	}{
		{"#+title: T\nFirst body line", "First body line"},
		{"#+name: block-a\n#+begin_src go\n#+end_src", "#+name: block-a"},
		{"#+begin_quote\nwords\n#+end_quote", "#+begin_quote"},
		{"#tag-like line", "#tag-like line"},
	}
	for i, tc := range testcases {
		inp := input.NewInput([]byte(tc.src))
		meta.NewFromInput("doc", inp)
		rest := string(inp.Src[inp.Pos:])
		if !strings.HasPrefix(rest, tc.rest) {
			t.Errorf("%d: expected rest %q, got %q", i, tc.rest, rest)
		}
	}
}

func TestParseTags(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		src string
		exp []string
	}{
		{"#+tags: swift", []string{"swift"}},
		{"#+tags: #swift", []string{"swift"}},
		{"#+tags: go, parser", []string{"go", "parser"}},
		{"#+tags: GO go", []string{"go"}},
		{"#+tags: b a\n#+tags: c", []string{"a", "b", "c"}},
	}
	for i, tc := range testcases {
		m := parseMetaStr(tc.src)
		tags, ok := m.GetTags(meta.KeyTags)
		if !ok {
			t.Errorf("%d: no tags found in %q", i, tc.src)
			continue
		}
		if len(tags) != len(tc.exp) {
			t.Errorf("%d: expected tags %v, got %v", i, tc.exp, tags)
			continue
		}
		for j, tag := range tags {
			if tag != tc.exp[j] {
				t.Errorf("%d: expected tags %v, got %v", i, tc.exp, tags)
				break
			}
		}
	}
}

func TestMissingFields(t *testing.T) {
	t.Parallel()
	m := parseMetaStr("#+tags: swift")
	if got, ok := m.GetTags(meta.KeyTags); !ok || len(got) != 1 || got[0] != "swift" {
		t.Errorf("expected tags [swift], got %v", got)
	}
	if got := m.GetDefault(meta.KeySummary, ""); got != "" {
		t.Errorf("expected empty summary, got %q", got)
	}
	if got := m.GetDefault(meta.KeyTitle, "Untitled"); got != "Untitled" {
		t.Errorf("expected default title, got %q", got)
	}
}

func TestFrontMatter(t *testing.T) {
	t.Parallel()
	m := parseMetaStr("---\ntitle: YAML Title\ntags: [a, b]\n---\nBody")
	if !m.YamlSep {
		t.Error("expected YAML front matter to be recognized")
	}
	if got, _ := m.Get(meta.KeyTitle); got != "YAML Title" {
		t.Errorf("expected title from front matter, got %q", got)
	}
	if got, _ := m.GetTags(meta.KeyTags); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("expected tags [a b], got %v", got)
	}

	m = parseMetaStr("---\nnot terminated")
	if m.YamlSep {
		t.Error("unterminated front matter must not be recognized")
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		src string
		ok  bool
	}{
		{"#+date: 2023-10-21", true},
		{"#+date: <2023-10-21 Sat>", true},
		{"#+date: 2023-10-21 14:30", true},
		{"#+date: not-a-date", false},
	}
	for i, tc := range testcases {
		m := parseMetaStr(tc.src)
		if _, ok := m.GetTime(meta.KeyDate); ok != tc.ok {
			t.Errorf("%d: GetTime(%q) == %v, expected %v", i, tc.src, ok, tc.ok)
		}
		// Even a malformed date is kept as its raw value.
		if _, found := m.Get(meta.KeyDate); !found {
			t.Errorf("%d: raw date value of %q was dropped", i, tc.src)
		}
	}
}
