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
)

func newTestMeta(title string, tags []string, syntax string) *meta.Meta {
	m := meta.New(testName)
	if title != "" {
		m.Set(meta.KeyTitle, title)
	}
	if tags != nil {
		m.Set(meta.KeyTags, strings.Join(tags, " "))
	}
	if syntax != "" {
		m.Set(meta.KeySyntax, syntax)
	}
	return m
}

func assertWriteMeta(t *testing.T, m *meta.Meta, expected string) {
	t.Helper()
	sb := strings.Builder{}
	m.Write(&sb)
	if got := sb.String(); got != expected {
		t.Errorf("\nExp: %q\ngot: %q", expected, got)
	}
}

func TestWriteMeta(t *testing.T) {
	t.Parallel()
	assertWriteMeta(t, newTestMeta("", nil, ""), "")

	m := newTestMeta("TITLE", []string{"t1", "t2"}, "org")
	assertWriteMeta(t, m, "#+title: TITLE\n#+tags: t1 t2\n#+syntax: org\n")

	m = newTestMeta("TITLE", nil, "")
	m.Set("author", "Jane")
	m.Set("lang", "en")
	assertWriteMeta(t, m, "#+title: TITLE\n#+author: Jane\n#+lang: en\n")
}

func TestWriteSkipsComputed(t *testing.T) {
	t.Parallel()
	m := newTestMeta("TITLE", nil, "")
	m.Set(meta.KeyModified, "2023-03-01 12:00:00")
	m.Set(meta.KeyPublished, "2023-03-01 12:00:00")
	assertWriteMeta(t, m, "#+title: TITLE\n")
}

func TestWriteAsHeader(t *testing.T) {
	t.Parallel()
	m := newTestMeta("TITLE", nil, "")
	m.YamlSep = true
	sb := strings.Builder{}
	m.WriteAsHeader(&sb)
	exp := "---\ntitle: TITLE\n---\n"
	if got := sb.String(); got != exp {
		t.Errorf("\nExp: %q\ngot: %q", exp, got)
	}
}
