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

const testName = "test-doc"

func TestKeyIsValid(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		key string
		exp bool
	}{
		{"title", true},
		{"site-name", true},
		{"", false},
		{"-dash", false},
		{"UPPER", false},
	}
	for i, tc := range testcases {
		if got := meta.KeyIsValid(tc.key); got != tc.exp {
			t.Errorf("%d: KeyIsValid(%q) == %v, expected %v", i, tc.key, got, tc.exp)
		}
	}
}

func TestGetDefault(t *testing.T) {
	t.Parallel()
	m := meta.New(testName)
	if got := m.GetDefault(meta.KeyLang, meta.ValueLangEN); got != meta.ValueLangEN {
		t.Errorf("expected default %q, got %q", meta.ValueLangEN, got)
	}
	m.Set(meta.KeyLang, "de")
	if got := m.GetDefault(meta.KeyLang, meta.ValueLangEN); got != "de" {
		t.Errorf("expected %q, got %q", "de", got)
	}
}

func TestNameIsProtected(t *testing.T) {
	t.Parallel()
	m := meta.New(testName)
	m.Set(meta.KeyName, "other")
	if got, _ := m.Get(meta.KeyName); got != testName {
		t.Errorf("name must not be changeable, got %q", got)
	}
	m.Delete(meta.KeyName)
	if got, _ := m.Get(meta.KeyName); got != testName {
		t.Errorf("name must not be deletable, got %q", got)
	}
}

func TestPairsOrder(t *testing.T) {
	t.Parallel()
	m := meta.New(testName)
	m.Set("zzz", "1")
	m.Set(meta.KeySyntax, "org")
	m.Set("aaa", "2")
	m.Set(meta.KeyTitle, "T")
	pairs := m.Pairs()
	got := make([]string, len(pairs))
	for i, p := range pairs {
		got[i] = p.Key
	}
	exp := "title syntax aaa zzz"
	if joined := strings.Join(got, " "); joined != exp {
		t.Errorf("expected order %q, got %q", exp, joined)
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()
	m1 := meta.New(testName)
	m1.Set(meta.KeyTitle, "T")
	m2 := m1.Clone()
	if !m1.Equal(m2) {
		t.Error("clone must be equal")
	}
	m2.Set(meta.KeyTitle, "Other")
	if m1.Equal(m2) {
		t.Error("metas with different values must not be equal")
	}
	if !(*meta.Meta)(nil).Equal(nil) {
		t.Error("nil metas must be equal")
	}
	if m1.Equal(nil) {
		t.Error("meta must not be equal to nil")
	}
}

func TestCreateArrangement(t *testing.T) {
	t.Parallel()
	m1 := meta.New("a")
	m1.Set(meta.KeyTags, "go parser")
	m2 := meta.New("b")
	m2.Set(meta.KeyTags, "go")
	a := meta.CreateArrangement([]*meta.Meta{m1, m2}, meta.KeyTags)
	if got := len(a["go"]); got != 2 {
		t.Errorf("expected 2 metas for tag 'go', got %d", got)
	}
	if got := len(a["parser"]); got != 1 {
		t.Errorf("expected 1 meta for tag 'parser', got %d", got)
	}
	ccs := a.Counted()
	ccs.SortByCount()
	if ccs[0].Name != "go" || ccs[0].Count != 2 {
		t.Errorf("expected 'go' first, got %v", ccs)
	}
}
