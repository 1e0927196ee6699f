//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast_test

import (
	"testing"

	"orgpress.de/op/ast"
)

func TestHasDefault(t *testing.T) {
	t.Parallel()
	attr := ast.Attributes{}
	if _, found := attr.Get("-"); found {
		t.Error("Attributes are not empty")
	}
	attr = attr.Set("-", "")
	if _, found := attr.Get("-"); !found {
		t.Error("Attributes should have a default key")
	}
	attr = attr.Remove("-")
	if _, found := attr.Get("-"); found {
		t.Error("Attributes should not have a default key")
	}
}

func TestAttrClone(t *testing.T) {
	t.Parallel()
	orig := ast.Attributes{}
	clone := orig.Clone()
	if !clone.IsEmpty() {
		t.Error("Attributes must be empty")
	}

	orig = orig.Set("", "0")
	orig = orig.Set("-", "1")
	orig = orig.Set("a", "b")
	clone = orig.Clone()
	m := map[string]string(clone)
	if m[""] != "0" || m["-"] != "1" || m["a"] != "b" || len(m) != 3 {
		t.Error("Wrong cloned map")
	}
	m["a"] = "c"
	if value, _ := orig.Get("a"); value != "b" {
		t.Error("Aliased map")
	}
}

func TestAddClass(t *testing.T) {
	t.Parallel()
	var attr ast.Attributes
	attr = attr.AddClass("c1")
	if classes := attr.GetClasses(); len(classes) != 1 || classes[0] != "c1" {
		t.Errorf("Expected [c1], got %v", classes)
	}
	attr = attr.AddClass("c2").AddClass("c1")
	if classes := attr.GetClasses(); len(classes) != 2 || classes[0] != "c1" || classes[1] != "c2" {
		t.Errorf("Expected [c1 c2], got %v", classes)
	}
}
