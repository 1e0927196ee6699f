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

func TestParseReference(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		link string
		exp  ast.RefState
	}{
		{"", ast.RefStateInvalid},
		{"#fragment", ast.RefStateSelf},
		{"/hosted/doc", ast.RefStateHosted},
		{"//based/doc", ast.RefStateBased},
		{"./relative", ast.RefStateHosted},
		{"../parent/doc", ast.RefStateHosted},
		{"other-page", ast.RefStateHosted},
		{"https://orgpress.de/", ast.RefStateExternal},
		{"mailto:info@orgpress.de", ast.RefStateExternal},
	}
	for i, tc := range testcases {
		got := ast.ParseReference(tc.link)
		if got.State != tc.exp {
			t.Errorf("%d: ParseReference(%q).State == %v, but got %v", i, tc.link, tc.exp, got.State)
		}
	}
}

func TestReferenceString(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		link string
		exp  string
	}{
		{"//based/doc", "/based/doc"},
		{"https://orgpress.de/", "https://orgpress.de/"},
		{"#mark", "#mark"},
	}
	for i, tc := range testcases {
		got := ast.ParseReference(tc.link).String()
		if got != tc.exp {
			t.Errorf("%d: ParseReference(%q).String() == %q, but got %q", i, tc.link, tc.exp, got)
		}
	}
}
