//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package domain provides domain specific types, constants, and functions.
package domain

import "unicode/utf8"

// Content is just the uninterpreted content of a document.
type Content string

// NewContent creates a new content from a string.
func NewContent(s string) Content { return Content(s) }

// AsString returns the content itself as a string.
func (c Content) AsString() string { return string(c) }

// AsBytes returns the content itself as a byte slice.
func (c Content) AsBytes() []byte { return []byte(c) }

// IsBinary returns true if the content contains non-unicode values or is,
// interpreted as text, with a high probability binary content.
func (c Content) IsBinary() bool {
	s := string(c)
	if !utf8.ValidString(s) {
		return true
	}
	l := len(s)
	for i := 0; i < l; i++ {
		if s[i] == 0 {
			return true
		}
	}
	return false
}
