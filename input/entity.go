//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package input

import (
	"html"
	"unicode"
)

// ScanEntity scans a named or numbered character entity and returns its
// expansion.
//
// Numbered entities (like &#123; or &#x123;) are parsed here instead of
// calling html.UnescapeString, because that function applies HTML recovery
// rules to malformed numbers and may return unexpected values.
func (inp *Input) ScanEntity() (res string, success bool) {
	if inp.Ch != '&' {
		return "", false
	}
	pos := inp.Pos
	inp.Next()
	if inp.Ch == '#' {
		inp.Next()
		if inp.Ch == 'x' || inp.Ch == 'X' {
			inp.Next()
			return inp.scanEntityNumber(16)
		}
		return inp.scanEntityNumber(10)
	}
	return inp.scanEntityNamed(pos)
}

func (inp *Input) scanEntityNumber(base int) (string, bool) {
	if inp.Ch == ';' {
		return "", false
	}
	code := 0
	for {
		digit, ok := digitValue(inp.Ch, base)
		if !ok {
			if inp.Ch != ';' {
				return "", false
			}
			inp.Next()
			if r := rune(code); isValidEntity(r) {
				return string(r), true
			}
			return "", false
		}
		code = base*code + digit
		if code > unicode.MaxRune {
			return "", false
		}
		inp.Next()
	}
}

func digitValue(ch rune, base int) (int, bool) {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0'), true
	case base == 16 && 'a' <= ch && ch <= 'f':
		return int(ch-'a') + 10, true
	case base == 16 && 'A' <= ch && ch <= 'F':
		return int(ch-'A') + 10, true
	}
	return 0, false
}

func (inp *Input) scanEntityNamed(pos int) (string, bool) {
	for {
		switch inp.Ch {
		case EOS, '\n', '\r', '&':
			return "", false
		case ';':
			inp.Next()
			es := string(inp.Src[pos:inp.Pos])
			ues := html.UnescapeString(es)
			if es == ues {
				return "", false
			}
			return ues, true
		default:
			inp.Next()
		}
	}
}

// isValidEntity reports whether the code point may be referenced by a
// numbered entity. The HTML specification excludes CR, controls other than
// ASCII whitespace, and noncharacters.
func isValidEntity(r rune) bool {
	if r < ' ' || ('' <= r && r <= '') {
		return false
	}
	if r < '﷐' {
		return true
	}
	if r <= '﷯' {
		return false
	}
	switch r {
	case '￾', '￿',
		'\U0001FFFE', '\U0001FFFF',
		'\U0002FFFE', '\U0002FFFF',
		'\U0003FFFE', '\U0003FFFF',
		'\U0004FFFE', '\U0004FFFF',
		'\U0005FFFE', '\U0005FFFF',
		'\U0006FFFE', '\U0006FFFF',
		'\U0007FFFE', '\U0007FFFF',
		'\U0008FFFE', '\U0008FFFF',
		'\U0009FFFE', '\U0009FFFF',
		'\U000AFFFE', '\U000AFFFF',
		'\U000BFFFE', '\U000BFFFF',
		'\U000CFFFE', '\U000CFFFF',
		'\U000DFFFE', '\U000DFFFF',
		'\U000EFFFE', '\U000EFFFF',
		'\U000FFFFE', '\U000FFFFF',
		'\U0010FFFE', '\U0010FFFF':
		return false
	}
	return true
}
