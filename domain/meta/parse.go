//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package meta

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"orgpress.de/op/input"
	"orgpress.de/op/strfun"
)

// NewFromInput parses the meta data of a document. It reads an optional YAML
// front matter, followed by the leading pragma lines of the form
// "#+key: value". The input is positioned at the first line of the document
// body afterwards.
func NewFromInput(name string, inp *input.Input) *Meta {
	m := New(name)
	parseFrontMatter(m, inp)
	for {
		pos := inp.Pos
		switch inp.Ch {
		case input.EOS:
			return m
		case '\n', '\r':
			inp.EatEOL()
			continue
		case '#':
			if inp.Peek() == '+' {
				if parsePragma(m, inp) {
					continue
				}
				inp.SetPos(pos)
				return m
			}
			if ch := inp.Peek(); input.IsSpace(ch) || input.IsEOLEOS(ch) {
				// Comment line
				inp.SkipToEOL()
				inp.EatEOL()
				continue
			}
			return m
		default:
			return m
		}
	}
}

func parseFrontMatter(m *Meta, inp *input.Input) {
	if inp.Ch != '-' || inp.PeekN(0) != '-' || inp.PeekN(1) != '-' {
		return
	}
	pos := inp.Pos
	inp.SkipToEOL()
	if inp.Pos-pos != 3 {
		inp.SetPos(pos)
		return
	}
	inp.EatEOL()
	var sb strings.Builder
	for {
		if inp.Ch == input.EOS {
			// Unterminated front matter is no front matter at all.
			inp.SetPos(pos)
			return
		}
		linePos := inp.Pos
		inp.SkipToEOL()
		line := string(inp.Src[linePos:inp.Pos])
		inp.EatEOL()
		if strings.TrimRight(line, " \t") == "---" {
			break
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	m.YamlSep = true
	var fields map[string]interface{}
	if err := yaml.Unmarshal([]byte(sb.String()), &fields); err != nil {
		return
	}
	for k, v := range fields {
		addToMeta(m, k, yamlValue(v))
	}
}

func yamlValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, elem := range val {
			parts = append(parts, yamlValue(elem))
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprint(val)
	}
}

// bodyKeys are pragma keys that belong to the document body, not to the
// metadata header.
var bodyKeys = strfun.NewSet("name", "caption", "results", "header", "include")

func parsePragma(m *Meta, inp *input.Input) bool {
	inp.Next() // skip '#'
	inp.Next() // skip '+'
	pos := inp.Pos
	for isKeyRune(inp.Ch) {
		inp.Next()
	}
	key := strings.ToLower(string(inp.Src[pos:inp.Pos]))
	if inp.Ch != ':' || key == "" {
		return false
	}
	if bodyKeys.Has(key) || strings.HasPrefix(key, "begin") || strings.HasPrefix(key, "attr_") {
		return false
	}
	inp.Next()
	inp.SkipSpace()
	pos = inp.Pos
	inp.SkipToEOL()
	val := string(inp.Src[pos:inp.Pos])
	inp.EatEOL()
	addToMeta(m, key, val)
	return true
}

func isKeyRune(ch rune) bool {
	return ('a' <= ch && ch <= 'z') ||
		('0' <= ch && ch <= '9') ||
		ch == '-' || ch == '_' ||
		('A' <= ch && ch <= 'Z')
}

type predValidElem func(string) bool

func addToSet(set strfun.Set, elems []string, useElem predValidElem) {
	for _, s := range elems {
		if len(s) > 0 && useElem(s) {
			set.Set(s)
		}
	}
}

func addSet(m *Meta, key, val string, useElem predValidElem) {
	newElems := strfun.SplitWords(val)
	oldElems, ok := m.GetList(key)
	if !ok {
		oldElems = nil
	}

	set := make(strfun.Set, len(newElems)+len(oldElems))
	addToSet(set, newElems, useElem)
	if len(set) == 0 {
		// Nothing to add. Maybe because of rejected elements.
		return
	}
	addToSet(set, oldElems, useElem)
	elems := make([]string, 0, len(set))
	for elem := range set {
		elems = append(elems, elem)
	}
	sort.Strings(elems)
	m.SetList(key, elems)
}

func addData(m *Meta, k, v string) {
	if o, ok := m.Get(k); !ok || o == "" {
		m.Set(k, v)
	} else if v != "" {
		m.Set(k, o+" "+v)
	}
}

func addToMeta(m *Meta, key, val string) {
	v := trimValue(val)
	key = strings.ToLower(strings.ReplaceAll(key, "_", "-"))
	if !KeyIsValid(key) {
		return
	}
	if key == KeyName {
		return
	}

	switch Type(key) {
	case TypeTagSet:
		tags := strfun.SplitWords(strings.ToLower(v))
		for i, tag := range tags {
			tags[i] = CleanTag(tag)
		}
		addSet(m, key, strings.Join(tags, " "), func(s string) bool { return s != "" })
	case TypeWord:
		m.Set(key, strings.ToLower(v))
	case TypeWordSet:
		addSet(m, key, strings.ToLower(v), func(string) bool { return true })
	case TypeTimestamp:
		// A value that is no date is kept verbatim. It was written on
		// purpose, and dropping it silently would hide the mistake.
		m.Set(key, v)
	default:
		addData(m, key, v)
	}
}
