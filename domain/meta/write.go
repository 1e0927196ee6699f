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
	"bytes"
	"io"
)

// Write writes metadata to a writer, as pragma lines. Computed values are
// not written.
func (m *Meta) Write(w io.Writer) (int, error) {
	var buf bytes.Buffer
	for _, p := range m.Pairs() {
		kd := GetDescription(p.Key)
		if kd.IsComputed() {
			continue
		}
		buf.WriteString("#+")
		buf.WriteString(p.Key)
		buf.WriteString(": ")
		buf.WriteString(p.Value)
		buf.WriteByte('\n')
	}
	return w.Write(buf.Bytes())
}

var yamlSep = []byte{'-', '-', '-', '\n'}

// WriteAsHeader writes metadata to the writer. If the metadata was read from
// a YAML front matter, it is written as such.
func (m *Meta) WriteAsHeader(w io.Writer) (int, error) {
	if !m.YamlSep {
		return m.Write(w)
	}
	lb, err := w.Write(yamlSep)
	if err != nil {
		return lb, err
	}
	var buf bytes.Buffer
	for _, p := range m.Pairs() {
		kd := GetDescription(p.Key)
		if kd.IsComputed() {
			continue
		}
		buf.WriteString(p.Key)
		buf.WriteString(": ")
		buf.WriteString(p.Value)
		buf.WriteByte('\n')
	}
	lc, err := w.Write(buf.Bytes())
	if err != nil {
		return lb + lc, err
	}
	la, err := w.Write(yamlSep)
	return lb + lc + la, err
}
