//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package jsonenc encodes document metadata into the JSON record that is
// handed to the site index.
package jsonenc

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"orgpress.de/op/ast"
	"orgpress.de/op/domain"
	"orgpress.de/op/domain/meta"
	"orgpress.de/op/encoder"
	"orgpress.de/op/encoder/textenc"
)

func init() {
	encoder.Register(encoder.EncodingJSON, func() encoder.Encoder { return Create() })
}

// Create an encoder.
func Create() *Encoder { return &myJE }

// Encoder encodes a document's metadata record.
type Encoder struct {
	textEnc *textenc.Encoder
}

var myJE = Encoder{textEnc: textenc.Create()}

// WriteDocument encodes the document's metadata record, including the
// changelog, as one JSON object.
func (je *Encoder) WriteDocument(w io.Writer, dn *ast.DocumentNode, evalMeta encoder.EvalMetaFunc) (int, error) {
	b := encoder.NewEncWriter(w)
	b.WriteString("{")
	je.writeMetaFields(&b, dn.Meta, evalMeta)
	b.WriteString(",\"changelog\":[")
	for i, entry := range dn.Changelog {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("{\"date\":")
		writeEscaped(&b, entry.Date)
		b.WriteString(",\"text\":")
		writeEscaped(&b, entry.Text)
		b.WriteString("}")
	}
	b.WriteString("]}")
	_ = b.WriteByte('\n')
	return b.Flush()
}

// WriteMeta encodes metadata as one JSON object.
func (je *Encoder) WriteMeta(w io.Writer, m *meta.Meta, evalMeta encoder.EvalMetaFunc) (int, error) {
	b := encoder.NewEncWriter(w)
	b.WriteString("{")
	je.writeMetaFields(&b, m, evalMeta)
	b.WriteString("}")
	return b.Flush()
}

func (*Encoder) WriteBlocks(io.Writer, *ast.BlockSlice) (int, error) {
	return 0, encoder.ErrNoWriteBlocks
}
func (*Encoder) WriteInlines(io.Writer, *ast.InlineSlice) (int, error) {
	return 0, encoder.ErrNoWriteInlines
}

func (je *Encoder) writeMetaFields(b *encoder.EncWriter, m *meta.Meta, evalMeta encoder.EvalMetaFunc) {
	b.WriteString("\"name\":")
	writeEscaped(b, m.Name)
	b.WriteString(",\"title\":")
	writeEscaped(b, je.evalString(m, meta.KeyTitle, evalMeta))
	b.WriteString(",\"url\":")
	writeEscaped(b, m.GetDefault(meta.KeyURL, ""))
	b.WriteString(",\"tags\":")
	writeStringList(b, m.GetListOrNil(meta.KeyTags))
	b.WriteString(",\"keywords\":")
	writeStringList(b, m.GetListOrNil(meta.KeyKeywords))
	b.WriteString(",\"summary\":")
	writeEscaped(b, je.evalString(m, meta.KeySummary, evalMeta))
	b.WriteString(",\"lang\":")
	writeEscaped(b, m.GetDefault(meta.KeyLang, ""))
	b.WriteString(",\"date\":")
	writeEscaped(b, m.GetDefault(meta.KeyDate, ""))
	b.WriteString(",\"author\":")
	writeEscaped(b, m.GetDefault(meta.KeyAuthor, ""))
	b.WriteString(",\"draft\":")
	if m.GetBool(meta.KeyDraft) {
		b.WriteString("true")
	} else {
		b.WriteString("false")
	}
}

// evalString returns the metadata value as plain text, with markup values
// evaluated and rendered through the text encoder.
func (je *Encoder) evalString(m *meta.Meta, key string, evalMeta encoder.EvalMetaFunc) string {
	value, found := m.Get(key)
	if !found || value == "" {
		return ""
	}
	if evalMeta == nil {
		return value
	}
	is := evalMeta(value)
	var sb strings.Builder
	_, _ = je.textEnc.WriteInlines(&sb, &is)
	return sb.String()
}

// WriteRecord encodes one site-index record.
func WriteRecord(w io.Writer, rec *domain.Record) (int, error) {
	b := encoder.NewEncWriter(w)
	writeRecord(&b, rec)
	return b.Flush()
}

// WriteRecordSlice encodes the full site index as a JSON array.
func WriteRecordSlice(w io.Writer, recs domain.RecordSlice) (int, error) {
	b := encoder.NewEncWriter(w)
	b.WriteString("[")
	for i := range recs {
		if i > 0 {
			b.WriteString(",\n")
		}
		writeRecord(&b, &recs[i])
	}
	b.WriteString("]\n")
	return b.Flush()
}

func writeRecord(b *encoder.EncWriter, rec *domain.Record) {
	b.WriteString("{\"name\":")
	writeEscaped(b, rec.Name)
	b.WriteString(",\"url\":")
	writeEscaped(b, rec.URL)
	b.WriteString(",\"title\":")
	writeEscaped(b, rec.Title)
	b.WriteString(",\"summary\":")
	writeEscaped(b, rec.Summary)
	b.WriteString(",\"tags\":")
	writeStringList(b, rec.Tags)
	b.WriteString(",\"keywords\":")
	writeStringList(b, rec.Keywords)
	b.WriteString(",\"lang\":")
	writeEscaped(b, rec.Lang)
	b.WriteString(",\"author\":")
	writeEscaped(b, rec.Author)
	b.WriteString(",\"date\":")
	if rec.Date.IsZero() {
		writeEscaped(b, "")
	} else {
		writeEscaped(b, rec.Date.Format("2006-01-02"))
	}
	b.WriteString(",\"draft\":")
	if rec.Draft {
		b.WriteString("true")
	} else {
		b.WriteString("false")
	}
	b.WriteString("}")
}

// WriteCategories encodes counted categories, e.g. the tag index.
func WriteCategories(w io.Writer, ccs meta.CountedCategories) (int, error) {
	b := encoder.NewEncWriter(w)
	b.WriteString("[")
	for i, cc := range ccs {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString("{\"name\":")
		writeEscaped(&b, cc.Name)
		b.WriteString(",\"count\":")
		b.WriteString(strconv.Itoa(cc.Count))
		b.WriteString("}")
	}
	b.WriteString("]\n")
	return b.Flush()
}

func writeStringList(b *encoder.EncWriter, values []string) {
	b.WriteString("[")
	for i, val := range values {
		if i > 0 {
			b.WriteString(",")
		}
		writeEscaped(b, val)
	}
	b.WriteString("]")
}

var (
	jsBackslash   = []byte{'\\', '\\'}
	jsDoubleQuote = []byte{'\\', '"'}
	jsNewline     = []byte{'\\', 'n'}
	jsTab         = []byte{'\\', 't'}
	jsCr          = []byte{'\\', 'r'}
	jsHex         = []byte("0123456789ABCDEF")
)

// Escape returns the given string as a byte slice, where every
// non-printable rune is made printable.
func Escape(s string) []byte {
	var buf bytes.Buffer
	last := 0
	for i, ch := range s {
		var b []byte
		switch ch {
		case '\t':
			b = jsTab
		case '\r':
			b = jsCr
		case '\n':
			b = jsNewline
		case '"':
			b = jsDoubleQuote
		case '\\':
			b = jsBackslash
		default:
			if ch < ' ' {
				b = []byte{'\\', 'u', '0', '0', jsHex[ch>>4], jsHex[ch&0xF]}
			} else {
				continue
			}
		}
		buf.WriteString(s[last:i])
		buf.Write(b)
		last = i + 1
	}
	buf.WriteString(s[last:])
	return buf.Bytes()
}

func writeEscaped(b *encoder.EncWriter, s string) {
	_ = b.WriteByte('"')
	_, _ = b.Write(Escape(s))
	_ = b.WriteByte('"')
}
