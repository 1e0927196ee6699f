//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package atom provides an Atom encoding of the site index.
package atom

import (
	"bytes"
	"time"

	"orgpress.de/op/domain"
	"orgpress.de/op/encoding"
	"orgpress.de/op/encoding/xml"
	"orgpress.de/op/strfun"
)

const ContentType = "application/atom+xml"

// Configuration contains all data to produce an Atom feed.
type Configuration struct {
	Title     string
	SiteURL   string
	Author    string
	Generator string
	FeedURL   string
}

// Marshal encodes the given records as an Atom feed.
func (c *Configuration) Marshal(rs domain.RecordSlice) []byte {
	atomUpdated := encoding.LastUpdated(rs, time.RFC3339)

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(`<feed xmlns="http://www.w3.org/2005/Atom">` + "\n")
	xml.WriteTag(&buf, "  ", "title", c.Title)
	xml.WriteTag(&buf, "  ", "id", c.SiteURL)
	buf.WriteString(`  <link rel="self" href="`)
	if c.FeedURL != "" {
		strfun.XMLEscape(&buf, c.FeedURL)
	} else {
		strfun.XMLEscape(&buf, c.SiteURL)
	}
	buf.WriteString(`"/>` + "\n")
	if atomUpdated != "" {
		xml.WriteTag(&buf, "  ", "updated", atomUpdated)
	}
	xml.WriteTag(&buf, "  ", "generator", c.Generator)
	author := c.Author
	if author == "" {
		author = "Unknown"
	}
	buf.WriteString("  <author><name>")
	strfun.XMLEscape(&buf, author)
	buf.WriteString("</name></author>\n")

	for _, r := range rs {
		marshalRecord(&buf, r)
	}

	buf.WriteString("</feed>")
	return buf.Bytes()
}

func marshalRecord(buf *bytes.Buffer, r domain.Record) {
	buf.WriteString("  <entry>\n")
	xml.WriteTag(buf, "    ", "title", r.Title)
	xml.WriteTag(buf, "    ", "id", r.URL)
	buf.WriteString(`    <link rel="alternate" type="text/html" href="`)
	strfun.XMLEscape(buf, r.URL)
	buf.WriteString(`"/>` + "\n")
	if !r.Date.IsZero() {
		xml.WriteTag(buf, "    ", "updated", r.Date.UTC().Format(time.RFC3339))
	}
	if r.Summary != "" {
		xml.WriteTag(buf, "    ", "summary", r.Summary)
	}
	for _, tag := range encoding.CleanTags(r.Tags) {
		buf.WriteString(`    <category term="`)
		strfun.XMLEscape(buf, tag)
		buf.WriteString("\"/>\n")
	}
	buf.WriteString("  </entry>\n")
}
