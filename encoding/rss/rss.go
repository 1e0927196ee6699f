//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package rss provides a RSS encoding of the site index.
package rss

import (
	"bytes"
	"time"

	"orgpress.de/op/domain"
	"orgpress.de/op/encoding"
	"orgpress.de/op/encoding/xml"
	"orgpress.de/op/strfun"
)

const ContentType = "application/rss+xml"

// Configuration contains all data to produce a RSS feed.
type Configuration struct {
	Title     string
	SiteURL   string
	Language  string
	Copyright string
	Generator string
	FeedURL   string
}

// Marshal encodes the given records as a RSS 2.0 feed.
func (c *Configuration) Marshal(rs domain.RecordSlice) []byte {
	rssPublished := encoding.LastUpdated(rs, time.RFC1123Z)

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(`<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">` + "\n<channel>\n")
	xml.WriteTag(&buf, "  ", "title", c.Title)
	xml.WriteTag(&buf, "  ", "link", c.SiteURL)
	xml.WriteTag(&buf, "  ", "description", "")
	xml.WriteTag(&buf, "  ", "language", c.Language)
	xml.WriteTag(&buf, "  ", "copyright", c.Copyright)
	if rssPublished != "" {
		xml.WriteTag(&buf, "  ", "pubDate", rssPublished)
		xml.WriteTag(&buf, "  ", "lastBuildDate", rssPublished)
	}
	xml.WriteTag(&buf, "  ", "generator", c.Generator)
	buf.WriteString("  <docs>https://www.rssboard.org/rss-specification</docs>\n")
	if c.FeedURL != "" {
		buf.WriteString(`  <atom:link href="`)
		strfun.XMLEscape(&buf, c.FeedURL)
		buf.WriteString(`" rel="self" type="application/rss+xml"></atom:link>` + "\n")
	}
	for _, r := range rs {
		marshalRecord(&buf, r)
	}
	buf.WriteString("</channel>\n</rss>")
	return buf.Bytes()
}

func marshalRecord(buf *bytes.Buffer, r domain.Record) {
	buf.WriteString("  <item>\n")
	xml.WriteTag(buf, "    ", "title", r.Title)
	xml.WriteTag(buf, "    ", "link", r.URL)
	xml.WriteTag(buf, "    ", "guid", r.URL)
	if r.Summary != "" {
		xml.WriteTag(buf, "    ", "description", r.Summary)
	}
	if !r.Date.IsZero() {
		xml.WriteTag(buf, "    ", "pubDate", r.Date.UTC().Format(time.RFC1123Z))
	}
	for _, cat := range encoding.CleanTags(r.Tags) {
		xml.WriteTag(buf, "    ", "category", cat)
	}
	buf.WriteString("  </item>\n")
}
