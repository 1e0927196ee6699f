//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package builder

import (
	"os"
	"path/filepath"
	"strings"

	"orgpress.de/op/ast"
	"orgpress.de/op/domain"
	"orgpress.de/op/domain/meta"
	"orgpress.de/op/encoder"
	"orgpress.de/op/encoder/jsonenc"
	"orgpress.de/op/encoder/textenc"
	"orgpress.de/op/encoding/atom"
	"orgpress.de/op/encoding/rss"
	"orgpress.de/op/evaluator"
	"orgpress.de/op/parser"
)

func evalMetadata(value string) ast.InlineSlice { return parser.ParseMetadata(value) }

// buildDocument renders one source document into the target directory and
// returns its index record and metadata.
func (b *Builder) buildDocument(name string) (domain.Record, *meta.Meta, error) {
	doc, syntax, err := b.readDocument(name)
	if err != nil {
		return domain.Record{}, nil, err
	}
	dn, err := parser.ParseDocument(doc, syntax)
	if err != nil {
		return domain.Record{}, nil, err
	}
	if err = evaluator.EvaluateDocument(dn); err != nil {
		return domain.Record{}, nil, err
	}

	docName := strings.TrimSuffix(name, filepath.Ext(name))
	if err = b.encodeToFile(docName, ".html", encoder.EncodingHTML, dn); err != nil {
		return domain.Record{}, nil, err
	}
	if err = b.encodeToFile(docName, ".json", encoder.EncodingJSON, dn); err != nil {
		return domain.Record{}, nil, err
	}
	if b.cfg.WithSz {
		if err = b.encodeToFile(docName, ".sz", encoder.EncodingSz, dn); err != nil {
			return domain.Record{}, nil, err
		}
	}
	return b.recordForDocument(dn, docName), dn.Meta, nil
}

// encodeToFile renders the document in the given encoding into the target
// directory.
func (b *Builder) encodeToFile(docName, ext string, enc encoder.Encoding, dn *ast.DocumentNode) error {
	f, err := os.Create(filepath.Join(b.cfg.TargetDir, docName+ext))
	if err != nil {
		return err
	}
	_, err = encoder.Create(enc).WriteDocument(f, dn, evalMetadata)
	if err1 := f.Close(); err == nil {
		err = err1
	}
	return err
}

// recordForDocument derives the index record of a rendered document.
func (b *Builder) recordForDocument(dn *ast.DocumentNode, docName string) domain.Record {
	m := dn.Meta
	rec := domain.Record{
		Name:     docName,
		URL:      b.documentURL(docName),
		Title:    metaText(m, meta.KeyTitle),
		Summary:  metaText(m, meta.KeySummary),
		Tags:     m.GetListOrNil(meta.KeyTags),
		Keywords: m.GetListOrNil(meta.KeyKeywords),
		Lang:     m.GetDefault(meta.KeyLang, b.cfg.Language),
		Author:   m.GetDefault(meta.KeyAuthor, b.cfg.Author),
		Draft:    m.GetBool(meta.KeyDraft),
	}
	if date, ok := m.GetTime(meta.KeyDate); ok {
		rec.Date = date
	}
	return rec
}

func (b *Builder) documentURL(docName string) string {
	base := strings.TrimSuffix(b.cfg.BaseURL, "/")
	if base == "" {
		return docName + ".html"
	}
	return base + "/" + docName + ".html"
}

// metaText returns the value of a markup key as plain text.
func metaText(m *meta.Meta, key string) string {
	val, ok := m.Get(key)
	if !ok || val == "" {
		return ""
	}
	var sb strings.Builder
	is := parser.ParseMetadata(val)
	if _, err := textenc.Create().WriteInlines(&sb, &is); err != nil {
		return val
	}
	return sb.String()
}

// writeIndex writes index.json, the tag index, and, if configured, the
// feeds. Draft documents are indexed but kept out of the feeds.
func (b *Builder) writeIndex(records domain.RecordSlice, metas []*meta.Meta) error {
	records.SortByDate()
	indexFile, err := os.Create(filepath.Join(b.cfg.TargetDir, "index.json"))
	if err != nil {
		return err
	}
	_, err = jsonenc.WriteRecordSlice(indexFile, records)
	if err1 := indexFile.Close(); err == nil {
		err = err1
	}
	if err != nil {
		return err
	}
	if err = b.writeTagIndex(metas); err != nil || !b.cfg.WithFeeds {
		return err
	}

	published := make(domain.RecordSlice, 0, len(records))
	for _, rec := range records {
		if !rec.Draft {
			published = append(published, rec)
		}
	}

	rssCfg := rss.Configuration{
		Title:     b.cfg.SiteName,
		SiteURL:   b.cfg.BaseURL,
		Language:  b.cfg.Language,
		Copyright: b.cfg.Copyright,
		Generator: generator,
		FeedURL:   b.feedURL("rss.xml"),
	}
	if err = os.WriteFile(filepath.Join(b.cfg.TargetDir, "rss.xml"), rssCfg.Marshal(published), 0644); err != nil {
		return err
	}

	atomCfg := atom.Configuration{
		Title:     b.cfg.SiteName,
		SiteURL:   b.cfg.BaseURL,
		Author:    b.cfg.Author,
		Generator: generator,
		FeedURL:   b.feedURL("atom.xml"),
	}
	return os.WriteFile(filepath.Join(b.cfg.TargetDir, "atom.xml"), atomCfg.Marshal(published), 0644)
}

// writeTagIndex writes tags.json: every tag with the number of documents
// that carry it, most used first.
func (b *Builder) writeTagIndex(metas []*meta.Meta) error {
	ccs := meta.CreateArrangement(metas, meta.KeyTags).Counted()
	ccs.SortByCount()
	tagFile, err := os.Create(filepath.Join(b.cfg.TargetDir, "tags.json"))
	if err != nil {
		return err
	}
	_, err = jsonenc.WriteCategories(tagFile, ccs)
	if err1 := tagFile.Close(); err == nil {
		err = err1
	}
	return err
}

const generator = "OrgPress"

func (b *Builder) feedURL(name string) string {
	base := strings.TrimSuffix(b.cfg.BaseURL, "/")
	if base == "" {
		return name
	}
	return base + "/" + name
}
