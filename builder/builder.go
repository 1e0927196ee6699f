//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package builder implements the batch driver that turns a directory of
// source documents into a rendered site.
package builder

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"orgpress.de/op/domain"
	"orgpress.de/op/domain/meta"
	"orgpress.de/op/input"
	"orgpress.de/op/logger"
)

// Config contains all data to set up a builder.
type Config struct {
	SourceDir string // Directory that is scanned for source documents
	TargetDir string // Directory that receives the rendered site
	SiteName  string
	BaseURL   string // Absolute URL prefix of the rendered site
	Language  string
	Author    string
	Copyright string
	Workers   int  // Number of concurrent document workers
	WithFeeds bool // Write RSS and Atom feeds besides index.json
	WithSz    bool // Write each document's syntax tree as a s-expression
	Log       *logger.Logger
}

// Builder renders all documents of a source directory.
type Builder struct {
	cfg Config
	log *logger.Logger
}

// New creates a new builder for the given configuration.
func New(cfg Config) *Builder {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	log := cfg.Log
	if log == nil {
		log = logger.New(logger.NewLogWriterAdapter(io.Discard), "builder")
	}
	return &Builder{cfg: cfg, log: log}
}

// Failure documents one document that could not be built.
type Failure struct {
	Name string
	Err  error
}

// Summary reports the outcome of one build run.
type Summary struct {
	Built    int
	Failed   int
	Failures []Failure
}

type buildResult struct {
	name string
	rec  domain.Record
	meta *meta.Meta
	err  error
}

// Build scans the source directory, renders every document, and writes the
// site index and the feeds. A document that fails to build is reported in
// the summary and does not stop the other documents.
func (b *Builder) Build() (Summary, error) {
	names, err := b.scanSources()
	if err != nil {
		return Summary{}, err
	}
	if err = os.MkdirAll(b.cfg.TargetDir, 0755); err != nil {
		return Summary{}, err
	}

	work := make(chan string)
	results := make(chan buildResult)
	var wg sync.WaitGroup
	for i := 0; i < b.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range work {
				rec, m, buildErr := b.buildDocument(name)
				results <- buildResult{name: name, rec: rec, meta: m, err: buildErr}
			}
		}()
	}
	go func() {
		for _, name := range names {
			work <- name
		}
		close(work)
		wg.Wait()
		close(results)
	}()

	var summary Summary
	var records domain.RecordSlice
	var metas []*meta.Meta
	for res := range results {
		if res.err != nil {
			b.log.Error().Str("name", res.name).Err(res.err).Msg("Document failed")
			summary.Failed++
			summary.Failures = append(summary.Failures, Failure{Name: res.name, Err: res.err})
			continue
		}
		b.log.Debug().Str("name", res.name).Msg("Document built")
		summary.Built++
		records = append(records, res.rec)
		metas = append(metas, res.meta)
	}
	sort.Slice(summary.Failures, func(i, j int) bool {
		return summary.Failures[i].Name < summary.Failures[j].Name
	})

	if err = b.writeIndex(records, metas); err != nil {
		return summary, err
	}
	b.log.Info().
		Int("built", int64(summary.Built)).
		Int("failed", int64(summary.Failed)).
		Msg("Build done")
	return summary, nil
}

// scanSources returns the names of all source documents, sorted.
func (b *Builder) scanSources() ([]string, error) {
	entries, err := os.ReadDir(b.cfg.SourceDir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if syntaxForFile(name) == "" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// syntaxForFile maps a file name to the registered syntax of its content.
// An empty result marks a file that is no source document.
func syntaxForFile(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".org":
		return meta.ValueSyntaxOrg
	case ".md", ".markdown":
		return meta.ValueSyntaxMD
	case ".txt", ".text":
		return meta.ValueSyntaxText
	}
	return ""
}

// readDocument reads one source file and splits it into metadata and content.
func (b *Builder) readDocument(name string) (domain.Document, string, error) {
	data, err := os.ReadFile(filepath.Join(b.cfg.SourceDir, name))
	if err != nil {
		return domain.Document{}, "", err
	}
	docName := strings.TrimSuffix(name, filepath.Ext(name))
	inp := input.NewInput(data)
	m := meta.NewFromInput(docName, inp)
	doc := domain.Document{
		Meta:    m,
		Content: domain.NewContent(string(inp.Src[inp.Pos:])),
	}
	return doc, m.GetDefault(meta.KeySyntax, syntaxForFile(name)), nil
}
