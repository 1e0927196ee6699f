//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package parser provides a generic interface to a range of different parsers.
package parser

import (
	"fmt"

	"orgpress.de/op/ast"
	"orgpress.de/op/domain"
	"orgpress.de/op/domain/meta"
	"orgpress.de/op/input"
	"orgpress.de/op/parser/cleaner"
)

// Info describes a single parser.
//
// Before ParseBlocks() or ParseInlines() is called, ensure the input stream to
// be valid. This can be achieved on calling inp.Next() after the input stream
// was created.
type Info struct {
	Name         string
	AltNames     []string
	IsASTParser  bool
	IsTextFormat bool
	ParseBlocks  func(*input.Input, *meta.Meta, string) (ast.BlockSlice, error)
	ParseInlines func(*input.Input, string) ast.InlineSlice
}

var registry = map[string]*Info{}

// Register the parser (info) for later retrieval.
func Register(pi *Info) {
	if _, ok := registry[pi.Name]; ok {
		panic(fmt.Sprintf("Parser %q already registered", pi.Name))
	}
	registry[pi.Name] = pi
	for _, alt := range pi.AltNames {
		if _, ok := registry[alt]; ok {
			panic(fmt.Sprintf("Parser %q already registered", alt))
		}
		registry[alt] = pi
	}
}

// GetSyntaxes returns a list of syntaxes implemented by all registered parsers.
func GetSyntaxes() []string {
	result := make([]string, 0, len(registry))
	for syntax := range registry {
		result = append(result, syntax)
	}
	return result
}

// Get the parser (info) by name. If name not found, use a default parser.
func Get(name string) *Info {
	if pi := registry[name]; pi != nil {
		return pi
	}
	if pi := registry["plain"]; pi != nil {
		return pi
	}
	panic(fmt.Sprintf("No parser for %q found", name))
}

// IsASTParser returns whether the given syntax parses text into an AST or not.
func IsASTParser(syntax string) bool {
	pi, ok := registry[syntax]
	if !ok {
		return false
	}
	return pi.IsASTParser
}

// IsTextFormat returns whether the given syntax is known to be a text format.
func IsTextFormat(syntax string) bool {
	pi, ok := registry[syntax]
	if !ok {
		return false
	}
	return pi.IsTextFormat
}

// ParseBlocks parses some input and returns a slice of block nodes.
func ParseBlocks(inp *input.Input, m *meta.Meta, syntax string) (ast.BlockSlice, error) {
	bs, err := Get(syntax).ParseBlocks(inp, m, syntax)
	if err != nil {
		return nil, err
	}
	cleaner.CleanBlockSlice(&bs)
	return bs, nil
}

// ParseInlines parses some input and returns a slice of inline nodes.
func ParseInlines(inp *input.Input, syntax string) ast.InlineSlice {
	// Do not clean, because we don't know the context where this function
	// will be called.
	return Get(syntax).ParseInlines(inp, syntax)
}

// ParseMetadata parses a string as Org markup, resulting in an inline slice.
// Typically used to parse the title or other metadata of type markup.
func ParseMetadata(value string) ast.InlineSlice {
	return ParseInlines(input.NewInput([]byte(value)), meta.ValueSyntaxOrg)
}

// ParseMetadataNoLink parses a string as Org markup, resulting in an inline
// slice. All link and footnote nodes will be removed.
func ParseMetadataNoLink(value string) ast.InlineSlice {
	in := ParseMetadata(value)
	cleaner.CleanInlineLinks(&in)
	return in
}

// ParseDescription returns a suitable description stored in the metadata as
// an inline slice.
func ParseDescription(m *meta.Meta) ast.InlineSlice {
	if m == nil {
		return nil
	}
	descr, found := m.Get(meta.KeySummary)
	if !found {
		descr, found = m.Get(meta.KeyTitle)
	}
	if !found {
		return nil
	}
	return ParseMetadataNoLink(descr)
}

// ParseDocument parses the document based on the given syntax. If the syntax
// is empty, the syntax stored in the metadata is used.
func ParseDocument(doc domain.Document, syntax string) (*ast.DocumentNode, error) {
	m := doc.Meta
	if syntax == "" {
		syntax = m.GetDefault(meta.KeySyntax, meta.ValueSyntaxOrg)
	}
	bs, err := ParseBlocks(input.NewInput(doc.Content.AsBytes()), m, syntax)
	if err != nil {
		return nil, err
	}
	return &ast.DocumentNode{
		Meta:    m,
		Content: doc.Content,
		Ast:     bs,
		Syntax:  syntax,
	}, nil
}
