//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package encoder provides a generic interface to encode the abstract syntax
// tree into some text form.
package encoder

import (
	"errors"
	"fmt"
	"io"

	"orgpress.de/op/ast"
	"orgpress.de/op/domain/meta"
)

// Encoder is an interface that allows to encode different parts of a document.
type Encoder interface {
	WriteDocument(io.Writer, *ast.DocumentNode, EvalMetaFunc) (int, error)
	WriteMeta(io.Writer, *meta.Meta, EvalMetaFunc) (int, error)
	WriteBlocks(io.Writer, *ast.BlockSlice) (int, error)
	WriteInlines(io.Writer, *ast.InlineSlice) (int, error)
}

// EvalMetaFunc is a function that takes a string of metadata and returns
// a list of syntax elements.
type EvalMetaFunc func(string) ast.InlineSlice

// Some errors to signal when encoder methods are not implemented.
var (
	ErrNoWriteDocument = errors.New("method WriteDocument is not implemented")
	ErrNoWriteMeta     = errors.New("method WriteMeta is not implemented")
	ErrNoWriteBlocks   = errors.New("method WriteBlocks is not implemented")
	ErrNoWriteInlines  = errors.New("method WriteInlines is not implemented")
)

// UnresolvedFootnoteError is returned when a footnote reference names a
// label without a definition in the same document.
type UnresolvedFootnoteError struct {
	Label string
}

func (err *UnresolvedFootnoteError) Error() string {
	return "unresolved footnote reference: " + err.Label
}

// Encoding defines the type of encoding.
type Encoding string

// Values for Encoding.
const (
	EncodingHTML Encoding = "html"
	EncodingJSON Encoding = "json"
	EncodingSz   Encoding = "sz"
	EncodingText Encoding = "text"
)

func (e Encoding) String() string { return string(e) }

// Create builds a new encoder with the given encoding.
func Create(enc Encoding) Encoder {
	if create, ok := registry[enc]; ok {
		return create()
	}
	return nil
}

var registry = map[Encoding]func() Encoder{}

// Register the encoder for later retrieval.
func Register(enc Encoding, create func() Encoder) {
	if _, ok := registry[enc]; ok {
		panic(fmt.Sprintf("Encoder %q already registered", enc))
	}
	registry[enc] = create
}

// GetEncodings returns all registered encodings.
func GetEncodings() []Encoding {
	result := make([]Encoding, 0, len(registry))
	for enc := range registry {
		result = append(result, enc)
	}
	return result
}
