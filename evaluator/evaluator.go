//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package evaluator interprets and evaluates the AST after parsing.
package evaluator

import (
	"fmt"
	"strings"

	"orgpress.de/op/ast"
)

// CyclicReferenceError signals a chain of code references that revisits a
// name that is already being expanded.
type CyclicReferenceError struct {
	Chain []string // The reference chain, ending in the repeated name
}

func (err *CyclicReferenceError) Error() string {
	return "cyclic code reference: " + strings.Join(err.Chain, " -> ")
}

// UndefinedReferenceError signals a code reference to a name for which no
// code block exists in the document.
type UndefinedReferenceError struct {
	Name string
}

func (err *UndefinedReferenceError) Error() string {
	return fmt.Sprintf("undefined code reference %q", err.Name)
}

// EvaluateDocument evaluates the parsed document: named code references are
// expanded into their referencing blocks and the changelog section is
// extracted into structured entries. Code blocks without references stay
// unchanged.
func EvaluateDocument(dn *ast.DocumentNode) error {
	if err := expandCodeRefs(dn); err != nil {
		return err
	}
	dn.Changelog = extractChangelog(&dn.Ast)
	return nil
}

func expandCodeRefs(dn *ast.DocumentNode) error {
	r := &refResolver{
		blocks: map[string]*ast.CodeBlockNode{},
		cache:  map[string][]string{},
	}
	ast.Walk(r, &dn.Ast)
	for _, cn := range r.order {
		if len(cn.Refs) == 0 {
			continue
		}
		lines, err := r.expandBlock(cn, nil)
		if err != nil {
			return err
		}
		cn.Lines = lines
	}
	return nil
}

type refResolver struct {
	blocks map[string]*ast.CodeBlockNode
	order  []*ast.CodeBlockNode
	cache  map[string][]string
}

func (r *refResolver) Visit(node ast.Node) ast.Visitor {
	cn, ok := node.(*ast.CodeBlockNode)
	if !ok {
		return r
	}
	if cn.Kind == ast.CodeBlockProg {
		r.order = append(r.order, cn)
		if cn.Name != "" {
			if _, found := r.blocks[cn.Name]; !found {
				r.blocks[cn.Name] = cn
			}
		}
	}
	return nil
}

// expandBlock returns the lines of the given code block, with every code
// reference replaced by the lines of the referenced block. The visited chain
// is carried as a parameter so that concurrently evaluated documents never
// interfere.
func (r *refResolver) expandBlock(cn *ast.CodeBlockNode, visited []string) ([]string, error) {
	result := make([]string, 0, len(cn.Lines))
	for _, line := range cn.Lines {
		expanded, err := r.expandLine(line, visited)
		if err != nil {
			return nil, err
		}
		result = append(result, expanded...)
	}
	return result, nil
}

// expandLine expands all code references of one line. A line that consists
// of a single reference expands to the referenced lines, each prefixed with
// the indentation of the reference.
func (r *refResolver) expandLine(line string, visited []string) ([]string, error) {
	start := strings.Index(line, "<<")
	if start < 0 {
		return []string{line}, nil
	}
	stop := strings.Index(line[start+2:], ">>")
	if stop < 0 {
		return []string{line}, nil
	}
	name := line[start+2 : start+2+stop]
	if name == "" || strings.ContainsAny(name, "<>") {
		return []string{line}, nil
	}
	lines, err := r.expandName(name, visited)
	if err != nil {
		return nil, err
	}
	prefix, suffix := line[:start], line[start+2+stop+2:]
	if strings.TrimSpace(prefix) == "" && strings.TrimSpace(suffix) == "" {
		// Reference on its own line: indent every expanded line.
		result := make([]string, 0, len(lines))
		for _, l := range lines {
			result = append(result, prefix+l)
		}
		return result, nil
	}
	return r.expandLine(prefix+strings.Join(lines, "\n")+suffix, visited)
}

func (r *refResolver) expandName(name string, visited []string) ([]string, error) {
	for _, v := range visited {
		if v == name {
			return nil, &CyclicReferenceError{Chain: append(visited, name)}
		}
	}
	if lines, found := r.cache[name]; found {
		return lines, nil
	}
	cn, found := r.blocks[name]
	if !found {
		return nil, &UndefinedReferenceError{Name: name}
	}
	lines, err := r.expandBlock(cn, append(visited, name))
	if err != nil {
		return nil, err
	}
	r.cache[name] = lines
	return lines, nil
}
