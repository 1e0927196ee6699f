//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package parser

import "fmt"

// StructuralError signals a block or drawer that was opened but never
// terminated. Such a document cannot be processed further.
type StructuralError struct {
	Kind string // What was left open, e.g. "src block" or "drawer"
	Name string // The name given on the opening line, if any
	Line int    // Line number of the opening line
}

func (err *StructuralError) Error() string {
	if err.Name != "" {
		return fmt.Sprintf("unterminated %s %q, opened on line %d", err.Kind, err.Name, err.Line)
	}
	return fmt.Sprintf("unterminated %s, opened on line %d", err.Kind, err.Line)
}
