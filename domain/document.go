//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package domain

import (
	"orgpress.de/op/domain/meta"
)

// Document is the main data object of OrgPress.
type Document struct {
	Meta    *meta.Meta // Some additional meta-data.
	Content Content    // The content of the document itself.
}

// Equal compares two documents for equality.
func (d Document) Equal(o Document) bool {
	return d.Meta.Equal(o.Meta) && d.Content == o.Content
}
