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
	"sort"
	"time"
)

// Record summarizes one rendered document for the site index and the feeds.
type Record struct {
	Name     string    // Document name, unique within the site
	URL      string    // URL of the rendered document
	Title    string    // Title, as plain text
	Summary  string    // Short description, as plain text
	Tags     []string  // Document tags
	Keywords []string  // Document keywords
	Lang     string    // Language of the document
	Author   string    // Author of the document
	Date     time.Time // Publication date, zero if unknown
	Draft    bool      // True if the document is a draft
}

// RecordSlice is a slice of records.
type RecordSlice []Record

// SortByDate sorts the records by date, newest first. Records with equal
// dates are sorted by name.
func (rs RecordSlice) SortByDate() {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].Date.Equal(rs[j].Date) {
			return rs[i].Name < rs[j].Name
		}
		return rs[i].Date.After(rs[j].Date)
	})
}

// SortByName sorts the records by their name.
func (rs RecordSlice) SortByName() {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].Name < rs[j].Name })
}
