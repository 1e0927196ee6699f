//-----------------------------------------------------------------------------
// Copyright (c) 2023-present Detlef Stern
//
// This file is part of OrgPress.
//
// OrgPress is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package encoding provides helper functions for encodings.
package encoding

import (
	"time"

	"orgpress.de/op/domain"
)

// LastUpdated returns the formated time of the record that was published at
// the latest time.
func LastUpdated(rs domain.RecordSlice, timeFormat string) string {
	var maxPublished time.Time
	for _, r := range rs {
		if maxPublished.Before(r.Date) {
			maxPublished = r.Date
		}
	}
	if maxPublished.IsZero() {
		return ""
	}
	return maxPublished.UTC().Format(timeFormat)
}

// CleanTags removes leading hash characters of all tags and drops tags that
// become empty.
func CleanTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		for len(tag) > 0 && tag[0] == '#' {
			tag = tag[1:]
		}
		if tag != "" {
			result = append(result, tag)
		}
	}
	return result
}
