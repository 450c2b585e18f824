// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// DefaultDelimiter separates CSV fields when none is configured.
const DefaultDelimiter = ","

// CSV renders rows as a header line of column names followed by one line per
// row. Each value is JSON-encoded, so strings are quoted and numbers are not.
// Lines are separated by "\n" with no trailing newline. No rows yields "".
func CSV[T any](rows []T, cols []Column[T], delimiter string) (string, error) {
	if len(rows) == 0 {
		return "", nil
	}
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}

	var b strings.Builder
	for i, c := range cols {
		if i > 0 {
			b.WriteString(delimiter)
		}
		b.WriteString(c.Name)
	}

	for _, r := range rows {
		b.WriteByte('\n')
		for i, c := range cols {
			if i > 0 {
				b.WriteString(delimiter)
			}
			v, err := json.MarshalNoEscape(c.Value(r))
			if err != nil {
				return "", fmt.Errorf("encode column %s: %w", c.Name, err)
			}
			b.Write(v)
		}
	}
	return b.String(), nil
}

// Filename names an export of resource made at t, e.g. "teams-1771092191512.csv".
func Filename(resource string, t time.Time) string {
	return fmt.Sprintf("%s-%d.csv", resource, t.UnixMilli())
}
