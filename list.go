// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fuzzydate

import (
	"fmt"
	"sort"
	"strings"

	"cloudeng.io/errors"
)

// List represents a list of fuzzy dates.
type List []Date

// Parse a comma separated list of fuzzy dates, eg.
// '1914,1916-02,1914-07-28+2'. All elements are parsed and validated and
// the errors for every bad element are returned together. l is assigned
// only when the entire list parses.
func (l *List) Parse(val string) error {
	if len(val) == 0 {
		return nil
	}
	parts := strings.Split(val, ",")
	dates := make(List, 0, len(parts))
	errs := errors.M{}
	for _, part := range parts {
		part = strings.TrimSpace(part)
		var d Date
		if err := d.Parse(part); err != nil {
			errs.Append(fmt.Errorf("invalid list element %q: %w", part, err))
			continue
		}
		dates = append(dates, d)
	}
	if err := errs.Err(); err != nil {
		return err
	}
	*l = dates
	return nil
}

// Sort orders the list in place, earliest first, using Date.Before.
func (l List) Sort() {
	sort.Slice(l, func(i, j int) bool { return l[i].Before(l[j]) })
}

// Contains returns true if the list contains the given date.
func (l List) Contains(d Date) bool {
	for _, ld := range l {
		if ld == d {
			return true
		}
	}
	return false
}

func (l List) String() string {
	var out strings.Builder
	for i, d := range l {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(d.String())
	}
	return out.String()
}
