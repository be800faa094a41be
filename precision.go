// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fuzzydate

import "fmt"

// Precision represents how much of a fuzzy date is known, from nothing
// at all through to an exact day. Precisions are totally ordered from
// least to most precise using their explicit numeric ranks, ie.
// PrecisionNone < PrecisionYear < PrecisionMonth < PrecisionDay.
type Precision int

const (
	PrecisionNone  Precision = 1
	PrecisionYear  Precision = 2
	PrecisionMonth Precision = 3
	PrecisionDay   Precision = 4
)

var precisionNames = map[Precision]string{
	PrecisionNone:  "none",
	PrecisionYear:  "year",
	PrecisionMonth: "month",
	PrecisionDay:   "day",
}

func (p Precision) String() string {
	if n, ok := precisionNames[p]; ok {
		return n
	}
	return fmt.Sprintf("precision(%d)", int(p))
}

// ParsePrecision parses one of "none", "year", "month" or "day".
func ParsePrecision(val string) (Precision, error) {
	for p, n := range precisionNames {
		if n == val {
			return p, nil
		}
	}
	return 0, fmt.Errorf("invalid precision: %q", val)
}

// Parse parses a precision name as per ParsePrecision.
func (p *Precision) Parse(val string) error {
	n, err := ParsePrecision(val)
	if err != nil {
		return err
	}
	*p = n
	return nil
}
