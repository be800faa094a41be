// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fuzzydate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrParse is returned, wrapped with the offending input, when a string
// does not match the fuzzy date grammar at all. Calendar violations in
// a well-formed string are reported as ErrInvalid, not ErrParse.
var ErrParse = errors.New("invalid fuzzy date syntax")

// Grammar is YEAR[-MONTH[-DAY]][+OFFSET] where each group is a run of
// decimal digits. Leading zeros carry no meaning.
var fuzzyDateRe = regexp.MustCompile(`^(\d+)(?:-(\d+)(?:-(\d+))?)?(?:\+(\d+))?$`)

// Parse parses a fuzzy date in the format 'YEAR[-MONTH[-DAY]][+OFFSET]',
// eg. '1914', '1914-07', '1914-07-28' or '1914-07+2', and validates the
// result. Absent groups parse as unknown components.
func Parse(val string) (Date, error) {
	d, err := ParseUnchecked(val)
	if err != nil {
		return Date{}, err
	}
	if err := d.CheckValid(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// ParseUnchecked is like Parse but defers validation, so it fails only
// when the input does not match the grammar.
func ParseUnchecked(val string) (Date, error) {
	groups := fuzzyDateRe.FindStringSubmatch(val)
	if groups == nil {
		return Date{}, fmt.Errorf("%q: %w", val, ErrParse)
	}
	var components [4]int
	for i, group := range groups[1:] {
		if group == "" {
			continue
		}
		n, err := strconv.Atoi(group)
		if err != nil {
			return Date{}, fmt.Errorf("%q: %w", val, ErrParse)
		}
		components[i] = n
	}
	return Date{
		year:   components[0],
		month:  components[1],
		day:    components[2],
		offset: components[3],
	}, nil
}

// Parse parses and validates a fuzzy date as per the package level
// Parse. d is assigned only on success.
func (d *Date) Parse(val string) error {
	nd, err := Parse(val)
	if err != nil {
		return err
	}
	*d = nd
	return nil
}

// String renders the date in the format parsed by Parse: '0' for the
// fully unknown date, the year alone for year precision and zero padded
// two digit month and day groups for finer precisions, with any nonzero
// offset appended as '+N'. String never validates; structurally invalid
// values render with zero placeholders, eg. '0-07-01'.
func (d Date) String() string {
	if d.year == 0 && d.month == 0 && d.day == 0 {
		if d.offset != 0 {
			return "0+" + strconv.Itoa(d.offset)
		}
		return "0"
	}
	var offset string
	if d.offset != 0 {
		offset = "+" + strconv.Itoa(d.offset)
	}
	switch {
	case d.month == 0 && d.day == 0:
		return fmt.Sprintf("%d%s", d.year, offset)
	case d.day == 0 && d.year != 0:
		return fmt.Sprintf("%d-%02d%s", d.year, d.month, offset)
	default:
		return fmt.Sprintf("%d-%02d-%02d%s", d.year, d.month, d.day, offset)
	}
}

// MarshalText implements encoding.TextMarshaler using the same
// representation as String. Marshaling never fails, even for invalid
// values.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The input is parsed
// and validated as per Parse.
func (d *Date) UnmarshalText(data []byte) error {
	return d.Parse(string(data))
}
