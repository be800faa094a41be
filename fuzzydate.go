// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package fuzzydate provides a value type for dates whose precision may
// be partially unknown: a date may be known to the day, to the month, to
// the year, or not at all. A date may also carry a forward offset that
// widens its uncertainty window, so "1914-07+2" denotes some day between
// July 1 1914 and the last day of September 1914.
//
// Dates can be encoded as a single integer by shifting larger units into
// higher order digits, with unknown components encoded as zero. July 28
// 1914 is 19140728 and July 1914 is 19140700. A component may only be set
// when all coarser components are set, so 19140028 is not a valid
// encoding.
package fuzzydate

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned, wrapped with the specific reason, for any
// fuzzy date that fails validation.
var ErrInvalid = errors.New("invalid fuzzy date")

// Date represents a possibly imprecise calendar date together with an
// optional forward uncertainty offset. The zero value is the canonical
// fully unknown date. Date is comparable; equality and map key identity
// cover all four components including the offset.
type Date struct {
	year, month, day int
	offset           int
}

var (
	minDate = Date{year: MinYear}
	maxDate = Date{year: MaxYear, month: 12, day: 31}
)

// Min returns the fuzzy date for the earliest representable year, with
// unknown month and day.
func Min() Date {
	return minDate
}

// Max returns the fuzzy date for the latest representable calendar date.
func Max() Date {
	return maxDate
}

// New returns a Date for the given components and validates it.
// Components with a value of zero are unknown.
func New(year, month, day, offset int) (Date, error) {
	d := Date{year: year, month: month, day: day, offset: offset}
	if err := d.CheckValid(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// NewUnchecked is like New but defers validation; the returned Date may
// be invalid and will report so from CheckValid or any bound accessor.
func NewUnchecked(year, month, day, offset int) Date {
	return Date{year: year, month: month, day: day, offset: offset}
}

// FromNumber returns a validated Date decoded from the integer date
// encoding, with the given offset. 19140700 decodes as July 1914.
func FromNumber(number, offset int) (Date, error) {
	d := FromNumberUnchecked(number, offset)
	if err := d.CheckValid(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// FromNumberUnchecked is like FromNumber but defers validation.
func FromNumberUnchecked(number, offset int) Date {
	return Date{
		year:   number / 10000,
		month:  (number / 100) % 100,
		day:    number % 100,
		offset: offset,
	}
}

// FromTime returns the day-precision Date for the given time in its
// location. A concrete date is always valid.
func FromTime(t time.Time) Date {
	return Date{year: t.Year(), month: int(t.Month()), day: t.Day()}
}

// FromCalendarDate returns the day-precision Date for cd.
func FromCalendarDate(cd CalendarDate) Date {
	return Date{year: cd.Year(), month: int(cd.Month()), day: cd.Day()}
}

// Year returns the year if known, else 0.
func (d Date) Year() int {
	return d.year
}

// Month returns the month if known, else 0.
func (d Date) Month() int {
	return d.month
}

// Day returns the day if known, else 0.
func (d Date) Day() int {
	return d.day
}

// Offset returns the uncertainty offset, 0 if there is none. The offset
// counts the units of the date's precision, ie. years for a year
// precision date, months for month precision and days for day precision.
func (d Date) Offset() int {
	return d.offset
}

// Number returns the integer encoding of the date's components. The
// offset is not part of the encoding.
func (d Date) Number() int {
	return d.year*10000 + d.month*100 + d.day
}

// IsZero returns true for the fully unknown date with no offset.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Precision returns the precision to which the date is known, determined
// by the finest nonzero component.
func (d Date) Precision() Precision {
	switch {
	case d.year == 0:
		return PrecisionNone
	case d.month == 0:
		return PrecisionYear
	case d.day == 0:
		return PrecisionMonth
	default:
		return PrecisionDay
	}
}

// CheckValid returns nil if the date satisfies the structural and
// calendar invariants, and otherwise an error wrapping ErrInvalid with
// the first failed check:
//   - the fully unknown date may not carry an offset
//   - a day requires a month and a month requires a year
//   - components must not be negative
//   - a day must exist in its year and month, a month must be at most 12
//     and the year must lie in [MinYear, MaxYear]
//   - the offset must not push the upper bound past MaxYear
func (d Date) CheckValid() error {
	if d.year == 0 && d.month == 0 && d.day == 0 {
		if d.offset != 0 {
			return fmt.Errorf("unknown date may not have offset: %w", ErrInvalid)
		}
		return nil
	}
	prec := d.Precision()
	if prec < PrecisionDay && d.day != 0 {
		return fmt.Errorf("day must not be set: %w", ErrInvalid)
	}
	if d.month < 0 {
		return fmt.Errorf("month must not be negative: %w", ErrInvalid)
	}
	if prec < PrecisionMonth && d.month != 0 {
		return fmt.Errorf("month must not be set: %w", ErrInvalid)
	}
	if d.year < 0 {
		return fmt.Errorf("year must not be negative: %w", ErrInvalid)
	}
	if d.day > 0 && d.month >= 1 && d.month <= 12 {
		if d.day > DaysInMonth(d.year, Month(d.month)) {
			return fmt.Errorf("invalid day: %d: %w", d.day, ErrInvalid)
		}
	}
	if d.month > 12 {
		return fmt.Errorf("invalid month: %d: %w", d.month, ErrInvalid)
	}
	if d.year < MinYear || d.year > MaxYear {
		return fmt.Errorf("invalid year: %d: %w", d.year, ErrInvalid)
	}
	if d.day < 0 {
		return fmt.Errorf("day must not be negative: %w", ErrInvalid)
	}
	if d.offset < 0 {
		return fmt.Errorf("offset must not be negative: %w", ErrInvalid)
	}
	_, err := d.high()
	return err
}

// IsValid returns true if CheckValid would return nil.
func (d Date) IsValid() bool {
	return d.CheckValid() == nil
}

// Using returns a new Date expressing the same known information at the
// given precision. Asking for less precision discards the finer
// components; asking for more fills them in with their minimum values
// (the minimum representable year, month 1, day 1). Using is not defined
// for dates that carry an offset.
func (d Date) Using(prec Precision) (Date, error) {
	if d.offset != 0 {
		return Date{}, fmt.Errorf("cannot change precision of a date with an offset: %w", ErrInvalid)
	}
	year := d.year
	if year == 0 {
		year = MinYear
	}
	month := d.month
	if month == 0 {
		month = 1
	}
	day := d.day
	if day == 0 {
		day = 1
	}
	switch prec {
	case PrecisionNone:
		return Date{}, nil
	case PrecisionYear:
		return Date{year: year}, nil
	case PrecisionMonth:
		return Date{year: year, month: month}, nil
	case PrecisionDay:
		return Date{year: year, month: month, day: day}, nil
	}
	return Date{}, fmt.Errorf("invalid precision: %d: %w", int(prec), ErrInvalid)
}

// Compare returns -1, 0 or +1 according to whether d sorts before, equal
// to or after o. Dates are ordered lexicographically by their (year,
// month, day) components with unknown components ordering before known
// ones, so 1914-07 sorts before 1914-07-28. Dates with equal components
// are ordered by offset.
func (d Date) Compare(o Date) int {
	if c := cmpInt(d.year, o.year); c != 0 {
		return c
	}
	if c := cmpInt(d.month, o.month); c != 0 {
		return c
	}
	if c := cmpInt(d.day, o.day); c != 0 {
		return c
	}
	return cmpInt(d.offset, o.offset)
}

// Before returns true if d sorts strictly before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
