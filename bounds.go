// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fuzzydate

import (
	"fmt"
	"iter"
)

// Low returns the earliest concrete date consistent with the known
// components: unknown months and days default to 1 and an unknown year
// defaults to the minimum representable year. Low fails if the date is
// invalid.
func (d Date) Low() (CalendarDate, error) {
	if err := d.CheckValid(); err != nil {
		return 0, err
	}
	year, month, day := d.year, d.month, d.day
	if year == 0 {
		year = MinYear
	}
	if month == 0 {
		month = 1
	}
	if day == 0 {
		day = 1
	}
	return NewCalendarDate(year, Month(month), day), nil
}

// High returns the latest concrete date consistent with the known
// components and the offset. Unknown components default to their
// maximum (December, last day of the month) and a nonzero offset then
// advances the result by that many years, months or days according to
// the date's precision. High fails if the date is invalid.
func (d Date) High() (CalendarDate, error) {
	if err := d.CheckValid(); err != nil {
		return 0, err
	}
	return d.high()
}

// high derives the upper bound. The caller must have verified the
// structural and range invariants already; only offset arithmetic can
// fail here.
func (d Date) high() (CalendarDate, error) {
	prec := d.Precision()
	if prec == PrecisionNone {
		return maxCalendarDate, nil
	}
	year, month, day := d.year, Month(d.month), d.day
	if prec < PrecisionMonth {
		month = 12
	}
	if prec < PrecisionDay {
		day = DaysInMonth(year, month)
	}
	if d.offset > 0 {
		// Cap the offset before doing arithmetic with it; anything that
		// could reach past MaxYear in the largest unit is already out of
		// range and large values must not be allowed to overflow.
		if d.offset > (MaxYear+1)*366 {
			return 0, fmt.Errorf("offset out of range: %w", ErrInvalid)
		}
		switch prec {
		case PrecisionYear:
			year += d.offset
			if year > MaxYear {
				return 0, fmt.Errorf("offset out of range: %w", ErrInvalid)
			}
			return NewCalendarDate(year, 12, 31), nil
		case PrecisionMonth:
			months := int(month) + d.offset
			year += (months - 1) / 12
			month = Month(months % 12)
			if month == 0 {
				month = 12
			}
			if year > MaxYear {
				return 0, fmt.Errorf("offset out of range: %w", ErrInvalid)
			}
			return NewCalendarDate(year, month, DaysInMonth(year, month)), nil
		case PrecisionDay:
			cd, ok := NewCalendarDate(year, month, day).AddDays(d.offset)
			if !ok {
				return 0, fmt.Errorf("offset out of range: %w", ErrInvalid)
			}
			return cd, nil
		}
	}
	return NewCalendarDate(year, month, day), nil
}

// Range returns the date range denoted by the fuzzy date, from its low
// bound to its high bound inclusive.
func (d Date) Range() (CalendarDateRange, error) {
	low, err := d.Low()
	if err != nil {
		return 0, err
	}
	high, err := d.high()
	if err != nil {
		return 0, err
	}
	return NewCalendarDateRange(low, high), nil
}

// Contains returns true if the concrete date cd falls within the range
// denoted by the fuzzy date.
func (d Date) Contains(cd CalendarDate) (bool, error) {
	r, err := d.Range()
	if err != nil {
		return false, err
	}
	return r.Contains(cd), nil
}

// CalendarDateRange represents an inclusive range of CalendarDate
// values as a single comparable value. The from date is stored in the
// top 32 bits and the to date in the low 32 bits so that integer
// comparison orders ranges by their start and then their end.
type CalendarDateRange uint64

// NewCalendarDateRange returns a CalendarDateRange for the from/to
// dates. If from is later than to they are swapped.
func NewCalendarDateRange(from, to CalendarDate) CalendarDateRange {
	if from > to {
		from, to = to, from
	}
	return CalendarDateRange(from)<<32 | CalendarDateRange(to)
}

// From returns the start date of the range.
func (r CalendarDateRange) From() CalendarDate {
	return CalendarDate(r >> 32)
}

// To returns the end date of the range.
func (r CalendarDateRange) To() CalendarDate {
	return CalendarDate(r & 0xffffffff)
}

// Contains returns true if the given date is within the range.
func (r CalendarDateRange) Contains(cd CalendarDate) bool {
	return r.From() <= cd && cd <= r.To()
}

func (r CalendarDateRange) String() string {
	return fmt.Sprintf("%s - %s", r.From(), r.To())
}

// Dates returns an iterator that yields each date in the range in
// chronological order.
func (r CalendarDateRange) Dates() iter.Seq[CalendarDate] {
	to := r.To()
	return func(yield func(CalendarDate) bool) {
		for cd := r.From(); ; cd = cd.Tomorrow() {
			if !yield(cd) {
				return
			}
			if cd >= to {
				return
			}
		}
	}
}
