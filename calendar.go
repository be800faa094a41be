// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fuzzydate

import (
	"fmt"
	"time"
)

// Month as an int.
type Month time.Month

func (m Month) String() string {
	return time.Month(m).String()
}

// MinYear and MaxYear are the smallest and largest representable
// calendar years (proleptic Gregorian).
const (
	MinYear = 1
	MaxYear = 9999
)

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the
// given year.
func DaysInMonth(year int, month Month) int {
	if month == 2 {
		return DaysInFeb(year)
	}
	return monthDays[month-1]
}

// CalendarDate represents a concrete year, month and day as a single
// comparable value. The year is stored in the top 16 bits, the month in
// the next 8 and the day in the low 8 so that integer comparison of
// CalendarDate values is chronological ordering.
type CalendarDate uint32

// NewCalendarDate returns a CalendarDate for the given year, month and day.
// The components are masked to their fields but not otherwise validated.
func NewCalendarDate(year int, month Month, day int) CalendarDate {
	return CalendarDate(year&0xffff)<<16 | CalendarDate(month&0xff)<<8 | CalendarDate(day&0xff)
}

// CalendarDateFromTime returns the CalendarDate for the given time in its
// location.
func CalendarDateFromTime(t time.Time) CalendarDate {
	return NewCalendarDate(t.Year(), Month(t.Month()), t.Day())
}

var (
	minCalendarDate = NewCalendarDate(MinYear, 1, 1)
	maxCalendarDate = NewCalendarDate(MaxYear, 12, 31)
)

// MinCalendarDate returns the earliest representable date, January 1 of
// year 1.
func MinCalendarDate() CalendarDate {
	return minCalendarDate
}

// MaxCalendarDate returns the latest representable date, December 31 of
// year 9999.
func MaxCalendarDate() CalendarDate {
	return maxCalendarDate
}

func (cd CalendarDate) Year() int {
	return int(cd >> 16 & 0xffff)
}

func (cd CalendarDate) Month() Month {
	return Month(cd >> 8 & 0xff)
}

func (cd CalendarDate) Day() int {
	return int(cd & 0xff)
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year(), int(cd.Month()), cd.Day())
}

// Time returns the time.Time for midnight on cd in the given location,
// or in UTC if loc is nil.
func (cd CalendarDate) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(cd.Year(), time.Month(cd.Month()), cd.Day(), 0, 0, 0, 0, loc)
}

// Tomorrow returns the date of the next day. Dec 31 of one year is
// followed by Jan 1 of the next. Tomorrow of the maximum representable
// date is the maximum representable date.
func (cd CalendarDate) Tomorrow() CalendarDate {
	if cd >= maxCalendarDate {
		return maxCalendarDate
	}
	year, month, day := cd.Year(), cd.Month(), cd.Day()
	if month == 12 && day == 31 {
		return NewCalendarDate(year+1, 1, 1)
	}
	if day >= DaysInMonth(year, month) {
		return NewCalendarDate(year, month+1, 1)
	}
	return NewCalendarDate(year, month, day+1)
}

// AddDays returns the date n calendar days after cd. The second return
// value is false if the result would fall outside of the representable
// date range.
func (cd CalendarDate) AddDays(n int) (CalendarDate, bool) {
	t := cd.Time(time.UTC).AddDate(0, 0, n)
	year := t.Year()
	if year < MinYear || year > MaxYear {
		return 0, false
	}
	return CalendarDateFromTime(t), true
}
