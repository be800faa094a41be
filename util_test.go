// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fuzzydate_test

import (
	"testing"

	"cloudeng.io/fuzzydate"
)

func newDate(y, m, d int) fuzzydate.Date {
	return fuzzydate.NewUnchecked(y, m, d, 0)
}

func newDateOffset(y, m, d, offset int) fuzzydate.Date {
	return fuzzydate.NewUnchecked(y, m, d, offset)
}

func newCalendarDate(y, m, d int) fuzzydate.CalendarDate {
	return fuzzydate.NewCalendarDate(y, fuzzydate.Month(m), d)
}

func lowOf(t *testing.T, d fuzzydate.Date) fuzzydate.CalendarDate {
	t.Helper()
	cd, err := d.Low()
	if err != nil {
		t.Fatalf("low of %v: %v", d, err)
	}
	return cd
}

func highOf(t *testing.T, d fuzzydate.Date) fuzzydate.CalendarDate {
	t.Helper()
	cd, err := d.High()
	if err != nil {
		t.Fatalf("high of %v: %v", d, err)
	}
	return cd
}
