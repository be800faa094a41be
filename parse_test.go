// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fuzzydate_test

import (
	"encoding/json"
	"errors"
	"testing"

	"cloudeng.io/fuzzydate"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want fuzzydate.Date
	}{
		{"0", fuzzydate.Date{}},
		{"1914", newDate(1914, 0, 0)},
		{"1914-7", newDate(1914, 7, 0)},
		{"1914-07", newDate(1914, 7, 0)},
		{"1914-07-28", newDate(1914, 7, 28)},
		{"1914-07-028", newDate(1914, 7, 28)},
		{"0001914-07-28", newDate(1914, 7, 28)},
		{"1914+2", newDateOffset(1914, 0, 0, 2)},
		{"1914-7+2", newDateOffset(1914, 7, 0, 2)},
		{"1914-07-28+2", newDateOffset(1914, 7, 28, 2)},
		{"10", newDate(10, 0, 0)},
	} {
		var d fuzzydate.Date
		if err := d.Parse(tc.val); err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := d, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		val string
	}{
		{""},
		{"invalid"},
		{"1914-"},
		{"1914-07-"},
		{"-07-28"},
		{"1914-07-28+"},
		{"+2"},
		{"1914 07 28"},
		{"1914-07-28-1"},
		{"1914.5"},
	} {
		if _, err := fuzzydate.Parse(tc.val); !errors.Is(err, fuzzydate.ErrParse) {
			t.Errorf("%q: got %v, want a parse error", tc.val, err)
		}
	}
	// Well-formed but invalid input is a validation error, not a parse
	// error.
	_, err := fuzzydate.Parse("1914-07-40+2")
	if !errors.Is(err, fuzzydate.ErrInvalid) {
		t.Errorf("got %v, want a validation error", err)
	}
	if errors.Is(err, fuzzydate.ErrParse) {
		t.Errorf("validation failure should not be a parse error")
	}
	// Deferred parsing accepts it.
	d, err := fuzzydate.ParseUnchecked("1914-07-40+2")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d, newDateOffset(1914, 7, 40, 2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestString(t *testing.T) {
	for _, tc := range []struct {
		date fuzzydate.Date
		want string
	}{
		{fuzzydate.Date{}, "0"},
		{newDateOffset(0, 0, 0, 2), "0+2"},
		{newDate(1914, 0, 0), "1914"},
		{newDate(10, 0, 0), "10"},
		{newDate(1914, 7, 0), "1914-07"},
		{newDate(1914, 7, 1), "1914-07-01"},
		{newDateOffset(1914, 0, 0, 2), "1914+2"},
		{newDateOffset(10, 0, 0, 3), "10+3"},
		{newDateOffset(1914, 7, 0, 2), "1914-07+2"},
		{newDateOffset(1914, 7, 1, 2), "1914-07-01+2"},
		// Rendering never validates; structurally invalid values render
		// with zero placeholders.
		{newDateOffset(0, 7, 1, 2), "0-07-01+2"},
		{newDate(1914, 7, 40), "1914-07-40"},
	} {
		if got, want := tc.date.String(), tc.want; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		date fuzzydate.Date
	}{
		{fuzzydate.Date{}},
		{newDate(1914, 0, 0)},
		{newDate(1914, 7, 0)},
		{newDate(1914, 7, 28)},
		{newDateOffset(1914, 0, 0, 2)},
		{newDateOffset(1914, 7, 0, 18)},
		{newDateOffset(1914, 7, 28, 25)},
		{fuzzydate.Min()},
		{fuzzydate.Max()},
	} {
		var d fuzzydate.Date
		if err := d.Parse(tc.date.String()); err != nil {
			t.Errorf("failed: %v: %v", tc.date, err)
			continue
		}
		if got, want := d, tc.date; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

// Reparsing "0+2" must reconstruct the offset on an otherwise unknown
// date; the result is well formed but fails validation.
func TestRoundTripUnknownOffset(t *testing.T) {
	in := newDateOffset(0, 0, 0, 2)
	d, err := fuzzydate.ParseUnchecked(in.String())
	if err != nil {
		t.Fatal(err)
	}
	if got, want := d, in; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if d.IsValid() {
		t.Errorf("unknown date with offset should be invalid")
	}
}

func TestTextMarshaling(t *testing.T) {
	in := newDateOffset(1914, 7, 28, 2)
	buf, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(buf), `"1914-07-28+2"`; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	var out fuzzydate.Date
	if err := json.Unmarshal(buf, &out); err != nil {
		t.Fatal(err)
	}
	if got, want := out, in; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := json.Unmarshal([]byte(`"1914-13"`), &out); err == nil {
		t.Errorf("failed to return an error")
	}
}
