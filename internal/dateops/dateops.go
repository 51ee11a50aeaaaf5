// Package dateops provides in-memory sorting, filtering, and uniqueness
// operations over extracted date sets. All functions return fresh slices
// and leave their input untouched.
package dateops

import (
	"slices"
	"time"

	"github.com/tibcsoo96/dates-le/internal/extract"
)

// SortByTime orders dates chronologically, descending when desc is set.
// Invalid entries keep their relative order and sink to the end either way.
func SortByTime(dates []extract.DateValue, desc bool) []extract.DateValue {
	out := slices.Clone(dates)
	slices.SortStableFunc(out, func(a, b extract.DateValue) int {
		switch {
		case a.Valid && !b.Valid:
			return -1
		case !a.Valid && b.Valid:
			return 1
		case !a.Valid && !b.Valid:
			return 0
		}
		c := a.TS.Compare(b.TS)
		if desc {
			c = -c
		}
		return c
	})
	return out
}

// FilterRange keeps valid dates within [from, to]. A zero bound is open.
func FilterRange(dates []extract.DateValue, from, to time.Time) []extract.DateValue {
	var out []extract.DateValue
	for _, d := range dates {
		if !d.Valid {
			continue
		}
		if !from.IsZero() && d.TS.Before(from) {
			continue
		}
		if !to.IsZero() && d.TS.After(to) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// FilterFormat keeps entries whose format is in the given set.
func FilterFormat(dates []extract.DateValue, formats ...extract.Format) []extract.DateValue {
	want := make(map[extract.Format]bool, len(formats))
	for _, f := range formats {
		want[f] = true
	}
	var out []extract.DateValue
	for _, d := range dates {
		if want[d.Format] {
			out = append(out, d)
		}
	}
	return out
}

// UniqueByValue keeps the first occurrence of each raw value.
func UniqueByValue(dates []extract.DateValue) []extract.DateValue {
	seen := make(map[string]bool, len(dates))
	var out []extract.DateValue
	for _, d := range dates {
		if seen[d.Value] {
			continue
		}
		seen[d.Value] = true
		out = append(out, d)
	}
	return out
}
