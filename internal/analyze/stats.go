package analyze

import (
	"slices"
	"time"

	"github.com/tibcsoo96/dates-le/internal/extract"
)

// Stats computes the aggregate view over a date collection.
//
// Uniqueness is by distinct epoch-millisecond instant, not by raw string,
// so two differently formatted strings naming the same instant count once.
// The timezone histogram keys on the local-time interpretation of each
// instant (the offset the host would display it with), not on any zone
// token parsed from the source string.
func Stats(dates []extract.DateValue) Statistics {
	st := Statistics{
		Total:     len(dates),
		ByFormat:  make(map[extract.Format]int),
		ByOffset:  make(map[int]int),
		ByYear:    make(map[int]int),
		ByMonth:   make(map[time.Month]int),
		ByWeekday: make(map[time.Weekday]int),
		ByHour:    make(map[int]int),
	}

	var epochs []int64
	for _, d := range dates {
		st.ByFormat[d.Format]++
		if !d.Valid {
			continue
		}
		epochs = append(epochs, d.EpochMillis())

		local := d.TS.Local()
		_, offsetSec := local.Zone()
		st.ByOffset[offsetSec/60]++
		st.ByYear[local.Year()]++
		st.ByMonth[local.Month()]++
		st.ByWeekday[local.Weekday()]++
		st.ByHour[local.Hour()]++
	}

	if len(epochs) == 0 {
		return st
	}

	sorted := slices.Clone(epochs)
	slices.Sort(sorted)

	st.Unique = countUnique(sorted)
	st.Duplicates = len(epochs) - st.Unique
	st.Earliest = time.UnixMilli(sorted[0])
	st.Latest = time.UnixMilli(sorted[len(sorted)-1])
	st.Range = st.Latest.Sub(st.Earliest)
	st.Average = time.UnixMilli(mean(sorted))
	st.Median = time.UnixMilli(median(sorted))
	return st
}

// countUnique counts distinct values in a sorted slice.
func countUnique(sorted []int64) int {
	n := 0
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			n++
		}
	}
	return n
}

func mean(values []int64) int64 {
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return int64(sum / float64(len(values)))
}

// median returns the middle value of a sorted slice, averaging the two
// middle values for even lengths.
func median(sorted []int64) int64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
