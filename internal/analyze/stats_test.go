package analyze

import (
	"testing"
	"time"

	"github.com/tibcsoo96/dates-le/internal/extract"
)

func at(ms int64) extract.DateValue {
	return extract.DateValue{
		Value:  time.UnixMilli(ms).UTC().Format(time.RFC3339),
		Format: extract.FormatISO,
		TS:     time.UnixMilli(ms),
		Valid:  true,
	}
}

func atTime(ts time.Time) extract.DateValue {
	return extract.DateValue{
		Value:  ts.Format(time.RFC3339),
		Format: extract.FormatISO,
		TS:     ts,
		Valid:  true,
	}
}

func invalid(value string) extract.DateValue {
	return extract.DateValue{Value: value, Format: extract.FormatCustom}
}

func TestStats_Empty(t *testing.T) {
	st := Stats(nil)
	if st.Total != 0 || st.Unique != 0 || st.Duplicates != 0 {
		t.Errorf("counts = %d/%d/%d, want zeros", st.Total, st.Unique, st.Duplicates)
	}
	if !st.Earliest.IsZero() || !st.Latest.IsZero() {
		t.Errorf("bounds should stay zero: %v, %v", st.Earliest, st.Latest)
	}
	if st.Range != 0 {
		t.Errorf("range = %v, want 0", st.Range)
	}
}

func TestStats_InvalidOnly(t *testing.T) {
	st := Stats([]extract.DateValue{invalid("junk")})
	if st.Total != 1 {
		t.Errorf("total = %d, want 1", st.Total)
	}
	if st.Unique != 0 || st.Duplicates != 0 {
		t.Errorf("unique/duplicates = %d/%d, want zeros", st.Unique, st.Duplicates)
	}
	if st.ByFormat[extract.FormatCustom] != 1 {
		t.Errorf("format histogram = %v", st.ByFormat)
	}
}

func TestStats_BoundsAndRange(t *testing.T) {
	dates := []extract.DateValue{at(300), at(100), at(200)}
	st := Stats(dates)
	if !st.Earliest.Equal(time.UnixMilli(100)) {
		t.Errorf("earliest = %v", st.Earliest)
	}
	if !st.Latest.Equal(time.UnixMilli(300)) {
		t.Errorf("latest = %v", st.Latest)
	}
	if st.Range != 200*time.Millisecond {
		t.Errorf("range = %v, want 200ms", st.Range)
	}
	if !st.Average.Equal(time.UnixMilli(200)) {
		t.Errorf("average = %v", st.Average)
	}
}

func TestStats_MedianParity(t *testing.T) {
	odd := Stats([]extract.DateValue{at(100), at(300), at(200)})
	if !odd.Median.Equal(time.UnixMilli(200)) {
		t.Errorf("odd median = %v, want 200ms epoch", odd.Median)
	}

	even := Stats([]extract.DateValue{at(100), at(200), at(300), at(400)})
	if !even.Median.Equal(time.UnixMilli(250)) {
		t.Errorf("even median = %v, want 250ms epoch", even.Median)
	}
}

func TestStats_UniqueByInstant(t *testing.T) {
	// Two different renderings of the same instant count once.
	a := at(1703508600000)
	b := a
	b.Value = "1703508600"
	b.Format = extract.FormatUnix

	st := Stats([]extract.DateValue{a, b, at(1703508700000)})
	if st.Total != 3 {
		t.Errorf("total = %d, want 3", st.Total)
	}
	if st.Unique != 2 {
		t.Errorf("unique = %d, want 2", st.Unique)
	}
	if st.Duplicates != 1 {
		t.Errorf("duplicates = %d, want 1", st.Duplicates)
	}
}

func TestStats_Histograms(t *testing.T) {
	ts := time.Date(2023, time.December, 25, 10, 30, 0, 0, time.Local)
	d := extract.DateValue{Value: "x", Format: extract.FormatISO, TS: ts, Valid: true}
	st := Stats([]extract.DateValue{d})

	if st.ByYear[2023] != 1 {
		t.Errorf("year histogram = %v", st.ByYear)
	}
	if st.ByMonth[time.December] != 1 {
		t.Errorf("month histogram = %v", st.ByMonth)
	}
	if st.ByWeekday[time.Monday] != 1 {
		t.Errorf("weekday histogram = %v", st.ByWeekday)
	}
	if st.ByHour[10] != 1 {
		t.Errorf("hour histogram = %v", st.ByHour)
	}

	_, wantOffset := ts.Zone()
	if st.ByOffset[wantOffset/60] != 1 {
		t.Errorf("offset histogram = %v, want key %d", st.ByOffset, wantOffset/60)
	}
}
