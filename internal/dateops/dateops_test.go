package dateops

import (
	"testing"
	"time"

	"github.com/tibcsoo96/dates-le/internal/extract"
)

func valid(value string, ts time.Time) extract.DateValue {
	return extract.DateValue{Value: value, Format: extract.FormatISO, TS: ts, Valid: true}
}

func invalid(value string) extract.DateValue {
	return extract.DateValue{Value: value, Format: extract.FormatCustom}
}

func values(dates []extract.DateValue) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Value)
	}
	return out
}

func assertValues(t *testing.T, got []extract.DateValue, want ...string) {
	t.Helper()
	gv := values(got)
	if len(gv) != len(want) {
		t.Fatalf("got %v, want %v", gv, want)
	}
	for i := range want {
		if gv[i] != want[i] {
			t.Fatalf("got %v, want %v", gv, want)
		}
	}
}

func TestSortByTime(t *testing.T) {
	t1 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	t3 := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	in := []extract.DateValue{valid("b", t2), invalid("x"), valid("c", t3), valid("a", t1)}

	assertValues(t, SortByTime(in, false), "a", "b", "c", "x")
	assertValues(t, SortByTime(in, true), "c", "b", "a", "x")
	// Input untouched.
	assertValues(t, in, "b", "x", "c", "a")
}

func TestSortByTime_StableForEqualInstants(t *testing.T) {
	ts := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	in := []extract.DateValue{valid("first", ts), valid("second", ts)}
	assertValues(t, SortByTime(in, false), "first", "second")
	assertValues(t, SortByTime(in, true), "first", "second")
}

func TestFilterRange(t *testing.T) {
	t1 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	t3 := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	in := []extract.DateValue{valid("a", t1), valid("b", t2), valid("c", t3), invalid("x")}

	tests := []struct {
		name     string
		from, to time.Time
		want     []string
	}{
		{"both open", time.Time{}, time.Time{}, []string{"a", "b", "c"}},
		{"from only", t2, time.Time{}, []string{"b", "c"}},
		{"to only", time.Time{}, t2, []string{"a", "b"}},
		{"bounds inclusive", t2, t2, []string{"b"}},
		{"empty window", t3.Add(time.Hour), time.Time{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValues(t, FilterRange(in, tt.from, tt.to), tt.want...)
		})
	}
}

func TestFilterFormat(t *testing.T) {
	iso := valid("a", time.Now())
	simple := valid("b", time.Now())
	simple.Format = extract.FormatSimple
	unix := valid("c", time.Now())
	unix.Format = extract.FormatUnix
	in := []extract.DateValue{iso, simple, unix}

	assertValues(t, FilterFormat(in, extract.FormatISO), "a")
	assertValues(t, FilterFormat(in, extract.FormatSimple, extract.FormatUnix), "b", "c")
	assertValues(t, FilterFormat(in))
}

func TestUniqueByValue(t *testing.T) {
	t1 := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	a1 := valid("2023-01-01", t1)
	a1.Line = 1
	a2 := valid("2023-01-01", t1)
	a2.Line = 7
	b := valid("2023-06-01", t1.AddDate(0, 5, 0))

	got := UniqueByValue([]extract.DateValue{a1, b, a2})
	assertValues(t, got, "2023-01-01", "2023-06-01")
	if got[0].Line != 1 {
		t.Errorf("kept line %d, want the first occurrence", got[0].Line)
	}
}
