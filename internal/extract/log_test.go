package extract

import (
	"testing"
	"time"
)

// findValue returns the first entry with the given value, or fails the test.
func findValue(t *testing.T, dates []DateValue, value string) DateValue {
	t.Helper()
	for _, d := range dates {
		if d.Value == value {
			return d
		}
	}
	t.Fatalf("no entry with value %q in %+v", value, dates)
	return DateValue{}
}

func TestScanLog_Timestamp(t *testing.T) {
	got := scanLog("2024-01-15 10:30:45 INFO server started")
	// The date portion also matches the generic simple shape; the full
	// timestamp comes from the log probe.
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(got), got)
	}
	d := findValue(t, got, "2024-01-15 10:30:45")
	if d.Format != FormatCustom {
		t.Errorf("format = %s, want custom", d.Format)
	}
	if !d.Valid {
		t.Fatalf("expected a parseable timestamp")
	}
	want := time.Date(2024, 1, 15, 10, 30, 45, 0, time.Local)
	if !d.TS.Equal(want) {
		t.Errorf("instant = %v, want %v", d.TS, want)
	}
	if s := findValue(t, got, "2024-01-15"); s.Format != FormatSimple {
		t.Errorf("date portion format = %s, want simple", s.Format)
	}
}

func TestScanLog_FractionalSeconds(t *testing.T) {
	got := scanLog("2024-01-15 10:30:45.123 DEBUG tick")
	d := findValue(t, got, "2024-01-15 10:30:45.123")
	if !d.Valid {
		t.Errorf("expected a parseable timestamp")
	}
	if d.TS.Nanosecond() != 123_000_000 {
		t.Errorf("nanoseconds = %d, want 123ms", d.TS.Nanosecond())
	}
}

func TestScanLog_Syslog(t *testing.T) {
	got := scanLog("Jan 15 10:30:45 myhost sshd[123]: session opened")
	if len(got) != 1 {
		t.Fatalf("got %d matches, want 1: %+v", len(got), got)
	}
	d := got[0]
	if d.Value != "Jan 15 10:30:45" {
		t.Errorf("value = %q", d.Value)
	}
	if !d.Valid {
		t.Fatalf("expected a parseable timestamp")
	}
	if d.TS.Month() != time.January || d.TS.Day() != 15 {
		t.Errorf("instant = %v, want Jan 15", d.TS)
	}
	if d.TS.After(time.Now().Add(24 * time.Hour)) {
		t.Errorf("inferred year puts %v more than a day in the future", d.TS)
	}
}

func TestScanLog_SyslogSingleDigitDay(t *testing.T) {
	got := scanLog("Feb  5 03:22:11 host cron[9]: job done")
	if len(got) != 1 {
		t.Fatalf("got %d matches, want 1: %+v", len(got), got)
	}
	if got[0].Value != "Feb  5 03:22:11" {
		t.Errorf("value = %q", got[0].Value)
	}
	if !got[0].Valid {
		t.Errorf("expected a parseable timestamp")
	}
}

func TestScanLog_Apache(t *testing.T) {
	got := scanLog(`127.0.0.1 - - [15/Jan/2024:10:30:45 +0000] "GET / HTTP/1.1" 200`)
	if len(got) != 1 {
		t.Fatalf("got %d matches, want 1: %+v", len(got), got)
	}
	d := got[0]
	if d.Value != "15/Jan/2024:10:30:45 +0000" {
		t.Errorf("value = %q", d.Value)
	}
	if !d.Valid {
		t.Fatalf("expected a parseable timestamp")
	}
	want := time.Date(2024, 1, 15, 10, 30, 45, 0, time.UTC)
	if !d.TS.Equal(want) {
		t.Errorf("instant = %v, want %v", d.TS, want)
	}
}

func TestScanLog_GenericShapesStillApply(t *testing.T) {
	got := scanLog("retry at 1703508600 after failure")
	if len(got) != 1 {
		t.Fatalf("got %d matches, want 1: %+v", len(got), got)
	}
	if got[0].Format != FormatUnix {
		t.Errorf("format = %s, want unix", got[0].Format)
	}
}
