package extract

import (
	"testing"
	"time"
)

func TestScanLine_GenericShapes(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		wantValue  string
		wantFormat Format
	}{
		{"iso with zone", `created: 2023-12-25T10:30:00Z`, "2023-12-25T10:30:00Z", FormatISO},
		{"iso with offset", `ts=2023-12-25T10:30:00+01:00`, "2023-12-25T10:30:00+01:00", FormatISO},
		{"iso fractional", `2023-12-25T10:30:00.123Z ok`, "2023-12-25T10:30:00.123Z", FormatISO},
		{"rfc2822", `Date: Mon, 25 Dec 2023 10:30:00 GMT`, "Mon, 25 Dec 2023 10:30:00 GMT", FormatRFC2822},
		{"rfc2822 numeric zone", `Mon, 25 Dec 2023 10:30:00 +0100`, "Mon, 25 Dec 2023 10:30:00 +0100", FormatRFC2822},
		{"unix seconds", `epoch 1703508600 end`, "1703508600", FormatUnix},
		{"unix millis", `epoch 1703508600000 end`, "1703508600000", FormatUnix},
		{"utc string", `Mon Dec 25 2023 10:30:00 GMT+0000`, "Mon Dec 25 2023 10:30:00 GMT+0000", FormatUTC},
		{"local", `at 12/25/2023 10:30:00 sharp`, "12/25/2023 10:30:00", FormatLocal},
		{"simple", `due 2023-12-25 maybe`, "2023-12-25", FormatSimple},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanLine(tt.line, 1)
			if len(got) != 1 {
				t.Fatalf("got %d matches, want 1: %+v", len(got), got)
			}
			if got[0].Value != tt.wantValue {
				t.Errorf("value = %q, want %q", got[0].Value, tt.wantValue)
			}
			if got[0].Format != tt.wantFormat {
				t.Errorf("format = %s, want %s", got[0].Format, tt.wantFormat)
			}
			if !got[0].Valid {
				t.Errorf("expected a parseable timestamp")
			}
		})
	}
}

func TestScanLine_NoMatch(t *testing.T) {
	for _, line := range []string{
		"",
		"no dates here",
		"version 1.2.3 build 456",
	} {
		if got := scanLine(line, 1); len(got) != 0 {
			t.Errorf("scanLine(%q) = %+v, want none", line, got)
		}
	}
}

func TestScanLine_UnixBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		wantMS int64 // 0 = rejected
	}{
		{"9 digits rejected", "id 999999999 x", 0},
		{"14 digits rejected", "id 10000000000000 x", 0},
		{"10 digit seconds", "ts 1703508600 x", 1703508600000},
		{"13 digit millis", "ts 1703508600000 x", 1703508600000},
		{"11 digits rejected", "ts 17035086000 x", 0},
		{"low 10 digit rejected", "ts 1000000000 x", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanLine(tt.line, 1)
			if tt.wantMS == 0 {
				if len(got) != 0 {
					t.Fatalf("got %+v, want rejection", got)
				}
				return
			}
			if len(got) != 1 {
				t.Fatalf("got %d matches, want 1", len(got))
			}
			if got[0].Format != FormatUnix {
				t.Errorf("format = %s, want unix", got[0].Format)
			}
			if ms := got[0].EpochMillis(); ms != tt.wantMS {
				t.Errorf("stored millis = %d, want %d", ms, tt.wantMS)
			}
		})
	}
}

func TestScanLine_ParsedInstants(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string // RFC 3339 of expected instant
	}{
		{"iso", "2023-12-25T10:30:00Z", "2023-12-25T10:30:00Z"},
		{"rfc2822", "Mon, 25 Dec 2023 10:30:00 GMT", "2023-12-25T10:30:00Z"},
		{"unix seconds", "1703500200", "2023-12-25T10:30:00Z"},
		{"utc", "Mon Dec 25 2023 10:30:00 GMT+0000", "2023-12-25T10:30:00Z"},
		{"simple is utc midnight", "2023-12-25", "2023-12-25T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scanLine(tt.line, 1)
			if len(got) != 1 {
				t.Fatalf("got %d matches, want 1: %+v", len(got), got)
			}
			want, err := time.Parse(time.RFC3339, tt.want)
			if err != nil {
				t.Fatalf("bad test want: %v", err)
			}
			if !got[0].TS.Equal(want) {
				t.Errorf("instant = %v, want %v", got[0].TS, want)
			}
		})
	}
}

func TestClassifyValue(t *testing.T) {
	tests := []struct {
		value      string
		wantFormat Format
		wantValid  bool
	}{
		{"2023-12-25T10:30:00Z", FormatISO, true},
		{"Mon, 25 Dec 2023 10:30:00 GMT", FormatRFC2822, true},
		{"1703508600", FormatUnix, true},
		{"Mon Dec 25 2023 10:30:00 GMT+0000", FormatUTC, true},
		{"12/25/2023 10:30:00", FormatLocal, true},
		{"2023-12-25", FormatSimple, true},
		{"2023-12-25 10:30:00", FormatCustom, true},
		{"December 25, 2023", FormatCustom, true},
		{"not a date", FormatCustom, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			format, _, valid := classifyValue(tt.value)
			if format != tt.wantFormat {
				t.Errorf("format = %s, want %s", format, tt.wantFormat)
			}
			if valid != tt.wantValid {
				t.Errorf("valid = %v, want %v", valid, tt.wantValid)
			}
		})
	}
}
