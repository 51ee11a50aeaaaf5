package rules

import (
	"testing"
	"time"

	"github.com/tibcsoo96/dates-le/internal/extract"
)

func valid(value string, ts time.Time) extract.DateValue {
	return extract.DateValue{Value: value, Format: extract.FormatISO, TS: ts, Valid: true}
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec    string
		want    Rule
		wantErr bool
	}{
		{"not-future", Rule{Kind: KindNotFuture}, false},
		{"parseable", Rule{Kind: KindParseable}, false},
		{"require-zone", Rule{Kind: KindRequireZone}, false},
		{"same-format", Rule{Kind: KindSameFormat}, false},
		{"not-before=2000", Rule{Kind: KindNotBefore, Year: 2000}, false},
		{"not-after=2030", Rule{Kind: KindNotAfter, Year: 2030}, false},
		{"not-before = 1990", Rule{Kind: KindNotBefore, Year: 1990}, false},
		{"not-before", Rule{}, true},
		{"not-before=soon", Rule{}, true},
		{"not-future=1", Rule{}, true},
		{"frobnicate", Rule{}, true},
		{"", Rule{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	past := valid("2023-06-01T00:00:00Z", time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC))
	future := valid("2025-01-01T00:00:00Z", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	ancient := valid("1990-01-01T00:00:00Z", time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC))
	junk := extract.DateValue{Value: "junk", Format: extract.FormatCustom}

	tests := []struct {
		name  string
		dates []extract.DateValue
		rules []Rule
		want  []string // violated values, in order
	}{
		{
			name:  "not-future",
			dates: []extract.DateValue{past, future},
			rules: []Rule{{Kind: KindNotFuture}},
			want:  []string{future.Value},
		},
		{
			name:  "not-before",
			dates: []extract.DateValue{ancient, past},
			rules: []Rule{{Kind: KindNotBefore, Year: 2000}},
			want:  []string{ancient.Value},
		},
		{
			name:  "not-after",
			dates: []extract.DateValue{past, future},
			rules: []Rule{{Kind: KindNotAfter, Year: 2024}},
			want:  []string{future.Value},
		},
		{
			name:  "parseable",
			dates: []extract.DateValue{past, junk},
			rules: []Rule{{Kind: KindParseable}},
			want:  []string{"junk"},
		},
		{
			name:  "invalid entries skip time rules",
			dates: []extract.DateValue{junk},
			rules: []Rule{{Kind: KindNotFuture}, {Kind: KindNotBefore, Year: 2000}},
			want:  nil,
		},
		{
			name:  "multiple rules accumulate",
			dates: []extract.DateValue{future, junk},
			rules: []Rule{{Kind: KindNotFuture}, {Kind: KindParseable}},
			want:  []string{future.Value, "junk"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.dates, tt.rules, now)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d violations, want %d: %+v", len(got), len(tt.want), got)
			}
			for i, v := range got {
				if v.Value != tt.want[i] {
					t.Errorf("violation %d = %q, want %q", i, v.Value, tt.want[i])
				}
			}
		})
	}
}

func TestEvaluate_RequireZone(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"2023-12-25T10:30:00Z", true},
		{"2023-12-25T10:30:00+01:00", true},
		{"Mon, 25 Dec 2023 10:30:00 GMT", true},
		{"Mon Dec 25 2023 10:30:00 GMT+0000", true},
		{"2023-12-25", false},
		{"12/25/2023 10:30:00", false},
	}

	now := time.Now()
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			d := valid(tt.value, now)
			got := Evaluate([]extract.DateValue{d}, []Rule{{Kind: KindRequireZone}}, now)
			if tt.ok && len(got) != 0 {
				t.Errorf("%q flagged despite explicit zone: %+v", tt.value, got)
			}
			if !tt.ok && len(got) != 1 {
				t.Errorf("%q not flagged", tt.value)
			}
		})
	}
}

func TestEvaluate_SameFormat(t *testing.T) {
	now := time.Now()
	isoA := valid("2023-01-01T00:00:00Z", now)
	isoB := valid("2023-02-01T00:00:00Z", now)
	simple := valid("2023-03-01", now)
	simple.Format = extract.FormatSimple

	got := Evaluate([]extract.DateValue{isoA, isoB, simple}, []Rule{{Kind: KindSameFormat}}, now)
	if len(got) != 1 {
		t.Fatalf("got %d violations, want 1: %+v", len(got), got)
	}
	if got[0].Value != simple.Value {
		t.Errorf("flagged %q, want the minority entry", got[0].Value)
	}

	// Uniform sets pass.
	got = Evaluate([]extract.DateValue{isoA, isoB}, []Rule{{Kind: KindSameFormat}}, now)
	if len(got) != 0 {
		t.Errorf("uniform set flagged: %+v", got)
	}
}
