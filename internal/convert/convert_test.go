package convert

import (
	"errors"
	"testing"
	"time"

	"github.com/tibcsoo96/dates-le/internal/extract"
)

func sample() extract.DateValue {
	return extract.DateValue{
		Value:  "2023-12-25T10:30:00Z",
		Format: extract.FormatISO,
		TS:     time.Date(2023, 12, 25, 10, 30, 0, 0, time.UTC),
		Valid:  true,
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		target extract.Format
		want   string
	}{
		{extract.FormatISO, "2023-12-25T10:30:00Z"},
		{extract.FormatRFC2822, "Mon, 25 Dec 2023 10:30:00 GMT"},
		{extract.FormatUnix, "1703500200"},
		{extract.FormatUTC, "Mon Dec 25 2023 10:30:00 GMT+0000"},
		{extract.FormatSimple, "2023-12-25"},
	}

	for _, tt := range tests {
		t.Run(string(tt.target), func(t *testing.T) {
			got, err := Render(sample(), tt.target)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render(%s) = %q, want %q", tt.target, got, tt.want)
			}
		})
	}
}

func TestRender_RoundTripsThroughScan(t *testing.T) {
	// Every rendering must be recognized back as the target format.
	for _, target := range []extract.Format{
		extract.FormatISO,
		extract.FormatRFC2822,
		extract.FormatUnix,
		extract.FormatUTC,
		extract.FormatSimple,
	} {
		s, err := Render(sample(), target)
		if err != nil {
			t.Fatalf("Render(%s): %v", target, err)
		}
		res := extract.Scan(s, "log")
		found := false
		for _, d := range res.Dates {
			if d.Format == target && d.Valid {
				found = true
			}
		}
		if !found {
			t.Errorf("rendering %q for %s not recognized back", s, target)
		}
	}
}

func TestRender_InvalidDate(t *testing.T) {
	d := extract.DateValue{Value: "junk", Format: extract.FormatCustom}
	_, err := Render(d, extract.FormatISO)
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("err = %v, want ErrInvalidDate", err)
	}
}

func TestRender_UnsupportedTarget(t *testing.T) {
	for _, target := range []extract.Format{extract.FormatCustom, extract.FormatUnknown, extract.Format("bogus")} {
		if _, err := Render(sample(), target); !errors.Is(err, ErrUnsupportedTarget) {
			t.Errorf("Render(%s) err = %v, want ErrUnsupportedTarget", target, err)
		}
	}
}

func TestAll(t *testing.T) {
	dates := []extract.DateValue{
		sample(),
		{Value: "junk", Format: extract.FormatCustom},
	}
	got := All(dates, extract.FormatUnix)
	if len(got) != 2 {
		t.Fatalf("got %d conversions, want 2", len(got))
	}
	if got[0].Output != "1703500200" || got[0].Err != "" {
		t.Errorf("valid conversion = %+v", got[0])
	}
	if got[1].Output != "" || got[1].Err == "" {
		t.Errorf("invalid entry should carry an error: %+v", got[1])
	}
}
