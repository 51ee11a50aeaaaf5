// Package convert renders recognized dates into other date formats.
package convert

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/tibcsoo96/dates-le/internal/extract"
)

var (
	// ErrInvalidDate means the entry has no parseable instant to render.
	ErrInvalidDate = errors.New("convert: date has no valid timestamp")
	// ErrUnsupportedTarget means the target format has no canonical rendering.
	ErrUnsupportedTarget = errors.New("convert: unsupported target format")
)

// Render formats the instant of a valid DateValue in the target format.
// unix renders as seconds since the epoch.
func Render(d extract.DateValue, target extract.Format) (string, error) {
	if !d.Valid {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, d.Value)
	}
	switch target {
	case extract.FormatISO:
		return d.TS.UTC().Format(time.RFC3339), nil
	case extract.FormatRFC2822:
		return d.TS.UTC().Format("Mon, 02 Jan 2006 15:04:05 GMT"), nil
	case extract.FormatUnix:
		return strconv.FormatInt(d.TS.Unix(), 10), nil
	case extract.FormatUTC:
		return d.TS.UTC().Format("Mon Jan 02 2006 15:04:05 GMT-0700"), nil
	case extract.FormatLocal:
		return d.TS.Local().Format("1/2/2006 15:04:05"), nil
	case extract.FormatSimple:
		return d.TS.UTC().Format("2006-01-02"), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedTarget, target)
}

// Conversion is the per-entry outcome of a bulk conversion. Invalid dates
// are reported, not silently dropped.
type Conversion struct {
	Input  extract.DateValue `json:"input"`
	Output string            `json:"output,omitempty"`
	Err    string            `json:"error,omitempty"`
}

// All renders every entry into the target format.
func All(dates []extract.DateValue, target extract.Format) []Conversion {
	out := make([]Conversion, 0, len(dates))
	for _, d := range dates {
		c := Conversion{Input: d}
		if s, err := Render(d, target); err != nil {
			c.Err = err.Error()
		} else {
			c.Output = s
		}
		out = append(out, c)
	}
	return out
}
