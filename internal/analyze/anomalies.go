package analyze

import (
	"fmt"
	"slices"
	"time"

	"github.com/tibcsoo96/dates-le/internal/extract"
)

// defaultOutlierMultiplier is the IQR fence multiplier.
const defaultOutlierMultiplier = 1.5

// outlierMinDates gates outlier detection: quartiles over fewer points are
// meaningless, so the pass only runs with at least this many valid dates.
const outlierMinDates = 5

// Anomalies flags issues in a date set relative to the given reference time.
// Four independent passes append to the same list, so a single entry can be
// flagged more than once.
func Anomalies(dates []extract.DateValue, now time.Time) []Anomaly {
	return anomalies(dates, now, defaultOutlierMultiplier)
}

func anomalies(dates []extract.DateValue, now time.Time, outlierMult float64) []Anomaly {
	var out []Anomaly

	// Pass 1: future dates.
	for _, d := range dates {
		if d.Valid && d.TS.After(now) {
			out = append(out, Anomaly{
				Type:        AnomalyFuture,
				Severity:    SeverityMedium,
				Value:       d.Value,
				Description: fmt.Sprintf("%q is in the future", d.Value),
				Suggestion:  "verify the source is not mis-dated",
			})
		}
	}

	// Pass 2: unparseable entries.
	for _, d := range dates {
		if !d.Valid {
			out = append(out, Anomaly{
				Type:        AnomalyInvalid,
				Severity:    SeverityHigh,
				Value:       d.Value,
				Description: fmt.Sprintf("%q could not be parsed into a valid instant", d.Value),
				Suggestion:  "check the value against its declared format",
			})
		}
	}

	out = append(out, detectOutliers(dates, outlierMult)...)
	out = append(out, detectFormatInconsistent(dates)...)
	return out
}

// detectOutliers flags valid dates outside the IQR fences. Q1 and Q3 are
// taken at the floor(n*0.25) and floor(n*0.75) indexes of the sorted epochs.
func detectOutliers(dates []extract.DateValue, mult float64) []Anomaly {
	var epochs []int64
	for _, d := range dates {
		if d.Valid {
			epochs = append(epochs, d.EpochMillis())
		}
	}
	if len(epochs) < outlierMinDates {
		return nil
	}

	sorted := slices.Clone(epochs)
	slices.Sort(sorted)
	n := len(sorted)
	q1 := float64(sorted[n*25/100])
	q3 := float64(sorted[n*75/100])
	iqr := q3 - q1
	lo := q1 - mult*iqr
	hi := q3 + mult*iqr

	var out []Anomaly
	for _, d := range dates {
		if !d.Valid {
			continue
		}
		e := float64(d.EpochMillis())
		if e < lo || e > hi {
			out = append(out, Anomaly{
				Type:        AnomalyOutlier,
				Severity:    SeverityLow,
				Value:       d.Value,
				Description: fmt.Sprintf("%q is far outside the typical range of this set", d.Value),
			})
		}
	}
	return out
}

// detectFormatInconsistent flags every entry not matching the dominant
// format. Dominance is the largest format group; ties break toward the
// first-encountered group under a stable sort by descending size.
func detectFormatInconsistent(dates []extract.DateValue) []Anomaly {
	if len(dates) == 0 {
		return nil
	}

	type group struct {
		format extract.Format
		count  int
	}
	index := make(map[extract.Format]int)
	var groups []group
	for _, d := range dates {
		i, ok := index[d.Format]
		if !ok {
			i = len(groups)
			index[d.Format] = i
			groups = append(groups, group{format: d.Format})
		}
		groups[i].count++
	}
	if len(groups) < 2 {
		return nil
	}

	slices.SortStableFunc(groups, func(a, b group) int { return b.count - a.count })
	dominant := groups[0].format

	var out []Anomaly
	for _, d := range dates {
		if d.Format == dominant {
			continue
		}
		out = append(out, Anomaly{
			Type:        AnomalyFormatInconsistent,
			Severity:    SeverityLow,
			Value:       d.Value,
			Description: fmt.Sprintf("%q uses format %s while most of the set uses %s", d.Value, d.Format, dominant),
			Suggestion:  fmt.Sprintf("consider normalizing to %s", dominant),
		})
	}
	return out
}
