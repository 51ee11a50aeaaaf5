package analyze

import (
	"fmt"
	"math"
	"time"

	"github.com/tibcsoo96/dates-le/internal/extract"
)

// patternMinDates gates pattern detection; fewer points cannot establish a
// regularity.
const patternMinDates = 3

// seasonalThreshold is the fraction of the set a single month must hold to
// count as seasonal concentration.
const seasonalThreshold = 0.3

// trendThreshold is the minimum normalized slope for a reported trend.
const trendThreshold = 0.1

// Patterns infers regularities from a date sequence: a recurring interval, a
// seasonal month concentration, and a linear trend. At most one pattern per
// category is returned.
//
// The frequency detector operates on the sequence in the order given; it
// does not sort first. Callers wanting chronological intervals must sort
// beforehand.
func Patterns(dates []extract.DateValue) []Pattern {
	var valid []extract.DateValue
	for _, d := range dates {
		if d.Valid {
			valid = append(valid, d)
		}
	}
	if len(valid) < patternMinDates {
		return nil
	}

	var out []Pattern
	if p, ok := detectFrequency(valid); ok {
		out = append(out, p)
	}
	if p, ok := detectSeasonal(valid); ok {
		out = append(out, p)
	}
	if p, ok := detectTrend(valid); ok {
		out = append(out, p)
	}
	return out
}

// detectFrequency groups consecutive deltas within 10% relative tolerance of
// a group's representative and reports the largest group of at least two.
func detectFrequency(valid []extract.DateValue) (Pattern, bool) {
	type group struct {
		rep   int64 // representative interval, ms
		count int
	}

	var groups []group
	total := len(valid) - 1
	for i := 1; i < len(valid); i++ {
		delta := valid[i].EpochMillis() - valid[i-1].EpochMillis()
		placed := false
		for gi := range groups {
			if withinTolerance(delta, groups[gi].rep, 0.10) {
				groups[gi].count++
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, group{rep: delta, count: 1})
		}
	}

	best := -1
	for gi, g := range groups {
		if g.count >= 2 && (best < 0 || g.count > groups[best].count) {
			best = gi
		}
	}
	if best < 0 {
		return Pattern{}, false
	}

	interval := time.Duration(groups[best].rep) * time.Millisecond
	return Pattern{
		Type:        PatternFrequency,
		Confidence:  float64(groups[best].count) / float64(total),
		Description: fmt.Sprintf("dates recur roughly every %s", humanizeDuration(interval)),
		Examples:    exampleValues(valid, 3),
	}, true
}

func withinTolerance(a, b int64, tol float64) bool {
	return math.Abs(float64(a-b)) <= tol*math.Abs(float64(b))
}

// detectSeasonal reports the most loaded calendar month when it holds more
// than the seasonal threshold of the whole set. Months use the local-time
// interpretation of each instant, the same keying the stats histograms use.
func detectSeasonal(valid []extract.DateValue) (Pattern, bool) {
	byMonth := make(map[time.Month]int)
	for _, d := range valid {
		byMonth[d.TS.Local().Month()]++
	}

	var best time.Month
	for m := time.January; m <= time.December; m++ {
		if byMonth[m] > byMonth[best] {
			best = m
		}
	}
	fraction := float64(byMonth[best]) / float64(len(valid))
	if fraction <= seasonalThreshold {
		return Pattern{}, false
	}

	var examples []string
	for _, d := range valid {
		if d.TS.Local().Month() == best && len(examples) < 3 {
			examples = append(examples, d.Value)
		}
	}
	return Pattern{
		Type:        PatternSeasonal,
		Confidence:  fraction,
		Description: fmt.Sprintf("%.0f%% of dates fall in %s", fraction*100, best),
		Examples:    examples,
	}, true
}

// detectTrend fits a least-squares line of epoch against sequence index and
// reports the direction when the slope, normalized by the mean epoch,
// clears the trend threshold. Confidence is capped at 1.
func detectTrend(valid []extract.DateValue) (Pattern, bool) {
	n := float64(len(valid))
	var sumX, sumY, sumXY, sumXX float64
	for i, d := range valid {
		x := float64(i)
		y := float64(d.EpochMillis())
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return Pattern{}, false
	}
	slope := (n*sumXY - sumX*sumY) / denom
	meanY := sumY / n
	if meanY == 0 {
		return Pattern{}, false
	}

	confidence := math.Abs(slope) / math.Abs(meanY)
	if confidence <= trendThreshold {
		return Pattern{}, false
	}
	confidence = math.Min(confidence, 1.0)

	direction := "increasing"
	if slope < 0 {
		direction = "decreasing"
	}
	return Pattern{
		Type:        PatternTrend,
		Confidence:  confidence,
		Description: fmt.Sprintf("timestamps are steadily %s across the sequence", direction),
		Examples:    []string{valid[0].Value, valid[len(valid)-1].Value},
	}, true
}

func exampleValues(dates []extract.DateValue, n int) []string {
	if len(dates) < n {
		n = len(dates)
	}
	out := make([]string, 0, n)
	for _, d := range dates[:n] {
		out = append(out, d.Value)
	}
	return out
}

// humanizeDuration renders an interval in its most natural unit.
func humanizeDuration(d time.Duration) string {
	switch {
	case d >= 365*24*time.Hour:
		return fmt.Sprintf("%.1f years", d.Hours()/(365*24))
	case d >= 7*24*time.Hour:
		return fmt.Sprintf("%.1f weeks", d.Hours()/(7*24))
	case d >= 24*time.Hour:
		return fmt.Sprintf("%.1f days", d.Hours()/24)
	case d >= time.Hour:
		return fmt.Sprintf("%.1f hours", d.Hours())
	case d >= time.Minute:
		return fmt.Sprintf("%.1f minutes", d.Minutes())
	}
	return d.String()
}
