package analyze

import (
	"fmt"
	"slices"
	"time"

	"github.com/tibcsoo96/dates-le/internal/extract"
)

// DefaultClusterWindow is the proximity window for temporal clustering.
const DefaultClusterWindow = 24 * time.Hour

// DefaultGapThreshold is the minimum silence between consecutive dates that
// counts as a gap.
const DefaultGapThreshold = 7 * 24 * time.Hour

// Clusters groups temporally close dates using the default 24-hour window.
//
// The grouping is a greedy single pass in input order: each unprocessed date
// seeds a cluster and absorbs every other unprocessed date within the window
// of the seed. The output therefore depends on input order: two dates 23
// hours apart can land in different clusters when a third date's processing
// order splits them. This is deliberate; connected-components clustering
// would report different groupings for the same data.
func Clusters(dates []extract.DateValue) []Cluster {
	return ClustersWithin(dates, DefaultClusterWindow)
}

// ClustersWithin is Clusters with an explicit proximity window.
func ClustersWithin(dates []extract.DateValue, window time.Duration) []Cluster {
	var valid []extract.DateValue
	for _, d := range dates {
		if d.Valid {
			valid = append(valid, d)
		}
	}

	windowMs := window.Milliseconds()
	processed := make([]bool, len(valid))
	var out []Cluster

	for i := range valid {
		if processed[i] {
			continue
		}
		processed[i] = true
		members := []extract.DateValue{valid[i]}
		seed := valid[i].EpochMillis()

		for j := range valid {
			if processed[j] {
				continue
			}
			if abs64(valid[j].EpochMillis()-seed) <= windowMs {
				processed[j] = true
				members = append(members, valid[j])
			}
		}

		if len(members) < 2 {
			continue
		}

		var sum int64
		for _, m := range members {
			sum += m.EpochMillis()
		}
		center := time.UnixMilli(sum / int64(len(members)))
		density := float64(len(members)) / window.Hours()
		out = append(out, Cluster{
			Center:      center,
			Dates:       members,
			Density:     density,
			Description: fmt.Sprintf("%d dates around %s", len(members), center.Format(time.RFC3339)),
		})
	}
	return out
}

// Gaps reports silences longer than the default 7-day threshold between
// chronologically consecutive dates.
func Gaps(dates []extract.DateValue) []Gap {
	return GapsOver(dates, DefaultGapThreshold)
}

// GapsOver is Gaps with an explicit minimum duration.
func GapsOver(dates []extract.DateValue, min time.Duration) []Gap {
	var epochs []int64
	for _, d := range dates {
		if d.Valid {
			epochs = append(epochs, d.EpochMillis())
		}
	}
	slices.Sort(epochs)

	var out []Gap
	for i := 1; i < len(epochs); i++ {
		delta := time.Duration(epochs[i]-epochs[i-1]) * time.Millisecond
		if delta <= min {
			continue
		}
		start := time.UnixMilli(epochs[i-1])
		end := time.UnixMilli(epochs[i])
		out = append(out, Gap{
			Start:       start,
			End:         end,
			Duration:    delta,
			Description: fmt.Sprintf("no dates for %s between %s and %s", humanizeDuration(delta), start.Format(time.RFC3339), end.Format(time.RFC3339)),
		})
	}
	return out
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
