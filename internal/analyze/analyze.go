package analyze

import (
	"time"

	"github.com/tibcsoo96/dates-le/internal/extract"
)

// Options tunes an analysis call. Zero values select the defaults the
// individual detectors document.
type Options struct {
	Now               time.Time     // reference time for future-date detection
	ClusterWindow     time.Duration // proximity window for clustering
	GapThreshold      time.Duration // minimum silence reported as a gap
	OutlierMultiplier float64       // IQR fence multiplier
}

func (o Options) withDefaults() Options {
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	if o.ClusterWindow <= 0 {
		o.ClusterWindow = DefaultClusterWindow
	}
	if o.GapThreshold <= 0 {
		o.GapThreshold = DefaultGapThreshold
	}
	if o.OutlierMultiplier <= 0 {
		o.OutlierMultiplier = defaultOutlierMultiplier
	}
	return o
}

// Analyze bundles the five sub-reports over one date set.
func Analyze(dates []extract.DateValue, opts Options) Analysis {
	opts = opts.withDefaults()
	return Analysis{
		Stats:     Stats(dates),
		Anomalies: anomalies(dates, opts.Now, opts.OutlierMultiplier),
		Patterns:  Patterns(dates),
		Clusters:  ClustersWithin(dates, opts.ClusterWindow),
		Gaps:      GapsOver(dates, opts.GapThreshold),
	}
}
