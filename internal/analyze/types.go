// Package analyze computes descriptive statistics, anomalies, regularity
// patterns, temporal clusters, and gaps over a recognized date set.
//
// Every function is pure: results are derived from scratch per call, never
// incrementally updated, and empty or all-invalid inputs yield zero-value
// reports rather than errors.
package analyze

import (
	"time"

	"github.com/tibcsoo96/dates-le/internal/extract"
)

// Statistics is the aggregate view over a date collection. Zero time values
// mean "absent" (no parseable dates).
type Statistics struct {
	Total      int `json:"total"`
	Unique     int `json:"unique"`     // distinct instants among valid entries
	Duplicates int `json:"duplicates"` // valid entries minus unique instants

	Earliest time.Time     `json:"earliest"`
	Latest   time.Time     `json:"latest"`
	Range    time.Duration `json:"range"`
	Average  time.Time     `json:"average"`
	Median   time.Time     `json:"median"`

	ByFormat  map[extract.Format]int `json:"by_format"`
	ByOffset  map[int]int            `json:"by_offset_minutes"` // local-interpretation UTC offset
	ByYear    map[int]int            `json:"by_year"`
	ByMonth   map[time.Month]int     `json:"by_month"`
	ByWeekday map[time.Weekday]int   `json:"by_weekday"`
	ByHour    map[int]int            `json:"by_hour"`
}

// AnomalyType identifies the kind of flagged issue.
type AnomalyType string

const (
	AnomalyFuture             AnomalyType = "future"
	AnomalyInvalid            AnomalyType = "invalid"
	AnomalyOutlier            AnomalyType = "outlier"
	AnomalyDuplicate          AnomalyType = "duplicate"
	AnomalyFormatInconsistent AnomalyType = "format-inconsistent"
)

// Severity grades an anomaly.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Anomaly is one flagged issue. An entry can receive multiple anomaly flags
// across the independent detection passes.
type Anomaly struct {
	Type        AnomalyType `json:"type"`
	Severity    Severity    `json:"severity"`
	Value       string      `json:"value"`
	Description string      `json:"description"`
	Suggestion  string      `json:"suggestion,omitempty"`
}

// PatternType identifies the kind of detected regularity.
type PatternType string

const (
	PatternFrequency PatternType = "frequency"
	PatternInterval  PatternType = "interval"
	PatternSeasonal  PatternType = "seasonal"
	PatternTrend     PatternType = "trend"
)

// Pattern is one detected regularity with up to 3 example raw values.
type Pattern struct {
	Type        PatternType `json:"type"`
	Confidence  float64     `json:"confidence"` // in [0, 1]
	Description string      `json:"description"`
	Examples    []string    `json:"examples,omitempty"`
}

// Cluster is a temporal grouping of dates.
type Cluster struct {
	Center      time.Time           `json:"center"`  // mean instant of members
	Dates       []extract.DateValue `json:"dates"`
	Density     float64             `json:"density"` // members per hour within the window
	Description string              `json:"description"`
}

// Gap is a detected silence between consecutive dates.
type Gap struct {
	Start       time.Time     `json:"start"`
	End         time.Time     `json:"end"`
	Duration    time.Duration `json:"duration"`
	Description string        `json:"description"`
}

// Analysis bundles the five sub-reports of one analysis call.
type Analysis struct {
	Stats     Statistics `json:"stats"`
	Anomalies []Anomaly  `json:"anomalies,omitempty"`
	Patterns  []Pattern  `json:"patterns,omitempty"`
	Clusters  []Cluster  `json:"clusters,omitempty"`
	Gaps      []Gap      `json:"gaps,omitempty"`
}
