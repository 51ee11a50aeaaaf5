// Package extract recognizes date-like tokens in raw document text.
//
// The entry point is Scan, which routes a document and a format hint to the
// right scanner, resolves overlapping matches, and deduplicates the result.
// Everything in this package is a pure function of its input: scanners hold
// no state between calls and are safe for concurrent use.
package extract

import "time"

// Format classifies which pattern recognized a date occurrence.
type Format string

const (
	FormatISO     Format = "iso"
	FormatRFC2822 Format = "rfc2822"
	FormatUnix    Format = "unix"
	FormatUTC     Format = "utc"
	FormatLocal   Format = "local"
	FormatSimple  Format = "simple"
	FormatCustom  Format = "custom"
	FormatUnknown Format = "unknown"
)

// DateValue is a single recognized date occurrence. It is created once by a
// scanner and never mutated afterwards.
//
// Valid=false means the raw value was matched but could not be parsed into
// an instant. Downstream consumers must treat that as "invalid", not
// "missing": the entry still counts, it just has no usable timestamp.
type DateValue struct {
	// Value is the exact matched substring, preserved verbatim.
	// Invariant: never empty.
	Value  string `json:"value" msgpack:"value"`
	Format Format `json:"format" msgpack:"format"`

	// TS is the best-effort parse of Value; only meaningful when Valid.
	TS    time.Time `json:"ts" msgpack:"ts"`
	Valid bool      `json:"valid" msgpack:"valid"`

	// Line and Column are 1-based; 0 means unknown.
	Line   int `json:"line,omitempty" msgpack:"line"`
	Column int `json:"column,omitempty" msgpack:"column"`

	// Context is the trimmed source line the match was found on.
	Context string `json:"context,omitempty" msgpack:"context"`
}

// EpochMillis returns the instant as milliseconds since the Unix epoch.
// Only meaningful when Valid.
func (d DateValue) EpochMillis() int64 {
	return d.TS.UnixMilli()
}

// Error categories, severities, and recovery actions for scan failures.
// Scanning has a single failure mode: something threw mid-scan, the whole
// document is skipped, and the caller decides what to do with that.
const (
	CategoryParsing = "parsing"

	SeverityWarning = "warning"

	RecoverySkip = "skip"
)

// ScanError is a structured scan failure record.
type ScanError struct {
	Category    string    `json:"category"`
	Severity    string    `json:"severity"`
	Message     string    `json:"message"`
	Recoverable bool      `json:"recoverable"`
	Recovery    string    `json:"recovery"`
	TS          time.Time `json:"ts"`
}

// Result is the outcome of one document scan.
//
// Invariant: Success=false implies no dates and at least one error;
// Success=true implies no errors. Zero dates found is a valid success.
type Result struct {
	Success bool        `json:"success"`
	Dates   []DateValue `json:"dates"`
	Errors  []ScanError `json:"errors,omitempty"`
}
