package extract

import (
	"regexp"
	"strconv"
	"time"
)

// Pattern source strings are shared between the scanning regexes (unanchored,
// find-all within a line) and the anchored variants used to classify values
// that arrive from the specialized scanners.
//
// Go's regexp objects carry no match-position state and are safe for
// concurrent use, so package-level compiled patterns are shared freely.
const (
	isoSrc     = `\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d{1,9})?(?:Z|[+-]\d{2}:\d{2})?`
	rfc2822Src = `(?:Mon|Tue|Wed|Thu|Fri|Sat|Sun), \d{1,2} (?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) \d{4} \d{2}:\d{2}:\d{2} (?:[A-Z]{2,4}|[+-]\d{4})`
	unixSrc    = `\b\d{10,13}\b`
	utcSrc     = `(?:Mon|Tue|Wed|Thu|Fri|Sat|Sun) (?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) \d{2} \d{4} \d{2}:\d{2}:\d{2} GMT[+-]\d{4}`
	localSrc   = `\b\d{1,2}/\d{1,2}/\d{4} \d{1,2}:\d{2}:\d{2}\b`
	simpleSrc  = `\b\d{4}-\d{2}-\d{2}\b`
)

// pattern pairs a matcher with the format tag it assigns and the parser that
// turns a matched substring into an instant.
//
// accept, when set, vetoes a match entirely: the token is not emitted at all
// (used for the unix plausibility ranges). group selects a capture group as
// the value; 0 means the whole match.
type pattern struct {
	format Format
	re     *regexp.Regexp
	group  int
	accept func(string) bool
	parse  func(string) (time.Time, bool)
}

// genericPatterns is the fixed generic pattern set, applied in this order to
// every line. Patterns are independent, not mutually exclusive: one line may
// match several of them on different substrings.
var genericPatterns = []pattern{
	{format: FormatISO, re: regexp.MustCompile(isoSrc), parse: parseISO},
	{format: FormatRFC2822, re: regexp.MustCompile(rfc2822Src), parse: parseRFC2822},
	{format: FormatUnix, re: regexp.MustCompile(unixSrc), accept: acceptUnix, parse: parseUnix},
	{format: FormatUTC, re: regexp.MustCompile(utcSrc), parse: parseUTC},
	{format: FormatLocal, re: regexp.MustCompile(localSrc), parse: parseLocal},
	{format: FormatSimple, re: regexp.MustCompile(simpleSrc), parse: parseSimple},
}

// Anchored variants for whole-value classification of specialized matches.
var (
	isoFullRe     = regexp.MustCompile(`^(?:` + isoSrc + `)$`)
	rfc2822FullRe = regexp.MustCompile(`^(?:` + rfc2822Src + `)$`)
	unixFullRe    = regexp.MustCompile(`^\d{10,13}$`)
	utcFullRe     = regexp.MustCompile(`^(?:` + utcSrc + `)$`)
	localFullRe   = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4} \d{1,2}:\d{2}:\d{2}$`)
	simpleFullRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// parseISO parses RFC 3339 timestamps, tolerating a missing zone designator.
// A zoneless date-time is interpreted in local time, mirroring how the host
// platform's date parser treats it.
func parseISO(v string) (time.Time, bool) {
	if ts, err := time.Parse(time.RFC3339Nano, v); err == nil {
		return ts, true
	}
	if ts, err := time.ParseInLocation("2006-01-02T15:04:05.999999999", v, time.Local); err == nil {
		return ts, true
	}
	return time.Time{}, false
}

func parseRFC2822(v string) (time.Time, bool) {
	for _, layout := range []string{
		"Mon, 02 Jan 2006 15:04:05 MST",
		"Mon, 2 Jan 2006 15:04:05 MST",
		"Mon, 02 Jan 2006 15:04:05 -0700",
		"Mon, 2 Jan 2006 15:04:05 -0700",
	} {
		if ts, err := time.Parse(layout, v); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// Unix plausibility ranges: seconds must land strictly inside
// (1e9, 1e10) and milliseconds strictly inside (1e12, 1e13). Everything
// else is rejected outright, not flagged.
const (
	unixSecMin = 1_000_000_000
	unixSecMax = 9_999_999_999
	unixMsMin  = 1_000_000_000_000
	unixMsMax  = 9_999_999_999_999
)

func acceptUnix(v string) bool {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return false
	}
	return (n > unixSecMin && n < unixSecMax) || (n > unixMsMin && n < unixMsMax)
}

// parseUnix interprets 10-digit values as seconds and 13-digit values as
// milliseconds, so 1703508600 and 1703508600000 store the same instant.
func parseUnix(v string) (time.Time, bool) {
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, false
	}
	switch {
	case n > unixSecMin && n < unixSecMax:
		return time.UnixMilli(n * 1000), true
	case n > unixMsMin && n < unixMsMax:
		return time.UnixMilli(n), true
	}
	return time.Time{}, false
}

func parseUTC(v string) (time.Time, bool) {
	ts, err := time.Parse("Mon Jan 02 2006 15:04:05 GMT-0700", v)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

func parseLocal(v string) (time.Time, bool) {
	for _, layout := range []string{"1/2/2006 15:04:05", "1/2/2006 3:04:05"} {
		if ts, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// parseSimple parses a bare calendar date as UTC midnight.
func parseSimple(v string) (time.Time, bool) {
	ts, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// customLayouts is the fallback layout set for values that come out of a
// specialized scanner but match none of the generic shapes.
var customLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/Jan/2006:15:04:05 -0700",
	"Mon, 02 Jan 2006 15:04:05 MST",
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	"January 2, 2006",
	"2 January 2006",
	"2006/01/02",
}

func parseCustom(v string) (time.Time, bool) {
	for _, layout := range customLayouts {
		if ts, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// classifyValue classifies a value found by a specialized scanner. The value
// is re-run against the generic shapes as a whole string; only when none
// matches is it tagged custom and parsed with the fallback layouts.
func classifyValue(v string) (Format, time.Time, bool) {
	switch {
	case isoFullRe.MatchString(v):
		ts, ok := parseISO(v)
		return FormatISO, ts, ok
	case rfc2822FullRe.MatchString(v):
		ts, ok := parseRFC2822(v)
		return FormatRFC2822, ts, ok
	case unixFullRe.MatchString(v) && acceptUnix(v):
		ts, ok := parseUnix(v)
		return FormatUnix, ts, ok
	case utcFullRe.MatchString(v):
		ts, ok := parseUTC(v)
		return FormatUTC, ts, ok
	case localFullRe.MatchString(v):
		ts, ok := parseLocal(v)
		return FormatLocal, ts, ok
	case simpleFullRe.MatchString(v):
		ts, ok := parseSimple(v)
		return FormatSimple, ts, ok
	}
	ts, ok := parseCustom(v)
	return FormatCustom, ts, ok
}
