package extract

import (
	"regexp"
	"strings"
	"time"
)

// Log-specific matchers, applied on top of the generic set for log and
// plaintext hints. Values are classified by re-running them against the
// generic shapes; anything else is tagged custom.
var logProbes = []probe{
	// 2024-01-15 10:30:45  /  2024-01-15 10:30:45.123
	{re: regexp.MustCompile(`\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}(?:\.\d{1,9})?`), parse: parseLogTimestamp},
	// Syslog BSD: Jan 15 10:30:45 / Feb  5 03:22:11 (no year)
	{re: regexp.MustCompile(`(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec) {1,2}\d{1,2} \d{2}:\d{2}:\d{2}`), parse: parseSyslog},
	// Apache access log: [15/Jan/2024:10:30:45 +0000]
	{re: regexp.MustCompile(`\[(\d{2}/(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)/\d{4}:\d{2}:\d{2}:\d{2} [+-]\d{4})\]`), group: 1, parse: parseApache},
}

// probe is a format-specific matcher. Unlike the generic patterns, the
// format tag is not fixed: the matched value is classified after the fact.
// parse is the fallback parser used when the value classifies as custom.
type probe struct {
	re    *regexp.Regexp
	group int
	parse func(string) (time.Time, bool)
}

// applyProbes runs format-specific matchers against one line. Each value is
// classified against the generic shapes first; the probe's own parser only
// kicks in for values the generic parsers cannot handle.
func applyProbes(probes []probe, line string, lineNo int) []DateValue {
	var out []DateValue
	context := strings.TrimSpace(line)

	for _, p := range probes {
		for _, loc := range p.re.FindAllStringSubmatchIndex(line, -1) {
			start, end := loc[0], loc[1]
			if p.group > 0 {
				start, end = loc[2*p.group], loc[2*p.group+1]
			}
			if start < 0 || start == end {
				continue
			}
			value := line[start:end]
			format, ts, valid := classifyValue(value)
			if format == FormatCustom && !valid && p.parse != nil {
				ts, valid = p.parse(value)
			}
			out = append(out, DateValue{
				Value:   value,
				Format:  format,
				TS:      ts,
				Valid:   valid,
				Line:    lineNo,
				Column:  start + 1,
				Context: context,
			})
		}
	}
	return out
}

// scanLog applies the generic scan plus the log-specific matchers. The two
// result sets are concatenated without cross-scanner overlap suppression;
// only identity dedup at the router collapses exact repeats.
func scanLog(content string) []DateValue {
	out := scanGeneric(content)
	for i, line := range splitLines(content) {
		out = append(out, applyProbes(logProbes, line, i+1)...)
	}
	return out
}

func parseLogTimestamp(v string) (time.Time, bool) {
	ts, err := time.ParseInLocation("2006-01-02 15:04:05.999999999", v, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// parseSyslog parses a BSD syslog timestamp, which carries no year. The
// current calendar year is assumed, with a rollover guard: an instant more
// than 24h in the future is moved back one year (a December log scanned in
// January would otherwise land a year ahead).
func parseSyslog(v string) (time.Time, bool) {
	now := time.Now()
	for _, layout := range []string{"Jan  2 15:04:05", "Jan 02 15:04:05"} {
		ts, err := time.ParseInLocation(layout, v, time.Local)
		if err != nil {
			continue
		}
		ts = ts.AddDate(now.Year(), 0, 0)
		if ts.After(now.Add(24 * time.Hour)) {
			ts = ts.AddDate(-1, 0, 0)
		}
		return ts, true
	}
	return time.Time{}, false
}

func parseApache(v string) (time.Time, bool) {
	ts, err := time.Parse("02/Jan/2006:15:04:05 -0700", v)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
