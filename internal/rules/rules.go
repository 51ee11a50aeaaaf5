// Package rules evaluates rule-based validation over extracted date sets.
// The rule set is data-driven so callers can enable and tune individual
// rules from configuration or flags.
package rules

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/tibcsoo96/dates-le/internal/extract"
)

// Kind identifies a validation rule.
type Kind string

const (
	KindNotFuture   Kind = "not-future"
	KindNotBefore   Kind = "not-before"
	KindNotAfter    Kind = "not-after"
	KindParseable   Kind = "parseable"
	KindRequireZone Kind = "require-zone"
	KindSameFormat  Kind = "same-format"
)

// Rule is one enabled validation rule. Year parameterizes the not-before
// and not-after kinds and is ignored otherwise.
type Rule struct {
	Kind Kind `toml:"kind" json:"kind"`
	Year int  `toml:"year,omitempty" json:"year,omitempty"`
}

// Parse parses a rule spec of the form "kind" or "kind=year",
// e.g. "not-future" or "not-before=2000".
func Parse(spec string) (Rule, error) {
	kindStr, arg, hasArg := strings.Cut(spec, "=")
	kind := Kind(strings.TrimSpace(kindStr))
	switch kind {
	case KindNotFuture, KindParseable, KindRequireZone, KindSameFormat:
		if hasArg {
			return Rule{}, fmt.Errorf("rule %s takes no argument", kind)
		}
		return Rule{Kind: kind}, nil
	case KindNotBefore, KindNotAfter:
		if !hasArg {
			return Rule{}, fmt.Errorf("rule %s requires a year, e.g. %s=2000", kind, kind)
		}
		year, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return Rule{}, fmt.Errorf("rule %s: bad year %q", kind, arg)
		}
		return Rule{Kind: kind, Year: year}, nil
	}
	return Rule{}, fmt.Errorf("unknown rule %q", kindStr)
}

// Violation is one failed rule check against one entry.
type Violation struct {
	Rule        Kind   `json:"rule"`
	Value       string `json:"value"`
	Line        int    `json:"line,omitempty"`
	Description string `json:"description"`
}

// zoneRe matches an explicit zone designator at the end of a raw value.
var zoneRe = regexp.MustCompile(`(?:Z|[+-]\d{2}:?\d{2}|GMT[+-]\d{4}|\b(?:GMT|UTC|[A-Z]{3}))$`)

// Evaluate checks every enabled rule against every entry, relative to now.
func Evaluate(dates []extract.DateValue, set []Rule, now time.Time) []Violation {
	var out []Violation
	for _, r := range set {
		switch r.Kind {
		case KindNotFuture:
			for _, d := range dates {
				if d.Valid && d.TS.After(now) {
					out = append(out, violation(r.Kind, d, fmt.Sprintf("%q is in the future", d.Value)))
				}
			}
		case KindNotBefore:
			for _, d := range dates {
				if d.Valid && d.TS.Year() < r.Year {
					out = append(out, violation(r.Kind, d, fmt.Sprintf("%q predates year %d", d.Value, r.Year)))
				}
			}
		case KindNotAfter:
			for _, d := range dates {
				if d.Valid && d.TS.Year() > r.Year {
					out = append(out, violation(r.Kind, d, fmt.Sprintf("%q is later than year %d", d.Value, r.Year)))
				}
			}
		case KindParseable:
			for _, d := range dates {
				if !d.Valid {
					out = append(out, violation(r.Kind, d, fmt.Sprintf("%q is not parseable", d.Value)))
				}
			}
		case KindRequireZone:
			for _, d := range dates {
				if !zoneRe.MatchString(d.Value) {
					out = append(out, violation(r.Kind, d, fmt.Sprintf("%q carries no explicit zone designator", d.Value)))
				}
			}
		case KindSameFormat:
			out = append(out, sameFormat(dates)...)
		}
	}
	return out
}

// sameFormat flags entries deviating from the dominant format. Dominance
// follows the anomaly detector's rule: largest group, ties toward the
// first-encountered format.
func sameFormat(dates []extract.DateValue) []Violation {
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

	var out []Violation
	for _, d := range dates {
		if d.Format != dominant {
			out = append(out, violation(KindSameFormat, d, fmt.Sprintf("%q uses %s, expected %s", d.Value, d.Format, dominant)))
		}
	}
	return out
}

func violation(kind Kind, d extract.DateValue, desc string) Violation {
	return Violation{Rule: kind, Value: d.Value, Line: d.Line, Description: desc}
}
