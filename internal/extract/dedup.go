package extract

import "strings"

// suppressSubsumed drops every simple-format match whose line also carries an
// iso-format match that textually contains the simple value. This prevents
// double-counting the date portion of a timestamp that was also matched in
// full. It must run before identity dedup: identity dedup would otherwise
// discard legitimately repeated values before the subsumption check sees them.
func suppressSubsumed(dates []DateValue) []DateValue {
	isoByLine := make(map[int][]string)
	for _, d := range dates {
		if d.Format == FormatISO {
			isoByLine[d.Line] = append(isoByLine[d.Line], d.Value)
		}
	}
	if len(isoByLine) == 0 {
		return dates
	}

	out := dates[:0]
	for _, d := range dates {
		if d.Format == FormatSimple && subsumed(d.Value, isoByLine[d.Line]) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func subsumed(value string, isoValues []string) bool {
	for _, iso := range isoValues {
		if strings.Contains(iso, value) {
			return true
		}
	}
	return false
}

// Dedupe collapses matches to one entry per (value, line) key. The last-seen
// entry for a key wins, but keys keep their first-seen order. The same value
// on different lines stays distinct; the same value twice on one line
// collapses to one. Dedupe is idempotent.
func Dedupe(dates []DateValue) []DateValue {
	type key struct {
		value string
		line  int
	}

	index := make(map[key]int, len(dates))
	out := make([]DateValue, 0, len(dates))
	for _, d := range dates {
		k := key{d.Value, d.Line}
		if i, seen := index[k]; seen {
			out[i] = d
			continue
		}
		index[k] = len(out)
		out = append(out, d)
	}
	return out
}
