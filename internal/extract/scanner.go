package extract

import "strings"

// splitLines splits content on newlines, tolerating CRLF endings. Line
// numbering downstream is 1-based over this slice.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// scanLine applies every generic pattern to one line and emits a DateValue
// per match, including repeated matches of the same pattern within the line.
// Pure function of (line, lineNo).
func scanLine(line string, lineNo int) []DateValue {
	return applyPatterns(genericPatterns, line, lineNo)
}

// applyPatterns runs a pattern set against one line in order. Positions are
// 1-based; the column is the byte offset of the value's start.
func applyPatterns(patterns []pattern, line string, lineNo int) []DateValue {
	var out []DateValue
	context := strings.TrimSpace(line)

	for _, p := range patterns {
		for _, loc := range p.re.FindAllStringSubmatchIndex(line, -1) {
			start, end := loc[0], loc[1]
			if p.group > 0 {
				start, end = loc[2*p.group], loc[2*p.group+1]
			}
			if start < 0 || start == end {
				continue
			}
			value := line[start:end]
			if p.accept != nil && !p.accept(value) {
				continue
			}
			ts, valid := p.parse(value)
			out = append(out, DateValue{
				Value:   value,
				Format:  p.format,
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

// scanGeneric applies the generic pattern set to every line of content and
// suppresses simple-date matches subsumed by an ISO match on the same line.
// Identity dedup happens later, at the router, over the full match list.
func scanGeneric(content string) []DateValue {
	var out []DateValue
	for i, line := range splitLines(content) {
		out = append(out, scanLine(line, i+1)...)
	}
	return suppressSubsumed(out)
}
