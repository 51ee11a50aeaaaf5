package extract

import "regexp"

// JavaScript/TypeScript date-construction idioms. The captured string
// literal is the value; whatever it classifies as is what gets emitted, so
// new Date("garbage") surfaces as a custom entry with an invalid timestamp
// rather than being silently dropped.
var jsProbes = []probe{
	{re: regexp.MustCompile(`new Date\(\s*["']([^"']+)["']\s*\)`), group: 1},
	{re: regexp.MustCompile(`Date\.parse\(\s*["']([^"']+)["']\s*\)`), group: 1},
	// Common date-library constructors taking a single string literal.
	{re: regexp.MustCompile(`(?:moment|dayjs|parseISO|DateTime\.fromISO)\(\s*["']([^"']+)["']\s*\)`), group: 1},
}

// scanJavaScript applies the generic scan plus the code-idiom matchers.
func scanJavaScript(content string) []DateValue {
	out := scanGeneric(content)
	for i, line := range splitLines(content) {
		out = append(out, applyProbes(jsProbes, line, i+1)...)
	}
	return out
}
