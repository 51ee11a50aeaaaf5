package extract

import (
	"fmt"
	"strings"
	"time"
)

// scanFunc produces the raw (pre-dedup) match list for one document.
type scanFunc func(content string) []DateValue

// routes maps normalized format hints to their scanner. Specialized scanners
// concatenate generic matches with their own probes; substring suppression
// runs inside the generic scan only, while identity dedup runs over the
// concatenated whole at the router.
var routes = map[string]scanFunc{
	"json":       scanGeneric,
	"yaml":       scanGeneric,
	"csv":        scanGeneric,
	"xml":        scanXML,
	"log":        scanLog,
	"javascript": scanJavaScript,
	"html":       scanHTML,
}

// normalizeHint maps an external format/language identifier to a route key.
// Unrecognized hints map to "".
func normalizeHint(format string) string {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "csv":
		return "csv"
	case "xml":
		return "xml"
	case "log", "plaintext", "text":
		return "log"
	case "javascript", "typescript", "js", "ts":
		return "javascript"
	case "html", "htm":
		return "html"
	}
	return ""
}

// Scan recognizes date-like tokens in content according to the format hint.
//
// An unrecognized hint short-circuits to an empty successful result without
// invoking any scanner; that is deliberate fail-fast behavior, not an error.
// Any panic raised during scanning is recovered here and converted into a
// failed Result carrying a single parsing error; Scan never panics through
// to its caller.
func Scan(content, format string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{
				Success: false,
				Errors: []ScanError{{
					Category:    CategoryParsing,
					Severity:    SeverityWarning,
					Message:     fmt.Sprintf("scan %s content: %v", format, r),
					Recoverable: true,
					Recovery:    RecoverySkip,
					TS:          time.Now(),
				}},
			}
		}
	}()

	scan, ok := routes[normalizeHint(format)]
	if !ok {
		return Result{Success: true}
	}
	return Result{Success: true, Dates: Dedupe(scan(content))}
}

// scanXML is the generic line scan with comment-opener lines blanked first,
// so dates embedded in commented-out markup are not matched. Lines are
// replaced rather than removed to keep line numbers stable.
func scanXML(content string) []DateValue {
	lines := splitLines(content)
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "<!--") {
			lines[i] = ""
		}
	}
	return scanGeneric(strings.Join(lines, "\n"))
}
