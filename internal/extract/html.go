package extract

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/theory/jsonpath"
)

// dateMetaNames is the set of <meta> name/property/itemprop values whose
// content attribute carries a date.
var dateMetaNames = map[string]bool{
	"article:published_time": true,
	"article:modified_time":  true,
	"date":                   true,
	"pubdate":                true,
	"publish-date":           true,
	"last-modified":          true,
	"datepublished":          true,
	"datemodified":           true,
}

// jsonLDPaths are the date-bearing fields probed inside JSON-LD blocks.
var jsonLDPaths = []*jsonpath.Path{
	jsonpath.MustParse("$..datePublished"),
	jsonpath.MustParse("$..dateModified"),
	jsonpath.MustParse("$..dateCreated"),
	jsonpath.MustParse("$..uploadDate"),
}

// scanHTML applies the generic scan plus markup probes: datetime attributes,
// <time> element contents, date-bearing <meta> tags, and JSON-LD date
// fields. The probes walk the parsed DOM; positions are recovered by
// locating each value in the raw text, since the DOM has no line numbers.
func scanHTML(content string) []DateValue {
	out := scanGeneric(content)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return out
	}
	lines := splitLines(content)
	loc := newLocator(lines)

	add := func(value string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		format, ts, valid := classifyValue(value)
		d := DateValue{Value: value, Format: format, TS: ts, Valid: valid}
		if line, col := loc.find(value); line > 0 {
			d.Line = line
			d.Column = col
			d.Context = strings.TrimSpace(lines[line-1])
		}
		out = append(out, d)
	}

	doc.Find("[datetime]").Each(func(_ int, s *goquery.Selection) {
		if v, ok := s.Attr("datetime"); ok {
			add(v)
		}
	})

	doc.Find("time").Each(func(_ int, s *goquery.Selection) {
		if _, ok := s.Attr("datetime"); ok {
			return // already captured via the attribute probe
		}
		add(s.Text())
	})

	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		name, _ := s.Attr("name")
		if name == "" {
			name, _ = s.Attr("property")
		}
		if name == "" {
			name, _ = s.Attr("itemprop")
		}
		if !dateMetaNames[strings.ToLower(name)] {
			return
		}
		if v, ok := s.Attr("content"); ok {
			add(v)
		}
	})

	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var v any
		if err := json.Unmarshal([]byte(s.Text()), &v); err != nil {
			return
		}
		for _, p := range jsonLDPaths {
			for _, node := range p.Select(v) {
				if str, ok := node.(string); ok {
					add(str)
				}
			}
		}
	})

	return out
}

// locator recovers raw-text positions for values surfaced by the DOM probes.
// It remembers where each value was last found so a value appearing in
// several elements resolves to successive lines instead of collapsing onto
// the first one.
type locator struct {
	lines []string
	next  map[string]int // per value, 0-based line to resume searching from
}

func newLocator(lines []string) *locator {
	return &locator{lines: lines, next: make(map[string]int)}
}

// find returns the 1-based line and column of the next occurrence of value,
// scanning from the line after the previous hit. When no later line matches,
// it wraps around to the earliest occurrence. Zeros mean the value does not
// appear verbatim in the text.
func (lc *locator) find(value string) (line, col int) {
	start := lc.next[value]
	if l, c := lc.search(value, start); l > 0 {
		return l, c
	}
	if start > 0 {
		return lc.search(value, 0)
	}
	return 0, 0
}

func (lc *locator) search(value string, from int) (line, col int) {
	for i := from; i < len(lc.lines); i++ {
		if idx := strings.Index(lc.lines[i], value); idx >= 0 {
			lc.next[value] = i + 1
			return i + 1, idx + 1
		}
	}
	return 0, 0
}
