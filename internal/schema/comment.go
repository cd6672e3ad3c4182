package schema

import (
	"regexp"
	"strings"
)

// List and Reference metadata round-trips exclusively through these marker
// phrases in column comments. They are a persisted wire contract: the encoded
// text must stay byte-identical across versions, so all encode/decode logic
// lives in this file.
const (
	markerAllowedValues = "ALLOWED VALUES:"
	markerReferences    = "REFERENCES:"
	markerDisplay       = "DISPLAY:"
)

var referencePattern = regexp.MustCompile(`REFERENCES:\s*([^\s(]+)(?:\s*\(DISPLAY:\s*([^)]*)\))?`)

// EncodeListComment renders the comment text for a List column.
func EncodeListComment(values []string) string {
	return markerAllowedValues + " " + strings.Join(values, ", ")
}

// EncodeReferenceComment renders the comment text for a Reference column.
func EncodeReferenceComment(table string, displayColumns []string) string {
	if len(displayColumns) == 0 {
		displayColumns = []string{"ID"}
	}
	return markerReferences + " " + table + " (" + markerDisplay + " " + strings.Join(displayColumns, ", ") + ")"
}

// ParseListComment extracts the allowed values from a comment carrying the
// ALLOWED VALUES marker. Returns nil when the marker is absent.
func ParseListComment(comment string) []string {
	idx := strings.Index(comment, markerAllowedValues)
	if idx < 0 {
		return nil
	}
	rest := comment[idx+len(markerAllowedValues):]
	if end := strings.Index(rest, "*/"); end >= 0 {
		rest = rest[:end]
	}
	return splitTrimmed(rest)
}

// ParseReferenceComment extracts the referenced table and display columns from
// a comment carrying the REFERENCES marker. Display columns default to ["ID"]
// when absent or unparsable. Returns ok=false when the marker is absent.
func ParseReferenceComment(comment string) (table string, displayColumns []string, ok bool) {
	if !strings.Contains(comment, markerReferences) {
		return "", nil, false
	}
	m := referencePattern.FindStringSubmatch(comment)
	if m == nil {
		return "", []string{"ID"}, true
	}
	table = m[1]
	displayColumns = splitTrimmed(m[2])
	if len(displayColumns) == 0 {
		displayColumns = []string{"ID"}
	}
	return table, displayColumns, true
}

// splitTrimmed splits on commas, trims whitespace and drops empty entries.
func splitTrimmed(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
