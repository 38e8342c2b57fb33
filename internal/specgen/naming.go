package specgen

import (
	"go/token"
	"strings"
	"unicode"
)

// initialisms are parameter names rendered in upper case when exported.
var initialisms = map[string]string{
	"api":  "API",
	"id":   "ID",
	"mbid": "MBID",
	"sk":   "SK",
	"url":  "URL",
}

// reserved names cannot be used as generated argument identifiers: Go
// keywords plus the identifiers the generated method bodies rely on.
var reserved = map[string]bool{
	"any":     true,
	"bool":    true,
	"context": true,
	"ctx":     true,
	"error":   true,
	"int":     true,
	"opts":    true,
	"p":       true,
	"s":       true,
	"string":  true,
}

// intParams are documented as numbers upstream and generated as int.
var intParams = map[string]bool{
	"duration":       true,
	"endTimestamp":   true,
	"from":           true,
	"limit":          true,
	"page":           true,
	"startTimestamp": true,
	"timestamp":      true,
	"to":             true,
	"trackNumber":    true,
}

// ExportName converts an upstream camel-case name to an exported Go
// identifier: getRecentTracks => GetRecentTracks, mbid => MBID,
// streamId => StreamID.
func ExportName(name string) string {
	if name == "" {
		return ""
	}
	if up, ok := initialisms[strings.ToLower(name)]; ok {
		return up
	}
	for lower, up := range initialisms {
		suffix := strings.ToUpper(lower[:1]) + lower[1:]
		if strings.HasSuffix(name, suffix) {
			name = strings.TrimSuffix(name, suffix) + up
			break
		}
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// ArgName returns a safe Go argument identifier for a parameter name.
func ArgName(name string) string {
	if token.IsKeyword(name) || reserved[name] {
		return name + "_"
	}
	return name
}

// GoType returns the generated Go type of a parameter.
func GoType(name string, p ParamSpec) string {
	base := "string"
	switch {
	case p.Boolean:
		base = "bool"
	case intParams[name]:
		base = "int"
	}
	if p.Multiple {
		return "[]" + base
	}
	if p.Boolean && !p.Required {
		return "*bool"
	}
	return base
}

// wrap greedily breaks text into lines of at most width bytes.
func wrap(text string, width int) []string {
	var lines []string
	line := ""
	for _, w := range strings.Fields(text) {
		switch {
		case line == "":
			line = w
		case len(line)+1+len(w) > width:
			lines = append(lines, line)
			line = w
		default:
			line += " " + w
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
