package renderer

import (
	"fmt"
	"strings"
)

// Substitution is a single key/value pair supplied to Render. Pairs keep the
// order the user supplied them in; the first value wins for a repeated key.
type Substitution struct {
	Key   string
	Value string
}

// ExtractVariables scans content left to right for {{name}} placeholders and
// returns the names in first-occurrence order with duplicates removed. The
// text between the braces is taken as-is with no validation; empty names are
// ignored, and an opening {{ with no closing }} before end of input is
// dropped.
func ExtractVariables(content string) []string {
	var variables []string
	seen := make(map[string]bool)

	for {
		start := strings.Index(content, "{{")
		if start < 0 {
			break
		}
		rest := content[start+2:]
		end := strings.Index(rest, "}}")
		if end < 0 {
			// Dangling open marker, nothing more to find.
			break
		}
		name := rest[:end]
		if name != "" && !seen[name] {
			seen[name] = true
			variables = append(variables, name)
		}
		content = rest[end+2:]
	}

	return variables
}

// Render replaces every {{key}} placeholder that has a supplied value and
// returns the result. Substitution is a single pass over the original
// template: supplied values are never re-scanned for placeholders, so a value
// containing {{other}} text survives verbatim. Placeholders with no supplied
// value are left untouched.
func Render(content string, subs []Substitution) string {
	if len(subs) == 0 {
		return content
	}

	values := make(map[string]string, len(subs))
	for _, sub := range subs {
		if _, ok := values[sub.Key]; !ok {
			values[sub.Key] = sub.Value
		}
	}

	var out strings.Builder
	for {
		start := strings.Index(content, "{{")
		if start < 0 {
			break
		}
		rest := content[start+2:]
		end := strings.Index(rest, "}}")
		if end < 0 {
			break
		}
		name := rest[:end]
		if value, ok := values[name]; ok {
			out.WriteString(content[:start])
			out.WriteString(value)
		} else {
			out.WriteString(content[:start+2+end+2])
		}
		content = rest[end+2:]
	}
	out.WriteString(content)

	return out.String()
}

// ParseSubstitutions parses repeatable key=value arguments into ordered
// substitution pairs. An argument without '=' or with an empty key is
// rejected.
func ParseSubstitutions(args []string) ([]Substitution, error) {
	var subs []Substitution
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid variable %q, expected key=value", arg)
		}
		subs = append(subs, Substitution{Key: key, Value: value})
	}
	return subs, nil
}
