package agent

import "strings"

// isPlaceholder reports whether a required field value is missing or one of
// the sentinel strings language models sometimes pass instead of real data.
func isPlaceholder(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "null", "none":
		return true
	}
	return false
}

// firstMissing returns the name of the first required field carrying a
// placeholder value, or "" when all are present. Order matters: the agent
// re-prompts for one field at a time.
func firstMissing(fields []requiredField) string {
	for _, f := range fields {
		if isPlaceholder(f.value) {
			return f.name
		}
	}
	return ""
}

type requiredField struct {
	name  string
	value string
}
