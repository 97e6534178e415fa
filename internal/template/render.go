// Package template provides {{var}} expansion for scene step text. The
// token syntax is deliberately simpler than Go templates — scene authors
// write {{workspace}}, not {{.workspace}} — but the failure policy matches
// missingkey=error: an unresolved token aborts compilation naming the token.
package template

import (
	"fmt"
	"regexp"
	"strings"
)

var tokenRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Expand substitutes every {{var}} token in text from vars. An unresolved
// token is an error naming the offending token.
func Expand(text string, vars map[string]string) (string, error) {
	var missing string
	out := tokenRe.ReplaceAllStringFunc(text, func(match string) string {
		key := match[2 : len(match)-2]
		if val, ok := vars[key]; ok {
			return val
		}
		if missing == "" {
			missing = key
		}
		return match
	})
	if missing != "" {
		return "", fmt.Errorf("unresolved template variable {{%s}}", missing)
	}
	return out, nil
}

// ExpandAll expands a slice of lines, reporting the index of the first line
// that fails.
func ExpandAll(lines []string, vars map[string]string) ([]string, error) {
	out := make([]string, len(lines))
	for i, line := range lines {
		expanded, err := Expand(line, vars)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		out[i] = expanded
	}
	return out, nil
}

// MergeVars layers override vars on top of base vars without mutating
// either. Keys are trimmed; empty keys are dropped.
func MergeVars(base, override map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		if k = strings.TrimSpace(k); k != "" {
			merged[k] = v
		}
	}
	for k, v := range override {
		if k = strings.TrimSpace(k); k != "" {
			merged[k] = v
		}
	}
	return merged
}
