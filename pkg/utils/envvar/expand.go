// Package envvar expands environment variable placeholders in configuration values.
package envvar

import (
	"os"
	"regexp"
)

// pattern matches ${VAR} and ${VAR:-default} placeholders.
var pattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// Expand replaces ${VAR} placeholders with the variable's value. ${VAR:-default}
// falls back to default when VAR is unset or empty; a bare ${VAR} becomes "".
func Expand(value string) string {
	if value == "" {
		return value
	}

	return pattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := pattern.FindStringSubmatch(match)

		resolved := os.Getenv(groups[1])
		if resolved == "" {
			return groups[2]
		}

		return resolved
	})
}

// ExpandAll expands every element of values into a new slice. Nil stays nil.
func ExpandAll(values []string) []string {
	if values == nil {
		return nil
	}

	expanded := make([]string, len(values))
	for i, value := range values {
		expanded[i] = Expand(value)
	}

	return expanded
}
