package shell

import "strings"

// CommandArgument quotes a value so it survives as a single argument on a
// shell command line. Values without whitespace pass through untouched, as
// do values that are already quoted.
func CommandArgument(value string) string {
	if value == "" {
		return value
	}
	if !strings.ContainsAny(value, " \t") {
		return value
	}
	if strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value
	}
	return `"` + value + `"`
}
