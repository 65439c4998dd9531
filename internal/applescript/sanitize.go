package applescript

import "strings"

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Sanitize escapes a string for embedding inside a double-quoted
// AppleScript literal. Every request-supplied string must pass through
// here before it reaches generated script text.
func Sanitize(s string) string {
	return escaper.Replace(s)
}
