package log

import "strings"

// logControlCharReplacer escapes control characters that can be used for log injection (CWE-117).
// Assertion failure messages embed caller-supplied subject text, so newlines and
// carriage returns in that text could otherwise forge fake log entries.
var logControlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// SanitizeMessage escapes control characters in a single string value.
func SanitizeMessage(s string) string {
	return logControlCharReplacer.Replace(s)
}
