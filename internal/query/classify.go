package query

import "strings"

// IsSelect reports whether the trimmed statement starts with SELECT,
// case-insensitively. Only the literal prefix is checked: a statement behind
// a leading SQL comment ("-- x\nSELECT 1") classifies as a command.
func IsSelect(q string) bool {
	low := strings.ToLower(strings.TrimSpace(q))
	return strings.HasPrefix(low, "select")
}
