// Package slices provides additional slice helpers
package slices

// ContainsString returns true if the slice contains the string
func ContainsString(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}

// StringsCoalesce returns the first non-empty string value
func StringsCoalesce(str ...string) string {
	for _, s := range str {
		if s != "" {
			return s
		}
	}
	return ""
}
