package common

import "strings"

// IsIdentifier reports whether s is a valid C/C++ identifier made of ASCII
// letters, digits and underscores, not starting with a digit.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', isLower(c), isUpper(c):
		case isDigit(c) && i > 0:
		default:
			return false
		}
	}
	return true
}

// ToKebabCase converts a Go field name to the flag spelling kong derives
// from it: "MapName" -> "map-name", "LogFile" -> "log-file".
func ToKebabCase(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if i > 0 && isUpper(c) {
			// Check if previous char is lowercase (e.g., "someWord" -> "some-word")
			prevIsLower := isLower(s[i-1]) || isDigit(s[i-1])

			// Check if next char is lowercase (e.g., "XMLParser" -> "xml-parser", not "x-m-l-parser")
			nextIsLower := i+1 < len(s) && isLower(s[i+1])

			if prevIsLower || nextIsLower {
				b.WriteByte('-')
			}
		}
		b.WriteByte(c)
	}
	return strings.ToLower(b.String())
}

func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
