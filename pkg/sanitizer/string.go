package sanitizer

import "strings"

var tagEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// EscapeTags escapes the HTML-structural characters '<' and '>' so
// user-supplied text cannot introduce markup when embedded in an HTML
// document. The replacement entities contain neither character, so the
// transformation is idempotent.
func EscapeTags(s string) string {
	return tagEscaper.Replace(s)
}

// TrimEscapeTags removes surrounding whitespace and escapes '<' and '>'.
// This is the transformation applied to every user-supplied field before
// HTML embedding.
func TrimEscapeTags(s string) string {
	return EscapeTags(strings.TrimSpace(s))
}

// MaxLength truncates a string to the specified maximum length.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
