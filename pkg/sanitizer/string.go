package sanitizer

import "strings"

var (
	quoteReplacer = strings.NewReplacer(
		`'`, "&#039;",
		`"`, "&quot;",
	)

	htmlReplacer = strings.NewReplacer(
		`<`, "&lt;",
		`>`, "&gt;",
		`'`, "&#039;",
		`"`, "&quot;",
	)
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// EscapeQuotes replaces single and double quotes with HTML entities.
func EscapeQuotes(s string) string {
	return quoteReplacer.Replace(s)
}

// EscapeHTML replaces angle brackets and quotes with HTML entities.
// Ampersands are left alone, so escaping an already escaped string is a no-op.
func EscapeHTML(s string) string {
	return htmlReplacer.Replace(s)
}

// StripTags removes anything that looks like an HTML tag.
// Entities are kept as they are.
func StripTags(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// CollapseSpaces replaces every whitespace run with a single space and trims
// the ends.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}
