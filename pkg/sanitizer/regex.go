package sanitizer

import "regexp"

var (
	// HTML stripping
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

	whitespaceRegex = regexp.MustCompile(`\s+`)
)
