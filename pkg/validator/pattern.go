package validator

import (
	"fmt"
	"strings"
)

// RegexpSentinel marks a string spec as a regular expression. The same
// character closes the pattern and may be followed by flags: "~^\d+$~i".
const RegexpSentinel = '~'

// isRegexpSpec reports whether spec is written as a regular expression.
func isRegexpSpec(spec string) bool {
	return len(spec) > 0 && spec[0] == RegexpSentinel
}

// regexpSource converts a "~pattern~flags" spec to Go regexp syntax.
// Flags i, m and s become inline flags; u is accepted for compatibility and
// has no effect because Go patterns are always UTF-8 aware. When the text
// after the last sentinel is not made of letters, the spec is unterminated
// and the whole body is the pattern.
func regexpSource(spec string) (string, error) {
	body := spec[1:]
	end := strings.LastIndexByte(body, RegexpSentinel)
	if end < 0 || !isFlagSuffix(body[end+1:]) {
		return body, nil
	}

	pattern, flags := body[:end], body[end+1:]
	var inline strings.Builder
	for _, f := range flags {
		switch f {
		case 'i', 'm', 's':
			if !strings.ContainsRune(inline.String(), f) {
				inline.WriteRune(f)
			}
		case 'u':
		default:
			return "", fmt.Errorf("unsupported regexp flag %q", f)
		}
	}

	if inline.Len() == 0 {
		return pattern, nil
	}
	return "(?" + inline.String() + ")" + pattern, nil
}

// isFlagSuffix reports whether s can be a flag list. Unknown letters still
// count so they are reported as unsupported flags.
func isFlagSuffix(s string) bool {
	for _, c := range s {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}
