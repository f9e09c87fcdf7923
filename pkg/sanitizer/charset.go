package sanitizer

import (
	"errors"
	"strings"

	"golang.org/x/exp/utf8string"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// DefaultCharset is the label used when a rule does not name an encoding.
const DefaultCharset = "UTF-8"

// Charset measures and truncates strings in character units of a named encoding.
// The zero value is UTF-8.
//
// Strings in a non-UTF-8 charset are treated as raw byte strings in that
// charset: they are decoded before counting and re-encoded after truncation.
type Charset struct {
	name string
	enc  encoding.Encoding
}

// UTF8 is the default charset.
var UTF8 = Charset{name: "utf-8"}

// LookupCharset resolves a WHATWG encoding label such as "UTF-8",
// "ISO-8859-1" or "windows-1251".
func LookupCharset(label string) (Charset, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return UTF8, nil
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return Charset{}, errors.Join(ErrUnknownCharset, err)
	}

	name, err := htmlindex.Name(enc)
	if err != nil {
		return Charset{}, errors.Join(ErrUnknownCharset, err)
	}
	if name == "utf-8" {
		return UTF8, nil
	}

	return Charset{name: name, enc: enc}, nil
}

// Name returns the canonical lowercase label of the charset.
func (c Charset) Name() string {
	if c.name == "" {
		return UTF8.name
	}
	return c.name
}

// IsUTF8 reports whether strings are measured as UTF-8 runes.
func (c Charset) IsUTF8() bool {
	return c.enc == nil
}

// Len returns the number of characters in s.
// Undecodable input falls back to its byte length.
func (c Charset) Len(s string) int {
	if c.enc == nil {
		return utf8string.NewString(s).RuneCount()
	}

	decoded, err := c.enc.NewDecoder().String(s)
	if err != nil {
		return len(s)
	}
	return utf8string.NewString(decoded).RuneCount()
}

// Truncate cuts s down to at most n characters.
func (c Charset) Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}

	if c.enc == nil {
		us := utf8string.NewString(s)
		if us.RuneCount() <= n {
			return s
		}
		return us.Slice(0, n)
	}

	decoded, err := c.enc.NewDecoder().String(s)
	if err != nil {
		if len(s) <= n {
			return s
		}
		return s[:n]
	}

	us := utf8string.NewString(decoded)
	if us.RuneCount() <= n {
		return s
	}

	encoded, err := c.enc.NewEncoder().String(us.Slice(0, n))
	if err != nil {
		return s[:min(n, len(s))]
	}
	return encoded
}

// Length returns the number of UTF-8 characters in s.
func Length(s string) int {
	return UTF8.Len(s)
}

// MaxLength truncates a string to at most maxLen UTF-8 characters.
func MaxLength(s string, maxLen int) string {
	return UTF8.Truncate(s, maxLen)
}
