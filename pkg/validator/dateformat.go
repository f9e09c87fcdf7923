package validator

import (
	"fmt"
	"strings"
)

// Default formats of the temporal types.
const (
	DefaultDateFormat     = "Y-m-d"
	DefaultTimeFormat     = "H:i:s"
	DefaultDateTimeFormat = "Y-m-d H:i:s"
)

// dateTokens maps format letters to Go layout elements.
var dateTokens = map[byte]string{
	'd': "02",
	'D': "Mon",
	'j': "2",
	'l': "Monday",
	'm': "01",
	'M': "Jan",
	'n': "1",
	'F': "January",
	'Y': "2006",
	'y': "06",
	'a': "pm",
	'A': "PM",
	'g': "3",
	'h': "03",
	'H': "15",
	'i': "04",
	's': "05",
	'T': "MST",
	'P': "-07:00",
	'O': "-0700",
	'p': "Z07:00",
	'c': "2006-01-02T15:04:05-07:00",
	'r': "Mon, 02 Jan 2006 15:04:05 -0700",
}

// fractionTokens are only valid right after a '.' or ','.
var fractionTokens = map[byte]string{
	'v': "000",
	'u': "000000",
}

// reservedLiterals would be read as layout elements if copied into a layout.
var reservedLiterals = []string{"Jan", "Mon", "MST", "PM", "pm"}

// translateDateFormat converts a letter-token date format such as "Y-m-d H:i:s"
// into a Go time layout. A backslash escapes the next character.
func translateDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("empty date format")
	}

	var (
		layout  strings.Builder
		literal strings.Builder
	)
	flush := func() error {
		lit := literal.String()
		literal.Reset()
		for _, reserved := range reservedLiterals {
			if strings.Contains(lit, reserved) {
				return fmt.Errorf("literal %q cannot be represented in a layout", lit)
			}
		}
		layout.WriteString(lit)
		return nil
	}

	for i := 0; i < len(format); i++ {
		c := format[i]

		if c == '\\' {
			if i+1 >= len(format) {
				return "", fmt.Errorf("dangling escape at end of format %q", format)
			}
			i++
			c = format[i]
			if err := checkLiteral(c); err != nil {
				return "", err
			}
			literal.WriteByte(c)
			continue
		}

		if tok, ok := dateTokens[c]; ok {
			if err := flush(); err != nil {
				return "", err
			}
			layout.WriteString(tok)
			continue
		}

		if tok, ok := fractionTokens[c]; ok {
			if i == 0 || (format[i-1] != '.' && format[i-1] != ',') {
				return "", fmt.Errorf("token %q must follow '.' or ','", c)
			}
			if err := flush(); err != nil {
				return "", err
			}
			layout.WriteString(tok)
			continue
		}

		if isASCIILetter(c) {
			return "", fmt.Errorf("unsupported format token %q", c)
		}
		if err := checkLiteral(c); err != nil {
			return "", err
		}
		literal.WriteByte(c)
	}

	if err := flush(); err != nil {
		return "", err
	}
	return layout.String(), nil
}

// checkLiteral rejects characters that Go layouts treat as elements.
func checkLiteral(c byte) error {
	if c >= '0' && c <= '9' || c == '_' {
		return fmt.Errorf("literal %q cannot be represented in a layout", c)
	}
	return nil
}

func isASCIILetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
