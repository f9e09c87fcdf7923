package validator

import (
	"fmt"
	"strings"
)

// ErrorKind is a stable validation error code. Codes do not change when
// message wording does.
type ErrorKind uint8

const (
	KindCallback ErrorKind = iota + 1
	KindRequired
	KindType
	KindLength
	KindEmail
	KindEnum
	KindNotEqual
	KindNotValid
	KindNotMatch
	KindMinValue
	KindMaxValue
	KindMinLength
	KindMaxLength
)

var kindNames = [...]string{
	KindCallback:  "CALLBACK",
	KindRequired:  "REQUIRED",
	KindType:      "TYPE",
	KindLength:    "LENGTH",
	KindEmail:     "EMAIL",
	KindEnum:      "ENUM",
	KindNotEqual:  "NOT_EQUAL",
	KindNotValid:  "NOT_VALID",
	KindNotMatch:  "NOT_MATCH",
	KindMinValue:  "MIN_VALUE",
	KindMaxValue:  "MAX_VALUE",
	KindMinLength: "MIN_LENGTH",
	KindMaxLength: "MAX_LENGTH",
}

// ErrorKinds returns every error code.
func ErrorKinds() []ErrorKind {
	out := make([]ErrorKind, 0, len(kindNames)-1)
	for k := KindCallback; k <= KindMaxLength; k++ {
		out = append(out, k)
	}
	return out
}

// ParseErrorKind resolves a symbolic code such as "NOT_VALID".
// NOT_FOUND is accepted as a synonym of ENUM.
func ParseErrorKind(s string) (ErrorKind, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "NOT_FOUND" {
		return KindEnum, nil
	}
	for k := KindCallback; k <= KindMaxLength; k++ {
		if kindNames[k] == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown error kind %q", s)
}

func (k ErrorKind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Valid reports whether k is a known code.
func (k ErrorKind) Valid() bool {
	return k >= KindCallback && k <= KindMaxLength
}

// TranslationKey returns the default message key for the code.
func (k ErrorKind) TranslationKey() string {
	return "validation." + strings.ToLower(k.String())
}

func (k ErrorKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unknown error kind %d", k)
	}
	return []byte(k.String()), nil
}

func (k *ErrorKind) UnmarshalText(text []byte) error {
	parsed, err := ParseErrorKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
