package validator

import (
	"fmt"
	"strings"
)

type dropMode uint8

const (
	dropNever dropMode = iota
	dropAlways
	dropEmpty
	dropEmptyString
	dropNull
	dropFunc
)

// dropPolicy decides whether a field is removed from the data before any
// other check runs.
type dropPolicy struct {
	mode dropMode
	fn   func(any) bool
}

func parseDropPolicy(raw any) (dropPolicy, error) {
	switch v := raw.(type) {
	case nil:
		return dropPolicy{}, nil
	case bool:
		if v {
			return dropPolicy{mode: dropAlways}, nil
		}
		return dropPolicy{}, nil
	case func(any) bool:
		return dropPolicy{mode: dropFunc, fn: v}, nil
	case string:
		switch strings.ToLower(v) {
		case "empty":
			return dropPolicy{mode: dropEmpty}, nil
		case "":
			return dropPolicy{mode: dropEmptyString}, nil
		case "null":
			return dropPolicy{mode: dropNull}, nil
		}
		if truthy(v) {
			return dropPolicy{mode: dropAlways}, nil
		}
		return dropPolicy{}, nil
	}

	if isNumber(raw) {
		if truthy(raw) {
			return dropPolicy{mode: dropAlways}, nil
		}
		return dropPolicy{}, nil
	}
	return dropPolicy{}, fmt.Errorf("unsupported drop policy %T", raw)
}

// matches reports whether value must be dropped.
func (p dropPolicy) matches(value any) bool {
	switch p.mode {
	case dropAlways:
		return true
	case dropEmpty:
		return isEmpty(value)
	case dropEmptyString:
		s, ok := value.(string)
		return ok && s == ""
	case dropNull:
		return value == nil
	case dropFunc:
		return p.fn(value)
	}
	return false
}
