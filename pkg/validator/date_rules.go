package validator

import (
	"reflect"
	"strconv"
	"time"
)

type dateTimeValidator struct{}

func (dateTimeValidator) Name() string { return "datetime" }

func (dateTimeValidator) validate(s *scope, value any) (any, *ValidationError) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v != nil {
			return v, nil
		}
	case string:
		r := s.rule
		if r.specType == SpecRegexp && r.pattern != nil {
			if !r.pattern.MatchString(v) {
				return value, s.notValid()
			}
			return v, nil
		}

		parsed, err := time.Parse(r.date.Layout, v)
		if err != nil || parsed.Format(r.date.Layout) != v {
			return value, s.fail(KindNotValid, MsgDate, map[string]any{"format": r.date.Format})
		}
		return v, nil
	}

	return value, s.typeError(s.rule.typ.String())
}

type timestampValidator struct{}

func (timestampValidator) Name() string { return "unixtime" }

func (timestampValidator) validate(s *scope, value any) (any, *ValidationError) {
	if !isNumber(value) {
		str, ok := value.(string)
		if !ok || !isNumericString(str) {
			return value, s.typeError("unixtime")
		}
	}

	r := s.rule
	strict := r.strictOr(false)
	for _, special := range r.timestamp.Accept {
		if (strict && exactEqual(value, special)) || (!strict && looseEqual(value, special)) {
			i, _ := toInt(value)
			return i, nil
		}
	}

	digits, _ := toString(value)
	now := strconv.FormatInt(s.now().Unix(), 10)
	if len(digits) != len(now) || !allDigits(digits) {
		return value, s.notValid()
	}

	i, _ := toInt(value)
	return i, nil
}

// exactEqual requires the same Go type and value.
func exactEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	}
	return a == b
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
