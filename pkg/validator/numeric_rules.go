package validator

import (
	"bytes"
	"math"

	"github.com/goccy/go-json"

	"github.com/dmitrymomot/fieldkit/pkg/sanitizer"
)

type numberValidator struct{}

func (numberValidator) Name() string { return "number" }

func (numberValidator) validate(s *scope, value any) (any, *ValidationError) {
	r := s.rule
	strict := r.strictOr(false)

	if !numberKindAllowed(r.typ, value, strict) {
		return value, s.typeError(r.typ.String())
	}

	n, ok := castNumber(r.typ, value)
	if !ok {
		return value, s.notValid()
	}
	opts := r.number

	if opts.Unsigned {
		switch v := n.(type) {
		case int:
			if v == math.MinInt {
				return value, s.notValid()
			}
			n = sanitizer.Abs(v)
		case float64:
			n = sanitizer.Abs(v)
		}
	}
	if opts.Precision != nil {
		if f, ok := n.(float64); ok {
			n = sanitizer.RoundToDecimalPlaces(f, *opts.Precision)
		}
	}

	if opts.HasEqual {
		want, _ := castNumber(r.typ, opts.Equal)
		if !sameEncoding(n, want) {
			return value, s.fail(KindNotEqual, MsgNotEqual, map[string]any{"equal": opts.Equal})
		}
		return n, nil
	}

	f, _ := toFloat64(n)
	if rng := opts.Range; rng != nil {
		bounds := map[string]any{"min": rng.Min, "max": rng.Max}
		if f < rng.Min {
			return value, s.fail(KindMinValue, MsgBetween, bounds)
		}
		if f > rng.Max {
			return value, s.fail(KindMaxValue, MsgBetween, bounds)
		}
		return n, nil
	}

	if opts.Min != nil && f < *opts.Min {
		return value, s.fail(KindMinValue, MsgMinValue, map[string]any{"min": *opts.Min})
	}
	if opts.Max != nil && f > *opts.Max {
		return value, s.fail(KindMaxValue, MsgMaxValue, map[string]any{"max": *opts.Max})
	}

	return n, nil
}

// numberKindAllowed applies the strict or loose kind check for a numeric type.
// Strict mode demands the exact Go kind; loose mode also takes numeric strings.
func numberKindAllowed(t Type, value any, strict bool) bool {
	if strict {
		switch t {
		case TypeInt:
			return isInteger(value)
		case TypeFloat:
			return isFloat(value)
		default:
			return isNumber(value)
		}
	}

	if isNumber(value) {
		return true
	}
	s, ok := value.(string)
	return ok && isNumericString(s)
}

// castNumber converts value to the representation of the declared subtype:
// int for int, float64 for float, and the narrowest of the two otherwise.
// It reports false when the value does not fit the representation.
func castNumber(t Type, value any) (any, bool) {
	switch t {
	case TypeInt:
		return toInt(value)
	case TypeFloat:
		return toFloat64(value)
	}
	return toNumber(value)
}

// sameEncoding compares two values by their canonical JSON form.
func sameEncoding(a, b any) bool {
	ab, err := json.Marshal(a)
	if err != nil {
		return false
	}
	bb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(bytes.TrimSpace(ab), bytes.TrimSpace(bb))
}
