package validator

import (
	"errors"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// numericString matches decimal and exponent notation accepted by loose
// numeric checks. Hex, octal and binary literals are not numbers here.
var numericString = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

func isNumericString(s string) bool {
	return numericString.MatchString(strings.TrimSpace(s))
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

// isNumber reports whether v holds a Go integer or floating point kind.
func isNumber(v any) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return isIntKind(k) || isFloatKind(k)
}

func isInteger(v any) bool {
	return v != nil && isIntKind(reflect.TypeOf(v).Kind())
}

func isFloat(v any) bool {
	return v != nil && isFloatKind(reflect.TypeOf(v).Kind())
}

// toFloat64 converts a number or numeric string to float64. NaN, infinities
// and strings out of float64 range are rejected.
func toFloat64(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return float64(rv.Int()), true
	case rv.CanUint():
		return float64(rv.Uint()), true
	case rv.CanFloat():
		f := rv.Float()
		return f, finite(f)
	case rv.Kind() == reflect.String:
		s := strings.TrimSpace(rv.String())
		if !numericString.MatchString(s) {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil && finite(f)
	}
	return 0, false
}

// toInt converts a number or numeric string to int, truncating fractions.
// Values outside the int range are rejected.
func toInt(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		i := rv.Int()
		if int64(int(i)) != i {
			return 0, false
		}
		return int(i), true
	case rv.CanUint():
		u := rv.Uint()
		if u > math.MaxInt {
			return 0, false
		}
		return int(u), true
	case rv.CanFloat():
		return intFromFloat(rv.Float())
	case rv.Kind() == reflect.String:
		s := strings.TrimSpace(rv.String())
		if !numericString.MatchString(s) {
			return 0, false
		}
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return toInt(i)
		}
		if errors.Is(err, strconv.ErrRange) {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return intFromFloat(f)
	}
	return 0, false
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// intFromFloat truncates f, rejecting values an int cannot hold.
func intFromFloat(f float64) (int, bool) {
	if !finite(f) || f < math.MinInt || f >= math.MaxInt {
		return 0, false
	}
	return int(f), true
}

// toNumber converts a number or numeric string to int when it is integral
// in notation, float64 otherwise.
func toNumber(v any) (any, bool) {
	switch {
	case isInteger(v):
		return toInt(v)
	case isFloat(v):
		return toFloat64(v)
	}

	s, ok := v.(string)
	if !ok || !isNumericString(s) {
		return nil, false
	}
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return int(i), true
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || !finite(f) {
		return nil, false
	}
	return f, true
}

// toString renders scalars the way they would be written in a form field.
func toString(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", true
	case string:
		return val, true
	case bool:
		if val {
			return "1", true
		}
		return "", true
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	}

	rv := reflect.ValueOf(v)
	switch {
	case rv.CanInt():
		return strconv.FormatInt(rv.Int(), 10), true
	case rv.CanUint():
		return strconv.FormatUint(rv.Uint(), 10), true
	case rv.Kind() == reflect.String:
		return rv.String(), true
	}
	return "", false
}

// truthy reports whether v counts as true. Empty strings, "0", "false", "no",
// "off", zero numbers, nil and empty collections are false.
func truthy(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "", "0", "false", "no", "off":
			return false
		}
		return true
	}

	if f, ok := toFloat64(v); ok && isNumber(v) {
		return f != 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// isBlank reports whether v is nil or the empty string.
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

// isEmpty reports whether v is nil, false, zero, "", "0" or an empty collection.
func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case bool:
		return !val
	case string:
		return val == "" || val == "0"
	}

	if isNumber(v) {
		f, _ := toFloat64(v)
		return f == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// castValue coerces v to the primitive kind named by t.
// Collections and values that do not fit the kind are returned unchanged.
func castValue(t Type, v any) any {
	if isCollection(v) {
		return v
	}

	switch t {
	case TypeInt:
		if b, ok := v.(bool); ok {
			if b {
				return 1
			}
			return 0
		}
		if i, ok := toInt(v); ok {
			return i
		}
		return v
	case TypeFloat:
		if b, ok := v.(bool); ok {
			if b {
				return 1.0
			}
			return 0.0
		}
		if f, ok := toFloat64(v); ok {
			return f
		}
		return v
	case TypeString:
		s, ok := toString(v)
		if !ok {
			return v
		}
		return s
	case TypeBool:
		return truthy(v)
	}
	return v
}

func isCollection(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

// toSlice copies any slice or array into []any.
func toSlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// toAnyMap converts map[string]any, map[any]any and Declaration values
// into map[any]any keyed the same way.
func toAnyMap(v any) (map[any]any, bool) {
	switch m := v.(type) {
	case Declaration:
		return m, true
	case map[any]any:
		return m, true
	case map[string]any:
		out := make(map[any]any, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	}
	return nil, false
}
