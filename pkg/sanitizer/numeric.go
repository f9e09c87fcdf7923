package sanitizer

import "math"

// Signed represents signed numeric types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Float represents floating-point numeric types.
type Float interface {
	~float32 | ~float64
}

// Abs returns the absolute value of a signed numeric value.
func Abs[T Signed](value T) T {
	if value < 0 {
		return -value
	}
	return value
}

// RoundToDecimalPlaces rounds half away from zero to the given number of decimal places.
// Negative places are treated as zero.
func RoundToDecimalPlaces[T Float](value T, places int) T {
	if places < 0 {
		places = 0
	}

	multiplier := math.Pow(10, float64(places))
	return T(math.Round(float64(value)*multiplier) / multiplier)
}
