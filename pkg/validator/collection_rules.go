package validator

import "reflect"

type arrayValidator struct{}

func (arrayValidator) Name() string { return "array" }

func (arrayValidator) validate(s *scope, value any) (any, *ValidationError) {
	if value != nil {
		switch reflect.TypeOf(value).Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return value, nil
		}
	}
	return value, s.typeError("array")
}

// anyValidator accepts every value. Fields of type any exist to trigger the
// required and default handling only.
type anyValidator struct{}

func (anyValidator) Name() string { return "any" }

func (anyValidator) validate(_ *scope, value any) (any, *ValidationError) {
	return value, nil
}
