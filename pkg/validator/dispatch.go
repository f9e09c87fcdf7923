package validator

import (
	"maps"
	"time"
)

// TypeValidator checks and sanitizes a value that already passed the blank
// and required checks. The set of implementations is closed; Dispatch picks
// one per rule.
type TypeValidator interface {
	// Name identifies the validator in logs.
	Name() string

	validate(s *scope, value any) (any, *ValidationError)
}

// Dispatch returns the validator bound to r. A callback spec supersedes the
// declared type.
func Dispatch(r *Rule) TypeValidator {
	if r == nil {
		return nil
	}
	return r.validator
}

// validatorFor maps a type and spec shape to a validator. It is called once
// when a rule is built; a nil result means the type is not supported.
func validatorFor(t Type, st SpecType) TypeValidator {
	if st == SpecCallback {
		return callbackValidator{}
	}

	switch t {
	case TypeInt, TypeFloat, TypeNumber, TypeNumeric:
		return numberValidator{}
	case TypeString:
		return stringValidator{}
	case TypeEnum:
		return enumValidator{}
	case TypeBool:
		return boolValidator{}
	case TypeDate, TypeTime, TypeDateTime:
		return dateTimeValidator{}
	case TypeUnixtime:
		return timestampValidator{}
	case TypeEmail:
		return emailValidator{}
	case TypeURL:
		return urlValidator{}
	case TypeUUID:
		return uuidValidator{}
	case TypeJSON:
		return jsonValidator{}
	case TypeArray:
		return arrayValidator{}
	case TypeAny:
		return anyValidator{}
	}
	return nil
}

// scope carries what a validator needs for one evaluation.
type scope struct {
	rule     *Rule
	path     string
	data     map[string]any
	messages Messages
	now      func() time.Time
}

// fail builds the error record for the field being evaluated.
func (s *scope) fail(kind ErrorKind, key string, values map[string]any) *ValidationError {
	vals := make(map[string]any, len(values)+2)
	maps.Copy(vals, values)
	vals["label"] = s.label()
	vals["field"] = s.path

	return &ValidationError{
		Field:             s.path,
		Code:              kind,
		Message:           s.messages.render(key, vals),
		TranslationKey:    key,
		TranslationValues: vals,
	}
}

// typeError reports a value of the wrong primitive kind.
func (s *scope) typeError(expected string) *ValidationError {
	return s.fail(KindType, MsgType, map[string]any{"type": expected})
}

func (s *scope) notValid() *ValidationError {
	return s.fail(KindNotValid, MsgNotValid, nil)
}

func (s *scope) label() string {
	if s.rule.label != "" {
		return s.rule.label
	}
	return s.path
}
