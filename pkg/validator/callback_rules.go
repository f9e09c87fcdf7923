package validator

import (
	"fmt"

	"github.com/dmitrymomot/fieldkit/pkg/sanitizer"
)

// Issue lets a callback override the code and message of its failure.
// A zero Code means KindCallback; an empty Message uses the default template.
type Issue struct {
	Code    ErrorKind
	Message string
}

// Failf returns an Issue with a formatted message.
func Failf(format string, args ...any) *Issue {
	return &Issue{Message: fmt.Sprintf(format, args...)}
}

// CallbackFunc validates a field with custom logic. It receives the current
// value and the container holding the field and its siblings. A nil Issue
// accepts the returned value as the sanitized value.
type CallbackFunc func(value any, data map[string]any) (any, *Issue)

// adaptCallback turns the supported function shapes into a CallbackFunc.
func adaptCallback(fn any) (CallbackFunc, error) {
	switch f := fn.(type) {
	case CallbackFunc:
		return f, nil
	case func(any, map[string]any) (any, *Issue):
		return f, nil
	case func(any) (any, *Issue):
		return func(v any, _ map[string]any) (any, *Issue) { return f(v) }, nil
	case func(any) bool:
		return func(v any, _ map[string]any) (any, *Issue) {
			if !f(v) {
				return v, &Issue{}
			}
			return v, nil
		}, nil
	case func(any, map[string]any) bool:
		return func(v any, data map[string]any) (any, *Issue) {
			if !f(v, data) {
				return v, &Issue{}
			}
			return v, nil
		}, nil
	case func(any) error:
		return func(v any, _ map[string]any) (any, *Issue) {
			if err := f(v); err != nil {
				return v, &Issue{Message: err.Error()}
			}
			return v, nil
		}, nil
	case func(any) (any, error):
		return func(v any, _ map[string]any) (any, *Issue) {
			out, err := f(v)
			if err != nil {
				return v, &Issue{Message: err.Error()}
			}
			return out, nil
		}, nil
	}
	return nil, fmt.Errorf("unsupported callback signature %T", fn)
}

// adaptApply turns the supported transform shapes into func(any) any: a
// function, a sanitizer transform name such as "trim|lower", or a list of
// either applied in order.
func adaptApply(fn any) (func(any) any, error) {
	switch f := fn.(type) {
	case func(any) any:
		return f, nil
	case func(string) string:
		return stringTransform(f), nil
	case sanitizer.Transform:
		return stringTransform(f), nil
	case string:
		t, err := sanitizer.LookupTransform(f)
		if err != nil {
			return nil, err
		}
		return stringTransform(t), nil
	}

	steps, ok := toSlice(fn)
	if !ok || len(steps) == 0 {
		return nil, fmt.Errorf("unsupported apply signature %T", fn)
	}
	chain := make([]func(any) any, 0, len(steps))
	for _, step := range steps {
		adapted, err := adaptApply(step)
		if err != nil {
			return nil, err
		}
		chain = append(chain, adapted)
	}
	return func(v any) any {
		for _, step := range chain {
			v = step(v)
		}
		return v
	}, nil
}

// stringTransform lifts a string transform to any value. Non-string values
// pass through untouched.
func stringTransform(f func(string) string) func(any) any {
	return func(v any) any {
		if s, ok := v.(string); ok {
			return f(s)
		}
		return v
	}
}

type callbackValidator struct{}

func (callbackValidator) Name() string { return "callback" }

func (callbackValidator) validate(s *scope, value any) (any, *ValidationError) {
	r := s.rule
	if cast, ok := r.Cast(); ok {
		value = castValue(cast, value)
	}
	if r.callback == nil {
		return value, nil
	}

	out, issue := r.callback(value, s.data)
	if issue == nil {
		return out, nil
	}

	kind := issue.Code
	if !kind.Valid() {
		kind = KindCallback
	}
	err := s.fail(kind, MsgCallback, nil)
	if issue.Message != "" {
		err.Message = issue.Message
	}
	return value, err
}
