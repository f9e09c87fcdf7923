package validator

import (
	"github.com/dmitrymomot/fieldkit/pkg/sanitizer"
)

type stringValidator struct{}

func (stringValidator) Name() string { return "string" }

func (stringValidator) validate(s *scope, value any) (any, *ValidationError) {
	str, ok := value.(string)
	if !ok {
		return value, s.typeError("string")
	}

	r := s.rule
	opts := r.str

	if opts.Equal != nil {
		if str != *opts.Equal {
			return value, s.fail(KindNotEqual, MsgNotEqual, map[string]any{"equal": *opts.Equal})
		}
		return str, nil
	}

	if r.specType == SpecRegexp && r.pattern != nil {
		if !r.pattern.MatchString(str) {
			return value, s.fail(KindNotMatch, MsgNotMatch, nil)
		}
	} else if err := checkLength(s, opts, str); err != nil {
		return value, err
	}

	return transformString(opts, str), nil
}

// checkLength enforces fixlen, minlen and maxlen in that order.
func checkLength(s *scope, opts StringOptions, str string) *ValidationError {
	if opts.FixLen == nil && opts.MinLen == nil && opts.MaxLen == nil {
		return nil
	}

	n := opts.Charset.Len(str)
	switch {
	case opts.FixLen != nil && n != *opts.FixLen:
		return s.fail(KindLength, MsgLength, map[string]any{"length": *opts.FixLen})
	case opts.MinLen != nil && n < *opts.MinLen:
		return s.fail(KindMinLength, MsgMinLength, map[string]any{"min": *opts.MinLen})
	case opts.MaxLen != nil && n > *opts.MaxLen:
		return s.fail(KindMaxLength, MsgMaxLength, map[string]any{"max": *opts.MaxLen})
	}
	return nil
}

// transformString applies limit, quote escaping and HTML handling in that order.
func transformString(opts StringOptions, str string) string {
	if opts.Limit != nil {
		str = opts.Charset.Truncate(str, *opts.Limit)
	}
	if opts.Quot {
		str = sanitizer.EscapeQuotes(str)
	}
	switch opts.HTML {
	case HTMLRemove:
		str = sanitizer.StripTags(str)
	case HTMLEncode:
		str = sanitizer.EscapeHTML(str)
	}
	return str
}
