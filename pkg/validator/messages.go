package validator

import (
	"fmt"
	"maps"
	"strings"
)

// Message keys used by the built-in validators.
const (
	MsgRequired      = "validation.required"
	MsgType          = "validation.type"
	MsgLength        = "validation.length"
	MsgMinLength     = "validation.min_length"
	MsgMaxLength     = "validation.max_length"
	MsgEmail         = "validation.email"
	MsgEnum          = "validation.enum"
	MsgNotEqual      = "validation.not_equal"
	MsgNotValid      = "validation.not_valid"
	MsgNotMatch      = "validation.not_match"
	MsgMinValue      = "validation.min_value"
	MsgMaxValue      = "validation.max_value"
	MsgBetween       = "validation.between"
	MsgDate          = "validation.date"
	MsgURLComponents = "validation.url_components"
	MsgCallback      = "validation.callback"
)

// Messages maps message keys to templates. Templates reference values with
// {name} placeholders; {label} is always available.
type Messages map[string]string

// DefaultMessages returns a copy of the built-in English templates.
func DefaultMessages() Messages {
	return maps.Clone(defaultMessages)
}

var defaultMessages = Messages{
	MsgRequired:      "{label} is required",
	MsgType:          "{label} must be of type {type}",
	MsgLength:        "{label} must be exactly {length} characters long",
	MsgMinLength:     "{label} must be at least {min} characters long",
	MsgMaxLength:     "{label} must be at most {max} characters long",
	MsgEmail:         "{label} must be a valid email address",
	MsgEnum:          "{label} must be one of: {options}",
	MsgNotEqual:      "{label} must be equal to {equal}",
	MsgNotValid:      "{label} is not valid",
	MsgNotMatch:      "{label} does not match the required pattern",
	MsgMinValue:      "{label} must be at least {min}",
	MsgMaxValue:      "{label} must be at most {max}",
	MsgBetween:       "{label} must be between {min} and {max}",
	MsgDate:          "{label} must be a valid date in format {format}",
	MsgURLComponents: "{label} is missing URL components: {missing}",
	MsgCallback:      "{label} is not valid",
}

// render fills a template with values. Unknown placeholders are left as is.
func (m Messages) render(key string, values map[string]any) string {
	tpl, ok := m[key]
	if !ok {
		tpl, ok = defaultMessages[key]
	}
	if !ok {
		tpl = defaultMessages[MsgNotValid]
	}

	if !strings.Contains(tpl, "{") {
		return tpl
	}

	pairs := make([]string, 0, len(values)*2)
	for name, v := range values {
		pairs = append(pairs, "{"+name+"}", formatValue(v))
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = formatValue(item)
		}
		return strings.Join(parts, ", ")
	case fmt.Stringer:
		return val.String()
	}
	if s, ok := toString(v); ok && v != nil {
		if _, isBool := v.(bool); !isBool {
			return s
		}
	}
	return fmt.Sprint(v)
}
