package sanitizer

import (
	"fmt"
	"strings"
)

// Transform is a single string sanitization step.
type Transform func(string) string

// Chain builds a transform running the given steps left to right.
func Chain(steps ...Transform) Transform {
	return func(s string) string {
		for _, step := range steps {
			s = step(s)
		}
		return s
	}
}

var transforms = map[string]Transform{
	"trim":          Trim,
	"lower":         strings.ToLower,
	"upper":         strings.ToUpper,
	"collapse":      CollapseSpaces,
	"strip_tags":    StripTags,
	"escape_html":   EscapeHTML,
	"escape_quotes": EscapeQuotes,
}

// LookupTransform resolves a transform by name. Several names joined with
// "|" are chained in order, so rule files can say "trim|lower".
func LookupTransform(name string) (Transform, error) {
	parts := strings.Split(name, "|")
	steps := make([]Transform, 0, len(parts))
	for _, part := range parts {
		step, ok := transforms[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTransform, part)
		}
		steps = append(steps, step)
	}
	if len(steps) == 1 {
		return steps[0], nil
	}
	return Chain(steps...), nil
}

// TransformNames returns the names accepted by LookupTransform.
func TransformNames() []string {
	return []string{"collapse", "escape_html", "escape_quotes", "lower", "strip_tags", "trim", "upper"}
}
