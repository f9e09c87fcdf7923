package validator

import (
	"strconv"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
)

// Check validates data against rules in place. Sanitized values are written
// back, dropped fields removed, and failures collected by field path. Fields
// are processed in name order; nested fields run only when their parent
// passed.
func (v *Validator) Check(data map[string]any, rules RuleSet) (bool, ValidationErrors) {
	var errs ValidationErrors
	for _, name := range rules.Names() {
		v.run(rules[name], name, data, name, &errs)
	}

	if !errs.IsEmpty() {
		v.logger.Debug("validation failed", logger.Count("errors", len(errs)))
	}
	return errs.IsEmpty(), errs
}

// Validate is Check returning the failures as an error. The error is a
// ValidationErrors and matches ErrValidationFailed.
func (v *Validator) Validate(data map[string]any, rules RuleSet) error {
	if ok, errs := v.Check(data, rules); !ok {
		return errs
	}
	return nil
}

// run evaluates r for the field stored under key in container and reports
// it as path.
func (v *Validator) run(r *Rule, path string, container map[string]any, key string, errs *ValidationErrors) {
	value, _ := lookupPath(container, key)
	out := v.evaluate(r, path, value, container)

	switch {
	case out.Dropped:
		deletePath(container, key)
		return
	case out.Err != nil:
		errs.Add(*out.Err)
		return
	}

	if !setPath(container, key, out.Value) {
		v.logger.Debug("field not written back", logger.Field(path))
	}

	if len(r.children) > 0 && out.Value != nil {
		v.runChildren(r, path, out.Value, errs)
	}
}

// runChildren applies nested rules to a map value, or to every element of a
// list value.
func (v *Validator) runChildren(r *Rule, path string, value any, errs *ValidationErrors) {
	names := r.children.Names()

	if m, ok := value.(map[string]any); ok {
		for _, name := range names {
			v.run(r.children[name], path+"."+name, m, name, errs)
		}
		return
	}

	items, ok := value.([]any)
	if !ok {
		return
	}
	for i, item := range items {
		itemPath := path + "." + strconv.Itoa(i)
		m, ok := item.(map[string]any)
		if !ok {
			s := &scope{rule: r, path: itemPath, messages: v.messages, now: v.now}
			errs.Add(*s.typeError("object"))
			continue
		}
		for _, name := range names {
			v.run(r.children[name], itemPath+"."+name, m, name, errs)
		}
	}
}

var defaultValidator = New()

// Check validates data with a Validator that uses default options.
func Check(data map[string]any, rules RuleSet) (bool, ValidationErrors) {
	return defaultValidator.Check(data, rules)
}

// Validate validates data with a Validator that uses default options.
func Validate(data map[string]any, rules RuleSet) error {
	return defaultValidator.Validate(data, rules)
}
