package validator

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// RuleSet maps field names to rules.
type RuleSet map[string]*Rule

// Names returns the field names in sorted order.
func (rs RuleSet) Names() []string {
	return sortedNames(rs)
}

// ParseRuleSet builds a RuleSet from declarations keyed by field name. An
// entry is a declaration map or a bare type name:
//
//	validator.ParseRuleSet(map[string]any{
//	    "email": map[string]any{"type": "email", "flags": []any{"required"}},
//	    "note":  "string",
//	})
//
// All invalid entries are reported together.
func ParseRuleSet(decls map[string]any, opts ...NormalizeOption) (RuleSet, error) {
	cfg := newNormalizeConfig(opts)

	rules := make(RuleSet, len(decls))
	var errs []error
	for _, name := range sortedNames(decls) {
		r, err := parseEntry(name, decls[name], cfg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rules[name] = r
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return rules, nil
}

// MustParseRuleSet is like ParseRuleSet but panics on error.
func MustParseRuleSet(decls map[string]any, opts ...NormalizeOption) RuleSet {
	rules, err := ParseRuleSet(decls, opts...)
	if err != nil {
		panic(err)
	}
	return rules
}

// ParseRuleSetYAML decodes a YAML document of declarations.
func ParseRuleSetYAML(src []byte, opts ...NormalizeOption) (RuleSet, error) {
	var decls map[string]any
	if err := yaml.Unmarshal(src, &decls); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %w", ErrInvalidRule, err)
	}
	return ParseRuleSet(decls, opts...)
}

// ParseRuleSetJSON decodes a JSON object of declarations.
func ParseRuleSetJSON(src []byte, opts ...NormalizeOption) (RuleSet, error) {
	var decls map[string]any
	if err := json.Unmarshal(src, &decls); err != nil {
		return nil, fmt.Errorf("%w: decode json: %w", ErrInvalidRule, err)
	}
	return ParseRuleSet(decls, opts...)
}
