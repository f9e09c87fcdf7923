// Package validator checks and sanitizes fields of loosely typed input data
// against declarative rules.
//
// A rule is declared as a map of options and normalized once into an
// immutable Rule. Declarations usually come from YAML or JSON, so the
// option bag is forgiving: positional flags, aliases and numeric strings are
// all accepted, while inconsistent declarations fail at construction with a
// *ConfigError.
//
//	rules, err := validator.ParseRuleSet(map[string]any{
//	    "email":  map[string]any{"type": "email", "flags": []any{"required"}},
//	    "age":    map[string]any{"type": "int", "range": []any{18, 130}},
//	    "status": map[string]any{"type": "enum", "spec": []any{"active", "blocked"}},
//	    "bio":    map[string]any{"type": "string", "limit": 500, "html": "remove"},
//	    "born":   map[string]any{"type": "date"}, // Y-m-d
//	})
//
// # Evaluation
//
// Each field goes through the same phases in order:
//
//  1. apply: an optional transform replaces the value.
//  2. drop: a matching drop policy removes the field; no error is reported.
//  3. blank: nil and "" become nil (nullable) or the declared default.
//  4. required: a value that is still blank is accepted as nil, or fails with
//     REQUIRED when the field is required.
//  5. type: the validator bound to the rule checks and sanitizes the value.
//
// Validator.Check runs every rule of a RuleSet against a data map, writes
// sanitized values back, removes dropped fields and returns the failures as
// ValidationErrors keyed by field path. Validator.Validate returns the same
// failures as an error.
//
// # Types
//
// The set of types is closed: int, float, number, numeric, string, bool,
// enum, email, date, time, datetime, unixtime, url, uuid, json, array and
// any. Each has exactly one TypeValidator, bound when the rule is built; a
// callback spec replaces it with the callback validator.
//
// Specs starting with "~" are regular expressions written as "~pattern~flags".
// Date formats use letter tokens (Y, m, d, H, i, s and friends) and are
// checked by a parse and format round trip, so "2023-02-30" is rejected.
//
// # Errors
//
// Every failure carries a stable ErrorKind (REQUIRED, TYPE, NOT_VALID, ...)
// and a message rendered from a template. Templates can be replaced with
// WithMessages; the translation key and values are kept on the
// ValidationError for callers that localize messages themselves.
package validator
