package validator

import (
	"fmt"
	"reflect"
	"strings"
)

// Declaration is the loosely typed form of a rule as written by hand or
// decoded from YAML or JSON:
//
//	validator.Declaration{"type": "string", "maxlen": 64, 0: "required"}
//
// Integer keys, and string keys made only of digits, hold positional flags.
// A "flags" key may hold a list of flag names instead.
type Declaration map[any]any

// Option names understood by the normalizer.
const (
	OptType      = "type"
	OptSpec      = "spec"
	OptSpecType  = "specType"
	OptLabel     = "label"
	OptMin       = "min"
	OptMax       = "max"
	OptRange     = "range"
	OptPrecision = "precision"
	OptUnsigned  = "unsigned"
	OptEqual     = "equal"
	OptFixLen    = "fixlen"
	OptMinLen    = "minlen"
	OptMaxLen    = "maxlen"
	OptLimit     = "limit"
	OptEncoding  = "encoding"
	OptQuot      = "quot"
	OptHTML      = "html"
	OptDashed    = "dashed"
	OptCased     = "cased"
	OptNull      = "null"
	OptCast      = "cast"
	OptStrict    = "strict"
	OptAccept    = "accept"
	OptRequired  = "required"
	OptNullable  = "nullable"
	OptDefault   = "default"
	OptDrop      = "drop"
	OptApply     = "apply"
	OptFields    = "fields"
	OptFlags     = "flags"
)

var knownOptions = map[string]bool{
	OptType: true, OptSpec: true, OptSpecType: true, OptLabel: true,
	OptMin: true, OptMax: true, OptRange: true, OptPrecision: true, OptUnsigned: true, OptEqual: true,
	OptFixLen: true, OptMinLen: true, OptMaxLen: true, OptLimit: true, OptEncoding: true,
	OptQuot: true, OptHTML: true, OptDashed: true, OptCased: true, OptNull: true,
	OptCast: true, OptStrict: true, OptAccept: true, OptRequired: true, OptNullable: true,
	OptDefault: true, OptDrop: true, OptApply: true, OptFields: true, OptFlags: true,
}

// positionalFlags may be written without a value; they mean "true".
var positionalFlags = map[string]bool{
	OptRequired: true,
	OptNullable: true,
	OptUnsigned: true,
	OptStrict:   true,
	OptDrop:     true,
	OptNull:     true,
	OptDashed:   true,
	OptCased:    true,
	OptQuot:     true,
}

// options is a declaration split into named options.
type options map[string]any

func (o options) has(key string) bool {
	_, ok := o[key]
	return ok
}

// splitDeclaration separates named options from positional flags. Unknown
// flags and option names are collected so the caller can decide whether
// they are fatal.
func splitDeclaration(decl Declaration) (opts options, unknown []string) {
	opts = make(options, len(decl))
	var flags []any

	for k, v := range decl {
		switch key := k.(type) {
		case string:
			switch {
			case allDigits(key):
				flags = append(flags, v)
			case key == OptFlags:
				if list, ok := toSlice(v); ok {
					flags = append(flags, list...)
				} else {
					flags = append(flags, v)
				}
			default:
				if !knownOptions[key] {
					unknown = append(unknown, key)
					continue
				}
				opts[key] = v
			}
		default:
			if k != nil && isIntKind(reflect.TypeOf(k).Kind()) {
				flags = append(flags, v)
				continue
			}
			unknown = append(unknown, fmt.Sprint(k))
		}
	}

	for _, f := range flags {
		name, ok := f.(string)
		name = strings.TrimSpace(name)
		if !ok || !positionalFlags[name] {
			unknown = append(unknown, fmt.Sprint(f))
			continue
		}
		// An explicit named option wins over a positional flag.
		if !opts.has(name) {
			opts[name] = true
		}
	}

	return opts, unknown
}
