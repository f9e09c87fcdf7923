package validator

import (
	"regexp"
	"slices"

	"github.com/dmitrymomot/fieldkit/pkg/sanitizer"
)

// Rule is the compiled specification of one field. Rules are immutable once
// built and safe for concurrent use.
type Rule struct {
	field string
	label string

	typ       Type
	spec      any
	specType  SpecType
	pattern   *regexp.Regexp
	callback  CallbackFunc
	validator TypeValidator

	required   bool
	nullable   bool
	def        any
	hasDefault bool
	drop       dropPolicy
	apply      func(any) any
	cast       Type
	strict     *bool

	number    NumberOptions
	str       StringOptions
	enum      []any
	date      DateOptions
	timestamp TimestampOptions
	url       URLOptions
	uuid      UUIDOptions
	json      JSONOptions

	children RuleSet
}

// Range is an inclusive numeric interval.
type Range struct {
	Min float64
	Max float64
}

// NumberOptions are the knobs of int, float, number and numeric fields.
type NumberOptions struct {
	Unsigned  bool
	Precision *int
	Min       *float64
	Max       *float64
	Range     *Range
	Equal     any
	HasEqual  bool
}

// HTMLMode selects how markup in string values is handled.
type HTMLMode uint8

const (
	HTMLKeep HTMLMode = iota
	HTMLRemove
	HTMLEncode
)

// StringOptions are the knobs of string fields. Lengths are measured in
// characters of Charset.
type StringOptions struct {
	Equal   *string
	FixLen  *int
	MinLen  *int
	MaxLen  *int
	Limit   *int
	Charset sanitizer.Charset
	Quot    bool
	HTML    HTMLMode
}

// DateOptions hold the format of date, time and datetime fields as written in
// the declaration and as a Go layout.
type DateOptions struct {
	Format string
	Layout string
}

// TimestampOptions list literal values that are accepted without the
// current-era check.
type TimestampOptions struct {
	Accept []any
}

// URLOptions list the components a URL must contain.
type URLOptions struct {
	Components []string
}

// UUIDOptions control the accepted UUID forms. A nil Dashed accepts both
// dashed and undashed forms.
type UUIDOptions struct {
	AllowNil bool
	Dashed   *bool
	Cased    bool
}

// JSONShape is the required outer shape of a JSON document.
type JSONShape uint8

const (
	JSONAny JSONShape = iota
	JSONArray
	JSONObject
)

// JSONOptions are the knobs of json fields.
type JSONOptions struct {
	Shape JSONShape
}

// Field returns the dotted field name the rule was declared for.
func (r *Rule) Field() string { return r.field }

// Label returns the display name used in messages.
func (r *Rule) Label() string {
	if r.label != "" {
		return r.label
	}
	return r.field
}

// Type returns the normalized field type.
func (r *Rule) Type() Type { return r.typ }

// Spec returns the declared spec as given.
func (r *Rule) Spec() any { return r.spec }

// SpecType reports how Spec is interpreted.
func (r *Rule) SpecType() SpecType { return r.specType }

// Pattern returns the compiled regexp spec, or nil.
func (r *Rule) Pattern() *regexp.Regexp { return r.pattern }

// Required reports whether a blank value fails.
func (r *Rule) Required() bool { return r.required }

// Nullable reports whether blank values become nil.
func (r *Rule) Nullable() bool { return r.nullable }

// Default returns the declared default value, if any.
func (r *Rule) Default() (any, bool) { return r.def, r.hasDefault }

// Cast returns the type values are coerced to before enum and callback checks.
func (r *Rule) Cast() (Type, bool) { return r.cast, r.cast != typeInvalid }

// NumberOptions returns the options of int, float and number fields.
func (r *Rule) NumberOptions() NumberOptions { return r.number }

// StringOptions returns the options of string fields.
func (r *Rule) StringOptions() StringOptions { return r.str }

// DateOptions returns the options of date, time and datetime fields.
func (r *Rule) DateOptions() DateOptions { return r.date }

// TimestampOptions returns the options of unixtime fields.
func (r *Rule) TimestampOptions() TimestampOptions { return r.timestamp }

// URLOptions returns the options of url fields.
func (r *Rule) URLOptions() URLOptions { return r.url }

// UUIDOptions returns the options of uuid fields.
func (r *Rule) UUIDOptions() UUIDOptions { return r.uuid }

// JSONOptions returns the options of json fields.
func (r *Rule) JSONOptions() JSONOptions { return r.json }

// Enum returns a copy of the allowed values of an enum field.
func (r *Rule) Enum() []any { return slices.Clone(r.enum) }

// Children returns the rules of nested fields.
func (r *Rule) Children() RuleSet { return r.children }

// strictOr returns the strict flag or def when it was not declared.
func (r *Rule) strictOr(def bool) bool {
	if r.strict == nil {
		return def
	}
	return *r.strict
}
