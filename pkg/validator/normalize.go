package validator

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/dmitrymomot/fieldkit/pkg/cache"
	"github.com/dmitrymomot/fieldkit/pkg/sanitizer"
)

// defaultPatterns is shared by rules built without WithPatternCache.
var defaultPatterns = cache.NewPatterns(cache.DefaultPatternCapacity)

type normalizeConfig struct {
	strictFlags bool
	encoding    string
	patterns    *cache.Patterns
}

// NormalizeOption configures rule construction.
type NormalizeOption func(*normalizeConfig)

// WithStrictFlags makes unknown positional flags and option names a
// construction error instead of silently ignoring them.
func WithStrictFlags() NormalizeOption {
	return func(c *normalizeConfig) { c.strictFlags = true }
}

// WithDefaultEncoding sets the encoding of string fields that do not declare one.
func WithDefaultEncoding(label string) NormalizeOption {
	return func(c *normalizeConfig) {
		if label != "" {
			c.encoding = label
		}
	}
}

// WithPatternCache sets the cache regexp specs are compiled through.
func WithPatternCache(p *cache.Patterns) NormalizeOption {
	return func(c *normalizeConfig) {
		if p != nil {
			c.patterns = p
		}
	}
}

func newNormalizeConfig(opts []NormalizeOption) *normalizeConfig {
	cfg := &normalizeConfig{
		encoding: sanitizer.DefaultCharset,
		patterns: defaultPatterns,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// NewRule normalizes a declaration into a Rule. Every inconsistency is
// reported as a *ConfigError.
func NewRule(field string, decl Declaration, opts ...NormalizeOption) (*Rule, error) {
	return buildRule(field, decl, newNormalizeConfig(opts))
}

// MustRule is like NewRule but panics on error. It is meant for rules
// declared in code.
func MustRule(field string, decl Declaration, opts ...NormalizeOption) *Rule {
	r, err := NewRule(field, decl, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// buildRule normalizes one declaration.
func buildRule(field string, decl Declaration, cfg *normalizeConfig) (*Rule, error) {
	if strings.TrimSpace(field) == "" {
		return nil, configError(field, "", "field name is empty")
	}

	opts, unknown := splitDeclaration(decl)
	if cfg.strictFlags && len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, configError(field, unknown[0], "unknown option or flag")
	}

	r := &Rule{field: field}

	if label, ok := opts[OptLabel]; ok {
		s, ok := label.(string)
		if !ok {
			return nil, configError(field, OptLabel, "must be a string")
		}
		r.label = s
	}

	if err := r.setSpec(opts, cfg); err != nil {
		return nil, err
	}
	if err := r.setType(opts); err != nil {
		return nil, err
	}

	r.validator = validatorFor(r.typ, r.specType)
	if r.validator == nil {
		return nil, configError(field, OptType, fmt.Sprintf("no validator for type %q", r.typ))
	}

	steps := []func(options, *normalizeConfig) error{
		r.setCommon,
		r.setTypeOptions,
		r.setChildren,
	}
	for _, step := range steps {
		if err := step(opts, cfg); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// setSpec classifies the spec by shape and compiles regexp specs.
func (r *Rule) setSpec(opts options, cfg *normalizeConfig) error {
	spec, ok := opts[OptSpec]
	if !ok || spec == nil {
		r.specType = SpecNone
		return nil
	}
	r.spec = spec

	if reflect.TypeOf(spec).Kind() == reflect.Func {
		fn, err := adaptCallback(spec)
		if err != nil {
			return &ConfigError{Field: r.field, Option: OptSpec, Reason: "invalid callback", Err: err}
		}
		r.specType = SpecCallback
		r.callback = fn
		return nil
	}

	if s, ok := spec.(string); ok {
		if !isRegexpSpec(s) {
			r.specType = SpecString
			return nil
		}
		src, err := regexpSource(s)
		if err != nil {
			return &ConfigError{Field: r.field, Option: OptSpec, Reason: "invalid regexp", Err: err}
		}
		re, err := cfg.patterns.Compile(src)
		if err != nil {
			return &ConfigError{Field: r.field, Option: OptSpec, Reason: "invalid regexp", Err: err}
		}
		r.specType = SpecRegexp
		r.pattern = re
		return nil
	}

	switch reflect.TypeOf(spec).Kind() {
	case reflect.Slice, reflect.Array:
		r.specType = SpecArray
	case reflect.Map, reflect.Struct:
		r.specType = SpecObject
	default:
		r.specType = SpecString
	}
	return nil
}

// setType resolves the declared type. Callback specs and nested field groups
// may omit it and default to any.
func (r *Rule) setType(opts options) error {
	raw, ok := opts[OptType]
	if !ok || raw == nil {
		if r.specType == SpecCallback || opts.has(OptFields) {
			r.typ = TypeAny
			return nil
		}
		return configError(r.field, OptType, "type is required")
	}

	name, ok := raw.(string)
	if !ok {
		return configError(r.field, OptType, "must be a string")
	}
	t, err := ParseType(name)
	if err != nil {
		return &ConfigError{Field: r.field, Option: OptType, Reason: "unsupported type", Err: err}
	}
	r.typ = t
	return nil
}

func (r *Rule) setCommon(opts options, _ *normalizeConfig) error {
	r.required = truthy(opts[OptRequired])
	r.nullable = truthy(opts[OptNullable])

	if def, ok := opts[OptDefault]; ok && def != nil {
		r.def = def
		r.hasDefault = true
	}

	if raw, ok := opts[OptStrict]; ok {
		strict := truthy(raw)
		r.strict = &strict
	}

	if raw, ok := opts[OptDrop]; ok {
		policy, err := parseDropPolicy(raw)
		if err != nil {
			return &ConfigError{Field: r.field, Option: OptDrop, Err: err}
		}
		r.drop = policy
	}

	if raw, ok := opts[OptApply]; ok && raw != nil {
		fn, err := adaptApply(raw)
		if err != nil {
			return &ConfigError{Field: r.field, Option: OptApply, Err: err}
		}
		r.apply = fn
	}

	if raw, ok := opts[OptCast]; ok && raw != nil {
		name, _ := raw.(string)
		t, err := ParseType(name)
		if err != nil || (t != TypeInt && t != TypeFloat && t != TypeString && t != TypeBool) {
			return configError(r.field, OptCast, fmt.Sprintf("cannot cast to %v", raw))
		}
		r.cast = t
	}

	return nil
}

func (r *Rule) setTypeOptions(opts options, cfg *normalizeConfig) error {
	if r.specType == SpecCallback {
		return nil
	}

	switch r.typ {
	case TypeInt, TypeFloat, TypeNumber, TypeNumeric:
		return r.setNumberOptions(opts)
	case TypeString:
		return r.setStringOptions(opts, cfg)
	case TypeEnum:
		if r.specType != SpecArray {
			return configError(r.field, OptSpec, "enum requires a list of allowed values")
		}
		r.enum, _ = toSlice(r.spec)
		if len(r.enum) == 0 {
			return configError(r.field, OptSpec, "enum requires at least one allowed value")
		}
	case TypeDate, TypeTime, TypeDateTime:
		return r.setDateOptions()
	case TypeUnixtime:
		if raw, ok := opts[OptAccept]; ok && raw != nil {
			if list, ok := toSlice(raw); ok {
				r.timestamp.Accept = list
			} else {
				r.timestamp.Accept = []any{raw}
			}
		}
	case TypeURL:
		return r.setURLOptions()
	case TypeUUID:
		r.uuid.AllowNil = truthy(opts[OptNull])
		r.uuid.Cased = truthy(opts[OptCased])
		if raw, ok := opts[OptDashed]; ok && raw != nil {
			dashed := truthy(raw)
			r.uuid.Dashed = &dashed
		}
	case TypeJSON:
		return r.setJSONOptions()
	}
	return nil
}

func (r *Rule) setNumberOptions(opts options) error {
	n := &r.number
	n.Unsigned = truthy(opts[OptUnsigned])

	if raw, ok := opts[OptPrecision]; ok && raw != nil {
		p, ok := toInt(raw)
		if !ok || p < 0 {
			return configError(r.field, OptPrecision, "must be a non-negative integer")
		}
		n.Precision = &p
	}

	if raw, ok := opts[OptEqual]; ok {
		if !isNumber(raw) {
			if s, isStr := raw.(string); !isStr || !isNumericString(s) {
				return configError(r.field, OptEqual, "must be numeric")
			}
		}
		n.Equal = raw
		n.HasEqual = true
	}

	if raw, ok := opts[OptRange]; ok && raw != nil {
		bounds, ok := toSlice(raw)
		if !ok || len(bounds) != 2 {
			return configError(r.field, OptRange, "must be a list of two numbers")
		}
		lo, lok := toFloat64(bounds[0])
		hi, hok := toFloat64(bounds[1])
		if !lok || !hok {
			return configError(r.field, OptRange, "must be a list of two numbers")
		}
		if lo > hi {
			return configError(r.field, OptRange, "lower bound exceeds upper bound")
		}
		n.Range = &Range{Min: lo, Max: hi}
	}

	for _, key := range []string{OptMin, OptMax} {
		raw, ok := opts[key]
		if !ok || raw == nil {
			continue
		}
		f, ok := toFloat64(raw)
		if !ok {
			return configError(r.field, key, "must be numeric")
		}
		if key == OptMin {
			n.Min = &f
		} else {
			n.Max = &f
		}
	}
	if n.Min != nil && n.Max != nil && *n.Min > *n.Max {
		return configError(r.field, OptMin, "min exceeds max")
	}

	return nil
}

func (r *Rule) setStringOptions(opts options, cfg *normalizeConfig) error {
	s := &r.str

	label := cfg.encoding
	if raw, ok := opts[OptEncoding]; ok && raw != nil {
		label, _ = raw.(string)
	}
	cs, err := sanitizer.LookupCharset(label)
	if err != nil {
		return &ConfigError{Field: r.field, Option: OptEncoding, Err: err}
	}
	s.Charset = cs

	if raw, ok := opts[OptEqual]; ok {
		str, ok := toString(raw)
		if !ok {
			return configError(r.field, OptEqual, "must be a scalar")
		}
		s.Equal = &str
	}

	lengths := []struct {
		key string
		dst **int
	}{
		{OptMinLen, &s.MinLen},
		{OptMaxLen, &s.MaxLen},
		{OptLimit, &s.Limit},
	}
	for _, l := range lengths {
		raw, ok := opts[l.key]
		if !ok || raw == nil {
			continue
		}
		n, ok := toInt(raw)
		if !ok || n < 0 {
			return configError(r.field, l.key, "must be a non-negative integer")
		}
		*l.dst = &n
	}

	if raw, ok := opts[OptFixLen]; ok && raw != nil {
		if b, isBool := raw.(bool); isBool {
			if b {
				if s.Limit == nil {
					return configError(r.field, OptFixLen, "fixed length mode requires limit")
				}
				n := *s.Limit
				s.FixLen = &n
			}
		} else {
			n, ok := toInt(raw)
			if !ok || n < 0 {
				return configError(r.field, OptFixLen, "must be a non-negative integer or true")
			}
			if n > 0 {
				s.FixLen = &n
			}
		}
	}

	if s.MinLen != nil && s.MaxLen != nil && *s.MinLen > *s.MaxLen {
		return configError(r.field, OptMinLen, "minlen exceeds maxlen")
	}

	s.Quot = truthy(opts[OptQuot])

	if raw, ok := opts[OptHTML]; ok && truthy(raw) {
		if mode, _ := raw.(string); strings.EqualFold(mode, "remove") {
			s.HTML = HTMLRemove
		} else {
			s.HTML = HTMLEncode
		}
	}

	return nil
}

func (r *Rule) setDateOptions() error {
	switch r.specType {
	case SpecRegexp:
		return nil
	case SpecNone:
		switch r.typ {
		case TypeDate:
			r.date.Format = DefaultDateFormat
		case TypeTime:
			r.date.Format = DefaultTimeFormat
		default:
			r.date.Format = DefaultDateTimeFormat
		}
		r.spec = r.date.Format
		r.specType = SpecString
	case SpecString:
		format, ok := r.spec.(string)
		if !ok {
			return configError(r.field, OptSpec, "date format must be a string")
		}
		r.date.Format = format
	default:
		return configError(r.field, OptSpec, "date format must be a string")
	}

	layout, err := translateDateFormat(r.date.Format)
	if err != nil {
		return &ConfigError{Field: r.field, Option: OptSpec, Reason: "invalid date format", Err: err}
	}
	r.date.Layout = layout
	return nil
}

func (r *Rule) setURLOptions() error {
	if r.specType != SpecArray {
		return nil
	}

	list, _ := toSlice(r.spec)
	for _, item := range list {
		name, _ := item.(string)
		name = strings.ToLower(strings.TrimSpace(name))
		if !slices.Contains(URLComponents, name) {
			return configError(r.field, OptSpec, fmt.Sprintf("unknown url component %v", item))
		}
		if !slices.Contains(r.url.Components, name) {
			r.url.Components = append(r.url.Components, name)
		}
	}
	return nil
}

func (r *Rule) setJSONOptions() error {
	switch r.specType {
	case SpecNone:
		return nil
	case SpecString:
		switch s, _ := r.spec.(string); strings.ToLower(s) {
		case "array":
			r.json.Shape = JSONArray
			return nil
		case "object":
			r.json.Shape = JSONObject
			return nil
		}
	}
	return configError(r.field, OptSpec, `json spec must be "array" or "object"`)
}

// setChildren builds the rules of a nested field group.
func (r *Rule) setChildren(opts options, cfg *normalizeConfig) error {
	raw, ok := opts[OptFields]
	if !ok || raw == nil {
		return nil
	}

	entries, ok := toAnyMap(raw)
	if !ok {
		return configError(r.field, OptFields, "must be a map of field declarations")
	}

	named := stringKeyed(entries)
	r.children = make(RuleSet, len(named))
	var errs []error
	for _, k := range sortedNames(named) {
		child, err := parseEntry(r.field+"."+k, named[k], cfg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		r.children[k] = child
	}
	return errors.Join(errs...)
}

// parseEntry builds a rule from one rule set entry: a declaration map or a
// bare type name.
func parseEntry(field string, entry any, cfg *normalizeConfig) (*Rule, error) {
	switch e := entry.(type) {
	case *Rule:
		if e == nil {
			return nil, configError(field, "", "nil rule")
		}
		return e, nil
	case string:
		return buildRule(field, Declaration{OptType: e}, cfg)
	}

	decl, ok := toAnyMap(entry)
	if !ok {
		return nil, configError(field, "", fmt.Sprintf("unsupported declaration of type %T", entry))
	}
	return buildRule(field, decl, cfg)
}

// stringKeyed re-keys m by the string form of its keys.
func stringKeyed(m map[any]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[fmt.Sprint(k)] = v
	}
	return out
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
