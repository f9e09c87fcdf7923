package validator

type enumValidator struct{}

func (enumValidator) Name() string { return "enum" }

func (enumValidator) validate(s *scope, value any) (any, *ValidationError) {
	r := s.rule
	if cast, ok := r.Cast(); ok {
		value = castValue(cast, value)
	}

	strict := r.strictOr(true)
	for _, option := range r.enum {
		if strict && strictEqual(value, option) {
			return value, nil
		}
		if !strict && looseEqual(value, option) {
			return value, nil
		}
	}

	return value, s.fail(KindEnum, MsgEnum, map[string]any{"options": r.enum})
}

// strictEqual compares kind and value. All Go numeric kinds count as one kind
// so that decoded JSON numbers match integer options.
func strictEqual(a, b any) bool {
	if isNumber(a) && isNumber(b) {
		fa, _ := toFloat64(a)
		fb, _ := toFloat64(b)
		return fa == fb
	}
	switch av := a.(type) {
	case nil:
		return b == nil
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	}
	return false
}

// looseEqual compares numerically when both sides are numeric, by truthiness
// when either side is a bool, and by string form otherwise.
func looseEqual(a, b any) bool {
	if _, ok := a.(bool); ok {
		return truthy(a) == truthy(b)
	}
	if _, ok := b.(bool); ok {
		return truthy(a) == truthy(b)
	}

	fa, aok := toFloat64(a)
	fb, bok := toFloat64(b)
	if aok && bok {
		return fa == fb
	}

	as, aok := toString(a)
	bs, bok := toString(b)
	return aok && bok && as == bs && !isCollection(a) && !isCollection(b)
}

type boolValidator struct{}

func (boolValidator) Name() string { return "bool" }

func (boolValidator) validate(s *scope, value any) (any, *ValidationError) {
	if _, ok := value.(bool); !ok {
		return value, s.typeError("bool")
	}
	return value, nil
}
