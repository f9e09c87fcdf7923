package validator

// Outcome is the result of evaluating one field.
//
// A dropped field never carries an error. When Err is nil, Value is the
// sanitized value to write back.
type Outcome struct {
	Value   any
	Dropped bool
	Err     *ValidationError

	// returned is set when evaluation stopped at the blank check: true when
	// the blank value was accepted, false when it was rejected as required.
	returned *bool
}

// Returned reports whether evaluation short-circuited on a blank value, and
// if so whether the value was accepted.
func (o Outcome) Returned() (accepted, ok bool) {
	if o.returned == nil {
		return false, false
	}
	return *o.returned, true
}

// Passed reports whether the field produced no error. Dropped fields pass.
func (o Outcome) Passed() bool {
	return o.Err == nil
}

func dropped() Outcome {
	return Outcome{Dropped: true}
}

func accepted(value any) Outcome {
	ok := true
	return Outcome{Value: value, returned: &ok}
}

func rejectedBlank(value any, err *ValidationError) Outcome {
	ok := false
	return Outcome{Value: value, Err: err, returned: &ok}
}

func sanitized(value any) Outcome {
	return Outcome{Value: value}
}

func failed(value any, err *ValidationError) Outcome {
	return Outcome{Value: value, Err: err}
}
