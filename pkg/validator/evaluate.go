package validator

import (
	"log/slog"
	"maps"
	"time"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
)

// Validator evaluates fields against rules. It holds no per-call state and
// is safe for concurrent use; only the data maps passed in are mutated.
type Validator struct {
	logger   *slog.Logger
	now      func() time.Time
	messages Messages
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the logger used for debug records of drops, blank
// acceptance and field failures.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithClock replaces time.Now for the unixtime current-era check.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		if now != nil {
			v.now = now
		}
	}
}

// WithMessages overrides message templates by key.
func WithMessages(m Messages) Option {
	return func(v *Validator) {
		maps.Copy(v.messages, m)
	}
}

// New creates a Validator. Without WithLogger nothing is logged.
func New(opts ...Option) *Validator {
	v := &Validator{
		logger:   logger.Discard(),
		now:      time.Now,
		messages: DefaultMessages(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.With(logger.Component("validator"))
	return v
}

// Evaluate runs one field through apply, drop, blank and required handling,
// then the type validator. data is the container of the field and is passed
// to callbacks; Evaluate does not modify it.
func (v *Validator) Evaluate(r *Rule, value any, data map[string]any) Outcome {
	return v.evaluate(r, r.Field(), value, data)
}

// Field evaluates the rule against the value stored at its path in data and
// writes the outcome back: sanitized values replace the input and dropped
// fields are deleted. Failed fields are left as they were, and so is data
// when a scalar or a short list already sits on the path.
func (v *Validator) Field(r *Rule, data map[string]any) Outcome {
	value, _ := lookupPath(data, r.Field())
	out := v.evaluate(r, r.Field(), value, data)
	switch {
	case out.Dropped:
		deletePath(data, r.Field())
	case out.Err == nil:
		if !setPath(data, r.Field(), out.Value) {
			v.logger.Debug("field not written back", logger.Field(r.Field()))
		}
	}
	return out
}

func (v *Validator) evaluate(r *Rule, path string, value any, data map[string]any) Outcome {
	if r.apply != nil {
		value = r.apply(value)
	}

	if r.drop.matches(value) {
		v.logger.Debug("field dropped", logger.Field(path))
		return dropped()
	}

	if isBlank(value) {
		if r.nullable {
			value = nil
		}
		if r.hasDefault {
			value = r.def
		}
	}

	s := &scope{rule: r, path: path, data: data, messages: v.messages, now: v.now}

	if isBlank(value) {
		if !r.required {
			v.logger.Debug("blank field accepted", logger.Field(path))
			return accepted(nil)
		}
		err := s.fail(KindRequired, MsgRequired, nil)
		v.logFailure(r, err)
		return rejectedBlank(value, err)
	}

	tv := Dispatch(r)
	if tv == nil {
		return sanitized(value)
	}

	out, err := tv.validate(s, value)
	if err != nil {
		v.logFailure(r, err)
		return failed(value, err)
	}
	return sanitized(out)
}

func (v *Validator) logFailure(r *Rule, err *ValidationError) {
	v.logger.Debug("field failed validation",
		logger.Field(err.Field),
		logger.Code(err.Code),
		logger.RuleType(r.typ),
	)
}
