package sanitizer

import "errors"

var (
	// ErrUnknownCharset is returned when an encoding label cannot be resolved.
	ErrUnknownCharset = errors.New("unknown charset")

	// ErrUnknownTransform is returned by LookupTransform for unregistered names.
	ErrUnknownTransform = errors.New("unknown transform")
)
