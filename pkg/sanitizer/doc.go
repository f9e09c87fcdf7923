// Package sanitizer provides the value transforms applied by the validator
// after a field has passed its checks.
//
// The helpers fall into two groups:
//
//   - Strings – encoding-aware length and truncation (Charset), quote and
//     HTML escaping, tag stripping.
//
//   - Numeric – absolute value and decimal rounding.
//
//   - Named transforms – small string steps (trim, lower, collapse, ...)
//     resolved by name so declarative rule files can reference them.
//
// Length is always measured in characters of a named charset, never in bytes.
// UTF-8 is the default; any WHATWG label resolved by golang.org/x/text is
// accepted:
//
//	cs, err := sanitizer.LookupCharset("windows-1251")
//	if err != nil {
//	    // unknown label
//	}
//	n := cs.Len(raw)
//	short := cs.Truncate(raw, 10)
//
// Escaping helpers never touch ampersands, so running them twice yields the
// same result as running them once:
//
//	sanitizer.EscapeHTML(`<b>"hi"</b>`) // &lt;b&gt;&quot;hi&quot;&lt;/b&gt;
//
// Named transforms chain with "|":
//
//	clean, err := sanitizer.LookupTransform("trim|collapse|lower")
//	clean("  Hello   World ") // "hello world"
//
// # Error handling
//
// LookupCharset returns ErrUnknownCharset and LookupTransform returns
// ErrUnknownTransform. Transforms never fail: undecodable input falls back to
// byte semantics.
//
// # Concurrency
//
// The package holds no mutable state and is safe for concurrent use.
package sanitizer
