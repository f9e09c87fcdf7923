package validator

import (
	"net/url"
	"strings"

	playground "github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// formats checks address shapes with the go-playground tag validators.
// *playground.Validate is safe for concurrent use.
var formats = playground.New()

type emailValidator struct{}

func (emailValidator) Name() string { return "email" }

func (emailValidator) validate(s *scope, value any) (any, *ValidationError) {
	str, ok := value.(string)
	if !ok {
		return value, s.typeError("email")
	}

	r := s.rule
	if r.specType == SpecRegexp && r.pattern != nil {
		if !r.pattern.MatchString(str) {
			return value, s.fail(KindEmail, MsgEmail, nil)
		}
		return str, nil
	}

	if formats.Var(str, "email") != nil {
		return value, s.fail(KindEmail, MsgEmail, nil)
	}
	return str, nil
}

// URLComponents lists the component names a url spec may require.
var URLComponents = []string{"scheme", "host", "port", "user", "pass", "path", "query", "fragment"}

type urlValidator struct{}

func (urlValidator) Name() string { return "url" }

func (urlValidator) validate(s *scope, value any) (any, *ValidationError) {
	str, ok := value.(string)
	if !ok {
		return value, s.typeError("url")
	}

	r := s.rule
	switch {
	case r.specType == SpecRegexp && r.pattern != nil:
		if !r.pattern.MatchString(str) {
			return value, s.fail(KindNotMatch, MsgNotMatch, nil)
		}
	case len(r.url.Components) > 0:
		u, err := url.Parse(str)
		if err != nil {
			return value, s.notValid()
		}
		present := urlParts(u)
		var missing []string
		for _, c := range r.url.Components {
			if present[c] == "" {
				missing = append(missing, c)
			}
		}
		if len(missing) > 0 {
			return value, s.fail(KindNotValid, MsgURLComponents, map[string]any{"missing": missing})
		}
	default:
		if formats.Var(str, "url") != nil {
			return value, s.notValid()
		}
	}

	return str, nil
}

// urlParts returns the non-empty components of u keyed by component name.
func urlParts(u *url.URL) map[string]string {
	parts := map[string]string{
		"scheme":   u.Scheme,
		"host":     u.Hostname(),
		"port":     u.Port(),
		"path":     u.Path,
		"query":    u.RawQuery,
		"fragment": u.Fragment,
	}
	if u.User != nil {
		parts["user"] = u.User.Username()
		parts["pass"], _ = u.User.Password()
	}
	return parts
}

type jsonValidator struct{}

func (jsonValidator) Name() string { return "json" }

func (jsonValidator) validate(s *scope, value any) (any, *ValidationError) {
	str, ok := value.(string)
	if !ok {
		return value, s.typeError("json")
	}

	trimmed := strings.TrimSpace(str)
	if trimmed == "" {
		return value, s.notValid()
	}

	switch s.rule.json.Shape {
	case JSONArray:
		if trimmed[0] != '[' || trimmed[len(trimmed)-1] != ']' {
			return value, s.notValid()
		}
	case JSONObject:
		if trimmed[0] != '{' || trimmed[len(trimmed)-1] != '}' {
			return value, s.notValid()
		}
	}

	if !json.Valid([]byte(trimmed)) {
		return value, s.notValid()
	}
	return str, nil
}
