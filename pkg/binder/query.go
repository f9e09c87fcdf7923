package binder

import (
	"fmt"
	"net/http"
	"net/url"
)

// Query binds URL query parameters. Repeated parameters, and names ending
// in "[]", become lists:
//
//	/search?q=go&tags=web&tags=api  ->  {"q": "go", "tags": ["web", "api"]}
func Query(r *http.Request) (map[string]any, error) {
	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseQuery, err)
	}
	return fromValues(values), nil
}
