package binder

import (
	"maps"
	"net/http"
	"strings"
)

// Source extracts one kind of request data.
type Source func(r *http.Request) (map[string]any, error)

// Merge runs the sources in order and combines their results. When two
// sources produce the same key the later one wins.
func Merge(r *http.Request, sources ...Source) (map[string]any, error) {
	data := make(map[string]any)
	for _, src := range sources {
		if src == nil {
			continue
		}
		part, err := src(r)
		if err != nil {
			return nil, err
		}
		maps.Copy(data, part)
	}
	return data, nil
}

// mediaType returns the Content-Type without parameters.
func mediaType(r *http.Request) string {
	contentType := r.Header.Get("Content-Type")
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = contentType[:idx]
	}
	return strings.ToLower(strings.TrimSpace(contentType))
}

// fromValues converts multi-valued parameters to the data container form.
func fromValues(values map[string][]string) map[string]any {
	data := make(map[string]any, len(values))
	for key, vals := range values {
		name, isList := strings.CutSuffix(key, "[]")
		if name == "" {
			continue
		}
		if !isList && len(vals) == 1 {
			data[name] = vals[0]
			continue
		}
		list := make([]any, 0, len(vals))
		for _, v := range vals {
			list = append(list, v)
		}
		data[name] = list
	}
	return data
}
