package binder

import (
	"fmt"
	"net/http"
)

// Path returns a Source reading the named path parameters through the
// router's extractor. Parameters the extractor reports as empty are left
// out so that required checks see them as missing.
//
// Example with chi router:
//
//	r.Get("/users/{id}/posts/{slug}", func(w http.ResponseWriter, req *http.Request) {
//		data, err := binder.Path(chi.URLParam, "id", "slug")(req)
//		// ...
//	})
//
// Example with gorilla/mux:
//
//	muxExtractor := func(r *http.Request, name string) string {
//		return mux.Vars(r)[name]
//	}
//	data, err := binder.Path(muxExtractor, "id")(req)
func Path(extractor func(r *http.Request, name string) string, names ...string) Source {
	return func(r *http.Request) (map[string]any, error) {
		if extractor == nil {
			return nil, fmt.Errorf("%w: extractor function is nil", ErrFailedToParsePath)
		}

		data := make(map[string]any, len(names))
		for _, name := range names {
			if value := extractor(r, name); value != "" {
				data[name] = value
			}
		}
		return data, nil
	}
}
