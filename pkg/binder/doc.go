// Package binder turns an HTTP request into the data container consumed by
// the validator package.
//
// Every source returns a map[string]any keyed by field name. Single values
// are strings, repeated values are []any, and decoded JSON keeps the shape
// produced by the decoder. The map is meant to be validated, and sanitized,
// in place:
//
//	r := chi.NewRouter()
//	r.Post("/users/{id}", func(w http.ResponseWriter, req *http.Request) {
//	    data, err := binder.Merge(req,
//	        binder.Query,
//	        binder.JSON,
//	        binder.Path(chi.URLParam, "id"),
//	    )
//	    if err != nil {
//	        http.Error(w, err.Error(), http.StatusBadRequest)
//	        return
//	    }
//	    if err := validator.Validate(data, rules); err != nil {
//	        // report validator.ExtractValidationErrors(err)
//	    }
//	})
//
// # Sources
//
//   - JSON: a JSON object request body (application/json)
//   - Form: urlencoded or multipart form values and uploaded files
//   - Query: URL query parameters
//   - Path(extractor, names...): router path parameters
//
// A parameter name ending in "[]" is always bound as a list under the name
// without the suffix. Uploaded files are bound as *multipart.FileHeader, or
// []any of them when several share a name; their filenames are reduced to a
// safe base name.
//
// # Error Handling
//
//   - ErrUnsupportedMediaType: content type does not match the source
//   - ErrMissingContentType: Content-Type header is absent
//   - ErrFailedToParseJSON: body is not a single JSON object
//   - ErrFailedToParseForm: form data could not be parsed
//   - ErrFailedToParseQuery: query string could not be parsed
//   - ErrFailedToParsePath: no extractor was given
package binder
