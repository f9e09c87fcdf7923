package binder

import (
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20 // 10 MB

// Form binds application/x-www-form-urlencoded and multipart/form-data
// request bodies. Values follow the same rules as Query. Uploaded files are
// added as *multipart.FileHeader, or as a list when a name repeats; a value
// and a file with the same name resolve to the file.
func Form(r *http.Request) (map[string]any, error) {
	var (
		values map[string][]string
		files  map[string][]*multipart.FileHeader
	)

	switch mt := mediaType(r); {
	case mt == "":
		return nil, fmt.Errorf("%w: missing content-type header, expected application/x-www-form-urlencoded or multipart/form-data", ErrMissingContentType)

	case mt == "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
		}
		values = r.PostForm

	case mt == "multipart/form-data":
		_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil {
			return nil, fmt.Errorf("%w: malformed content type with boundary", ErrFailedToParseForm)
		}
		if !validBoundary(params["boundary"]) {
			return nil, fmt.Errorf("%w: invalid boundary parameter", ErrFailedToParseForm)
		}

		// Request size limits are left to the server or middleware.
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
		}
		if r.MultipartForm != nil {
			values = r.MultipartForm.Value
			files = r.MultipartForm.File
		}

	default:
		return nil, fmt.Errorf("%w: got %s, expected application/x-www-form-urlencoded or multipart/form-data", ErrUnsupportedMediaType, mt)
	}

	data := fromValues(values)
	for key, headers := range files {
		name, isList := strings.CutSuffix(key, "[]")
		if name == "" || len(headers) == 0 {
			continue
		}
		for _, fh := range headers {
			fh.Filename = sanitizeFilename(fh.Filename)
		}
		if !isList && len(headers) == 1 {
			data[name] = headers[0]
			continue
		}
		list := make([]any, 0, len(headers))
		for _, fh := range headers {
			list = append(list, fh)
		}
		data[name] = list
	}

	return data, nil
}

// validBoundary checks a multipart boundary against RFC 2046: 1 to 70
// characters from the bchars set, not ending in a space.
func validBoundary(boundary string) bool {
	if boundary == "" || len(boundary) > 70 || strings.HasSuffix(boundary, " ") {
		return false
	}
	for _, c := range boundary {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.ContainsRune("'()+_,-./:=? ", c):
		default:
			return false
		}
	}
	return true
}

// sanitizeFilename removes any path components and dangerous characters from a filename
// to prevent path traversal attacks and other security issues.
func sanitizeFilename(filename string) string {
	// Normalize Windows separators so filepath.Base strips them too
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = filepath.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}
	return filename
}
