package binder

import (
	"mime"
	"net/http"
	"strings"
)

// Func decodes part of r into v. v must be a non-nil pointer.
type Func func(r *http.Request, v any) error

// mediaType returns the lower-cased media type of the request without parameters.
func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		if idx := strings.Index(ct, ";"); idx != -1 {
			ct = ct[:idx]
		}
		return strings.ToLower(strings.TrimSpace(ct))
	}
	return mt
}

// isJSONMediaType accepts application/json and structured +json suffixes.
func isJSONMediaType(mt string) bool {
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}
