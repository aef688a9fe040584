package binder

import (
	"net/http"
	"net/url"
)

// Query binds URL query parameters using `query:` tags.
//
// With no arrayKeys every repeated parameter is kept and slice fields receive
// all of them. When arrayKeys are given only those keys keep every value;
// any other key collapses to its first occurrence.
//
//	type Search struct {
//		Q    string   `query:"q"`
//		Tags []string `query:"tags"` // ?tags=go&tags=web or ?tags=go,web
//	}
func Query(arrayKeys ...string) Func {
	return func(r *http.Request, v any) error {
		return QueryValues(r.URL.Query(), v, arrayKeys...)
	}
}

// QueryValues binds already parsed query values. See Query.
func QueryValues(values url.Values, v any, arrayKeys ...string) error {
	var arrays map[string]bool
	if len(arrayKeys) > 0 {
		arrays = make(map[string]bool, len(arrayKeys))
		for _, k := range arrayKeys {
			arrays[k] = true
		}
	}
	return bindValues(v, "query", values, arrays, false, ErrInvalidQuery)
}
