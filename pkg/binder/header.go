package binder

import (
	"net/http"
	"net/textproto"
)

// Header binds request headers using `header:` tags. Names are matched
// case-insensitively.
//
//	type Auth struct {
//		Token   string `header:"Authorization"`
//		TraceID string `header:"X-Trace-ID"`
//	}
func Header() Func {
	return func(r *http.Request, v any) error {
		return HeaderValues(r.Header, v)
	}
}

// HeaderValues binds an http.Header. See Header.
func HeaderValues(h http.Header, v any) error {
	return bindValues(v, "header", h, nil, true, ErrInvalidHeader)
}

func canonicalHeader(name string) string {
	return textproto.CanonicalMIMEHeaderKey(name)
}
