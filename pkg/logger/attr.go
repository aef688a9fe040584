package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// Empty ids produce an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Route records the route name under the key "route".
func Route(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("route", name)
}

// Source records which part of the request failed under the key "source"
// (body, query, headers, context, response).
func Source(name string) slog.Attr {
	return slog.String("source", name)
}

func Status(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// HTTPRequest groups method and path under the key "http".
func HTTPRequest(method, path string) slog.Attr {
	return slog.Group("http", slog.String("method", method), slog.String("path", path))
}

// Fields records failed field names under the key "fields".
func Fields(fields []string) slog.Attr {
	if len(fields) == 0 {
		return slog.Attr{}
	}
	return slog.Any("fields", fields)
}

// Panic records a recovered panic value under the key "panic".
func Panic(v any) slog.Attr {
	return slog.Any("panic", v)
}
