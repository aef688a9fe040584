package i18n

import (
	"context"
	"net/http"
)

type localeContextKey struct{}

// SetLocale sets the locale in the context.
func SetLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeContextKey{}, locale)
}

// GetLocale returns the locale from the context, or "" when unset.
func GetLocale(ctx context.Context) string {
	locale, _ := ctx.Value(localeContextKey{}).(string)
	return locale
}

// Middleware negotiates the request language once and stores it in the
// request context.
func Middleware(t *Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := t.Negotiate(r.Header.Get("Accept-Language"))
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}

// Locale returns the context locale or negotiates one from the request.
func (t *Translator) Locale(r *http.Request) string {
	if lang := GetLocale(r.Context()); lang != "" {
		return lang
	}
	return t.Negotiate(r.Header.Get("Accept-Language"))
}
