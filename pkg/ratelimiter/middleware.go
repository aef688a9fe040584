package ratelimiter

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
)

// KeyFunc extracts the bucket key from a request. An empty key skips limiting.
type KeyFunc func(r *http.Request) string

// ByIP keys buckets by client address using resolve (e.g. clientip.FromRequest).
func ByIP(resolve func(r *http.Request) string) KeyFunc {
	return func(r *http.Request) string {
		if ip := resolve(r); ip != "" {
			return "ip:" + ip
		}
		return ""
	}
}

// Middleware limits requests per key. Denied requests are handed to deny
// with an error wrapping ErrLimitExceeded; limiter failures are passed as-is.
// Rate limit headers are set on every limited response.
func Middleware(l *Limiter, key KeyFunc, deny func(w http.ResponseWriter, r *http.Request, err error)) func(http.Handler) http.Handler {
	if deny == nil {
		deny = func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := l.Allow(r.Context(), k)
			if err != nil {
				deny(w, r, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				if secs := int(math.Ceil(res.RetryAfter().Seconds())); secs > 0 {
					h.Set("Retry-After", strconv.Itoa(secs))
				}
				deny(w, r, fmt.Errorf("%w: key %s", ErrLimitExceeded, k))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
