package route

import (
	"net/http"
	"strings"
)

// IsDataStar reports whether r was issued by the DataStar client, which
// expects server-sent events instead of regular HTTP responses.
func IsDataStar(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		return true
	}
	if r.URL.Query().Has("datastar") {
		return true
	}
	return r.Header.Get("Datastar-Request") == "true"
}
