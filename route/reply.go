package route

import (
	"net/http"

	"github.com/dmitrymomot/schemaroute/schema"
)

// Reply builds handler results. The JSON payload type is fixed by the
// route's response schema.
type Reply[R any] struct {
	schema schema.Schema[R]
}

// JSON writes v as JSON with status 200 unless overridden. v is validated
// against the response schema first.
func (rp Reply[R]) JSON(v R, opts ...JSONOption) Result {
	res := &jsonResult[R]{
		jsonOptions: jsonOptions{status: http.StatusOK},
		value:       v,
		schema:      rp.schema,
	}
	for _, opt := range opts {
		opt(&res.jsonOptions)
	}
	return res
}

// Redirect sends the client to url with 307 Temporary Redirect unless
// overridden. DataStar requests receive a server-sent redirect event.
func (rp Reply[R]) Redirect(url string, opts ...RedirectOption) Result {
	res := &redirectResult{url: url, status: http.StatusTemporaryRedirect}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Rewrite serves url on the same host without a round trip to the client.
// The request is re-dispatched through the router; the client URL is kept.
func (rp Reply[R]) Rewrite(url string) Result {
	return rewriteResult{url: url}
}

// Next passes the request to the successor handler. Without one the client
// gets 404.
func (rp Reply[R]) Next() Result {
	return nextResult{}
}

// Error hands err to the route's error handler.
func (rp Reply[R]) Error(err error) Result {
	return errorResult{err: err}
}

// JSONOption configures a JSON result.
type JSONOption func(*jsonOptions)

type jsonOptions struct {
	status int
	header http.Header
}

// WithStatus sets the JSON response status code.
func WithStatus(code int) JSONOption {
	return func(o *jsonOptions) { o.status = code }
}

// WithHeader adds a response header.
func WithHeader(key, value string) JSONOption {
	return func(o *jsonOptions) {
		if o.header == nil {
			o.header = make(http.Header)
		}
		o.header.Add(key, value)
	}
}

// RedirectOption configures a redirect result.
type RedirectOption func(*redirectResult)

// WithRedirectStatus sets the redirect status. Panics unless code is 3xx.
func WithRedirectStatus(code int) RedirectOption {
	if code < http.StatusMultipleChoices || code > http.StatusPermanentRedirect {
		panic("route: WithRedirectStatus: status must be 3xx")
	}
	return func(r *redirectResult) { r.status = code }
}
