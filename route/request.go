package route

import (
	"fmt"
	"net/http"

	"github.com/dmitrymomot/schemaroute/pkg/binder"
	"github.com/dmitrymomot/schemaroute/pkg/validator"
	"github.com/dmitrymomot/schemaroute/schema"
)

// Request is the incoming *http.Request extended with the validated parts.
type Request[B, C, Q, H any] struct {
	*http.Request

	body    B
	ctx     C
	query   Q
	headers H

	querySchema schema.Schema[Q]
	customQuery bool
}

// GetBody returns the validated body. It is the zero value when the route
// declares no body.
func (r *Request[B, C, Q, H]) GetBody() B {
	return r.body
}

// GetContext returns the validated context value.
func (r *Request[B, C, Q, H]) GetContext() C {
	return r.ctx
}

// GetHeaders returns the validated headers.
func (r *Request[B, C, Q, H]) GetHeaders() H {
	return r.headers
}

// GetQuery returns the validated query.
//
// Without arguments the value bound before the handler ran is returned.
// arrayKeys re-binds the URL query so that only the named keys keep every
// occurrence and all other keys collapse to their first value; the result is
// validated again and errors are reported under "query". Routes with a
// custom query binder always get the bound value.
func (r *Request[B, C, Q, H]) GetQuery(arrayKeys ...string) (Q, error) {
	if len(arrayKeys) == 0 || r.customQuery {
		return r.query, nil
	}

	var q Q
	if err := binder.QueryValues(r.URL.Query(), &q, arrayKeys...); err != nil {
		return q, err
	}
	if err := schema.Parse(r.Context(), r.querySchema, &q); err != nil {
		if ve := validator.ExtractValidationErrors(err); ve != nil {
			return q, ve.WithPrefix(sourceQuery)
		}
		return q, fmt.Errorf("query: %w", err)
	}
	return q, nil
}

// RawHeaders returns a copy of the request headers. Changes to it do not
// affect the request.
func (r *Request[B, C, Q, H]) RawHeaders() http.Header {
	return r.Header.Clone()
}
