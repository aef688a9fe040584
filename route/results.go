package route

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/schemaroute/schema"
)

// MaxRewriteDepth bounds nested rewrites of a single request.
const MaxRewriteDepth = 5

// Result renders a handler outcome. Render errors go to the error handler.
type Result interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

type noContent struct{}

func (noContent) Render(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(http.StatusNoContent)
	return nil
}

type jsonResult[R any] struct {
	jsonOptions
	value  R
	schema schema.Schema[R]
}

func (j *jsonResult[R]) Render(w http.ResponseWriter, r *http.Request) error {
	if err := schema.Parse(r.Context(), j.schema, &j.value); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	// Encode before writing so a marshal failure can still become a 500.
	body, err := json.Marshal(j.value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	maps.Copy(w.Header(), j.header)
	if !bodyAllowed(j.status) {
		w.WriteHeader(j.status)
		return nil
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	_, err = w.Write(append(body, '\n'))
	return err
}

// bodyAllowed reports whether a response with status may carry a body.
func bodyAllowed(status int) bool {
	return status >= http.StatusOK && status != http.StatusNoContent && status != http.StatusNotModified
}

type redirectResult struct {
	url    string
	status int
}

func (rd *redirectResult) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		return datastar.NewSSE(w, r).Redirect(rd.url)
	}
	http.Redirect(w, r, rd.url, rd.status)
	return nil
}

type rewriteResult struct {
	url string
}

func (rw rewriteResult) Render(w http.ResponseWriter, r *http.Request) error {
	target, err := r.URL.Parse(rw.url)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRewriteURL, err)
	}
	if target.Host != "" && target.Host != r.Host {
		return fmt.Errorf("%w: %s", ErrExternalRewrite, target.Host)
	}

	d := dispatchFrom(r.Context())
	if d.depth >= MaxRewriteDepth {
		return ErrRewriteLoop
	}

	h := d.rewrite
	if h == nil {
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			h, _ = rctx.Routes.(http.Handler)
		}
	}
	if h == nil {
		return ErrNoRewriteHandler
	}

	d.depth++
	ctx := context.WithValue(r.Context(), dispatchKey{}, d)
	// A nil route context makes chi route the rewritten request from scratch.
	ctx = context.WithValue(ctx, chi.RouteCtxKey, (*chi.Context)(nil))

	rewritten := r.Clone(ctx)
	rewritten.URL = &url.URL{Path: target.Path, RawPath: target.RawPath, RawQuery: target.RawQuery}
	rewritten.RequestURI = rewritten.URL.RequestURI()
	h.ServeHTTP(w, rewritten)
	return nil
}

type nextResult struct{}

func (nextResult) Render(w http.ResponseWriter, r *http.Request) error {
	d := dispatchFrom(r.Context())
	if d.next == nil {
		return ErrNoSuccessor
	}
	d.next.ServeHTTP(w, r)
	return nil
}

type errorResult struct {
	err error
}

func (e errorResult) Render(http.ResponseWriter, *http.Request) error {
	if e.err == nil {
		return ErrInternalServerError
	}
	return e.err
}
