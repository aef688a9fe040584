package route

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"runtime/debug"

	"github.com/dmitrymomot/schemaroute/pkg/binder"
	"github.com/dmitrymomot/schemaroute/pkg/logger"
	"github.com/dmitrymomot/schemaroute/pkg/validator"
	"github.com/dmitrymomot/schemaroute/schema"
)

// None is the placeholder for a request part a route does not use.
type None = struct{}

// Schemas declares the validation schema of each request part and of the
// response payload. Nil schemas accept any value of their type.
type Schemas[B, C, Q, H, R any] struct {
	Body     schema.Schema[B]
	Context  schema.Schema[C]
	Query    schema.Schema[Q]
	Headers  schema.Schema[H]
	Response schema.Schema[R]
}

// HandlerFunc handles a request whose parts have been bound and validated.
// ctx is the validated context value, also available as req.GetContext().
// Returning nil writes 204 No Content.
type HandlerFunc[B, C, Q, H, R any] func(req *Request[B, C, Q, H], reply Reply[R], ctx C) Result

// Params groups the schemas and the handler of a route.
type Params[B, C, Q, H, R any] struct {
	Schemas *Schemas[B, C, Q, H, R]
	Handler HandlerFunc[B, C, Q, H, R]
}

// Route is an http.Handler running a typed handler.
type Route[B, C, Q, H, R any] struct {
	schemas  Schemas[B, C, Q, H, R]
	handler  HandlerFunc[B, C, Q, H, R]
	cfg      *config
	withBody bool
}

// New builds a Route. It panics when p.Handler is nil.
func New[B, C, Q, H, R any](p Params[B, C, Q, H, R], opts ...Option) *Route[B, C, Q, H, R] {
	if p.Handler == nil {
		panic("route: New: handler cannot be nil")
	}
	rt := &Route[B, C, Q, H, R]{
		handler: p.Handler,
		cfg:     newConfig(opts),
	}
	if p.Schemas != nil {
		rt.schemas = *p.Schemas
	}
	// The body is only read when the route declares it.
	rt.withBody = rt.schemas.Body != nil || reflect.TypeFor[B]() != reflect.TypeFor[None]()
	return rt
}

func (rt *Route[B, C, Q, H, R]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.serve(w, r, nil)
}

// Middleware mounts the route in front of next. Reply.Next hands the request
// over to next.
func (rt *Route[B, C, Q, H, R]) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rt.serve(w, r, next)
	})
}

func (rt *Route[B, C, Q, H, R]) serve(w http.ResponseWriter, r *http.Request, next http.Handler) {
	r = r.WithContext(withDispatch(r.Context(), dispatch{next: next, rewrite: rt.cfg.rewriteHandler}))

	defer func() {
		if rec := recover(); rec != nil {
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			rt.cfg.logger.ErrorContext(r.Context(), "route handler panicked",
				logger.Route(rt.cfg.name),
				logger.Panic(rec),
				slog.String("stack", string(debug.Stack())),
			)
			rt.cfg.errorHandler(w, r, fmt.Errorf("%w: %v", ErrHandlerPanic, rec))
		}
	}()

	var body *replayBody
	if rt.withBody && r.Body != nil && r.Body != http.NoBody {
		body = &replayBody{ReadCloser: r.Body}
		r.Body = body
	}
	req, err := rt.bind(r)
	if body != nil {
		// Next and Rewrite targets read the body again.
		r.Body = body.replay()
	}
	if err != nil {
		rt.cfg.errorHandler(w, r, err)
		return
	}

	res := rt.handler(req, Reply[R]{schema: rt.schemas.Response}, req.ctx)
	if res == nil {
		res = noContent{}
	}
	if err := res.Render(w, r); err != nil {
		rt.cfg.errorHandler(w, r, err)
	}
}

// bind decodes and validates every request part. Validation errors of all
// parts are collected; any other error aborts immediately.
func (rt *Route[B, C, Q, H, R]) bind(r *http.Request) (*Request[B, C, Q, H], error) {
	req := &Request[B, C, Q, H]{
		Request:     r,
		querySchema: rt.schemas.Query,
		customQuery: rt.cfg.customQuery,
	}
	var verrs validator.ValidationErrors

	collect := func(source string, err error) error {
		if err == nil {
			return nil
		}
		if ve := validator.ExtractValidationErrors(err); ve != nil {
			verrs = append(verrs, ve.WithPrefix(source)...)
			return nil
		}
		return err
	}

	if err := collect(sourceContext, bindPart(r, rt.cfg.contextBinder, rt.schemas.Context, &req.ctx)); err != nil {
		return nil, err
	}
	if err := collect(sourceHeaders, bindPart(r, rt.cfg.headerBinder, rt.schemas.Headers, &req.headers)); err != nil {
		return nil, err
	}
	if err := collect(sourceQuery, bindPart(r, rt.cfg.queryBinder, rt.schemas.Query, &req.query)); err != nil {
		return nil, err
	}
	if rt.withBody {
		if err := collect(sourceBody, bindPart(r, rt.cfg.bodyBinder, rt.schemas.Body, &req.body)); err != nil {
			return nil, err
		}
	}

	if !verrs.IsEmpty() {
		rt.cfg.logger.WarnContext(r.Context(), "request validation failed",
			logger.Route(rt.cfg.name),
			logger.HTTPRequest(r.Method, r.URL.Path),
			logger.Fields(verrs.Fields()),
		)
		return nil, verrs
	}
	return req, nil
}

const (
	sourceBody    = "body"
	sourceContext = "context"
	sourceQuery   = "query"
	sourceHeaders = "headers"
)

// bindPart decodes one request part into v and runs its schema.
// An empty body leaves the zero value for the schema to judge.
func bindPart[T any](r *http.Request, bind binder.Func, s schema.Schema[T], v *T) error {
	if err := bind(r, v); err != nil && !errors.Is(err, binder.ErrEmptyBody) {
		return err
	}
	return schema.Parse(r.Context(), s, v)
}

type dispatchKey struct{}

// dispatch holds where Next and Rewrite results send the request.
type dispatch struct {
	next    http.Handler
	rewrite http.Handler
	depth   int
}

func withDispatch(ctx context.Context, d dispatch) context.Context {
	if prev, ok := ctx.Value(dispatchKey{}).(dispatch); ok {
		d.depth = prev.depth
	}
	return context.WithValue(ctx, dispatchKey{}, d)
}

func dispatchFrom(ctx context.Context) dispatch {
	d, _ := ctx.Value(dispatchKey{}).(dispatch)
	return d
}
