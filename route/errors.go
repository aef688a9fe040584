package route

import (
	"errors"
	"net/http"
)

// HTTPError carries a status code and the translation key used for the
// error message.
type HTTPError struct {
	Code int
	Key  string
}

func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError creates a custom HTTP error.
//
//	return reply.Error(route.NewHTTPError(http.StatusForbidden, "list_archived"))
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest            = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrUnauthorized          = HTTPError{Code: http.StatusUnauthorized, Key: "unauthorized"}
	ErrForbidden             = HTTPError{Code: http.StatusForbidden, Key: "forbidden"}
	ErrNotFound              = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrConflict              = HTTPError{Code: http.StatusConflict, Key: "conflict"}
	ErrRequestEntityTooLarge = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "request_entity_too_large"}
	ErrUnsupportedMediaType  = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrUnprocessableEntity   = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	ErrTooManyRequests       = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
)

var (
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrNotImplemented      = HTTPError{Code: http.StatusNotImplemented, Key: "not_implemented"}
	ErrServiceUnavailable  = HTTPError{Code: http.StatusServiceUnavailable, Key: "service_unavailable"}
	ErrLoopDetected        = HTTPError{Code: http.StatusLoopDetected, Key: "loop_detected"}
)

// Route errors
var (
	ErrInvalidResponse   = errors.New("route: response does not match schema")
	ErrRewriteLoop       = errors.New("route: rewrite depth exceeded")
	ErrExternalRewrite   = errors.New("route: rewrite target must be on the same host")
	ErrInvalidRewriteURL = errors.New("route: invalid rewrite url")
	ErrNoRewriteHandler  = errors.New("route: no handler to rewrite to")
	ErrNoSuccessor       = errors.New("route: no successor handler")
	ErrHandlerPanic      = errors.New("route: handler panicked")
)
