package route

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/schemaroute/pkg/binder"
	"github.com/dmitrymomot/schemaroute/pkg/i18n"
	"github.com/dmitrymomot/schemaroute/pkg/logger"
	"github.com/dmitrymomot/schemaroute/pkg/requestid"
	"github.com/dmitrymomot/schemaroute/pkg/validator"
)

// ErrorHandler writes the response for a failed request.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes an error. Details maps "<source>.<field>" to messages.
type ErrorDetail struct {
	Code      string              `json:"code"`
	Message   string              `json:"message"`
	Details   map[string][]string `json:"details,omitempty"`
	RequestID string              `json:"request_id,omitempty"`
}

// errorInfo is the classification of an error.
type errorInfo struct {
	status int
	key    string
	errs   validator.ValidationErrors
}

// classifyError maps err to a status code and message key.
func classifyError(err error) errorInfo {
	var httpErr HTTPError
	switch {
	case errors.Is(err, ErrInvalidResponse):
		return errorInfo{status: http.StatusInternalServerError, key: "invalid_response"}
	case errors.As(err, &httpErr):
		return errorInfo{status: httpErr.Code, key: httpErr.Key}
	case validator.IsValidationError(err):
		return errorInfo{status: http.StatusBadRequest, key: "validation_error", errs: validator.ExtractValidationErrors(err)}
	case errors.Is(err, binder.ErrInvalidTarget):
		return errorInfo{status: http.StatusInternalServerError, key: ErrInternalServerError.Key}
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return errorInfo{status: http.StatusUnsupportedMediaType, key: ErrUnsupportedMediaType.Key}
	case errors.Is(err, binder.ErrBodyTooLarge):
		return errorInfo{status: http.StatusRequestEntityTooLarge, key: ErrRequestEntityTooLarge.Key}
	case errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrInvalidQuery),
		errors.Is(err, binder.ErrInvalidHeader),
		errors.Is(err, binder.ErrInvalidPath),
		errors.Is(err, binder.ErrEmptyBody),
		errors.Is(err, ErrInvalidRewriteURL),
		errors.Is(err, ErrExternalRewrite):
		return errorInfo{status: http.StatusBadRequest, key: ErrBadRequest.Key}
	case errors.Is(err, ErrNoSuccessor):
		return errorInfo{status: http.StatusNotFound, key: ErrNotFound.Key}
	case errors.Is(err, ErrRewriteLoop):
		return errorInfo{status: http.StatusLoopDetected, key: ErrLoopDetected.Key}
	default:
		return errorInfo{status: http.StatusInternalServerError, key: ErrInternalServerError.Key}
	}
}

// NewErrorHandler returns the default handler: it logs err (warn for 4xx,
// error for 5xx) and writes an ErrorResponse. With a translator, messages
// are rendered in the request locale.
func NewErrorHandler(log *slog.Logger, t *i18n.Translator) ErrorHandler {
	if log == nil {
		log = logger.Discard()
	}

	return func(w http.ResponseWriter, r *http.Request, err error) {
		info := classifyError(err)

		level := slog.LevelWarn
		if info.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.LogAttrs(r.Context(), level, "request failed",
			logger.Error(err),
			logger.Status(info.status),
			logger.HTTPRequest(r.Method, r.URL.Path),
		)

		detail := ErrorDetail{
			Code:      info.key,
			Message:   http.StatusText(info.status),
			RequestID: requestid.FromContext(r.Context()),
		}
		if info.errs != nil {
			detail.Message = "Request validation failed"
		}

		errs := info.errs
		if t != nil {
			lang := t.Locale(r)
			if msg := t.Translate(lang, "http.error."+info.key, nil); msg != "" {
				detail.Message = msg
			}
			errs = errs.Translate(func(key string, values map[string]any) string {
				return t.Translate(lang, key, values)
			})
		}
		detail.Details = errs.Map()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.WriteHeader(info.status)
		_ = json.NewEncoder(w).Encode(ErrorResponse{Error: detail})
	}
}
