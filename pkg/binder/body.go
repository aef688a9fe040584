package binder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
	DefaultMaxJSONSize = 1 << 20
	// DefaultMaxMemory is the default maximum memory used for parsing multipart forms (10MB).
	DefaultMaxMemory = 10 << 20
)

// Body picks a decoder from the request Content-Type.
// A request without body and without Content-Type yields ErrEmptyBody.
func Body() Func {
	jsonBinder := JSON()
	formBinder := Form()
	return func(r *http.Request, v any) error {
		mt := mediaType(r)
		switch {
		case mt == "":
			if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
				return ErrEmptyBody
			}
			return fmt.Errorf("%w: expected application/json or form data", ErrMissingContentType)
		case isJSONMediaType(mt):
			return jsonBinder(r, v)
		case mt == "application/x-www-form-urlencoded", mt == "multipart/form-data":
			return formBinder(r, v)
		default:
			return fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mt)
		}
	}
}

// JSON decodes a strict JSON body: unknown fields and trailing data are rejected.
func JSON() Func {
	return func(r *http.Request, v any) error {
		if err := r.Context().Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		mt := mediaType(r)
		if mt == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}
		if !isJSONMediaType(mt) {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, mt)
		}
		if r.Body == nil {
			return ErrEmptyBody
		}

		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return fmt.Errorf("%w: failed to read request body: %v", ErrInvalidJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return fmt.Errorf("%w: max %d bytes", ErrBodyTooLarge, DefaultMaxJSONSize)
		}
		if len(bytes.TrimSpace(body)) == 0 {
			return ErrEmptyBody
		}

		decoder := json.NewDecoder(bytes.NewReader(body))
		decoder.DisallowUnknownFields()

		if err := decoder.Decode(v); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) && typeErr.Field != "" {
				return fmt.Errorf("%w: field %s: expected %s", ErrInvalidJSON, typeErr.Field, typeErr.Type)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}

		var extra json.RawMessage
		if err := decoder.Decode(&extra); err != io.EOF {
			return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
		}

		return nil
	}
}

// Form decodes urlencoded and multipart bodies using `form:` tags.
// Only the body is read; query parameters never leak into form fields.
func Form() Func {
	return func(r *http.Request, v any) error {
		mt := mediaType(r)
		switch mt {
		case "":
			return fmt.Errorf("%w: expected form data", ErrMissingContentType)
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			return bindValues(v, "form", r.PostForm, nil, false, ErrInvalidForm)
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			values := map[string][]string{}
			if r.MultipartForm != nil {
				values = r.MultipartForm.Value
			}
			return bindValues(v, "form", values, nil, false, ErrInvalidForm)
		default:
			return fmt.Errorf("%w: got %s, expected form data", ErrUnsupportedMediaType, strings.TrimSpace(mt))
		}
	}
}
