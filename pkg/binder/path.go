package binder

import (
	"fmt"
	"net/http"
	"reflect"
)

// Path binds path parameters using `path:` tags and the given extractor.
//
//	r.Get("/users/{id}", route.New(...)) // with binder.Path(chi.URLParam)
func Path(extractor func(r *http.Request, name string) string) Func {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}

		rv, err := structTarget(v, ErrInvalidPath)
		if err != nil {
			return err
		}

		rt := rv.Type()
		for i := range rv.NumField() {
			field := rv.Field(i)
			fieldType := rt.Field(i)
			if !field.CanSet() {
				continue
			}

			name, skip := parseFieldTag(fieldType, "path")
			if skip {
				continue
			}

			value := extractor(r, name)
			if value == "" {
				continue
			}
			if err := setFieldValue(field, fieldType.Type, []string{value}); err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrInvalidPath, name, err)
			}
		}

		return nil
	}
}

func structTarget(v any, bindErr error) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w: %w: target must be a non-nil pointer", bindErr, ErrInvalidTarget)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %w: target must be a pointer to struct", bindErr, ErrInvalidTarget)
	}
	return rv, nil
}
