package binder

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// bindValues binds a multi-valued source to a struct or string map.
// When arrays is non-nil, keys absent from it collapse to their first value.
// canonical switches lookups to canonical MIME header keys.
func bindValues(v any, tagName string, values map[string][]string, arrays map[string]bool, canonical bool, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("%w: %w: target must be a non-nil pointer", bindErr, ErrInvalidTarget)
	}

	if rv.Elem().Kind() == reflect.Map {
		return bindMap(rv.Elem(), values, arrays, bindErr)
	}

	rv, err := structTarget(v, bindErr)
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

		name, skip := parseFieldTag(fieldType, tagName)
		if skip {
			continue
		}

		key := name
		if canonical {
			key = canonicalHeader(name)
		}
		fieldValues := values[key]
		if len(fieldValues) == 0 {
			continue
		}
		if arrays != nil && !arrays[name] {
			fieldValues = fieldValues[:1]
		}

		if err := setFieldValue(field, fieldType.Type, fieldValues); err != nil {
			return fmt.Errorf("%w: field %s: %v", bindErr, name, err)
		}
	}

	return nil
}

// bindMap fills map[string]string (first value) or map[string][]string.
func bindMap(m reflect.Value, values map[string][]string, arrays map[string]bool, bindErr error) error {
	mt := m.Type()
	if mt.Key().Kind() != reflect.String {
		return fmt.Errorf("%w: %w: map key must be string", bindErr, ErrInvalidTarget)
	}

	elem := mt.Elem()
	isString := elem.Kind() == reflect.String
	isStrings := elem.Kind() == reflect.Slice && elem.Elem().Kind() == reflect.String
	if !isString && !isStrings {
		return fmt.Errorf("%w: %w: unsupported map value %s", bindErr, ErrInvalidTarget, elem)
	}

	if m.IsNil() {
		m.Set(reflect.MakeMapWithSize(mt, len(values)))
	}
	for k, vals := range values {
		if len(vals) == 0 {
			continue
		}
		if arrays != nil && !arrays[k] {
			vals = vals[:1]
		}
		key := reflect.ValueOf(k).Convert(mt.Key())
		if isString {
			m.SetMapIndex(key, reflect.ValueOf(vals[0]).Convert(elem))
			continue
		}
		cp := reflect.MakeSlice(elem, len(vals), len(vals))
		for i, s := range vals {
			cp.Index(i).SetString(s)
		}
		m.SetMapIndex(key, cp)
	}
	return nil
}

// parseFieldTag returns the parameter name for field and whether to skip it.
func parseFieldTag(field reflect.StructField, tagName string) (name string, skip bool) {
	tag := field.Tag.Get(tagName)
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}
	name, _, _ = strings.Cut(tag, ",")
	if name == "" {
		return strings.ToLower(field.Name), false
	}
	return name, false
}

// setFieldValue sets field from string values.
func setFieldValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	if len(values) == 0 {
		return nil
	}

	if reflect.PointerTo(fieldType).Implements(textUnmarshalerType) {
		u := field.Addr().Interface().(encoding.TextUnmarshaler)
		if err := u.UnmarshalText([]byte(values[0])); err != nil {
			return fmt.Errorf("invalid %s value %q", fieldType, values[0])
		}
		return nil
	}

	switch fieldType.Kind() {
	case reflect.Ptr:
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), values)

	case reflect.Slice:
		return setSliceValue(field, fieldType, values)
	}

	value := values[0]

	switch fieldType.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", fieldType)
	}

	return nil
}

// parseBool is lenient with HTML checkbox values.
func parseBool(value string) (bool, error) {
	if b, err := strconv.ParseBool(value); err == nil {
		return b, nil
	}
	switch strings.ToLower(value) {
	case "on", "yes":
		return true, nil
	case "off", "no", "":
		return false, nil
	}
	return false, fmt.Errorf("invalid bool value %q", value)
}

// setSliceValue accepts repeated values as well as comma-separated ones.
func setSliceValue(field reflect.Value, fieldType reflect.Type, values []string) error {
	var all []string
	for _, v := range values {
		for part := range strings.SplitSeq(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				all = append(all, part)
			}
		}
	}

	slice := reflect.MakeSlice(fieldType, len(all), len(all))
	for i, value := range all {
		if err := setFieldValue(slice.Index(i), fieldType.Elem(), []string{value}); err != nil {
			return err
		}
	}
	field.Set(slice)
	return nil
}
