package validator

import (
	"errors"
	"fmt"
	"strings"
)

// Numeric is the constraint used by numeric rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns every message recorded for field, in insertion order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct field names in order of first appearance.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool, len(ve))
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// WithPrefix returns a copy where every field is rooted under prefix.
// Errors without a field name are attributed to the prefix itself.
func (ve ValidationErrors) WithPrefix(prefix string) ValidationErrors {
	if prefix == "" {
		return ve
	}
	out := make(ValidationErrors, len(ve))
	for i, err := range ve {
		if err.Field == "" {
			err.Field = prefix
		} else {
			err.Field = prefix + "." + err.Field
		}
		out[i] = err
	}
	return out
}

// Translate returns a copy whose messages are produced by fn.
// fn receives the translation key and values; an empty result keeps the
// original message.
func (ve ValidationErrors) Translate(fn func(key string, values map[string]any) string) ValidationErrors {
	if fn == nil {
		return ve
	}
	out := make(ValidationErrors, len(ve))
	for i, err := range ve {
		if err.TranslationKey != "" {
			if msg := fn(err.TranslationKey, err.TranslationValues); msg != "" {
				err.Message = msg
			}
		}
		out[i] = err
	}
	return out
}

// Map groups messages by field.
func (ve ValidationErrors) Map() map[string][]string {
	if len(ve) == 0 {
		return nil
	}
	m := make(map[string][]string, len(ve))
	for _, err := range ve {
		m[err.Field] = append(m[err.Field], err.Message)
	}
	return m
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if rule.Check == nil {
			continue
		}
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	return ExtractValidationErrors(err) != nil
}

// newRule builds a Rule whose translation values always include the field name.
func newRule(field, key, message string, values map[string]any, check func() bool) Rule {
	tv := map[string]any{"field": field}
	for k, v := range values {
		tv[k] = v
	}
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    key,
			TranslationValues: tv,
		},
	}
}
