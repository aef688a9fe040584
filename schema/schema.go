package schema

import (
	"context"

	"github.com/dmitrymomot/schemaroute/pkg/validator"
)

// Schema validates values of type T.
type Schema[T any] interface {
	Validate(ctx context.Context, v T) error
}

// Preparer is implemented by schemas that normalise a value before validation.
type Preparer[T any] interface {
	Prepare(ctx context.Context, v *T) error
}

// SelfValidator is implemented by types that carry their own validation.
type SelfValidator interface {
	Validate() error
}

// Parse prepares v (when s implements Preparer) and validates it.
// A nil schema accepts any value.
func Parse[T any](ctx context.Context, s Schema[T], v *T) error {
	if s == nil {
		return nil
	}
	if v == nil {
		return ErrNilTarget
	}
	if p, ok := s.(Preparer[T]); ok {
		if err := p.Prepare(ctx, v); err != nil {
			return err
		}
	}
	return normalize(s.Validate(ctx, *v))
}

// normalize maps an empty ValidationErrors to nil. Validators that collect
// into a ValidationErrors value return it even when nothing was added.
func normalize(err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok && verrs.IsEmpty() {
		return nil
	}
	return err
}

// RuleSchema validates a value with a list of validator rules.
type RuleSchema[T any] struct {
	rules      func(v T) []validator.Rule
	defaults   []func(*T)
	transforms []func(*T)
}

// Rules creates a schema from a rule builder. The builder is called once per
// validation with the prepared value.
func Rules[T any](fn func(v T) []validator.Rule) *RuleSchema[T] {
	return &RuleSchema[T]{rules: fn}
}

// Default registers fn to fill in missing values. Defaults run before
// transforms, in registration order.
func (s *RuleSchema[T]) Default(fn func(v *T)) *RuleSchema[T] {
	if fn != nil {
		s.defaults = append(s.defaults, fn)
	}
	return s
}

// Transform registers fn to normalise the value before validation.
func (s *RuleSchema[T]) Transform(fn func(v *T)) *RuleSchema[T] {
	if fn != nil {
		s.transforms = append(s.transforms, fn)
	}
	return s
}

func (s *RuleSchema[T]) Prepare(_ context.Context, v *T) error {
	for _, fn := range s.defaults {
		fn(v)
	}
	for _, fn := range s.transforms {
		fn(v)
	}
	return nil
}

func (s *RuleSchema[T]) Validate(ctx context.Context, v T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.rules == nil {
		return nil
	}
	return validator.Apply(s.rules(v)...)
}

type funcSchema[T any] func(ctx context.Context, v T) error

func (f funcSchema[T]) Validate(ctx context.Context, v T) error { return f(ctx, v) }

// Func adapts a function to a Schema. Useful for checks that need the
// context, such as uniqueness lookups.
func Func[T any](fn func(ctx context.Context, v T) error) Schema[T] {
	return funcSchema[T](fn)
}

type selfSchema[T SelfValidator] struct{}

func (selfSchema[T]) Validate(_ context.Context, v T) error { return v.Validate() }

// Self delegates validation to the value's own Validate method.
func Self[T SelfValidator]() Schema[T] {
	return selfSchema[T]{}
}

type anySchema[T any] struct{}

func (anySchema[T]) Validate(context.Context, T) error { return nil }

// Any accepts every value. It declares a shape without constraining it.
func Any[T any]() Schema[T] {
	return anySchema[T]{}
}

type allSchema[T any] []Schema[T]

func (all allSchema[T]) Prepare(ctx context.Context, v *T) error {
	for _, s := range all {
		if p, ok := s.(Preparer[T]); ok {
			if err := p.Prepare(ctx, v); err != nil {
				return err
			}
		}
	}
	return nil
}

// Validate runs every schema. Validation errors are merged; any other error
// stops evaluation immediately.
func (all allSchema[T]) Validate(ctx context.Context, v T) error {
	var merged validator.ValidationErrors
	for _, s := range all {
		err := normalize(s.Validate(ctx, v))
		if err == nil {
			continue
		}
		verrs := validator.ExtractValidationErrors(err)
		if verrs == nil {
			return err
		}
		merged = append(merged, verrs...)
	}
	if merged.IsEmpty() {
		return nil
	}
	return merged
}

// All combines schemas into one. Nil schemas are skipped.
func All[T any](schemas ...Schema[T]) Schema[T] {
	all := make(allSchema[T], 0, len(schemas))
	for _, s := range schemas {
		if s != nil {
			all = append(all, s)
		}
	}
	return all
}

// Invalid builds a single-field validation error. Func schemas use it to
// report failures the same way rule schemas do.
func Invalid(field, message, key string) error {
	return validator.ValidationErrors{{
		Field:             field,
		Message:           message,
		TranslationKey:    key,
		TranslationValues: map[string]any{"field": field},
	}}
}

// IsInvalid reports whether err is a validation failure rather than an
// operational error.
func IsInvalid(err error) bool {
	return validator.IsValidationError(err)
}
