package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemaroute/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("name", "John"),
			validator.Min("age", 21, 18),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failed rule", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.Required("name", ""),
			validator.Min("age", 10, 18),
			validator.Email("email", "john@example.com"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, []string{"name", "age"}, verrs.Fields())
		assert.Equal(t, "validation failed: name: field is required; age: must be at least 18", err.Error())
	})

	t.Run("skips rules without check", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validator.Apply(validator.Rule{}))
	})
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "email", Message: "field is required", TranslationKey: "validation.required"},
		{Field: "email", Message: "must be a valid email address", TranslationKey: "validation.email"},
		{Field: "", Message: "invalid payload"},
	}

	t.Run("has and get", func(t *testing.T) {
		t.Parallel()
		assert.True(t, errs.Has("email"))
		assert.False(t, errs.Has("name"))
		assert.Equal(t, []string{"field is required", "must be a valid email address"}, errs.Get("email"))
	})

	t.Run("with prefix", func(t *testing.T) {
		t.Parallel()
		prefixed := errs.WithPrefix("body")
		assert.Equal(t, []string{"body.email", "body"}, prefixed.Fields())
		assert.Equal(t, "email", errs[0].Field, "original must not be modified")
		assert.Equal(t, errs, errs.WithPrefix(""))
	})

	t.Run("translate", func(t *testing.T) {
		t.Parallel()
		translated := errs.Translate(func(key string, _ map[string]any) string {
			if key == "validation.required" {
				return "obligatoire"
			}
			return ""
		})
		assert.Equal(t, []string{"obligatoire", "must be a valid email address"}, translated.Get("email"))
		assert.Equal(t, "field is required", errs[0].Message)
	})

	t.Run("map", func(t *testing.T) {
		t.Parallel()
		want := map[string][]string{
			"email": {"field is required", "must be a valid email address"},
			"":      {"invalid payload"},
		}
		if diff := cmp.Diff(want, errs.Map()); diff != "" {
			t.Errorf("Map() mismatch (-want +got):\n%s", diff)
		}
		assert.Nil(t, validator.ValidationErrors{}.Map())
	})

	t.Run("empty error message", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "validation failed", validator.ValidationErrors{}.Error())
		assert.True(t, validator.ValidationErrors{}.IsEmpty())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	verrs := validator.ValidationErrors{{Field: "id", Message: "bad"}}
	wrapped := fmt.Errorf("binding: %w", verrs)

	assert.Equal(t, verrs, validator.ExtractValidationErrors(wrapped))
	assert.True(t, validator.IsValidationError(wrapped))
	assert.False(t, validator.IsValidationError(errors.New("plain")))
	assert.Nil(t, validator.ExtractValidationErrors(nil))
}
