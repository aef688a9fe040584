package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/schemaroute/pkg/validator"
)

func TestStringRules(t *testing.T) {
	t.Parallel()

	t.Run("required", func(t *testing.T) {
		t.Parallel()
		rule := validator.Required("name", "  John ")
		assert.True(t, rule.Check())
		assert.Equal(t, "validation.required", rule.Error.TranslationKey)
		assert.Equal(t, map[string]any{"field": "name"}, rule.Error.TranslationValues)
		assert.False(t, validator.Required("name", "   ").Check())
	})

	t.Run("length counts runes", func(t *testing.T) {
		t.Parallel()
		assert.True(t, validator.MinLen("name", "héllo", 5).Check())
		assert.True(t, validator.MaxLen("name", "héllo", 5).Check())
		assert.False(t, validator.MaxLen("name", "héllo!", 5).Check())
		assert.True(t, validator.LenBetween("name", "abc", 1, 3).Check())
		assert.False(t, validator.LenBetween("name", "", 1, 3).Check())

		rule := validator.MinLen("password", "x", 8)
		assert.Equal(t, "must be at least 8 characters long", rule.Error.Message)
		assert.Equal(t, map[string]any{"field": "password", "min": 8}, rule.Error.TranslationValues)
	})

	t.Run("matches allows empty", func(t *testing.T) {
		t.Parallel()
		re := regexp.MustCompile(`^[a-z]+$`)
		assert.True(t, validator.Matches("slug", "", re).Check())
		assert.True(t, validator.Matches("slug", "abc", re).Check())
		assert.False(t, validator.Matches("slug", "ABC", re).Check())
	})
}

func TestNumericRules(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Min("age", 18, 18).Check())
	assert.False(t, validator.Min("age", 17, 18).Check())
	assert.True(t, validator.Max("limit", 1.5, 2.0).Check())
	assert.False(t, validator.Max("limit", uint(3), 2).Check())
	assert.True(t, validator.Between("page", 5, 1, 5).Check())
	assert.False(t, validator.Between("page", 0, 1, 5).Check())
	assert.True(t, validator.Positive("qty", 1).Check())
	assert.False(t, validator.Positive("qty", 0).Check())
}

func TestCollectionRules(t *testing.T) {
	t.Parallel()

	tags := []string{"go", "web", "go"}
	assert.True(t, validator.NotEmpty("tags", tags).Check())
	assert.False(t, validator.NotEmpty("tags", []string{}).Check())
	assert.True(t, validator.MinItems("tags", tags, 3).Check())
	assert.False(t, validator.MaxItems("tags", tags, 2).Check())
	assert.False(t, validator.Unique("tags", tags).Check())
	assert.True(t, validator.Unique("tags", []string{"a", "b"}).Check())
	assert.True(t, validator.OneOf("sort", "asc", "asc", "desc").Check())
	assert.False(t, validator.OneOf("sort", "up", "asc", "desc").Check())

	rules := validator.Each("emails", []string{"a@example.com", "nope"}, validator.Email)
	err := validator.Apply(rules...)
	verrs := validator.ExtractValidationErrors(err)
	assert.Equal(t, []string{"emails[1]"}, verrs.Fields())
}

func TestFormatRules(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.Email("email", "user@example.com").Check())
	assert.False(t, validator.Email("email", "User <user@example.com>").Check())
	assert.False(t, validator.Email("email", "user@localhost").Check())
	assert.False(t, validator.Email("email", "").Check())

	assert.True(t, validator.URL("site", "https://example.com/path").Check())
	assert.False(t, validator.URL("site", "ftp://example.com").Check())
	assert.False(t, validator.URL("site", "/relative").Check())

	assert.True(t, validator.UUID("id", "6ba7b810-9dad-11d1-80b4-00c04fd430c8").Check())
	assert.False(t, validator.UUID("id", "00000000-0000-0000-0000-000000000000").Check())
	assert.False(t, validator.UUID("id", "6ba7b8109dad11d180b400c04fd430c8").Check())
}
