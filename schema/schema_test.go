package schema_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemaroute/pkg/validator"
	"github.com/dmitrymomot/schemaroute/schema"
)

type item struct {
	Name  string
	Tags  []string
	Limit int
}

func itemSchema() *schema.RuleSchema[item] {
	return schema.Rules(func(v item) []validator.Rule {
		return []validator.Rule{
			validator.Required("name", v.Name),
			validator.Between("limit", v.Limit, 1, 100),
		}
	})
}

type signup struct {
	Password string
	Confirm  string
}

func (s signup) Validate() error {
	if s.Password != s.Confirm {
		return schema.Invalid("confirm", "passwords do not match", "validation.confirm")
	}
	return nil
}

func TestParse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("nil schema accepts value", func(t *testing.T) {
		t.Parallel()
		v := item{}
		assert.NoError(t, schema.Parse[item](ctx, nil, &v))
	})

	t.Run("nil target", func(t *testing.T) {
		t.Parallel()
		err := schema.Parse[item](ctx, itemSchema(), nil)
		assert.ErrorIs(t, err, schema.ErrNilTarget)
	})

	t.Run("reports every failed rule", func(t *testing.T) {
		t.Parallel()
		v := item{}
		err := schema.Parse[item](ctx, itemSchema(), &v)
		require.Error(t, err)
		assert.True(t, schema.IsInvalid(err))
		assert.Equal(t, []string{"name", "limit"}, validator.ExtractValidationErrors(err).Fields())
	})

	t.Run("defaults run before transforms", func(t *testing.T) {
		t.Parallel()
		var order []string
		s := itemSchema().
			Transform(func(v *item) {
				order = append(order, "transform")
				v.Name = strings.TrimSpace(v.Name)
			}).
			Default(func(v *item) {
				order = append(order, "default")
				if v.Limit == 0 {
					v.Limit = 20
				}
			})

		v := item{Name: "  widget  "}
		require.NoError(t, schema.Parse[item](ctx, s, &v))
		assert.Equal(t, item{Name: "widget", Limit: 20}, v)
		assert.Equal(t, []string{"default", "transform"}, order)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		v := item{Name: "x", Limit: 1}
		err := schema.Parse[item](cctx, itemSchema(), &v)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, schema.IsInvalid(err))
	})
}

func TestFunc(t *testing.T) {
	t.Parallel()

	taken := errors.New("lookup failed")
	s := schema.Func(func(_ context.Context, v string) error {
		switch v {
		case "admin":
			return schema.Invalid("username", "is reserved", "validation.reserved")
		case "boom":
			return taken
		}
		return nil
	})

	assert.NoError(t, s.Validate(context.Background(), "john"))
	assert.True(t, schema.IsInvalid(s.Validate(context.Background(), "admin")))
	assert.ErrorIs(t, s.Validate(context.Background(), "boom"), taken)
}

func TestSelf(t *testing.T) {
	t.Parallel()

	s := schema.Self[signup]()
	assert.NoError(t, s.Validate(context.Background(), signup{Password: "a", Confirm: "a"}))

	err := s.Validate(context.Background(), signup{Password: "a", Confirm: "b"})
	verrs := validator.ExtractValidationErrors(err)
	require.NotNil(t, verrs)
	assert.Equal(t, []string{"passwords do not match"}, verrs.Get("confirm"))
}

type profile struct {
	Name string `json:"name"`
}

func (p profile) Validate() error {
	var errs validator.ValidationErrors
	if p.Name == "" {
		errs.Add(validator.ValidationError{Field: "name", Message: "is required", TranslationKey: "validation.required"})
	}
	return errs
}

func TestSelfCollectedErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("nothing collected", func(t *testing.T) {
		t.Parallel()
		v := profile{Name: "ok"}
		assert.NoError(t, schema.Parse(ctx, schema.Self[profile](), &v))
		assert.NoError(t, schema.All(schema.Self[profile](), schema.Any[profile]()).Validate(ctx, v))
	})

	t.Run("collected", func(t *testing.T) {
		t.Parallel()
		var v profile
		err := schema.Parse(ctx, schema.Self[profile](), &v)
		require.Error(t, err)
		assert.True(t, validator.ExtractValidationErrors(err).Has("name"))
	})
}

func TestAny(t *testing.T) {
	t.Parallel()
	assert.NoError(t, schema.Any[map[string]any]().Validate(context.Background(), nil))
}

func TestAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	noTags := schema.Rules(func(v item) []validator.Rule {
		return []validator.Rule{validator.NotEmpty("tags", v.Tags)}
	}).Default(func(v *item) {
		if v.Limit == 0 {
			v.Limit = 5
		}
	})

	t.Run("merges validation errors", func(t *testing.T) {
		t.Parallel()
		s := schema.All[item](itemSchema(), nil, noTags)
		v := item{}
		err := schema.Parse(ctx, s, &v)
		verrs := validator.ExtractValidationErrors(err)
		require.NotNil(t, verrs)
		assert.Equal(t, []string{"name", "tags"}, verrs.Fields(), "limit defaulted by the second schema")
	})

	t.Run("stops on operational error", func(t *testing.T) {
		t.Parallel()
		failure := errors.New("db down")
		s := schema.All[item](
			schema.Func(func(context.Context, item) error { return failure }),
			itemSchema(),
		)
		err := s.Validate(ctx, item{})
		assert.ErrorIs(t, err, failure)
		assert.False(t, schema.IsInvalid(err))
	})

	t.Run("passes when every schema passes", func(t *testing.T) {
		t.Parallel()
		s := schema.All[item](itemSchema(), noTags)
		assert.NoError(t, s.Validate(ctx, item{Name: "a", Limit: 2, Tags: []string{"x"}}))
	})
}
