package binder_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemaroute/pkg/binder"
)

type createItem struct {
	Name  string   `json:"name" form:"name"`
	Price float64  `json:"price" form:"price"`
	Tags  []string `json:"tags" form:"tags"`
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"lamp","price":9.5,"tags":["home"]}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")

		var got createItem
		require.NoError(t, binder.JSON()(req, &got))
		assert.Equal(t, createItem{Name: "lamp", Price: 9.5, Tags: []string{"home"}}, got)
	})

	t.Run("accepts json suffix media types", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"lamp"}`))
		req.Header.Set("Content-Type", "application/merge-patch+json")

		var got createItem
		require.NoError(t, binder.JSON()(req, &got))
		assert.Equal(t, "lamp", got.Name)
	})

	t.Run("decodes into non struct targets", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`[1,2,3]`))
		req.Header.Set("Content-Type", "application/json")

		var got []int
		require.NoError(t, binder.JSON()(req, &got))
		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"lamp","admin":true}`))
		req.Header.Set("Content-Type", "application/json")

		var got createItem
		assert.ErrorIs(t, binder.JSON()(req, &got), binder.ErrInvalidJSON)
	})

	t.Run("reports type mismatch field", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"price":"free"}`))
		req.Header.Set("Content-Type", "application/json")

		var got createItem
		err := binder.JSON()(req, &got)
		require.ErrorIs(t, err, binder.ErrInvalidJSON)
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}{"name":"b"}`))
		req.Header.Set("Content-Type", "application/json")

		var got createItem
		assert.ErrorIs(t, binder.JSON()(req, &got), binder.ErrInvalidJSON)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("  "))
		req.Header.Set("Content-Type", "application/json")

		var got createItem
		assert.ErrorIs(t, binder.JSON()(req, &got), binder.ErrEmptyBody)
	})

	t.Run("too large", func(t *testing.T) {
		t.Parallel()
		payload := `{"name":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		var got createItem
		assert.ErrorIs(t, binder.JSON()(req, &got), binder.ErrBodyTooLarge)
	})

	t.Run("wrong media type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "text/plain")

		var got createItem
		assert.ErrorIs(t, binder.JSON()(req, &got), binder.ErrUnsupportedMediaType)
	})
}

func TestForm(t *testing.T) {
	t.Parallel()

	t.Run("urlencoded ignores query string", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/?name=fromquery", strings.NewReader("name=lamp&price=3&tags=a&tags=b"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got createItem
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, createItem{Name: "lamp", Price: 3, Tags: []string{"a", "b"}}, got)
	})

	t.Run("multipart", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("name", "desk"))
		require.NoError(t, mw.WriteField("price", "120"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())

		var got createItem
		require.NoError(t, binder.Form()(req, &got))
		assert.Equal(t, createItem{Name: "desk", Price: 120}, got)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("price=abc"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var got createItem
		assert.ErrorIs(t, binder.Form()(req, &got), binder.ErrInvalidForm)
	})
}

func TestBody(t *testing.T) {
	t.Parallel()

	t.Run("dispatches on content type", func(t *testing.T) {
		t.Parallel()
		jsonReq := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}`))
		jsonReq.Header.Set("Content-Type", "application/json")
		formReq := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=b"))
		formReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		var fromJSON, fromForm createItem
		require.NoError(t, binder.Body()(jsonReq, &fromJSON))
		require.NoError(t, binder.Body()(formReq, &fromForm))
		assert.Equal(t, "a", fromJSON.Name)
		assert.Equal(t, "b", fromForm.Name)
	})

	t.Run("empty body without content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", nil)

		var got createItem
		assert.ErrorIs(t, binder.Body()(req, &got), binder.ErrEmptyBody)
	})

	t.Run("body without content type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}`))

		var got createItem
		assert.ErrorIs(t, binder.Body()(req, &got), binder.ErrMissingContentType)
	})

	t.Run("unsupported media type", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`<a/>`))
		req.Header.Set("Content-Type", "application/xml")

		var got createItem
		assert.ErrorIs(t, binder.Body()(req, &got), binder.ErrUnsupportedMediaType)
	})
}
