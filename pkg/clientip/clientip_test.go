package clientip_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemaroute/pkg/clientip"
)

func TestFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "cloudflare wins", headers: map[string]string{"CF-Connecting-IP": "203.0.113.7", "X-Forwarded-For": "198.51.100.1"}, remote: "10.0.0.1:1234", want: "203.0.113.7"},
		{name: "first valid forwarded", headers: map[string]string{"X-Forwarded-For": "garbage, 198.51.100.1, 10.0.0.2"}, remote: "10.0.0.1:1234", want: "198.51.100.1"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": " 198.51.100.9 "}, remote: "10.0.0.1:1234", want: "198.51.100.9"},
		{name: "remote addr", remote: "192.0.2.4:5678", want: "192.0.2.4"},
		{name: "ipv6 remote", remote: "[2001:db8::1]:443", want: "2001:db8::1"},
		{name: "invalid everything", headers: map[string]string{"X-Real-IP": "nope"}, remote: "bogus", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientip.FromRequest(req))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var got string
	h := clientip.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = clientip.FromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.10:9000"
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "192.0.2.10", got)

	attr, ok := clientip.LoggerExtractor()(clientip.WithContext(context.Background(), got))
	require.True(t, ok)
	assert.Equal(t, "client_ip", attr.Key)

	_, ok = clientip.LoggerExtractor()(context.Background())
	assert.False(t, ok)
}
