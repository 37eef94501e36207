package remote

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/andybalholm/brotli"
	"github.com/bnema/labdesk/internal/domain"
	"github.com/bnema/labdesk/internal/ports"
	"github.com/bnema/labdesk/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientCallBuildsGetRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/amostras/AM%2F7", r.URL.EscapedPath())
		assert.Equal(t, "search=%C3%A1gua+bruta&status=received", r.URL.RawQuery)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		assert.Equal(t, "labdesk/test", r.Header.Get("User-Agent"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))
		assert.Empty(t, r.Header.Get("Content-Type"))
		_, _ = io.WriteString(w, `{"id":7}`)
	}))
	defer server.Close()

	client := NewClient(staticResolver(t, server.URL), WithUserAgent("labdesk/test"))

	query := url.Values{}
	query.Set("status", "received")
	query.Set("search", "água bruta")
	raw, err := client.Call(context.Background(), ports.Request{
		Method: http.MethodGet,
		Path:   "/amostras",
		Params: []string{"AM/7"},
		Query:  query,
		Token:  "token-123",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, raw.StatusCode)
	assert.JSONEq(t, `{"id":7}`, string(raw.Body))
}

func TestClientCallSendsJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "AM-1", payload["code"])

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":1,"code":"AM-1"}`)
	}))
	defer server.Close()

	client := NewClient(staticResolver(t, server.URL))
	raw, err := client.Call(context.Background(), ports.Request{
		Method: http.MethodPost,
		Path:   "/amostras",
		Body:   map[string]string{"code": "AM-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, raw.StatusCode)
	assert.True(t, raw.OK())
}

func TestClientCallDecodesCompressedBodies(t *testing.T) {
	testCases := []struct {
		name     string
		encoding string
		compress func(t *testing.T, data []byte) []byte
	}{
		{name: "brotli", encoding: "br", compress: brotliBytes},
		{name: "gzip", encoding: "gzip", compress: gzipBytes},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			compressed := tc.compress(t, []byte(`{"success":true,"data":[1,2,3]}`))
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Contains(t, r.Header.Get("Accept-Encoding"), "br")
				w.Header().Set("Content-Encoding", tc.encoding)
				_, _ = w.Write(compressed)
			}))
			defer server.Close()

			raw, err := NewClient(staticResolver(t, server.URL)).Call(context.Background(), ports.Request{Method: http.MethodGet, Path: "/tecnicas"})
			require.NoError(t, err)
			assert.JSONEq(t, `{"success":true,"data":[1,2,3]}`, string(raw.Body))
			assert.Empty(t, raw.Header.Get("Content-Encoding"))
		})
	}
}

func TestClientCallReturnsStatusAndBodyForErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "sample not found")
	}))
	defer server.Close()

	raw, err := NewClient(staticResolver(t, server.URL)).Call(context.Background(), ports.Request{Method: http.MethodGet, Path: "/amostras", Params: []string{"99"}})
	require.NoError(t, err)
	assert.False(t, raw.OK())
	assert.Equal(t, http.StatusNotFound, raw.StatusCode)
	assert.Equal(t, "sample not found", string(raw.Body))
}

func TestClientCallRejectsBodiesOverTheLimit(t *testing.T) {
	testCases := []struct {
		name    string
		binary  bool
		size    int
		wantErr bool
	}{
		{name: "json at limit", size: 16},
		{name: "json over limit", size: 17, wantErr: true},
		{name: "binary at limit", binary: true, size: 32},
		{name: "binary over limit", binary: true, size: 33, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write(bytes.Repeat([]byte("x"), tc.size))
			}))
			defer server.Close()

			client := NewClient(staticResolver(t, server.URL), WithBodyLimits(16, 32))
			raw, err := client.Call(context.Background(), ports.Request{Method: http.MethodGet, Path: "/arquivos", Binary: tc.binary})
			if !tc.wantErr {
				require.NoError(t, err)
				assert.Len(t, raw.Body, tc.size)
				return
			}

			var transportErr *domain.TransportError
			require.ErrorAs(t, err, &transportErr)
			assert.ErrorIs(t, err, ErrResponseTooLarge)
			assert.Empty(t, raw.Body)
		})
	}
}

func TestClientCallReturnsTransportErrorWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	_, err := NewClient(staticResolver(t, baseURL)).Call(context.Background(), ports.Request{Method: http.MethodGet, Path: "/usuarios"})
	require.Error(t, err)

	var transportErr *domain.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.MethodGet, transportErr.Method)
	assert.Contains(t, transportErr.URL, "/usuarios")
}

func TestClientCallTimesOut(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(staticResolver(t, server.URL), WithTimeout(50*time.Millisecond))
	_, err := client.Call(context.Background(), ports.Request{Method: http.MethodGet, Path: "/inventarios"})
	require.Error(t, err)

	var transportErr *domain.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestClientCallRejectsInvalidBaseURL(t *testing.T) {
	_, err := NewClient(staticResolver(t, "ftp://files.lab")).Call(context.Background(), ports.Request{Method: http.MethodGet, Path: "/arquivos"})

	var transportErr *domain.TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Contains(t, err.Error(), "api base url must use http or https")
}

func TestBuildURL(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		base    string
		path    string
		params  []string
		query   url.Values
		want    string
		wantErr string
	}{
		{name: "base only path", base: "http://localhost:8080", path: "/usuarios", want: "http://localhost:8080/usuarios"},
		{name: "trailing slash", base: "http://localhost:8080/", path: "usuarios/", want: "http://localhost:8080/usuarios"},
		{name: "base with prefix", base: "https://lab.test/api", path: "/tecnicas", params: []string{"3"}, want: "https://lab.test/api/tecnicas/3"},
		{name: "escaped params", base: "http://x:1", path: "/arquivos", params: []string{"laudo final.pdf"}, want: "http://x:1/arquivos/laudo%20final.pdf"},
		{name: "query", base: "http://x:1", path: "/amostras", query: url.Values{"page": []string{"2"}}, want: "http://x:1/amostras?page=2"},
		{name: "empty param", base: "http://x:1", path: "/amostras", params: []string{" "}, wantErr: "path parameter 0 is empty"},
		{name: "missing host", base: "http://", path: "/amostras", wantErr: "api base url host is required"},
		{name: "empty base", base: "", path: "/amostras", wantErr: "api base url is required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BuildURL(tc.base, tc.path, tc.params, tc.query)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func staticResolver(t *testing.T, baseURL string) *mocks.MockEndpointResolver {
	t.Helper()

	resolver := mocks.NewMockEndpointResolver(t)
	resolver.EXPECT().APIBase().Return(baseURL).Maybe()
	return resolver
}

func brotliBytes(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	writer := brotli.NewWriter(&buf)
	_, err := writer.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return buf.Bytes()
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	writer := gzip.NewWriter(&buf)
	_, err := writer.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return buf.Bytes()
}
