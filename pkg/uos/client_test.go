package uos

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	client, err := New(&Config{
		PassportEndpoint:     url,
		RemoteConfigEndpoint: url,
		Credentials:          StaticCredentials("A", "B"),
		Logger:               hclog.NewNullLogger(),
	})
	require.NoError(t, err)
	return client
}

func TestClientDo(t *testing.T) {
	t.Run("Sends authenticated JSON request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/realms/search", r.URL.Path)
			assert.Equal(t, "Basic QTpC", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Empty(t, body)

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"realms":[]}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		res, err := client.Do(context.Background(), http.MethodPost, client.PassportURL("/v1/realms/search"), nil)
		require.NoError(t, err)
		require.True(t, res.OK, res.Error)
		assert.Equal(t, []any{}, res.Value["realms"])
	})

	t.Run("Service unavailable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"reason":"down"}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		res, err := client.Do(context.Background(), http.MethodGet, client.PassportURL("/v1/users/u1"), nil)
		require.NoError(t, err)
		assert.False(t, res.OK)
		assert.Equal(t, `http[503]: http status code is 503, Service Unavailable, {"reason":"down"}`, res.Error)
	})

	t.Run("Service error payload", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"code":"E1","message":"boom"}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)
		res, err := client.Do(context.Background(), http.MethodGet, client.PassportURL("/v1/users/u1"), nil)
		require.NoError(t, err)
		assert.False(t, res.OK)
		assert.Equal(t, "E1: boom", res.Error)
	})

	t.Run("Timeout", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer server.Close()
		defer close(release)

		client, err := New(&Config{
			PassportEndpoint:     server.URL,
			RemoteConfigEndpoint: server.URL,
			Timeout:              20 * time.Millisecond,
			Credentials:          StaticCredentials("A", "B"),
		})
		require.NoError(t, err)

		res, err := client.Do(context.Background(), http.MethodGet, client.PassportURL("/slow"), nil)
		require.NoError(t, err)
		assert.False(t, res.OK)
		assert.Contains(t, res.Error, "http[0]: request timed out")
	})

	t.Run("No response", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		client := newTestClient(t, url)
		res, err := client.Do(context.Background(), http.MethodGet, client.PassportURL("/v1/users/u1"), nil)
		require.NoError(t, err)
		assert.False(t, res.OK)
		assert.Regexp(t, `^http\[0\]: `, res.Error)
	})

	t.Run("Request error", func(t *testing.T) {
		client := newTestClient(t, "http://localhost")
		res, err := client.Do(context.Background(), http.MethodGet, "http://local host/\x7f", nil)
		require.NoError(t, err)
		assert.False(t, res.OK)
		assert.Regexp(t, `^unknown: request could not be sent, `, res.Error)
	})

	t.Run("Missing credentials make no call", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer server.Close()

		client, err := New(&Config{
			PassportEndpoint:     server.URL,
			RemoteConfigEndpoint: server.URL,
			Credentials: NewCredentials(func(string) (string, bool) {
				return "", false
			}),
		})
		require.NoError(t, err)

		res, err := client.Do(context.Background(), http.MethodGet, client.PassportURL("/v1/users/u1"), nil)
		var cfgErr *ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.False(t, res.OK)
		assert.False(t, called)

		_, err = client.Exec(context.Background(), http.MethodDelete, client.PassportURL("/v1/users/u1"), nil)
		assert.ErrorIs(t, err, ErrMissingCredentials)
		assert.False(t, called)
	})
}

func TestClientExec(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte(`{}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"code":"InvalidArgument","message":"bad status"}`))
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	res, err := client.Exec(context.Background(), http.MethodPut, client.PassportURL("/ok"), map[string]string{"name": "n"})
	require.NoError(t, err)
	assert.True(t, res.OK)

	res, err = client.Exec(context.Background(), http.MethodPut, client.PassportURL("/bad"), nil)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, "InvalidArgument: bad status", res.Error)
}

type recordingSender struct {
	requests []*Request
	outcome  Outcome
}

func (s *recordingSender) Send(ctx context.Context, req *Request) Outcome {
	s.requests = append(s.requests, req)
	return s.outcome
}

func TestClientUsesConfiguredSender(t *testing.T) {
	sender := &recordingSender{
		outcome: Outcome{Kind: OutcomeResponse, Status: 200, Body: Payload{"x": "y"}},
	}
	client, err := New(&Config{
		Credentials: StaticCredentials("A", "B"),
		Sender:      sender,
		Timeout:     5 * time.Second,
	})
	require.NoError(t, err)

	res, err := client.Do(context.Background(), http.MethodGet, client.RemoteConfigURL("/v1/configs"), nil)
	require.NoError(t, err)
	assert.True(t, res.OK)

	require.Len(t, sender.requests, 1)
	req := sender.requests[0]
	assert.Equal(t, DefaultRemoteConfigEndpoint+"/v1/configs", req.URL)
	assert.Equal(t, "Basic QTpC", req.Header.Get("Authorization"))
	assert.Equal(t, 5*time.Second, req.Timeout)
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(&Config{PassportEndpoint: "ftp://example.com"})
	assert.Error(t, err)

	_, err = New(&Config{Timeout: time.Microsecond})
	assert.Error(t, err)
}

func TestPathSegment(t *testing.T) {
	assert.Equal(t, "a%2Fb", PathSegment("a/b"))
	assert.Equal(t, "u1", PathSegment("u1"))
}
