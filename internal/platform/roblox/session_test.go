package roblox

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEndpoints(baseURL string) Endpoints {
	return Endpoints{
		Users:           baseURL,
		Economy:         baseURL,
		AccountSettings: baseURL,
		Friends:         baseURL,
		Groups:          baseURL,
		Games:           baseURL,
		Badges:          baseURL,
		Auth:            baseURL,
	}
}

func TestHandshakeCapturesCSRFToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/logout":
			w.Header().Set(CSRFHeader, "csrf-abc")
			w.WriteHeader(http.StatusForbidden)
		case "/echo":
			w.Header().Set("X-Got-CSRF", r.Header.Get(CSRFHeader))
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	sess := NewSession(testEndpoints(srv.URL), "", 5*time.Second)
	sess.Handshake(context.Background())

	resp, err := sess.Do(context.Background(), http.MethodGet, srv.URL+"/echo")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "csrf-abc", resp.Header.Get("X-Got-CSRF"))
}

func TestHandshakeWithoutTokenIsNonFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/logout":
			// 403 but no token header.
			w.WriteHeader(http.StatusForbidden)
		case "/echo":
			w.Header().Set("X-Got-CSRF", r.Header.Get(CSRFHeader))
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer srv.Close()

	sess := NewSession(testEndpoints(srv.URL), "", 5*time.Second)
	sess.Handshake(context.Background())

	resp, err := sess.Do(context.Background(), http.MethodGet, srv.URL+"/echo")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Empty(t, resp.Header.Get("X-Got-CSRF"))
}

func TestHandshakeNetworkErrorIsNonFatal(t *testing.T) {
	eps := testEndpoints("http://127.0.0.1:1")

	sess := NewSession(eps, "", 500*time.Millisecond)
	sess.Handshake(context.Background())
	// No panic, no error surfaced; the session stays usable.
}

func TestSessionAttachesCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SecurityCookie)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("X-Got-Cookie", cookie.Value)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sess := NewSession(testEndpoints(srv.URL), "", 5*time.Second)
	sess.SetCookie("token-123")

	resp, err := sess.Do(context.Background(), http.MethodGet, srv.URL+"/any")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "token-123", resp.Header.Get("X-Got-Cookie"))
}

func TestMalformedProxyFallsBackToDirect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sess := NewSession(testEndpoints(srv.URL), "://not-a-proxy", 5*time.Second)

	resp, err := sess.Do(context.Background(), http.MethodGet, srv.URL+"/any")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetJSONDecodesOnlyOn200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte(`{"id": 42}`))
		case "/denied":
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"errors":[{"message":"denied"}]}`))
		}
	}))
	defer srv.Close()

	sess := NewSession(testEndpoints(srv.URL), "", 5*time.Second)

	var payload struct {
		ID int64 `json:"id"`
	}

	status, err := sess.GetJSON(context.Background(), srv.URL+"/ok", &payload)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(42), payload.ID)

	payload.ID = 0
	status, err = sess.GetJSON(context.Background(), srv.URL+"/denied", &payload)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Zero(t, payload.ID)
}
