package roblox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// CSRFHeader carries the anti-forgery token required by mutating and
	// authenticated Roblox endpoints.
	CSRFHeader = "x-csrf-token"
)

// Session is the request context for one pipeline instance: an exclusively
// owned HTTP client bound to an optional proxy and timeout, plus the
// credentials picked up along the way (security cookie, CSRF token). It is
// never shared between concurrent pipelines.
type Session struct {
	Endpoints Endpoints

	client *http.Client
	cookie string
	csrf   string
}

// NewSession builds a session bound to proxyURL and timeout. A malformed
// proxy address is swallowed and the session falls back to a direct
// transport; proxy checking validates addresses up front instead.
func NewSession(endpoints Endpoints, proxyURL string, timeout time.Duration) *Session {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil && u.Scheme != "" && u.Host != "" {
			transport.Proxy = http.ProxyURL(u)
		}
	}

	return &Session{
		Endpoints: endpoints,
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

// SetCookie attaches the security cookie sent on all subsequent requests.
func (s *Session) SetCookie(value string) {
	s.cookie = value
}

// Handshake obtains a CSRF token by issuing a credential-less logout, which
// Roblox rejects with 403 plus the token header. Any failure is non-fatal:
// later authenticated calls surface their own errors.
func (s *Session) Handshake(ctx context.Context) {
	resp, err := s.Do(ctx, http.MethodPost, s.Endpoints.Auth+"/v2/logout")
	if err != nil {
		return
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode == http.StatusForbidden {
		if token := resp.Header.Get(CSRFHeader); token != "" {
			s.csrf = token
		}
	}
}

// Do issues a request with the session's identity headers and credentials.
// The caller owns the response body.
func (s *Session) Do(ctx context.Context, method, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if s.csrf != "" {
		req.Header.Set(CSRFHeader, s.csrf)
	}
	if s.cookie != "" {
		req.AddCookie(&http.Cookie{Name: SecurityCookie, Value: s.cookie})
	}

	return s.client.Do(req)
}

// GetJSON issues a GET and decodes the body into dest when the status is
// 200. The status code is returned either way so callers can distinguish
// auth failures from transport errors.
func (s *Session) GetJSON(ctx context.Context, rawURL string, dest interface{}) (int, error) {
	resp, err := s.Do(ctx, http.MethodGet, rawURL)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return resp.StatusCode, nil
}
