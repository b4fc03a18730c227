package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meowtool-backend/internal/features/proxy/models"
	"meowtool-backend/internal/platform/roblox"
)

// newProxyStub returns a server that acts as a permissive HTTP forward
// proxy: it answers 200 to any request routed through it.
func newProxyStub() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"origin": "127.0.0.1"}`))
	}))
}

func TestCheckMixedProxies(t *testing.T) {
	proxyStub := newProxyStub()
	defer proxyStub.Close()

	// The probe target is plain http so the request is forwarded through
	// the proxy instead of tunneled.
	svc := NewProxyService(roblox.DefaultEndpoints(), "http://probe.invalid/ip")

	proxies := []string{
		proxyStub.URL,        // reachable
		"http://127.0.0.1:1", // nothing listening
		"://not-a-proxy",     // malformed
	}

	results := svc.Check(context.Background(), &models.CheckRequest{
		Proxies: proxies,
		Timeout: 2,
	})

	require.Len(t, results, len(proxies))
	for i, proxy := range proxies {
		assert.Equal(t, proxy, results[i].Proxy)
	}

	assert.Equal(t, models.StatusWorking, results[0].Status)
	assert.Empty(t, results[0].Error)
	require.NotNil(t, results[0].ResponseTime)
	assert.GreaterOrEqual(t, *results[0].ResponseTime, 0.0)

	assert.Equal(t, models.StatusFailed, results[1].Status)
	assert.NotEmpty(t, results[1].Error)

	assert.Equal(t, models.StatusFailed, results[2].Status)
	assert.NotEmpty(t, results[2].Error)
	assert.Contains(t, results[2].Error, "invalid proxy URL")
}

func TestCheckNonOKProbeResponse(t *testing.T) {
	proxyStub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer proxyStub.Close()

	svc := NewProxyService(roblox.DefaultEndpoints(), "http://probe.invalid/ip")

	results := svc.Check(context.Background(), &models.CheckRequest{
		Proxies: []string{proxyStub.URL},
		Timeout: 2,
	})

	require.Len(t, results, 1)
	assert.Equal(t, models.StatusFailed, results[0].Status)
	assert.Equal(t, "HTTP 502", results[0].Error)
}

func TestCheckEmptyBatch(t *testing.T) {
	svc := NewProxyService(roblox.DefaultEndpoints(), "")

	results := svc.Check(context.Background(), &models.CheckRequest{Timeout: 2})

	assert.NotNil(t, results)
	assert.Len(t, results, 0)
}

func TestDefaultProbeURL(t *testing.T) {
	svc := NewProxyService(roblox.DefaultEndpoints(), "")
	assert.Equal(t, DefaultProbeURL, svc.(*proxyService).probeURL)
}
