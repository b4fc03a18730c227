package service

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"sync"
	"time"

	"meowtool-backend/internal/common/validation"
	"meowtool-backend/internal/features/proxy/models"
	"meowtool-backend/internal/platform/roblox"
)

// DefaultProbeURL is the reachability endpoint probed through each proxy.
const DefaultProbeURL = "https://httpbin.org/ip"

const (
	maxConcurrentProbes = 50
	errorEchoLength     = 100
)

type ProxyService interface {
	Check(ctx context.Context, req *models.CheckRequest) []models.ProxyResult
}

type proxyService struct {
	endpoints roblox.Endpoints
	probeURL  string
}

// NewProxyService creates a proxy reachability checker. An empty probeURL
// selects DefaultProbeURL.
func NewProxyService(endpoints roblox.Endpoints, probeURL string) ProxyService {
	if probeURL == "" {
		probeURL = DefaultProbeURL
	}
	return &proxyService{endpoints: endpoints, probeURL: probeURL}
}

// Check probes a batch of proxies concurrently. One result per input, input
// order preserved; a dead or malformed proxy never affects its siblings.
func (s *proxyService) Check(ctx context.Context, req *models.CheckRequest) []models.ProxyResult {
	timeout := time.Duration(validation.NormalizeTimeout(req.Timeout)) * time.Second
	results := make([]models.ProxyResult, len(req.Proxies))

	sem := make(chan struct{}, maxConcurrentProbes)
	var wg sync.WaitGroup

	for i, proxy := range req.Proxies {
		wg.Add(1)
		go func(i int, proxy string) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					results[i] = models.ProxyResult{
						Proxy:  proxy,
						Status: models.StatusFailed,
						Error:  fmt.Sprintf("internal error: %v", r),
					}
				}
			}()

			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = s.checkOne(ctx, proxy, timeout)
		}(i, proxy)
	}

	wg.Wait()
	return results
}

func (s *proxyService) checkOne(ctx context.Context, proxy string, timeout time.Duration) models.ProxyResult {
	start := time.Now()

	// A proxy address that does not even parse is reported as failed
	// outright instead of silently probing without it.
	if err := validation.ValidateProxyURL(proxy); err != nil {
		elapsed := roundSeconds(time.Since(start))
		return models.ProxyResult{
			Proxy:        proxy,
			Status:       models.StatusFailed,
			ResponseTime: &elapsed,
			Error:        err.Error(),
		}
	}

	sess := roblox.NewSession(s.endpoints, proxy, timeout)
	resp, err := sess.Do(ctx, http.MethodGet, s.probeURL)
	elapsed := roundSeconds(time.Since(start))

	if err != nil {
		return models.ProxyResult{
			Proxy:        proxy,
			Status:       models.StatusFailed,
			ResponseTime: &elapsed,
			Error:        truncateMessage(err.Error()),
		}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return models.ProxyResult{
			Proxy:        proxy,
			Status:       models.StatusFailed,
			ResponseTime: &elapsed,
			Error:        fmt.Sprintf("HTTP %d", resp.StatusCode),
		}
	}

	return models.ProxyResult{
		Proxy:        proxy,
		Status:       models.StatusWorking,
		ResponseTime: &elapsed,
	}
}

func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}

func truncateMessage(msg string) string {
	if len(msg) <= errorEchoLength {
		return msg
	}
	return msg[:errorEchoLength]
}
