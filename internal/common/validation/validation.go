package validation

import (
	"fmt"
	"net/url"
)

const (
	// Bounds for the caller-supplied per-request timeout, in seconds.
	MinTimeout     = 1
	MaxTimeout     = 120
	DefaultTimeout = 10

	// Upper bounds on batch sizes, matching what the frontend submits.
	MaxCookiesPerRequest = 500
	MaxProxiesPerRequest = 500

	// Upper bound on an uploaded cookie export.
	MaxUploadBytes = 16 << 20
)

// NormalizeTimeout clamps a caller-supplied timeout to the allowed range,
// substituting the default when unset.
func NormalizeTimeout(seconds int) int {
	if seconds <= 0 {
		return DefaultTimeout
	}
	if seconds < MinTimeout {
		return MinTimeout
	}
	if seconds > MaxTimeout {
		return MaxTimeout
	}
	return seconds
}

// ValidateBatchSize checks a batch length against its limit.
func ValidateBatchSize(name string, got, limit int) error {
	if got > limit {
		return fmt.Errorf("%s: at most %d entries allowed, got %d", name, limit, got)
	}
	return nil
}

// ValidateProxyURL checks that a proxy address is a parseable URL with a
// scheme and host. http, https and socks5 proxies are supported by the
// outbound transport.
func ValidateProxyURL(proxy string) error {
	u, err := url.Parse(proxy)
	if err != nil {
		return fmt.Errorf("invalid proxy URL: %v", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid proxy URL: missing scheme or host")
	}
	return nil
}

// ValidatePlaceID checks a Roblox place/universe identifier.
func ValidatePlaceID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("place_id must be positive")
	}
	return nil
}
