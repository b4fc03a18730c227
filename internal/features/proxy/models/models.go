package models

// CheckRequest is the payload of POST /api/proxy/check.
type CheckRequest struct {
	Proxies []string `json:"proxies"`
	Timeout int      `json:"timeout"`
}

const (
	StatusWorking = "working"
	StatusFailed  = "failed"
)

// ProxyResult reports the reachability of one proxy.
type ProxyResult struct {
	Proxy        string   `json:"proxy"`
	Status       string   `json:"status"`
	ResponseTime *float64 `json:"response_time,omitempty"`
	Error        string   `json:"error,omitempty"`
}
