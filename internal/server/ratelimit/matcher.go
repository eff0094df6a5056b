package ratelimit

import (
	"strings"
)

// MatchEndpoint resolves the rate limit tier for a request path and method.
// The health check is never limited. An exact path+method match wins over a
// prefix match; tiers whose path ends in "/" match by prefix, so "/postings/"
// covers "/postings/{id}/screening". Returns nil when no tier applies and the
// caller should fall back to the default limit.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		// Limit 0 means unlimited.
		return &EndpointConfig{}
	}

	var byPrefix *EndpointConfig
	for i := range configs {
		cfg := &configs[i]
		if cfg.Method != method {
			continue
		}
		if cfg.Path == path {
			return cfg
		}
		if byPrefix == nil && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			byPrefix = cfg
		}
	}
	return byPrefix
}
