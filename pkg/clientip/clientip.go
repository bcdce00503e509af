package clientip

import (
	"net"
	"net/http"
	"strings"
)

// UnknownKey is returned by Key when no client address can be resolved.
// All anonymous callers share this bucket, which degrades rate-limiter
// precision behind proxies that strip forwarding headers but keeps the
// limiter functional.
const UnknownKey = "unknown"

// GetIP returns the client's IP address from an HTTP request.
// Resolution order:
// 1. CF-Connecting-IP (Cloudflare)
// 2. X-Forwarded-For (standard proxy header, first valid IP)
// 3. X-Real-IP (Nginx reverse proxy)
// 4. RemoteAddr (direct connection fallback)
// Returns an empty string when nothing resolves to a valid address.
func GetIP(r *http.Request) string {
	if ip := r.Header.Get("CF-Connecting-IP"); ip != "" {
		if parsed := parseIP(ip); parsed != "" {
			return parsed
		}
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// X-Forwarded-For can contain multiple IPs, find the first valid one
		for _, ip := range strings.Split(forwarded, ",") {
			if parsed := parseIP(strings.TrimSpace(ip)); parsed != "" {
				return parsed
			}
		}
	}

	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		if parsed := parseIP(ip); parsed != "" {
			return parsed
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If SplitHostPort fails, assume it's already just an IP
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// Key returns a rate-limit bucket key for the request: the resolved client
// IP, or UnknownKey when the address cannot be determined.
func Key(r *http.Request) string {
	if ip := GetIP(r); ip != "" {
		return ip
	}
	return UnknownKey
}

// parseIP validates and normalizes an IP address string.
// Returns empty string if the IP is invalid.
func parseIP(ipStr string) string {
	ipStr = strings.TrimSpace(ipStr)
	if ipStr == "" {
		return ""
	}

	ip := net.ParseIP(ipStr)
	if ip == nil {
		return ""
	}

	return ip.String()
}
