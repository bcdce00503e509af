// Package clientip extracts the originating client's IP address from an
// *http.Request when the application is deployed behind one or more
// reverse proxies.
//
// The resolution algorithm examines forwarding headers in descending
// priority until the first valid IP address is found:
//
//  1. CF-Connecting-IP – Cloudflare
//  2. X-Forwarded-For  – comma-separated list (the first IP is used)
//  3. X-Real-IP        – set by reverse proxies such as Nginx
//  4. RemoteAddr       – TCP peer address as a fallback
//
// Key wraps GetIP for rate-limiting use: callers that cannot be resolved
// collapse onto a single shared "unknown" bucket instead of bypassing the
// limiter entirely.
package clientip
