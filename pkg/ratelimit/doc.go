// Package ratelimit provides a fixed-window rate limiter behind a small
// storage interface.
//
// The limiter counts requests per key within a fixed window and denies
// requests once the configured limit is reached; the counter resets when
// the window expires. Storage backends implement the Store interface:
// MemoryStore for single-instance deployments and RedisStore for sharing
// counters across instances.
//
//	store := ratelimit.NewMemoryStore()
//	limiter, _ := ratelimit.NewFixedWindow(store, 5, time.Minute)
//
//	res, err := limiter.Allow(ctx, clientKey)
//	if err == nil && !res.Allowed {
//		// reject with 429, res.RetryAfter() tells the client how long to wait
//	}
package ratelimit
