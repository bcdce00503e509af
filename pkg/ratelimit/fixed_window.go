package ratelimit

import (
	"context"
	"time"
)

// FixedWindow implements a fixed-window rate limiter: up to limit requests
// per window, with the counter reset when the window expires. The counter
// lives behind the Store interface so single-instance deployments can use
// the in-memory store and multi-instance deployments a shared Redis store.
type FixedWindow struct {
	store  Store
	limit  int
	window time.Duration
}

// NewFixedWindow creates a fixed-window rate limiter.
func NewFixedWindow(store Store, limit int, window time.Duration) (*FixedWindow, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	return &FixedWindow{
		store:  store,
		limit:  limit,
		window: window,
	}, nil
}

// Allow checks if a single request is allowed for the given key.
func (fw *FixedWindow) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	current, ttl, err := fw.store.IncrementAndGet(ctx, key, 1, fw.window)
	if err != nil {
		return nil, err
	}

	return fw.result(current, ttl), nil
}

// Status returns the current rate limit status without consuming a slot.
func (fw *FixedWindow) Status(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	current, ttl, err := fw.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	// Status reports whether the NEXT request would be allowed.
	res := fw.result(current+1, ttl)
	if current == 0 {
		res.ResetAt = time.Now().Add(fw.window)
	}
	return res, nil
}

// Reset clears the counter for the given key.
func (fw *FixedWindow) Reset(ctx context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	return fw.store.Delete(ctx, key)
}

func (fw *FixedWindow) result(current int64, ttl time.Duration) *Result {
	remaining := fw.limit - int(current)
	if remaining < 0 {
		remaining = 0
	}
	return &Result{
		Allowed:   current <= int64(fw.limit),
		Limit:     fw.limit,
		Remaining: remaining,
		ResetAt:   time.Now().Add(ttl),
	}
}
