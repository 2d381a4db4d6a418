package client

import (
	"context"
	"errors"
	"sync"
	"time"
)

const (
	// cacheFreshTTL is how long a fetched collection is served without
	// refetching.
	cacheFreshTTL = 5 * time.Minute
	// cacheGCTTL is the idle window after which an untouched entry is
	// dropped entirely.
	cacheGCTTL = 10 * time.Minute
	// readRetries is the number of extra attempts for transient read
	// failures. Writes are never retried.
	readRetries = 2

	retryBackoff = 250 * time.Millisecond
)

type cacheEntry struct {
	data       any
	fetchedAt  time.Time
	lastAccess time.Time
}

// queryCache is a keyed read-through cache, one entry per entity type. It
// never mutates cached data locally; writes invalidate a key and the next
// read re-derives state from the server.
type queryCache struct {
	clock func() time.Time

	mu      sync.Mutex
	entries map[string]*cacheEntry
}

func newQueryCache() *queryCache {
	return &queryCache{
		clock:   time.Now,
		entries: make(map[string]*cacheEntry),
	}
}

// get returns fresh cached data for key, or calls fetch and caches the
// result. Expired and idle entries are evicted on the way in.
func (qc *queryCache) get(ctx context.Context, key string, fetch func(ctx context.Context) (any, error)) (any, error) {
	now := qc.clock()

	qc.mu.Lock()
	qc.evictIdle(now)
	if entry, ok := qc.entries[key]; ok && now.Sub(entry.fetchedAt) < cacheFreshTTL {
		entry.lastAccess = now
		data := entry.data
		qc.mu.Unlock()
		return data, nil
	}
	qc.mu.Unlock()

	data, err := fetchWithRetry(ctx, fetch)
	if err != nil {
		return nil, err
	}

	now = qc.clock()
	qc.mu.Lock()
	qc.entries[key] = &cacheEntry{data: data, fetchedAt: now, lastAccess: now}
	qc.mu.Unlock()

	return data, nil
}

// invalidate forces the next read of key to refetch. Called only after the
// backend has acknowledged a write.
func (qc *queryCache) invalidate(key string) {
	qc.mu.Lock()
	delete(qc.entries, key)
	qc.mu.Unlock()
}

// evictIdle drops entries nobody has touched within the GC window.
// Caller holds qc.mu.
func (qc *queryCache) evictIdle(now time.Time) {
	for key, entry := range qc.entries {
		if now.Sub(entry.lastAccess) >= cacheGCTTL {
			delete(qc.entries, key)
		}
	}
}

// fetchWithRetry retries transient failures (network errors and 5xx) up to
// readRetries extra attempts. 4xx responses fail immediately.
func fetchWithRetry(ctx context.Context, fetch func(ctx context.Context) (any, error)) (any, error) {
	var lastErr error
	for attempt := 0; attempt <= readRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryBackoff):
			}
		}

		data, err := fetch(ctx)
		if err == nil {
			return data, nil
		}
		lastErr = err

		if !transient(err) {
			return nil, err
		}
	}
	return nil, lastErr
}

// transient reports whether err is worth retrying: anything that is not a
// definitive 4xx answer from the server.
func transient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Transient()
	}
	// Network-level failure with no HTTP response.
	return true
}
