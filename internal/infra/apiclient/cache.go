package apiclient

import (
	"context"
	"strings"
	"sync"
	"time"

	"market-admin/internal/domain/session"
	"market-admin/internal/pkg/clock"
)

// CacheKey identifies a cached read. Scope separates sessions sharing one store.
type CacheKey struct {
	Scope  string
	Method string
	Path   string
	Query  string
}

func (k CacheKey) String() string {
	return k.Scope + "|" + k.Method + "|" + k.Path + "|" + k.Query
}

func parseCacheKey(s string) (CacheKey, bool) {
	parts := strings.SplitN(s, "|", 4)
	if len(parts) != 4 {
		return CacheKey{}, false
	}
	return CacheKey{Scope: parts[0], Method: parts[1], Path: parts[2], Query: parts[3]}, true
}

// UnderResource reports whether the key's path is root itself or nested below it.
// Absolute-URL reads are matched by absolute roots.
func (k CacheKey) UnderResource(root string) bool {
	root = normalizeRoot(root)
	if root == "" {
		return true
	}
	return k.Path == root || strings.HasPrefix(k.Path, root+"/")
}

// CacheEntry is immutable once stored; refreshing a key replaces the entry.
type CacheEntry struct {
	Key      CacheKey      `json:"key"`
	Value    []byte        `json:"value"`
	StoredAt time.Time     `json:"stored_at"`
	TTL      time.Duration `json:"ttl"`
}

func (e CacheEntry) Fresh(now time.Time) bool {
	return now.Before(e.StoredAt.Add(e.TTL))
}

// Cache stores reads for the facade. Every invalidation advances an epoch; a read
// dispatched at epoch e is stored only if no root covering it was invalidated after e.
type Cache interface {
	Get(ctx context.Context, key CacheKey) (CacheEntry, bool, error)
	Epoch(ctx context.Context) (uint64, error)
	// SetIfCurrent stores entry unless its resource was invalidated after since.
	SetIfCurrent(ctx context.Context, entry CacheEntry, since uint64) (bool, error)
	// InvalidateResource drops every entry, in every scope, under root.
	InvalidateResource(ctx context.Context, root string) error
}

func normalizeRoot(root string) string {
	return strings.TrimRight(root, "/")
}

// invalidatedSince reports whether any root recorded in invalidated covers key
// with an epoch newer than since.
func invalidatedSince(invalidated map[string]uint64, key CacheKey, since uint64) bool {
	for root, epoch := range invalidated {
		if epoch > since && key.UnderResource(root) {
			return true
		}
	}
	return false
}

func scopeFor(token string) string {
	return session.Fingerprint(token)
}

type MemoryCache struct {
	mu          sync.RWMutex
	entries     map[string]CacheEntry
	invalidated map[string]uint64
	epoch       uint64
	clock       clock.Clock
}

func NewMemoryCache(clk clock.Clock) *MemoryCache {
	return &MemoryCache{
		entries:     make(map[string]CacheEntry),
		invalidated: make(map[string]uint64),
		clock:       clk,
	}
}

func (m *MemoryCache) Get(_ context.Context, key CacheKey) (CacheEntry, bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key.String()]
	m.mu.RUnlock()
	if !ok {
		return CacheEntry{}, false, nil
	}
	if !entry.Fresh(m.clock.Now()) {
		m.mu.Lock()
		if current, ok := m.entries[key.String()]; ok && !current.Fresh(m.clock.Now()) {
			delete(m.entries, key.String())
		}
		m.mu.Unlock()
		return CacheEntry{}, false, nil
	}
	return entry, true, nil
}

func (m *MemoryCache) Epoch(_ context.Context) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.epoch, nil
}

func (m *MemoryCache) SetIfCurrent(_ context.Context, entry CacheEntry, since uint64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if invalidatedSince(m.invalidated, entry.Key, since) {
		return false, nil
	}
	m.entries[entry.Key.String()] = entry
	return true, nil
}

func (m *MemoryCache) InvalidateResource(_ context.Context, root string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.epoch++
	m.invalidated[normalizeRoot(root)] = m.epoch
	for k, entry := range m.entries {
		if entry.Key.UnderResource(root) {
			delete(m.entries, k)
		}
	}
	return nil
}

func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
