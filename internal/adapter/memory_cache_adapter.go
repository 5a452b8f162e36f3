package adapter

import (
	"context"
	"strconv"
	"sync"
	"time"

	"feline-fascination/internal/domain"
	"feline-fascination/internal/logger"
	"feline-fascination/internal/scheduler"

	"go.uber.org/zap"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryCacheAdapter implements domain.Cache inside the process. State is
// lost on restart. Expired entries are dropped on access and by the janitor
// started with StartJanitor.
type MemoryCacheAdapter struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
	janitor *scheduler.PeriodicTask
}

// NewMemoryCacheAdapter creates an empty in-process cache.
func NewMemoryCacheAdapter() *MemoryCacheAdapter {
	return &MemoryCacheAdapter{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryCacheAdapter) lookup(key string) (memoryEntry, bool) {
	e, ok := m.entries[key]
	if !ok {
		return memoryEntry{}, false
	}
	if e.expired(m.now()) {
		delete(m.entries, key)
		return memoryEntry{}, false
	}
	return e, true
}

func (m *MemoryCacheAdapter) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.lookup(key)
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return e.value, nil
}

func (m *MemoryCacheAdapter) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := memoryEntry{value: value}
	if expiration > 0 {
		e.expiresAt = m.now().Add(expiration)
	}
	m.entries[key] = e
	return nil
}

func (m *MemoryCacheAdapter) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

// Incr keeps the key's expiry, matching Redis INCR.
func (m *MemoryCacheAdapter) Incr(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, _ := m.lookup(key)
	var n int64
	if e.value != "" {
		parsed, err := strconv.ParseInt(e.value, 10, 64)
		if err != nil {
			return 0, domain.NewInternalError("value is not an integer", err).WithContext("key", key)
		}
		n = parsed
	}
	n++
	e.value = strconv.FormatInt(n, 10)
	m.entries[key] = e
	return n, nil
}

func (m *MemoryCacheAdapter) Ping(ctx context.Context) error {
	return nil
}

// Len reports how many entries are held, expired or not.
func (m *MemoryCacheAdapter) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}

// DeleteExpired removes every expired entry and returns how many it removed.
func (m *MemoryCacheAdapter) DeleteExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for key, e := range m.entries {
		if e.expired(now) {
			delete(m.entries, key)
			removed++
		}
	}
	return removed
}

// StartJanitor sweeps expired entries every interval until Close is called
// or ctx is cancelled.
func (m *MemoryCacheAdapter) StartJanitor(ctx context.Context, interval time.Duration) error {
	task, err := scheduler.NewPeriodicTask("memory-cache-janitor", interval, func(context.Context) {
		if n := m.DeleteExpired(); n > 0 {
			logger.Get().Debug("Expired cache entries removed", zap.Int("count", n))
		}
	})
	if err != nil {
		return err
	}
	if err := task.Start(ctx); err != nil {
		return err
	}

	m.mu.Lock()
	m.janitor = task
	m.mu.Unlock()
	return nil
}

// Close stops the janitor, if any, and waits for it to exit.
func (m *MemoryCacheAdapter) Close() {
	m.mu.Lock()
	task := m.janitor
	m.mu.Unlock()

	if task != nil {
		task.Stop()
	}
}
