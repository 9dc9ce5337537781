package repository

import "sync"

// MockCache is a map-backed CacheRepository used when no redis address is
// configured, and by tests.
type MockCache struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMockCache() *MockCache {
	return &MockCache{
		data: make(map[string]string),
	}
}

func (m *MockCache) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	val, ok := m.data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	return nil
}

// Len reports how many entries the cache holds.
func (m *MockCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.data)
}
