package dictionary

import "sync"

type SyncDictionary[K comparable, V any] struct {
	inner Map[K, V]
	mutex sync.RWMutex
}

func NewSync[K comparable, V any]() *SyncDictionary[K, V] {
	return &SyncDictionary[K, V]{
		inner: New[K, V](),
	}
}

func NewSyncWithCapacity[K comparable, V any](capacity int) *SyncDictionary[K, V] {
	return &SyncDictionary[K, V]{
		inner: WithCapacity[K, V](capacity),
	}
}

// Does not copy the map, so the caller must not keep using m directly.
func NewSyncFromExisting[K comparable, V any](m Map[K, V]) *SyncDictionary[K, V] {
	return &SyncDictionary[K, V]{
		inner: m,
	}
}

func (m *SyncDictionary[K, V]) Insert(key K, value V) (V, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.inner.Insert(key, value)
}

func (m *SyncDictionary[K, V]) Get(key K) (V, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.inner.Get(key)
}

func (m *SyncDictionary[K, V]) Remove(key K) (V, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return m.inner.Remove(key)
}

func (m *SyncDictionary[K, V]) ContainsKey(key K) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.inner.ContainsKey(key)
}

func (m *SyncDictionary[K, V]) Keys() []K {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.inner.Keys()
}

func (m *SyncDictionary[K, V]) Values() []V {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.inner.Values()
}

func (m *SyncDictionary[K, V]) Len() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return m.inner.Len()
}

// Range calls fn for each entry in order while holding the read lock. fn
// must not call back into m. Iteration stops when fn returns false.
func (m *SyncDictionary[K, V]) Range(fn func(K, V) bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, k := range m.inner.Keys() {
		v, _ := m.inner.Get(k)

		if !fn(k, v) {
			return
		}
	}
}

// String renders the wrapped map the way Dictionary does.
func (m *SyncDictionary[K, V]) String() string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if d, ok := m.inner.(*Dictionary[K, V]); ok {
		return d.String()
	}

	d := WithCapacity[K, V](max(m.inner.Len(), 1))
	for _, k := range m.inner.Keys() {
		v, _ := m.inner.Get(k)
		d.Insert(k, v)
	}

	return d.String()
}
