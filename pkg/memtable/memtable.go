package memtable

import (
	"github.com/coocood/freecache"
)

// MemTable is an in-process byte cache with per entry expiration
type MemTable struct {
	cache *freecache.Cache
}

// New creates freecache with size
func New(size int) *MemTable {
	return &MemTable{
		cache: freecache.NewCache(size),
	}
}

// Get ...
func (m *MemTable) Get(key string) ([]byte, bool) {
	data, err := m.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores the value, ttlSeconds = 0 means no expiration
func (m *MemTable) Set(key string, value []byte, ttlSeconds int) {
	_ = m.cache.Set([]byte(key), value, ttlSeconds)
}

// Delete ...
func (m *MemTable) Delete(key string) {
	m.cache.Del([]byte(key))
}

// EntryCount ...
func (m *MemTable) EntryCount() int64 {
	return m.cache.EntryCount()
}
